package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"salon/config"
	"salon/infras/jwt"
)

func newConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "ceo-salon"
	cfg.Admin.TokenSecret = secret
	cfg.Admin.SecretPasscode = "passcode"
	cfg.Admin.TokenExpireMin = 60

	return cfg
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := jwt.New(newConfig("top-secret"))

	token, err := svc.GenerateToken("admin-1", "owner@salon.ng", time.Now())
	assert.NoError(t, err)
	assert.NotEmpty(t, token.Value)

	claims, err := svc.ValidateToken(token.Value)
	assert.NoError(t, err)
	assert.Equal(t, "admin-1", claims.AdminID)
	assert.Equal(t, "owner@salon.ng", claims.Email)
}

func TestValidateTokenRejectsForgery(t *testing.T) {
	issuer := jwt.New(newConfig("top-secret"))
	other := jwt.New(newConfig("another-secret"))

	token, err := other.GenerateToken("admin-1", "owner@salon.ng", time.Now())
	assert.NoError(t, err)

	_, err = issuer.ValidateToken(token.Value)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	_, err = issuer.ValidateToken("b3duZXJAc2Fsb24ubmc6YWRtaW4tMQ==")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := jwt.New(newConfig("top-secret"))

	token, err := svc.GenerateToken("admin-1", "owner@salon.ng", time.Now().Add(-2*time.Hour))
	assert.NoError(t, err)

	_, err = svc.ValidateToken(token.Value)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestNewFallsBackToPasscode(t *testing.T) {
	withoutSecret := jwt.New(newConfig(""))
	passcodeKeyed := jwt.New(newConfig("passcode"))

	token, err := withoutSecret.GenerateToken("admin-1", "owner@salon.ng", time.Now())
	assert.NoError(t, err)

	_, err = passcodeKeyed.ValidateToken(token.Value)
	assert.NoError(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer", header: "Bearer abc.def", want: "abc.def"},
		{name: "lowercase scheme", header: "  bearer abc.def ", want: "abc.def"},
		{name: "empty", header: "", wantErr: true},
		{name: "basic scheme", header: "Basic abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := jwt.ExtractTokenFromHeader(tt.header)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
