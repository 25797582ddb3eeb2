package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"salon/config"
	"salon/infras/jwt"
	jwtMocks "salon/infras/jwt/mocks"
	otelMocks "salon/infras/otel/mocks"
	pgMocks "salon/infras/postgres/mocks"
	adminMocks "salon/internal/domains/admin/mocks"
	"salon/internal/domains/admin/model"
	"salon/internal/domains/admin/model/dto"
	"salon/internal/domains/admin/service"
	gDto "salon/shared/dto"
	"salon/shared/failure"
	lockMocks "salon/shared/lock/mocks"
	"salon/shared/password"
	"salon/shared/timezone"
)

const (
	passcode      = "open-sesame"
	adminPassword = "s3cret-pass"
)

type deps struct {
	admins *adminMocks.MockAdmin
	codes  *adminMocks.MockAccessCode
	jwt    *jwtMocks.MockJWT
}

func setup(t *testing.T) (service.Admin, deps) {
	ctrl := gomock.NewController(t)

	d := deps{
		admins: adminMocks.NewMockAdmin(ctrl),
		codes:  adminMocks.NewMockAccessCode(ctrl),
		jwt:    jwtMocks.NewMockJWT(ctrl),
	}

	tx := pgMocks.NewMockTransactor(ctrl)
	tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(pgMocks.RunTx).AnyTimes()

	locker := lockMocks.NewMockLocker(ctrl)
	locker.EXPECT().WithLock(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(lockMocks.RunLocked).AnyTimes()

	cfg := &config.Config{}
	cfg.Admin.SecretPasscode = passcode
	cfg.Admin.AccessCodeTTLMinutes = 10

	return service.New(d.admins, d.codes, tx, locker, d.jwt, cfg, otelMocks.NewOtel()), d
}

func storedAdmin(t *testing.T) model.Admin {
	t.Helper()

	hash, err := password.Hash(adminPassword)
	require.NoError(t, err)

	return model.Admin{ID: "a1", Email: "owner@salon.ng", Name: "Owner", PasswordHash: hash}
}

func assertFailure(t *testing.T, err error, code int, msg string) {
	t.Helper()

	require.Error(t, err)

	var fail *failure.Failure
	require.True(t, errors.As(err, &fail), "expected a failure, got %v", err)
	assert.Equal(t, code, fail.Code)
	assert.Equal(t, msg, fail.Message)
}

func TestAdminService_RegistrationStatus(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		open    bool
		message string
	}{
		{name: "open before first admin", count: 0, open: true, message: "Admin registration is open for initial setup"},
		{name: "closed afterwards", count: 1, open: false, message: "Admin registration is closed. Contact the existing admin for access."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := setup(t)

			d.admins.EXPECT().Count(gomock.Any(), gDto.FilterGroup{}).Return(tt.count, nil)

			res, err := svc.RegistrationStatus(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.open, res.RegistrationOpen)
			assert.Equal(t, tt.message, res.Message)
		})
	}
}

func TestAdminService_Register(t *testing.T) {
	valid := dto.RegisterRequest{Email: "  Owner@Salon.NG ", Password: " " + adminPassword + " ", Name: " Owner ", SecretPasscode: passcode}

	t.Run("missing fields", func(t *testing.T) {
		svc, _ := setup(t)

		req := valid
		req.Name = "   "

		_, err := svc.Register(context.Background(), req)
		assertFailure(t, err, http.StatusBadRequest, "Name, email, password, and secret passcode are required")
	})

	t.Run("closed once an admin exists", func(t *testing.T) {
		svc, d := setup(t)

		d.admins.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)

		_, err := svc.Register(context.Background(), valid)
		assert.Equal(t, failure.RegistrationClosedError, err)
	})

	t.Run("wrong passcode", func(t *testing.T) {
		svc, d := setup(t)

		d.admins.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)

		req := valid
		req.SecretPasscode = "guess"

		_, err := svc.Register(context.Background(), req)
		assertFailure(t, err, http.StatusUnauthorized, "Invalid secret passcode for admin registration")
	})

	t.Run("count fails", func(t *testing.T) {
		svc, d := setup(t)

		d.admins.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("db down"))

		_, err := svc.Register(context.Background(), valid)
		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("stores normalized email and hashed password", func(t *testing.T) {
		svc, d := setup(t)

		var inserted model.Admin

		d.admins.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
		d.admins.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a model.Admin) error {
			inserted = a

			return nil
		})

		res, err := svc.Register(context.Background(), valid)
		require.NoError(t, err)

		assert.Equal(t, "Admin registered successfully", res.Message)
		assert.Equal(t, "owner@salon.ng", inserted.Email)
		assert.Equal(t, "Owner", inserted.Name)
		assert.NotEqual(t, adminPassword, inserted.PasswordHash)
		require.NoError(t, password.Verify(adminPassword, inserted.PasswordHash))
		assert.Equal(t, dto.AdminResponse{ID: inserted.ID, Email: "owner@salon.ng", Name: "Owner"}, res.Admin)
	})
}

func TestAdminService_Login(t *testing.T) {
	admin := storedAdmin(t)
	token := jwt.Token{Value: "signed", ExpiresAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func(d deps)
		code      int
		message   string
	}{
		{
			name:    "missing password",
			req:     dto.LoginRequest{Email: "owner@salon.ng"},
			code:    http.StatusBadRequest,
			message: "Email and password are required",
		},
		{
			name: "no admin yet",
			req:  dto.LoginRequest{Email: "owner@salon.ng", Password: adminPassword},
			setupMock: func(d deps) {
				d.admins.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
			},
			code:    http.StatusUnauthorized,
			message: "No admin account found. Complete initial admin setup first.",
		},
		{
			name: "unknown email",
			req:  dto.LoginRequest{Email: "stranger@salon.ng", Password: adminPassword, SecretPasscode: passcode},
			setupMock: func(d deps) {
				d.admins.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
				d.admins.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Admin{}, nil)
			},
			code:    http.StatusUnauthorized,
			message: "Invalid email or password",
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: "owner@salon.ng", Password: "nope", SecretPasscode: passcode},
			setupMock: func(d deps) {
				d.admins.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
				d.admins.EXPECT().Get(gomock.Any(), gomock.Any()).Return(admin, nil)
			},
			code:    http.StatusUnauthorized,
			message: "Invalid email or password",
		},
		{
			name: "no second factor",
			req:  dto.LoginRequest{Email: "owner@salon.ng", Password: adminPassword},
			setupMock: func(d deps) {
				d.admins.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
				d.admins.EXPECT().Get(gomock.Any(), gomock.Any()).Return(admin, nil)
			},
			code:    http.StatusBadRequest,
			message: "Provide either a valid secret passcode or a one-time access code",
		},
		{
			name: "wrong passcode without code",
			req:  dto.LoginRequest{Email: "owner@salon.ng", Password: adminPassword, SecretPasscode: "guess"},
			setupMock: func(d deps) {
				d.admins.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
				d.admins.EXPECT().Get(gomock.Any(), gomock.Any()).Return(admin, nil)
			},
			code:    http.StatusUnauthorized,
			message: "Invalid secret passcode",
		},
		{
			name: "unknown access code",
			req:  dto.LoginRequest{Email: "owner@salon.ng", Password: adminPassword, OneTimeCode: "123456"},
			setupMock: func(d deps) {
				d.admins.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
				d.admins.EXPECT().Get(gomock.Any(), gomock.Any()).Return(admin, nil)
				d.codes.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.AccessCode{}, nil)
			},
			code:    http.StatusUnauthorized,
			message: "Invalid or expired one-time access code",
		},
		{
			name: "expired access code",
			req:  dto.LoginRequest{Email: "owner@salon.ng", Password: adminPassword, OneTimeCode: "123456"},
			setupMock: func(d deps) {
				d.admins.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
				d.admins.EXPECT().Get(gomock.Any(), gomock.Any()).Return(admin, nil)
				d.codes.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.AccessCode{
					ID: "c1", Email: admin.Email, Code: "123456", ExpiresAt: timezone.Now().Add(-time.Minute),
				}, nil)
			},
			code:    http.StatusUnauthorized,
			message: "Invalid or expired one-time access code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := setup(t)

			if tt.setupMock != nil {
				tt.setupMock(d)
			}

			_, err := svc.Login(context.Background(), tt.req)
			assertFailure(t, err, tt.code, tt.message)
		})
	}

	t.Run("secret passcode issues a token", func(t *testing.T) {
		svc, d := setup(t)

		d.admins.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
		d.admins.EXPECT().Get(gomock.Any(), gomock.Any()).Return(admin, nil)
		d.jwt.EXPECT().GenerateToken(admin.ID, admin.Email, gomock.Any()).Return(token, nil)

		res, err := svc.Login(context.Background(), dto.LoginRequest{
			Email: " OWNER@salon.ng", Password: adminPassword, SecretPasscode: passcode, OneTimeCode: "ignored",
		})
		require.NoError(t, err)

		assert.Equal(t, "Login successful", res.Message)
		assert.Equal(t, "signed", res.Token)
		assert.Equal(t, token.ExpiresAt, res.ExpiresAt)
		assert.Equal(t, dto.AdminResponse{ID: "a1", Email: "owner@salon.ng", Name: "Owner"}, res.Admin)
	})

	t.Run("access code is consumed", func(t *testing.T) {
		svc, d := setup(t)

		code := model.AccessCode{ID: "c1", Email: admin.Email, Code: "654321", ExpiresAt: timezone.Now().Add(5 * time.Minute)}

		var (
			changes map[string]any
			lookup  gDto.FilterGroup
		)

		before := timezone.Now()

		d.admins.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
		d.admins.EXPECT().Get(gomock.Any(), gomock.Any()).Return(admin, nil)
		d.codes.EXPECT().Get(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.AccessCode, error) {
				lookup = filter

				return code, nil
			})
		d.codes.EXPECT().UpdateTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, req map[string]any, _ gDto.FilterGroup) error {
				changes = req

				return nil
			})
		d.codes.EXPECT().DeleteTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(nil)
		d.jwt.EXPECT().GenerateToken(admin.ID, admin.Email, gomock.Any()).Return(token, nil)

		res, err := svc.Login(context.Background(), dto.LoginRequest{
			Email: "owner@salon.ng", Password: adminPassword, OneTimeCode: " 654321 ",
		})
		require.NoError(t, err)

		assert.Equal(t, "signed", res.Token)
		assert.Equal(t, true, changes[model.FieldAccessCodeUsed])
		assert.NotNil(t, changes[model.FieldAccessCodeUsedAt])

		where, args := lookup.GetWhereClause()
		assert.Equal(t, fmt.Sprintf("(%[1]s.email = :w1 AND %[1]s.code = :w2 AND %[1]s.used = :w3 AND %[1]s.expires_at > :w4)", model.AccessCodeTableName), where)
		assert.Equal(t, []any{admin.Email, "654321", false}, []any{args["w1"], args["w2"], args["w3"]})

		notBefore, ok := args["w4"].(time.Time)
		require.True(t, ok)
		assert.False(t, notBefore.Before(before))
	})
}

func TestAdminService_RequestAccessCode(t *testing.T) {
	admin := model.Admin{ID: "a1", Email: "owner@salon.ng", Name: "Owner"}

	tests := []struct {
		name      string
		req       dto.AccessCodeRequest
		setupMock func(d deps)
		code      int
		message   string
	}{
		{
			name:    "missing passcode",
			req:     dto.AccessCodeRequest{Email: "owner@salon.ng"},
			code:    http.StatusBadRequest,
			message: "Email and secret passcode are required",
		},
		{
			name: "no admin yet",
			req:  dto.AccessCodeRequest{Email: "owner@salon.ng", SecretPasscode: passcode},
			setupMock: func(d deps) {
				d.admins.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
			},
			code:    http.StatusBadRequest,
			message: "No admin account configured yet",
		},
		{
			name: "unknown email",
			req:  dto.AccessCodeRequest{Email: "stranger@salon.ng", SecretPasscode: passcode},
			setupMock: func(d deps) {
				d.admins.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
				d.admins.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Admin{}, nil)
			},
			code:    http.StatusUnauthorized,
			message: "Admin account not found for this email",
		},
		{
			name: "wrong passcode",
			req:  dto.AccessCodeRequest{Email: "owner@salon.ng", SecretPasscode: "guess"},
			setupMock: func(d deps) {
				d.admins.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
				d.admins.EXPECT().Get(gomock.Any(), gomock.Any()).Return(admin, nil)
			},
			code:    http.StatusUnauthorized,
			message: "Invalid secret passcode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := setup(t)

			if tt.setupMock != nil {
				tt.setupMock(d)
			}

			_, err := svc.RequestAccessCode(context.Background(), tt.req)
			assertFailure(t, err, tt.code, tt.message)
		})
	}

	t.Run("issues a six digit code", func(t *testing.T) {
		svc, d := setup(t)

		var inserted model.AccessCode

		d.admins.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
		d.admins.EXPECT().Get(gomock.Any(), gomock.Any()).Return(admin, nil)
		d.codes.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		d.codes.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c model.AccessCode) error {
			inserted = c

			return nil
		})

		res, err := svc.RequestAccessCode(context.Background(), dto.AccessCodeRequest{Email: "Owner@Salon.ng", SecretPasscode: passcode})
		require.NoError(t, err)

		assert.Equal(t, "One-time access code generated successfully", res.Message)
		assert.Regexp(t, regexp.MustCompile(`^[1-9]\d{5}$`), res.AccessCode)
		assert.Equal(t, 10, res.ExpiresInMinutes)
		assert.Equal(t, res.AccessCode, inserted.Code)
		assert.Equal(t, "owner@salon.ng", inserted.Email)
		assert.False(t, inserted.Used)
		assert.Equal(t, 10*time.Minute, inserted.ExpiresAt.Sub(inserted.CreatedAt))
	})
}

func TestAdminService_Verify(t *testing.T) {
	admin := model.Admin{ID: "a1", Email: "owner@salon.ng", Name: "Owner"}

	t.Run("no token", func(t *testing.T) {
		svc, _ := setup(t)

		_, err := svc.Verify(context.Background(), dto.VerifyRequest{})
		assertFailure(t, err, http.StatusUnauthorized, "No token provided")
	})

	t.Run("no admin configured", func(t *testing.T) {
		svc, d := setup(t)

		d.admins.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)

		_, err := svc.Verify(context.Background(), dto.VerifyRequest{Token: "t"})
		assertFailure(t, err, http.StatusUnauthorized, "No admin configured")
	})

	t.Run("invalid token", func(t *testing.T) {
		svc, d := setup(t)

		d.admins.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
		d.jwt.EXPECT().ValidateToken("t").Return(nil, jwt.ErrInvalidToken)

		_, err := svc.Verify(context.Background(), dto.VerifyRequest{Token: "t"})
		assertFailure(t, err, http.StatusUnauthorized, "Admin not found")
	})

	t.Run("valid token", func(t *testing.T) {
		svc, d := setup(t)

		d.admins.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
		d.jwt.EXPECT().ValidateToken("t").Return(&jwt.Claims{AdminID: "a1", Email: "Owner@salon.ng"}, nil)
		d.admins.EXPECT().Get(gomock.Any(), gomock.Any()).Return(admin, nil)

		res, err := svc.Verify(context.Background(), dto.VerifyRequest{Token: "t"})
		require.NoError(t, err)
		assert.True(t, res.Valid)
		assert.Equal(t, dto.AdminResponse{ID: "a1", Email: "owner@salon.ng", Name: "Owner"}, res.Admin)
	})
}

func TestAdminService_Authenticate(t *testing.T) {
	t.Run("no admin configured", func(t *testing.T) {
		svc, d := setup(t)

		d.admins.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)

		_, err := svc.Authenticate(context.Background(), "t")
		assertFailure(t, err, http.StatusUnauthorized, "No admin account configured yet")
	})

	t.Run("missing token", func(t *testing.T) {
		svc, d := setup(t)

		d.admins.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)

		_, err := svc.Authenticate(context.Background(), "")
		assertFailure(t, err, http.StatusUnauthorized, "Unauthorized admin access")
	})

	t.Run("admin deleted after token was issued", func(t *testing.T) {
		svc, d := setup(t)

		d.admins.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
		d.jwt.EXPECT().ValidateToken("t").Return(&jwt.Claims{AdminID: "gone", Email: "gone@salon.ng"}, nil)
		d.admins.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Admin{}, nil)

		_, err := svc.Authenticate(context.Background(), "t")
		assertFailure(t, err, http.StatusUnauthorized, "Unauthorized admin access")
	})

	t.Run("lookup fails", func(t *testing.T) {
		svc, d := setup(t)

		d.admins.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
		d.jwt.EXPECT().ValidateToken("t").Return(&jwt.Claims{AdminID: "a1", Email: "owner@salon.ng"}, nil)
		d.admins.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Admin{}, errors.New("db down"))

		_, err := svc.Authenticate(context.Background(), "t")
		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("valid", func(t *testing.T) {
		svc, d := setup(t)

		d.admins.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
		d.jwt.EXPECT().ValidateToken("t").Return(&jwt.Claims{AdminID: "a1", Email: "owner@salon.ng"}, nil)
		d.admins.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Admin{ID: "a1", Email: "owner@salon.ng", Name: "Owner"}, nil)

		res, err := svc.Authenticate(context.Background(), "t")
		require.NoError(t, err)
		assert.Equal(t, "a1", res.ID)
	})
}
