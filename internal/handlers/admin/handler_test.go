package admin_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "salon/infras/otel/mocks"
	adminMocks "salon/internal/domains/admin/mocks"
	"salon/internal/domains/admin/model/dto"
	"salon/internal/handlers/admin"
	"salon/shared/failure"
)

func setup(t *testing.T) (chi.Router, *adminMocks.MockAdminService) {
	ctrl := gomock.NewController(t)
	svc := adminMocks.NewMockAdminService(ctrl)

	handler := admin.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func TestHandler_RegistrationStatus(t *testing.T) {
	router, svc := setup(t)

	svc.EXPECT().RegistrationStatus(gomock.Any()).Return(dto.RegistrationStatusResponse{RegistrationOpen: true}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/registration-status", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"registrationOpen":true`)
}

func TestHandler_Register(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "created", wantStatus: http.StatusCreated},
		{name: "closed", err: failure.RegistrationClosedError, wantStatus: http.StatusForbidden},
		{name: "bad passcode", err: failure.Unauthorized("Invalid secret passcode for admin registration"), wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := setup(t)

			svc.EXPECT().Register(gomock.Any(), dto.RegisterRequest{
				Email: "owner@example.com", Password: "hunter22", Name: "Owner", SecretPasscode: "pass",
			}).Return(dto.RegisterResponse{}, tt.err)

			body := `{"email":"owner@example.com","password":"hunter22","name":"Owner","secretPasscode":"pass"}`

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/register", strings.NewReader(body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_Register_PasswordTooLong(t *testing.T) {
	router, _ := setup(t)

	body := `{"email":"owner@example.com","password":"` + strings.Repeat("x", 73) + `","name":"Owner","secretPasscode":"pass"}`

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/register", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Login(t *testing.T) {
	router, svc := setup(t)

	svc.EXPECT().Login(gomock.Any(), dto.LoginRequest{Email: "owner@example.com", Password: "hunter22", OneTimeCode: "123456"}).
		Return(dto.LoginResponse{Message: "Login successful", Token: "tok"}, nil)

	body := `{"email":"owner@example.com","password":"hunter22","oneTimeCode":"123456"}`

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"tok"`)
}

func TestHandler_RequestLoginAccess(t *testing.T) {
	router, svc := setup(t)

	svc.EXPECT().RequestAccessCode(gomock.Any(), dto.AccessCodeRequest{Email: "owner@example.com", SecretPasscode: "pass"}).
		Return(dto.AccessCodeResponse{AccessCode: "654321", ExpiresInMinutes: 10}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/request-login-access",
		strings.NewReader(`{"email":"owner@example.com","secretPasscode":"pass"}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"expiresInMinutes":10`)
}

func TestHandler_Verify(t *testing.T) {
	router, svc := setup(t)

	svc.EXPECT().Verify(gomock.Any(), dto.VerifyRequest{Token: "stale"}).Return(dto.VerifyResponse{}, failure.Unauthorized("Admin not found"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/verify", strings.NewReader(`{"token":"stale"}`)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, `{"error":"Admin not found"}`, rec.Body.String())
}
