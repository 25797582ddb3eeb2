package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"salon/infras/otel"
	"salon/internal/domains/admin/model/dto"
	"salon/internal/domains/admin/service"
	"salon/shared/constant"
	"salon/shared/validator"
	"salon/transport/http/response"
)

type Handler struct {
	service service.Admin
	otel    otel.Otel
}

func New(service service.Admin, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers the unauthenticated admin account routes. They sit beside
// the guarded /admin subrouter, so they are registered flat.
func (handler *Handler) Router(router chi.Router) {
	router.Get("/admin/registration-status", handler.RegistrationStatus)
	router.Post("/admin/register", handler.Register)
	router.Post("/admin/login", handler.Login)
	router.Post("/admin/request-login-access", handler.RequestLoginAccess)
	router.Post("/admin/verify", handler.Verify)
}

// RegistrationStatus reports whether the first admin may still register.
// @Summary Admin registration status
// @Tags Admin Auth
// @Produce json
// @Success 200 {object} dto.RegistrationStatusResponse
// @Failure 500 {object} response.Error
// @Router /api/admin/registration-status [get]
func (handler *Handler) RegistrationStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RegistrationStatus")
	defer scope.End()

	res, err := handler.service.RegistrationStatus(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get registration status")
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Register creates the first admin account.
// @Summary Register the initial admin
// @Tags Admin Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Admin account"
// @Success 201 {object} dto.RegisterResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /api/admin/register [post]
func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Register")
	defer scope.End()

	req := dto.RegisterRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Register(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register admin")
		response.WithError(w, err)

		return
	}

	scope.AddEvent("Admin registered " + res.Admin.ID)

	response.WithJSON(w, http.StatusCreated, res)
}

// Login exchanges credentials and a second factor for an admin token.
// @Summary Admin login
// @Tags Admin Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /api/admin/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("admin login rejected")
		response.WithError(w, err)

		return
	}

	scope.AddEvent("Admin logged in " + res.Admin.ID)

	response.WithJSON(w, http.StatusOK, res)
}

// RequestLoginAccess issues a one-time login code.
// @Summary Request a one-time login code
// @Tags Admin Auth
// @Accept json
// @Produce json
// @Param request body dto.AccessCodeRequest true "Admin email and passcode"
// @Success 200 {object} dto.AccessCodeResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/admin/request-login-access [post]
func (handler *Handler) RequestLoginAccess(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RequestLoginAccess")
	defer scope.End()

	req := dto.AccessCodeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")
		response.WithError(w, err)

		return
	}

	res, err := handler.service.RequestAccessCode(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("login access request rejected")
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Verify checks an admin token.
// @Summary Verify an admin token
// @Tags Admin Auth
// @Accept json
// @Produce json
// @Param request body dto.VerifyRequest true "Token"
// @Success 200 {object} dto.VerifyResponse
// @Failure 401 {object} response.Error
// @Router /api/admin/verify [post]
func (handler *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Verify")
	defer scope.End()

	req := dto.VerifyRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Verify(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("admin token rejected")
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
