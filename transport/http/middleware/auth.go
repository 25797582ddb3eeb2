package middleware

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"salon/infras/otel"
	adminService "salon/internal/domains/admin/service"
	"salon/shared/constant"
	"salon/transport/http/request"
	"salon/transport/http/response"
)

// Auth guards the admin dashboard routes.
type Auth interface {
	AdminAuth(next http.Handler) http.Handler
}

type authImpl struct {
	admins adminService.Admin
	otel   otel.Otel
}

func NewAuthMiddleware(admins adminService.Admin, otel otel.Otel) Auth {
	return &authImpl{
		admins: admins,
		otel:   otel,
	}
}

// AdminAuth resolves the admin behind the request token and stores its
// identity on the context.
func (m *authImpl) AdminAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, scope := m.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "admin.auth.middleware")

		scope.SetAttributes(map[string]any{
			"middleware.type": "admin_auth",
			"http.path":       r.URL.Path,
			"http.method":     r.Method,
		})

		admin, err := m.admins.Authenticate(ctx, request.AdminToken(r))
		if err != nil {
			scope.TraceError(err)
			scope.End()

			log.Warn().Err(err).Str("path", r.URL.Path).Msg("admin request rejected")
			response.WithError(w, err)

			return
		}

		scope.End()

		ctx = context.WithValue(r.Context(), constant.ContextKeyAdminID, admin.ID)
		ctx = context.WithValue(ctx, constant.ContextKeyAdminEmail, admin.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyAdminName, admin.Name)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
