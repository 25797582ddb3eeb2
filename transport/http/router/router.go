package router

import (
	"github.com/go-chi/chi/v5"

	"salon/internal/handlers/admin"
	"salon/internal/handlers/booking"
	"salon/internal/handlers/catalog"
	"salon/internal/handlers/health"
	"salon/internal/handlers/message"
	"salon/internal/handlers/payment"
	"salon/transport/http/middleware"
)

type DomainHandlers struct {
	Admin   admin.Handler
	Booking booking.Handler
	Catalog catalog.Handler
	Health  health.Handler
	Message message.Handler
	Payment payment.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Auth           middleware.Auth
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Health.Router(router)

	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Catalog.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.Message.Router(routerGroup)
		r.DomainHandlers.Admin.Router(routerGroup)

		routerGroup.Route("/admin", func(adminGroup chi.Router) {
			adminGroup.Use(r.Auth.AdminAuth)

			r.DomainHandlers.Booking.AdminRouter(adminGroup)
			r.DomainHandlers.Message.AdminRouter(adminGroup)
		})
	})
}

func New(domainHandlers DomainHandlers, auth middleware.Auth) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Auth:           auth,
	}
}
