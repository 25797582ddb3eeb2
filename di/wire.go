//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"salon/config"
	"salon/infras/jwt"
	"salon/infras/kafka"
	"salon/infras/monnify"
	"salon/infras/otel"
	"salon/infras/paystack"
	"salon/infras/postgres"
	"salon/infras/redis"
	"salon/infras/s3"
	"salon/shared/cache"
	"salon/shared/lock"
	"salon/transport/http"
	"salon/transport/http/middleware"
	"salon/transport/http/router"

	adminRepository "salon/internal/domains/admin/repository"
	adminService "salon/internal/domains/admin/service"
	bookingRepository "salon/internal/domains/booking/repository"
	bookingService "salon/internal/domains/booking/service"
	catalogRepository "salon/internal/domains/catalog/repository"
	catalogService "salon/internal/domains/catalog/service"
	messageRepository "salon/internal/domains/message/repository"
	messageService "salon/internal/domains/message/service"
	notificationRepository "salon/internal/domains/notification/repository"
	notificationService "salon/internal/domains/notification/service"
	paymentService "salon/internal/domains/payment/service"

	adminHandler "salon/internal/handlers/admin"
	bookingHandler "salon/internal/handlers/booking"
	catalogHandler "salon/internal/handlers/catalog"
	healthHandler "salon/internal/handlers/health"
	messageHandler "salon/internal/handlers/message"
	paymentHandler "salon/internal/handlers/payment"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	paystack.New,
	monnifyTokenCache,
	monnify.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	lock.New,
)

var catalogDomain = wire.NewSet(
	catalogRepository.New,
	catalogService.New,
)

var notificationDomain = wire.NewSet(
	notificationRepository.New,
	notificationService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var paymentDomain = wire.NewSet(
	paymentService.New,
)

var adminDomain = wire.NewSet(
	adminRepository.New,
	adminRepository.NewAccessCode,
	adminService.New,
)

var messageDomain = wire.NewSet(
	messageRepository.New,
	messageService.New,
)

var domains = wire.NewSet(
	catalogDomain,
	notificationDomain,
	bookingDomain,
	paymentDomain,
	adminDomain,
	messageDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	adminHandler.New,
	bookingHandler.New,
	catalogHandler.New,
	healthHandler.New,
	messageHandler.New,
	paymentHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		closers,
		http.New,
	)

	return &http.HTTP{}
}
