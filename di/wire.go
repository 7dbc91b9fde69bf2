//go:build wireinject
// +build wireinject

package di

import (
	"hotel/config"
	"hotel/infras/s3"
	auditService "hotel/internal/domains/audit/service"
	auditHandler "hotel/internal/handlers/audit"
	bookingHandler "hotel/internal/handlers/booking"
	roomHandler "hotel/internal/handlers/room"
	"hotel/transport/http"
	"hotel/transport/http/middleware"
	"hotel/transport/http/router"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	ProvideOtel,
	ProvideCache,
	ProvideKafka,
	ProvideRabbitMQ,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var bookingDomain = wire.NewSet(
	ProvideStorage,
	ProvideEngine,
)

var auditDomain = wire.NewSet(
	auditService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	auditDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	roomHandler.New,
	auditHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, func(), error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		domains,
		routing,
		http.New,
	)

	return nil, nil, nil
}
