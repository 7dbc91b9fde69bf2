package di

import (
	"context"
	"fmt"
	"time"

	"hotel/config"
	"hotel/helper"
	"hotel/infras/kafka"
	"hotel/infras/mongo"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/infras/rabbitmq"
	"hotel/infras/redis"
	"hotel/internal/domains/booking/notifier"
	"hotel/internal/domains/booking/repository"
	"hotel/internal/domains/booking/service"
	guestModel "hotel/internal/domains/guest/model"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared/cache"

	"github.com/rs/zerolog/log"
)

const closeTimeout = 5 * time.Second

func ProvideOtel(cfg *config.Config) (otel.Otel, func()) {
	otl := otel.New(cfg)

	return otl, func() {
		ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()

		if err := otl.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to shutdown tracer provider")
		}
	}
}

// ProvideCache connects to Redis only when the rate limiter or the postgres backend needs it.
func ProvideCache(cfg *config.Config, otl otel.Otel) (cache.RedisCache, func(), error) {
	if !cfg.App.RateLimiter.Enable && cfg.Engine.StorageBackend != config.StorageBackendPostgres {
		log.Info().Msg("Redis is not required, skipping connection")

		return nil, func() {}, nil
	}

	client, err := redis.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return cache.NewRedisCache(client, otl), func() {
		if err := client.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close redis client")
		}
	}, nil
}

func ProvideStorage(cfg *config.Config, otl otel.Otel, redisCache cache.RedisCache) (repository.Storage, func(), error) {
	switch cfg.Engine.StorageBackend {
	case config.StorageBackendMemory:
		rooms, err := roomModel.ParseAll(cfg.Engine.SeedRooms)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse seed rooms: %w", err)
		}

		guests, err := guestModel.ParseAll(cfg.Engine.SeedGuests)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse seed guests: %w", err)
		}

		log.Info().Int("rooms", len(rooms)).Int("guests", len(guests)).Msg("Using memory storage")

		return repository.NewMemory(rooms, guests), func() {}, nil
	case config.StorageBackendPostgres:
		if cfg.DB.Postgres.AutoMigrate {
			if err := helper.Up(cfg); err != nil {
				return nil, nil, fmt.Errorf("failed to migrate postgres: %w", err)
			}
		}

		conn, err := postgres.New(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}

		return repository.NewPostgres(conn, redisCache, cfg, otl), func() {
			if err := conn.Close(); err != nil {
				log.Error().Err(err).Msg("Failed to close postgres connection")
			}
		}, nil
	case config.StorageBackendMongo:
		conn, err := mongo.New(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to mongo: %w", err)
		}

		return repository.NewMongo(conn, otl), func() {
			ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
			defer cancel()

			if err := conn.Close(ctx); err != nil {
				log.Error().Err(err).Msg("Failed to close mongo connection")
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Engine.StorageBackend)
	}
}

func ProvideKafka(cfg *config.Config) (kafka.Client, func()) {
	client := kafka.New(cfg)

	return client, func() {
		if err := client.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close kafka client")
		}
	}
}

// ProvideRabbitMQ dials the broker only when event routing is enabled.
func ProvideRabbitMQ(cfg *config.Config) (rabbitmq.Publisher, func(), error) {
	if !cfg.RabbitMQ.Enable {
		return nil, func() {}, nil
	}

	publisher, err := rabbitmq.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	return publisher, func() {
		if err := publisher.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close rabbitmq publisher")
		}
	}, nil
}

// ProvideEngine hydrates the engine from storage and subscribes the enabled event notifiers.
func ProvideEngine(
	cfg *config.Config,
	storage repository.Storage,
	client kafka.Client,
	publisher rabbitmq.Publisher,
	otl otel.Otel,
) (service.Engine, error) {
	engine, err := service.New(context.Background(), storage, otl)
	if err != nil {
		return nil, fmt.Errorf("failed to start reservation engine: %w", err)
	}

	if cfg.Kafka.Enable {
		engine.Subscribe(notifier.NewKafka(client, cfg, otl))

		log.Info().Str("topic", cfg.Kafka.BookingTopic).Msg("Publishing booking events to Kafka")
	}

	if cfg.RabbitMQ.Enable {
		engine.Subscribe(notifier.NewRabbitMQ(publisher, otl))

		log.Info().Str("exchange", cfg.RabbitMQ.Exchange).Msg("Routing booking events to RabbitMQ")
	}

	return engine, nil
}
