package mongo

import (
	"context"
	"fmt"
	"time"

	"hotel/config"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Connection struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// New connects and pings within the configured connect timeout.
func New(config *config.Config) (*Connection, error) {
	timeout := time.Duration(config.DB.Mongo.ConnectTimeoutSeconds) * time.Second

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.DB.Mongo.URI))
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB")

		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err = client.Ping(ctx, nil); err != nil {
		log.Error().Err(err).Msg("Failed to ping MongoDB")

		_ = client.Disconnect(context.Background())

		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	log.Info().Str("database", config.DB.Mongo.Database).Msg("Connected to MongoDB")

	return &Connection{
		Client:   client,
		Database: client.Database(config.DB.Mongo.Database),
	}, nil
}

func (c *Connection) Close(ctx context.Context) error {
	if err := c.Client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect mongo: %w", err)
	}

	return nil
}
