package helper

import (
	"net/url"
	"testing"

	"hotel/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Prefix = "test_"
	cfg.DB.Postgres.MigrationTable = "hotel_migrations"
	cfg.DB.Postgres.Write.Username = "hotel"
	cfg.DB.Postgres.Write.Password = "p@ss word"
	cfg.DB.Postgres.Write.Host = "localhost"
	cfg.DB.Postgres.Write.Port = "5432"
	cfg.DB.Postgres.Write.Name = "reservations"
	cfg.DB.Postgres.Write.SSLMode = "disable"

	parsed, err := url.Parse(databaseURL(cfg))
	require.NoError(t, err)

	password, _ := parsed.User.Password()

	assert.Equal(t, "postgres", parsed.Scheme)
	assert.Equal(t, "hotel", parsed.User.Username())
	assert.Equal(t, "p@ss word", password)
	assert.Equal(t, "localhost:5432", parsed.Host)
	assert.Equal(t, "/test_reservations", parsed.Path)
	assert.Equal(t, "disable", parsed.Query().Get("sslmode"))
	assert.Equal(t, "hotel_migrations", parsed.Query().Get("x-migrations-table"))
}

func TestApply_UnknownAction(t *testing.T) {
	err := apply(nil, "sideways")

	assert.ErrorIs(t, err, ErrUnknownAction)
}
