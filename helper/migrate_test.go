package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salon/config"
)

func TestConnectionURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Prefix = "dev_"
	cfg.DB.Postgres.MigrationTable = "schema_migrations"
	cfg.DB.Postgres.Write.Host = "db"
	cfg.DB.Postgres.Write.Port = "5432"
	cfg.DB.Postgres.Write.Username = "salon"
	cfg.DB.Postgres.Write.Password = "p@ss word"
	cfg.DB.Postgres.Write.Name = "salon"
	cfg.DB.Postgres.Write.SSLMode = "disable"

	assert.Equal(t,
		"postgres://salon:p%40ss%20word@db:5432/dev_salon?sslmode=disable&x-migrations-table=schema_migrations",
		connectionURL(cfg),
	)
}

func TestRunner_UnknownAction(t *testing.T) {
	err := Runner(&config.Config{}, Action("sideways"))
	require.ErrorIs(t, err, ErrUnknownAction)
}
