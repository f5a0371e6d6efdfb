package database

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, migrationsDir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	body, err := fs.ReadFile(migrationsFS, migrationsDir+"/00001_init.sql")
	require.NoError(t, err)
	sql := string(body)

	assert.Contains(t, sql, "-- +goose Up")
	assert.Contains(t, sql, "-- +goose Down")
	for _, table := range []string{
		"clients", "requests", "request_images", "quotes",
		"quote_negotiations", "orders", "bills", "bill_negotiations",
	} {
		assert.Contains(t, sql, "CREATE TABLE "+table+" (", table)
		assert.Contains(t, sql, "DROP TABLE IF EXISTS "+table+";", table)
	}
	assert.True(t, strings.Contains(sql, "UNIQUE KEY uq_orders_quote (quote_id)"))
	assert.True(t, strings.Contains(sql, "UNIQUE KEY uq_quote_negotiation_version (quote_id, version)"))
}

func TestMigrate_UnknownCommand(t *testing.T) {
	err := Migrate(context.Background(), nil, "sideways")
	assert.ErrorContains(t, err, "unknown migrate command")
}
