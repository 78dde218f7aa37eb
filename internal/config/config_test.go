package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"route-descriptor/internal/description"
	"route-descriptor/internal/models"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Addr)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Empty(t, cfg.DBPath)
	assert.Equal(t, description.DefaultTransactionID, cfg.TransactionID)
	assert.Equal(t, models.DefaultDescriptorConfig(), cfg.Descriptor)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ROUTE_DESCRIPTOR_SERVER_ADDR", ":9000")
	t.Setenv("ROUTE_DESCRIPTOR_APP_ENV", "production")
	t.Setenv("ROUTE_DESCRIPTOR_DB_PATH", "/tmp/graph.db")
	t.Setenv("ROUTE_DESCRIPTOR_COMPRESSION", "false")
	t.Setenv("ROUTE_DESCRIPTOR_INSTRUCTIONS", "0")
	t.Setenv("ROUTE_DESCRIPTOR_TRAILING_DISTANCE", "arrive")
	t.Setenv("ROUTE_DESCRIPTOR_TRANSACTION_ID", "test-engine")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, "/tmp/graph.db", cfg.DBPath)
	assert.Equal(t, "test-engine", cfg.TransactionID)
	assert.True(t, cfg.Descriptor.Geometry)
	assert.False(t, cfg.Descriptor.EncodeGeometry)
	assert.False(t, cfg.Descriptor.Instructions)
	assert.Equal(t, models.TrailingArrive, cfg.Descriptor.Trailing)
}

func TestLoadRejectsUnknownTrailingPolicy(t *testing.T) {
	t.Setenv("ROUTE_DESCRIPTOR_TRAILING_DISTANCE", "sideways")

	_, err := Load()
	assert.Error(t, err)
}
