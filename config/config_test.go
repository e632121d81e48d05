package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadEnvDefaults(t *testing.T) {
	cfg := LoadEnv()

	require.Equal(t, ":8082", cfg.Server.GRPCPort)
	require.Equal(t, ":8080", cfg.Server.HTTPPort)
	require.Equal(t, CatalogSourceHTTP, cfg.Catalog.Source)
	require.Equal(t, 15*time.Minute, cfg.Catalog.CacheTTL)
	require.False(t, cfg.Kafka.Enabled)
	require.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "Postgres")
	t.Setenv("CATALOG_CACHE_TTL", "90")
	t.Setenv("CATALOG_TIMEOUT", "2s")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg := LoadEnv()

	require.Equal(t, CatalogSourcePostgres, cfg.Catalog.Source)
	require.Equal(t, 90*time.Second, cfg.Catalog.CacheTTL)
	require.Equal(t, 2*time.Second, cfg.Catalog.Timeout)
	require.True(t, cfg.Kafka.Enabled)
	require.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	require.Equal(t, 0, cfg.Redis.DB)
}

func TestGetEnvDurationFallback(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")
	require.Equal(t, 5*time.Second, getEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second))
}
