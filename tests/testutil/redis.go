package testutil

import (
	"context"
	"testing"

	"github.com/pos/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// StartRedis runs a throwaway Redis container for the lifetime of the test
// and returns the settings to reach it. Tests calling it are skipped in
// short mode since they need a Docker daemon.
func StartRedis(t *testing.T) config.RedisConfig {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping Redis container test in short mode")
	}
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err, "Failed to start Redis container")
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("Warning: Failed to terminate Redis container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)

	return config.RedisConfig{Enabled: true, Host: host, Port: port.Int()}
}

// NewRedisClient starts a Redis container and returns a connected client.
func NewRedisClient(t *testing.T) *redis.Client {
	t.Helper()

	cfg := StartRedis(t)
	client := redis.NewClient(&redis.Options{Addr: cfg.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.Ping(context.Background()).Err(), "Failed to ping Redis")
	return client
}
