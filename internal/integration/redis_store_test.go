package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/KARINGU-RAVI/Nxt-trendz-app/internal/account"
	"github.com/KARINGU-RAVI/Nxt-trendz-app/internal/cart"
	"github.com/KARINGU-RAVI/Nxt-trendz-app/internal/kv"
)

func TestRedisStoreIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	redisC, addr := startRedis(ctx, t)
	defer terminateContainer(t, redisC)

	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	blobs := kv.NewRedis(client)

	t.Run("cart round-trip", func(t *testing.T) {
		store := cart.NewStore(kv.Namespaced(blobs, "it-cart"))

		items, err := store.AddItem(ctx, cart.LineItem{ID: "1", Title: "Shirt", Price: 100, Quantity: 2})
		require.NoError(t, err)
		require.Len(t, items, 1)

		items, err = store.AddItem(ctx, cart.LineItem{ID: "1", Price: 100, Quantity: 3})
		require.NoError(t, err)
		require.Len(t, items, 1)
		require.Equal(t, 5, items[0].Quantity)
		require.Equal(t, 500.0, cart.Total(items))

		// Fresh store over the same backend sees the persisted blob.
		items, err = cart.NewStore(kv.Namespaced(blobs, "it-cart")).Items(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)
		require.Equal(t, "Shirt", items[0].Title)
	})

	t.Run("accounts round-trip", func(t *testing.T) {
		store := account.NewStore(kv.Namespaced(blobs, "it-users"))

		require.NoError(t, store.Register(ctx, "Alice", "p1"))
		require.ErrorIs(t, store.Register(ctx, "alice", "p2"), account.ErrAlreadyExists)

		acc, err := store.Authenticate(ctx, "ALICE", "p1")
		require.NoError(t, err)
		require.Equal(t, "Alice", acc.Username)

		_, err = store.Authenticate(ctx, "alice", "P1")
		require.ErrorIs(t, err, account.ErrNoMatch)
	})

	t.Run("corrupt blob degrades to empty", func(t *testing.T) {
		require.NoError(t, blobs.Set(ctx, "it-corrupt:"+cart.StorageKey, "{not json"))

		items, err := cart.NewStore(kv.Namespaced(blobs, "it-corrupt")).Items(ctx)
		require.NoError(t, err)
		require.Empty(t, items)
	})
}

func startRedis(ctx context.Context, t *testing.T) (testcontainers.Container, string) {
	t.Helper()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)

	return container, fmt.Sprintf("%s:%s", host, mappedPort.Port())
}

func terminateContainer(t *testing.T, c testcontainers.Container) {
	t.Helper()
	if err := c.Terminate(context.Background()); err != nil {
		t.Logf("terminate container: %v", err)
	}
}
