package inttest

import (
	"testing"

	"github.com/go-redis/redis"
	"github.com/orlangure/gnomock"
	gnomockRedis "github.com/orlangure/gnomock/preset/redis"
	"github.com/stretchr/testify/require"
)

// SetupRedis starts a throwaway redis container for listing cache tests and
// returns a client pointed at it.
func SetupRedis(t *testing.T) *redis.Client {
	container, err := gnomock.Start(gnomockRedis.Preset())
	require.NoError(t, err, "failed to start redis container")
	t.Cleanup(func() { require.NoError(t, gnomock.Stop(container), "failed to stop redis container") })

	return redis.NewClient(&redis.Options{
		Addr: container.DefaultAddress(),
	})
}
