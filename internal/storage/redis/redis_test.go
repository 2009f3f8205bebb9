package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/fage2e/internal/config"
	"github.com/cory-johannsen/fage2e/internal/storage"
	"github.com/cory-johannsen/fage2e/internal/storage/redis"
	"github.com/cory-johannsen/fage2e/internal/storage/storagetest"
)

func newStore(t *testing.T, ttl time.Duration) (*redis.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := redis.NewClient(config.RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return redis.New(client, ttl), mr
}

func TestStore(t *testing.T) {
	s, _ := newStore(t, 0)
	storagetest.Run(t, s)
}

func TestStore_KeyPrefix(t *testing.T) {
	s, mr := newStore(t, 0)
	require.NoError(t, s.Set(context.Background(), "abc", []byte("blob")))

	got, err := mr.Get("fage:snapshot:abc")
	require.NoError(t, err)
	assert.Equal(t, "blob", got)
}

func TestStore_TTL(t *testing.T) {
	s, mr := newStore(t, time.Hour)
	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "abc", []byte("blob")))
	assert.Equal(t, time.Hour, mr.TTL("fage:snapshot:abc"))

	mr.FastForward(2 * time.Hour)
	_, err := s.Get(ctx, "abc")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestNewClient_RequiresAddr(t *testing.T) {
	_, err := redis.NewClient(config.RedisConfig{})
	assert.Error(t, err)
}
