package redis

import (
	"context"
	"testing"
	"time"

	"sugarrush/config"
	"sugarrush/internal/domain/repository"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, goredis.UniversalClient) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func TestRevocationStore_RevokeWritesMarkerWithTTL(t *testing.T) {
	mr, client := newTestClient(t)
	store := NewRevocationStore(client)
	ctx := context.Background()

	require.NoError(t, store.Revoke(ctx, "raw.jwt.token", 3599*time.Second+400*time.Millisecond))

	value, err := mr.Get("raw.jwt.token")
	require.NoError(t, err)
	assert.Equal(t, repository.RevokedMarker, value)
	assert.Equal(t, 3599*time.Second, mr.TTL("raw.jwt.token"))

	revoked, err := store.IsRevoked(ctx, "raw.jwt.token")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestRevocationStore_RecordExpires(t *testing.T) {
	mr, client := newTestClient(t)
	store := NewRevocationStore(client)
	ctx := context.Background()

	require.NoError(t, store.Revoke(ctx, "tok", 10*time.Second))
	mr.FastForward(11 * time.Second)

	revoked, err := store.IsRevoked(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRevocationStore_RejectsSubSecondTTL(t *testing.T) {
	mr, client := newTestClient(t)
	store := NewRevocationStore(client)

	assert.Error(t, store.Revoke(context.Background(), "tok", 500*time.Millisecond))
	assert.False(t, mr.Exists("tok"))
}

func TestRevocationStore_UnknownToken(t *testing.T) {
	_, client := newTestClient(t)

	revoked, err := NewRevocationStore(client).IsRevoked(context.Background(), "never-seen")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRevocationStore_StoreDown(t *testing.T) {
	mr, client := newTestClient(t)
	store := NewRevocationStore(client)
	mr.Close()

	_, err := store.IsRevoked(context.Background(), "tok")
	assert.Error(t, err)
	assert.Error(t, store.Revoke(context.Background(), "tok", time.Minute))
}

func TestStateStore_ConsumeOnce(t *testing.T) {
	mr, client := newTestClient(t)
	store := NewStateStore(client, &config.Config{Redis: &config.RedisConfig{StatePrefix: "test:state:"}})
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "abc", 10*time.Minute))
	assert.True(t, mr.Exists("test:state:abc"))
	assert.Equal(t, 10*time.Minute, mr.TTL("test:state:abc"))

	ok, err := store.Consume(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Consume(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStateStore_DefaultPrefixAndExpiry(t *testing.T) {
	mr, client := newTestClient(t)
	store := NewStateStore(client, &config.Config{})
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "xyz", time.Minute))
	assert.True(t, mr.Exists(defaultStatePrefix+"xyz"))

	mr.FastForward(2 * time.Minute)

	ok, err := store.Consume(ctx, "xyz")
	require.NoError(t, err)
	assert.False(t, ok)
}
