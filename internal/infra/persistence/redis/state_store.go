package redis

import (
	"context"
	"time"

	"sugarrush/config"
	"sugarrush/internal/domain/repository"
	"sugarrush/internal/errors"

	goredis "github.com/redis/go-redis/v9"
)

const defaultStatePrefix = "oauth:state:"

type stateStore struct {
	client goredis.UniversalClient
	prefix string
}

// NewStateStore creates the Redis-backed OAuthStateStore.
func NewStateStore(client goredis.UniversalClient, cfg *config.Config) repository.OAuthStateStore {
	prefix := defaultStatePrefix
	if cfg.Redis != nil && cfg.Redis.StatePrefix != "" {
		prefix = cfg.Redis.StatePrefix
	}

	return &stateStore{client: client, prefix: prefix}
}

func (s *stateStore) Save(ctx context.Context, state string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.prefix+state, "1", ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to store oauth state")
	}

	return nil
}

// Consume uses GETDEL so a state can be redeemed once.
func (s *stateStore) Consume(ctx context.Context, state string) (bool, error) {
	err := s.client.GetDel(ctx, s.prefix+state).Err()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to consume oauth state")
	}

	return true, nil
}
