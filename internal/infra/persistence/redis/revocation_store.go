package redis

import (
	"context"
	"time"

	"sugarrush/internal/domain/repository"
	"sugarrush/internal/errors"

	goredis "github.com/redis/go-redis/v9"
)

// revocationStore keys records by the raw token string with no prefix.
type revocationStore struct {
	client goredis.UniversalClient
}

// NewRevocationStore creates the Redis-backed RevocationStore.
func NewRevocationStore(client goredis.UniversalClient) repository.RevocationStore {
	return &revocationStore{client: client}
}

// Revoke runs SET <token> blacklisted EX <seconds>.
func (s *revocationStore) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl < time.Second {
		return errors.Errorf("revocation ttl must be at least one second, got %s", ttl)
	}

	if err := s.client.Set(ctx, token, repository.RevokedMarker, ttl.Truncate(time.Second)).Err(); err != nil {
		return errors.Wrap(err, "failed to store revoked token")
	}

	return nil
}

// IsRevoked runs GET <token>; any stored value counts as revoked.
func (s *revocationStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	err := s.client.Get(ctx, token).Err()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to look up revoked token")
	}

	return true, nil
}
