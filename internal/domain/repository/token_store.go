package repository

import (
	"context"
	"time"
)

// RevokedMarker is the value stored for a revoked token.
const RevokedMarker = "blacklisted"

// RevocationStore keeps revoked session tokens until they would have expired anyway.
type RevocationStore interface {
	// Revoke records token as revoked for ttl. ttl must be positive.
	Revoke(ctx context.Context, token string, ttl time.Duration) error

	// IsRevoked reports whether token has a live revocation record.
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// OAuthStateStore holds the single-use CSRF state values of in-flight OAuth logins.
type OAuthStateStore interface {
	// Save stores state for ttl.
	Save(ctx context.Context, state string, ttl time.Duration) error

	// Consume deletes state and reports whether it was present.
	Consume(ctx context.Context, state string) (bool, error)
}
