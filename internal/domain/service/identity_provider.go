package service

import (
	"context"
	"errors"

	"sugarrush/internal/domain/entity"
)

// ErrExchangeFailed is returned when the authorization code cannot be turned into an identity.
var ErrExchangeFailed = errors.New("identity exchange failed")

// IdentityProvider is the OAuth provider users log in with.
type IdentityProvider interface {
	// AuthorizationURL returns the consent URL carrying state.
	AuthorizationURL(state string) string

	// Exchange trades an authorization code for the caller's identity.
	Exchange(ctx context.Context, code string) (*entity.ExternalIdentity, error)

	// Revoke invalidates an access token at the provider.
	Revoke(ctx context.Context, accessToken string) error
}
