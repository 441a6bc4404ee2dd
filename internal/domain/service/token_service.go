package service

import (
	"errors"

	"sugarrush/internal/domain/entity"
)

var (
	// ErrTokenInvalid covers bad signatures, wrong algorithms, malformed payloads and expired tokens.
	ErrTokenInvalid = errors.New("token invalid")

	// ErrTokenMalformed is returned by Decode when the token cannot be parsed at all.
	ErrTokenMalformed = errors.New("token malformed")
)

// TokenService signs and checks session tokens.
type TokenService interface {
	// Issue signs claims. IssuedAt and ExpiresAt are set by the service.
	Issue(claims entity.SessionClaims) (string, *entity.SessionClaims, error)

	// Verify checks the signature and expiry of token and returns its claims.
	Verify(token string) (*entity.SessionClaims, error)

	// Decode checks the signature of token but ignores its expiry.
	Decode(token string) (*entity.SessionClaims, error)
}
