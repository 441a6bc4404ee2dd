// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"sugarrush/config"
	"sugarrush/internal/domain/entity"
	"sugarrush/internal/domain/service"
	"sugarrush/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// sessionClaims is the JWT payload. Field names are part of the wire format.
type sessionClaims struct {
	GoogleAccessToken string `json:"googleAccessToken"`
	UserID            string `json:"userId"`
	Username          string `json:"username"`
	Email             string `json:"email"`
	Role              string `json:"role"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	ttl := time.Hour
	if cfg.Auth != nil && cfg.Auth.SessionTTL > 0 {
		ttl = cfg.Auth.SessionTTL
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Session),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue signs a token for claims, expiring ttl after now.
func (s *jwtService) Issue(claims entity.SessionClaims) (string, *entity.SessionClaims, error) {
	now := s.now().Truncate(time.Second)
	claims.IssuedAt = now
	claims.ExpiresAt = now.Add(s.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		GoogleAccessToken: claims.GoogleAccessToken,
		UserID:            claims.UserID,
		Username:          claims.Username,
		Email:             claims.Email,
		Role:              claims.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(claims.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(claims.ExpiresAt),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", nil, err
	}

	return signed, &claims, nil
}

// Verify checks the HS256 signature and the expiry of tokenString.
func (s *jwtService) Verify(tokenString string) (*entity.SessionClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)

	var claims sessionClaims
	if _, err := parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}); err != nil {
		return nil, errors.Join(service.ErrTokenInvalid, err)
	}

	return claims.toEntity(), nil
}

// Decode checks the HS256 signature of tokenString but not its expiry, so an
// expired session can still be read for logout.
func (s *jwtService) Decode(tokenString string) (*entity.SessionClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	var claims sessionClaims
	if _, err := parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}); err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, errors.Join(service.ErrTokenMalformed, err)
		}

		return nil, errors.Join(service.ErrTokenInvalid, err)
	}

	return claims.toEntity(), nil
}

func (c *sessionClaims) toEntity() *entity.SessionClaims {
	out := &entity.SessionClaims{
		GoogleAccessToken: c.GoogleAccessToken,
		UserID:            c.UserID,
		Username:          c.Username,
		Email:             c.Email,
		Role:              entity.Role(c.Role),
	}
	if c.IssuedAt != nil {
		out.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		out.ExpiresAt = c.ExpiresAt.Time
	}

	return out
}
