package context

import (
	"context"
	"time"

	"sugarrush/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeySession is the key for storing the authenticated session.
const KeySession ContextKey = "session"

// Session is the authenticated caller attached by the auth middleware.
type Session struct {
	UserID            string
	Role              entity.Role
	Email             string
	Username          string
	GoogleAccessToken string
	ExpiresAt         time.Time
	RawToken          string
}

// NewSession builds a Session from verified claims and the token they came from.
func NewSession(claims *entity.SessionClaims, rawToken string) *Session {
	return &Session{
		UserID:            claims.UserID,
		Role:              claims.Role,
		Email:             claims.Email,
		Username:          claims.Username,
		GoogleAccessToken: claims.GoogleAccessToken,
		ExpiresAt:         claims.ExpiresAt,
		RawToken:          rawToken,
	}
}

// WithSession returns a new context carrying session.
func WithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, KeySession, session)
}

// SessionFromContext returns the session in ctx, if any.
func SessionFromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(KeySession).(*Session)

	return session, ok && session != nil
}

// SetSession attaches session to both the echo context and the request context.
func SetSession(c echo.Context, session *Session) {
	c.Set(string(KeySession), session)
	c.SetRequest(c.Request().WithContext(WithSession(c.Request().Context(), session)))
}

// GetSession returns the session attached to the request, if any.
func GetSession(c echo.Context) (*Session, bool) {
	if session, ok := c.Get(string(KeySession)).(*Session); ok && session != nil {
		return session, true
	}

	return SessionFromContext(c.Request().Context())
}
