package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "sugarrush/internal/delivery/context"
	"sugarrush/internal/domain/entity"
	domainerrors "sugarrush/internal/domain/errors"
	"sugarrush/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware provides middleware for session authentication and role authorization.
type AuthMiddleware struct {
	sessions usecase.SessionUsecase
	metrics  usecase.AuthMetrics
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessions usecase.SessionUsecase, metrics usecase.AuthMetrics, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
		metrics:  metrics,
		logger:   logger,
	}
}

// Authenticate rejects requests without a valid, non-revoked session token and
// attaches the session for downstream handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			m.metrics.Verification(usecase.VerifyMissing)

			return domainerrors.ErrAuthorizationMissing
		}

		rawToken := BearerToken(header)
		if rawToken == "" {
			m.metrics.Verification(usecase.VerifyInvalid)

			return domainerrors.ErrInvalidToken
		}

		claims, err := m.sessions.Verify(c.Request().Context(), rawToken)
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetSession(c, deliverycontext.NewSession(claims, rawToken))

		return next(c)
	}
}

// IdentifySession attaches the session of any token this service signed, including
// expired and revoked ones. A request without a token proceeds without a session.
// Forged or unreadable tokens are rejected.
func (m *AuthMiddleware) IdentifySession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		rawToken := BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if rawToken == "" {
			return next(c)
		}

		claims, err := m.sessions.Identify(rawToken)
		if err != nil {
			m.metrics.Verification(usecase.VerifyInvalid)
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Info("Rejected unverifiable session token", slog.Any("error", err))

			return errors.WithStack(err)
		}

		deliverycontext.SetSession(c, deliverycontext.NewSession(claims, rawToken))

		return next(c)
	}
}

// RequireRoles is a middleware factory that lets admins and the listed roles through.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRoles(allowed entity.Roles) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := deliverycontext.GetSession(c)
			if !ok || !allowed.Allows(session.Role) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// BearerToken returns the second whitespace-separated field of an Authorization header.
func BearerToken(header string) string {
	fields := strings.Fields(header)
	if len(fields) < 2 {
		return ""
	}

	return fields[1]
}
