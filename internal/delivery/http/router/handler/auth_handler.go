package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "sugarrush/internal/delivery/context"
	"sugarrush/internal/delivery/http/middleware"
	"sugarrush/internal/delivery/http/response"
	domainerrors "sugarrush/internal/domain/errors"
	"sugarrush/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const logoutMessage = "User logged out successfully. JWT blacklisted and Google token revoked."

// AuthHandler serves the Google login flow and logout.
type AuthHandler struct {
	sessions usecase.SessionUsecase
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(sessions usecase.SessionUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		logger:   logger,
	}
}

// GoogleLogin handles initiating the Google Sign-In flow.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	output, err := h.sessions.BeginLogin(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	if c.QueryParam("redirect") == "true" {
		return c.Redirect(http.StatusTemporaryRedirect, output.URL)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"oauth_url":    output.URL,
		"redirect_url": "/auth/google?redirect=true",
	}, "Google OAuth URL generated successfully")
}

// GoogleCallback exchanges the authorization code and issues a session token.
func (h *AuthHandler) GoogleCallback(c echo.Context) error {
	output, err := h.sessions.CompleteLogin(c.Request().Context(), c.QueryParam("state"), c.QueryParam("code"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loginView{
		Token: output.Token,
		User: sessionUserView{
			Username: output.User.Username,
			Email:    output.User.Email,
			Role:     output.User.Role.String(),
		},
	}, "Login successful")
}

// Logout revokes the Google grant and blacklists the presented token.
// It sits behind IdentifySession, so expired or already revoked tokens still get here.
func (h *AuthHandler) Logout(c echo.Context) error {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return domainerrors.ErrLogoutAuthorizationMissing
	}

	input := usecase.LogoutInput{RawToken: middleware.BearerToken(header)}
	if session, ok := deliverycontext.GetSession(c); ok {
		input.GoogleAccessToken = session.GoogleAccessToken
	}

	output, err := h.sessions.Logout(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{
		"blacklisted":      output.Blacklisted,
		"upstream_revoked": output.UpstreamRevoked,
	}, logoutMessage)
}
