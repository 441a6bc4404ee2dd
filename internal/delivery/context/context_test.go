package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sugarrush/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_RoundTripThroughEchoAndRequest(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := GetSession(c)
	assert.False(t, ok)

	exp := time.Date(2024, 5, 1, 13, 0, 0, 0, time.UTC)
	session := NewSession(&entity.SessionClaims{
		UserID:            "u1",
		Role:              entity.RoleDriver,
		Email:             "d@example.com",
		Username:          "Driver",
		GoogleAccessToken: "g",
		ExpiresAt:         exp,
	}, "raw")
	SetSession(c, session)

	got, ok := GetSession(c)
	require.True(t, ok)
	assert.Same(t, session, got)

	fromCtx, ok := SessionFromContext(c.Request().Context())
	require.True(t, ok)
	assert.Equal(t, "raw", fromCtx.RawToken)
	assert.Equal(t, entity.RoleDriver, fromCtx.Role)
	assert.Equal(t, exp, fromCtx.ExpiresAt)
}

func TestSessionFromContext_IgnoresNil(t *testing.T) {
	ctx := WithSession(context.Background(), nil)

	_, ok := SessionFromContext(ctx)
	assert.False(t, ok)
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.Default()
	scoped := slog.Default().With(slog.String("request_id", "r1"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestRequestID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.NotEmpty(t, GetRequestID(c))

	SetRequestID(c, "abc")
	assert.Equal(t, "abc", GetRequestID(c))
	assert.Equal(t, "abc", GetRequestIDFromContext(WithRequestID(context.Background(), "abc")))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}
