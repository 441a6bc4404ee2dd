package middleware

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sugarrush/config"
	deliverycontext "sugarrush/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	e := echo.New()
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "generated when absent", incoming: ""},
		{name: "client id reused", incoming: "req-42", keep: true},
		{name: "oversized id replaced", incoming: strings.Repeat("x", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen string
			err := mw.Process(func(c echo.Context) error {
				seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return nil
			})(c)

			require.NoError(t, err)
			assert.NotEmpty(t, seen)
			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
			if tt.keep {
				assert.Equal(t, tt.incoming, seen)
			} else {
				assert.NotEqual(t, tt.incoming, seen)
			}
		})
	}
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	newMiddleware := func(debug bool) (*LoggerMiddleware, *bytes.Buffer) {
		buf := &bytes.Buffer{}
		cfg := &config.Config{}
		cfg.Env.Debug = debug

		return NewLoggerMiddleware(slog.New(slog.NewTextHandler(buf, nil)), cfg), buf
	}

	t.Run("success is quiet outside debug", func(t *testing.T) {
		mw, buf := newMiddleware(false)
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), httptest.NewRecorder())

		require.NoError(t, mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c))
		assert.Empty(t, buf.String())
	})

	t.Run("success logged in debug", func(t *testing.T) {
		mw, buf := newMiddleware(true)
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), httptest.NewRecorder())

		require.NoError(t, mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c))
		assert.Contains(t, buf.String(), "status=200")
		assert.Contains(t, buf.String(), "level=INFO")
	})

	t.Run("errors are rendered before logging", func(t *testing.T) {
		mw, buf := newMiddleware(false)
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/users", nil), rec)

		err := mw.Handle(func(echo.Context) error { return errors.New("boom") })(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), "status=500")
	})
}
