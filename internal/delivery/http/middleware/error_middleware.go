package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "sugarrush/internal/delivery/context"
	"sugarrush/internal/delivery/http/response"
	domainerrors "sugarrush/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.Any("error", err),
				slog.String("code", appErr.ErrorCode()),
				slog.String("path", c.Request().URL.Path),
			)
		}
		m.write(c, logger, response.Fail(c, appErr))

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if s, ok := httpErr.Message.(string); ok && s != "" {
			message = s
		} else if httpErr.Message != nil {
			message = fmt.Sprint(httpErr.Message)
		}
		m.write(c, logger, response.Error(c, httpErr.Code, "HTTP_ERROR", message, ""))

		return
	}

	// Unknown errors are logged and answered without the cause.
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	m.write(c, logger, response.Fail(c, domainerrors.ErrInternalError))
}

func (m *ErrorMiddleware) write(c echo.Context, logger *slog.Logger, err error) {
	if err != nil {
		logger.Error("Failed to write error response", slog.Any("error", err), slog.String("path", c.Request().URL.Path))
	}
}
