// Package response writes the JSON envelope every SugarRush endpoint answers with.
package response

import (
	"fmt"
	"net/http"

	domainerrors "sugarrush/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// InvalidInputCode is the business code for request bodies that cannot be bound.
const InvalidInputCode = "INVALID_INPUT"

// Response is the envelope shared by success and error answers.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo carries the business code, e.g. "TOKEN_BLACKLISTED".
type ErrorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}

// Success writes data with message, defaulting to "Success".
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Error writes an error envelope. An empty message falls back to the status text.
func Error(c echo.Context, statusCode int, errorCode, message, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// Fail writes appErr with its own status, code, message and details.
func Fail(c echo.Context, appErr domainerrors.AppError) error {
	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
}

// InvalidInput answers a body that echo could not bind, exposing only the binder's message.
func InvalidInput(c echo.Context, message string, cause error) error {
	details := ""
	var httpErr *echo.HTTPError
	if errors.As(cause, &httpErr) {
		details = fmt.Sprint(httpErr.Message)
	}

	return Error(c, http.StatusBadRequest, InvalidInputCode, message, details)
}
