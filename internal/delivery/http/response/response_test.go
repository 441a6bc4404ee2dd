package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "sugarrush/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(t *testing.T, write func(c echo.Context) error) (int, Response) {
	t.Helper()

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, write(c))

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body
}

func TestSuccess_DefaultsMessage(t *testing.T) {
	status, body := record(t, func(c echo.Context) error {
		return Success(c, http.StatusOK, map[string]string{"status": "ok"}, "")
	})

	assert.Equal(t, http.StatusOK, status)
	assert.True(t, body.Success)
	assert.Equal(t, "Success", body.Message)
	assert.Nil(t, body.Error)
}

func TestError_FallsBackToStatusText(t *testing.T) {
	status, body := record(t, func(c echo.Context) error {
		return Error(c, http.StatusNotFound, "USER_NOT_FOUND", "", "")
	})

	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, body.Success)
	assert.Equal(t, "Not Found", body.Message)
	require.NotNil(t, body.Error)
	assert.Equal(t, "USER_NOT_FOUND", body.Error.Code)
}

func TestFail_UsesAppErrorFields(t *testing.T) {
	status, body := record(t, func(c echo.Context) error {
		return Fail(c, domainerrors.ErrValidationFailed.WithDetails("phone_number: us_phone"))
	})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, domainerrors.ErrValidationFailed.Message(), body.Message)
	require.NotNil(t, body.Error)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), body.Error.Code)
	assert.Equal(t, "phone_number: us_phone", body.Error.Details)
}

func TestInvalidInput_CarriesBinderMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/users/1", strings.NewReader("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := echo.New().NewContext(req, rec)

	var target struct {
		PreferredName string `json:"preferred_name"`
	}
	bindErr := c.Bind(&target)
	require.Error(t, bindErr)

	require.NoError(t, InvalidInput(c, "Invalid user update input", bindErr))

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid user update input", body.Message)
	require.NotNil(t, body.Error)
	assert.Equal(t, InvalidInputCode, body.Error.Code)
	assert.NotEmpty(t, body.Error.Details)
}
