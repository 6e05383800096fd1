package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "shopscore/internal/delivery/context"
	domainerrors "shopscore/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func TestSuccess_Envelope(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusOK, map[string]int{"count": 2}))
	assert.JSONEq(t, `{"data":{"count":2},"meta":{"request_id":"req-1"}}`, rec.Body.String())
}

func TestHandleAppError_IncludesDetailsFor4xx(t *testing.T) {
	c, rec := newContext()

	err := domainerrors.ErrInvalidInput.WithDetails("hygiene must be between 1 and 5")
	require.NoError(t, HandleAppError(c, err))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INVALID_INPUT", body.Error.Code)
	assert.Equal(t, "hygiene must be between 1 and 5", body.Error.Details)
	assert.Equal(t, "req-1", body.Meta.RequestID)
}

func TestHandleAppError_HidesDetailsFor5xx(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, HandleAppError(c, domainerrors.ErrStoreBusy.WithDetails("lock held")))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.NotContains(t, rec.Body.String(), "lock held")
}

func TestHandleAppError_PassesThroughOtherErrors(t *testing.T) {
	c, rec := newContext()

	err := HandleAppError(c, errors.New("boom"))
	require.Error(t, err)
	assert.Empty(t, rec.Body.String())
}
