package pkg

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	appErr := NewDomainError("BACKEND_UNAVAILABLE", "Could not save the process.", cause, http.StatusBadGateway).WithRetry()

	assert.ErrorIs(t, appErr, cause)
	assert.Contains(t, appErr.Error(), "BACKEND_UNAVAILABLE")

	raw, err := json.Marshal(appErr.ToHTTPError())
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":{"code":"BACKEND_UNAVAILABLE","message":"Could not save the process.","retryable":true}}`, string(raw))

	raw, err = json.Marshal(NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":{"code":"INVALID_REQUEST","message":"Invalid request"}}`, string(raw))
}
