package ctct

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAPIErrorArrayBody(t *testing.T) {
	body := []byte(`[{"error_key":"http.status.not_found","error_message":"The requested resource was not found."}]`)
	apiErr := newAPIError("GET /v2/contacts/1 failed", 404, "https://api.example.com/v2/contacts/1", body)

	assert.Equal(t, 404, apiErr.StatusCode)
	assert.Equal(t, "https://api.example.com/v2/contacts/1", apiErr.URL)
	require.Len(t, apiErr.Errors, 1)
	assert.Equal(t, "http.status.not_found", apiErr.Errors[0].ErrorKey)
	assert.Contains(t, apiErr.Error(), "status 404")
	assert.Contains(t, apiErr.Error(), "https://api.example.com/v2/contacts/1")
}

func TestNewAPIErrorMultipleDescriptors(t *testing.T) {
	body := []byte(`[{"error_key":"a","error_message":"first"},{"error_key":"b","error_message":"second"}]`)
	apiErr := newAPIError("POST failed", 400, "u", body)

	require.Len(t, apiErr.Errors, 2)
	assert.Equal(t, "first", apiErr.Errors[0].ErrorMessage)
	assert.Equal(t, "second", apiErr.Errors[1].ErrorMessage)
}

func TestNewAPIErrorSingleObjectBody(t *testing.T) {
	body := []byte(`{"error_key":"oauth.expired","error_message":"token expired"}`)
	apiErr := newAPIError("POST failed", 401, "u", body)

	require.Len(t, apiErr.Errors, 1)
	assert.Equal(t, "oauth.expired", apiErr.Errors[0].ErrorKey)
}

func TestNewAPIErrorNonJSONBody(t *testing.T) {
	// Not valid JSON: the raw text becomes the single error message.
	body := []byte("<html><body>Bad Gateway</body></html>")
	apiErr := newAPIError("GET failed", 502, "u", body)

	require.Len(t, apiErr.Errors, 1)
	assert.Equal(t, "<html><body>Bad Gateway</body></html>", apiErr.Errors[0].ErrorMessage)
}

func TestNewAPIErrorEmptyBody(t *testing.T) {
	apiErr := newAPIError("DELETE failed", 500, "u", nil)

	require.Len(t, apiErr.Errors, 1)
	assert.Equal(t, "http status 500", apiErr.Errors[0].ErrorMessage)
}
