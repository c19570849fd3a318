package ctct

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorDetail is one error descriptor from the API. Error responses carry an
// array of these.
type ErrorDetail struct {
	ErrorKey     string `json:"error_key,omitempty"`
	ErrorMessage string `json:"error_message"`
}

// APIError is the uniform failure value for every OAuth2 and resource call
// that received a non-2xx HTTP response. It keeps the exact request URL and
// the decoded error body for diagnostics.
type APIError struct {
	Message    string
	StatusCode int
	// URL is the full request URL that produced the failure.
	URL string
	// Errors holds the decoded error body. Always non-empty.
	Errors []ErrorDetail
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: status %d from %s", e.Message, e.StatusCode, e.URL)
}

// newAPIError builds an APIError from a raw error response body. The body is
// decoded as an array of error descriptors; a single JSON object is wrapped
// into a one-element slice. A body that is not valid JSON is kept verbatim
// as the message of a single ErrorDetail, so Errors is never empty.
func newAPIError(message string, statusCode int, url string, body []byte) *APIError {
	apiErr := &APIError{
		Message:    message,
		StatusCode: statusCode,
		URL:        url,
	}

	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		apiErr.Errors = []ErrorDetail{{ErrorMessage: fmt.Sprintf("http status %d", statusCode)}}
		return apiErr
	}

	var details []ErrorDetail
	if err := json.Unmarshal(body, &details); err == nil && len(details) > 0 {
		apiErr.Errors = details
		return apiErr
	}

	var single ErrorDetail
	if err := json.Unmarshal(body, &single); err == nil && (single.ErrorKey != "" || single.ErrorMessage != "") {
		apiErr.Errors = []ErrorDetail{single}
		return apiErr
	}

	apiErr.Errors = []ErrorDetail{{ErrorMessage: trimmed}}
	return apiErr
}
