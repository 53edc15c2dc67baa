package client

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// FallbackMessage is shown when neither the error payload nor the
// transport gives us anything usable.
const FallbackMessage = "unexpected error"

// errorBody is the error envelope the store API emits. All fields are
// optional; Details wins when present and non-empty.
type errorBody struct {
	Message string   `json:"message"`
	Error   string   `json:"error"`
	Details []string `json:"details"`
}

// APIError is a failed remote call. Exactly one of the payload fields
// and TransportErr is meaningful; Message resolves them in the fixed
// priority order details > message > error > transport > fallback.
type APIError struct {
	StatusCode   int
	Details      []string
	Msg          string
	ErrField     string
	TransportErr error
}

func (e *APIError) Error() string {
	return e.Message()
}

func (e *APIError) Unwrap() error {
	return e.TransportErr
}

// Message extracts the human-readable description. The tier order is a
// hard contract; see the package tests.
func (e *APIError) Message() string {
	if len(e.Details) > 0 {
		return strings.Join(e.Details, "\n")
	}

	if e.Msg != "" {
		return e.Msg
	}

	if e.ErrField != "" {
		return e.ErrField
	}

	if e.TransportErr != nil && e.TransportErr.Error() != "" {
		return e.TransportErr.Error()
	}

	return FallbackMessage
}

func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return apiErr
	}

	var body errorBody
	if err := json.Unmarshal(data, &body); err != nil {
		return apiErr
	}

	apiErr.Details = body.Details
	apiErr.Msg = body.Message
	apiErr.ErrField = body.Error

	return apiErr
}
