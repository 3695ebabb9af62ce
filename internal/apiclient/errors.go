package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error is a non-2xx answer from the remote API.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *Error) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

func (e *Error) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// ErrNotFound is returned when a 2xx answer carries no record.
var ErrNotFound = &Error{StatusCode: http.StatusNotFound, Message: "not found"}

func parseError(statusCode int, body []byte) error {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Message != "":
			return &Error{StatusCode: statusCode, Message: payload.Message}
		case payload.Error != "":
			return &Error{StatusCode: statusCode, Message: payload.Error}
		}
	}

	return &Error{StatusCode: statusCode}
}

func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func IsNotFound(err error) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.IsNotFound()
}

// UserMessage picks the text shown to the administrator: the server's message
// when it sent one, the fallback otherwise.
func UserMessage(err error, fallback string) string {
	if apiErr, ok := AsError(err); ok && strings.TrimSpace(apiErr.Message) != "" {
		return apiErr.Message
	}
	return fallback
}
