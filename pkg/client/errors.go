package client

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is returned when the API answers with a non-2xx status. Message is
// the envelope message, falling back to the error field and then the status text.
type APIError struct {
	Status  int
	Message string
	Detail  string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error: status %d: %s: %s", e.Status, e.Message, e.Detail)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}

// IsNotFound reports whether err is an APIError carrying 404.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized reports whether err is an APIError carrying 401.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsConflict reports whether err is an APIError carrying 409.
func IsConflict(err error) bool {
	return hasStatus(err, http.StatusConflict)
}

func hasStatus(err error, status int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == status
	}
	return false
}

// IsForbidden reports whether err is an APIError carrying 403.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}
