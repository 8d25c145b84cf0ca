package watercrawl

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two caller-actionable failure kinds. Everything
// else surfaces as an *APIError or a wrapped transport error.
var (
	// ErrInvalidAPIKey is returned when the service rejects the API key.
	ErrInvalidAPIKey = errors.New("watercrawl: invalid API key")
	// ErrValidation is returned when the service rejects the request fields.
	ErrValidation = errors.New("watercrawl: invalid request")
)

// APIError is a non-2xx response that is neither an auth nor a validation
// failure.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("watercrawl: API error (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("watercrawl: API error (status %d): %s", e.StatusCode, e.Body)
}

// IsNotFound reports whether err is an APIError with status 404. The provider
// uses this to distinguish a wrong base URL from a wrong key.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}
