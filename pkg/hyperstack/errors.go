package hyperstack

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned by New when no API key could be resolved
// from the explicit parameter or the HYPERSTACK_KEY environment variable.
var ErrMissingAPIKey = errors.New("hyperstack: API key is required (pass it explicitly or set HYPERSTACK_KEY)")

// InvalidArgumentError is returned when a request parameter fails
// validation. It is always raised before any network activity and is
// never retryable.
type InvalidArgumentError struct {
	// Field is the name of the offending parameter, e.g. "name" or "count".
	Field string

	// Reason is a human-readable explanation of the failure.
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("hyperstack: invalid %s: %s", e.Field, e.Reason)
}

// invalidArg builds an InvalidArgumentError for the given field.
func invalidArg(field, format string, args ...any) error {
	return &InvalidArgumentError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// IsInvalidArgument reports whether err (or any error it wraps) is an
// InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	var invalid *InvalidArgumentError
	return errors.As(err, &invalid)
}

// APIError represents a non-success response from the Hyperstack API.
// The response body is carried through unmodified.
type APIError struct {
	StatusCode int
	Status     string
	Method     string
	Path       string
	Body       string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("hyperstack: %s %s failed: %s: %s", e.Method, e.Path, e.Status, e.Body)
	}
	return fmt.Sprintf("hyperstack: %s %s failed: %s", e.Method, e.Path, e.Status)
}
