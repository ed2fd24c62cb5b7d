package xerrors

import (
	"errors"
	"fmt"
)

// Common reusable application errors
var (
	// Authentication
	ErrMissingToken      = errors.New("missing credential")
	ErrMalformedToken    = errors.New("malformed token")
	ErrUnknownSigningKey = errors.New("unable to find appropriate signing key")
	ErrInvalidToken      = errors.New("invalid credential")

	// Identity provider
	ErrUpstreamTimeout  = errors.New("identity provider timed out")
	ErrUpstreamRejected = errors.New("identity provider rejected the request")

	// Resources
	ErrNotFound     = errors.New("resource not found")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict: resource already exists")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal server error")
	ErrRateLimited  = errors.New("too many requests")
)

// Wrap adds context to an error (similar to fmt.Errorf("%w")).
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is allows checking whether an error is a specific sentinel error.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// IsAuthError reports whether err belongs to the authentication family,
// i.e. should surface as 401 rather than 500.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrMissingToken) ||
		errors.Is(err, ErrMalformedToken) ||
		errors.Is(err, ErrUnknownSigningKey) ||
		errors.Is(err, ErrInvalidToken)
}

// MessageOrDefault returns err.Error() or a fallback message if err is nil.
func MessageOrDefault(err error, fallback string) string {
	if err != nil {
		return err.Error()
	}
	return fallback
}
