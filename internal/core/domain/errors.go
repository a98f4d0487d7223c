package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthExpired marks vendor responses that reject the access token as
	// expired or invalid. Callers surface it as HTTP 401 with tokenExpired set.
	ErrAuthExpired = errors.New("access token expired or invalid")

	// ErrUnsupported is returned by platforms that do not implement an
	// optional capability (e.g. creative upload outside Meta).
	ErrUnsupported = errors.New("operation not supported by platform")
)

// ValidationError reports missing or malformed request input. It always maps
// to HTTP 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError builds a ValidationError from a format string.
func NewValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ConfigurationError reports a missing credential or setting. Setting names
// the header or environment variable the user has to provide.
type ConfigurationError struct {
	Setting string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("missing configuration: %s", e.Setting)
}

// UpstreamError is a non-2xx or vendor-reported failure. Err is set to
// ErrAuthExpired when the vendor code identifies an invalid token.
type UpstreamError struct {
	Vendor  string
	Status  int
	Code    int
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.Code != 0:
		return fmt.Sprintf("%s [%d]: %s", e.Vendor, e.Code, e.Message)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Vendor, e.Message)
	default:
		return fmt.Sprintf("%s %d", e.Vendor, e.Status)
	}
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// IsAuthExpired reports whether err carries ErrAuthExpired anywhere in its chain.
func IsAuthExpired(err error) bool {
	return errors.Is(err, ErrAuthExpired)
}
