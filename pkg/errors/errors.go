package errors

import "errors"

// Sentinels for the error taxonomy of the gateway.
var (
	// ErrValidation marks caller mistakes that map to 4xx responses.
	ErrValidation = errors.New("validation error")
	// ErrConfiguration marks missing process configuration discovered at
	// request time, mapped to 5xx responses.
	ErrConfiguration = errors.New("configuration error")
	// ErrUnavailable marks a downstream dependency that cannot be reached.
	ErrUnavailable = errors.New("service unavailable")
)

// Is reports whether err is one of the sentinels.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Wrap adds context to an error.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return errors.Join(errors.New(message), err)
}
