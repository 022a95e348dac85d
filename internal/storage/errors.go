package storage

import (
	"errors"
	"fmt"
)

// UnavailableError marks a backend failure that is infrastructural rather
// than semantic: the connection refused, the host unreachable, the server
// rejecting our credentials. The failover layer absorbs these; every other
// error passes through untouched.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("backend unavailable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// Unavailable wraps err as an UnavailableError. Returns nil for a nil err.
func Unavailable(err error) error {
	if err == nil {
		return nil
	}
	return &UnavailableError{Err: err}
}

// IsUnavailable reports whether err is (or wraps) an UnavailableError
func IsUnavailable(err error) bool {
	var ue *UnavailableError
	return errors.As(err, &ue)
}
