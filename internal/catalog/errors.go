package catalog

import (
	"errors"
	"fmt"
	"net/http"
)

// UnexpectedMessage is reported for transport failures and unreadable responses.
const UnexpectedMessage = "Unexpected error"

// Error is a failed remote call: either the server's {code, message} envelope,
// or a transport failure normalized to the same shape.
type Error struct {
	Code    int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("catalog error %d: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("catalog error %d: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func unexpected(err error) *Error {
	return &Error{Code: http.StatusInternalServerError, Message: UnexpectedMessage, Err: err}
}

// AsError reports whether err is, or wraps, a remote catalog failure.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsNotFound reports whether err is a remote 404.
func IsNotFound(err error) bool {
	e, ok := AsError(err)
	return ok && e.Code == http.StatusNotFound
}

// ValidationError is a local, pre-submission failure. It never reaches the server.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// IsValidation reports whether err is a local validation failure.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
