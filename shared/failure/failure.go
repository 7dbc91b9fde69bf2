package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
// When built with Wrap it keeps the original error so errors.Is and errors.As reach it.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	cause   error
}

// Error returns the error message.
func (e *Failure) Error() string {
	return e.Message
}

// Unwrap returns the error the failure was built from, if any.
func (e *Failure) Unwrap() error {
	return e.cause
}

// Wrap returns a new Failure with the given code that keeps err as its cause.
func Wrap(code int, err error) error {
	if err == nil {
		return nil
	}

	return &Failure{
		Code:    code,
		Message: err.Error(),
		cause:   err,
	}
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	return Wrap(http.StatusBadRequest, err)
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	return Wrap(http.StatusInternalServerError, err)
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(err error) error {
	return Wrap(http.StatusNotFound, err)
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(err error) error {
	return Wrap(http.StatusConflict, err)
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
