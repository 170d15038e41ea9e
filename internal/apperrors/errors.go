package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the caller is not allowed to touch the resource at all.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates the resource changed underneath the caller (stale version).
var ErrConflict = errors.New("resource was modified concurrently")

// ErrIllegalTransition indicates the requested workflow move is not permitted
// from the entry's current state or for the caller's role.
var ErrIllegalTransition = errors.New("illegal transition")

// ErrAuditFailure indicates the audit trail could not be written; the
// mutation that preceded it was rolled back or compensated.
var ErrAuditFailure = errors.New("audit recording failed")

// ErrInternal indicates an unexpected failure in a lower layer.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-ish status code and the wrapped cause from the persistence layer.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError builds an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
