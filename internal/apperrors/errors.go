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

// ErrForbidden indicates the user is not allowed to perform the action in the workplace.
var ErrForbidden = errors.New("forbidden")

// ErrPrecondition indicates an operation was attempted from a state that does not allow it,
// e.g. closing a period when none is open. No state is changed when it is returned.
var ErrPrecondition = errors.New("precondition failed")

// ErrConfiguration indicates stored settings are incomplete for the requested computation.
var ErrConfiguration = errors.New("configuration error")

// ErrPeriodClosed indicates a write touched a record dated inside a closed period.
var ErrPeriodClosed = errors.New("period is closed")

// AppError carries an HTTP-ish status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError builds an AppError with the given status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError wraps ErrNotFound with a message.
func NewNotFoundError(message string) error {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// NewConflictError wraps ErrDuplicate with a message.
func NewConflictError(message string) error {
	return &AppError{Code: 409, Message: message, Err: ErrDuplicate}
}

// NewValidationFailedError wraps ErrValidation with a message.
func NewValidationFailedError(message string) error {
	return &AppError{Code: 400, Message: message, Err: ErrValidation}
}

// NewPreconditionError wraps ErrPrecondition with a message.
func NewPreconditionError(message string) error {
	return &AppError{Code: 409, Message: message, Err: ErrPrecondition}
}

// NewConfigurationError wraps ErrConfiguration with a message.
func NewConfigurationError(message string) error {
	return &AppError{Code: 422, Message: message, Err: ErrConfiguration}
}
