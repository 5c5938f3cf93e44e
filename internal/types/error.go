package types

import (
	"errors"
)

type ErrorCode string

func (e ErrorCode) String() string {
	return string(e)
}

const (
	InternalServiceError ErrorCode = "INTERNAL_SERVICE_ERROR"
	ValidationError      ErrorCode = "VALIDATION_ERROR"
	IllegalInput         ErrorCode = "ILLEGAL_INPUT"
	InvalidInput         ErrorCode = "INVALID_INPUT"
	DeserializationError ErrorCode = "DESERIALIZATION_ERROR"
	PermissionDenied     ErrorCode = "PERMISSION_DENIED"
	NotFound             ErrorCode = "NOT_FOUND"
	ConnectionError      ErrorCode = "CONNECTION_ERROR"
	RequestTimeout       ErrorCode = "REQUEST_TIMEOUT"
)

// Error represents an error with an application-specific error code.
type Error struct {
	Err       error
	ErrorCode ErrorCode
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new Error with the provided error code and underlying error.
// If the error code is empty, it defaults to INTERNAL_SERVICE_ERROR.
func NewError(errorCode ErrorCode, err error) *Error {
	if errorCode == "" {
		errorCode = InternalServiceError
	}
	return &Error{
		ErrorCode: errorCode,
		Err:       err,
	}
}

func NewErrorWithMsg(errorCode ErrorCode, msg string) *Error {
	return NewError(errorCode, errors.New(msg))
}

func NewInternalServiceError(err error) *Error {
	return &Error{
		ErrorCode: InternalServiceError,
		Err:       err,
	}
}

// AsError returns err as an *Error. Errors which do not carry a code are
// reported as INTERNAL_SERVICE_ERROR.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return NewInternalServiceError(err)
}

// IsErrorCode reports whether err, or any error it wraps, is an *Error with the given code.
func IsErrorCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.ErrorCode == code
	}
	return false
}
