package errors

import (
	"errors"
)

// AppError is the error currency of the client. Code classifies the
// failure for the UI; Message is what gets shown to the operator.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

const (
	ErrCodeValidation = "VALIDATION_ERROR"
	ErrCodeNotFound   = "NOT_FOUND"
	ErrCodeAPI        = "API_ERROR"
	ErrCodeTransport  = "TRANSPORT_ERROR"
	ErrCodeInternal   = "INTERNAL_ERROR"
)

// ValidationError marks a local, pre-network rejection. No request was
// issued and local state is untouched.
func ValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, message)
}

func NotFoundError(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message)
}

// APIError wraps a non-2xx response from the store API.
func APIError(message string) *AppError {
	return NewAppError(ErrCodeAPI, message)
}

// TransportError covers failures below HTTP: DNS, refused connections,
// timeouts.
func TransportError(message string) *AppError {
	return NewAppError(ErrCodeTransport, message)
}

func InternalError(message string) *AppError {
	return NewAppError(ErrCodeInternal, message)
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}
