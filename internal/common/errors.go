package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	// ErrDecode marks an unreadable or corrupt source file.
	ErrDecode = errors.New("source file decode failed")
	// ErrPageOutOfRange marks a page request beyond the document length.
	ErrPageOutOfRange = errors.New("page out of range")
	// ErrExtraction marks a page whose model call failed after all retries.
	ErrExtraction = errors.New("extraction failed")
	// ErrStorage marks a connection, schema, or constraint failure.
	ErrStorage = errors.New("storage error")

	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
