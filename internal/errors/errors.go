package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// ErrorCode identifies the kind of a duelist error.
type ErrorCode string

const (
	ErrFileNotFound    ErrorCode = "FILE_NOT_FOUND"
	ErrMalformedRecord ErrorCode = "MALFORMED_RECORD"
	ErrInvalidCategory ErrorCode = "INVALID_CATEGORY"
	ErrEmptyDataset    ErrorCode = "EMPTY_DATASET"
	ErrInvalidRequest  ErrorCode = "INVALID_REQUEST"
	ErrInternal        ErrorCode = "INTERNAL"
)

// CardError represents a structured error with code, message and details.
type CardError struct {
	Code    ErrorCode
	Message string
	Details map[string]any

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *CardError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *CardError) Unwrap() error {
	return e.Err
}

// NewFileNotFound creates an error for a dataset or decklist file that does not exist.
func NewFileNotFound(path string) *CardError {
	return &CardError{
		Code:    ErrFileNotFound,
		Message: fmt.Sprintf("file not found: %s", path),
		Details: map[string]any{"path": path},
	}
}

// NewMalformedRecord creates an error for a dataset row that cannot be turned into a card.
// row is the 1-based data row, line the 1-based line in the file (header included).
func NewMalformedRecord(row, line int, reason string) *CardError {
	return &CardError{
		Code:    ErrMalformedRecord,
		Message: fmt.Sprintf("row %d (line %d): %s", row, line, reason),
		Details: map[string]any{"row": row, "line": line, "reason": reason},
	}
}

// NewInvalidCategory creates an error for an unrecognized search category.
func NewInvalidCategory(name string, valid []string) *CardError {
	return &CardError{
		Code:    ErrInvalidCategory,
		Message: fmt.Sprintf("unknown category %q (valid: %s)", name, strings.Join(valid, ", ")),
		Details: map[string]any{"category": name, "valid": valid},
	}
}

// NewEmptyDataset creates an error for statistics requested over zero records.
func NewEmptyDataset() *CardError {
	return &CardError{
		Code:    ErrEmptyDataset,
		Message: "statistics require at least one card",
	}
}

// NewInvalidRequest creates an error for invalid caller input.
func NewInvalidRequest(msg string) *CardError {
	return &CardError{
		Code:    ErrInvalidRequest,
		Message: msg,
	}
}

// NewInternal wraps an unexpected error.
func NewInternal(err error) *CardError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &CardError{
		Code:    ErrInternal,
		Message: msg,
		Err:     err,
	}
}

// Is checks if err, or any error it wraps, is a CardError with the given code.
func Is(err error, code ErrorCode) bool {
	var cErr *CardError
	if stderrors.As(err, &cErr) {
		return cErr.Code == code
	}
	return false
}

// Retryable reports whether the caller can recover by asking the user again.
func Retryable(err error) bool {
	return Is(err, ErrFileNotFound) || Is(err, ErrInvalidCategory)
}
