package errors

import (
	"fmt"
)

// SeekError is the structured error type for lineseek.
// It provides context for error handling, logging, and caller presentation.
type SeekError struct {
	// Code is the unique error code (e.g., "ERR_501_NOT_READY").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is the error category (Config, Corpus, etc.).
	Category Category

	// Severity is the error severity level.
	Severity Severity

	// Details contains additional context as key-value pairs.
	Details map[string]string

	// Cause is the underlying error that caused this error.
	Cause error

	// Retryable indicates if the operation can be retried.
	Retryable bool
}

// Error implements the error interface.
func (e *SeekError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *SeekError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error by code.
// This enables errors.Is() to work with SeekError.
func (e *SeekError) Is(target error) bool {
	if t, ok := target.(*SeekError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithDetail adds a key-value detail to the error.
// Returns the error for method chaining.
func (e *SeekError) WithDetail(key, value string) *SeekError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// New creates a new SeekError with the given code and message.
// Category, severity, and retryable flag are derived from the code.
func New(code string, message string, cause error) *SeekError {
	return &SeekError{
		Code:      code,
		Message:   message,
		Category:  categoryFromCode(code),
		Severity:  severityFromCode(code),
		Cause:     cause,
		Retryable: isRetryableCode(code),
	}
}

// Wrap creates a SeekError from an existing error.
// The error's message becomes the SeekError message.
func Wrap(code string, err error) *SeekError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// NotReady creates the error returned for queries issued before bootstrap
// completes. It is always retryable.
func NotReady() *SeekError {
	return New(ErrCodeNotReady, "index is still being built, retry shortly", nil)
}

// ExtractionFailure creates a per-file extraction error. These are absorbed
// by the pipeline and never reach a search caller.
func ExtractionFailure(file string, cause error) *SeekError {
	return New(ErrCodeExtractionFailed, fmt.Sprintf("failed to extract %s", file), cause).
		WithDetail("file", file)
}

// QueryFailure creates an error for unexpected faults during ranked lookup
// or store access.
func QueryFailure(cause error) *SeekError {
	return New(ErrCodeQueryFailed, "query execution failed", cause)
}

// DuplicateDocument creates the insertion-conflict error for a repeated
// document id during bootstrap.
func DuplicateDocument(id string) *SeekError {
	return New(ErrCodeDuplicateDocument, fmt.Sprintf("document %q already indexed", id), nil).
		WithDetail("id", id)
}

// IsRetryable checks if an error is retryable.
// Returns true if the error is a SeekError with the Retryable flag set.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if se, ok := err.(*SeekError); ok {
		return se.Retryable
	}
	return false
}

// GetCode extracts the error code from a SeekError.
// Returns ErrCodeInternal for any other error type.
func GetCode(err error) string {
	if se, ok := err.(*SeekError); ok {
		return se.Code
	}
	return ErrCodeInternal
}

// GetCategory extracts the category from a SeekError.
// Returns empty string if not a SeekError.
func GetCategory(err error) Category {
	if se, ok := err.(*SeekError); ok {
		return se.Category
	}
	return ""
}
