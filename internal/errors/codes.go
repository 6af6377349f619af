// Package errors provides structured error handling for lineseek.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: Configuration errors
//   - 2XX: Corpus and extraction errors
//   - 4XX: Query validation errors
//   - 5XX: Internal and lifecycle errors
package errors

// Category defines error categories for classification.
type Category string

const (
	// CategoryConfig indicates configuration-related errors.
	CategoryConfig Category = "CONFIG"
	// CategoryCorpus indicates corpus discovery and extraction errors.
	CategoryCorpus Category = "CORPUS"
	// CategoryValidation indicates query validation errors.
	CategoryValidation Category = "VALIDATION"
	// CategoryInternal indicates unexpected internal errors.
	CategoryInternal Category = "INTERNAL"
)

// Severity defines error severity levels.
type Severity string

const (
	// SeverityFatal indicates unrecoverable error, must abort.
	SeverityFatal Severity = "FATAL"
	// SeverityError indicates operation failed but can continue.
	SeverityError Severity = "ERROR"
	// SeverityWarning indicates degraded operation, continuing.
	SeverityWarning Severity = "WARNING"
)

// Error codes organized by category.
const (
	// Config errors (100-199)
	ErrCodeConfigNotFound = "ERR_101_CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  = "ERR_102_CONFIG_INVALID"

	// Corpus errors (200-299)
	ErrCodeCorpusDirNotFound  = "ERR_201_CORPUS_DIR_NOT_FOUND"
	ErrCodeExtractionFailed   = "ERR_202_EXTRACTION_FAILED"
	ErrCodeDuplicateDocument  = "ERR_203_DUPLICATE_DOCUMENT"
	ErrCodeUnsupportedContent = "ERR_204_UNSUPPORTED_CONTENT"

	// Validation errors (400-499)
	ErrCodeQueryEmpty   = "ERR_401_QUERY_EMPTY"
	ErrCodeInvalidQuery = "ERR_402_INVALID_QUERY"

	// Internal errors (500-599)
	ErrCodeNotReady    = "ERR_501_NOT_READY"
	ErrCodeQueryFailed = "ERR_502_QUERY_FAILED"
	ErrCodeInternal    = "ERR_503_INTERNAL"
)

// categoryFromCode extracts category from error code.
func categoryFromCode(code string) Category {
	if len(code) < 7 {
		return CategoryInternal
	}

	switch code[4] {
	case '1':
		return CategoryConfig
	case '2':
		return CategoryCorpus
	case '4':
		return CategoryValidation
	default:
		return CategoryInternal
	}
}

// severityFromCode determines severity based on error code.
func severityFromCode(code string) Severity {
	switch code {
	case ErrCodeCorpusDirNotFound, ErrCodeDuplicateDocument:
		return SeverityFatal
	}

	// Retryable errors are transient, the caller just came too early.
	if isRetryableCode(code) {
		return SeverityWarning
	}

	return SeverityError
}

// isRetryableCode checks if an error code represents a retryable error.
func isRetryableCode(code string) bool {
	return code == ErrCodeNotReady
}
