// Package errors provides standardized error handling for BPMN workflow integration.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeInvalidAssessmentData      ErrorCode = "INVALID_ASSESSMENT_DATA"
	ErrCodeAssessmentValidationFailed ErrorCode = "ASSESSMENT_VALIDATION_FAILED"

	ErrCodeCatalogLoadFailed     ErrorCode = "CATALOG_LOAD_FAILED"
	ErrCodeCatalogSourceNotFound ErrorCode = "CATALOG_SOURCE_NOT_FOUND"

	ErrCodeRecordSubmissionFailed ErrorCode = "RECORD_SUBMISSION_FAILED"
	ErrCodeSubmissionInFlight     ErrorCode = "SUBMISSION_IN_FLIGHT"

	ErrCodeNotificationSendFailed ErrorCode = "NOTIFICATION_SEND_FAILED"

	ErrCodeDatabase    ErrorCode = "DATABASE_ERROR"
	ErrCodeCache       ErrorCode = "CACHE_ERROR"
	ErrCodeExternalAPI ErrorCode = "EXTERNAL_API_ERROR"
	ErrCodeTimeout     ErrorCode = "TIMEOUT"
	ErrCodeInternal    ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`

	cause error
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

func (e *StandardError) Unwrap() error {
	return e.cause
}

// WithMetadata attaches a key to the error's metadata and returns the error.
func (e *StandardError) WithMetadata(key string, value interface{}) *StandardError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

func newError(code ErrorCode, message string, cause error, retryable bool) *StandardError {
	e := &StandardError{
		Code:      code,
		Message:   message,
		Retryable: retryable,
		Timestamp: time.Now().UTC(),
		cause:     cause,
	}
	if cause != nil {
		e.Details = cause.Error()
	}
	return e
}

// ==========================
// 2. BPMN Error Integration
// ==========================

// BPMNError represents an error that can be thrown to the Camunda workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting Camunda job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}

	for k, v := range e.ErrorVariables {
		vars[k] = v
	}

	return vars
}

// ==========================
// 3. Error Constructors
// ==========================

// NewInvalidAssessmentDataError is thrown when the responses map is missing or malformed.
func NewInvalidAssessmentDataError(details string) *StandardError {
	e := newError(ErrCodeInvalidAssessmentData, "Assessment data is invalid", nil, false)
	e.Details = details
	return e
}

// NewAssessmentValidationFailedError reports company or schema violations.
func NewAssessmentValidationFailedError(details string) *StandardError {
	e := newError(ErrCodeAssessmentValidationFailed, "Assessment failed validation", nil, false)
	e.Details = details
	return e
}

func NewCatalogLoadFailedError(source string, err error) *StandardError {
	return newError(ErrCodeCatalogLoadFailed, fmt.Sprintf("Failed to load question catalog from %s", source), err, true).
		WithMetadata("source", source)
}

func NewCatalogSourceNotFoundError(source string) *StandardError {
	e := newError(ErrCodeCatalogSourceNotFound, "Unknown question catalog source", nil, false)
	e.Details = source
	return e
}

func NewRecordSubmissionFailedError(err error) *StandardError {
	return newError(ErrCodeRecordSubmissionFailed, "Failed to submit assessment record", err, true)
}

func NewSubmissionInFlightError(sessionID string) *StandardError {
	e := newError(ErrCodeSubmissionInFlight, "Assessment submission already in progress", nil, false)
	e.Details = sessionID
	return e
}

func NewNotificationSendFailedError(channel string, err error) *StandardError {
	return newError(ErrCodeNotificationSendFailed, fmt.Sprintf("Failed to send %s notification", channel), err, true).
		WithMetadata("channel", channel)
}

func NewDatabaseError(operation string, err error) *StandardError {
	return newError(ErrCodeDatabase, fmt.Sprintf("Database %s failed", operation), err, true)
}

func NewCacheError(operation string, err error) *StandardError {
	return newError(ErrCodeCache, fmt.Sprintf("Cache %s failed", operation), err, true)
}

func NewExternalAPIError(service string, err error) *StandardError {
	return newError(ErrCodeExternalAPI, fmt.Sprintf("External service '%s' error", service), err, true)
}

func NewTimeoutError(service string, err error) *StandardError {
	return newError(ErrCodeTimeout, fmt.Sprintf("Service '%s' timeout", service), err, true)
}

func NewInternalError(err error) *StandardError {
	return newError(ErrCodeInternal, "Unexpected error", err, false)
}

// ==========================
// 4. Error Conversion to BPMN
// ==========================

// BPMNErrorMapping maps internal error codes to the BPMN error codes modelled
// on boundary events. Codes are identical except where a process catches a
// broader event.
var BPMNErrorMapping = map[ErrorCode]string{
	ErrCodeInvalidAssessmentData:      "INVALID_ASSESSMENT_DATA",
	ErrCodeAssessmentValidationFailed: "INVALID_ASSESSMENT_DATA",
	ErrCodeCatalogLoadFailed:          "CATALOG_LOAD_FAILED",
	ErrCodeCatalogSourceNotFound:      "CATALOG_LOAD_FAILED",
	ErrCodeRecordSubmissionFailed:     "RECORD_SUBMISSION_FAILED",
	ErrCodeSubmissionInFlight:         "SUBMISSION_IN_FLIGHT",
	ErrCodeNotificationSendFailed:     "NOTIFICATION_SEND_FAILED",
	ErrCodeDatabase:                   "DATABASE_ERROR",
	ErrCodeCache:                      "CACHE_ERROR",
	ErrCodeExternalAPI:                "EXTERNAL_API_ERROR",
	ErrCodeTimeout:                    "TIMEOUT",
	ErrCodeInternal:                   "INTERNAL_ERROR",
}

// GetRetryCount returns the recommended retry count for a code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeCatalogLoadFailed,
		ErrCodeRecordSubmissionFailed,
		ErrCodeNotificationSendFailed,
		ErrCodeDatabase,
		ErrCodeExternalAPI:
		return 3

	case ErrCodeTimeout,
		ErrCodeCache:
		return 2

	default:
		return 0 // Business errors: no retry
	}
}

// ConvertToBPMNError converts a StandardError to a BPMNError for Camunda.
func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	bpmnCode, exists := BPMNErrorMapping[stdErr.Code]
	if !exists {
		bpmnCode = string(stdErr.Code)
	}

	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	vars := map[string]interface{}{
		"originalErrorCode": string(stdErr.Code),
		"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
	}
	for k, v := range stdErr.Metadata {
		vars[k] = v
	}

	return &BPMNError{
		Code:           bpmnCode,
		Message:        stdErr.Message,
		Details:        stdErr.Details,
		Retryable:      stdErr.Retryable,
		Retries:        retries,
		ErrorVariables: vars,
	}
}

// ==========================
// 5. Utility Functions
// ==========================

// AsStandardError finds a StandardError anywhere in err's chain.
func AsStandardError(err error) (*StandardError, bool) {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr, true
	}
	return nil, false
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "ASSESSMENT"):
		return "VALIDATION"
	case strings.Contains(codeStr, "CATALOG"):
		return "CATALOG"
	case strings.Contains(codeStr, "SUBMISSION") || strings.Contains(codeStr, "DATABASE") || strings.Contains(codeStr, "CACHE"):
		return "STORAGE"
	case strings.Contains(codeStr, "NOTIFICATION"):
		return "NOTIFICATION"
	case strings.Contains(codeStr, "EXTERNAL") || strings.Contains(codeStr, "TIMEOUT"):
		return "INTEGRATION"
	default:
		return "OTHER"
	}
}
