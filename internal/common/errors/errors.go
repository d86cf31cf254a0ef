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
	ErrCodeCatalogLoadFailed       ErrorCode = "CATALOG_LOAD_FAILED"
	ErrCodeCatalogValidationFailed ErrorCode = "CATALOG_VALIDATION_FAILED"
	ErrCodePlatformNotFound        ErrorCode = "PLATFORM_NOT_FOUND"

	ErrCodeNoMatchesFound      ErrorCode = "NO_MATCHES_FOUND"
	ErrCodeInvalidWizardAnswer ErrorCode = "INVALID_WIZARD_ANSWERS"

	ErrCodeWizardSessionNotFound    ErrorCode = "WIZARD_SESSION_NOT_FOUND"
	ErrCodeWizardSessionStoreFailed ErrorCode = "WIZARD_SESSION_STORE_FAILED"

	ErrCodeInvalidTCOInputs ErrorCode = "INVALID_TCO_INPUTS"

	ErrCodeInvalidMomentumWindow ErrorCode = "INVALID_MOMENTUM_WINDOW"

	ErrCodeJobInputValidationFailed ErrorCode = "JOB_INPUT_VALIDATION_FAILED"
	ErrCodeInputParsingFailed       ErrorCode = "INPUT_PARSING_FAILED"
	ErrCodeInternal                 ErrorCode = "INTERNAL_ERROR"

	ErrCodeTimeout           ErrorCode = "TIMEOUT_ERROR"
	ErrCodeBrokerUnavailable ErrorCode = "BROKER_UNAVAILABLE"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// AsStandardError unwraps err into a StandardError when one is in its chain.
func AsStandardError(err error) (*StandardError, bool) {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr, true
	}
	return nil, false
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code ErrorCode) bool {
	stdErr, ok := AsStandardError(err)
	return ok && stdErr.Code == code
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

// NewCatalogLoadFailedError creates a retryable error for an unreadable catalog source.
func NewCatalogLoadFailedError(source string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogLoadFailed,
		Message:   "Platform catalog could not be loaded",
		Details:   fmt.Sprintf("source: %s, error: %s", source, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogValidationFailedError creates a non-retryable schema error.
func NewCatalogValidationFailedError(problems []string) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogValidationFailed,
		Message:   "Platform catalog failed schema validation",
		Details:   strings.Join(problems, "; "),
		Retryable: false,
		Metadata:  map[string]interface{}{"problemCount": len(problems)},
		Timestamp: time.Now().UTC(),
	}
}

// NewFeatureCatalogLoadFailedError reports an unreadable feature release document.
func NewFeatureCatalogLoadFailedError(source string, err error) *StandardError {
	stdErr := NewCatalogLoadFailedError(source, err)
	stdErr.Message = "Feature catalog could not be loaded"
	stdErr.Metadata = map[string]interface{}{"catalog": "features"}
	return stdErr
}

// NewFeatureCatalogValidationFailedError reports a feature document rejected by its schema.
func NewFeatureCatalogValidationFailedError(problems []string) *StandardError {
	stdErr := NewCatalogValidationFailedError(problems)
	stdErr.Message = "Feature catalog failed schema validation"
	stdErr.Metadata["catalog"] = "features"
	return stdErr
}

// NewPlatformNotFoundError mirrors the read API's "Platform not found" reply.
func NewPlatformNotFoundError(platformID string) *StandardError {
	return &StandardError{
		Code:      ErrCodePlatformNotFound,
		Message:   "Platform not found",
		Details:   fmt.Sprintf("No platform found with ID: %s", platformID),
		Retryable: false,
		Metadata:  map[string]interface{}{"platformId": platformID},
		Timestamp: time.Now().UTC(),
	}
}

// NewNoMatchesFoundError is raised when every platform scores zero.
func NewNoMatchesFoundError(evaluated int) *StandardError {
	return &StandardError{
		Code:      ErrCodeNoMatchesFound,
		Message:   "No platforms match the given answers",
		Details:   fmt.Sprintf("evaluated: %d", evaluated),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidWizardAnswersError creates a non-retryable questionnaire error.
func NewInvalidWizardAnswersError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidWizardAnswer,
		Message:   "Wizard answers are invalid",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewWizardSessionNotFoundError covers expired and already consumed sessions.
func NewWizardSessionNotFoundError(sessionID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeWizardSessionNotFound,
		Message:   "Wizard session not found or already consumed",
		Details:   fmt.Sprintf("sessionId: %s", sessionID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewWizardSessionStoreFailedError creates a retryable storage error.
func NewWizardSessionStoreFailedError(operation string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeWizardSessionStoreFailed,
		Message:   "Wizard session storage error",
		Details:   fmt.Sprintf("operation: %s, error: %s", operation, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidTCOInputsError creates a non-retryable estimator input error.
func NewInvalidTCOInputsError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidTCOInputs,
		Message:   "TCO inputs are invalid",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidMomentumWindowError rejects a momentum window outside 1..maxDays.
func NewInvalidMomentumWindowError(value string, maxDays int) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidMomentumWindow,
		Message:   "Momentum window is invalid",
		Details:   fmt.Sprintf("days must be a whole number between 1 and %d, got %q", maxDays, value),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewJobInputValidationFailedError reports job variables rejected by the activity schema.
func NewJobInputValidationFailedError(taskType string, problems []string) *StandardError {
	return &StandardError{
		Code:      ErrCodeJobInputValidationFailed,
		Message:   "Input validation failed",
		Details:   fmt.Sprintf("taskType: %s, errors: %s", taskType, strings.Join(problems, "; ")),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInputParsingFailedError wraps undecodable job variables.
func NewInputParsingFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInputParsingFailed,
		Message:   "Failed to parse job variables",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// Generic constructors

func NewTimeoutError(service string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeTimeout,
		Message:   fmt.Sprintf("Service '%s' timeout", service),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewBrokerUnavailableError reports a transport failure talking to an external service.
func NewBrokerUnavailableError(service string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeBrokerUnavailable,
		Message:   fmt.Sprintf("Service '%s' unavailable", service),
		Details:   err.Error(),
		Retryable: true,
		Metadata:  map[string]interface{}{"service": service},
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 4. Error Conversion to BPMN
// ==========================

// BPMNErrorMapping maps internal error codes to the codes modelled on BPMN boundary events.
var BPMNErrorMapping = map[ErrorCode]string{
	ErrCodeCatalogLoadFailed:        "CATALOG_LOAD_FAILED",
	ErrCodeCatalogValidationFailed:  "CATALOG_VALIDATION_FAILED",
	ErrCodePlatformNotFound:         "PLATFORM_NOT_FOUND",
	ErrCodeNoMatchesFound:           "NO_MATCHES_FOUND",
	ErrCodeInvalidWizardAnswer:      "INVALID_WIZARD_ANSWERS",
	ErrCodeWizardSessionNotFound:    "WIZARD_SESSION_NOT_FOUND",
	ErrCodeWizardSessionStoreFailed: "WIZARD_SESSION_STORE_FAILED",
	ErrCodeInvalidTCOInputs:         "INVALID_TCO_INPUTS",
	ErrCodeJobInputValidationFailed: "VALIDATION_FAILED",
	ErrCodeInputParsingFailed:       "VALIDATION_FAILED",
}

// GetRetryCount returns the recommended retry count for a code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeCatalogLoadFailed,
		ErrCodeWizardSessionStoreFailed,
		ErrCodeBrokerUnavailable:
		return 3
	case ErrCodeTimeout:
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

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "CATALOG") || strings.Contains(codeStr, "PLATFORM"):
		return "CATALOG"
	case strings.Contains(codeStr, "WIZARD") || strings.Contains(codeStr, "MATCHES"):
		return "MATCHING"
	case strings.Contains(codeStr, "TCO"):
		return "TCO"
	case strings.Contains(codeStr, "TIMEOUT"):
		return "TIMEOUT"
	case strings.Contains(codeStr, "UNAVAILABLE"):
		return "TRANSPORT"
	case strings.Contains(codeStr, "INVALID") || strings.Contains(codeStr, "VALIDATION") || strings.Contains(codeStr, "PARSING"):
		return "VALIDATION"
	default:
		return "OTHER"
	}
}
