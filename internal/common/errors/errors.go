// internal/common/errors/errors.go
package errors

import (
	"fmt"
	"strings"
	"time"
)

type ErrorCode string

const (
	ErrCodeUtteranceEmpty      ErrorCode = "UTTERANCE_EMPTY"
	ErrCodeIntentNotDetected   ErrorCode = "INTENT_NOT_DETECTED"
	ErrCodeIntentNotActionable ErrorCode = "INTENT_NOT_ACTIONABLE"
	ErrCodeUnsupportedIntent   ErrorCode = "UNSUPPORTED_INTENT"

	ErrCodeVenueNotFound     ErrorCode = "VENUE_NOT_FOUND"
	ErrCodeVenueDataInvalid  ErrorCode = "VENUE_DATA_INVALID"
	ErrCodeVenueLookupFailed ErrorCode = "VENUE_LOOKUP_FAILED"
	ErrCodeVenueCacheFailed  ErrorCode = "VENUE_CACHE_FAILED"

	ErrCodeChatBackendFailed  ErrorCode = "CHAT_BACKEND_FAILED"
	ErrCodeChatBackendTimeout ErrorCode = "CHAT_BACKEND_TIMEOUT"

	ErrCodeParseError       ErrorCode = "PARSE_ERROR"
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeInternalError    ErrorCode = "INTERNAL_ERROR"
)

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

func NewUtteranceEmptyError() *StandardError {
	return &StandardError{
		Code:      ErrCodeUtteranceEmpty,
		Message:   "Utterance is empty",
		Details:   "question must contain non-whitespace text",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewIntentNotDetectedError(utterance string) *StandardError {
	return &StandardError{
		Code:      ErrCodeIntentNotDetected,
		Message:   "No intent keyword matched",
		Details:   fmt.Sprintf("utterance: %q", utterance),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewIntentNotActionableError(intentType string, confidence float64) *StandardError {
	return &StandardError{
		Code:      ErrCodeIntentNotActionable,
		Message:   "Intent lacks the slots or confidence needed to dispatch",
		Details:   fmt.Sprintf("intent: %s, confidence: %.1f", intentType, confidence),
		Retryable: false,
		Metadata:  map[string]interface{}{"intent": intentType, "confidence": confidence},
		Timestamp: time.Now().UTC(),
	}
}

func NewUnsupportedIntentError(intentType string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnsupportedIntent,
		Message:   "Intent has no deep-link target",
		Details:   fmt.Sprintf("intent: %s", intentType),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewVenueNotFoundError(query string) *StandardError {
	return &StandardError{
		Code:      ErrCodeVenueNotFound,
		Message:   "Venue not found in catalog",
		Details:   fmt.Sprintf("venue: %s", query),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewVenueDataInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeVenueDataInvalid,
		Message:   "Venue dataset failed validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewVenueLookupFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeVenueLookupFailed,
		Message:   "Venue source query failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewVenueCacheFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeVenueCacheFailed,
		Message:   "Venue cache unavailable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewChatBackendFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeChatBackendFailed,
		Message:   "Chat backend request failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewChatBackendTimeoutError() *StandardError {
	return &StandardError{
		Code:      ErrCodeChatBackendTimeout,
		Message:   "Chat backend timeout",
		Details:   "chat call exceeded timeout threshold",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewParseError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeParseError,
		Message:   "Job variables could not be parsed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewValidationFailedError(messages []string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Input validation failed",
		Details:   strings.Join(messages, "; "),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

var BPMNErrorMapping = map[ErrorCode]string{
	ErrCodeUtteranceEmpty:      "UTTERANCE_EMPTY",
	ErrCodeIntentNotDetected:   "INTENT_NOT_DETECTED",
	ErrCodeIntentNotActionable: "INTENT_NOT_ACTIONABLE",
	ErrCodeUnsupportedIntent:   "UNSUPPORTED_INTENT",
	ErrCodeVenueNotFound:       "VENUE_NOT_FOUND",
	ErrCodeVenueDataInvalid:    "VENUE_DATA_INVALID",
	ErrCodeVenueLookupFailed:   "VENUE_LOOKUP_FAILED",
	ErrCodeVenueCacheFailed:    "VENUE_CACHE_FAILED",
	ErrCodeChatBackendFailed:   "CHAT_BACKEND_FAILED",
	ErrCodeChatBackendTimeout:  "CHAT_BACKEND_TIMEOUT",
	ErrCodeParseError:          "PARSE_ERROR",
	ErrCodeValidationFailed:    "VALIDATION_FAILED",
}

func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeVenueLookupFailed,
		ErrCodeChatBackendFailed:
		return 3

	case ErrCodeChatBackendTimeout:
		return 2

	case ErrCodeVenueCacheFailed:
		return 1

	default:
		return 0 // business errors: no retry
	}
}

func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	bpmnCode, exists := BPMNErrorMapping[stdErr.Code]
	if !exists {
		bpmnCode = string(stdErr.Code)
	}

	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	return &BPMNError{
		Code:      bpmnCode,
		Message:   stdErr.Message,
		Details:   stdErr.Details,
		Retryable: stdErr.Retryable,
		Retries:   retries,
		ErrorVariables: map[string]interface{}{
			"originalErrorCode": string(stdErr.Code),
			"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
		},
	}
}

func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.HasPrefix(codeStr, "INTENT") || strings.HasPrefix(codeStr, "UTTERANCE") || codeStr == string(ErrCodeUnsupportedIntent):
		return "INTENT"
	case strings.HasPrefix(codeStr, "VENUE"):
		return "VENUE"
	case strings.HasPrefix(codeStr, "CHAT"):
		return "CHAT"
	case strings.Contains(codeStr, "PARSE") || strings.Contains(codeStr, "INVALID"):
		return "VALIDATION"
	default:
		return "OTHER"
	}
}
