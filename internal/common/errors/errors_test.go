package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertToBPMNError(t *testing.T) {
	tests := []struct {
		name      string
		err       *StandardError
		code      string
		retries   int
		retryable bool
	}{
		{"business error", NewIntentNotActionableError("ride", 0.5), "INTENT_NOT_ACTIONABLE", 0, false},
		{"venue missing", NewVenueNotFoundError("wembley"), "VENUE_NOT_FOUND", 0, false},
		{"lookup failure retries", NewVenueLookupFailedError(fmt.Errorf("conn refused")), "VENUE_LOOKUP_FAILED", 3, true},
		{"chat timeout", NewChatBackendTimeoutError(), "CHAT_BACKEND_TIMEOUT", 2, true},
		{"unmapped code passes through", &StandardError{Code: "SOMETHING_ELSE", Message: "x"}, "SOMETHING_ELSE", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bpmn := ConvertToBPMNError(tt.err)
			assert.Equal(t, tt.code, bpmn.Code)
			assert.Equal(t, tt.retries, bpmn.Retries)
			assert.Equal(t, tt.retryable, bpmn.Retryable)

			vars := bpmn.ToErrorVariables()
			assert.Equal(t, tt.code, vars["errorCode"])
			assert.Equal(t, string(tt.err.Code), vars["originalErrorCode"])
		})
	}
}

func TestConvertToBPMNError_NonRetryableOverridesCount(t *testing.T) {
	err := &StandardError{Code: ErrCodeVenueLookupFailed, Message: "lookup", Retryable: false}
	assert.Equal(t, 0, ConvertToBPMNError(err).Retries)
}

func TestGetErrorCategory(t *testing.T) {
	assert.Equal(t, "INTENT", GetErrorCategory(ErrCodeUtteranceEmpty))
	assert.Equal(t, "INTENT", GetErrorCategory(ErrCodeIntentNotActionable))
	assert.Equal(t, "INTENT", GetErrorCategory(ErrCodeUnsupportedIntent))
	assert.Equal(t, "VENUE", GetErrorCategory(ErrCodeVenueCacheFailed))
	assert.Equal(t, "CHAT", GetErrorCategory(ErrCodeChatBackendFailed))
	assert.Equal(t, "VALIDATION", GetErrorCategory(ErrCodeParseError))
	assert.Equal(t, "OTHER", GetErrorCategory(ErrCodeInternalError))
}

func TestIsRetryableErrorCode(t *testing.T) {
	assert.True(t, IsRetryableErrorCode(ErrCodeChatBackendFailed))
	assert.True(t, IsRetryableErrorCode(ErrCodeVenueCacheFailed))
	assert.False(t, IsRetryableErrorCode(ErrCodeVenueNotFound))
	assert.False(t, IsRetryableErrorCode(ErrCodeParseError))
}

func TestNormalizeError(t *testing.T) {
	h := NewErrorHandler(nil)

	wrapped := fmt.Errorf("dispatch: %w", NewVenueNotFoundError("azteca"))
	got := h.normalizeError(wrapped)
	assert.Equal(t, ErrCodeVenueNotFound, got.Code)

	got = h.normalizeError(stderrors.New("boom"))
	assert.Equal(t, ErrCodeInternalError, got.Code)
	assert.Equal(t, "boom", got.Details)
}
