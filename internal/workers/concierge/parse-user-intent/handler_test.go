package parseuserintent

import (
	"context"
	"testing"
	"time"

	"concierge-workers/internal/common/config"
	apperrors "concierge-workers/internal/common/errors"
	"concierge-workers/internal/common/logger"
	"concierge-workers/internal/intent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const iPhoneUA = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15"

func createTestConfig() *Config {
	return &Config{
		Enabled:        true,
		MaxJobsActive:  5,
		Timeout:        5 * time.Second,
		DefaultProfile: intent.ProfileSimple,
	}
}

func newTestHandler(t *testing.T) *Handler {
	return NewHandler(createTestConfig(), nil, nil, logger.NewTestLogger(t))
}

func entityMap(entities []Entity) map[string]string {
	out := make(map[string]string, len(entities))
	for _, e := range entities {
		out[e.Type] = e.Value
	}
	return out
}

// ==========================
// Execute Tests
// ==========================

func TestHandler_Execute_SimpleProfile(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name       string
		input      *Input
		intent     string
		actionable bool
		entities   map[string]string
		summary    string
		platform   string
	}{
		{
			name: "ride with both ends",
			input: &Input{
				Question:  "I want to book a uber from Amazon santa monica to LAX airport.",
				UserAgent: iPhoneUA,
			},
			intent:     "ride",
			actionable: true,
			entities: map[string]string{
				"provider":       "uber",
				"start_location": "Amazon santa monica",
				"destination":    "LAX airport",
			},
			summary:  "Uber from Amazon santa monica to LAX airport",
			platform: "ios",
		},
		{
			name:       "tickets",
			input:      &Input{Question: "I want to buy tickets"},
			intent:     "tickets",
			actionable: true,
			entities:   map[string]string{},
			summary:    "FIFA 2026 tickets",
			platform:   "desktop",
		},
		{
			name:       "no match",
			input:      &Input{Question: "hello there"},
			intent:     "",
			actionable: false,
			entities:   map[string]string{},
			platform:   "desktop",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := h.Execute(context.Background(), tt.input)
			require.NoError(t, err)

			assert.Equal(t, tt.intent, out.IntentAnalysis.PrimaryIntent)
			assert.Equal(t, "simple", out.IntentAnalysis.Profile)
			assert.Equal(t, tt.actionable, out.Actionable)
			assert.Equal(t, tt.entities, entityMap(out.Entities))
			assert.Equal(t, tt.summary, out.Summary)
			assert.Equal(t, tt.platform, out.Platform)
			assert.NotNil(t, out.Entities)
		})
	}
}

func TestHandler_Execute_BookingProfile(t *testing.T) {
	h := newTestHandler(t)

	out, err := h.Execute(context.Background(), &Input{
		Question: "I need a hotel near the stadium",
		Profile:  "booking",
	})
	require.NoError(t, err)

	assert.Equal(t, "hotel", out.IntentAnalysis.PrimaryIntent)
	assert.Equal(t, "booking", out.IntentAnalysis.Profile)
	assert.True(t, out.Actionable)
	assert.Equal(t, "Find accommodation", out.Summary)
	assert.GreaterOrEqual(t, out.IntentAnalysis.Confidence, intent.MinActionableConfidence)
}

func TestHandler_Execute_DefaultProfileFromConfig(t *testing.T) {
	cfg := createTestConfig()
	cfg.DefaultProfile = intent.ProfileBooking
	h := NewHandler(cfg, nil, nil, logger.NewNoOpLogger())

	out, err := h.Execute(context.Background(), &Input{Question: "get me a lyft to SoFi"})
	require.NoError(t, err)
	assert.Equal(t, "booking", out.IntentAnalysis.Profile)
	assert.Equal(t, "lyft", out.IntentAnalysis.PrimaryIntent)
}

func TestHandler_Execute_Errors(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name  string
		input *Input
		code  apperrors.ErrorCode
	}{
		{name: "empty question", input: &Input{Question: ""}, code: apperrors.ErrCodeUtteranceEmpty},
		{name: "whitespace question", input: &Input{Question: "   "}, code: apperrors.ErrCodeUtteranceEmpty},
		{name: "unknown profile", input: &Input{Question: "taxi", Profile: "chatty"}, code: apperrors.ErrCodeValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := h.Execute(context.Background(), tt.input)
			require.Error(t, err)
			assert.Nil(t, out)

			var stdErr *apperrors.StandardError
			require.ErrorAs(t, err, &stdErr)
			assert.Equal(t, tt.code, stdErr.Code)
			assert.Equal(t, string(tt.code), errorCode(err))
		})
	}
}

// ==========================
// Input Parsing Tests
// ==========================

func TestHandler_ParseInput(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name      string
		variables string
		wantCode  apperrors.ErrorCode
		want      *Input
	}{
		{
			name:      "valid",
			variables: `{"question":"taxi to LAX","profile":"simple","userAgent":"curl"}`,
			want:      &Input{Question: "taxi to LAX", Profile: "simple", UserAgent: "curl"},
		},
		{
			name:      "extra process variables are ignored",
			variables: `{"question":"taxi","requestId":"r-1"}`,
			want:      &Input{Question: "taxi"},
		},
		{name: "missing question", variables: `{"profile":"simple"}`, wantCode: apperrors.ErrCodeValidationFailed},
		{name: "bad profile", variables: `{"question":"x","profile":"chatty"}`, wantCode: apperrors.ErrCodeValidationFailed},
		{name: "wrong type", variables: `{"question":42}`, wantCode: apperrors.ErrCodeValidationFailed},
		{name: "malformed json", variables: `{"question":`, wantCode: apperrors.ErrCodeParseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := h.parseInput(tt.variables)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, string(tt.wantCode), errorCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	appCfg := &config.Config{
		Workers: map[string]config.WorkerConfig{
			TaskType: {Enabled: true, MaxJobsActive: 7, Timeout: 2000},
		},
	}
	appCfg.Concierge.Profile = "booking"

	cfg := LoadConfig(appCfg)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 7, cfg.MaxJobsActive)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.Equal(t, intent.ProfileBooking, cfg.DefaultProfile)
}
