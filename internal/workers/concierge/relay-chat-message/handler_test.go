package relaychatmessage

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"concierge-workers/internal/chatapi"
	apperrors "concierge-workers/internal/common/errors"
	"concierge-workers/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockChatClient struct {
	mock.Mock
}

func (m *MockChatClient) SendMessage(ctx context.Context, req chatapi.Request) (*chatapi.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chatapi.Response), args.Error(1)
}

func createTestConfig() *Config {
	return &Config{
		Enabled:       true,
		MaxJobsActive: 5,
		Timeout:       5 * time.Second,
	}
}

// ==========================
// Execute Tests
// ==========================

func TestHandler_Execute_Success(t *testing.T) {
	chat := new(MockChatClient)
	history := []chatapi.Message{{Role: chatapi.RoleUser, Content: "hi"}}
	chat.On("SendMessage", mock.Anything, chatapi.Request{
		Message:             "Which gate is closest to parking?",
		ConversationHistory: history,
		UserID:              "fan-7",
	}).Return(&chatapi.Response{Response: "Gate B.", Timestamp: "2026-06-12T20:00:00Z"}, nil)

	h := NewHandler(createTestConfig(), chat, nil, logger.NewTestLogger(t))
	out, err := h.Execute(context.Background(), &Input{
		Message:             "Which gate is closest to parking?",
		ConversationHistory: history,
		UserID:              "fan-7",
	})

	require.NoError(t, err)
	assert.Equal(t, &Output{Response: "Gate B.", Timestamp: "2026-06-12T20:00:00Z"}, out)
	chat.AssertExpectations(t)
}

func TestHandler_Execute_FillsTimestamp(t *testing.T) {
	chat := new(MockChatClient)
	chat.On("SendMessage", mock.Anything, mock.Anything).Return(&chatapi.Response{Response: "ok"}, nil)

	h := NewHandler(createTestConfig(), chat, nil, logger.NewNoOpLogger())
	out, err := h.Execute(context.Background(), &Input{Message: "hi"})

	require.NoError(t, err)
	_, parseErr := time.Parse(time.RFC3339, out.Timestamp)
	assert.NoError(t, parseErr)
}

func TestHandler_Execute_Errors(t *testing.T) {
	tests := []struct {
		name      string
		input     *Input
		clientErr error
		code      apperrors.ErrorCode
	}{
		{name: "empty message", input: &Input{Message: "  "}, code: apperrors.ErrCodeUtteranceEmpty},
		{name: "backend timeout", input: &Input{Message: "hi"}, clientErr: chatapi.ErrBackendTimeout, code: apperrors.ErrCodeChatBackendTimeout},
		{
			name:      "backend failure",
			input:     &Input{Message: "hi"},
			clientErr: errors.Join(chatapi.ErrBackendFailed, errors.New("status 502")),
			code:      apperrors.ErrCodeChatBackendFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chat := new(MockChatClient)
			if tt.clientErr != nil {
				chat.On("SendMessage", mock.Anything, mock.Anything).Return(nil, tt.clientErr)
			}

			h := NewHandler(createTestConfig(), chat, nil, logger.NewNoOpLogger())
			out, err := h.Execute(context.Background(), tt.input)

			require.Error(t, err)
			assert.Nil(t, out)
			assert.Equal(t, string(tt.code), errorCode(err))
			chat.AssertExpectations(t)
		})
	}
}

func TestHandler_Execute_AgainstBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatapi.Request
		_ = json.NewDecoder(r.Body).Decode(&req)
		_ = json.NewEncoder(w).Encode(chatapi.Response{Response: "echo: " + req.Message, Timestamp: "t"})
	}))
	defer srv.Close()

	cfg := createTestConfig()
	cfg.Chat = chatapi.Config{BaseURL: srv.URL, MaxRetries: 1}
	h := NewHandler(cfg, nil, nil, logger.NewNoOpLogger())

	out, err := h.Execute(context.Background(), &Input{Message: "kickoff time?"})
	require.NoError(t, err)
	assert.Equal(t, "echo: kickoff time?", out.Response)
}

// ==========================
// Input Parsing Tests
// ==========================

func TestHandler_ParseInput(t *testing.T) {
	h := NewHandler(createTestConfig(), new(MockChatClient), nil, logger.NewNoOpLogger())

	tests := []struct {
		name      string
		variables string
		wantCode  apperrors.ErrorCode
	}{
		{name: "valid", variables: `{"message":"hi","conversationHistory":[{"role":"user","content":"x"}]}`},
		{name: "missing message", variables: `{"userId":"u"}`, wantCode: apperrors.ErrCodeValidationFailed},
		{name: "bad role", variables: `{"message":"hi","conversationHistory":[{"role":"system","content":"x"}]}`, wantCode: apperrors.ErrCodeValidationFailed},
		{name: "malformed", variables: `[`, wantCode: apperrors.ErrCodeParseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.parseInput(tt.variables)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, string(tt.wantCode), errorCode(err))
		})
	}
}
