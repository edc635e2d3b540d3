// internal/workers/concierge/relay-chat-message/handler.go
package relaychatmessage

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"strings"
	"time"

	"concierge-workers/internal/chatapi"
	apperrors "concierge-workers/internal/common/errors"
	"concierge-workers/internal/common/logger"
	"concierge-workers/internal/common/metrics"
	"concierge-workers/internal/common/observability"
	"concierge-workers/internal/common/validation"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "relay-chat-message"

var schema = validation.MustCompileSchema(inputSchema)

// ChatClient is the part of chatapi.Client the handler needs.
type ChatClient interface {
	SendMessage(ctx context.Context, req chatapi.Request) (*chatapi.Response, error)
}

// Handler forwards questions the intent engine cannot act on to the
// conversational backend.
type Handler struct {
	config *Config
	chat   ChatClient
	errors *apperrors.ErrorHandler
	obs    *observability.Observability
	logger logger.Logger
}

func NewHandler(config *Config, chat ChatClient, obs *observability.Observability, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	if chat == nil {
		chat = chatapi.NewClient(config.Chat, l)
	}
	return &Handler{
		config: config,
		chat:   chat,
		errors: apperrors.NewErrorHandler(l),
		obs:    obs,
		logger: l,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	startTime := time.Now()
	metrics.WorkerJobsActive.WithLabelValues(TaskType).Inc()
	defer metrics.WorkerJobsActive.WithLabelValues(TaskType).Dec()

	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	input, err := h.parseInput(job.Variables)
	if err == nil {
		var output *Output
		output, err = h.Execute(ctx, input)
		if err == nil {
			h.completeJob(client, job, output)
			metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
			metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(startTime).Seconds())
			h.obs.RecordJobProcessed(ctx, TaskType, "completed")
			h.obs.RecordJobDuration(ctx, TaskType, time.Since(startTime), "completed")
			return
		}
	}

	metrics.WorkerJobsFailed.WithLabelValues(TaskType, errorCode(err)).Inc()
	h.obs.RecordJobProcessed(ctx, TaskType, "failed")
	// the job context may already be spent on a backend timeout
	h.errors.HandleJobError(context.Background(), client, job, err)
}

func (h *Handler) parseInput(variables string) (*Input, error) {
	result, err := schema.ValidateJSON([]byte(variables))
	if err != nil {
		return nil, apperrors.NewParseError(err)
	}
	if !result.Valid {
		return nil, apperrors.NewValidationFailedError(result.GetErrorMessages())
	}

	var input Input
	if err := json.Unmarshal([]byte(variables), &input); err != nil {
		return nil, apperrors.NewParseError(err)
	}
	return &input, nil
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if strings.TrimSpace(input.Message) == "" {
		return nil, apperrors.NewUtteranceEmptyError()
	}

	resp, err := h.chat.SendMessage(ctx, chatapi.Request{
		Message:             input.Message,
		ConversationHistory: input.ConversationHistory,
		UserID:              input.UserID,
	})
	if err != nil {
		if stderrors.Is(err, chatapi.ErrBackendTimeout) {
			return nil, apperrors.NewChatBackendTimeoutError()
		}
		return nil, apperrors.NewChatBackendFailedError(err)
	}

	output := &Output{Response: resp.Response, Timestamp: resp.Timestamp}
	if output.Timestamp == "" {
		output.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	h.logger.Info("chat reply relayed", map[string]interface{}{
		"userId":         input.UserID,
		"historyLength":  len(input.ConversationHistory),
		"responseLength": len(output.Response),
	})

	return output, nil
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err.Error(),
		})
		return
	}

	if _, err := cmd.Send(context.Background()); err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err.Error(),
		})
	}
}

func errorCode(err error) string {
	var stdErr *apperrors.StandardError
	if stderrors.As(err, &stdErr) {
		return string(stdErr.Code)
	}
	return string(apperrors.ErrCodeInternalError)
}
