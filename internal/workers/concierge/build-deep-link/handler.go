// internal/workers/concierge/build-deep-link/handler.go
package builddeeplink

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"strings"
	"time"

	apperrors "concierge-workers/internal/common/errors"
	"concierge-workers/internal/common/logger"
	"concierge-workers/internal/common/metrics"
	"concierge-workers/internal/common/observability"
	"concierge-workers/internal/common/validation"
	"concierge-workers/internal/device"
	"concierge-workers/internal/dispatch"
	"concierge-workers/internal/intent"
	"concierge-workers/internal/venue"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "build-deep-link"

var schema = validation.MustCompileSchema(inputSchema)

// Handler classifies a question and returns the links and open strategy
// for the requesting device. It never navigates itself; the client does.
type Handler struct {
	config     *Config
	classifier *intent.Classifier
	venues     venue.Store
	errors     *apperrors.ErrorHandler
	obs        *observability.Observability
	logger     logger.Logger
}

func NewHandler(config *Config, classifier *intent.Classifier, venues venue.Store, obs *observability.Observability, log logger.Logger) *Handler {
	if classifier == nil {
		classifier = intent.NewClassifier(nil)
	}
	if venues == nil {
		venues = venue.NewStaticStore(nil)
	}
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:     config,
		classifier: classifier,
		venues:     venues,
		errors:     apperrors.NewErrorHandler(l),
		obs:        obs,
		logger:     l,
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
			h.completeJob(ctx, client, job, output)
			metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
			metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(startTime).Seconds())
			h.obs.RecordJobProcessed(ctx, TaskType, "completed")
			h.obs.RecordJobDuration(ctx, TaskType, time.Since(startTime), "completed")
			return
		}
	}

	metrics.WorkerJobsFailed.WithLabelValues(TaskType, errorCode(err)).Inc()
	h.obs.RecordJobProcessed(ctx, TaskType, "failed")
	h.errors.HandleJobError(ctx, client, job, err)
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
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return nil, apperrors.NewUtteranceEmptyError()
	}

	profile := h.config.DefaultProfile
	if input.Profile != "" {
		p, ok := intent.ParseProfile(input.Profile)
		if !ok {
			return nil, apperrors.NewValidationFailedError([]string{"profile: unknown profile " + input.Profile})
		}
		profile = p
	}

	catalog, err := venue.LoadCatalog(ctx, h.venues)
	if err != nil {
		return nil, err
	}
	ctrl := dispatch.NewController(h.config.Dispatch, nil, nil, catalog, h.logger)
	class := device.Classify(input.UserAgent)

	target, err := h.resolve(ctrl, profile, question, input, class)
	if err != nil {
		h.logger.Info("no dispatch for question", map[string]interface{}{
			"profile":   profile,
			"errorCode": errorCode(err),
		})
		return nil, err
	}

	output := &Output{
		DispatchID:     target.ID,
		Intent:         string(target.Intent),
		Service:        string(target.Service),
		NativeURI:      target.Link.NativeURI,
		WebFallbackURI: target.Link.WebFallbackURI,
		Platform:       string(class.Kind()),
		Strategy: Strategy{
			Mode:             target.Mode,
			NewTab:           target.Options.PreferNewTab,
			GateOnVisibility: target.Options.GateOnVisibility,
		},
	}
	if target.Mode == dispatch.ModeNativeThenWeb {
		output.Strategy.FallbackDelayMs = ctrl.Config().FallbackDelay.Milliseconds()
	}
	if target.Venue != nil {
		output.VenueID = target.Venue.ID
	}

	h.obs.RecordDispatch(ctx, output.Intent, output.Strategy.Mode)
	h.logger.Info("deep link built", map[string]interface{}{
		"dispatchId": output.DispatchID,
		"intent":     output.Intent,
		"service":    output.Service,
		"mode":       output.Strategy.Mode,
		"platform":   output.Platform,
	})

	return output, nil
}

func (h *Handler) resolve(ctrl *dispatch.Controller, profile intent.Profile, question string, input *Input, class device.Class) (*dispatch.Target, error) {
	if profile == intent.ProfileBooking {
		b := h.classifier.ClassifyBooking(question)
		metrics.RecordClassification(string(profile), string(b.Type))
		if !b.Matched() {
			return nil, apperrors.NewIntentNotDetectedError(question)
		}
		if input.Language != "" {
			b.Language = input.Language
		}
		return ctrl.ResolveBooking(b, class, input.VenueID)
	}

	i := h.classifier.Classify(question)
	if i == nil {
		metrics.RecordClassification(string(profile), "")
		return nil, apperrors.NewIntentNotDetectedError(question)
	}
	metrics.RecordClassification(string(profile), string(i.Type))
	if input.Language != "" && i.Translate != nil {
		i.Translate.TargetLanguage = input.Language
	}
	return ctrl.ResolveIntent(i, class, input.VenueID)
}

func (h *Handler) completeJob(ctx context.Context, client worker.JobClient, job entities.Job, output *Output) {
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

	if _, err := cmd.Send(ctx); err != nil {
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
