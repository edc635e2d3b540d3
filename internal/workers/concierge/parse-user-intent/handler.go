// internal/workers/concierge/parse-user-intent/handler.go
package parseuserintent

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
	"concierge-workers/internal/intent"
	"concierge-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "parse-user-intent"

var schema = validation.MustCompileSchema(inputSchema)

type Handler struct {
	config     *Config
	classifier *intent.Classifier
	errors     *apperrors.ErrorHandler
	obs        *observability.Observability
	logger     logger.Logger
}

func NewHandler(config *Config, classifier *intent.Classifier, obs *observability.Observability, log logger.Logger) *Handler {
	if classifier == nil {
		classifier = intent.NewClassifier(nil)
	}
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:     config,
		classifier: classifier,
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

// Execute classifies the question under the requested profile. A question
// that matches nothing completes with an empty primary intent.
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

	var output *Output
	if profile == intent.ProfileBooking {
		output = h.fromBooking(h.classifier.ClassifyBooking(question))
	} else {
		output = h.fromSimple(h.classifier.Classify(question))
	}
	output.IntentAnalysis.Profile = string(profile)
	output.Platform = string(device.Classify(input.UserAgent).Kind())

	metrics.RecordClassification(string(profile), output.IntentAnalysis.PrimaryIntent)

	h.logger.Info("intent parsed", map[string]interface{}{
		"intent":      output.IntentAnalysis.PrimaryIntent,
		"confidence":  output.IntentAnalysis.Confidence,
		"profile":     profile,
		"actionable":  output.Actionable,
		"entityCount": len(output.Entities),
	})

	return output, nil
}

func (h *Handler) fromSimple(i *models.Intent) *Output {
	out := &Output{Entities: []Entity{}}
	if i == nil {
		return out
	}
	out.IntentAnalysis = IntentAnalysis{
		PrimaryIntent: string(i.Type),
		Confidence:    i.Confidence,
		Keyword:       i.Keyword,
	}
	out.Actionable = intent.IsActionable(i)
	out.Summary = intent.Describe(i)

	switch {
	case i.Ride != nil:
		out.add("provider", string(i.Ride.Provider))
		out.addLocation("start_location", i.Ride.Start)
		out.addLocation("destination", i.Ride.Destination)
	case i.Restaurant != nil:
		out.add("search_term", i.Restaurant.SearchTerm)
		out.add("location", i.Restaurant.Location)
	case i.Place != nil:
		out.add("place_name", i.Place.PlaceName)
	case i.Translate != nil:
		out.add("text", i.Translate.Text)
		out.add("target_language", i.Translate.TargetLanguage)
	case i.Navigate != nil:
		out.addLocation("start_location", i.Navigate.Start)
		out.addLocation("destination", i.Navigate.Destination)
	}
	return out
}

func (h *Handler) fromBooking(b *models.BookingIntent) *Output {
	out := &Output{Entities: []Entity{}}
	if !b.Matched() {
		return out
	}
	out.IntentAnalysis = IntentAnalysis{
		PrimaryIntent: string(b.Type),
		Confidence:    b.Confidence,
		Keyword:       b.Keyword,
	}
	out.Actionable = intent.IsBookingActionable(b)
	out.Summary = intent.Summarize(b)

	out.addLocation("start_location", b.StartLocation)
	out.addLocation("destination", b.Destination)
	out.add("query", b.Query)
	out.add("language", b.Language)
	return out
}

func (o *Output) add(kind, value string) {
	if value != "" {
		o.Entities = append(o.Entities, Entity{Type: kind, Value: value})
	}
}

func (o *Output) addLocation(kind string, loc *models.Location) {
	if loc != nil {
		o.add(kind, loc.Name)
	}
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
