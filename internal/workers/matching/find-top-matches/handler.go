// internal/workers/matching/find-top-matches/handler.go
package findtopmatches

import (
	"context"
	"time"

	"platform-finder/internal/catalog"
	"platform-finder/internal/common/errors"
	"platform-finder/internal/common/logger"
	"platform-finder/internal/common/metrics"
	"platform-finder/internal/common/validation"
	"platform-finder/internal/matching"
	"platform-finder/internal/models"
	"platform-finder/internal/wizard"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const (
	TaskType = "find-top-matches"
)

type CatalogLoader interface {
	Load(ctx context.Context) (*catalog.Catalog, error)
}

// AnswerSource hands out the answers of a completed wizard session once.
type AnswerSource interface {
	Answers(ctx context.Context, sessionID string) (models.WizardAnswers, error)
}

type Handler struct {
	config       *Config
	catalog      CatalogLoader
	sessions     AnswerSource
	logger       logger.Logger
	errorHandler *errors.ErrorHandler
	now          func() time.Time
}

func NewHandler(config *Config, loader CatalogLoader, sessions AnswerSource, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		catalog:      loader,
		sessions:     sessions,
		logger:       log,
		errorHandler: errors.NewErrorHandler(log),
		now:          time.Now,
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

	input, err := h.parseInput(job)
	if err != nil {
		h.failJob(ctx, client, job, err)
		return
	}

	output, err := h.execute(ctx, input)
	if err != nil {
		h.failJob(ctx, client, job, err)
		return
	}

	h.completeJob(ctx, client, job, output)
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(startTime).Seconds())
}

func (h *Handler) parseInput(job entities.Job) (*Input, error) {
	variables, err := job.GetVariablesAsMap()
	if err != nil {
		return nil, errors.NewInputParsingFailedError(err)
	}

	result, err := validation.ValidateInput(variables, h.config.InputSchema)
	if err != nil {
		return nil, errors.NewInputParsingFailedError(err)
	}
	if !result.Valid {
		return nil, errors.NewJobInputValidationFailedError(TaskType, result.GetErrorMessages())
	}

	var input Input
	if err := job.GetVariablesAs(&input); err != nil {
		return nil, errors.NewInputParsingFailedError(err)
	}
	return &input, nil
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	answers, err := h.resolveAnswers(ctx, input)
	if err != nil {
		return nil, err
	}

	cat, err := h.catalog.Load(ctx)
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = h.config.DefaultLimit
	}

	matches := matching.FindTopMatches(cat.Platforms(), &answers, limit)
	if len(matches) == 0 {
		return nil, errors.NewNoMatchesFoundError(cat.Len())
	}

	for _, m := range matches {
		metrics.MatchScores.Observe(m.Score)
	}

	h.logger.Info("top matches found", map[string]interface{}{
		"sessionId": input.SessionID,
		"evaluated": cat.Len(),
		"matches":   len(matches),
		"topMatch":  matches[0].PlatformID,
		"topScore":  matches[0].Score,
	})

	return &Output{
		Matches:   matches,
		Total:     len(matches),
		Evaluated: cat.Len(),
		Results: models.WizardResults{
			Answers:     answers,
			Matches:     matches,
			Timestamp:   h.now().UTC(),
			ShortlistID: uuid.NewString(),
		},
	}, nil
}

func (h *Handler) resolveAnswers(ctx context.Context, input *Input) (models.WizardAnswers, error) {
	if input.Answers != nil {
		if err := wizard.ValidateAnswers(input.Answers); err != nil {
			return models.WizardAnswers{}, err
		}
		return *input.Answers, nil
	}
	return h.sessions.Answers(ctx, input.SessionID)
}

func (h *Handler) completeJob(ctx context.Context, client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	if _, err := cmd.Send(ctx); err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) failJob(ctx context.Context, client worker.JobClient, job entities.Job, err error) {
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, string(errors.Normalize(err).Code)).Inc()
	h.errorHandler.HandleJobError(ctx, client, job, err)
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
