// internal/workers/tco/compare-tco/handler.go
package comparetco

import (
	"context"
	stderrors "errors"
	"time"

	"platform-finder/internal/catalog"
	"platform-finder/internal/common/errors"
	"platform-finder/internal/common/logger"
	"platform-finder/internal/common/metrics"
	"platform-finder/internal/common/validation"
	"platform-finder/internal/pricing"
	"platform-finder/internal/tco"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "compare-tco"
)

type CatalogLoader interface {
	Load(ctx context.Context) (*catalog.Catalog, error)
}

type Handler struct {
	config       *Config
	catalog      CatalogLoader
	logger       logger.Logger
	errorHandler *errors.ErrorHandler
}

func NewHandler(config *Config, loader CatalogLoader, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		catalog:      loader,
		logger:       log,
		errorHandler: errors.NewErrorHandler(log),
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
	if err := tco.ValidateInputs(&input.Inputs); err != nil {
		return nil, err
	}
	if n := len(input.PlatformIDs); n == 0 || n > tco.MaxComparedPlatforms {
		return nil, errors.NewInvalidTCOInputsError(tco.ErrComparisonSize.Error())
	}

	cat, err := h.catalog.Load(ctx)
	if err != nil {
		return nil, err
	}
	platforms, err := cat.FindAll(input.PlatformIDs)
	if err != nil {
		return nil, err
	}

	comparisons, err := tco.Compare(platforms, input.PlatformIDs, &input.Inputs)
	if err != nil {
		if stderrors.Is(err, tco.ErrComparisonSize) {
			return nil, errors.NewInvalidTCOInputsError(err.Error())
		}
		return nil, err
	}

	cheapest, _ := tco.Cheapest(comparisons)
	dearest := cheapest.Total3Year
	for _, c := range comparisons {
		metrics.TCOThreeYearTotals.Observe(c.Total3Year)
		if c.Total3Year > dearest {
			dearest = c.Total3Year
		}
	}
	savings := dearest - cheapest.Total3Year

	h.logger.Info("tco compared", map[string]interface{}{
		"platformIds": input.PlatformIDs,
		"cheapest":    cheapest.PlatformID,
		"maxSavings":  savings,
	})

	return &Output{
		Comparisons:         comparisons,
		Cheapest:            cheapest,
		MaxSavings:          savings,
		MaxSavingsFormatted: pricing.FormatCurrency(savings),
	}, nil
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
