// internal/workers/catalog/query-platform-catalog/handler.go
package queryplatformcatalog

import (
	"context"
	"fmt"
	"time"

	"platform-finder/internal/catalog"
	"platform-finder/internal/common/errors"
	"platform-finder/internal/common/logger"
	"platform-finder/internal/common/metrics"
	"platform-finder/internal/common/validation"
	"platform-finder/internal/matching"
	"platform-finder/internal/models"
	"platform-finder/internal/pricing"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "query-platform-catalog"
)

// CatalogLoader yields the current catalog snapshot.
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
	if input.Operation != OperationList && input.PlatformID == "" {
		return nil, errors.NewJobInputValidationFailedError(TaskType,
			[]string{fmt.Sprintf("platformId: required for operation %s", input.Operation)})
	}

	cat, err := h.catalog.Load(ctx)
	if err != nil {
		return nil, err
	}
	meta := cat.Meta()

	output := &Output{
		Operation:   input.Operation,
		Total:       meta.Total,
		LastUpdated: meta.LastUpdated,
	}

	switch input.Operation {
	case OperationList:
		platforms := cat.Platforms()
		output.Platforms = make([]PlatformSummary, 0, len(platforms))
		for i := range platforms {
			p := &platforms[i]
			output.Platforms = append(output.Platforms, PlatformSummary{
				ID:              matching.PlatformID(p.TradeName),
				TradeName:       p.TradeName,
				CompanyName:     p.CompanyName,
				CategoryPrimary: p.CategoryPrimary,
				G2Rating:        p.Reputation.G2Rating,
				FreeTrial:       p.Pricing.FreeTrial,
				FreePlan:        p.Pricing.FreePlan,
				StartingPrice:   startingPrice(p.Pricing.Plans),
			})
		}
	case OperationGet:
		platform, err := cat.Find(input.PlatformID)
		if err != nil {
			return nil, err
		}
		output.Platform = platform
		output.PlatformID = input.PlatformID
	case OperationPlans:
		platform, err := cat.Find(input.PlatformID)
		if err != nil {
			return nil, err
		}
		output.PlatformID = input.PlatformID
		output.Plans = pricing.AvailablePlans(platform)
	default:
		return nil, errors.NewJobInputValidationFailedError(TaskType,
			[]string{fmt.Sprintf("operation: unknown operation %q", input.Operation)})
	}

	h.logger.Info("catalog queried", map[string]interface{}{
		"operation":  input.Operation,
		"platformId": input.PlatformID,
		"total":      meta.Total,
	})

	return output, nil
}

// startingPrice formats the cheapest paid plan, or "Free" when every plan is free.
func startingPrice(plans []models.PricingPlan) string {
	lowest := 0.0
	for _, plan := range plans {
		price := pricing.PlanPrice(plan)
		if price > 0 && (lowest == 0 || price < lowest) {
			lowest = price
		}
	}
	if lowest == 0 {
		if len(plans) == 0 {
			return ""
		}
		return "Free"
	}
	return pricing.FormatCurrency(lowest)
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
