// internal/common/camunda/instrument.go
package camunda

import (
	"context"
	"time"

	"platform-finder/internal/common/observability"

	"github.com/camunda/zeebe/clients/go/v8/pkg/commands"
	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Job outcomes as seen by the broker.
const (
	OutcomeCompleted  = "completed"
	OutcomeFailed     = "failed"
	OutcomeBPMNError  = "bpmn_error"
	OutcomeUnreported = "unreported"
)

// outcomeClient remembers which command the handler issued last.
type outcomeClient struct {
	worker.JobClient
	outcome string
}

func (c *outcomeClient) NewCompleteJobCommand() commands.CompleteJobCommandStep1 {
	c.outcome = OutcomeCompleted
	return c.JobClient.NewCompleteJobCommand()
}

func (c *outcomeClient) NewFailJobCommand() commands.FailJobCommandStep1 {
	c.outcome = OutcomeFailed
	return c.JobClient.NewFailJobCommand()
}

func (c *outcomeClient) NewThrowErrorCommand() commands.ThrowErrorCommandStep1 {
	c.outcome = OutcomeBPMNError
	return c.JobClient.NewThrowErrorCommand()
}

// Instrument runs handler inside a span and records the job outcome with
// the OpenTelemetry job metrics. A nil obs still yields a working handler.
func Instrument(taskType string, handler JobHandlerFunc, obs *observability.Observability) JobHandlerFunc {
	return func(client worker.JobClient, job entities.Job) {
		start := time.Now()
		ctx, span := obs.StartSpan(context.Background(), taskType,
			attribute.String("job.type", taskType),
			attribute.Int64("job.key", job.GetKey()),
			attribute.Int64("job.process_instance_key", job.GetProcessInstanceKey()),
		)
		defer span.End()

		tracked := &outcomeClient{JobClient: client, outcome: OutcomeUnreported}
		handler(tracked, job)

		span.SetAttributes(attribute.String("job.outcome", tracked.outcome))
		if tracked.outcome != OutcomeCompleted {
			span.SetStatus(codes.Error, tracked.outcome)
		}
		obs.RecordJobProcessed(ctx, taskType, tracked.outcome)
		obs.RecordJobDuration(ctx, taskType, time.Since(start), tracked.outcome)
	}
}
