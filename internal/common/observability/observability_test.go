// internal/common/observability/observability_test.go
package observability

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestStartSpan_RecordsSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	obs := New("platform-finder-test",
		WithRegisterer(prometheus.NewRegistry()),
		WithSpanProcessor(recorder),
	)
	defer obs.Shutdown()

	_, span := obs.StartSpan(context.Background(), "calculate-tco", attribute.String("platformId", "zendesk"))
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "calculate-tco", ended[0].Name())
	assert.Contains(t, ended[0].Attributes(), attribute.String("platformId", "zendesk"))
}

func TestRecordJob_ExportsToRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs := New("platform-finder-test", WithRegisterer(reg))
	defer obs.Shutdown()

	ctx := context.Background()
	obs.RecordJobProcessed(ctx, "find-top-matches", "completed")
	obs.RecordJobDuration(ctx, "find-top-matches", 120*time.Millisecond, "completed")

	families, err := reg.Gather()
	require.NoError(t, err)

	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	joined := strings.ReplaceAll(strings.Join(names, ","), ".", "_")
	assert.Contains(t, joined, "jobs_processed")
	assert.Contains(t, joined, "jobs_duration")
}

func TestNilObservabilityIsSafe(t *testing.T) {
	var obs *Observability
	ctx, span := obs.StartSpan(context.Background(), "noop")
	span.End()
	assert.NotNil(t, ctx)
	obs.RecordJobProcessed(ctx, "x", "completed")
	obs.Shutdown()
}
