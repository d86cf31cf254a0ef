// internal/workers/tco/compare-tco/handler_test.go
package comparetco

import (
	"context"
	"testing"

	"platform-finder/internal/catalog/catalogtest"
	"platform-finder/internal/common/errors"
	"platform-finder/internal/common/logger"
	"platform-finder/internal/models"
	"platform-finder/pkg/registry"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/pb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

type testLogger struct {
	t *testing.T
}

func (tl *testLogger) Debug(msg string, fields map[string]interface{}) {
	tl.t.Logf("DEBUG: %s %v", msg, fields)
}

func (tl *testLogger) Info(msg string, fields map[string]interface{}) {
	tl.t.Logf("INFO: %s %v", msg, fields)
}

func (tl *testLogger) Warn(msg string, fields map[string]interface{}) {
	tl.t.Logf("WARN: %s %v", msg, fields)
}

func (tl *testLogger) Error(msg string, fields map[string]interface{}) {
	tl.t.Logf("ERROR: %s %v", msg, fields)
}

func (tl *testLogger) WithFields(fields map[string]interface{}) logger.Logger {
	return tl
}

func (tl *testLogger) WithError(err error) logger.Logger {
	return tl.WithFields(map[string]interface{}{"error": err})
}

func (tl *testLogger) With(fields map[string]interface{}) logger.Logger {
	return tl
}

func newTestHandler(t *testing.T, loader CatalogLoader) *Handler {
	reg, err := registry.LoadRegistry("../../../../configs/activity-registry.json")
	require.NoError(t, err)
	return NewHandler(NewConfig(reg), loader, &testLogger{t: t})
}

func createTestInputs() models.TCOInputs {
	return models.TCOInputs{NumberOfAgents: 10, ExpectedTickets: 1000}
}

func newJob(variables string) entities.Job {
	return entities.Job{ActivatedJob: &pb.ActivatedJob{
		Key:                1,
		ProcessInstanceKey: 2,
		Type:               TaskType,
		Variables:          variables,
	}}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute(t *testing.T) {
	h := newTestHandler(t, &catalogtest.Loader{})

	output, err := h.Execute(context.Background(), &Input{
		PlatformIDs: []string{"enterprise-suite", "help-desk-pro"},
		Inputs:      createTestInputs(),
	})
	require.NoError(t, err)
	require.Len(t, output.Comparisons, 2)

	enterprise, helpDesk := output.Comparisons[0], output.Comparisons[1]
	assert.Equal(t, "enterprise-suite", enterprise.PlatformID)
	assert.Equal(t, "Enterprise Suite", enterprise.PlatformName)
	assert.InDelta(t, 38000.0, enterprise.Year1, 0.001)
	assert.InDelta(t, 76700.0, enterprise.Total3Year, 0.001)

	assert.Equal(t, "help-desk-pro", helpDesk.PlatformID)
	assert.InDelta(t, 3800.0, helpDesk.Year1, 0.001)
	assert.InDelta(t, 7670.0, helpDesk.Total3Year, 0.001)

	assert.Equal(t, helpDesk, output.Cheapest)
	assert.InDelta(t, 69030.0, output.MaxSavings, 0.001)
	assert.Equal(t, "$69,030", output.MaxSavingsFormatted)
}

func TestHandler_Execute_SinglePlatform(t *testing.T) {
	h := newTestHandler(t, &catalogtest.Loader{})

	output, err := h.Execute(context.Background(), &Input{PlatformIDs: []string{"chat-lite"}, Inputs: createTestInputs()})
	require.NoError(t, err)
	require.Len(t, output.Comparisons, 1)
	assert.Equal(t, output.Comparisons[0], output.Cheapest)
	assert.Equal(t, 0.0, output.MaxSavings)
}

func TestHandler_Execute_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    Input
		expected errors.ErrorCode
	}{
		{
			name:     "unknown platform",
			input:    Input{PlatformIDs: []string{"help-desk-pro", "nope"}, Inputs: createTestInputs()},
			expected: errors.ErrCodePlatformNotFound,
		},
		{
			name:     "too many platforms",
			input:    Input{PlatformIDs: []string{"help-desk-pro", "chat-lite", "enterprise-suite", "help-desk-pro"}, Inputs: createTestInputs()},
			expected: errors.ErrCodeInvalidTCOInputs,
		},
		{
			name:     "no platforms",
			input:    Input{Inputs: createTestInputs()},
			expected: errors.ErrCodeInvalidTCOInputs,
		},
		{
			name:     "no agents",
			input:    Input{PlatformIDs: []string{"chat-lite"}},
			expected: errors.ErrCodeInvalidTCOInputs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestHandler(t, &catalogtest.Loader{}).Execute(context.Background(), &tt.input)
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, tt.expected), "got %v", err)
		})
	}
}

// ==========================
// Input Parsing Tests
// ==========================

func TestHandler_ParseInput(t *testing.T) {
	h := newTestHandler(t, &catalogtest.Loader{})

	input, err := h.parseInput(newJob(`{"platformIds":["chat-lite","help-desk-pro"],"inputs":{"numberOfAgents":3}}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"chat-lite", "help-desk-pro"}, input.PlatformIDs)
	assert.Equal(t, 3, input.Inputs.NumberOfAgents)

	for _, variables := range []string{
		`{"platformIds":[],"inputs":{"numberOfAgents":3}}`,
		`{"platformIds":["a","b","c","d"],"inputs":{"numberOfAgents":3}}`,
		`{"platformIds":["a"]}`,
	} {
		_, err := h.parseInput(newJob(variables))
		assert.True(t, errors.HasCode(err, errors.ErrCodeJobInputValidationFailed), "variables %s: got %v", variables, err)
	}
}
