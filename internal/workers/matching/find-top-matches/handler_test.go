// internal/workers/matching/find-top-matches/handler_test.go
package findtopmatches

import (
	"context"
	"testing"
	"time"

	"platform-finder/internal/catalog"
	"platform-finder/internal/catalog/catalogtest"
	"platform-finder/internal/common/errors"
	"platform-finder/internal/common/logger"
	"platform-finder/internal/models"
	"platform-finder/pkg/registry"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/pb"
	"github.com/google/uuid"
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

type fakeSessions struct {
	answers map[string]models.WizardAnswers
}

func (f *fakeSessions) Answers(_ context.Context, sessionID string) (models.WizardAnswers, error) {
	a, ok := f.answers[sessionID]
	if !ok {
		return models.WizardAnswers{}, errors.NewWizardSessionNotFoundError(sessionID)
	}
	delete(f.answers, sessionID)
	return a, nil
}

var testNow = time.Date(2025, 3, 2, 8, 30, 0, 0, time.UTC)

func newTestHandler(t *testing.T, loader CatalogLoader, sessions AnswerSource) *Handler {
	reg, err := registry.LoadRegistry("../../../../configs/activity-registry.json")
	require.NoError(t, err)
	h := NewHandler(NewConfig(reg, 0), loader, sessions, &testLogger{t: t})
	h.now = func() time.Time { return testNow }
	return h
}

func answersPtr(a models.WizardAnswers) *models.WizardAnswers {
	return &a
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

func TestHandler_Execute_InlineAnswers(t *testing.T) {
	h := newTestHandler(t, &catalogtest.Loader{}, &fakeSessions{})
	answers := catalogtest.SmallTeamAnswers()

	output, err := h.Execute(context.Background(), &Input{Answers: &answers})
	require.NoError(t, err)

	require.NotEmpty(t, output.Matches)
	assert.Equal(t, "help-desk-pro", output.Matches[0].PlatformID)
	assert.Equal(t, 100.0, output.Matches[0].Score)
	assert.Equal(t, "Professional", output.Matches[0].Pricing.Tier)
	assert.Equal(t, 490.0, output.Matches[0].Pricing.EstimatedMonthly)

	for i := 1; i < len(output.Matches); i++ {
		assert.GreaterOrEqual(t, output.Matches[i-1].Score, output.Matches[i].Score)
	}
	for _, m := range output.Matches {
		assert.Greater(t, m.Score, 0.0)
		assert.NotEqual(t, "chat-lite", m.PlatformID, "missing integration should sink chat lite to zero")
	}

	assert.Equal(t, len(output.Matches), output.Total)
	assert.Equal(t, 3, output.Evaluated)
	assert.Equal(t, answers, output.Results.Answers)
	assert.Equal(t, output.Matches, output.Results.Matches)
	assert.Equal(t, testNow, output.Results.Timestamp)
	_, err = uuid.Parse(output.Results.ShortlistID)
	assert.NoError(t, err)
}

func TestHandler_Execute_Limit(t *testing.T) {
	h := newTestHandler(t, &catalogtest.Loader{}, &fakeSessions{})

	output, err := h.Execute(context.Background(), &Input{Answers: answersPtr(catalogtest.SmallTeamAnswers()), Limit: 1})
	require.NoError(t, err)
	require.Len(t, output.Matches, 1)
	assert.Equal(t, 1, output.Total)
	assert.Equal(t, "help-desk-pro", output.Matches[0].PlatformID)
}

func TestHandler_Execute_SessionAnswers(t *testing.T) {
	sessions := &fakeSessions{answers: map[string]models.WizardAnswers{
		"session-1": catalogtest.SmallTeamAnswers(),
	}}
	h := newTestHandler(t, &catalogtest.Loader{}, sessions)

	output, err := h.Execute(context.Background(), &Input{SessionID: "session-1"})
	require.NoError(t, err)
	assert.Equal(t, "help-desk-pro", output.Matches[0].PlatformID)

	_, err = h.Execute(context.Background(), &Input{SessionID: "session-1"})
	assert.True(t, errors.HasCode(err, errors.ErrCodeWizardSessionNotFound))
}

func TestHandler_Execute_Errors(t *testing.T) {
	invalid := catalogtest.SmallTeamAnswers()
	invalid.Budget = "free"

	tests := []struct {
		name     string
		loader   *catalogtest.Loader
		input    Input
		expected errors.ErrorCode
	}{
		{
			name:     "no platform scores above zero",
			loader:   &catalogtest.Loader{Catalog: catalog.New(catalogtest.Platforms()[1:2], catalogtest.LoadedAt)},
			input:    Input{Answers: answersPtr(catalogtest.SmallTeamAnswers())},
			expected: errors.ErrCodeNoMatchesFound,
		},
		{
			name:     "empty catalog",
			loader:   &catalogtest.Loader{Catalog: catalog.New(nil, catalogtest.LoadedAt)},
			input:    Input{Answers: answersPtr(catalogtest.SmallTeamAnswers())},
			expected: errors.ErrCodeNoMatchesFound,
		},
		{
			name:     "invalid inline answers",
			loader:   &catalogtest.Loader{},
			input:    Input{Answers: &invalid},
			expected: errors.ErrCodeInvalidWizardAnswer,
		},
		{
			name:     "catalog unavailable",
			loader:   &catalogtest.Loader{Err: errors.NewCatalogLoadFailedError("platforms.json", assert.AnError)},
			input:    Input{Answers: answersPtr(catalogtest.SmallTeamAnswers())},
			expected: errors.ErrCodeCatalogLoadFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestHandler(t, tt.loader, &fakeSessions{}).Execute(context.Background(), &tt.input)
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, tt.expected), "got %v", err)
		})
	}
}

// ==========================
// Input Parsing Tests
// ==========================

func TestHandler_ParseInput(t *testing.T) {
	h := newTestHandler(t, &catalogtest.Loader{}, &fakeSessions{})

	input, err := h.parseInput(newJob(`{"sessionId":"abc","limit":3}`))
	require.NoError(t, err)
	assert.Equal(t, &Input{SessionID: "abc", Limit: 3}, input)

	input, err = h.parseInput(newJob(`{"answers":{"companySize":"1-10","priorities":["Price"]}}`))
	require.NoError(t, err)
	require.NotNil(t, input.Answers)
	assert.Equal(t, "1-10", input.Answers.CompanySize)
	assert.Equal(t, []string{"Price"}, input.Answers.Priorities)

	_, err = h.parseInput(newJob(`{"limit":3}`))
	assert.True(t, errors.HasCode(err, errors.ErrCodeJobInputValidationFailed))

	_, err = h.parseInput(newJob(`{"sessionId":"abc","limit":0}`))
	assert.True(t, errors.HasCode(err, errors.ErrCodeJobInputValidationFailed))
}

func TestNewConfig_DefaultLimit(t *testing.T) {
	assert.Equal(t, 5, NewConfig(nil, 0).DefaultLimit)
	assert.Equal(t, 8, NewConfig(nil, 8).DefaultLimit)
}
