// internal/catalog/catalog_test.go
package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"platform-finder/internal/common/errors"
	"platform-finder/internal/common/logger"
	"platform-finder/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLoader(t *testing.T, path string) *Loader {
	t.Helper()
	loader, err := NewLoader(FileSource{Path: path}, logger.NewTestLogger(t))
	require.NoError(t, err)
	loader.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }
	return loader
}

// ==========================
// Loader
// ==========================

func TestLoad_ValidCatalog(t *testing.T) {
	cat, err := newTestLoader(t, "testdata/platforms.json").Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, cat.Len())
	assert.Equal(t, Meta{Total: 2, LastUpdated: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}, cat.Meta())

	platforms := cat.Platforms()
	assert.Equal(t, "Acme  Desk", platforms[0].TradeName)
	assert.Equal(t, models.FlexString("12"), platforms[0].Integrations.TotalIntegrations)
	assert.Equal(t, models.FlexString("50+"), platforms[1].Integrations.TotalIntegrations)
	assert.Nil(t, platforms[0].Suitability)
}

func TestLoad_ShippedCatalogIsValid(t *testing.T) {
	cat, err := newTestLoader(t, "../../data/platforms.json").Load(context.Background())
	require.NoError(t, err)
	assert.Greater(t, cat.Len(), 0)

	zendesk, err := cat.Find("zendesk")
	require.NoError(t, err)
	require.NotNil(t, zendesk.Pricing.HiddenCosts)
	assert.Equal(t, 24.0, zendesk.Pricing.HiddenCosts.TrainingHoursEstimate)
}

func TestLoad_SchemaViolation(t *testing.T) {
	_, err := newTestLoader(t, "testdata/invalid.json").Load(context.Background())
	require.Error(t, err)

	stdErr, ok := errors.AsStandardError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeCatalogValidationFailed, stdErr.Code)
	assert.Contains(t, stdErr.Details, "systems.0.trade_name")
	assert.Contains(t, stdErr.Details, "systems.0.reputation.g2_rating")
	assert.False(t, stdErr.Retryable)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"systems": [`), 0o600))

	_, err := newTestLoader(t, path).Load(context.Background())
	assert.True(t, errors.HasCode(err, errors.ErrCodeCatalogValidationFailed))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := newTestLoader(t, "testdata/does-not-exist.json").Load(context.Background())
	require.Error(t, err)

	stdErr, ok := errors.AsStandardError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeCatalogLoadFailed, stdErr.Code)
	assert.True(t, stdErr.Retryable)
}

func TestLoad_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestLoader(t, "testdata/platforms.json").Load(ctx)
	assert.True(t, errors.HasCode(err, errors.ErrCodeCatalogLoadFailed))
}

func TestLoad_ReReadsEveryCall(t *testing.T) {
	data, err := os.ReadFile("testdata/platforms.json")
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "platforms.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	loader := newTestLoader(t, path)
	first, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, first.Len())

	require.NoError(t, os.WriteFile(path, []byte(`{"systems": []}`), 0o600))
	second, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second.Len())
	assert.Equal(t, 2, first.Len())
}

func TestNewLoaderWithSchema_InvalidSchema(t *testing.T) {
	_, err := NewLoaderWithSchema(FileSource{Path: "x"}, []byte(`{"type": 5}`), logger.NewNoOpLogger())
	assert.Error(t, err)
}

// ==========================
// Catalog
// ==========================

func TestCatalog_Find(t *testing.T) {
	cat := New([]models.Platform{
		{TradeName: "Help Scout"},
		{TradeName: "Zendesk"},
		{TradeName: "help   scout"},
	}, time.Now())

	p, err := cat.Find("help-scout")
	require.NoError(t, err)
	assert.Equal(t, "Help Scout", p.TradeName)

	_, err = cat.Find("missing")
	require.Error(t, err)
	stdErr, ok := errors.AsStandardError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodePlatformNotFound, stdErr.Code)
	assert.Equal(t, "Platform not found", stdErr.Message)
}

func TestCatalog_FindAll(t *testing.T) {
	cat := New([]models.Platform{{TradeName: "Zendesk"}, {TradeName: "Freshdesk"}}, time.Now())

	found, err := cat.FindAll([]string{"freshdesk", "zendesk"})
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "Freshdesk", found[0].TradeName)
	assert.Equal(t, "Zendesk", found[1].TradeName)

	_, err = cat.FindAll([]string{"zendesk", "nope"})
	assert.True(t, errors.HasCode(err, errors.ErrCodePlatformNotFound))
}

func TestCatalog_IsImmutable(t *testing.T) {
	source := []models.Platform{{TradeName: "Zendesk"}}
	cat := New(source, time.Now())

	source[0].TradeName = "Changed"
	got := cat.Platforms()
	got[0].TradeName = "Also changed"

	p, err := cat.Find("zendesk")
	require.NoError(t, err)
	assert.Equal(t, "Zendesk", p.TradeName)
	assert.Equal(t, "Zendesk", cat.Platforms()[0].TradeName)
}
