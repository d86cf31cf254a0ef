package errors

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertToBPMNError(t *testing.T) {
	t.Run("retryable catalog failure keeps its retry budget", func(t *testing.T) {
		bpmnErr := ConvertToBPMNError(NewCatalogLoadFailedError("data/platforms.json", fmt.Errorf("permission denied")))

		assert.Equal(t, "CATALOG_LOAD_FAILED", bpmnErr.Code)
		assert.True(t, bpmnErr.Retryable)
		assert.Equal(t, 3, bpmnErr.Retries)
		assert.Equal(t, "CATALOG_LOAD_FAILED", bpmnErr.ErrorVariables["originalErrorCode"])
	})

	t.Run("business error is thrown without retries", func(t *testing.T) {
		bpmnErr := ConvertToBPMNError(NewPlatformNotFoundError("acme-desk"))

		assert.Equal(t, "PLATFORM_NOT_FOUND", bpmnErr.Code)
		assert.Zero(t, bpmnErr.Retries)

		vars := bpmnErr.ToErrorVariables()
		assert.Equal(t, "Platform not found", vars["errorMessage"])
		assert.Equal(t, "No platform found with ID: acme-desk", vars["errorDetails"])
		assert.Equal(t, "acme-desk", vars["platformId"])
	})

	t.Run("job input errors share one BPMN code", func(t *testing.T) {
		assert.Equal(t, "VALIDATION_FAILED", ConvertToBPMNError(NewJobInputValidationFailedError("calculate-tco", []string{"inputs: required"})).Code)
		assert.Equal(t, "VALIDATION_FAILED", ConvertToBPMNError(NewInputParsingFailedError(fmt.Errorf("bad json"))).Code)
	})

	t.Run("unknown code falls back to itself", func(t *testing.T) {
		bpmnErr := ConvertToBPMNError(&StandardError{Code: "SOMETHING_ELSE", Retryable: true})
		assert.Equal(t, "SOMETHING_ELSE", bpmnErr.Code)
		assert.Zero(t, bpmnErr.Retries)
	})
}

func TestNormalize(t *testing.T) {
	original := NewNoMatchesFoundError(12)
	wrapped := fmt.Errorf("find matches: %w", original)

	assert.Same(t, original, Normalize(wrapped))
	assert.True(t, HasCode(wrapped, ErrCodeNoMatchesFound))
	assert.False(t, HasCode(wrapped, ErrCodePlatformNotFound))

	timeout := Normalize(fmt.Errorf("load: %w", context.DeadlineExceeded))
	assert.Equal(t, ErrorCode("TIMEOUT_ERROR"), timeout.Code)
	assert.True(t, timeout.Retryable)

	internal := Normalize(fmt.Errorf("boom"))
	require.NotNil(t, internal)
	assert.Equal(t, ErrCodeInternal, internal.Code)
	assert.False(t, internal.Retryable)
}

func TestGetRetryCount(t *testing.T) {
	assert.Equal(t, 3, GetRetryCount(ErrCodeWizardSessionStoreFailed))
	assert.Equal(t, 3, GetRetryCount(ErrCodeCatalogLoadFailed))
	assert.Equal(t, 0, GetRetryCount(ErrCodeInvalidTCOInputs))
	assert.True(t, IsRetryableErrorCode(ErrCodeCatalogLoadFailed))
	assert.False(t, IsRetryableErrorCode(ErrCodeNoMatchesFound))
}

func TestGetErrorCategory(t *testing.T) {
	tests := map[ErrorCode]string{
		ErrCodeCatalogValidationFailed:  "CATALOG",
		ErrCodePlatformNotFound:         "CATALOG",
		ErrCodeInvalidWizardAnswer:      "MATCHING",
		ErrCodeNoMatchesFound:           "MATCHING",
		ErrCodeInvalidTCOInputs:         "TCO",
		ErrCodeJobInputValidationFailed: "VALIDATION",
		ErrCodeInvalidMomentumWindow:    "VALIDATION",
		ErrCodeInternal:                 "OTHER",
	}

	for code, want := range tests {
		assert.Equal(t, want, GetErrorCategory(code), string(code))
	}
}

func TestFeatureCatalogErrors(t *testing.T) {
	loadErr := NewFeatureCatalogLoadFailedError("features.json", fmt.Errorf("no such file"))
	assert.Equal(t, ErrCodeCatalogLoadFailed, loadErr.Code)
	assert.Equal(t, "Feature catalog could not be loaded", loadErr.Message)
	assert.True(t, loadErr.Retryable)
	assert.Equal(t, "features", loadErr.Metadata["catalog"])

	validationErr := NewFeatureCatalogValidationFailedError([]string{"a", "b"})
	assert.Equal(t, ErrCodeCatalogValidationFailed, validationErr.Code)
	assert.Equal(t, "a; b", validationErr.Details)
	assert.Equal(t, 2, validationErr.Metadata["problemCount"])
	assert.Equal(t, "features", validationErr.Metadata["catalog"])

	windowErr := NewInvalidMomentumWindowError("0", 730)
	assert.Equal(t, ErrCodeInvalidMomentumWindow, windowErr.Code)
	assert.Contains(t, windowErr.Details, `between 1 and 730, got "0"`)
}
