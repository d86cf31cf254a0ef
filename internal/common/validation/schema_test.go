// internal/common/validation/schema_test.go
package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var matchInputSchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"platformId", "answers"},
	"properties": map[string]interface{}{
		"platformId": map[string]interface{}{"type": "string", "minLength": 1},
		"limit":      map[string]interface{}{"type": "integer", "minimum": 1},
		"answers": map[string]interface{}{
			"type":     "object",
			"required": []interface{}{"companySize"},
			"properties": map[string]interface{}{
				"companySize": map[string]interface{}{
					"type": "string",
					"enum": []interface{}{"1-10", "11-50"},
				},
			},
		},
	},
}

func TestValidateInput(t *testing.T) {
	tests := []struct {
		name        string
		input       map[string]interface{}
		valid       bool
		errorFields []string
	}{
		{
			name: "valid input",
			input: map[string]interface{}{
				"platformId": "zendesk",
				"answers":    map[string]interface{}{"companySize": "1-10"},
				"limit":      float64(3),
			},
			valid: true,
		},
		{
			name:        "missing required fields",
			input:       map[string]interface{}{},
			valid:       false,
			errorFields: []string{"platformId", "answers"},
		},
		{
			name: "nested enum violation",
			input: map[string]interface{}{
				"platformId": "zendesk",
				"answers":    map[string]interface{}{"companySize": "huge"},
			},
			valid:       false,
			errorFields: []string{"answers.companySize"},
		},
		{
			name: "nested required",
			input: map[string]interface{}{
				"platformId": "zendesk",
				"answers":    map[string]interface{}{},
			},
			valid:       false,
			errorFields: []string{"answers.companySize"},
		},
		{
			name: "wrong type",
			input: map[string]interface{}{
				"platformId": 42,
				"answers":    map[string]interface{}{"companySize": "1-10"},
			},
			valid:       false,
			errorFields: []string{"platformId"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidateInput(tt.input, matchInputSchema)
			require.NoError(t, err)
			assert.Equal(t, tt.valid, result.Valid)
			for _, field := range tt.errorFields {
				assert.True(t, result.HasErrors(field), "expected error for %s, got %v", field, result.GetErrorMessages())
			}
		})
	}
}

func TestValidateInput_EmptySchemaAcceptsAll(t *testing.T) {
	result, err := ValidateInput(map[string]interface{}{"anything": true}, nil)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestCompile(t *testing.T) {
	schema, err := Compile([]byte(`{
		"type": "object",
		"required": ["systems"],
		"properties": {"systems": {"type": "array", "items": {"type": "object", "required": ["trade_name"]}}}
	}`))
	require.NoError(t, err)

	result, err := schema.ValidateBytes([]byte(`{"systems": [{"trade_name": "Zendesk"}]}`))
	require.NoError(t, err)
	assert.True(t, result.Valid)

	result, err = schema.ValidateBytes([]byte(`{"systems": [{}]}`))
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.True(t, result.HasErrors("systems.0.trade_name"), result.GetErrorMessages())
	assert.Len(t, result.GetErrorsForField("systems"), 1)
	assert.Equal(t, "REQUIRED", result.Errors[0].Code)

	_, err = schema.ValidateBytes([]byte(`{not json`))
	assert.Error(t, err)
}

func TestCompile_InvalidSchema(t *testing.T) {
	_, err := Compile([]byte(`{"type": 12}`))
	assert.Error(t, err)

	_, err = CompileMap(map[string]interface{}{"type": "object"})
	assert.NoError(t, err)
}

func TestValidate_GoValue(t *testing.T) {
	schema, err := CompileMap(matchInputSchema)
	require.NoError(t, err)

	result, err := schema.Validate(map[string]interface{}{
		"platformId": "",
		"answers":    map[string]interface{}{"companySize": "11-50"},
	})
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, []string{"platformId"}, fieldsOf(result))
}

func fieldsOf(r *ValidationResult) []string {
	out := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		out = append(out, e.Field)
	}
	return out
}
