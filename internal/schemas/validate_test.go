package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	for _, name := range []string{CareerSuggestion, InterviewQuestionSet} {
		schema, err := Get(name)
		require.NoError(t, err, "schema %s should be embedded", name)
		assert.Contains(t, schema, `"required"`)
	}

	_, err := Get("no_such_schema")
	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestValidate_CareerSuggestion(t *testing.T) {
	tests := []struct {
		name      string
		json      string
		wantError bool
		field     string
	}{
		{
			name: "valid document",
			json: `{"career": "ML Engineer", "reasons": "Strong technical fit"}`,
		},
		{
			name:      "missing career",
			json:      `{"reasons": "Strong technical fit"}`,
			wantError: true,
			field:     "(root)",
		},
		{
			name:      "empty reasons",
			json:      `{"career": "ML Engineer", "reasons": ""}`,
			wantError: true,
			field:     "reasons",
		},
		{
			name:      "career wrong type",
			json:      `{"career": 42, "reasons": "fit"}`,
			wantError: true,
			field:     "career",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(CareerSuggestion, tt.json)
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr), "expected ValidationError, got %v", err)
			found := false
			for _, fe := range validationErr.Errors {
				if fe.Field == tt.field {
					found = true
				}
			}
			assert.True(t, found, "expected error on field %s, got %v", tt.field, validationErr.Errors)
		})
	}
}

func TestValidate_InterviewQuestionSet(t *testing.T) {
	tests := []struct {
		name      string
		json      string
		wantError bool
	}{
		{
			name: "valid document",
			json: `{"role": "Data Scientist", "questions": ["Q1", "Q2", "Q3"]}`,
		},
		{
			name:      "empty questions array",
			json:      `{"role": "Data Scientist", "questions": []}`,
			wantError: true,
		},
		{
			name:      "missing role",
			json:      `{"questions": ["Q1"]}`,
			wantError: true,
		},
		{
			name:      "question wrong type",
			json:      `{"role": "Data Scientist", "questions": [1, 2]}`,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(InterviewQuestionSet, tt.json)
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateJSONString_InvalidSchema(t *testing.T) {
	err := ValidateJSONString(`{not a schema`, `{}`)
	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}
