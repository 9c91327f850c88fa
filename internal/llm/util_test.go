package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "JSON wrapped in json code block",
			input:    "```json\n{\"career\": \"ML Engineer\"}\n```",
			expected: `{"career": "ML Engineer"}`,
		},
		{
			name:     "JSON wrapped in generic code block",
			input:    "```\n{\"career\": \"ML Engineer\"}\n```",
			expected: `{"career": "ML Engineer"}`,
		},
		{
			name:     "plain JSON without code blocks",
			input:    `{"career": "ML Engineer"}`,
			expected: `{"career": "ML Engineer"}`,
		},
		{
			name:     "whitespace around code block",
			input:    "  ```json\n{\"a\": 1}\n```  ",
			expected: `{"a": 1}`,
		},
		{
			name:     "language identifier on first line",
			input:    "```javascript\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "language identifier run into the payload",
			input:    "```json{\"a\": 1}```",
			expected: `{"a": 1}`,
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestMockClient_RecordsCalls(t *testing.T) {
	mock := NewMockClient(`{"ok": true}`)

	out, err := mock.GenerateJSON(context.Background(), "first prompt", TierStandard)
	require.NoError(t, err)
	assert.Equal(t, `{"ok": true}`, out)

	_, err = mock.GenerateContent(context.Background(), "second prompt", TierLite)
	require.NoError(t, err)

	assert.Equal(t, 2, mock.Calls)
	assert.Equal(t, "second prompt", mock.LastPrompt)
	assert.Equal(t, TierLite, mock.LastTier)
}

func TestMockClient_Error(t *testing.T) {
	boom := errors.New("quota exceeded")
	mock := NewMockClientWithError(boom)

	_, err := mock.GenerateJSON(context.Background(), "prompt", TierStandard)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, mock.Calls)
}

func TestMockClient_CleansCodeBlocks(t *testing.T) {
	mock := NewMockClient("```json\n{\"career\": \"Teacher\"}\n```")

	out, err := mock.GenerateJSON(context.Background(), "prompt", TierStandard)
	require.NoError(t, err)
	assert.Equal(t, `{"career": "Teacher"}`, out)
}
