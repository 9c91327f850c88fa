package mentor

import (
	"context"
	"errors"
	"testing"

	"github.com/jonathan/career-mentor/internal/llm"
	"github.com/jonathan/career-mentor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newStubGenerator returns a Generator whose factory hands out the given
// mock client and counts how many clients were constructed.
func newStubGenerator(mock *llm.MockClient) (*Generator, *int) {
	constructed := 0
	factory := func(ctx context.Context, cfg *llm.Config, apiKey string) (llm.Client, error) {
		constructed++
		return mock, nil
	}
	return NewWithFactory(llm.DefaultConfig(), factory), &constructed
}

func TestCareerGuidance_Success(t *testing.T) {
	mock := llm.NewMockClient(`{"career": "ML Engineer", "reasons": "Strong technical fit"}`)
	gen, constructed := newStubGenerator(mock)

	req := types.GuidanceRequest{Interests: "AI", Skills: "coding", Goals: "startup"}
	suggestion, err := gen.CareerGuidance(context.Background(), req, "test-key")
	require.NoError(t, err)

	assert.Equal(t, "ML Engineer", suggestion.Career)
	assert.Equal(t, "Strong technical fit", suggestion.Reasons)
	assert.Equal(t, 1, *constructed)
	assert.Equal(t, 1, mock.Calls)
	assert.True(t, mock.Closed)

	// Inputs are interpolated verbatim into the prompt
	assert.Contains(t, mock.LastPrompt, "interests: AI")
	assert.Contains(t, mock.LastPrompt, "skills: coding")
	assert.Contains(t, mock.LastPrompt, "goals: startup")
	assert.Equal(t, llm.TierStandard, mock.LastTier)
}

func TestCareerGuidance_MissingAPIKey(t *testing.T) {
	mock := llm.NewMockClient(`{"career": "x", "reasons": "y"}`)
	gen, constructed := newStubGenerator(mock)

	_, err := gen.CareerGuidance(context.Background(), types.GuidanceRequest{
		Interests: "AI", Skills: "coding", Goals: "startup",
	}, "")

	var apiErr *APICallError
	require.True(t, errors.As(err, &apiErr))
	// No client was built, no call left the process
	assert.Equal(t, 0, *constructed)
	assert.Equal(t, 0, mock.Calls)
}

func TestCareerGuidance_ProviderFailure(t *testing.T) {
	mock := llm.NewMockClientWithError(errors.New("429 quota exceeded"))
	gen, _ := newStubGenerator(mock)

	_, err := gen.CareerGuidance(context.Background(), types.GuidanceRequest{
		Interests: "AI", Skills: "coding", Goals: "startup",
	}, "test-key")

	var apiErr *APICallError
	require.True(t, errors.As(err, &apiErr))
	assert.Contains(t, err.Error(), "quota exceeded")
	// Single attempt, no retry
	assert.Equal(t, 1, mock.Calls)
}

func TestCareerGuidance_MalformedJSON(t *testing.T) {
	mock := llm.NewMockClient(`not json at all`)
	gen, _ := newStubGenerator(mock)

	_, err := gen.CareerGuidance(context.Background(), types.GuidanceRequest{
		Interests: "AI", Skills: "coding", Goals: "startup",
	}, "test-key")

	// Schema validation rejects non-JSON before unmarshalling
	assert.Error(t, err)
}

func TestCareerGuidance_SchemaViolation(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{name: "missing reasons", response: `{"career": "ML Engineer"}`},
		{name: "empty career", response: `{"career": "", "reasons": "fit"}`},
		{name: "wrong type", response: `{"career": 1, "reasons": "fit"}`},
		{name: "whitespace only career", response: `{"career": "  ", "reasons": "fit"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockClient(tt.response)
			gen, _ := newStubGenerator(mock)

			suggestion, err := gen.CareerGuidance(context.Background(), types.GuidanceRequest{
				Interests: "AI", Skills: "coding", Goals: "startup",
			}, "test-key")
			assert.Error(t, err)
			assert.Nil(t, suggestion)
		})
	}
}

func TestCareerGuidance_NoCachingBetweenCalls(t *testing.T) {
	mock := llm.NewMockClient(`{"career": "ML Engineer", "reasons": "Strong technical fit"}`)
	gen, constructed := newStubGenerator(mock)

	req := types.GuidanceRequest{Interests: "AI", Skills: "coding", Goals: "startup"}
	for i := 0; i < 2; i++ {
		_, err := gen.CareerGuidance(context.Background(), req, "test-key")
		require.NoError(t, err)
	}

	// Identical inputs still produce two independent provider calls
	assert.Equal(t, 2, *constructed)
	assert.Equal(t, 2, mock.Calls)
}

func TestCareerGuidance_ClientFactoryFailure(t *testing.T) {
	gen := NewWithFactory(llm.DefaultConfig(), func(ctx context.Context, cfg *llm.Config, apiKey string) (llm.Client, error) {
		return nil, errors.New("bad credential format")
	})

	_, err := gen.CareerGuidance(context.Background(), types.GuidanceRequest{
		Interests: "AI", Skills: "coding", Goals: "startup",
	}, "test-key")

	var apiErr *APICallError
	require.True(t, errors.As(err, &apiErr))
	assert.Contains(t, err.Error(), "failed to create LLM client")
}

func TestInterviewQuestions_Success(t *testing.T) {
	mock := llm.NewMockClient(`{"role": "Data Scientist", "questions": ["Q1", "Q2", "Q3"]}`)
	gen, _ := newStubGenerator(mock)

	set, err := gen.InterviewQuestions(context.Background(), types.InterviewRequest{Role: "Data Scientist"}, "test-key")
	require.NoError(t, err)

	assert.Equal(t, "Data Scientist", set.Role)
	// Order preserved exactly as returned
	assert.Equal(t, []string{"Q1", "Q2", "Q3"}, set.Questions)
	assert.Contains(t, mock.LastPrompt, "for the role of Data Scientist")
}

func TestInterviewQuestions_MissingAPIKey(t *testing.T) {
	mock := llm.NewMockClient(`{"role": "x", "questions": ["q"]}`)
	gen, constructed := newStubGenerator(mock)

	_, err := gen.InterviewQuestions(context.Background(), types.InterviewRequest{Role: "Data Scientist"}, "")

	var apiErr *APICallError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 0, *constructed)
}

func TestInterviewQuestions_EmptyQuestions(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{name: "empty array", response: `{"role": "Data Scientist", "questions": []}`},
		{name: "missing questions", response: `{"role": "Data Scientist"}`},
		{name: "whitespace only questions", response: `{"role": "Data Scientist", "questions": [" ", ""]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockClient(tt.response)
			gen, _ := newStubGenerator(mock)

			set, err := gen.InterviewQuestions(context.Background(), types.InterviewRequest{Role: "Data Scientist"}, "test-key")
			assert.Error(t, err)
			assert.Nil(t, set)
		})
	}
}

func TestInterviewQuestions_CodeBlockWrappedResponse(t *testing.T) {
	mock := llm.NewMockClient("```json\n{\"role\": \"Backend Engineer\", \"questions\": [\"How do goroutines differ from threads?\"]}\n```")
	gen, _ := newStubGenerator(mock)

	set, err := gen.InterviewQuestions(context.Background(), types.InterviewRequest{Role: "Backend Engineer"}, "test-key")
	require.NoError(t, err)
	assert.Len(t, set.Questions, 1)
}

func TestInterviewQuestions_ProviderFailure(t *testing.T) {
	mock := llm.NewMockClientWithError(errors.New("connection reset"))
	gen, _ := newStubGenerator(mock)

	_, err := gen.InterviewQuestions(context.Background(), types.InterviewRequest{Role: "Data Scientist"}, "test-key")

	var apiErr *APICallError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 1, mock.Calls)
}
