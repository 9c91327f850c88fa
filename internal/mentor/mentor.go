// Package mentor is the generation gateway: it turns user inputs into
// provider prompts with a declared output shape, makes a single provider
// call, and returns validated structured results. It holds no state between
// calls; the credential is passed in per invocation.
package mentor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/jonathan/career-mentor/internal/llm"
	"github.com/jonathan/career-mentor/internal/prompts"
	"github.com/jonathan/career-mentor/internal/schemas"
	"github.com/jonathan/career-mentor/internal/types"
)

const promptFile = "mentor.json"

// ClientFactory constructs an LLM client for one call. A fresh client is
// created per invocation so the gateway is a pure function of inputs and
// credential.
type ClientFactory func(ctx context.Context, cfg *llm.Config, apiKey string) (llm.Client, error)

// Generator generates career guidance and interview questions through a
// configured LLM provider. Each operation makes exactly one provider call;
// there is no retry, caching, or shared state between calls.
type Generator struct {
	cfg       *llm.Config
	newClient ClientFactory
}

// New creates a Generator backed by the real provider clients.
func New(cfg *llm.Config) *Generator {
	return NewWithFactory(cfg, llm.NewClient)
}

// NewWithFactory creates a Generator with a custom client factory.
// Tests use this to substitute a deterministic client.
func NewWithFactory(cfg *llm.Config, factory ClientFactory) *Generator {
	if cfg == nil {
		cfg = llm.DefaultConfig()
	}
	return &Generator{
		cfg:       cfg,
		newClient: factory,
	}
}

// CareerGuidance suggests a career path from the user's interests, skills,
// and goals. The provider response must conform to the career_suggestion
// schema; anything else is an error.
func (g *Generator) CareerGuidance(ctx context.Context, req types.GuidanceRequest, apiKey string) (*types.CareerSuggestion, error) {
	if apiKey == "" {
		return nil, &APICallError{Message: "API key is required"}
	}

	prompt, err := prompts.Render(promptFile, "career-guidance", map[string]string{
		"Interests": req.Interests,
		"Skills":    req.Skills,
		"Goals":     req.Goals,
	})
	if err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	responseText, err := g.generate(ctx, prompt, apiKey)
	if err != nil {
		return nil, err
	}

	if err := schemas.Validate(schemas.CareerSuggestion, responseText); err != nil {
		var schemaErr *schemas.ValidationError
		if errors.As(err, &schemaErr) {
			return nil, &ValidationError{Message: "response does not match the career suggestion shape: " + schemaErr.Error()}
		}
		return nil, &ParseError{Message: "failed to validate career suggestion response", Cause: err}
	}

	var suggestion types.CareerSuggestion
	if err := json.Unmarshal([]byte(responseText), &suggestion); err != nil {
		return nil, &ParseError{Message: "failed to parse career suggestion JSON", Cause: err}
	}

	suggestion.Career = strings.TrimSpace(suggestion.Career)
	suggestion.Reasons = strings.TrimSpace(suggestion.Reasons)
	if suggestion.Career == "" {
		return nil, &ValidationError{Field: "career", Message: "career must not be blank"}
	}
	if suggestion.Reasons == "" {
		return nil, &ValidationError{Field: "reasons", Message: "reasons must not be blank"}
	}

	return &suggestion, nil
}

// InterviewQuestions generates tailored interview questions for a job role.
// The provider response must conform to the interview_question_set schema.
func (g *Generator) InterviewQuestions(ctx context.Context, req types.InterviewRequest, apiKey string) (*types.InterviewQuestionSet, error) {
	if apiKey == "" {
		return nil, &APICallError{Message: "API key is required"}
	}

	prompt, err := prompts.Render(promptFile, "interview-questions", map[string]string{
		"Role": req.Role,
	})
	if err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	responseText, err := g.generate(ctx, prompt, apiKey)
	if err != nil {
		return nil, err
	}

	if err := schemas.Validate(schemas.InterviewQuestionSet, responseText); err != nil {
		var schemaErr *schemas.ValidationError
		if errors.As(err, &schemaErr) {
			return nil, &ValidationError{Message: "response does not match the interview question shape: " + schemaErr.Error()}
		}
		return nil, &ParseError{Message: "failed to validate interview question response", Cause: err}
	}

	var set types.InterviewQuestionSet
	if err := json.Unmarshal([]byte(responseText), &set); err != nil {
		return nil, &ParseError{Message: "failed to parse interview question JSON", Cause: err}
	}

	set.Role = strings.TrimSpace(set.Role)
	questions := make([]string, 0, len(set.Questions))
	for _, q := range set.Questions {
		if trimmed := strings.TrimSpace(q); trimmed != "" {
			questions = append(questions, trimmed)
		}
	}
	set.Questions = questions
	if len(set.Questions) == 0 {
		return nil, &ValidationError{Field: "questions", Message: "at least one question is required"}
	}

	return &set, nil
}

// generate makes the single provider call for one operation: construct a
// client for this credential, request JSON output, release the client.
func (g *Generator) generate(ctx context.Context, prompt string, apiKey string) (string, error) {
	client, err := g.newClient(ctx, g.cfg, apiKey)
	if err != nil {
		return "", &APICallError{Message: "failed to create LLM client", Cause: err}
	}
	defer func() { _ = client.Close() }()

	responseText, err := client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return "", &APICallError{Message: "failed to generate content from LLM", Cause: err}
	}

	return responseText, nil
}
