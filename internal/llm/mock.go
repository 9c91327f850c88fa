package llm

import "context"

// MockClient is a deterministic Client implementation for testing.
// It records every prompt it receives and returns a canned response.
type MockClient struct {
	// Response is the fixed text returned by both generate methods.
	Response string

	// Err, if set, is returned instead of a response.
	Err error

	// Calls counts how many generate calls were made.
	Calls int

	// LastPrompt stores the most recent prompt.
	LastPrompt string

	// LastTier stores the most recent tier.
	LastTier ModelTier

	// Closed reports whether Close was called.
	Closed bool
}

// NewMockClient creates a mock client with the given fixed response.
func NewMockClient(response string) *MockClient {
	return &MockClient{Response: response}
}

// NewMockClientWithError creates a mock client that always fails.
func NewMockClientWithError(err error) *MockClient {
	return &MockClient{Err: err}
}

// GenerateContent returns the configured response or error.
func (m *MockClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return m.generate(prompt, tier)
}

// GenerateJSON returns the configured response or error.
func (m *MockClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	text, err := m.generate(prompt, tier)
	if err != nil {
		return "", err
	}
	return CleanJSONBlock(text), nil
}

func (m *MockClient) generate(prompt string, tier ModelTier) (string, error) {
	m.Calls++
	m.LastPrompt = prompt
	m.LastTier = tier

	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// GetModel returns a fixed mock model name.
func (m *MockClient) GetModel(tier ModelTier) string {
	return "mock-" + string(tier)
}

// Close marks the client closed.
func (m *MockClient) Close() error {
	m.Closed = true
	return nil
}
