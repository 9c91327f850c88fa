// Package types provides type definitions for structured data used throughout the career-mentor system.
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// CareerSuggestion is the structured result of a career guidance generation.
// Both fields are non-empty on a successful generation; the value is
// transient and never persisted.
type CareerSuggestion struct {
	Career  string `json:"career"`
	Reasons string `json:"reasons"`
}

// InterviewQuestionSet is the structured result of an interview question
// generation: the role the questions target and an ordered, non-empty list
// of question strings.
type InterviewQuestionSet struct {
	Role      string   `json:"role"`
	Questions []string `json:"questions"`
}

// GuidanceRequest carries the user inputs for a career guidance generation.
type GuidanceRequest struct {
	Interests string `json:"interests" validate:"required,min=1"`
	Skills    string `json:"skills" validate:"required,min=1"`
	Goals     string `json:"goals" validate:"required,min=1"`
}

// InterviewRequest carries the user input for an interview question generation.
type InterviewRequest struct {
	Role string `json:"role" validate:"required,min=1"`
}

// Validate validates the GuidanceRequest using the validator.
func (r *GuidanceRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the InterviewRequest using the validator.
func (r *InterviewRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Complete reports whether all required fields carry non-blank text.
// Whitespace-only input counts as incomplete.
func (r *GuidanceRequest) Complete() bool {
	return strings.TrimSpace(r.Interests) != "" &&
		strings.TrimSpace(r.Skills) != "" &&
		strings.TrimSpace(r.Goals) != ""
}

// Complete reports whether the role carries non-blank text.
func (r *InterviewRequest) Complete() bool {
	return strings.TrimSpace(r.Role) != ""
}
