package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/jonathan/career-mentor/internal/inspiration"
	"github.com/jonathan/career-mentor/internal/types"
)

// Advisor generates career guidance and interview questions. Satisfied by
// mentor.Generator; tests substitute a stub.
type Advisor interface {
	CareerGuidance(ctx context.Context, req types.GuidanceRequest, apiKey string) (*types.CareerSuggestion, error)
	InterviewQuestions(ctx context.Context, req types.InterviewRequest, apiKey string) (*types.InterviewQuestionSet, error)
}

// SessionKeyRequest represents the request body for PUT /v1/session/key
type SessionKeyRequest struct {
	APIKey string `json:"api_key"`
}

// SessionResponse represents the response for GET /v1/session
type SessionResponse struct {
	APIKeySet bool `json:"api_key_set"`
}

// InspirationResponse represents the response for GET /v1/inspiration
type InspirationResponse struct {
	Quote string `json:"quote"`
}

// ExampleResponse represents the response for POST /v1/example
type ExampleResponse struct {
	Output string `json:"output"`
}

// exampleOutput is the fixed illustrative block returned by the How It Works
// view. It is served without a provider call, but only once a credential is
// stored, so the demo exercises the same gate as the real features.
const exampleOutput = `here's a poem for john, the coding star

in lines of code, john finds his way,
debugging issues day by day,
with coffee close and screen aglow,
he makes the functions smoothly flow.

a developer's life, he chose to lead,
turning concepts into reality with speed,
in john's world of ones and zeros bright,
every bug fixed brings pure delight.`

// handleSetSessionKey stores the provider credential for this session
func (s *Server) handleSetSessionKey(w http.ResponseWriter, r *http.Request) {
	var req SessionKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.APIKey) == "" {
		err := &ErrValidation{Field: "api_key", Message: "must not be empty"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.session.SetAPIKey(req.APIKey)
	log.Printf("Session API key updated")
	s.jsonResponse(w, http.StatusOK, SessionResponse{APIKeySet: true})
}

// handleGetSession reports whether a credential is stored. The key itself is
// never returned.
func (s *Server) handleGetSession(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, SessionResponse{APIKeySet: s.session.HasAPIKey()})
}

// handleCareerGuidance generates a career suggestion from interests, skills,
// and goals
func (s *Server) handleCareerGuidance(w http.ResponseWriter, r *http.Request) {
	var req types.GuidanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	// The credential gate comes first: without a key the request is
	// rejected regardless of input completeness.
	if !s.session.HasAPIKey() {
		err := &ErrMissingCredential{}
		s.errorResponse(w, HTTPStatus(err), "Please enter your API key first!")
		return
	}
	if !req.Complete() {
		err := &ErrValidation{Field: "interests/skills/goals", Message: "all three fields are required"}
		s.errorResponse(w, HTTPStatus(err), "Please fill in all fields (interests, skills, and goals) before generating guidance.")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !s.session.TryAcquire(ViewGuidance) {
		err := &ErrViewBusy{View: ViewGuidance}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	defer s.session.Release(ViewGuidance)

	suggestion, err := s.advisor.CareerGuidance(r.Context(), req, s.session.APIKey())
	if err != nil {
		log.Printf("Career guidance generation failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), "An error occurred: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, suggestion)
}

// handleInterviewQuestions generates interview questions for a job role
func (s *Server) handleInterviewQuestions(w http.ResponseWriter, r *http.Request) {
	var req types.InterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	// Same gate order as career guidance: credential before completeness.
	if !s.session.HasAPIKey() {
		err := &ErrMissingCredential{}
		s.errorResponse(w, HTTPStatus(err), "Please enter your API key first!")
		return
	}
	if !req.Complete() {
		err := &ErrValidation{Field: "role", Message: "must not be empty"}
		s.errorResponse(w, HTTPStatus(err), "Please enter a job role first.")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !s.session.TryAcquire(ViewInterview) {
		err := &ErrViewBusy{View: ViewInterview}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	defer s.session.Release(ViewInterview)

	set, err := s.advisor.InterviewQuestions(r.Context(), req, s.session.APIKey())
	if err != nil {
		log.Printf("Interview question generation failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), "An error occurred: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, set)
}

// handleExample returns the fixed demo output for the How It Works view
func (s *Server) handleExample(w http.ResponseWriter, _ *http.Request) {
	if !s.session.HasAPIKey() {
		err := &ErrMissingCredential{}
		s.errorResponse(w, HTTPStatus(err), "Please enter your API key first!")
		return
	}
	s.jsonResponse(w, http.StatusOK, ExampleResponse{Output: exampleOutput})
}

// handleInspiration returns one random quote
func (s *Server) handleInspiration(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, InspirationResponse{Quote: inspiration.Random()})
}
