package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/career-mentor/internal/llm"
	"github.com/jonathan/career-mentor/internal/mentor"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	session    *Session
	advisor    Advisor
}

// Config holds server configuration
type Config struct {
	Port     int
	Provider string
	Model    string
	// APIKey optionally seeds the session credential from the environment.
	APIKey string
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	llmCfg := llm.ConfigForProvider(cfg.Provider)
	if cfg.Model != "" {
		llmCfg = llmCfg.WithModel(llm.TierStandard, cfg.Model)
	}

	s := &Server{
		session: NewSession(cfg.APIKey),
		advisor: mentor.New(llmCfg),
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.routes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Generation calls can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the router with middleware applied
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	// Session credential
	mux.HandleFunc("PUT /v1/session/key", s.handleSetSessionKey)
	mux.HandleFunc("GET /v1/session", s.handleGetSession)

	// Generation endpoints
	mux.HandleFunc("POST /v1/career-guidance", s.handleCareerGuidance)
	mux.HandleFunc("POST /v1/interview-questions", s.handleInterviewQuestions)
	mux.HandleFunc("POST /v1/example", s.handleExample)

	// Static content
	mux.HandleFunc("GET /v1/inspiration", s.handleInspiration)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /", s.handleIndex)

	return s.withLogging(s.withRequestID(s.withCORS(mux)))
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRequestID tags each request with an ID for log correlation
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
