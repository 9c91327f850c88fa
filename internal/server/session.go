package server

import (
	"strings"
	"sync"
)

// Feature views that hold at most one in-flight generation each.
const (
	ViewGuidance  = "career-guidance"
	ViewInterview = "interview-questions"
)

// Session holds the provider credential for the lifetime of the process and
// the in-flight slot for each feature view. The credential lives in memory
// only and is never persisted or echoed back to clients.
type Session struct {
	mu       sync.RWMutex
	apiKey   string
	inFlight map[string]bool
}

// NewSession creates an empty session. Pass a non-empty key to seed the
// credential from the environment at startup.
func NewSession(apiKey string) *Session {
	return &Session{
		apiKey:   strings.TrimSpace(apiKey),
		inFlight: make(map[string]bool),
	}
}

// SetAPIKey stores the credential, replacing any previous value.
func (s *Session) SetAPIKey(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apiKey = strings.TrimSpace(key)
}

// APIKey returns the stored credential, or "" if none is set.
func (s *Session) APIKey() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.apiKey
}

// HasAPIKey reports whether a non-empty credential is stored.
func (s *Session) HasAPIKey() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.apiKey != ""
}

// TryAcquire claims the in-flight slot for a view. It returns false if the
// view already has a generation in progress; the caller must not start
// another one.
func (s *Session) TryAcquire(view string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[view] {
		return false
	}
	s.inFlight[view] = true
	return true
}

// Release frees the in-flight slot for a view. Safe to call on a view that
// holds no slot.
func (s *Session) Release(view string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, view)
}
