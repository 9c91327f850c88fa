// Package server provides the HTTP JSON API and embedded web UI for the
// career mentor.
package server

import (
	"net/http"

	"github.com/jonathan/career-mentor/internal/mentor"
)

// ErrMissingCredential indicates no API key has been stored for the session
type ErrMissingCredential struct{}

func (e *ErrMissingCredential) Error() string {
	return "no API key is set; store one before generating"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return "validation error: " + e.Field + " - " + e.Message
}

// ErrViewBusy indicates the view already has a generation in flight
type ErrViewBusy struct {
	View string
}

func (e *ErrViewBusy) Error() string {
	return "a request is already in progress for " + e.View
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrMissingCredential:
		return http.StatusUnauthorized
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrViewBusy:
		return http.StatusConflict
	case *mentor.APICallError, *mentor.ParseError, *mentor.ValidationError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
