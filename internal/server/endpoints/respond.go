// Package endpoints defines the HTTP API surface. Each endpoint is a
// type that serves its route and also builds the matching CLI command.
package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/draftdeck/draftdeck/internal/drafts"
	"github.com/draftdeck/draftdeck/internal/promptlog"
	"github.com/draftdeck/draftdeck/internal/providers"
	"github.com/draftdeck/draftdeck/internal/publish"
)

const statusSuccess = "success"

// SuccessResponse is the minimal success envelope.
type SuccessResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is the error envelope returned by every failing endpoint.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Status: "error", Message: msg})
}

// writeErr maps a domain error onto an HTTP status and writes it.
func writeErr(w http.ResponseWriter, err error) {
	writeError(w, errorStatus(err), err.Error())
}

// errorStatus maps domain errors to HTTP status codes: not found is
// 404, a bad platform is the caller's fault (400), upstream rejections
// with a 4xx keep the blame on the request (400), every other upstream
// failure is a bad gateway, and the rest are 500s.
func errorStatus(err error) int {
	var upstream *providers.UpstreamError
	var unknownPlatform *publish.ErrUnknownPlatform

	switch {
	case errors.Is(err, drafts.ErrNotFound), errors.Is(err, promptlog.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &unknownPlatform):
		return http.StatusBadRequest
	case errors.As(err, &upstream):
		if upstream.StatusCode >= 400 && upstream.StatusCode < 500 {
			return http.StatusBadRequest
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
