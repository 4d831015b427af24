// Package httputil holds the JSON response helpers every handler
// writes through, so the wire shape of errors stays uniform across the
// API.
package httputil

import (
	"net/http"

	"github.com/bytedance/sonic"
)

// ErrorResponse is the error body every endpoint returns. Details is
// filled only when the caller can act on it (validation field errors).
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	resp := ErrorResponse{
		Code:    statusCode,
		Message: message,
	}
	if details != nil {
		resp.Details = details.Error()
	}
	// Error bodies are tiny and schema-fixed, the fastest config is safe
	sonic.ConfigFastest.NewEncoder(w).Encode(resp)
}

// WriteJSONResponse writes the status and, for a non-nil body, its
// JSON encoding.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body != nil {
		sonic.ConfigDefault.NewEncoder(w).Encode(body)
	}
}
