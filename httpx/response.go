// Package httpx implements the JSON response envelope:
// {"message": ..., ...payload} on success, {"error": ..., "details": ...} on
// failure.
package httpx

import (
	"encoding/json"
	"net/http"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	body, err := json.Marshal(payload)
	if err != nil {
		// best-effort error response; avoid writing partial JSON
		http.Error(w, `{"error":"encode_error"}`, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		// nothing we can do at this point
		_ = err
	}
}

func JSONError(w http.ResponseWriter, status int, msg string, details any) {
	JSON(w, status, ErrorResponse{Error: msg, Details: details})
}

// Message writes a success envelope carrying a message and optional payload
// fields, e.g. Message(w, 200, "note fetched successfully", "note", note).
// Extra arguments are key/value pairs; keys must be strings.
func Message(w http.ResponseWriter, status int, msg string, kv ...any) {
	payload := map[string]any{"message": msg}
	for i := 0; i+1 < len(kv); i += 2 {
		if k, ok := kv[i].(string); ok {
			payload[k] = kv[i+1]
		}
	}
	JSON(w, status, payload)
}
