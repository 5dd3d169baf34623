// Package respond writes the JSON envelope shared by every HTTP service.
package respond

import (
	"encoding/json"
	"net/http"
)

type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func Success(w http.ResponseWriter, status int, data any) {
	JSON(w, status, envelope{Success: true, Data: data})
}

// Error never carries raw error text; callers pass a client-safe message.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, envelope{Success: false, Error: message})
}
