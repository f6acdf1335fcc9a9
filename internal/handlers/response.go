package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Envelope is the top-level JSON object of every API response.
// WriteSuccess and WriteError set its "success" key.
type Envelope map[string]any

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteSuccess writes a 200 response with success set to true
func WriteSuccess(w http.ResponseWriter, body Envelope, logger *slog.Logger) {
	if body == nil {
		body = Envelope{}
	}
	body["success"] = true
	WriteJSON(w, http.StatusOK, body, logger)
}

// WriteError writes an error response in JSON format
func WriteError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	WriteJSON(w, status, Envelope{
		"success": false,
		"error":   message,
	}, logger)
}
