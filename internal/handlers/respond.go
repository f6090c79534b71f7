package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// errorEnvelope is the JSON shape for all domain-level failures
type errorEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// setCORSHeaders stamps the fixed cross-origin header set onto a
// response. The values are part of the wire contract.
func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "api,Keep-Alive,User-Agent,Content-Type")
}

// writeErrorEnvelope writes the error envelope with CORS headers
func writeErrorEnvelope(w http.ResponseWriter, status int, message string, log *slog.Logger) {
	setCORSHeaders(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	envelope := errorEnvelope{Status: "error", Message: message}
	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		log.Error("failed to encode error envelope", "error", err)
	}
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, status int, data interface{}, log *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error("failed to encode JSON response", "error", err)
	}
}
