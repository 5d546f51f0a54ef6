package utils

import (
	"encoding/json"
	"log"
	"net/http"

	"RUMBLER_BACK-END/internal/dto"
)

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("write response: %v", err)
	}
}

// WriteErrorResponse writes a dto.ErrorResponse. message may be empty.
func WriteErrorResponse(w http.ResponseWriter, status int, errMsg, message string) {
	WriteJSONResponse(w, status, dto.ErrorResponse{Error: errMsg, Message: message})
}

// WriteErrorDetails writes an error with per-field details
func WriteErrorDetails(w http.ResponseWriter, status int, errMsg string, details map[string][]string) {
	WriteJSONResponse(w, status, dto.ErrorResponse{Error: errMsg, Details: details})
}
