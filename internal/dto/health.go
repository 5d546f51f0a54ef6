package dto

import "time"

// HealthResponse represents the response structure for health checks
type HealthResponse struct {
	Status  string `json:"status"`
	Details any    `json:"details,omitempty"`
}

// StatusResponse is the public /health payload
type StatusResponse struct {
	Status    string    `json:"status" example:"ok"`
	Region    string    `json:"region" example:"unknown"`
	Timestamp time.Time `json:"timestamp"`
}
