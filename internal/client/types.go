package client

import "github.com/anmicius0/assembly-validator/internal/config"

// RejectedError is returned when the server refuses a validation request
// before reading any descriptor. Result is the single Error verdict it sent.
type RejectedError struct {
	Result config.ValidationResult
}

func (e *RejectedError) Error() string {
	return e.Result.Message
}

// healthResponse mirrors the payload of GET /health.
type healthResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}
