package dto

import "time"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Title     string            `json:"title"`
	Timestamp time.Time         `json:"timestamp"`
	Status    int               `json:"status"`
	Error     string            `json:"error"`
	Details   map[string]string `json:"details,omitempty"`
}
