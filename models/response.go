package models

// ErrorResponse is the generic API error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is returned by the liveness endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}
