package server

const (
	HealthEndpoint     = "/health"
	MetricsEndpoint    = "/metrics"
	ValidationEndpoint = "/validation"
)

const (
	HeaderRequestID     = "X-Request-ID"
	ContextKeyRequestID = "request_id"
)

const (
	StatusHealthy = "healthy"
)

const (
	MessageInvalidRequestBody = "Invalid request body"
	MessageValidationFailed   = "Validation could not be completed"
	MessageInvalidToken       = "Invalid token"
)

const (
	ErrorCodeInvalidRequestBody = "invalid_request_body"
	ErrorCodeValidationFailed   = "validation_failed"
)
