package utils

// Field names shared by log statements across packages.
const (
	FieldComponent = "component"
	FieldRequestID = "request_id"
	FieldPath      = "path"
	FieldHost      = "host"
	FieldPort      = "port"
	FieldSignal    = "signal"
)
