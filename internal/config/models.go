// internal/config/models.go
// Package config provides configuration loading, validation, and data models.
package config

// ValidationStatus classifies the outcome for a single assembly or descriptor file.
type ValidationStatus string

const (
	StatusMatch    ValidationStatus = "Match"
	StatusMismatch ValidationStatus = "Mismatch"
	StatusError    ValidationStatus = "Error"
)

// ValidationRequest is the input of a validation run.
type ValidationRequest struct {
	// Path is the directory holding descriptor files and assemblies
	Path string `json:"path" yaml:"path"`
}

// ValidationResult is the verdict for one descriptor entry or one failed descriptor file.
type ValidationResult struct {
	// AssemblyName is the file name declared by the descriptor; nil for file-level errors
	AssemblyName *string `json:"assemblyName" yaml:"assemblyName"`
	// ExpectedVersion is the version declared by the descriptor; nil for file-level errors
	ExpectedVersion *string `json:"expectedVersion" yaml:"expectedVersion"`
	// ActualVersion is the version read from the assembly; nil when it could not be read
	ActualVersion *string `json:"actualVersion" yaml:"actualVersion"`
	// Status is Match, Mismatch or Error
	Status ValidationStatus `json:"status" yaml:"status"`
	// Message is a human-readable explanation of Status
	Message string `json:"message" yaml:"message"`
}

// ErrorResult builds a file-level Error result with no assembly details.
func ErrorResult(message string) ValidationResult {
	return ValidationResult{Status: StatusError, Message: message}
}

// AssemblyResult builds a result for a descriptor entry. An empty actual
// version leaves ActualVersion unset.
func AssemblyResult(name, expected, actual string, status ValidationStatus, message string) ValidationResult {
	result := ValidationResult{
		AssemblyName:    stringPtr(name),
		ExpectedVersion: stringPtr(expected),
		Status:          status,
		Message:         message,
	}
	if actual != "" {
		result.ActualVersion = stringPtr(actual)
	}
	return result
}

// Value returns the string behind p, or "" when p is nil.
func Value(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func stringPtr(s string) *string {
	return &s
}
