package client

import "github.com/anmicius0/assembly-validator/internal/config"

// ValidatorClient defines the operations we perform against a remote
// assembly validator. Use NewValidatorClient to obtain an implementation.
type ValidatorClient interface {
	Validate(path string) ([]config.ValidationResult, error)
	Health() error
}
