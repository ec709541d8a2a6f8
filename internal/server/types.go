package server

import (
	"context"

	"github.com/anmicius0/assembly-validator/internal/config"
)

// Validator runs the validation pipeline; *service.Validator implements it.
type Validator interface {
	Validate(ctx context.Context, request config.ValidationRequest) ([]config.ValidationResult, error)
}
