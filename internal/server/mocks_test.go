package server

import (
	"context"

	"github.com/anmicius0/assembly-validator/internal/config"
	"github.com/stretchr/testify/mock"
)

type MockValidator struct {
	mock.Mock
}

func (m *MockValidator) Validate(ctx context.Context, request config.ValidationRequest) ([]config.ValidationResult, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]config.ValidationResult), args.Error(1)
}
