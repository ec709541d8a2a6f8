package service

import (
	"fmt"

	"github.com/anmicius0/assembly-validator/internal/config"
)

// PreconditionError rejects a whole validation request before any descriptor is read.
// Result is the single Error result to return to the caller.
type PreconditionError struct {
	Reason string
	Result config.ValidationResult
}

func (e *PreconditionError) Error() string {
	return e.Result.Message
}

func newPreconditionError(reason, message string) *PreconditionError {
	return &PreconditionError{Reason: reason, Result: config.ErrorResult(message)}
}

// DescriptorParseError reports a descriptor file that could not be read as XML.
type DescriptorParseError struct {
	// File is the base name of the descriptor file
	File string
	Err  error
}

func (e *DescriptorParseError) Error() string {
	return fmt.Sprintf(parseErrorMessageFmt, e.File, e.Err)
}

func (e *DescriptorParseError) Unwrap() error {
	return e.Err
}
