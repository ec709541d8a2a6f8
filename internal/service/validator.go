// Package service implements the assembly version validation pipeline.
package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/anmicius0/assembly-validator/internal/config"
	"github.com/anmicius0/assembly-validator/internal/versioninfo"
)

// VersionReader returns the version string embedded in a file.
type VersionReader interface {
	ReadVersion(path string) (string, error)
}

// Validator cross-checks descriptor files against the assemblies next to them.
// It holds no per-request state and may be shared between goroutines.
type Validator struct {
	reader  VersionReader
	logger  Logger
	pattern string
}

// NewValidator constructs a Validator. An empty pattern means *.config; a nil
// logger discards output.
func NewValidator(reader VersionReader, logger Logger, pattern string) *Validator {
	if logger == nil {
		logger = nopLogger{}
	}
	if pattern == "" {
		pattern = config.DefaultDescriptorPattern
	}
	return &Validator{reader: reader, logger: logger, pattern: pattern}
}

// Validate runs the full pipeline for one request.
//
// The request is rejected with a *PreconditionError when the path is empty,
// is not an existing directory, or holds no descriptor files. Otherwise the
// returned list has one result per failed descriptor file followed by one
// result per declared assembly. A cancelled ctx stops the assembly loop and
// returns the results gathered so far with ctx's error.
func (v *Validator) Validate(ctx context.Context, request config.ValidationRequest) ([]config.ValidationResult, error) {
	start := time.Now()
	defer func() {
		validationDuration.Observe(time.Since(start).Seconds())
	}()

	if request.Path == "" {
		return nil, v.reject(RejectEmptyPath, MessageEmptyPath, request.Path)
	}
	if info, err := os.Stat(request.Path); err != nil || !info.IsDir() {
		return nil, v.reject(RejectPathNotFound, MessagePathNotFound, request.Path)
	}

	files, err := FindDescriptorFiles(request.Path, v.pattern)
	if err != nil {
		v.logger.Errorf(err, "Failed to list descriptor files in %s", request.Path)
		return nil, err
	}
	if len(files) == 0 {
		return nil, v.reject(RejectNoDescriptors, MessageNoDescriptors, request.Path)
	}

	v.logger.Infof("Validating %s against %d descriptor files", request.Path, len(files))

	descriptor, results := Aggregate(files, v.logger)
	for _, result := range results {
		resultsTotal.WithLabelValues(string(result.Status)).Inc()
	}

	for _, name := range descriptor.Names() {
		if err := ctx.Err(); err != nil {
			v.logger.Warnf("Validation of %s interrupted after %d results", request.Path, len(results))
			return results, fmt.Errorf("validate %s: %w", request.Path, err)
		}

		expected, _ := descriptor.Get(name)
		result := v.check(request.Path, name, expected)
		resultsTotal.WithLabelValues(string(result.Status)).Inc()
		results = append(results, result)
	}

	v.logger.Infof("Validated %s: %d results in %s", request.Path, len(results), time.Since(start))
	return results, nil
}

// check classifies one descriptor entry.
func (v *Validator) check(dir, name, expected string) config.ValidationResult {
	assemblyPath := filepath.Join(dir, name)
	if !isRegularFile(assemblyPath) {
		v.logger.Warnf("Assembly %s not found in %s", name, dir)
		return config.AssemblyResult(name, expected, "", config.StatusError, MessageAssemblyNotFound)
	}

	actual, err := v.reader.ReadVersion(assemblyPath)
	if err != nil {
		if errors.Is(err, versioninfo.ErrNoVersionInfo) {
			v.logger.Debugf("No version information in %s: %v", name, err)
		} else {
			v.logger.Errorf(err, "Failed to read version of %s", name)
		}
		actual = UnknownVersion
	}

	if actual != expected {
		v.logger.Debugf("Version mismatch for %s: expected %s, found %s", name, expected, actual)
		return config.AssemblyResult(name, expected, actual, config.StatusMismatch, MessageVersionMismatch)
	}
	v.logger.Debugf("Version match for %s: %s", name, actual)
	return config.AssemblyResult(name, expected, actual, config.StatusMatch, MessageVersionMatch)
}

func (v *Validator) reject(reason, message, path string) *PreconditionError {
	v.logger.Warnf("Rejected validation request for %q: %s", path, message)
	rejectionsTotal.WithLabelValues(reason).Inc()
	return newPreconditionError(reason, message)
}
