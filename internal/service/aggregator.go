package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/anmicius0/assembly-validator/internal/config"
)

// FindDescriptorFiles lists the files directly inside dir whose names match
// pattern, sorted by name. Subdirectories are never entered.
func FindDescriptorFiles(dir, pattern string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list descriptor files in %s: %w", dir, err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		matched, err := filepath.Match(pattern, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("match descriptor pattern %q: %w", pattern, err)
		}
		if !matched {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if !isRegularFile(path) {
			continue
		}
		files = append(files, path)
	}
	sort.Strings(files)
	return files, nil
}

// Aggregate parses every descriptor file in the given order and merges the
// results; a name declared in several files keeps the value from the last one.
// Files that fail to parse become Error results and do not stop the batch.
func Aggregate(files []string, logger Logger) (*Descriptor, []config.ValidationResult) {
	if logger == nil {
		logger = nopLogger{}
	}

	merged := NewDescriptor()
	results := make([]config.ValidationResult, 0)

	for _, file := range files {
		descriptor, err := ParseDescriptor(file)
		if err != nil {
			var parseErr *DescriptorParseError
			if !errors.As(err, &parseErr) {
				parseErr = &DescriptorParseError{File: filepath.Base(file), Err: err}
			}
			logger.Warnf("Skipping descriptor file %s: %v", parseErr.File, parseErr.Err)
			results = append(results, config.ErrorResult(parseErr.Error()))
			continue
		}

		for _, name := range descriptor.Names() {
			if previous, ok := merged.Get(name); ok {
				current, _ := descriptor.Get(name)
				if previous != current {
					logger.Debugf("Descriptor %s overrides %s: %s -> %s", filepath.Base(file), name, previous, current)
				}
			}
		}
		merged.Merge(descriptor)
		logger.Debugf("Read %d assembly entries from %s", descriptor.Len(), filepath.Base(file))
	}

	return merged, results
}

// isRegularFile follows symlinks; directories and devices are not files.
func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
