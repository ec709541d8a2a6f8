// internal/server/response_builder.go
package server

import (
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/anmicius0/assembly-validator/internal/config"
)

// ResponseBuilder provides utilities for constructing consistent API responses.
type ResponseBuilder struct{}

// newResponseBuilder creates a new response builder instance.
func newResponseBuilder() *ResponseBuilder { return &ResponseBuilder{} }

// ErrorResponse standardizes error responses.
type ErrorResponse struct {
	Success bool
	Error   string
	Message string
	Details any
}

// BuildResultsResponse converts a validation result list, keeping unset versions as null.
func (rb *ResponseBuilder) BuildResultsResponse(results []config.ValidationResult) any {
	return toCamelCaseMap(results)
}

// BuildResultResponse converts a single validation result, used for rejected requests.
func (rb *ResponseBuilder) BuildResultResponse(result config.ValidationResult) any {
	return toCamelCaseMap(result)
}

// BuildErrorResponse constructs a standardized error response, converting keys to camelCase.
func (rb *ResponseBuilder) BuildErrorResponse(errorCode, errorMessage string, details any) any {
	response := ErrorResponse{
		Success: false,
		Error:   errorCode,
		Message: errorMessage,
		Details: details,
	}
	return toCamelCaseMap(response)
}

func toCamelCaseMap(data any) any {
	val := reflect.ValueOf(data)

	// Handle Pointers
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}

	// Handle Slices/Arrays
	if val.Kind() == reflect.Slice || val.Kind() == reflect.Array {
		out := make([]any, val.Len())
		for i := 0; i < val.Len(); i++ {
			out[i] = toCamelCaseMap(val.Index(i).Interface())
		}
		return out
	}

	// Handle Structs
	if val.Kind() == reflect.Struct {
		out := make(map[string]any)
		typ := val.Type()
		for i := 0; i < val.NumField(); i++ {
			field := typ.Field(i)
			// Skip unexported fields
			if field.PkgPath != "" {
				continue
			}

			key, skip := fieldKey(field)
			if skip {
				continue
			}

			// Recursively convert the field value
			fieldVal := toCamelCaseMap(val.Field(i).Interface())

			out[key] = fieldVal
		}
		return out
	}

	// Return primitives as-is, dereferenced
	if !val.IsValid() {
		return nil
	}
	return val.Interface()
}

// fieldKey returns the json tag name of field, or its name with the first
// letter lowered when it has none. Fields tagged "-" are skipped.
func fieldKey(field reflect.StructField) (string, bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", true
	}
	if name, _, _ := strings.Cut(tag, ","); name != "" {
		return name, false
	}
	return lowerFirst(field.Name), false
}

// lowerFirst lowers the first rune of a string
func lowerFirst(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}
