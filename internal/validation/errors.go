package validation

import (
	"errors"
	"sort"
	"strings"
)

// ErrMalformedBody is returned when a request body is not parseable JSON at all.
// It is a different kind of failure than a ValidationError.
var ErrMalformedBody = errors.New("malformed request body")

// RootPath is the key used for errors that concern the payload as a whole
const RootPath = "_errors"

// ValidationError carries human-readable messages indexed by field path
// ("dob", "disciplines.0", ...).
type ValidationError struct {
	Fields map[string][]string
}

func newValidationError() *ValidationError {
	return &ValidationError{Fields: map[string][]string{}}
}

func (e *ValidationError) add(path, msg string) {
	e.Fields[path] = append(e.Fields[path], msg)
}

// Has reports whether the given path has at least one message
func (e *ValidationError) Has(path string) bool {
	return len(e.Fields[path]) > 0
}

func (e *ValidationError) empty() bool {
	return len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], "; "))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
