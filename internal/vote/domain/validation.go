package domain

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

// ErrValidation is matched by every *ValidationError.
var ErrValidation = errors.New("validation failed")

// ValidationError collects per-field problems. Field names use the JSON
// spelling so they can be returned to clients as is.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := slices.Sorted(maps.Keys(e.Fields))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// validator accumulates field errors; the first message per field wins.
type validator map[string]string

func (v validator) check(ok bool, field, msg string) {
	if ok {
		return
	}
	if _, exists := v[field]; !exists {
		v[field] = msg
	}
}

func (v validator) err() error {
	if len(v) == 0 {
		return nil
	}
	return &ValidationError{Fields: v}
}
