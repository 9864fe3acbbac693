package config

import (
	"fmt"
	"strings"

	"auto-factories/internal/registry"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "rules[0].key")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError

	if len(c.Rules) == 0 {
		errs = append(errs, ValidationError{Field: "rules", Value: len(c.Rules), Message: "at least one rule is required"})
	}

	seen := map[string]int{}
	for i, r := range c.Rules {
		field := fmt.Sprintf("rules[%d]", i)
		if strings.TrimSpace(r.Annotation) == "" {
			errs = append(errs, ValidationError{Field: field + ".annotation", Value: r.Annotation, Message: "must not be empty"})
		}
		if strings.TrimSpace(r.Key) == "" {
			errs = append(errs, ValidationError{Field: field + ".key", Value: r.Key, Message: "must not be empty"})
		}
		if strings.ContainsAny(r.Key, "=,\n") {
			errs = append(errs, ValidationError{Field: field + ".key", Value: r.Key, Message: "must not contain '=', ',' or newlines"})
		}
		if prev, ok := seen[r.Annotation]; ok && r.Annotation != "" {
			errs = append(errs, ValidationError{Field: field + ".annotation", Value: r.Annotation, Message: fmt.Sprintf("duplicates rules[%d]", prev)})
		}
		seen[r.Annotation] = i
	}

	if c.MaxDepth < 0 {
		errs = append(errs, ValidationError{Field: "max_depth", Value: c.MaxDepth, Message: "must be >= 0"})
	}

	if _, err := registry.ParseDedupMode(c.Dedup); err != nil {
		errs = append(errs, ValidationError{Field: "dedup", Value: c.Dedup, Message: "must be global or per-key"})
	}

	return errs
}
