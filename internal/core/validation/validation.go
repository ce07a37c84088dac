// Package validation implements the write-payload checks as ordered rule
// lists over the decoded JSON object. Every rule in a set runs, so failures
// on one field never stop later rules on the same or other fields, and the
// full error list is reported in one response.
//
// Rules inspect the raw object rather than a bound struct because the
// optional rules must tell "absent" apart from "present but the wrong type".
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// check backs the field-level primitives (email, min, range). It is
// stateless and safe for concurrent use.
var check = validator.New()

// FieldError describes one failed rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the accumulated result of a rule set. It maps to HTTP 400 in the
// API error handler.
type Error struct {
	Errors []FieldError
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Rule checks one condition against the decoded request body.
// A nil return means the rule passed.
type Rule func(doc map[string]any) *FieldError

// RuleSet is an ordered list of rules for one resource payload.
type RuleSet []Rule

// Apply runs every rule in order and returns a *Error collecting all
// failures, or nil when the payload is clean.
func (rs RuleSet) Apply(doc map[string]any) error {
	var errs []FieldError
	for _, rule := range rs {
		if fe := rule(doc); fe != nil {
			errs = append(errs, *fe)
		}
	}
	if len(errs) > 0 {
		return &Error{Errors: errs}
	}
	return nil
}

// Required fails when the field is missing from the payload.
func Required(field string) Rule {
	return func(doc map[string]any) *FieldError {
		if _, ok := doc[field]; !ok {
			return &FieldError{Field: field, Message: field + " is required"}
		}
		return nil
	}
}

// NonEmpty fails unless the field is a string with non-blank content.
func NonEmpty(field string) Rule {
	return func(doc map[string]any) *FieldError {
		s, ok := doc[field].(string)
		if !ok || strings.TrimSpace(s) == "" {
			return &FieldError{Field: field, Message: field + " must not be empty"}
		}
		return nil
	}
}

// IsEmail fails unless the field is a syntactically valid email address.
func IsEmail(field string) Rule {
	return func(doc map[string]any) *FieldError {
		s, ok := doc[field].(string)
		if !ok || check.Var(s, "email") != nil {
			return &FieldError{Field: field, Message: field + " must be a valid email"}
		}
		return nil
	}
}

// MinLength fails unless the field is a string of at least n characters.
func MinLength(field string, n int) Rule {
	tag := fmt.Sprintf("min=%d", n)
	return func(doc map[string]any) *FieldError {
		s, ok := doc[field].(string)
		if !ok || check.Var(s, tag) != nil {
			return &FieldError{Field: field, Message: fmt.Sprintf("%s must be at least %d characters", field, n)}
		}
		return nil
	}
}

// IsString passes when the field is absent; otherwise it must be a string.
func IsString(field string) Rule {
	return func(doc map[string]any) *FieldError {
		v, ok := doc[field]
		if !ok || v == nil {
			return nil
		}
		if _, isStr := v.(string); !isStr {
			return &FieldError{Field: field, Message: field + " must be a string"}
		}
		return nil
	}
}

// NumericRange passes when the field is absent; otherwise it must be a JSON
// number within [min, max].
func NumericRange(field string, min, max float64) Rule {
	tag := fmt.Sprintf("gte=%v,lte=%v", min, max)
	return func(doc map[string]any) *FieldError {
		v, ok := doc[field]
		if !ok || v == nil {
			return nil
		}
		f, isNum := v.(float64)
		if !isNum || check.Var(f, tag) != nil {
			return &FieldError{Field: field, Message: fmt.Sprintf("%s must be a number between %v and %v", field, min, max)}
		}
		return nil
	}
}
