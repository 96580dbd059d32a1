// Package validation accumulates field-level violations and settles them
// into a single outcome.
package validation

import (
	"fmt"
	"strings"

	"github.com/zeebo/errs"

	"github.com/Philanthropists/foundation/pkg/messages"
	"github.com/Philanthropists/foundation/pkg/result"
)

// Violation is one failed check on one field.
type Violation struct {
	Field       string
	Description string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Description)
}

// Validator collects violations across any number of checks. The zero
// value is ready to use. It is not safe for concurrent use.
type Validator struct {
	violations []Violation
}

func (v *Validator) Add(field, description string) {
	v.violations = append(v.violations, Violation{
		Field:       field,
		Description: description,
	})
}

// NotEmpty records a violation when value is blank.
func (v *Validator) NotEmpty(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, "must not be empty")
	}
}

// RequireFields records a violation for every required key missing from
// fields.
func (v *Validator) RequireFields(fields map[string]string, required ...string) {
	reqSet := make(map[string]struct{})
	for _, field := range required {
		reqSet[field] = struct{}{}
	}

	for field := range reqSet {
		if _, ok := fields[field]; !ok {
			v.Add(field, "required field is missing")
		}
	}
}

func (v *Validator) Valid() bool {
	return len(v.violations) == 0
}

func (v *Validator) Violations() []Violation {
	return v.violations
}

// Messages renders the collected violations as Error-severity messages.
func (v *Validator) Messages() messages.List {
	var l messages.List
	for _, violation := range v.violations {
		l = append(l, messages.New(messages.Error, violation.String()))
	}
	return l
}

// Result settles the validation: a success when nothing was violated,
// otherwise a failure joining every violation.
func (v *Validator) Result() result.Result[result.Unit] {
	if v.Valid() {
		return result.Done()
	}

	descriptions := make([]string, 0, len(v.violations))
	for _, violation := range v.violations {
		descriptions = append(descriptions, violation.String())
	}

	return result.Failure[result.Unit](strings.Join(descriptions, "; "))
}

// Err is Result for callers living in (value, error) land.
func (v *Validator) Err() error {
	if v.Valid() {
		return nil
	}
	return errs.New("validation failed: %s", v.Result().Message())
}
