// SPDX-License-Identifier: Apache-2.0
// Package schema implements the validation gates applied to stage outputs
// before they flow downstream or reach presentation. A gate never repairs
// or substitutes values: on violation it reports every failed rule and the
// pipeline halts that stage.
package schema

import (
	"fmt"
	"strings"

	"github.com/jllopis/pathfinder/pkg/errors"
)

// Rule checks one declared constraint of a stage output.
type Rule struct {
	// Field names the constrained field for error messages.
	Field string

	// Check returns a human-readable detail when the constraint is
	// violated, or "" when it holds.
	Check func(v any) string
}

// Schema is a named, ordered list of rules for one output shape.
type Schema struct {
	Name  string
	Rules []Rule
}

// Validate applies every rule and aggregates violations into a single
// descriptive validation failure.
func (s Schema) Validate(v any) error {
	var issues []string
	for _, rule := range s.Rules {
		if detail := rule.Check(v); detail != "" {
			issues = append(issues, fmt.Sprintf("%s: %s", rule.Field, detail))
		}
	}
	if len(issues) == 0 {
		return nil
	}
	msg := fmt.Sprintf("%s violates schema: %s", s.Name, strings.Join(issues, "; "))
	return errors.New(errors.CodeValidation, msg, nil).WithContext("schema", s.Name)
}

// typed adapts a typed check to the any-based Rule contract. A value of
// the wrong dynamic type is itself a violation.
func typed[T any](fn func(T) string) func(any) string {
	return func(v any) string {
		value, ok := v.(T)
		if !ok {
			var want T
			return fmt.Sprintf("expected %T, got %T", want, v)
		}
		return fn(value)
	}
}
