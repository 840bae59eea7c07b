// Package validation checks raw input values against simple constraints
// before they reach the project store.
package validation

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Value is either text or a number. Constraints only apply to the kind of
// value they make sense for.
type Value struct {
	text     string
	number   float64
	isNumber bool
}

// Text wraps a string value.
func Text(s string) Value {
	return Value{text: s}
}

// Number wraps a numeric value.
func Number(n float64) Value {
	return Value{number: n, isNumber: true}
}

// IsNumber reports whether the value is numeric.
func (v Value) IsNumber() bool {
	return v.isNumber
}

// String returns the textual form of the value.
func (v Value) String() string {
	if v.isNumber {
		return strconv.FormatFloat(v.number, 'f', -1, 64)
	}
	return v.text
}

// Validatable pairs a value with optional constraints. Nil bounds are unset.
type Validatable struct {
	Value     Value
	Required  bool
	MinLength *int
	MaxLength *int
	Min       *float64
	Max       *float64
}

// Validate reports whether the value satisfies every supplied constraint.
// Length bounds are skipped for numbers and numeric bounds for text.
func Validate(v Validatable) bool {
	valid := true
	length := utf8.RuneCountInString(strings.TrimSpace(v.Value.String()))

	if v.Required {
		valid = valid && length != 0
	}
	if !v.Value.isNumber {
		if v.MinLength != nil {
			valid = valid && length >= *v.MinLength
		}
		if v.MaxLength != nil {
			valid = valid && length <= *v.MaxLength
		}
	}
	if v.Value.isNumber {
		if v.Min != nil {
			valid = valid && v.Value.number >= *v.Min
		}
		if v.Max != nil {
			valid = valid && v.Value.number <= *v.Max
		}
	}

	return valid
}

// Int returns a pointer to n for use as a length bound.
func Int(n int) *int {
	return &n
}

// Float returns a pointer to n for use as a numeric bound.
func Float(n float64) *float64 {
	return &n
}
