// Package validate checks raw form values field by field and collects
// every failure instead of stopping at the first one, so a form can be
// re-rendered with the complete error list.
package validate

import (
	"html"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FieldError binds one error message to the form field that produced it.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"msg"`
}

// Validator accumulates field errors across independent rule checks.
type Validator struct {
	errs []FieldError
}

func New() *Validator {
	return &Validator{}
}

// Add records a failure for the given field.
func (v *Validator) Add(field, message string) {
	v.errs = append(v.errs, FieldError{Field: field, Message: message})
}

// Valid reports whether no rule has failed so far.
func (v *Validator) Valid() bool {
	return len(v.errs) == 0
}

// Errors returns the collected failures in check order.
func (v *Validator) Errors() []FieldError {
	return v.errs
}

// Text trims surrounding whitespace and escapes HTML markup in a
// free-text value intended for display.
func Text(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}

// Escape neutralizes markup without trimming, for optional fields
// where whitespace is preserved as submitted.
func Escape(s string) string {
	return html.EscapeString(s)
}

// MinLength fails unless the trimmed value has at least min characters.
func (v *Validator) MinLength(field, value string, min int, message string) {
	if len([]rune(strings.TrimSpace(value))) < min {
		v.Add(field, message)
	}
}

// MaxLength fails when the trimmed value exceeds max characters.
func (v *Validator) MaxLength(field, value string, max int, message string) {
	if len([]rune(strings.TrimSpace(value))) > max {
		v.Add(field, message)
	}
}

// Integer parses value as a base-10 integer no smaller than min.
// On failure the field error is recorded and 0 is returned.
func (v *Validator) Integer(field, value string, min int, message string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < min {
		v.Add(field, message)
		return 0
	}
	return n
}

// Decimal parses the trimmed value as a decimal number no smaller than
// min. On failure the field error is recorded and zero is returned.
// Fraction digits present in the input are preserved in the result.
func (v *Validator) Decimal(field, value string, min decimal.Decimal, message string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil || d.LessThan(min) {
		v.Add(field, message)
		return decimal.Decimal{}
	}
	return d
}
