package validation

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	emailRegex   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	countryRegex = regexp.MustCompile(`^[A-Z]{2}$`)
	currencyRe   = regexp.MustCompile(`^[A-Z]{3}$`)
)

// Validator defines validation methods
type Validator struct {
	Errors map[string]string
}

// New creates a new validator
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid checks if there are any validation errors
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError adds an error to the validator. The first error per field wins.
func (v *Validator) AddError(field, message string) {
	if _, exists := v.Errors[field]; !exists {
		v.Errors[field] = message
	}
}

// Check adds an error if the condition is false
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// Email validates email format
func (v *Validator) Email(field, email string) {
	v.Check(emailRegex.MatchString(email), field, "must be a valid email address")
}

// Country validates an ISO 3166 alpha-2 country code
func (v *Validator) Country(field, code string) {
	v.Check(countryRegex.MatchString(code), field, "must be a two-letter country code")
}

// Currency validates an ISO 4217 currency code
func (v *Validator) Currency(field, code string) {
	v.Check(currencyRe.MatchString(code), field, "must be a three-letter currency code")
}

// Required checks if a string is not empty
func (v *Validator) Required(field string, value string) {
	v.Check(strings.TrimSpace(value) != "", field, "must not be empty")
}

// OneOf checks that value is one of the allowed values
func (v *Validator) OneOf(field, value string, allowed ...string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v.AddError(field, fmt.Sprintf("must be one of %s", strings.Join(allowed, ", ")))
}

// Positive checks that a decimal is strictly greater than zero
func (v *Validator) Positive(field string, value decimal.Decimal) {
	v.Check(value.IsPositive(), field, "must be greater than zero")
}

// MaxLength checks if a string has at most n characters
func (v *Validator) MaxLength(field string, value string, n int) {
	v.Check(len(value) <= n, field, fmt.Sprintf("must not be more than %d characters long", n))
}

// Err returns the collected errors as a single error, or nil.
func (v *Validator) Err() error {
	if v.Valid() {
		return nil
	}
	return Errors(v.Errors)
}

// Errors is a field -> message set returned by Validator.Err.
type Errors map[string]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e[f]))
	}
	return strings.Join(parts, "; ")
}
