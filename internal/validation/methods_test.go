package validation

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidator(t *testing.T) {
	tests := []struct {
		name      string
		run       func(v *Validator)
		wantField string
	}{
		{"valid email", func(v *Validator) { v.Email("email", "shop@x.com") }, ""},
		{"invalid email", func(v *Validator) { v.Email("email", "shop") }, "email"},
		{"valid country", func(v *Validator) { v.Country("country", "BE") }, ""},
		{"lowercase country", func(v *Validator) { v.Country("country", "be") }, "country"},
		{"valid currency", func(v *Validator) { v.Currency("currency", "USD") }, ""},
		{"invalid currency", func(v *Validator) { v.Currency("currency", "US") }, "currency"},
		{"blank required", func(v *Validator) { v.Required("reference", "  ") }, "reference"},
		{"one of", func(v *Validator) { v.OneOf("env", "prod", "prod", "sandbox") }, ""},
		{"not one of", func(v *Validator) { v.OneOf("env", "staging", "prod", "sandbox") }, "env"},
		{"positive", func(v *Validator) { v.Positive("amount", decimal.NewFromInt(1)) }, ""},
		{"zero is not positive", func(v *Validator) { v.Positive("amount", decimal.Zero) }, "amount"},
		{"too long", func(v *Validator) { v.MaxLength("reference", strings.Repeat("x", MaxReferenceLength+1), MaxReferenceLength) }, "reference"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			tt.run(v)
			if tt.wantField == "" {
				assert.True(t, v.Valid())
				assert.NoError(t, v.Err())
				return
			}
			assert.False(t, v.Valid())
			assert.Contains(t, v.Errors, tt.wantField)
		})
	}
}

func TestValidatorErr(t *testing.T) {
	v := New()
	v.Required("reference", "")
	v.AddError("reference", "second message is dropped")
	v.Country("country", "Belgium")

	err := v.Err()
	assert.EqualError(t, err, "country: must be a two-letter country code; reference: must not be empty")
}
