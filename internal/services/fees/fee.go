// Package fees computes provider fees that are added on top of a payment so
// the merchant nets the full amount after the provider takes its cut.
package fees

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)

	ErrInvalidRate = errors.New("invalid fee rate")
)

// Rates holds the domestic and international fee pairs of an acquirer.
// Percentages are expressed in percent (3.4 means 3.4%).
type Rates struct {
	DomesticFixed        decimal.Decimal `json:"domestic_fixed"`
	DomesticPercent      decimal.Decimal `json:"domestic_percent"`
	InternationalFixed   decimal.Decimal `json:"international_fixed"`
	InternationalPercent decimal.Decimal `json:"international_percent"`
}

// Validate rejects rates the fee formula cannot handle. A percentage of 100
// or more makes the divisor zero or negative.
func (r Rates) Validate() error {
	for name, p := range map[string]decimal.Decimal{
		"domestic_percent":      r.DomesticPercent,
		"international_percent": r.InternationalPercent,
	} {
		if p.IsNegative() || p.GreaterThanOrEqual(hundred) {
			return fmt.Errorf("%w: %s must be in [0, 100), got %s", ErrInvalidRate, name, p)
		}
	}
	for name, f := range map[string]decimal.Decimal{
		"domestic_fixed":      r.DomesticFixed,
		"international_fixed": r.InternationalFixed,
	} {
		if f.IsNegative() {
			return fmt.Errorf("%w: %s must not be negative, got %s", ErrInvalidRate, name, f)
		}
	}
	return nil
}

// Pair returns the (percentage, fixed) pair that applies to a payer.
// Domestic rates apply only when both countries are known and equal.
func (r Rates) Pair(payerCountry, merchantCountry string) (percent, fixed decimal.Decimal) {
	if payerCountry != "" && merchantCountry != "" && payerCountry == merchantCountry {
		return r.DomesticPercent, r.DomesticFixed
	}
	return r.InternationalPercent, r.InternationalFixed
}

// Compute returns the fee to add to amount:
//
//	fee = (p/100 * amount + fixed) / (1 - p/100)
//
// Currency is accepted for parity with provider signatures; rates are not
// currency specific. Rates must have passed Validate.
func Compute(amount decimal.Decimal, currency, payerCountry, merchantCountry string, rates Rates, enabled bool) decimal.Decimal {
	if !enabled {
		return decimal.Zero
	}
	percent, fixed := rates.Pair(payerCountry, merchantCountry)
	ratio := percent.Div(hundred)
	return ratio.Mul(amount).Add(fixed).Div(decimal.NewFromInt(1).Sub(ratio))
}
