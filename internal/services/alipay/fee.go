package alipay

import (
	"paygate/internal/models"
	"paygate/internal/services/fees"

	"github.com/shopspring/decimal"
)

// FeeCalculator applies an acquirer's configured rates.
type FeeCalculator struct {
	rates           fees.Rates
	merchantCountry string
	enabled         bool
}

func NewFeeCalculator(rates fees.Rates, merchantCountry string, enabled bool) *FeeCalculator {
	return &FeeCalculator{
		rates:           rates,
		merchantCountry: merchantCountry,
		enabled:         enabled,
	}
}

// RatesFromSettings reads the four fee values of an Alipay acquirer.
func RatesFromSettings(s *models.AlipayAcquirer) fees.Rates {
	return fees.Rates{
		DomesticFixed:        s.FeesDomFixed,
		DomesticPercent:      s.FeesDomVar,
		InternationalFixed:   s.FeesIntFixed,
		InternationalPercent: s.FeesIntVar,
	}
}

func (fc *FeeCalculator) CalculateFee(amount decimal.Decimal, currency, payerCountry string) decimal.Decimal {
	return fees.Compute(amount, currency, payerCountry, fc.merchantCountry, fc.rates, fc.enabled)
}
