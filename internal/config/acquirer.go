package config

import (
	"errors"
	"fmt"

	"paygate/internal/models"
	"paygate/internal/services/alipay"
	"paygate/internal/services/fees"
	"paygate/internal/validation"

	"github.com/shopspring/decimal"
)

var ErrInvalidAcquirer = errors.New("invalid acquirer configuration")

// Default Alipay fee rates.
var (
	defaultDomesticFixed        = decimal.RequireFromString("0.35")
	defaultDomesticPercent      = decimal.RequireFromString("3.4")
	defaultInternationalFixed   = decimal.RequireFromString("0.35")
	defaultInternationalPercent = decimal.RequireFromString("3.9")
)

// AcquirerConfig is the Alipay acquirer as configured through the
// environment. It is upserted into the database at start-up.
type AcquirerConfig struct {
	Environment    string
	EmailAccount   string
	SellerAccount  string
	CompanyName    string
	CompanyCountry string
	FeesActive     bool
	Rates          fees.Rates
}

// LoadAcquirer reads the ALIPAY_* and COMPANY_* variables.
func LoadAcquirer() (AcquirerConfig, error) {
	cfg := AcquirerConfig{
		Environment:    GetEnv("ALIPAY_ENVIRONMENT", models.EnvironmentSandbox),
		EmailAccount:   GetEnv("ALIPAY_EMAIL_ACCOUNT", ""),
		SellerAccount:  GetEnv("ALIPAY_SELLER_ACCOUNT", ""),
		CompanyName:    GetEnv("COMPANY_NAME", ""),
		CompanyCountry: GetEnv("COMPANY_COUNTRY", ""),
		FeesActive:     GetBoolEnv("ALIPAY_FEES_ACTIVE", false),
	}

	v := validation.New()
	rate := func(key string, def decimal.Decimal) decimal.Decimal {
		d, ok := GetDecimalEnv(key, def)
		v.Check(ok, key, "must be a decimal number")
		return d
	}
	cfg.Rates = fees.Rates{
		DomesticFixed:        rate("ALIPAY_FEES_DOM_FIXED", defaultDomesticFixed),
		DomesticPercent:      rate("ALIPAY_FEES_DOM_VAR", defaultDomesticPercent),
		InternationalFixed:   rate("ALIPAY_FEES_INT_FIXED", defaultInternationalFixed),
		InternationalPercent: rate("ALIPAY_FEES_INT_VAR", defaultInternationalPercent),
	}

	v.OneOf("ALIPAY_ENVIRONMENT", cfg.Environment, models.EnvironmentProd, models.EnvironmentSandbox)
	v.Required("ALIPAY_EMAIL_ACCOUNT", cfg.EmailAccount)
	v.Email("ALIPAY_EMAIL_ACCOUNT", cfg.EmailAccount)
	v.Required("COMPANY_NAME", cfg.CompanyName)
	v.MaxLength("COMPANY_NAME", cfg.CompanyName, validation.MaxNameLength)
	if cfg.CompanyCountry != "" {
		v.Country("COMPANY_COUNTRY", cfg.CompanyCountry)
	}
	if err := v.Err(); err != nil {
		return AcquirerConfig{}, fmt.Errorf("%w: %v", ErrInvalidAcquirer, err)
	}

	if err := cfg.Rates.Validate(); err != nil {
		return AcquirerConfig{}, fmt.Errorf("%w: %w", ErrInvalidAcquirer, err)
	}

	return cfg, nil
}

// ToModel returns the acquirer record with its Alipay settings.
func (c AcquirerConfig) ToModel() *models.Acquirer {
	return &models.Acquirer{
		Name:        "Alipay",
		Provider:    alipay.ProviderName,
		Environment: c.Environment,
		CompanyName: c.CompanyName,
		CountryCode: c.CompanyCountry,
		FeesActive:  c.FeesActive,
		Alipay: &models.AlipayAcquirer{
			EmailAccount:  c.EmailAccount,
			SellerAccount: c.SellerAccount,
			UseIPN:        true,
			FeesDomFixed:  c.Rates.DomesticFixed,
			FeesDomVar:    c.Rates.DomesticPercent,
			FeesIntFixed:  c.Rates.InternationalFixed,
			FeesIntVar:    c.Rates.InternationalPercent,
		},
	}
}
