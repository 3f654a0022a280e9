package alipay

import (
	"fmt"
	"net/url"
	"time"

	"paygate/internal/models"
	"paygate/internal/services/provider"

	"github.com/shopspring/decimal"
)

// ProviderConfig wires a Provider to one acquirer record.
type ProviderConfig struct {
	Acquirer *models.Acquirer
	// BaseURL is the public root the callback paths are joined to.
	BaseURL string
	// Now defaults to time.Now.
	Now func() time.Time
}

// Provider implements provider.Provider for Alipay.
type Provider struct {
	acquirer *models.Acquirer
	settings *models.AlipayAcquirer
	baseURL  *url.URL
	fees     *FeeCalculator
	now      func() time.Time
}

var _ provider.Provider = (*Provider)(nil)

func NewProvider(config ProviderConfig) (*Provider, error) {
	if config.Acquirer == nil {
		panic("acquirer is required")
	}
	if config.Acquirer.Alipay == nil {
		return nil, ErrMissingSettings
	}

	base, err := url.Parse(config.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, config.BaseURL)
	}

	rates := RatesFromSettings(config.Acquirer.Alipay)
	if err := rates.Validate(); err != nil {
		return nil, err
	}

	now := config.Now
	if now == nil {
		now = time.Now
	}

	return &Provider{
		acquirer: config.Acquirer,
		settings: config.Acquirer.Alipay,
		baseURL:  base,
		fees:     NewFeeCalculator(rates, config.Acquirer.CountryCode, config.Acquirer.FeesActive),
		now:      now,
	}, nil
}

func (p *Provider) Name() string {
	return ProviderName
}

func (p *Provider) Features() []provider.Feature {
	return []provider.Feature{provider.FeatureFees}
}

// URLs returns the form and REST endpoints for the acquirer environment.
func (p *Provider) URLs() (formURL, restURL string) {
	if p.acquirer.Environment == models.EnvironmentProd {
		return ProdFormURL, ProdRestURL
	}
	return SandboxFormURL, SandboxRestURL
}

func (p *Provider) FormActionURL() string {
	formURL, _ := p.URLs()
	return formURL
}

func (p *Provider) ComputeFees(amount decimal.Decimal, currency, payerCountry string) decimal.Decimal {
	return p.fees.CalculateFee(amount, currency, payerCountry)
}

func (p *Provider) joinURL(path string) string {
	return p.baseURL.ResolveReference(&url.URL{Path: path}).String()
}
