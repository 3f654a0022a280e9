package provider

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Feature is an optional capability a provider supports.
type Feature string

const FeatureFees Feature = "fees"

// Notification is the untrusted flat payload a provider posts back.
type Notification map[string]string

// Get returns the value for key, or "" when absent.
func (n Notification) Get(key string) string {
	return n[key]
}

// Has reports whether key is present, even with an empty value.
func (n Notification) Has(key string) bool {
	_, ok := n[key]
	return ok
}

// Discrepancy is a field where a notification disagrees with the
// transaction it refers to.
type Discrepancy struct {
	Field    string `json:"field"`
	Received string `json:"received"`
	Expected string `json:"expected"`
}

func (d Discrepancy) String() string {
	return fmt.Sprintf("%s: received %q, expected %q", d.Field, d.Received, d.Expected)
}

// FormatDiscrepancies renders a list for logs and audit records.
func FormatDiscrepancies(list []Discrepancy) string {
	parts := make([]string, len(list))
	for i, d := range list {
		parts[i] = d.String()
	}
	return strings.Join(parts, "; ")
}

// RequestValues describes the payment a redirect form is built for.
type RequestValues struct {
	Reference string
	Amount    decimal.Decimal
	Currency  string
	Fees      decimal.Decimal
	ReturnURL string

	PartnerAddress   string
	PartnerCity      string
	PartnerCountry   string
	PartnerState     string
	PartnerEmail     string
	PartnerZip       string
	PartnerFirstName string
	PartnerLastName  string
}

// FormValues are the hidden inputs of the redirect form.
type FormValues map[string]string
