package provider

import (
	"context"

	"paygate/internal/models"

	"github.com/shopspring/decimal"
)

// TransactionFinder looks transactions up by business reference. It may
// return any number of matches; callers decide what a valid count is.
type TransactionFinder interface {
	FindByReference(ctx context.Context, reference string) ([]models.Transaction, error)
}

// Provider is the capability set every redirect-and-notify integration
// implements. Providers are selected through a Registry by Name.
type Provider interface {
	Name() string
	Features() []Feature

	// FormActionURL is where the buyer's browser posts the redirect form.
	FormActionURL() string

	ComputeFees(amount decimal.Decimal, currency, payerCountry string) decimal.Decimal
	BuildRequest(values RequestValues) (FormValues, error)

	// FindTransaction resolves the single transaction a notification is about.
	// It returns a *ValidationError when the notification cannot be matched.
	FindTransaction(ctx context.Context, finder TransactionFinder, n Notification) (*models.Transaction, error)

	// Validate lists every field where n disagrees with tx. An empty result
	// means the notification is consistent.
	Validate(tx *models.Transaction, n Notification) []Discrepancy

	// ApplyStatus moves tx to the state n reports and returns it.
	ApplyStatus(tx *models.Transaction, n Notification) *models.Transaction
}

// ReturnURLResolver is implemented by providers that echo a buyer return
// URL back in their notifications.
type ReturnURLResolver interface {
	ReturnURL(n Notification) string
}
