package payment

import (
	"context"

	"paygate/internal/services/provider"
)

// Service prepares checkout redirects and reports transaction status.
type Service interface {
	// PrepareRedirect computes the fees of the transaction, stores them and
	// returns the form the buyer's browser posts to the provider.
	PrepareRedirect(ctx context.Context, providerName string, req CheckoutRequest) (*RedirectForm, error)
	GetTransactionStatus(ctx context.Context, reference string) (*StatusView, error)
}

type ProviderRegistry interface {
	Get(name string) (provider.Provider, error)
}

// StatusCache is the slice of the cache service used for status views.
type StatusCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, keys ...string) error
}
