package reconciliation

import (
	"context"

	"paygate/internal/models"
	"paygate/internal/repositories"
	"paygate/internal/services/provider"
)

// Service processes provider notifications one at a time.
type Service interface {
	HandleNotification(ctx context.Context, providerName string, n provider.Notification) (*Result, error)
}

// Store runs a unit of work inside one storage transaction.
type Store interface {
	WithinTransaction(ctx context.Context, fn func(repo repositories.TransactionRepository) error) error
}

type ProviderRegistry interface {
	Get(name string) (provider.Provider, error)
}

type NotificationLogWriter interface {
	Create(ctx context.Context, entry *models.NotificationLog) error
}

type CacheInvalidator interface {
	Delete(ctx context.Context, keys ...string) error
}
