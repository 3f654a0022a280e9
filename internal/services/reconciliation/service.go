package reconciliation

import (
	"context"
	"fmt"

	"paygate/internal/logger"
	"paygate/internal/models"
	"paygate/internal/repositories"
	"paygate/internal/repositories/cache"
	"paygate/internal/services/provider"
)

type service struct {
	store     Store
	providers ProviderRegistry
	logs      NotificationLogWriter
	cache     CacheInvalidator
}

// NewService creates a new reconciliation service
func NewService(store Store, providers ProviderRegistry, logs NotificationLogWriter, cache CacheInvalidator) Service {
	if store == nil {
		panic("store is required")
	}
	if providers == nil {
		panic("provider registry is required")
	}
	if logs == nil {
		panic("notification log is required")
	}
	if cache == nil {
		panic("cache is required")
	}

	return &service{
		store:     store,
		providers: providers,
		logs:      logs,
		cache:     cache,
	}
}

// HandleNotification matches n to its transaction, validates it and applies
// the reported status, all inside one storage transaction.
//
// A notification that disagrees with its transaction is refused: the
// Result lists the discrepancies and the error wraps ErrInvalidNotification.
// Notifications for done or cancelled transactions are acknowledged but not
// applied.
func (s *service) HandleNotification(ctx context.Context, providerName string, n provider.Notification) (*Result, error) {
	log := logger.FromContext(ctx).With("provider", providerName)

	p, err := s.providers.Get(providerName)
	if err != nil {
		return nil, err
	}

	result := &Result{Provider: providerName}
	err = s.store.WithinTransaction(ctx, func(repo repositories.TransactionRepository) error {
		tx, err := p.FindTransaction(ctx, repo, n)
		if err != nil {
			return err
		}
		result.Reference = tx.Reference
		result.State = tx.State

		if tx.Acquirer != nil && tx.Acquirer.Provider != "" && tx.Acquirer.Provider != p.Name() {
			return &provider.ValidationError{
				Provider: p.Name(),
				Message:  fmt.Sprintf("transaction %s belongs to acquirer %s", tx.Reference, tx.Acquirer.Provider),
			}
		}

		if invalid := p.Validate(tx, n); len(invalid) > 0 {
			result.Outcome = models.OutcomeRejected
			result.Discrepancies = invalid
			return nil
		}

		if tx.State.IsFinal() {
			result.Outcome = models.OutcomeIgnored
			return nil
		}

		p.ApplyStatus(tx, n)
		if err := repo.Write(ctx, tx); err != nil {
			return fmt.Errorf("failed to write transaction %s: %w", tx.Reference, err)
		}
		result.Outcome = models.OutcomeApplied
		result.State = tx.State
		return nil
	})
	if err != nil {
		log.Warn("notification not processed", "reference", n.Get("item_number"), "error", err)
		s.record(ctx, providerName, n, models.OutcomeFailed, err.Error())
		return nil, err
	}

	switch result.Outcome {
	case models.OutcomeRejected:
		detail := provider.FormatDiscrepancies(result.Discrepancies)
		log.Warn("notification refused", "reference", result.Reference, "discrepancies", detail)
		s.record(ctx, providerName, n, result.Outcome, detail)
		return result, fmt.Errorf("%w: %s", ErrInvalidNotification, detail)

	case models.OutcomeIgnored:
		detail := fmt.Sprintf("transaction already %s", result.State)
		log.Info("notification ignored", "reference", result.Reference, "state", result.State)
		s.record(ctx, providerName, n, result.Outcome, detail)

	default:
		if err := s.cache.Delete(ctx, cache.TransactionStatusKey(result.Reference)); err != nil {
			log.Warn("failed to invalidate transaction cache", "reference", result.Reference, "error", err)
		}
		log.Info("notification applied", "reference", result.Reference, "state", result.State)
		s.record(ctx, providerName, n, result.Outcome, fmt.Sprintf("state set to %s", result.State))
	}

	return result, nil
}

// record writes the audit entry. Failures are logged only; the outcome of
// the notification is already decided.
func (s *service) record(ctx context.Context, providerName string, n provider.Notification, outcome, detail string) {
	entry := &models.NotificationLog{
		Provider:      providerName,
		Reference:     n.Get("item_number"),
		TxnID:         n.Get("txn_id"),
		PaymentStatus: n.Get("payment_status"),
		Outcome:       outcome,
		Detail:        detail,
		Payload:       models.JSONFromStrings(n),
	}
	if err := s.logs.Create(ctx, entry); err != nil {
		logger.FromContext(ctx).Error("failed to record notification", "provider", providerName, "error", err)
	}
}
