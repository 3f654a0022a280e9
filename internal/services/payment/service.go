package payment

import (
	"context"
	"fmt"

	"paygate/internal/logger"
	"paygate/internal/models"
	"paygate/internal/repositories"
	"paygate/internal/repositories/cache"
	"paygate/internal/services/provider"
	"paygate/internal/validation"
)

type service struct {
	repo      repositories.TransactionRepository
	providers ProviderRegistry
	cache     StatusCache
}

// NewService creates a new checkout service
func NewService(repo repositories.TransactionRepository, providers ProviderRegistry, cache StatusCache) Service {
	if repo == nil {
		panic("transaction repository is required")
	}
	if providers == nil {
		panic("provider registry is required")
	}
	if cache == nil {
		panic("cache is required")
	}

	return &service{
		repo:      repo,
		providers: providers,
		cache:     cache,
	}
}

func (s *service) PrepareRedirect(ctx context.Context, providerName string, req CheckoutRequest) (*RedirectForm, error) {
	if err := validateCheckout(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	p, err := s.providers.Get(providerName)
	if err != nil {
		return nil, err
	}

	tx, err := s.findOne(ctx, req.Reference)
	if err != nil {
		return nil, err
	}

	if tx.Acquirer != nil && tx.Acquirer.Provider != "" && tx.Acquirer.Provider != p.Name() {
		return nil, fmt.Errorf("%w: %s", ErrProviderMismatch, tx.Acquirer.Provider)
	}
	if tx.State != models.StateDraft && tx.State != models.StatePending {
		return nil, fmt.Errorf("%w: %s", ErrInvalidState, tx.State)
	}
	if err := validateAmount(tx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}

	tx.PartnerCountry = req.PartnerCountry
	tx.Fees = p.ComputeFees(tx.Amount, tx.Currency, req.PartnerCountry).Round(2)

	values, err := p.BuildRequest(provider.RequestValues{
		Reference:        tx.Reference,
		Amount:           tx.Amount,
		Currency:         tx.Currency,
		Fees:             tx.Fees,
		ReturnURL:        req.ReturnURL,
		PartnerAddress:   req.PartnerAddress,
		PartnerCity:      req.PartnerCity,
		PartnerCountry:   req.PartnerCountry,
		PartnerState:     req.PartnerState,
		PartnerEmail:     req.PartnerEmail,
		PartnerZip:       req.PartnerZip,
		PartnerFirstName: req.PartnerFirstName,
		PartnerLastName:  req.PartnerLastName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", p.Name(), err)
	}

	if err := s.repo.Write(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to store fees: %w", err)
	}
	if err := s.cache.Delete(ctx, cache.TransactionStatusKey(tx.Reference)); err != nil {
		logger.FromContext(ctx).Warn("failed to invalidate transaction cache", "reference", tx.Reference, "error", err)
	}

	logger.FromContext(ctx).Info("checkout prepared",
		"provider", p.Name(),
		"reference", tx.Reference,
		"fees", tx.Fees.StringFixed(2),
	)

	return &RedirectForm{
		ActionURL: p.FormActionURL(),
		Values:    values,
	}, nil
}

func (s *service) GetTransactionStatus(ctx context.Context, reference string) (*StatusView, error) {
	key := cache.TransactionStatusKey(reference)

	var view StatusView
	found, err := s.cache.Get(ctx, key, &view)
	if err != nil {
		logger.FromContext(ctx).Warn("status cache read failed", "reference", reference, "error", err)
	}
	if found {
		return &view, nil
	}

	tx, err := s.findOne(ctx, reference)
	if err != nil {
		return nil, err
	}

	result := newStatusView(tx)
	if err := s.cache.Set(ctx, key, result); err != nil {
		logger.FromContext(ctx).Warn("status cache write failed", "reference", reference, "error", err)
	}
	return result, nil
}

func (s *service) findOne(ctx context.Context, reference string) (*models.Transaction, error) {
	txs, err := s.repo.FindByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	switch len(txs) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrTransactionNotFound, reference)
	case 1:
		return &txs[0], nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrAmbiguousReference, reference)
	}
}

func validateCheckout(req CheckoutRequest) error {
	v := validation.New()
	v.Required("reference", req.Reference)
	v.MaxLength("reference", req.Reference, validation.MaxReferenceLength)
	v.MaxLength("return_url", req.ReturnURL, validation.MaxURLLength)
	v.MaxLength("partner_first_name", req.PartnerFirstName, validation.MaxNameLength)
	v.MaxLength("partner_last_name", req.PartnerLastName, validation.MaxNameLength)
	v.MaxLength("partner_address", req.PartnerAddress, validation.MaxAddressLength)
	if req.PartnerEmail != "" {
		v.Email("partner_email", req.PartnerEmail)
	}
	if req.PartnerCountry != "" {
		v.Country("partner_country", req.PartnerCountry)
	}
	return v.Err()
}

func validateAmount(tx *models.Transaction) error {
	v := validation.New()
	v.Positive("amount", tx.Amount)
	v.Currency("currency", tx.Currency)
	return v.Err()
}
