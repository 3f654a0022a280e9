package repositories

import (
	"context"
	"errors"
	"fmt"

	"paygate/internal/models"

	"gorm.io/gorm"
)

type AcquirerRepository interface {
	// Upsert creates or updates the acquirer with acq.Provider together with
	// its provider extension.
	Upsert(ctx context.Context, acq *models.Acquirer) error
}

type acquirerRepository struct {
	db *gorm.DB
}

func NewAcquirerRepository(db *gorm.DB) AcquirerRepository {
	if db == nil {
		panic("db is required")
	}
	return &acquirerRepository{db: db}
}

func (r *acquirerRepository) Upsert(ctx context.Context, acq *models.Acquirer) error {
	return r.db.WithContext(ctx).Transaction(func(dtx *gorm.DB) error {
		var existing models.Acquirer
		err := dtx.Preload("Alipay").Where("provider = ?", acq.Provider).First(&existing).Error
		switch {
		case err == nil:
			acq.ID = existing.ID
			acq.CreatedAt = existing.CreatedAt
		case errors.Is(err, gorm.ErrRecordNotFound):
		default:
			return fmt.Errorf("failed to get acquirer: %w", err)
		}

		settings := acq.Alipay
		acq.Alipay = nil
		if err := dtx.Save(acq).Error; err != nil {
			return fmt.Errorf("failed to save acquirer: %w", err)
		}
		acq.Alipay = settings

		if settings == nil {
			return nil
		}
		settings.AcquirerID = acq.ID
		if existing.Alipay != nil {
			settings.ID = existing.Alipay.ID
			settings.CreatedAt = existing.Alipay.CreatedAt
		}
		if err := dtx.Save(settings).Error; err != nil {
			return fmt.Errorf("failed to save alipay settings: %w", err)
		}
		return nil
	})
}
