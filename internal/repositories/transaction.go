package repositories

import (
	"context"
	"fmt"

	"paygate/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TransactionRepository is the record store the reconciler and the
// checkout flow work against.
type TransactionRepository interface {
	// FindByReference returns up to two matches: enough to tell "none",
	// "exactly one" and "more than one" apart.
	FindByReference(ctx context.Context, reference string) ([]models.Transaction, error)
	// Write persists the transaction and its provider extension.
	Write(ctx context.Context, tx *models.Transaction) error
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	if db == nil {
		panic("db is required")
	}
	return &transactionRepository{db: db}
}

func (r *transactionRepository) FindByReference(ctx context.Context, reference string) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := r.db.WithContext(ctx).
		Preload("Acquirer").
		Preload("Acquirer.Alipay").
		Preload("PaymentToken").
		Preload("Alipay").
		Where("reference = ?", reference).
		Order("id").
		Limit(2).
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find transactions by reference: %w", err)
	}
	return txs, nil
}

func (r *transactionRepository) Write(ctx context.Context, tx *models.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(dtx *gorm.DB) error {
		if err := dtx.Omit(clause.Associations).Save(tx).Error; err != nil {
			return fmt.Errorf("failed to save transaction: %w", err)
		}

		if tx.Alipay != nil {
			tx.Alipay.TransactionID = tx.ID
			err := dtx.Clauses(clause.OnConflict{UpdateAll: true}).Create(tx.Alipay).Error
			if err != nil {
				return fmt.Errorf("failed to save alipay transaction: %w", err)
			}
		}
		return nil
	})
}

// Store opens storage transactions around a unit of work.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	if db == nil {
		panic("db is required")
	}
	return &Store{db: db}
}

// Transactions returns a repository outside of any storage transaction.
func (s *Store) Transactions() TransactionRepository {
	return NewTransactionRepository(s.db)
}

// WithinTransaction runs fn against a repository bound to one database
// transaction. Nothing fn wrote survives if it returns an error.
func (s *Store) WithinTransaction(ctx context.Context, fn func(repo TransactionRepository) error) error {
	return s.db.WithContext(ctx).Transaction(func(dtx *gorm.DB) error {
		return fn(NewTransactionRepository(dtx))
	})
}
