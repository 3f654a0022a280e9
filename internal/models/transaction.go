package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionState is the lifecycle state of a payment attempt.
type TransactionState string

const (
	StateDraft   TransactionState = "draft"
	StatePending TransactionState = "pending"
	StateDone    TransactionState = "done"
	StateError   TransactionState = "error"
	StateCancel  TransactionState = "cancel"
)

// IsFinal reports whether no further notification should change the state.
func (s TransactionState) IsFinal() bool {
	return s == StateDone || s == StateCancel
}

// Transaction is a single payment attempt tied to a business reference.
// Reference is indexed but not unique so duplicates stay detectable.
type Transaction struct {
	ID         uint   `gorm:"primarykey"`
	Reference  string `gorm:"index;not null"`
	AcquirerID uint   `gorm:"not null"`
	Acquirer   *Acquirer

	Amount   decimal.Decimal `gorm:"type:numeric(16,2);not null"`
	Fees     decimal.Decimal `gorm:"type:numeric(16,2);default:0"`
	Currency string          `gorm:"size:3;not null"`

	// AcquirerReference is the provider's transaction id, empty until the
	// first notification sets it.
	AcquirerReference string `gorm:"index"`
	PaymentTokenID    *uint
	PaymentToken      *PaymentToken
	PartnerCountry    string `gorm:"size:2"`

	State          TransactionState `gorm:"not null;default:'draft'"`
	StateMessage   string
	ValidationDate *time.Time

	Alipay *AlipayTransaction `gorm:"foreignKey:TransactionID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PayerAcquirerRef returns the provider payer id of the saved payment
// method, or "" when the transaction does not reuse one.
func (t *Transaction) PayerAcquirerRef() string {
	if t.PaymentToken == nil {
		return ""
	}
	return t.PaymentToken.AcquirerRef
}

// AlipayTransaction holds the Alipay specific fields of a Transaction.
type AlipayTransaction struct {
	TransactionID uint `gorm:"primarykey;autoIncrement:false"`
	TxnType       string
}

// PaymentToken is a payer's saved payment method at an acquirer.
type PaymentToken struct {
	ID          uint   `gorm:"primarykey"`
	AcquirerID  uint   `gorm:"not null"`
	Name        string
	AcquirerRef string `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
