package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Acquirer environments
const (
	EnvironmentProd    = "prod"
	EnvironmentSandbox = "sandbox"
)

// Acquirer is the provider-agnostic part of a payment provider integration.
// Provider-specific settings live in extension records keyed by AcquirerID.
type Acquirer struct {
	ID          uint   `gorm:"primarykey"`
	Name        string `gorm:"not null"`
	Provider    string `gorm:"uniqueIndex;not null"`
	Environment string `gorm:"not null;default:'sandbox'"`
	CompanyName string `gorm:"not null"`
	CountryCode string `gorm:"size:2"`
	FeesActive  bool   `gorm:"default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Alipay *AlipayAcquirer `gorm:"foreignKey:AcquirerID"`
}

// AlipayAcquirer holds the Alipay settings of an Acquirer.
type AlipayAcquirer struct {
	ID         uint `gorm:"primarykey"`
	AcquirerID uint `gorm:"uniqueIndex;not null"`

	// EmailAccount is the business email the redirect form is addressed to.
	EmailAccount string `gorm:"not null"`
	// SellerAccount is the merchant id; when set it supersedes the email
	// when checking who a notification was sent to.
	SellerAccount string
	UseIPN        bool `gorm:"default:true"`

	APIEnabled             bool `gorm:"default:false"`
	APIUsername            string
	APIPassword            string `json:"-"`
	APIAccessToken         string `json:"-"`
	APIAccessTokenValidity *time.Time

	FeesDomFixed decimal.Decimal `gorm:"type:numeric(16,4);default:0.35"`
	FeesDomVar   decimal.Decimal `gorm:"type:numeric(16,4);default:3.4"`
	FeesIntFixed decimal.Decimal `gorm:"type:numeric(16,4);default:0.35"`
	FeesIntVar   decimal.Decimal `gorm:"type:numeric(16,4);default:3.9"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
