package models

import "time"

// Notification outcomes
const (
	OutcomeApplied  = "applied"
	OutcomeRejected = "rejected"
	OutcomeIgnored  = "ignored"
	OutcomeFailed   = "failed"
)

// NotificationLog is the audit trail of every processed notification.
type NotificationLog struct {
	ID            string `gorm:"primarykey;type:uuid"`
	Provider      string `gorm:"index;not null"`
	Reference     string `gorm:"index"`
	TxnID         string
	PaymentStatus string
	Outcome       string `gorm:"not null"`
	Detail        string
	Payload       JSON `gorm:"type:jsonb"`
	CreatedAt     time.Time
}
