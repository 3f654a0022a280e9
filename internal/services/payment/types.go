package payment

import (
	"time"

	"paygate/internal/models"

	"github.com/shopspring/decimal"
)

// CheckoutRequest carries the buyer details sent along with the redirect.
type CheckoutRequest struct {
	Reference string `json:"reference"`
	ReturnURL string `json:"return_url,omitempty"`

	PartnerFirstName string `json:"partner_first_name,omitempty"`
	PartnerLastName  string `json:"partner_last_name,omitempty"`
	PartnerEmail     string `json:"partner_email,omitempty"`
	PartnerAddress   string `json:"partner_address,omitempty"`
	PartnerCity      string `json:"partner_city,omitempty"`
	PartnerZip       string `json:"partner_zip,omitempty"`
	PartnerState     string `json:"partner_state,omitempty"`
	PartnerCountry   string `json:"partner_country,omitempty"`
}

// RedirectForm is posted by the buyer's browser to ActionURL.
type RedirectForm struct {
	ActionURL string            `json:"action_url"`
	Values    map[string]string `json:"values"`
}

// StatusView is the cached, read-only view of a transaction.
type StatusView struct {
	Reference         string                  `json:"reference"`
	State             models.TransactionState `json:"state"`
	StateMessage      string                  `json:"state_message,omitempty"`
	Amount            decimal.Decimal         `json:"amount"`
	Fees              decimal.Decimal         `json:"fees"`
	Currency          string                  `json:"currency"`
	AcquirerReference string                  `json:"acquirer_reference,omitempty"`
	ValidationDate    *time.Time              `json:"validation_date,omitempty"`
	UpdatedAt         time.Time               `json:"updated_at"`
}

func newStatusView(tx *models.Transaction) *StatusView {
	return &StatusView{
		Reference:         tx.Reference,
		State:             tx.State,
		StateMessage:      tx.StateMessage,
		Amount:            tx.Amount,
		Fees:              tx.Fees,
		Currency:          tx.Currency,
		AcquirerReference: tx.AcquirerReference,
		ValidationDate:    tx.ValidationDate,
		UpdatedAt:         tx.UpdatedAt,
	}
}
