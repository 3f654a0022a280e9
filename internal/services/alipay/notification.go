package alipay

import (
	"context"
	"fmt"
	"strings"
	"time"

	"paygate/internal/logger"
	"paygate/internal/models"
	"paygate/internal/services/provider"

	"github.com/shopspring/decimal"
)

// Amounts are compared at this many decimal places.
const amountPrecision = 2

// FindTransaction resolves the transaction a notification refers to by its
// item_number. Exactly one match is required.
func (p *Provider) FindTransaction(ctx context.Context, finder provider.TransactionFinder, n provider.Notification) (*models.Transaction, error) {
	log := logger.FromContext(ctx)

	reference, txnID := n.Get("item_number"), n.Get("txn_id")
	if reference == "" || txnID == "" {
		msg := fmt.Sprintf("received data with missing reference (%s) or txn_id (%s)", reference, txnID)
		log.Info("alipay: "+msg, "provider", ProviderName)
		return nil, &provider.ValidationError{Provider: ProviderName, Message: msg}
	}

	txs, err := finder.FindByReference(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("alipay: find transaction %s: %w", reference, err)
	}

	if len(txs) != 1 {
		msg := fmt.Sprintf("received data for reference %s", reference)
		if len(txs) == 0 {
			msg += "; no order found"
		} else {
			msg += "; multiple order found"
		}
		log.Info("alipay: "+msg, "provider", ProviderName, "matches", len(txs))
		return nil, &provider.ValidationError{Provider: ProviderName, Message: msg}
	}

	return &txs[0], nil
}

// Validate runs every consistency check and returns the failed ones in
// check order.
func (p *Provider) Validate(tx *models.Transaction, n provider.Notification) []provider.Discrepancy {
	var invalid []provider.Discrepancy
	add := func(field, received, expected string) {
		invalid = append(invalid, provider.Discrepancy{Field: field, Received: received, Expected: expected})
	}

	logger.L.Info("Received a notification from Alipay",
		"ipn_version", n.Get("notify_version"),
		"reference", tx.Reference,
	)
	if n.Get("test_ipn") != "" {
		logger.L.Warn("Received a notification from Alipay using sandbox", "reference", tx.Reference)
	}

	if tx.AcquirerReference != "" && n.Get("txn_id") != tx.AcquirerReference {
		add("txn_id", n.Get("txn_id"), tx.AcquirerReference)
	}

	// mc_gross is amount + fees
	expectedGross := tx.Amount.Add(tx.Fees)
	rawGross := "0.0"
	if n.Has("mc_gross") {
		rawGross = n.Get("mc_gross")
	}
	if !amountMatches(rawGross, expectedGross) {
		add("mc_gross", n.Get("mc_gross"), expectedGross.StringFixed(amountPrecision))
	}

	if n.Get("mc_currency") != tx.Currency {
		add("mc_currency", n.Get("mc_currency"), tx.Currency)
	}

	if n.Has("handling_amount") && !amountMatches(n.Get("handling_amount"), tx.Fees) {
		add("handling_amount", n.Get("handling_amount"), tx.Fees.StringFixed(amountPrecision))
	}

	if ref := tx.PayerAcquirerRef(); ref != "" && n.Get("payer_id") != ref {
		add("payer_id", n.Get("payer_id"), ref)
	}

	// The merchant id is the stronger signal: the receiver email can be set
	// to something other than the business email on the provider side. One
	// of the two checks always runs.
	receiverID, sellerAccount := n.Get("receiver_id"), p.settings.SellerAccount
	if receiverID != "" && sellerAccount != "" {
		if receiverID != sellerAccount {
			add("receiver_id", receiverID, sellerAccount)
		}
	} else if n.Get("receiver_email") != p.settings.EmailAccount {
		add("receiver_email", n.Get("receiver_email"), p.settings.EmailAccount)
	}

	return invalid
}

// ApplyStatus records the provider ids on tx and maps payment_status to a
// transaction state. It does not look at the current state.
func (p *Provider) ApplyStatus(tx *models.Transaction, n provider.Notification) *models.Transaction {
	status := n.Get("payment_status")

	tx.AcquirerReference = n.Get("txn_id")
	if tx.Alipay == nil {
		tx.Alipay = &models.AlipayTransaction{TransactionID: tx.ID}
	}
	tx.Alipay.TxnType = n.Get("payment_type")

	switch status {
	case StatusCompleted, StatusProcessed:
		logger.L.Info(fmt.Sprintf("Validated Alipay payment for tx %s: set as done", tx.Reference))
		validated := p.paymentDate(n.Get("payment_date"))
		tx.State = models.StateDone
		tx.ValidationDate = &validated
	case StatusPending, StatusExpired:
		logger.L.Info(fmt.Sprintf("Received notification for Alipay payment %s: set as pending", tx.Reference))
		tx.State = models.StatePending
		tx.StateMessage = n.Get("pending_reason")
	default:
		msg := fmt.Sprintf("Received unrecognized status for Alipay payment %s: %s, set as error", tx.Reference, status)
		logger.L.Info(msg)
		tx.State = models.StateError
		tx.StateMessage = msg
	}

	return tx
}

func (p *Provider) paymentDate(raw string) time.Time {
	if raw != "" {
		if t, ok := parsePaymentDate(raw); ok {
			return t
		}
		logger.L.Warn("alipay: unparseable payment_date, using current time", "payment_date", raw)
	}
	return p.now()
}

func parsePaymentDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if i := strings.LastIndexByte(raw, ' '); i >= 0 {
		if offset, ok := paymentDateZones[raw[i+1:]]; ok {
			raw = raw[:i+1] + offset
		}
	}

	for _, layout := range paymentDateLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		if strings.HasSuffix(layout, "MST") && !knownZone(t) {
			// an abbreviation time.Parse could not place
			return time.Time{}, false
		}
		return t, true
	}
	return time.Time{}, false
}

// knownZone reports whether t carries a real offset for its zone name.
func knownZone(t time.Time) bool {
	name, offset := t.Zone()
	return offset != 0 || name == "UTC" || name == "GMT"
}

func amountMatches(raw string, expected decimal.Decimal) bool {
	got, err := decimal.NewFromString(raw)
	if err != nil {
		return false
	}
	return got.Round(amountPrecision).Equal(expected.Round(amountPrecision))
}
