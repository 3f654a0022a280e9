package reconciliation

import (
	"paygate/internal/models"
	"paygate/internal/services/provider"
)

// Result describes what happened to a notification.
type Result struct {
	Provider      string                  `json:"provider"`
	Reference     string                  `json:"reference"`
	Outcome       string                  `json:"outcome"`
	State         models.TransactionState `json:"state"`
	Discrepancies []provider.Discrepancy  `json:"discrepancies,omitempty"`
}
