package payment

import "errors"

// Service errors
var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrAmbiguousReference  = errors.New("several transactions share this reference")
	ErrInvalidState        = errors.New("transaction cannot be paid in its current state")
	ErrProviderMismatch    = errors.New("transaction belongs to another acquirer")
	ErrInvalidRequest      = errors.New("invalid checkout request")
	ErrInvalidAmount       = errors.New("transaction amount cannot be paid")
)
