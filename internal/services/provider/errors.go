package provider

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownProvider   = errors.New("unknown payment provider")
	ErrDuplicateProvider = errors.New("payment provider already registered")
)

// ValidationError reports a notification that cannot be matched to exactly
// one transaction. Nothing is written when it is returned.
type ValidationError struct {
	Provider string
	Message  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

// IsValidationError reports whether err wraps a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
