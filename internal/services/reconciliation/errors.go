package reconciliation

import "errors"

// ErrInvalidNotification is returned with a Result when the notification
// disagrees with its transaction. The transaction is left untouched.
var ErrInvalidNotification = errors.New("notification does not match transaction")
