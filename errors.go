package checkout

import "errors"

var (
	// ErrNotConfigured means the gateway is missing the invoicing API URL,
	// store ID or admin panel URL. Fatal, not retryable.
	ErrNotConfigured = errors.New("gateway is not configured")

	ErrNotFound        = errors.New("not found")
	ErrBadNotification = errors.New("bad notification payload")

	// ErrInvoiceMismatch means a notification reported an invoice that is
	// not the one issued for the order. Possibly spoofed, never act on it.
	ErrInvoiceMismatch = errors.New("unexpected invoice for order")
)
