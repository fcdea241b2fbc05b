package checkout

import "time"

// Config holds the gateway settings. It is built once at process start and
// passed into components explicitly, there is no global settings state.
type Config struct {
	// APIURL is the base URL of the invoicing API, e.g. https://api.example.com.
	APIURL string
	// StoreID identifies the merchant store on the invoicing side.
	StoreID string
	// AdminURL is the invoicing admin panel, invoice checkout pages live
	// under {AdminURL}/i/{invoice_id}.
	AdminURL string

	// StoreURL is the store's own public base URL. The default notification
	// callback and the canonical "order received" page derive from it.
	StoreURL string

	// NotificationURL is where the invoicing system delivers status
	// notifications. Empty means the store's own callback endpoint.
	NotificationURL string
	// RedirectURL overrides the post-payment return destination. Empty
	// means the store's canonical "order received" page.
	RedirectURL string

	Title       string
	Description string

	// RequestTimeout bounds every outbound call to the invoicing API.
	RequestTimeout time.Duration
	// MaxRedirects bounds redirect following on outbound calls.
	MaxRedirects int
}

const (
	DefaultRequestTimeout = 2 * time.Minute
	DefaultMaxRedirects   = 10
)

// Validate reports a fatal misconfiguration. The admin URL is required
// because invoice checkout pages are served from the admin panel, the
// store URL because the notification callback and the return page derive
// from it.
func (c Config) Validate() error {
	if c.APIURL == "" || c.StoreID == "" || c.AdminURL == "" || c.StoreURL == "" {
		return ErrNotConfigured
	}
	return nil
}

func (c Config) Timeout() time.Duration {
	if c.RequestTimeout <= 0 {
		return DefaultRequestTimeout
	}
	return c.RequestTimeout
}

func (c Config) RedirectBound() int {
	if c.MaxRedirects <= 0 {
		return DefaultMaxRedirects
	}
	return c.MaxRedirects
}
