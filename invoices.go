package checkout

type InvoiceStatus string

func (s InvoiceStatus) Match(in InvoiceStatus) bool {
	return s == in
}

// Terminal reports whether the invoice can never be paid anymore. An
// annotation pointing at a terminal invoice is stale and a new invoice may
// be issued for the order.
func (s InvoiceStatus) Terminal() bool {
	return s == INVALID_I || s == EXPIRED_I
}

const (
	PENDING_I  InvoiceStatus = "pending"
	COMPLETE_I InvoiceStatus = "complete"
	INVALID_I  InvoiceStatus = "invalid"
	EXPIRED_I  InvoiceStatus = "expired"
)

// Invoice is a point-in-time snapshot of the invoicing system's record.
// The status is authoritative there and never inferred locally.
type Invoice struct {
	ID      string        `json:"id"`
	Status  InvoiceStatus `json:"status"`
	OrderID string        `json:"order_id"`
}
