package checkout

type OrderStatus string

func (s OrderStatus) Match(in OrderStatus) bool {
	return s == in
}

const (
	PENDING_ORD    OrderStatus = "pending"
	PROCESSING_ORD OrderStatus = "processing"
	FAILED_ORD     OrderStatus = "failed"
	CANCELLED_ORD  OrderStatus = "cancelled"
	COMPLETED_ORD  OrderStatus = "completed"
)

var orderStatusTransitionChart = OrderStatusTransitionChart{
	PENDING_ORD:    {PROCESSING_ORD, FAILED_ORD, CANCELLED_ORD},
	PROCESSING_ORD: {COMPLETED_ORD, FAILED_ORD, CANCELLED_ORD},
	FAILED_ORD:     {PROCESSING_ORD, CANCELLED_ORD},
}

type OrderStatusTransitionChart map[OrderStatus][]OrderStatus

func (s OrderStatusTransitionChart) Allowed(from, to OrderStatus) bool {
	list, exists := s[from]
	if !exists {
		return false
	}
	for _, status := range list {
		if status.Match(to) {
			return true
		}
	}
	return false
}

// AllowedOrderTransition reports whether the store accepts a status change.
// A transition to the current status is always allowed and is a no-op.
func AllowedOrderTransition(from, to OrderStatus) bool {
	if from.Match(to) {
		return true
	}
	return orderStatusTransitionChart.Allowed(from, to)
}

// Order is the subset of the store's order the gateway reads and updates.
type Order struct {
	ID            string
	Total         float64
	Currency      string
	BuyerEmail    string
	Status        OrderStatus
	PaymentMethod string

	// OrderKey signs the return URL so the received page can locate the
	// order without exposing sequential ids.
	OrderKey string

	Paid         bool
	StockReduced bool
}

// OrderStore is the store platform's order storage. All mutating operations
// are idempotent at the target-state level: applying one when the order is
// already in the target state is a no-op.
type OrderStore interface {
	Find(orderID string) (*Order, error)
	SetStatus(orderID string, status OrderStatus, note string) error
	MarkPaid(orderID string) error
	ReduceStock(orderID string) error
	RestoreStock(orderID string) error
}

// Annotation links an order to the invoice issued for it. At most one
// non-terminal invoice exists per order; InvoiceID is set on the first
// successful issue and replaced only after a re-issue succeeds.
type Annotation struct {
	OrderID     string
	InvoiceID   string
	RedirectURL string
}

// AnnotationStore is durable per-order gateway metadata. Get returns
// ErrNotFound when no invoice was ever issued for the order.
type AnnotationStore interface {
	Get(orderID string) (*Annotation, error)
	Save(a *Annotation) error
}
