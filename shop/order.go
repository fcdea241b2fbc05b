package shop

import (
	"time"

	"github.com/google/uuid"

	"github.com/bitcart/checkout"
)

//go:generate reform

func NewOrder(total float64, currency, buyerEmail, paymentMethod string) *Order {
	return &Order{
		OrderID:       uuid.NewString(),
		OrderKey:      newOrderKey(),
		Total:         total,
		Currency:      currency,
		BuyerEmail:    buyerEmail,
		PaymentMethod: paymentMethod,
		Status:        checkout.PENDING_ORD,
	}
}

//reform:shop.orders
type Order struct {
	OrderID       string               `reform:"order_id,pk"`
	OrderKey      string               `reform:"order_key"`
	Total         float64              `reform:"total"`
	Currency      string               `reform:"currency"`
	BuyerEmail    string               `reform:"buyer_email"`
	Status        checkout.OrderStatus `reform:"status"`
	PaymentMethod string               `reform:"payment_method"`
	Paid          bool                 `reform:"paid"`
	StockReduced  bool                 `reform:"stock_reduced"`
	CreatedAt     time.Time            `reform:"created_at"`
	UpdatedAt     time.Time            `reform:"updated_at"`
}

func (o *Order) BeforeInsert() error {
	o.UpdatedAt = time.Now()
	o.CreatedAt = time.Now()
	if o.Status == "" {
		o.Status = checkout.PENDING_ORD
	}
	return nil
}

func (o *Order) BeforeUpdate() error {
	o.UpdatedAt = time.Now()
	return nil
}

//reform:shop.order_notes
type OrderNote struct {
	NoteID    int64     `reform:"note_id,pk"`
	OrderID   string    `reform:"order_id"`
	Note      string    `reform:"note"`
	CreatedAt time.Time `reform:"created_at"`
}

func (n *OrderNote) BeforeInsert() error {
	n.CreatedAt = time.Now()
	return nil
}

// newOrderKey signs the post-payment return URL, the received page accepts
// the order id only together with its key.
func newOrderKey() string {
	return "ok_" + uuid.NewString()
}
