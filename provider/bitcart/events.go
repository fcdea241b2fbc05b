package bitcart

import (
	"go.uber.org/zap"

	"github.com/bitcart/checkout"
)

const UPDATE_ORDER_SUBJECT = "checkout_update_order_subject"

// MessageUpdateOrder announces an applied order transition to interested
// store subsystems (mailers, fulfilment, dashboards).
type MessageUpdateOrder struct {
	OrderID       string
	InvoiceID     string
	InvoiceStatus checkout.InvoiceStatus
}

func (p *Provider) publishOrderUpdate(m *MessageUpdateOrder) {
	if p.nc == nil {
		return
	}
	if err := p.nc.Publish(UPDATE_ORDER_SUBJECT, m); err != nil {
		p.l.Warn("Failed publish order update.",
			zap.String("order_id", m.OrderID),
			zap.Error(err),
		)
	}
}
