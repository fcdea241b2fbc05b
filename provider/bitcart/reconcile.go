package bitcart

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bitcart/checkout"
)

type notification struct {
	ID     string                 `json:"id"`
	Status checkout.InvoiceStatus `json:"status"`
}

const (
	notePaymentComplete = "Bitcart invoice payment completed. Payment credited to your merchant account."
	notePaymentInvalid  = "Cryptocurrency payment is invalid for this order! The payment was not confirmed by the network in time. Do not ship the product for this order!"
	notePaymentExpired  = "Cryptocurrency payment has expired for this order! The payment was not broadcast before its expiration. Do not ship the product for this order!"
)

// Reconcile processes one notification delivery. The payload is untrusted:
// the invoice it names is refetched from the invoicing API and the order is
// transitioned off the authoritative status only. Deliveries may be
// duplicated or arrive out of order, applying the same transition again is
// a no-op all the way down.
func (p *Provider) Reconcile(ctx context.Context, raw []byte) error {
	l := p.l.Named("notification")

	if len(raw) == 0 {
		l.Warn("Empty notification payload")
		notifications.WithLabelValues("rejected").Inc()
		return errors.Wrap(checkout.ErrBadNotification, "empty payload")
	}
	var n notification
	if err := json.Unmarshal(raw, &n); err != nil {
		l.Warn("Invalid JSON payload in notification", zap.Error(err))
		notifications.WithLabelValues("rejected").Inc()
		return errors.Wrap(checkout.ErrBadNotification, "invalid JSON payload")
	}
	if n.ID == "" {
		notifications.WithLabelValues("rejected").Inc()
		return errors.Wrap(checkout.ErrBadNotification, "no invoice id in payload")
	}
	if n.Status == "" {
		notifications.WithLabelValues("rejected").Inc()
		return errors.Wrap(checkout.ErrBadNotification, "no invoice status in payload")
	}
	if err := p.cfg.Validate(); err != nil {
		return err
	}

	// The payload status is not trusted until corroborated by the
	// invoicing API.
	inv, err := p.api.GetInvoice(ctx, n.ID)
	if err != nil || inv.ID == "" {
		l.Warn("Failed fetch invoice reported by notification",
			zap.String("invoice_id", n.ID),
			zap.Error(err),
		)
		notifications.WithLabelValues("rejected").Inc()
		return errors.Wrap(checkout.ErrBadNotification, "invoice check did not pass")
	}
	if inv.OrderID == "" {
		return errors.Errorf("invoice %s carries no order id", inv.ID)
	}

	orderID := p.resolveOrderID(inv.OrderID)
	ord, err := p.orders.Find(orderID)
	if err != nil {
		return errors.Wrapf(err, "Failed find order %s for invoice %s", orderID, inv.ID)
	}
	if ord.PaymentMethod != PaymentMethod {
		l.Info("Order does not pay through this gateway, ignoring notification",
			zap.String("order_id", orderID),
			zap.String("payment_method", ord.PaymentMethod),
		)
		notifications.WithLabelValues("ignored").Inc()
		return nil
	}

	a, err := p.annotations.Get(orderID)
	if err != nil {
		if errors.Is(err, checkout.ErrNotFound) {
			l.Info("No invoice was issued for order, ignoring notification",
				zap.String("order_id", orderID),
			)
			notifications.WithLabelValues("ignored").Inc()
			return nil
		}
		return errors.Wrapf(err, "Failed get annotation for order %s", orderID)
	}
	if a.InvoiceID == "" {
		l.Info("No invoice was issued for order, ignoring notification",
			zap.String("order_id", orderID),
		)
		notifications.WithLabelValues("ignored").Inc()
		return nil
	}
	if a.InvoiceID != inv.ID {
		l.Error("Notification invoice does not match the one issued for order",
			zap.String("order_id", orderID),
			zap.String("got_invoice_id", inv.ID),
			zap.String("expected_invoice_id", a.InvoiceID),
		)
		notifications.WithLabelValues("mismatch").Inc()
		return errors.Wrapf(checkout.ErrInvoiceMismatch,
			"got invoice %s while expected invoice is %s for order %s", inv.ID, a.InvoiceID, orderID)
	}

	if ord.Status == "" {
		return errors.Errorf("order %s carries no status", orderID)
	}
	if inv.Status == "" {
		return errors.Errorf("invoice %s carries no status", inv.ID)
	}

	applied, err := p.transition(ord, inv)
	if err != nil {
		return err
	}
	if applied {
		p.publishOrderUpdate(&MessageUpdateOrder{
			OrderID:       orderID,
			InvoiceID:     inv.ID,
			InvoiceStatus: inv.Status,
		})
	}
	return nil
}

// transition applies the order action for the invoice status. Every branch
// is a function of the authoritative status alone and every store operation
// is a target-state no-op, so a redelivery re-applies harmlessly.
func (p *Provider) transition(ord *checkout.Order, inv *checkout.Invoice) (bool, error) {
	l := p.l.Named("notification")
	switch inv.Status {
	case checkout.COMPLETE_I:
		if err := p.orders.MarkPaid(ord.ID); err != nil {
			return false, errors.Wrapf(err, "Failed mark order %s paid", ord.ID)
		}
		if err := p.orders.SetStatus(ord.ID, checkout.PROCESSING_ORD, notePaymentComplete); err != nil {
			return false, errors.Wrapf(err, "Failed set order %s processing", ord.ID)
		}
		notifications.WithLabelValues("complete").Inc()
	case checkout.INVALID_I:
		if err := p.orders.SetStatus(ord.ID, checkout.FAILED_ORD, notePaymentInvalid); err != nil {
			return false, errors.Wrapf(err, "Failed set order %s failed", ord.ID)
		}
		notifications.WithLabelValues("invalid").Inc()
	case checkout.EXPIRED_I:
		if err := p.orders.SetStatus(ord.ID, checkout.CANCELLED_ORD, notePaymentExpired); err != nil {
			return false, errors.Wrapf(err, "Failed set order %s cancelled", ord.ID)
		}
		if err := p.orders.RestoreStock(ord.ID); err != nil {
			return false, errors.Wrapf(err, "Failed restore stock for order %s", ord.ID)
		}
		notifications.WithLabelValues("expired").Inc()
	default:
		l.Warn("Unhandled invoice status in notification",
			zap.String("order_id", ord.ID),
			zap.String("invoice_id", inv.ID),
			zap.String("status", string(inv.Status)),
		)
		notifications.WithLabelValues("unhandled").Inc()
		return false, nil
	}
	return true, nil
}
