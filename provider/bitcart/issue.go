package bitcart

import (
	"context"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bitcart/checkout"
)

// CheckoutUnavailableMsg is shown to the shopper when invoice creation
// fails for a transport-level reason. Checkout degrades gracefully, the
// failure never reaches the shopper as a fault.
const CheckoutUnavailableMsg = "Sorry, but checkout with Bitcart does not appear to be working."

// Issue creates an invoice for the order and returns where to send the
// shopper. At most one live invoice exists per order: a repeated call
// returns the redirect recorded on the first one, unless that invoice went
// terminal, in which case a fresh invoice replaces it.
func (p *Provider) Issue(ctx context.Context, orderID string) (*checkout.RedirectResult, error) {
	if orderID == "" {
		return nil, errors.New("missing order id")
	}
	if err := p.cfg.Validate(); err != nil {
		return nil, err
	}

	ord, err := p.orders.Find(orderID)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed find order %s", orderID)
	}

	if redirect := p.existingRedirect(ctx, orderID); redirect != "" {
		p.l.Info("Invoice already issued for order, reusing redirect",
			zap.String("order_id", orderID),
		)
		return checkout.Redirect(redirect), nil
	}

	inv, err := p.api.CreateInvoice(ctx, &createInvoiceRequest{
		Price:           ord.Total,
		StoreID:         p.cfg.StoreID,
		OrderID:         ord.ID,
		BuyerEmail:      ord.BuyerEmail,
		NotificationURL: p.notificationURL(),
		RedirectURL:     p.redirectURL(ord),
	})
	if err != nil || inv.ID == "" {
		p.l.Warn("Failed create invoice",
			zap.String("order_id", orderID),
			zap.Error(err),
		)
		return checkout.SoftFailure(CheckoutUnavailableMsg), nil
	}

	// Another checkout request for the same order may have won the race
	// while the API call was in flight. Keep the invoice recorded first,
	// the duplicate stays unpaid on the invoicing side.
	if redirect := p.existingRedirect(ctx, orderID); redirect != "" {
		p.l.Info("Concurrent invoice detected, reusing its redirect",
			zap.String("order_id", orderID),
			zap.String("discarded_invoice_id", inv.ID),
		)
		return checkout.Redirect(redirect), nil
	}

	invoiceURL := p.InvoiceURL(inv.ID)
	if err := p.annotations.Save(&checkout.Annotation{
		OrderID:     orderID,
		InvoiceID:   inv.ID,
		RedirectURL: invoiceURL,
	}); err != nil {
		return nil, errors.Wrapf(err, "Failed save annotation for order %s", orderID)
	}
	if err := p.orders.ReduceStock(orderID); err != nil {
		return nil, errors.Wrapf(err, "Failed reduce stock for order %s", orderID)
	}

	issuedInvoices.Inc()
	p.l.Info("Invoice assigned to order",
		zap.String("order_id", orderID),
		zap.String("invoice_id", inv.ID),
	)
	return checkout.Redirect(invoiceURL), nil
}

// existingRedirect returns the recorded redirect when the order already has
// a live invoice. A stale annotation, one pointing at an invalid or expired
// invoice, yields nothing and the caller issues anew.
func (p *Provider) existingRedirect(ctx context.Context, orderID string) string {
	a, err := p.annotations.Get(orderID)
	if err != nil {
		if !errors.Is(err, checkout.ErrNotFound) {
			p.l.Warn("Failed get order annotation",
				zap.String("order_id", orderID),
				zap.Error(err),
			)
		}
		return ""
	}
	if a.RedirectURL == "" {
		return ""
	}
	inv, err := p.api.GetInvoice(ctx, a.InvoiceID)
	if err != nil || inv.ID == "" {
		return ""
	}
	if inv.Status.Terminal() {
		return ""
	}
	return a.RedirectURL
}

// redirectURL is the post-payment return destination passed to the
// invoicing API. A configured override that is not the canonical received
// page gets the order id and signed key appended so the page can locate
// the order.
func (p *Provider) redirectURL(ord *checkout.Order) string {
	thanksLink := p.returnURL(ord)
	redirect := p.cfg.RedirectURL
	if redirect == "" || redirect == thanksLink {
		return thanksLink
	}
	if strings.HasSuffix(redirect, orderReceivedPath) {
		redirect += "=" + ord.ID
	} else {
		redirect = addQueryArg(redirect, orderReceivedPath, ord.ID)
	}
	return addQueryArg(redirect, "key", ord.OrderKey)
}

func addQueryArg(link, key, value string) string {
	u, err := url.Parse(link)
	if err != nil {
		return link
	}
	q := u.Query()
	q.Set(key, value)
	u.RawQuery = q.Encode()
	return u.String()
}
