package bitcart

import (
	"strings"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/bitcart/checkout"
	"github.com/bitcart/checkout/provider"
)

const (
	BITCART = provider.BITCART

	// PaymentMethod is the gateway identifier on store orders. A
	// notification for an order paying through anything else is ignored.
	PaymentMethod = "bitcart"

	// WebhookPath is the store-side notification endpoint.
	WebhookPath = "/webhook/bitcart"

	orderReceivedPath = "order-received"
)

func NewProvider(
	orders checkout.OrderStore,
	annotations checkout.AnnotationStore,
	cfg checkout.Config,
	nc *nats.EncodedConn,
) *Provider {
	return &Provider{
		cfg:         cfg,
		orders:      orders,
		annotations: annotations,
		nc:          nc,
		api:         newClient(cfg.APIURL, cfg.Timeout(), cfg.RedirectBound()),
		resolveOrderID: func(id string) string {
			return id
		},
		l: zap.L().Named("bitcart_provider"),
	}
}

type Provider struct {
	cfg         checkout.Config
	orders      checkout.OrderStore
	annotations checkout.AnnotationStore
	nc          *nats.EncodedConn
	api         *client

	// resolveOrderID remaps the order id echoed by the invoicing system
	// onto the local one, identity unless the store numbers orders
	// differently.
	resolveOrderID func(string) string

	l *zap.Logger
}

// SetOrderIDResolver installs a remapping for stores with an alternate
// order numbering scheme.
func (p *Provider) SetOrderIDResolver(f func(string) string) {
	if f != nil {
		p.resolveOrderID = f
	}
}

// InvoiceURL is where the shopper pays the invoice, served by the admin
// panel.
func (p *Provider) InvoiceURL(invoiceID string) string {
	return strings.TrimRight(p.cfg.AdminURL, "/") + "/i/" + invoiceID
}

func (p *Provider) notificationURL() string {
	if p.cfg.NotificationURL != "" {
		return p.cfg.NotificationURL
	}
	return strings.TrimRight(p.cfg.StoreURL, "/") + WebhookPath
}

// returnURL is the canonical "order received" page for the order.
func (p *Provider) returnURL(ord *checkout.Order) string {
	return strings.TrimRight(p.cfg.StoreURL, "/") +
		"/checkout/" + orderReceivedPath + "/" + ord.ID + "/?key=" + ord.OrderKey
}
