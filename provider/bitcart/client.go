package bitcart

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.opencensus.io/trace"

	"github.com/bitcart/checkout"
)

type client struct {
	httpClient *http.Client
	apiURL     string
}

func newClient(apiURL string, timeout time.Duration, maxRedirects int) *client {
	return &client{
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return errors.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
		apiURL: strings.TrimRight(apiURL, "/"),
	}
}

type createInvoiceRequest struct {
	Price           float64 `json:"price"`
	StoreID         string  `json:"store_id"`
	OrderID         string  `json:"order_id"`
	BuyerEmail      string  `json:"buyer_email"`
	NotificationURL string  `json:"notification_url"`
	RedirectURL     string  `json:"redirect_url"`
}

func (c *client) CreateInvoice(ctx context.Context, in *createInvoiceRequest) (*checkout.Invoice, error) {
	var inv checkout.Invoice
	if err := c.postAndUnmarshalJSON(ctx, c.apiURL+"/invoices", in, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (c *client) GetInvoice(ctx context.Context, invoiceID string) (*checkout.Invoice, error) {
	var inv checkout.Invoice
	if err := c.getAndUnmarshalJSON(ctx, c.apiURL+"/invoices/"+invoiceID, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (c *client) getAndUnmarshalJSON(ctx context.Context, link string, out interface{}) error {
	ctx, span := trace.StartSpan(ctx, "bitcart.GET")
	defer span.End()
	span.AddAttributes(trace.StringAttribute("url", link))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return errors.Wrap(err, "Failed new request")
	}
	req.Header.Set("Accept", "application/json")
	return c.do(req, out)
}

func (c *client) postAndUnmarshalJSON(ctx context.Context, link string, in, out interface{}) error {
	ctx, span := trace.StartSpan(ctx, "bitcart.POST")
	defer span.End()
	span.AddAttributes(trace.StringAttribute("url", link))

	b, err := json.Marshal(in)
	if err != nil {
		return errors.Wrap(err, "Failed marshal")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, link, bytes.NewReader(b))
	if err != nil {
		return errors.Wrap(err, "Failed new request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return c.do(req, out)
}

func (c *client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "Failed do request")
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "Failed read all body")
	}
	if len(b) == 0 {
		return errors.New("empty response")
	}
	if err := json.Unmarshal(b, out); err != nil {
		return errors.Wrap(err, "Failed unmarshal")
	}
	if resp.StatusCode == http.StatusNotFound {
		return errors.New("not_found")
	}
	if resp.StatusCode >= 400 {
		return errors.Errorf("unexpected status code %d", resp.StatusCode)
	}
	return nil
}
