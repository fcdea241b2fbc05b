package bitcart

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitcart/checkout"
)

func serveNotification(t *testing.T, p *Provider, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, WebhookPath, strings.NewReader(body))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = p.NotificationHandler()(c)
	return rec
}

func TestNotificationHandlerStatusCodes(t *testing.T) {
	api := newFakeAPI(t)
	orders := newMemOrders()
	annotations := newMemAnnotations()
	orders.add(pendingOrder("1001"))
	p := newTestProvider(t, api, orders, annotations)

	invID := issueFor(t, p, annotations, "1001")
	api.setStatus(invID, checkout.COMPLETE_I)

	rec := serveNotification(t, p, `{"id":"`+invID+`","status":"complete"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serveNotification(t, p, ``)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serveNotification(t, p, `{"status":"complete"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	api.mu.Lock()
	api.invoices["inv_999"] = &checkout.Invoice{ID: "inv_999", Status: checkout.COMPLETE_I, OrderID: "1001"}
	api.mu.Unlock()
	rec = serveNotification(t, p, `{"id":"inv_999","status":"complete"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCheckoutHandler(t *testing.T) {
	api := newFakeAPI(t)
	orders := newMemOrders()
	orders.add(pendingOrder("1001"))
	p := newTestProvider(t, api, orders, newMemAnnotations())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/checkout/1001", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/checkout/:order_id")
	c.SetParamNames("order_id")
	c.SetParamValues("1001")
	require.NoError(t, p.CheckoutHandler()(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp checkoutResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Result)
	assert.Equal(t, "https://pay.example.com/i/inv_001", resp.Redirect)
}

func TestCheckoutHandlerSoftFailure(t *testing.T) {
	api := newFakeAPI(t)
	api.failCreate = true
	orders := newMemOrders()
	orders.add(pendingOrder("1001"))
	p := newTestProvider(t, api, orders, newMemAnnotations())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/checkout/1001", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/checkout/:order_id")
	c.SetParamNames("order_id")
	c.SetParamValues("1001")
	require.NoError(t, p.CheckoutHandler()(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp checkoutResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "failure", resp.Result)
	assert.Equal(t, CheckoutUnavailableMsg, resp.Messages)
}
