package bitcart

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitcart/checkout"
)

func TestClientGetInvoice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/invoices/inv_abc", r.URL.Path)
		w.Write([]byte(`{"id":"inv_abc","status":"complete","order_id":"1001"}`))
	}))
	defer srv.Close()

	c := newClient(srv.URL, time.Second, 3)
	inv, err := c.GetInvoice(context.Background(), "inv_abc")
	require.NoError(t, err)
	assert.Equal(t, "inv_abc", inv.ID)
	assert.Equal(t, checkout.COMPLETE_I, inv.Status)
	assert.Equal(t, "1001", inv.OrderID)
}

func TestClientEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	c := newClient(srv.URL, time.Second, 3)
	_, err := c.GetInvoice(context.Background(), "inv_abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}

func TestClientNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Object not found"}`))
	}))
	defer srv.Close()

	c := newClient(srv.URL, time.Second, 3)
	_, err := c.GetInvoice(context.Background(), "inv_abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not_found")
}

func TestClientBoundedRedirects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, r.URL.String(), http.StatusFound)
	}))
	defer srv.Close()

	c := newClient(srv.URL, time.Second, 3)
	_, err := c.GetInvoice(context.Background(), "inv_abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redirects")
}

func TestClientTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := newClient(srv.URL, 20*time.Millisecond, 3)
	_, err := c.GetInvoice(context.Background(), "inv_abc")
	require.Error(t, err)
}
