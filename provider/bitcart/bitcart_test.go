package bitcart

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/bitcart/checkout"
)

type memOrders struct {
	mu     sync.Mutex
	orders map[string]*checkout.Order
	notes  map[string][]string

	stockReduces  map[string]int
	stockRestores map[string]int
}

func newMemOrders() *memOrders {
	return &memOrders{
		orders:        map[string]*checkout.Order{},
		notes:         map[string][]string{},
		stockReduces:  map[string]int{},
		stockRestores: map[string]int{},
	}
}

func (m *memOrders) add(o *checkout.Order) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[o.ID] = o
}

func (m *memOrders) Find(orderID string) (*checkout.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[orderID]
	if !ok {
		return nil, checkout.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (m *memOrders) SetStatus(orderID string, status checkout.OrderStatus, note string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[orderID]
	if !ok {
		return checkout.ErrNotFound
	}
	if o.Status.Match(status) {
		return nil
	}
	o.Status = status
	if note != "" {
		m.notes[orderID] = append(m.notes[orderID], note)
	}
	return nil
}

func (m *memOrders) MarkPaid(orderID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[orderID]
	if !ok {
		return checkout.ErrNotFound
	}
	o.Paid = true
	return nil
}

func (m *memOrders) ReduceStock(orderID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[orderID]
	if !ok {
		return checkout.ErrNotFound
	}
	if o.StockReduced {
		return nil
	}
	o.StockReduced = true
	m.stockReduces[orderID]++
	return nil
}

func (m *memOrders) RestoreStock(orderID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[orderID]
	if !ok {
		return checkout.ErrNotFound
	}
	if !o.StockReduced {
		return nil
	}
	o.StockReduced = false
	m.stockRestores[orderID]++
	return nil
}

type memAnnotations struct {
	mu   sync.Mutex
	data map[string]*checkout.Annotation
}

func newMemAnnotations() *memAnnotations {
	return &memAnnotations{data: map[string]*checkout.Annotation{}}
}

func (m *memAnnotations) Get(orderID string) (*checkout.Annotation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.data[orderID]
	if !ok {
		return nil, checkout.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *memAnnotations) Save(a *checkout.Annotation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *a
	m.data[a.OrderID] = &cp
	return nil
}

// fakeAPI is an in-process invoicing API.
type fakeAPI struct {
	mu          sync.Mutex
	srv         *httptest.Server
	invoices    map[string]*checkout.Invoice
	createCalls int
	nextID      int

	failCreate  bool
	emptyCreate bool
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()
	f := &fakeAPI{invoices: map[string]*checkout.Invoice{}}
	mux := http.NewServeMux()
	mux.HandleFunc("/invoices", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		f.createCalls++
		if f.failCreate {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `{"detail":"internal error"}`)
			return
		}
		if f.emptyCreate {
			return
		}
		var in struct {
			OrderID string `json:"order_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f.nextID++
		inv := &checkout.Invoice{
			ID:      fmt.Sprintf("inv_%03d", f.nextID),
			Status:  checkout.PENDING_I,
			OrderID: in.OrderID,
		}
		f.invoices[inv.ID] = inv
		_ = json.NewEncoder(w).Encode(inv)
	})
	mux.HandleFunc("/invoices/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		id := strings.TrimPrefix(r.URL.Path, "/invoices/")
		inv, ok := f.invoices[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"detail":"Object not found"}`)
			return
		}
		_ = json.NewEncoder(w).Encode(inv)
	})
	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeAPI) setStatus(invoiceID string, status checkout.InvoiceStatus) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invoices[invoiceID].Status = status
}

func (f *fakeAPI) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.createCalls
}

func testConfig(api *fakeAPI) checkout.Config {
	return checkout.Config{
		APIURL:   api.srv.URL,
		StoreID:  "S1",
		AdminURL: "https://pay.example.com",
		StoreURL: "https://store.example.com",
	}
}

func newTestProvider(t *testing.T, api *fakeAPI, orders *memOrders, annotations *memAnnotations) *Provider {
	t.Helper()
	return NewProvider(orders, annotations, testConfig(api), nil)
}

func pendingOrder(id string) *checkout.Order {
	return &checkout.Order{
		ID:            id,
		Total:         50.00,
		Currency:      "USD",
		BuyerEmail:    "buyer@example.com",
		Status:        checkout.PENDING_ORD,
		PaymentMethod: PaymentMethod,
		OrderKey:      "ok_" + id,
	}
}
