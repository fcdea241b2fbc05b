package provider

import (
	"time"

	"github.com/pkg/errors"
	"gopkg.in/reform.v1"

	"github.com/bitcart/checkout"
)

// Store keeps per-order gateway annotations: which invoice was issued for
// the order and where the shopper pays it. One row per order.
type Store struct {
	DB *reform.DB
}

var _ checkout.AnnotationStore = (*Store)(nil)

func (s *Store) Get(orderID string) (*checkout.Annotation, error) {
	a := &OrderAnnotation{OrderID: orderID}
	err := s.DB.Reload(a)
	if err != nil {
		if err == reform.ErrNoRows {
			return nil, checkout.ErrNotFound
		}
		return nil, errors.Wrap(err, "Failed get order annotation")
	}
	return &checkout.Annotation{
		OrderID:     a.OrderID,
		InvoiceID:   a.InvoiceID,
		RedirectURL: a.RedirectURL,
	}, nil
}

// Save inserts the annotation or, when the order already has one, replaces
// the invoice reference. A replace only happens on re-issue after the
// previous invoice went terminal, the caller checks that first.
func (s *Store) Save(in *checkout.Annotation) error {
	a := &OrderAnnotation{OrderID: in.OrderID}
	err := s.DB.Reload(a)
	switch err {
	case reform.ErrNoRows:
		a.InvoiceID = in.InvoiceID
		a.RedirectURL = in.RedirectURL
		return errors.Wrap(s.DB.Insert(a), "Failed insert order annotation")
	case nil:
		a.InvoiceID = in.InvoiceID
		a.RedirectURL = in.RedirectURL
		return errors.Wrap(s.DB.Save(a), "Failed save order annotation")
	default:
		return errors.Wrap(err, "Failed reload order annotation")
	}
}

//go:generate reform

//reform:checkout.order_annotations
type OrderAnnotation struct {
	OrderID     string    `reform:"order_id,pk"`
	InvoiceID   string    `reform:"invoice_id"`
	RedirectURL string    `reform:"redirect_url"`
	CreatedAt   time.Time `reform:"created_at"`
	UpdatedAt   time.Time `reform:"updated_at"`
}

func (a *OrderAnnotation) BeforeInsert() error {
	a.UpdatedAt = time.Now()
	a.CreatedAt = time.Now()
	return nil
}

func (a *OrderAnnotation) BeforeUpdate() error {
	a.UpdatedAt = time.Now()
	return nil
}
