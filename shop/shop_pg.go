package shop

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/reform.v1"

	"github.com/bitcart/checkout"
)

func NewShopPG(db *reform.DB) *ShopPG {
	return &ShopPG{
		db: db,
		l:  zap.L().Named("shop_pg"),
	}
}

// ShopPG is the Postgres order store. All mutating operations are no-ops
// when the order is already in the target state, notifications may be
// redelivered and every transition must survive a replay.
type ShopPG struct {
	db *reform.DB
	l  *zap.Logger
}

var _ checkout.OrderStore = (*ShopPG)(nil)

func (s *ShopPG) CreateOrder(total float64, currency, buyerEmail, paymentMethod string) (*checkout.Order, error) {
	o := NewOrder(total, currency, buyerEmail, paymentMethod)
	if err := s.db.Insert(o); err != nil {
		return nil, errors.Wrap(err, "Failed insert order")
	}
	return container(o), nil
}

func (s *ShopPG) Find(orderID string) (*checkout.Order, error) {
	o, err := s.reload(orderID)
	if err != nil {
		return nil, err
	}
	return container(o), nil
}

func (s *ShopPG) SetStatus(orderID string, status checkout.OrderStatus, note string) error {
	o, err := s.reload(orderID)
	if err != nil {
		return err
	}
	if o.Status.Match(status) {
		return nil
	}
	if !checkout.AllowedOrderTransition(o.Status, status) {
		return errors.Errorf("order status transition not allowed: %s -> %s", o.Status, status)
	}
	o.Status = status
	if err := s.db.Save(o); err != nil {
		return errors.Wrap(err, "Failed save order status")
	}
	if note == "" {
		return nil
	}
	if err := s.db.Insert(&OrderNote{OrderID: orderID, Note: note}); err != nil {
		s.l.Warn(
			"Failed insert order note",
			zap.String("order_id", orderID),
			zap.Error(err),
		)
	}
	return nil
}

func (s *ShopPG) MarkPaid(orderID string) error {
	o, err := s.reload(orderID)
	if err != nil {
		return err
	}
	if o.Paid {
		return nil
	}
	o.Paid = true
	return errors.Wrap(s.db.Save(o), "Failed save order paid flag")
}

func (s *ShopPG) ReduceStock(orderID string) error {
	return s.moveStock(orderID, true)
}

func (s *ShopPG) RestoreStock(orderID string) error {
	return s.moveStock(orderID, false)
}

// moveStock adjusts product stock for the order line items. The
// stock_reduced flag on the order row guards against applying the same
// movement twice, the flag and the adjustment commit together.
func (s *ShopPG) moveStock(orderID string, reduce bool) error {
	tx, err := s.db.Begin()
	if err != nil {
		return errors.Wrap(err, "Failed begin transaction DB")
	}
	defer func() {
		if err != nil {
			if errTx := tx.Rollback(); errTx != nil {
				s.l.Error("Failed tx rollback.", zap.Error(errTx))
			}
		}
	}()
	o := &Order{OrderID: orderID}
	if err = tx.Reload(o); err != nil {
		if err == reform.ErrNoRows {
			return checkout.ErrNotFound
		}
		return errors.Wrap(err, "Failed reload order")
	}
	if o.StockReduced == reduce {
		_ = tx.Rollback()
		return nil
	}
	sign := "-"
	if !reduce {
		sign = "+"
	}
	_, err = tx.Exec(
		`UPDATE shop.products p SET stock = p.stock `+sign+` i.qty
			FROM shop.order_items i
			WHERE i.product_id = p.product_id AND i.order_id = $1`,
		orderID,
	)
	if err != nil {
		return errors.Wrap(err, "Failed adjust product stock")
	}
	o.StockReduced = reduce
	if err = tx.Save(o); err != nil {
		return errors.Wrap(err, "Failed save order stock flag")
	}
	return tx.Commit()
}

func (s *ShopPG) reload(orderID string) (*Order, error) {
	o := &Order{OrderID: orderID}
	if err := s.db.Reload(o); err != nil {
		if err == reform.ErrNoRows {
			return nil, checkout.ErrNotFound
		}
		return nil, errors.Wrap(err, "Failed reload order")
	}
	return o, nil
}

func container(o *Order) *checkout.Order {
	return &checkout.Order{
		ID:            o.OrderID,
		Total:         o.Total,
		Currency:      o.Currency,
		BuyerEmail:    o.BuyerEmail,
		Status:        o.Status,
		PaymentMethod: o.PaymentMethod,
		OrderKey:      o.OrderKey,
		Paid:          o.Paid,
		StockReduced:  o.StockReduced,
	}
}
