package bitcart

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bitcart/checkout"
	"github.com/bitcart/checkout/httputils"
)

// NotificationHandler receives invoice status notifications from the
// invoicing system. The response code only acknowledges the delivery, all
// order mutation happens in Reconcile.
func (p *Provider) NotificationHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, ri := httputils.SetRequestInfo(c.Request().Context(), c.Request(), "")
		l := p.l.With(
			zap.String("request_id", ri.RequestID),
			zap.String("real_ip", ri.RealIP),
		)
		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return c.String(http.StatusBadRequest, "failed read body")
		}
		err = p.Reconcile(ctx, body)
		switch {
		case err == nil:
			return c.NoContent(http.StatusOK)
		case errors.Is(err, checkout.ErrBadNotification):
			return c.String(http.StatusBadRequest, "invalid notification")
		case errors.Is(err, checkout.ErrInvoiceMismatch):
			return c.String(http.StatusConflict, "unexpected invoice")
		case errors.Is(err, checkout.ErrNotConfigured):
			l.Error("Notification received while gateway is not configured")
			return c.String(http.StatusInternalServerError, "gateway is not configured")
		default:
			l.Error("Failed process notification", zap.Error(err))
			return c.String(http.StatusInternalServerError, "failed process notification")
		}
	}
}

type checkoutResponse struct {
	Result   string `json:"result"`
	Redirect string `json:"redirect,omitempty"`
	Messages string `json:"messages,omitempty"`
}

// CheckoutHandler starts payment for an order and answers with the
// redirect target, or with a user-facing message when issuing soft-failed.
func (p *Provider) CheckoutHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		orderID := c.Param("order_id")
		res, err := p.Issue(c.Request().Context(), orderID)
		if err != nil {
			if errors.Is(err, checkout.ErrNotFound) {
				return c.JSON(http.StatusNotFound, checkoutResponse{
					Result:   "failure",
					Messages: "order not found",
				})
			}
			p.l.Error("Failed process payment",
				zap.String("order_id", orderID),
				zap.Error(err),
			)
			return c.JSON(http.StatusInternalServerError, checkoutResponse{
				Result:   "failure",
				Messages: "internal error",
			})
		}
		if !res.OK() {
			return c.JSON(http.StatusOK, checkoutResponse{
				Result:   "failure",
				Messages: res.Message,
			})
		}
		return c.JSON(http.StatusOK, checkoutResponse{
			Result:   "success",
			Redirect: res.Redirect,
		})
	}
}
