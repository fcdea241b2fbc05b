package bitcart

import "github.com/prometheus/client_golang/prometheus"

var (
	issuedInvoices = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "checkout_bitcart_invoices_issued_total",
		Help: "Invoices created through the Bitcart gateway.",
	})

	notifications = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_bitcart_notifications_total",
		Help: "Invoice notifications by processing outcome.",
	}, []string{"outcome"})
)

func init() {
	prometheus.MustRegister(issuedInvoices, notifications)
}
