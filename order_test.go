package checkout

import "testing"

func TestAllowedOrderTransition(t *testing.T) {
	tests := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{
			"pending to processing",
			PENDING_ORD,
			PROCESSING_ORD,
			true,
		},
		{
			"pending to cancelled",
			PENDING_ORD,
			CANCELLED_ORD,
			true,
		},
		{
			"pending to completed skips processing",
			PENDING_ORD,
			COMPLETED_ORD,
			false,
		},
		{
			"failed back to processing",
			FAILED_ORD,
			PROCESSING_ORD,
			true,
		},
		{
			"cancelled is terminal",
			CANCELLED_ORD,
			PROCESSING_ORD,
			false,
		},
		{
			"same status is a no-op",
			PROCESSING_ORD,
			PROCESSING_ORD,
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AllowedOrderTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("AllowedOrderTransition(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestInvoiceStatusTerminal(t *testing.T) {
	if PENDING_I.Terminal() || COMPLETE_I.Terminal() {
		t.Error("pending and complete invoices are not terminal")
	}
	if !INVALID_I.Terminal() || !EXPIRED_I.Terminal() {
		t.Error("invalid and expired invoices are terminal")
	}
}
