package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{name: "pending_to_discussing", from: OrderStatusPending, to: OrderStatusDiscussing, want: true},
		{name: "discussing_to_priced", from: OrderStatusDiscussing, to: OrderStatusPriced, want: true},
		{name: "priced_to_paid", from: OrderStatusPriced, to: OrderStatusPaid, want: true},
		{name: "paid_to_completed", from: OrderStatusPaid, to: OrderStatusCompleted, want: true},
		{name: "pending_to_priced_skips_discussing", from: OrderStatusPending, to: OrderStatusPriced, want: true},
		{name: "same_status_is_allowed", from: OrderStatusPaid, to: OrderStatusPaid, want: true},
		{name: "paid_back_to_priced", from: OrderStatusPaid, to: OrderStatusPriced, want: false},
		{name: "completed_back_to_pending", from: OrderStatusCompleted, to: OrderStatusPending, want: false},
		{name: "unknown_from", from: "draft", to: OrderStatusPending, want: false},
		{name: "unknown_to", from: OrderStatusPending, to: "draft", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Новый", StatusLabel(OrderStatusPending))
	assert.Equal(t, "Оплачен", StatusLabel(OrderStatusPaid))

	// unknown statuses render as-is instead of failing
	assert.Equal(t, "archived", StatusLabel("archived"))
}

func TestIsServiceType(t *testing.T) {
	assert.True(t, IsServiceType("Консультация"))
	assert.True(t, IsServiceType("Другое"))
	assert.False(t, IsServiceType(""))
	assert.False(t, IsServiceType("Маникюр"))
}

func TestIsPaymentMethod(t *testing.T) {
	assert.True(t, IsPaymentMethod(PaymentMethodOnline))
	assert.True(t, IsPaymentMethod(PaymentMethodCash))
	assert.False(t, IsPaymentMethod(""))
	assert.False(t, IsPaymentMethod("card"))
}
