package models

import "time"

//pending — заказ создан, мастер ещё не ответил;
//discussing — идёт обсуждение в чате заказа;
//priced — мастер выставил цену;
//paid — клиент выбрал способ оплаты;
//completed — работа выполнена.

// order status
const (
	OrderStatusPending    = "pending"
	OrderStatusDiscussing = "discussing"
	OrderStatusPriced     = "priced"
	OrderStatusPaid       = "paid"
	OrderStatusCompleted  = "completed"
)

// payment method
const (
	PaymentMethodOnline = "online"
	PaymentMethodCash   = "cash"
)

// ServiceTypes is the fixed set of offerings an order can be created with.
var ServiceTypes = []string{
	"Тату в стиле аниме",
	"Эскиз татуировки",
	"Перекрытие старой тату",
	"Консультация",
	"Другое",
}

// Order is order entity
type Order struct {
	ID            uint64    `json:"id"`
	UserID        uint64    `json:"user_id"`
	ClientName    string    `json:"client_name,omitempty"`
	ClientEmail   string    `json:"client_email,omitempty"`
	ServiceType   string    `json:"service_type"`
	Description   string    `json:"description"`
	Status        string    `json:"status"`
	Price         *float64  `json:"price"`
	PaymentMethod *string   `json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// OrderUpdate carries the mutable order fields of a single update request.
// Nil fields are left untouched.
type OrderUpdate struct {
	OrderID       uint64   `json:"order_id"`
	Price         *float64 `json:"price,omitempty"`
	PaymentMethod *string  `json:"payment_method,omitempty"`
	Status        *string  `json:"status,omitempty"`
}

// statusRank orders the lifecycle for monotonicity checks
var statusRank = map[string]int{
	OrderStatusPending:    0,
	OrderStatusDiscussing: 1,
	OrderStatusPriced:     2,
	OrderStatusPaid:       3,
	OrderStatusCompleted:  4,
}

// IsOrderStatus reports whether s is one of the known statuses.
func IsOrderStatus(s string) bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransition reports whether an order may move from one status to another.
// Transitions are monotonic in lifecycle order; staying in place is allowed.
func CanTransition(from, to string) bool {
	f, ok := statusRank[from]
	if !ok {
		return false
	}
	t, ok := statusRank[to]
	if !ok {
		return false
	}
	return t >= f
}

// statusLabels are the display names shown on status badges.
var statusLabels = map[string]string{
	OrderStatusPending:    "Новый",
	OrderStatusDiscussing: "Обсуждение",
	OrderStatusPriced:     "Цена выставлена",
	OrderStatusPaid:       "Оплачен",
	OrderStatusCompleted:  "Завершён",
}

// StatusLabel returns the display label for a status. Unknown statuses
// render as-is instead of failing.
func StatusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}

// IsServiceType reports whether s belongs to the service offering set.
func IsServiceType(s string) bool {
	for _, st := range ServiceTypes {
		if st == s {
			return true
		}
	}
	return false
}

// IsPaymentMethod reports whether m is a supported payment method.
func IsPaymentMethod(m string) bool {
	return m == PaymentMethodOnline || m == PaymentMethodCash
}
