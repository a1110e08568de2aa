package models

import "time"

// booking status
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Service is a bookable studio service
type Service struct {
	ID       uint64  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"`
}

// Booking is a session appointment for one service
type Booking struct {
	ID          uint64    `json:"id"`
	UserID      uint64    `json:"user_id"`
	ServiceID   uint64    `json:"service_id"`
	ServiceName string    `json:"service_name,omitempty"`
	BookingDate time.Time `json:"booking_date"`
	Notes       string    `json:"notes"`
	Status      string    `json:"status"`
	ClientName  string    `json:"client_name,omitempty"`
	ClientEmail string    `json:"client_email,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// IsBookingStatus reports whether s is one of the known booking statuses.
func IsBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}
