package models

import "time"

// Message is one entry of an order conversation. Messages are append-only,
// ordered by creation time.
type Message struct {
	ID         uint64    `json:"id"`
	OrderID    uint64    `json:"order_id"`
	SenderID   uint64    `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	SenderRole string    `json:"sender_role"`
	Text       string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}
