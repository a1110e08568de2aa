package repository

import (
	"context"

	"github.com/ryazanov/inkstudio/internal/models"
	"github.com/ryazanov/inkstudio/internal/repository/postgres"
)

const (
	insertMessageQuery = `
						INSERT INTO order_messages (order_id, sender_id, message)
						VALUES ($1, $2, $3)
						RETURNING id, created_at
`
	selectMessagesByOrderIDQuery = `
						SELECT m.id, m.order_id, m.sender_id, u.name, u.role, m.message, m.created_at
						FROM order_messages m
						JOIN users u ON m.sender_id = u.id
						WHERE m.order_id = $1
						ORDER BY m.created_at ASC
`
)

// MessageRepository implements MessageRepository interface
type MessageRepository struct {
	db *postgres.DB
}

// NewMessageRepository creates new MessageRepository instance
func NewMessageRepository(db *postgres.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// CreateMessage appends a message to the order conversation
func (mr *MessageRepository) CreateMessage(ctx context.Context, msg *models.Message) (*models.Message, error) {
	err := mr.db.QueryRow(ctx, insertMessageQuery, msg.OrderID, msg.SenderID, msg.Text).
		Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		return nil, err
	}

	return msg, nil
}

// GetMessagesByOrderID returns order conversation, oldest first
func (mr *MessageRepository) GetMessagesByOrderID(ctx context.Context, orderID uint64) ([]models.Message, error) {
	rows, err := mr.db.Query(ctx, selectMessagesByOrderIDQuery, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []models.Message{}

	for rows.Next() {
		msg := models.Message{}
		err = rows.Scan(&msg.ID, &msg.OrderID, &msg.SenderID, &msg.SenderName, &msg.SenderRole, &msg.Text, &msg.CreatedAt)
		if err != nil {
			continue
		}
		messages = append(messages, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}
