package service

import (
	"context"
	"strings"

	"github.com/ryazanov/inkstudio/internal/models"
)

// MessageRepository is interface for interacting with conversation data
type MessageRepository interface {
	// CreateMessage appends a message to the order conversation
	CreateMessage(ctx context.Context, msg *models.Message) (*models.Message, error)
	// GetMessagesByOrderID returns order conversation, oldest first
	GetMessagesByOrderID(ctx context.Context, orderID uint64) ([]models.Message, error)
}

// MessageService implements order conversations between client and master
type MessageService struct {
	repo   MessageRepository
	orders OrderRepository
	users  UserRepository
}

// NewMessageService creates new MessageService instance
func NewMessageService(repo MessageRepository, orders OrderRepository, users UserRepository) *MessageService {
	return &MessageService{
		repo:   repo,
		orders: orders,
		users:  users,
	}
}

// List returns the conversation of one order visible to the actor
func (ms *MessageService) List(ctx context.Context, actorID, orderID uint64) ([]models.Message, error) {
	if orderID == 0 {
		return nil, models.NewValidationError("order_id", "не указан ID заказа")
	}

	if err := ms.checkAccess(ctx, actorID, orderID); err != nil {
		return nil, err
	}

	return ms.repo.GetMessagesByOrderID(ctx, orderID)
}

// Send appends a message to an order conversation. The first message moves
// a pending order to discussing.
func (ms *MessageService) Send(ctx context.Context, actorID, orderID uint64, text string) (*models.Message, error) {
	if orderID == 0 {
		return nil, models.NewValidationError("order_id", "не указан ID заказа")
	}
	if strings.TrimSpace(text) == "" {
		return nil, models.NewValidationError("message", "не указан текст сообщения")
	}

	actor, err := ms.users.GetUserByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	order, err := ms.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if actor.Role != models.RoleMaster && order.UserID != actor.ID {
		return nil, models.ErrAccessDenied
	}

	msg := models.Message{
		OrderID:    orderID,
		SenderID:   actor.ID,
		SenderName: actor.Name,
		SenderRole: actor.Role,
		Text:       text,
	}

	created, err := ms.repo.CreateMessage(ctx, &msg)
	if err != nil {
		return nil, err
	}

	if order.Status == models.OrderStatusPending {
		order.Status = models.OrderStatusDiscussing
		if _, err := ms.orders.UpdateOrder(ctx, order); err != nil {
			return nil, err
		}
	}

	return created, nil
}

func (ms *MessageService) checkAccess(ctx context.Context, actorID, orderID uint64) error {
	actor, err := ms.users.GetUserByID(ctx, actorID)
	if err != nil {
		return err
	}

	order, err := ms.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}

	if actor.Role != models.RoleMaster && order.UserID != actor.ID {
		return models.ErrAccessDenied
	}

	return nil
}
