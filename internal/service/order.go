package service

import (
	"context"
	"strings"

	"github.com/ryazanov/inkstudio/internal/models"
)

// OrderRepository is interface for interacting with order-related data
type OrderRepository interface {
	// CreateOrder inserts new order to database
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	// GetOrderByID returns order by id
	GetOrderByID(ctx context.Context, id uint64) (*models.Order, error)
	// GetOrdersByUserID gets user orders
	GetOrdersByUserID(ctx context.Context, userID uint64) ([]models.Order, error)
	// GetOrders returns all orders
	GetOrders(ctx context.Context) ([]models.Order, error)
	// UpdateOrder writes order status, price and payment method
	UpdateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
}

// UserRepository is interface for interacting with user-related data
type UserRepository interface {
	// CreateUser inserts new user to database
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	// GetUserByEmail returns user by email
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// GetUserByID returns user by id
	GetUserByID(ctx context.Context, id uint64) (*models.User, error)
}

// OrderService implements the order workflow: clients create orders, the
// master prices them, clients choose how to pay. Status transitions are
// applied here, never by the caller.
type OrderService struct {
	repo  OrderRepository
	users UserRepository
}

// NewOrderService creates new OrderService instance
func NewOrderService(repo OrderRepository, users UserRepository) *OrderService {
	return &OrderService{
		repo:  repo,
		users: users,
	}
}

// List returns orders visible to the actor: the master sees every order,
// a client only their own.
func (os *OrderService) List(ctx context.Context, actorID uint64) ([]models.Order, error) {
	actor, err := os.users.GetUserByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if actor.Role == models.RoleMaster {
		return os.repo.GetOrders(ctx)
	}

	return os.repo.GetOrdersByUserID(ctx, actorID)
}

// Create validates and stores a new order with status pending
func (os *OrderService) Create(ctx context.Context, actorID uint64, serviceType, description string) (*models.Order, error) {
	if !models.IsServiceType(serviceType) {
		return nil, models.NewValidationError("service_type", "не указан тип услуги")
	}
	if strings.TrimSpace(description) == "" {
		return nil, models.NewValidationError("description", "не указано описание")
	}

	order := models.Order{
		UserID:      actorID,
		ServiceType: serviceType,
		Description: description,
		Status:      models.OrderStatusPending,
	}

	return os.repo.CreateOrder(ctx, &order)
}

// Update applies one update request to an order. Price is accepted only from
// the master and implies the priced status unless an explicit status is sent.
// A payment method is accepted only once a price is set and implies paid.
// The resulting transition must be monotonic in the lifecycle.
func (os *OrderService) Update(ctx context.Context, actorID uint64, upd models.OrderUpdate) (*models.Order, error) {
	if upd.OrderID == 0 {
		return nil, models.NewValidationError("order_id", "не указан ID заказа")
	}
	if upd.Price == nil && upd.PaymentMethod == nil && upd.Status == nil {
		return nil, models.NewValidationError("order", "нет данных для обновления")
	}

	actor, err := os.users.GetUserByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	order, err := os.repo.GetOrderByID(ctx, upd.OrderID)
	if err != nil {
		return nil, err
	}

	if actor.Role != models.RoleMaster && order.UserID != actor.ID {
		return nil, models.ErrAccessDenied
	}

	next := order.Status

	if upd.Price != nil {
		if actor.Role != models.RoleMaster {
			return nil, models.ErrAccessDenied
		}
		if *upd.Price <= 0 {
			return nil, models.NewValidationError("price", "цена должна быть больше нуля")
		}
		order.Price = upd.Price
		if upd.Status == nil {
			next = models.OrderStatusPriced
		}
	}

	if upd.PaymentMethod != nil {
		if !models.IsPaymentMethod(*upd.PaymentMethod) {
			return nil, models.NewValidationError("payment_method", "неизвестный способ оплаты")
		}
		if order.Price == nil {
			return nil, models.ErrPriceNotSet
		}
		order.PaymentMethod = upd.PaymentMethod
		if upd.Status == nil {
			next = models.OrderStatusPaid
		}
	}

	if upd.Status != nil {
		if !models.IsOrderStatus(*upd.Status) {
			return nil, models.NewValidationError("status", "неизвестный статус")
		}
		next = *upd.Status
	}

	if !models.CanTransition(order.Status, next) {
		return nil, models.ErrInvalidTransition
	}
	order.Status = next

	return os.repo.UpdateOrder(ctx, order)
}
