package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/ryazanov/inkstudio/internal/models"
	"github.com/ryazanov/inkstudio/internal/repository/postgres"
)

const (
	insertOrderQuery = `
						INSERT INTO orders (user_id, service_type, description, status)
						VALUES ($1, $2, $3, $4)
						RETURNING id, user_id, service_type, description, status, price, payment_method, created_at, updated_at
`
	selectOrderByIDQuery = `
						SELECT o.id, o.user_id, u.name, u.email, o.service_type, o.description, o.status, o.price, o.payment_method, o.created_at, o.updated_at
						FROM orders o
						JOIN users u ON o.user_id = u.id
						WHERE o.id = $1
`
	selectOrdersByUserIDQuery = `
						SELECT o.id, o.user_id, u.name, u.email, o.service_type, o.description, o.status, o.price, o.payment_method, o.created_at, o.updated_at
						FROM orders o
						JOIN users u ON o.user_id = u.id
						WHERE o.user_id = $1
						ORDER BY o.created_at DESC
`
	selectOrdersQuery = `
						SELECT o.id, o.user_id, u.name, u.email, o.service_type, o.description, o.status, o.price, o.payment_method, o.created_at, o.updated_at
						FROM orders o
						JOIN users u ON o.user_id = u.id
						ORDER BY o.created_at DESC
`
	updateOrderQuery = `
						UPDATE orders
						SET status = $1, price = $2, payment_method = $3, updated_at = now()
						WHERE id = $4
						RETURNING id, user_id, service_type, description, status, price, payment_method, created_at, updated_at
`
)

// OrderRepository implements OrderRepository interface
type OrderRepository struct {
	db *postgres.DB
}

// NewOrderRepository creates new OrderRepository instance
func NewOrderRepository(db *postgres.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateOrder inserts new order to database
func (or *OrderRepository) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	err := or.db.QueryRow(ctx, insertOrderQuery, order.UserID, order.ServiceType, order.Description, order.Status).
		Scan(&order.ID, &order.UserID, &order.ServiceType, &order.Description, &order.Status, &order.Price, &order.PaymentMethod, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		if errCode := or.db.ErrorCode(err); errCode == pgErrUniqueViolationCode {
			return nil, models.ErrConflictData
		}
		return nil, err
	}

	return order, nil
}

// GetOrderByID returns order by id with denormalized client fields
func (or *OrderRepository) GetOrderByID(ctx context.Context, id uint64) (*models.Order, error) {
	order := models.Order{}
	err := or.db.QueryRow(ctx, selectOrderByIDQuery, id).
		Scan(&order.ID, &order.UserID, &order.ClientName, &order.ClientEmail, &order.ServiceType, &order.Description, &order.Status, &order.Price, &order.PaymentMethod, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return &order, nil
}

// GetOrdersByUserID gets user orders, newest first
func (or *OrderRepository) GetOrdersByUserID(ctx context.Context, userID uint64) ([]models.Order, error) {
	rows, err := or.db.Query(ctx, selectOrdersByUserIDQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}

// GetOrders returns all orders, newest first
func (or *OrderRepository) GetOrders(ctx context.Context) ([]models.Order, error) {
	rows, err := or.db.Query(ctx, selectOrdersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}

// UpdateOrder writes order status, price and payment method
func (or *OrderRepository) UpdateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	err := or.db.QueryRow(ctx, updateOrderQuery, order.Status, order.Price, order.PaymentMethod, order.ID).
		Scan(&order.ID, &order.UserID, &order.ServiceType, &order.Description, &order.Status, &order.Price, &order.PaymentMethod, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return order, nil
}

func scanOrders(rows pgx.Rows) ([]models.Order, error) {
	orders := []models.Order{}

	for rows.Next() {
		order := models.Order{}
		err := rows.Scan(&order.ID, &order.UserID, &order.ClientName, &order.ClientEmail, &order.ServiceType, &order.Description, &order.Status, &order.Price, &order.PaymentMethod, &order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			continue
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
