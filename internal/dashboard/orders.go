package dashboard

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/ryazanov/inkstudio/internal/fallback"
	"github.com/ryazanov/inkstudio/internal/models"
	"go.uber.org/zap"
)

// OrderStore is the remote order store seen by the view-model
type OrderStore interface {
	// List returns the orders visible to the caller
	List(ctx context.Context, userID uint64) ([]models.Order, error)
	// Create registers a new order
	Create(ctx context.Context, userID uint64, serviceType, description string) (*models.Order, error)
	// Update sends one order update
	Update(ctx context.Context, userID uint64, upd models.OrderUpdate) (*models.Order, error)
}

// OrderList is the view-model behind the order panel: the orders visible to
// the current actor and the selected order. The remote store stays the
// source of truth; every mutation is followed by a full re-fetch so the
// view never holds a status the server did not compute.
type OrderList struct {
	mu       sync.Mutex
	store    OrderStore
	cache    *fallback.Cache
	session  Session
	logger   *zap.Logger
	conv     *Conversation
	orders   []models.Order
	selected *models.Order
	loading  bool
}

// NewOrderList creates new OrderList instance for one session
func NewOrderList(store OrderStore, cache *fallback.Cache, session Session, logger *zap.Logger) *OrderList {
	return &OrderList{
		store:   store,
		cache:   cache,
		session: session,
		logger:  logger,
		orders:  []models.Order{},
	}
}

// AttachConversation links the conversation view-model so that selecting an
// order loads its message thread.
func (l *OrderList) AttachConversation(conv *Conversation) {
	l.conv = conv
}

// LoadOrders replaces the order list from the remote store. It never fails:
// on a transport error it degrades to the fallback cache, and on a cold
// cache it seeds a single illustrative order so the view is never empty.
func (l *OrderList) LoadOrders(ctx context.Context) []models.Order {
	l.mu.Lock()
	l.loading = true
	l.mu.Unlock()

	orders, err := l.store.List(ctx, l.session.UserID)
	if err != nil {
		l.logger.Warn("order store unreachable, using fallback cache", zap.Error(err))
		orders = l.readFallback()
	} else if l.cache != nil {
		// keep the degraded path as fresh as the last good fetch
		if err := l.cache.Write(orders); err != nil {
			l.logger.Warn("cannot refresh fallback cache", zap.Error(err))
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.orders = orders
	l.loading = false

	return copyOrders(orders)
}

// Orders returns the current order list
func (l *OrderList) Orders() []models.Order {
	l.mu.Lock()
	defer l.mu.Unlock()

	return copyOrders(l.orders)
}

// Loading reports whether a load has not completed yet
func (l *OrderList) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.loading
}

// Selected returns the selected order, nil when nothing is selected
func (l *OrderList) Selected() *models.Order {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.selected == nil {
		return nil
	}
	order := *l.selected

	return &order
}

// Select makes order the current selection and loads its conversation.
// The order itself is not re-fetched.
func (l *OrderList) Select(ctx context.Context, order models.Order) {
	l.mu.Lock()
	selected := order
	l.selected = &selected
	l.mu.Unlock()

	if l.conv != nil {
		l.conv.LoadMessages(ctx, order.ID)
	}
}

// CreateOrder validates the request locally and registers a new order.
// Validation failures are reported without any network call.
func (l *OrderList) CreateOrder(ctx context.Context, serviceType, description string) (*models.Order, error) {
	if !models.IsServiceType(serviceType) {
		return nil, models.NewValidationError("service_type", "не указан тип услуги")
	}
	if strings.TrimSpace(description) == "" {
		return nil, models.NewValidationError("description", "не указано описание")
	}

	order, err := l.store.Create(ctx, l.session.UserID, serviceType, description)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.orders = append(l.orders, *order)
	l.mu.Unlock()

	return order, nil
}

// SetPrice sends the master's price for an order and reconciles the list
// with the server-computed status. Non-positive prices are rejected without
// a network call.
func (l *OrderList) SetPrice(ctx context.Context, orderID uint64, price float64) error {
	if l.session.Role != models.RoleMaster {
		return models.ErrAccessDenied
	}
	if price <= 0 {
		return models.NewValidationError("price", "цена должна быть больше нуля")
	}

	if _, err := l.store.Update(ctx, l.session.UserID, models.OrderUpdate{
		OrderID: orderID,
		Price:   &price,
	}); err != nil {
		return err
	}

	return l.reconcile(ctx, orderID)
}

// SetPaymentMethod sends the client's payment choice, which moves the order
// to paid, and reconciles the list. The method must be known and the order
// must already be priced; both are checked locally first.
func (l *OrderList) SetPaymentMethod(ctx context.Context, orderID uint64, method string) error {
	if !models.IsPaymentMethod(method) {
		return models.NewValidationError("payment_method", "неизвестный способ оплаты")
	}

	if order := l.findOrder(orderID); order != nil && order.Price == nil {
		return models.ErrPriceNotSet
	}

	status := models.OrderStatusPaid
	if _, err := l.store.Update(ctx, l.session.UserID, models.OrderUpdate{
		OrderID:       orderID,
		PaymentMethod: &method,
		Status:        &status,
	}); err != nil {
		return err
	}

	return l.reconcile(ctx, orderID)
}

// reconcile re-fetches the full order list after a mutation and re-selects
// the order the mutation touched. A local patch would be cheaper but could
// diverge from server-computed fields.
func (l *OrderList) reconcile(ctx context.Context, keepID uint64) error {
	orders, err := l.store.List(ctx, l.session.UserID)
	if err != nil {
		return err
	}

	if l.cache != nil {
		if err := l.cache.Write(orders); err != nil {
			l.logger.Warn("cannot refresh fallback cache", zap.Error(err))
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.orders = orders

	if l.selected != nil && l.selected.ID == keepID {
		for i := range orders {
			if orders[i].ID == keepID {
				selected := orders[i]
				l.selected = &selected
				break
			}
		}
	}

	return nil
}

func (l *OrderList) findOrder(id uint64) *models.Order {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.orders {
		if l.orders[i].ID == id {
			order := l.orders[i]
			return &order
		}
	}

	return nil
}

// readFallback serves the degraded path of LoadOrders
func (l *OrderList) readFallback() []models.Order {
	if l.cache != nil {
		cached, err := l.cache.Read()
		if err != nil {
			l.logger.Warn("cannot read fallback cache", zap.Error(err))
		} else if len(cached) > 0 {
			return cached
		}
	}

	return placeholderOrders()
}

// placeholderOrders seeds the view on a cold start with no reachable store
func placeholderOrders() []models.Order {
	return []models.Order{
		{
			ID:          1,
			ServiceType: "Тату в стиле аниме",
			Description: "Хочу татуировку персонажа из Наруто на плече",
			Status:      models.OrderStatusDiscussing,
			CreatedAt:   time.Now(),
		},
	}
}

func copyOrders(orders []models.Order) []models.Order {
	out := make([]models.Order, len(orders))
	copy(out, orders)
	return out
}
