package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ryazanov/inkstudio/internal/middleware"
	"github.com/ryazanov/inkstudio/internal/models"
)

type OrderService interface {
	// List returns orders visible to the actor
	List(ctx context.Context, actorID uint64) ([]models.Order, error)
	// Create validates and stores a new order
	Create(ctx context.Context, actorID uint64, serviceType, description string) (*models.Order, error)
	// Update applies one update request to an order
	Update(ctx context.Context, actorID uint64, upd models.OrderUpdate) (*models.Order, error)
}

// OrderHandler represents HTTP handler for order-related requests
type OrderHandler struct {
	svc OrderService
}

// NewOrderHandler creates new OrderHandler instance
func NewOrderHandler(svc OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// ListOrders returns orders visible to the caller
// 200 — успешная обработка запроса;
// 401 — пользователь не авторизован;
// 500 — внутренняя ошибка сервера.
func (oh *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "authorization required", http.StatusUnauthorized)
			return
		}

		orders, err := oh.svc.List(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrDataNotFound):
				http.Error(w, "user not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(orders); err != nil {
			return
		}
	}
}

type createOrderRequest struct {
	ServiceType string `json:"service_type"`
	Description string `json:"description"`
}

// CreateOrder creates a new order with status pending
// 201 — заказ создан;
// 400 — неверный формат запроса;
// 401 — пользователь не авторизован;
// 500 — внутренняя ошибка сервера.
func (oh *OrderHandler) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "authorization required", http.StatusUnauthorized)
			return
		}

		var req createOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		order, err := oh.svc.Create(r.Context(), userID, req.ServiceType, req.Description)
		if err != nil {
			switch {
			case models.IsValidationError(err):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(order); err != nil {
			return
		}
	}
}

// UpdateOrder applies price, payment method or status updates to an order
// 200 — заказ обновлён;
// 400 — неверный формат запроса;
// 401 — пользователь не авторизован;
// 403 — доступ запрещён;
// 404 — заказ не найден;
// 409 — недопустимый переход статуса;
// 500 — внутренняя ошибка сервера.
func (oh *OrderHandler) UpdateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "authorization required", http.StatusUnauthorized)
			return
		}

		var upd models.OrderUpdate
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		order, err := oh.svc.Update(r.Context(), userID, upd)
		if err != nil {
			switch {
			case models.IsValidationError(err):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, models.ErrPriceNotSet):
				http.Error(w, "price is not set", http.StatusBadRequest)
			case errors.Is(err, models.ErrAccessDenied):
				http.Error(w, "access denied", http.StatusForbidden)
			case errors.Is(err, models.ErrDataNotFound):
				http.Error(w, "order not found", http.StatusNotFound)
			case errors.Is(err, models.ErrInvalidTransition):
				http.Error(w, "invalid status transition", http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(order); err != nil {
			return
		}
	}
}
