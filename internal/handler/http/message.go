package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ryazanov/inkstudio/internal/middleware"
	"github.com/ryazanov/inkstudio/internal/models"
)

type MessageService interface {
	// List returns the conversation of one order
	List(ctx context.Context, actorID, orderID uint64) ([]models.Message, error)
	// Send appends a message to an order conversation
	Send(ctx context.Context, actorID, orderID uint64, text string) (*models.Message, error)
}

// MessageHandler represents HTTP handler for conversation requests
type MessageHandler struct {
	svc MessageService
}

// NewMessageHandler creates new MessageHandler instance
func NewMessageHandler(svc MessageService) *MessageHandler {
	return &MessageHandler{svc: svc}
}

// ListMessages returns the conversation of the order_id query parameter
// 200 — успешная обработка запроса;
// 400 — не указан ID заказа;
// 401 — пользователь не авторизован;
// 403 — доступ запрещён;
// 404 — заказ не найден;
// 500 — внутренняя ошибка сервера.
func (mh *MessageHandler) ListMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "authorization required", http.StatusUnauthorized)
			return
		}

		orderID, err := strconv.ParseUint(r.URL.Query().Get("order_id"), 10, 64)
		if err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		messages, err := mh.svc.List(r.Context(), userID, orderID)
		if err != nil {
			switch {
			case models.IsValidationError(err):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, models.ErrAccessDenied):
				http.Error(w, "access denied", http.StatusForbidden)
			case errors.Is(err, models.ErrDataNotFound):
				http.Error(w, "order not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(messages); err != nil {
			return
		}
	}
}

type sendMessageRequest struct {
	OrderID uint64 `json:"order_id"`
	Message string `json:"message"`
}

// SendMessage appends a message to an order conversation
// 201 — сообщение создано;
// 400 — неверный формат запроса;
// 401 — пользователь не авторизован;
// 403 — доступ запрещён;
// 404 — заказ не найден;
// 500 — внутренняя ошибка сервера.
func (mh *MessageHandler) SendMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "authorization required", http.StatusUnauthorized)
			return
		}

		var req sendMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		msg, err := mh.svc.Send(r.Context(), userID, req.OrderID, req.Message)
		if err != nil {
			switch {
			case models.IsValidationError(err):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, models.ErrAccessDenied):
				http.Error(w, "access denied", http.StatusForbidden)
			case errors.Is(err, models.ErrDataNotFound):
				http.Error(w, "order not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(msg); err != nil {
			return
		}
	}
}
