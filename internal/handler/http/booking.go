package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ryazanov/inkstudio/internal/middleware"
	"github.com/ryazanov/inkstudio/internal/models"
)

type BookingService interface {
	// Create validates and stores a new booking
	Create(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	// List returns bookings filtered by optional user id and status
	List(ctx context.Context, userID *uint64, status *string) ([]models.Booking, error)
	// UpdateStatus sets a booking status
	UpdateStatus(ctx context.Context, actor *models.TokenPayload, id uint64, status string) error
}

// BookingHandler represents HTTP handler for booking-related requests
type BookingHandler struct {
	svc BookingService
}

// NewBookingHandler creates new BookingHandler instance
func NewBookingHandler(svc BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

// ListBookings returns bookings, optionally filtered by user_id and status
// 200 — успешная обработка запроса;
// 401 — пользователь не авторизован;
// 500 — внутренняя ошибка сервера.
func (bh *BookingHandler) ListBookings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := middleware.PayloadFromContext(r.Context())
		if !ok {
			http.Error(w, "authorization required", http.StatusUnauthorized)
			return
		}

		var userID *uint64
		var status *string

		if val := r.URL.Query().Get("user_id"); val != "" {
			id, err := strconv.ParseUint(val, 10, 64)
			if err != nil {
				http.Error(w, "bad request", http.StatusBadRequest)
				return
			}
			userID = &id
		}
		if val := r.URL.Query().Get("status"); val != "" {
			status = &val
		}

		// clients only see their own bookings
		if payload.Role != models.RoleMaster {
			userID = &payload.UserID
		}

		bookings, err := bh.svc.List(r.Context(), userID, status)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(bookings); err != nil {
			return
		}
	}
}

type createBookingRequest struct {
	ServiceID   uint64 `json:"service_id"`
	BookingDate string `json:"booking_date"`
	Notes       string `json:"notes"`
}

// CreateBooking creates a new booking for the caller
// 201 — запись создана;
// 400 — неверный формат запроса;
// 401 — пользователь не авторизован;
// 404 — услуга не найдена;
// 500 — внутренняя ошибка сервера.
func (bh *BookingHandler) CreateBooking() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := middleware.PayloadFromContext(r.Context())
		if !ok {
			http.Error(w, "authorization required", http.StatusUnauthorized)
			return
		}

		var req createBookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		bookingDate, err := time.Parse(time.RFC3339, req.BookingDate)
		if err != nil {
			http.Error(w, "bad booking date", http.StatusBadRequest)
			return
		}

		booking := models.Booking{
			UserID:      payload.UserID,
			ServiceID:   req.ServiceID,
			BookingDate: bookingDate,
			Notes:       req.Notes,
		}

		created, err := bh.svc.Create(r.Context(), &booking)
		if err != nil {
			switch {
			case models.IsValidationError(err):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, models.ErrDataNotFound):
				http.Error(w, "service not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(created); err != nil {
			return
		}
	}
}

type updateBookingRequest struct {
	ID     uint64 `json:"id"`
	Status string `json:"status"`
}

// UpdateBookingStatus sets a booking status, master only
// 200 — статус обновлён;
// 400 — неверный формат запроса;
// 401 — пользователь не авторизован;
// 403 — доступ запрещён;
// 404 — запись не найдена;
// 500 — внутренняя ошибка сервера.
func (bh *BookingHandler) UpdateBookingStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := middleware.PayloadFromContext(r.Context())
		if !ok {
			http.Error(w, "authorization required", http.StatusUnauthorized)
			return
		}

		var req updateBookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == 0 {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if err := bh.svc.UpdateStatus(r.Context(), payload, req.ID, req.Status); err != nil {
			switch {
			case models.IsValidationError(err):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, models.ErrAccessDenied):
				http.Error(w, "access denied", http.StatusForbidden)
			case errors.Is(err, models.ErrDataNotFound):
				http.Error(w, "booking not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
