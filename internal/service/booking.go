package service

import (
	"context"
	"time"

	"github.com/ryazanov/inkstudio/internal/models"
)

// BookingRepository is interface for interacting with booking-related data
type BookingRepository interface {
	// CreateBooking inserts new booking to database
	CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	// GetBookings returns bookings, optionally filtered by user and status
	GetBookings(ctx context.Context, userID *uint64, status *string) ([]models.Booking, error)
	// UpdateBookingStatus sets booking status
	UpdateBookingStatus(ctx context.Context, id uint64, status string) error
	// GetServiceByID returns bookable service by id
	GetServiceByID(ctx context.Context, id uint64) (*models.Service, error)
}

// BookingService implements session appointments
type BookingService struct {
	repo BookingRepository
}

// NewBookingService creates new BookingService instance
func NewBookingService(repo BookingRepository) *BookingService {
	return &BookingService{repo: repo}
}

// Create validates and stores a new booking with status pending
func (bs *BookingService) Create(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	if booking.ServiceID == 0 {
		return nil, models.NewValidationError("service_id", "не указана услуга")
	}
	if booking.BookingDate.IsZero() || booking.BookingDate.Before(time.Now()) {
		return nil, models.NewValidationError("booking_date", "некорректная дата записи")
	}

	if _, err := bs.repo.GetServiceByID(ctx, booking.ServiceID); err != nil {
		return nil, err
	}

	booking.Status = models.BookingStatusPending

	return bs.repo.CreateBooking(ctx, booking)
}

// List returns bookings filtered by optional user id and status
func (bs *BookingService) List(ctx context.Context, userID *uint64, status *string) ([]models.Booking, error) {
	return bs.repo.GetBookings(ctx, userID, status)
}

// UpdateStatus sets a booking status, master only
func (bs *BookingService) UpdateStatus(ctx context.Context, actor *models.TokenPayload, id uint64, status string) error {
	if !models.IsBookingStatus(status) {
		return models.NewValidationError("status", "неизвестный статус")
	}
	if actor.Role != models.RoleMaster {
		return models.ErrAccessDenied
	}

	return bs.repo.UpdateBookingStatus(ctx, id, status)
}
