package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/ryazanov/inkstudio/internal/models"
	"github.com/ryazanov/inkstudio/internal/repository/postgres"
)

const (
	insertBookingQuery = `
						INSERT INTO bookings (user_id, service_id, booking_date, notes, status)
						VALUES ($1, $2, $3, $4, $5)
						RETURNING id, created_at
`
	selectBookingsQuery = `
						SELECT b.id, b.user_id, b.service_id, s.name, b.booking_date, b.notes, b.status, u.name, u.email, b.created_at
						FROM bookings b
						LEFT JOIN services s ON b.service_id = s.id
						LEFT JOIN users u ON b.user_id = u.id
						WHERE ($1::bigint IS NULL OR b.user_id = $1)
						  AND ($2::text IS NULL OR b.status = $2)
						ORDER BY b.booking_date DESC
`
	updateBookingStatusQuery = `
						UPDATE bookings
						SET status = $1
						WHERE id = $2
`
	selectServiceByIDQuery = `
						SELECT id, name, price, duration FROM services
						WHERE id = $1
`
)

// BookingRepository implements BookingRepository interface
type BookingRepository struct {
	db *postgres.DB
}

// NewBookingRepository creates new BookingRepository instance
func NewBookingRepository(db *postgres.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// CreateBooking inserts new booking to database
func (br *BookingRepository) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	err := br.db.QueryRow(ctx, insertBookingQuery, booking.UserID, booking.ServiceID, booking.BookingDate, booking.Notes, booking.Status).
		Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		return nil, err
	}

	return booking, nil
}

// GetBookings returns bookings, optionally filtered by user and status
func (br *BookingRepository) GetBookings(ctx context.Context, userID *uint64, status *string) ([]models.Booking, error) {
	rows, err := br.db.Query(ctx, selectBookingsQuery, userID, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := []models.Booking{}

	for rows.Next() {
		booking := models.Booking{}
		err = rows.Scan(&booking.ID, &booking.UserID, &booking.ServiceID, &booking.ServiceName, &booking.BookingDate, &booking.Notes, &booking.Status, &booking.ClientName, &booking.ClientEmail, &booking.CreatedAt)
		if err != nil {
			continue
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

// UpdateBookingStatus sets booking status
func (br *BookingRepository) UpdateBookingStatus(ctx context.Context, id uint64, status string) error {
	cmd, err := br.db.Exec(ctx, updateBookingStatusQuery, status, id)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return models.ErrDataNotFound
	}

	return nil
}

// GetServiceByID returns bookable service by id
func (br *BookingRepository) GetServiceByID(ctx context.Context, id uint64) (*models.Service, error) {
	service := models.Service{}
	err := br.db.QueryRow(ctx, selectServiceByIDQuery, id).
		Scan(&service.ID, &service.Name, &service.Price, &service.Duration)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return &service, nil
}
