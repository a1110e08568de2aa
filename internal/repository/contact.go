package repository

import (
	"context"

	"github.com/ryazanov/inkstudio/internal/models"
	"github.com/ryazanov/inkstudio/internal/repository/postgres"
)

const insertContactQuery = `
						INSERT INTO contact_messages (name, phone, email, message)
						VALUES ($1, $2, $3, $4)
						RETURNING id, created_at
`

// ContactRepository implements ContactRepository interface
type ContactRepository struct {
	db *postgres.DB
}

// NewContactRepository creates new ContactRepository instance
func NewContactRepository(db *postgres.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// CreateContactRequest stores a contact form submission
func (cr *ContactRepository) CreateContactRequest(ctx context.Context, req *models.ContactRequest) (*models.ContactRequest, error) {
	err := cr.db.QueryRow(ctx, insertContactQuery, req.Name, req.Phone, req.Email, req.Message).
		Scan(&req.ID, &req.CreatedAt)
	if err != nil {
		return nil, err
	}

	return req, nil
}
