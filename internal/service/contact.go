package service

import (
	"context"
	"strings"

	"github.com/ryazanov/inkstudio/internal/models"
)

// ContactRepository is interface for interacting with contact form data
type ContactRepository interface {
	// CreateContactRequest stores a contact form submission
	CreateContactRequest(ctx context.Context, req *models.ContactRequest) (*models.ContactRequest, error)
}

// ContactService implements the public contact form
type ContactService struct {
	repo ContactRepository
}

// NewContactService creates new ContactService instance
func NewContactService(repo ContactRepository) *ContactService {
	return &ContactService{repo: repo}
}

// Submit validates and stores a contact form submission. Name, phone and
// message are required, email is optional.
func (cs *ContactService) Submit(ctx context.Context, req *models.ContactRequest) (*models.ContactRequest, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)

	if req.Name == "" || req.Phone == "" || req.Message == "" {
		return nil, models.NewValidationError("contact", "имя, телефон и сообщение обязательны")
	}

	return cs.repo.CreateContactRequest(ctx, req)
}
