package service

import (
	"context"
	"testing"

	"github.com/ryazanov/inkstudio/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContactRepo struct{}

func (fakeContactRepo) CreateContactRequest(_ context.Context, req *models.ContactRequest) (*models.ContactRequest, error) {
	req.ID = 1
	return req, nil
}

func TestContactService_Submit(t *testing.T) {
	tests := []struct {
		name    string
		req     models.ContactRequest
		wantErr bool
	}{
		{name: "valid_submission", req: models.ContactRequest{Name: "Иван", Phone: "+79990001122", Message: "Хочу тату"}},
		{name: "email_is_optional", req: models.ContactRequest{Name: "Иван", Phone: "+79990001122", Email: "ivan@example.com", Message: "Хочу тату"}},
		{name: "missing_name", req: models.ContactRequest{Phone: "+79990001122", Message: "Хочу тату"}, wantErr: true},
		{name: "missing_phone", req: models.ContactRequest{Name: "Иван", Message: "Хочу тату"}, wantErr: true},
		{name: "blank_message", req: models.ContactRequest{Name: "Иван", Phone: "+79990001122", Message: "  "}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewContactService(fakeContactRepo{})

			req := tt.req
			created, err := svc.Submit(context.Background(), &req)
			if tt.wantErr {
				assert.True(t, models.IsValidationError(err))
				return
			}

			require.NoError(t, err)
			assert.NotZero(t, created.ID)
		})
	}
}
