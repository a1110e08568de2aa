package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ryazanov/inkstudio/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContactService struct {
	submitFn func(ctx context.Context, req *models.ContactRequest) (*models.ContactRequest, error)
}

func (f *fakeContactService) Submit(ctx context.Context, req *models.ContactRequest) (*models.ContactRequest, error) {
	return f.submitFn(ctx, req)
}

func TestContactHandler_SubmitForm(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		submitErr  error
		wantStatus int
	}{
		{name: "submission_accepted", body: `{"name":"Иван","phone":"+79990001122","message":"Хочу тату"}`, wantStatus: http.StatusOK},
		{name: "malformed_json", body: `{"name":`, wantStatus: http.StatusBadRequest},
		{name: "missing_required_fields", body: `{"name":"Иван"}`, submitErr: models.NewValidationError("contact", "имя, телефон и сообщение обязательны"), wantStatus: http.StatusBadRequest},
		{name: "storage_failure", body: `{"name":"Иван","phone":"+79990001122","message":"Хочу тату"}`, submitErr: models.ErrInternalError, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := NewContactHandler(&fakeContactService{
				submitFn: func(ctx context.Context, req *models.ContactRequest) (*models.ContactRequest, error) {
					if tt.submitErr != nil {
						return nil, tt.submitErr
					}
					req.ID = 1
					return req, nil
				},
			})

			r := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			ch.SubmitForm().ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				var got contactResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
				assert.True(t, got.Success)
				assert.NotEmpty(t, got.Message)
			}
		})
	}
}
