package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ryazanov/inkstudio/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessageService struct {
	listFn func(ctx context.Context, actorID, orderID uint64) ([]models.Message, error)
	sendFn func(ctx context.Context, actorID, orderID uint64, text string) (*models.Message, error)
}

func (f *fakeMessageService) List(ctx context.Context, actorID, orderID uint64) ([]models.Message, error) {
	return f.listFn(ctx, actorID, orderID)
}

func (f *fakeMessageService) Send(ctx context.Context, actorID, orderID uint64, text string) (*models.Message, error) {
	return f.sendFn(ctx, actorID, orderID, text)
}

func TestMessageHandler_ListMessages(t *testing.T) {
	thread := []models.Message{
		{ID: 1, OrderID: 10, SenderID: 7, SenderName: "Клиент", SenderRole: models.RoleClient, Text: "Здравствуйте!"},
		{ID: 2, OrderID: 10, SenderID: 1, SenderName: "Мастер", SenderRole: models.RoleMaster, Text: "Добрый день"},
	}

	tests := []struct {
		name       string
		target     string
		authorized bool
		listFn     func(ctx context.Context, actorID, orderID uint64) ([]models.Message, error)
		wantStatus int
		wantBody   []models.Message
	}{
		{
			name:       "returns_conversation",
			target:     "/api/messages?order_id=10",
			authorized: true,
			listFn: func(ctx context.Context, actorID, orderID uint64) ([]models.Message, error) {
				return thread, nil
			},
			wantStatus: http.StatusOK,
			wantBody:   thread,
		},
		{
			name:       "missing_order_id",
			target:     "/api/messages",
			authorized: true,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unauthorized_without_identity",
			target:     "/api/messages?order_id=10",
			authorized: false,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "foreign_order",
			target:     "/api/messages?order_id=10",
			authorized: true,
			listFn: func(ctx context.Context, actorID, orderID uint64) ([]models.Message, error) {
				return nil, models.ErrAccessDenied
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "unknown_order",
			target:     "/api/messages?order_id=99",
			authorized: true,
			listFn: func(ctx context.Context, actorID, orderID uint64) ([]models.Message, error) {
				return nil, models.ErrDataNotFound
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mh := NewMessageHandler(&fakeMessageService{listFn: tt.listFn})

			r := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.authorized {
				r = identified(r, 7)
			}
			w := httptest.NewRecorder()

			mh.ListMessages().ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != nil {
				var got []models.Message
				require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
				if diff := cmp.Diff(tt.wantBody, got); diff != "" {
					t.Errorf("messages mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestMessageHandler_SendMessage(t *testing.T) {
	sent := &models.Message{ID: 3, OrderID: 10, SenderID: 7, SenderName: "Клиент", SenderRole: models.RoleClient, Text: "Когда можно записаться?"}

	tests := []struct {
		name       string
		body       string
		sendErr    error
		wantStatus int
	}{
		{name: "message_created", body: `{"order_id":10,"message":"Когда можно записаться?"}`, wantStatus: http.StatusCreated},
		{name: "malformed_json", body: `{"order_id":`, wantStatus: http.StatusBadRequest},
		{name: "blank_message", body: `{"order_id":10,"message":"  "}`, sendErr: models.NewValidationError("message", "message is empty"), wantStatus: http.StatusBadRequest},
		{name: "foreign_order", body: `{"order_id":10,"message":"привет"}`, sendErr: models.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "unknown_order", body: `{"order_id":99,"message":"привет"}`, sendErr: models.ErrDataNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mh := NewMessageHandler(&fakeMessageService{
				sendFn: func(ctx context.Context, actorID, orderID uint64, text string) (*models.Message, error) {
					if tt.sendErr != nil {
						return nil, tt.sendErr
					}
					return sent, nil
				},
			})

			r := identified(httptest.NewRequest(http.MethodPost, "/api/messages", bytes.NewBufferString(tt.body)), 7)
			w := httptest.NewRecorder()

			mh.SendMessage().ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusCreated {
				var got models.Message
				require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
				if diff := cmp.Diff(*sent, got); diff != "" {
					t.Errorf("message mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}
