package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ryazanov/inkstudio/internal/models"
)

type ContactService interface {
	// Submit validates and stores a contact form submission
	Submit(ctx context.Context, req *models.ContactRequest) (*models.ContactRequest, error)
}

// ContactHandler represents HTTP handler for the public contact form
type ContactHandler struct {
	svc ContactService
}

// NewContactHandler creates new ContactHandler instance
func NewContactHandler(svc ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

type contactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SubmitForm accepts a contact form submission
// 200 — заявка принята;
// 400 — не заполнены обязательные поля;
// 500 — внутренняя ошибка сервера.
func (ch *ContactHandler) SubmitForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ContactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if _, err := ch.svc.Submit(r.Context(), &req); err != nil {
			switch {
			case models.IsValidationError(err):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		resp := contactResponse{Success: true, Message: "Заявка принята, мы свяжемся с вами"}
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			return
		}
	}
}
