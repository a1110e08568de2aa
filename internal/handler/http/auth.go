package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ryazanov/inkstudio/internal/models"
)

type AuthService interface {
	// Register creates a user and returns it with a fresh token
	Register(ctx context.Context, email, password, name string) (*models.User, string, error)
	// Login verifies credentials and returns the user with a fresh token
	Login(ctx context.Context, email, password string) (*models.User, string, error)
}

// AuthHandler represents HTTP handler for auth-related requests
type AuthHandler struct {
	svc AuthService
}

// NewAuthHandler creates new AuthHandler instance
func NewAuthHandler(svc AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// RegisterUser registers a new user
// 200 — пользователь зарегистрирован;
// 400 — неверный формат запроса;
// 409 — email уже занят;
// 500 — внутренняя ошибка сервера.
func (ah *AuthHandler) RegisterUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		user, token, err := ah.svc.Register(r.Context(), req.Email, req.Password, req.Name)
		if err != nil {
			switch {
			case models.IsValidationError(err):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, models.ErrConflictData):
				http.Error(w, "email already registered", http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(authResponse{User: user, Token: token}); err != nil {
			return
		}
	}
}

// LoginUser authenticates an existing user
// 200 — пользователь аутентифицирован;
// 400 — неверный формат запроса;
// 401 — неверная пара логин/пароль;
// 500 — внутренняя ошибка сервера.
func (ah *AuthHandler) LoginUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		user, token, err := ah.svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrInvalidCredentials):
				http.Error(w, "invalid email or password", http.StatusUnauthorized)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(authResponse{User: user, Token: token}); err != nil {
			return
		}
	}
}
