package service

import (
	"context"
	"errors"
	"strings"

	"github.com/ryazanov/inkstudio/internal/models"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 6

// TokenService creates and verifies auth tokens
type TokenService interface {
	CreateToken(user *models.User) (string, error)
	VerifyToken(tokenString string) (*models.TokenPayload, error)
}

// AuthService implements registration and login with bcrypt-hashed passwords
type AuthService struct {
	users       UserRepository
	token       TokenService
	masterEmail string
}

// NewAuthService creates new AuthService instance. The account registering
// with masterEmail gets the master role, everyone else is a client.
func NewAuthService(users UserRepository, token TokenService, masterEmail string) *AuthService {
	return &AuthService{
		users:       users,
		token:       token,
		masterEmail: masterEmail,
	}
}

// Register creates a user and returns it with a fresh token
func (as *AuthService) Register(ctx context.Context, email, password, name string) (*models.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	if email == "" || !strings.Contains(email, "@") {
		return nil, "", models.NewValidationError("email", "некорректный email")
	}
	if len(password) < minPasswordLen {
		return nil, "", models.NewValidationError("password", "пароль слишком короткий")
	}
	if strings.TrimSpace(name) == "" {
		return nil, "", models.NewValidationError("name", "не указано имя")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	role := models.RoleClient
	if email == as.masterEmail {
		role = models.RoleMaster
	}

	user := models.User{
		Email:        email,
		Name:         name,
		Role:         role,
		PasswordHash: string(hash),
	}

	created, err := as.users.CreateUser(ctx, &user)
	if err != nil {
		return nil, "", err
	}

	tokenString, err := as.token.CreateToken(created)
	if err != nil {
		return nil, "", err
	}

	return created, tokenString, nil
}

// Login verifies credentials and returns the user with a fresh token
func (as *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := as.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrDataNotFound) {
			return nil, "", models.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", models.ErrInvalidCredentials
	}

	tokenString, err := as.token.CreateToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, tokenString, nil
}
