package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/ryazanov/inkstudio/internal/models"
)

const tokenTTL = 24 * time.Hour

// Claims is the JWT payload carried by an auth token
type Claims struct {
	jwt.RegisteredClaims
	UserID uint64 `json:"uid"`
	Role   string `json:"role"`
}

// AuthToken creates and verifies signed auth tokens
type AuthToken struct {
	key []byte
}

// NewAuthToken creates new AuthToken instance with a signing key
func NewAuthToken(key []byte) *AuthToken {
	return &AuthToken{key: key}
}

// CreateToken issues a signed token for the user
func (at *AuthToken) CreateToken(user *models.User) (string, error) {
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		UserID: user.ID,
		Role:   user.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(at.key)
}

// VerifyToken parses and validates a token string
func (at *AuthToken) VerifyToken(tokenString string) (*models.TokenPayload, error) {
	claims := Claims{}

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return at.key, nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, models.ErrInvalidCredentials
	}

	return &models.TokenPayload{
		UserID: claims.UserID,
		Role:   claims.Role,
	}, nil
}
