package models

import "time"

// user role
const (
	RoleMaster = "master"
	RoleClient = "client"
)

// User is user entity
type User struct {
	ID           uint64    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// TokenPayload is the verified content of an auth token
type TokenPayload struct {
	UserID uint64
	Role   string
}
