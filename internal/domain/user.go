package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"nome"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"senha,omitempty"`
	Active       bool       `json:"ativo"`
	RoleID       int        `json:"role_id"`
	Deleted      bool       `json:"-"`
	DeletedAt    *time.Time `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Claims carrega a identidade extraída do token JWT
type Claims struct {
	UserID     int    `json:"user_id"`
	UserName   string `json:"user_name"`
	UserEmail  string `json:"user_email"`
	UserRoleID int    `json:"user_role_id"`
	jwt.RegisteredClaims
}
