package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "admin"
	// RoleUser is assumed for tokens that carry no role claim. Only admin
	// tokens are issued today.
	RoleUser = "user"

	TokenTypeBearer = "bearer"
)

var (
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInvalidToken       = errors.New("could not validate credentials")
	ErrForbidden          = errors.New("not enough permissions")
)

// Identity is the principal extracted from a verified token.
type Identity struct {
	Subject string `json:"sub"`
	Role    string `json:"role"`
}

// Token is an issued access token.
type Token struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	Role        string    `json:"user_role"`
	ExpiresAt   time.Time `json:"-"`
}
