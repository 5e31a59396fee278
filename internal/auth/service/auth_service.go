package service

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/sesgrg/sesg-backend/internal/auth/domain"
)

// Provider issues and validates access tokens. The route layer only depends on
// this interface so a multi-user provider can replace the static one.
type Provider interface {
	Login(ctx context.Context, username, password string) (*domain.Token, error)
	Authorize(ctx context.Context, token string) (*domain.Identity, error)
}

// StaticProvider accepts exactly one configured admin principal.
type StaticProvider struct {
	username string
	password string
	tokens   *TokenIssuer
}

func NewStaticProvider(username, password string, tokens *TokenIssuer) *StaticProvider {
	return &StaticProvider{
		username: username,
		password: password,
		tokens:   tokens,
	}
}

// Login compares the credentials with the configured pair and issues an admin token.
func (p *StaticProvider) Login(_ context.Context, username, password string) (*domain.Token, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(p.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(p.password)) == 1
	if !userOK || !passOK {
		return nil, domain.ErrInvalidCredentials
	}

	signed, expiresAt, err := p.tokens.Issue(domain.Identity{Subject: username, Role: domain.RoleAdmin})
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	return &domain.Token{
		AccessToken: signed,
		TokenType:   domain.TokenTypeBearer,
		Role:        domain.RoleAdmin,
		ExpiresAt:   expiresAt,
	}, nil
}

// Authorize validates a bearer token and returns its subject and role.
func (p *StaticProvider) Authorize(_ context.Context, token string) (*domain.Identity, error) {
	return p.tokens.Parse(token)
}
