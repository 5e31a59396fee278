package http

import "github.com/sesgrg/sesg-backend/internal/auth/service"

type Handler struct {
	provider service.Provider
}

func New(provider service.Provider) *Handler {
	return &Handler{
		provider: provider,
	}
}

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type tokenResp struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserRole    string `json:"user_role"`
}
