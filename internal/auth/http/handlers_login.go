package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sesgrg/sesg-backend/internal/api/http/respond"
	"github.com/sesgrg/sesg-backend/internal/auth/domain"
)

// Login exchanges the admin username and password for a bearer token.
func (h *Handler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Validation(c, "invalid request body", err.Error())
		return
	}

	tok, err := h.provider.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			respond.Detail(c, http.StatusUnauthorized, "Incorrect username or password")
			return
		}
		respond.Internal(c, "login", err)
		return
	}

	c.JSON(http.StatusOK, tokenResp{
		AccessToken: tok.AccessToken,
		TokenType:   tok.TokenType,
		UserRole:    tok.Role,
	})
}
