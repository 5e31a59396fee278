package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/sesgrg/sesg-backend/internal/auth/domain"
)

const (
	CtxIdentity = "auth_identity"
)

// SetIdentity stores the verified identity on the gin context.
// This is called by the bearer middleware.
func SetIdentity(c *gin.Context, id *domain.Identity) {
	c.Set(CtxIdentity, id)
}

// CurrentIdentity returns the identity set by the bearer middleware, if any.
func CurrentIdentity(c *gin.Context) (*domain.Identity, bool) {
	v, ok := c.Get(CtxIdentity)
	if !ok {
		return nil, false
	}
	id, ok := v.(*domain.Identity)
	return id, ok && id != nil
}
