package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to the given router group. Reads are
// public; every mutating route runs behind the admin handlers.
func (h *Handler) Register(rg *gin.RouterGroup, admin ...gin.HandlerFunc) {
	rg.GET("", h.list)

	protected := rg.Group("", admin...)
	protected.POST("", h.create)
	protected.PUT("/:id", h.update)
	protected.DELETE("/:id", h.delete)
}
