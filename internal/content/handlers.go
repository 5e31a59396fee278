// Package content serves the read-only site collections and the settings record.
package content

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sesgrg/sesg-backend/internal/store"
)

// Reader is the read side of the collection store.
type Reader interface {
	Read(collection string, filters map[string]string) []store.Record
	Settings() store.Record
}

type Handler struct {
	store Reader
}

func NewHandler(store Reader) *Handler {
	return &Handler{store: store}
}

// Routes maps URL segments to collection names.
var Routes = map[string]string{
	"research-areas": store.ResearchAreas,
	"people":         store.People,
	"publications":   store.Publications,
	"achievements":   store.Achievements,
	"news":           store.News,
	"events":         store.Events,
	"photo-gallery":  store.PhotoGallery,
}

func (h *Handler) list(collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, h.store.Read(collection, nil))
	}
}

func (h *Handler) settings(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Settings())
}

// Register attaches one GET route per collection plus /settings.
func (h *Handler) Register(rg *gin.RouterGroup) {
	for path, collection := range Routes {
		rg.GET("/"+path, h.list(collection))
	}
	rg.GET("/settings", h.settings)
}
