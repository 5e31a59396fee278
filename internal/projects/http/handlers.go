package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sesgrg/sesg-backend/internal/api/http/respond"
	"github.com/sesgrg/sesg-backend/internal/logging"
	"github.com/sesgrg/sesg-backend/internal/projects/domain"
	"github.com/sesgrg/sesg-backend/internal/store"
)

// filterParams are the query parameters accepted as equality filters.
var filterParams = []string{"category", "status"}

func (h *Handler) list(c *gin.Context) {
	filters := map[string]string{}
	for _, name := range filterParams {
		if v := c.Query(name); v != "" {
			filters[name] = v
		}
	}
	c.JSON(http.StatusOK, h.projects.List(c.Request.Context(), filters))
}

func (h *Handler) create(c *gin.Context) {
	p, ok := bindProject(c)
	if !ok {
		return
	}

	rec, err := h.projects.Create(c.Request.Context(), p)
	if err != nil {
		writeError(c, "create project", err)
		return
	}

	logging.FromContext(c.Request.Context()).WithField("project_id", rec.ID()).Info("project created")
	c.JSON(http.StatusOK, rec)
}

func (h *Handler) update(c *gin.Context) {
	id := c.Param("id")

	p, ok := bindProject(c)
	if !ok {
		return
	}

	rec, err := h.projects.Update(c.Request.Context(), id, p)
	if err != nil {
		writeError(c, "update project", err)
		return
	}

	logging.FromContext(c.Request.Context()).WithField("project_id", id).Info("project updated")
	c.JSON(http.StatusOK, rec)
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")

	if h.projects.Delete(c.Request.Context(), id) {
		logging.FromContext(c.Request.Context()).WithField("project_id", id).Info("project deleted")
	}
	c.JSON(http.StatusOK, deleteResp{Message: "Document deleted successfully"})
}

func bindProject(c *gin.Context) (*domain.Project, bool) {
	body, err := c.GetRawData()
	if err != nil {
		respond.Detail(c, http.StatusBadRequest, "could not read request body")
		return nil, false
	}
	p, err := domain.DecodeProject(body)
	if err != nil {
		writeError(c, "decode project", err)
		return nil, false
	}
	return p, true
}

func writeError(c *gin.Context, operation string, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		respond.Validation(c, "invalid project", verr.Fields)
	case errors.Is(err, store.ErrNotFound):
		respond.Detail(c, http.StatusNotFound, "Document not found")
	default:
		respond.Internal(c, operation, err)
	}
}
