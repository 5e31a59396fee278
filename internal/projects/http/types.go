package http

import "github.com/sesgrg/sesg-backend/internal/projects/service"

// Handler bundles the dependencies for projects HTTP endpoints.
type Handler struct {
	projects *service.ProjectService
}

func New(projects *service.ProjectService) *Handler {
	return &Handler{projects: projects}
}

type deleteResp struct {
	Message string `json:"message"`
}
