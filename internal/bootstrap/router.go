package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/sesgrg/sesg-backend/internal/api/http"
	"github.com/sesgrg/sesg-backend/internal/api/http/middleware"
	authhttp "github.com/sesgrg/sesg-backend/internal/auth/http"
	authmw "github.com/sesgrg/sesg-backend/internal/auth/middleware"
	"github.com/sesgrg/sesg-backend/internal/auth/service"
	"github.com/sesgrg/sesg-backend/internal/content"
	projecthttp "github.com/sesgrg/sesg-backend/internal/projects/http"
	projectservice "github.com/sesgrg/sesg-backend/internal/projects/service"
	"github.com/sesgrg/sesg-backend/internal/store"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins []string
	Store          *store.Store
	Auth           service.Provider
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestIDMiddleware(), gin.Recovery(), cors.New(corsConfig(dep.AllowedOrigins)))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version)
	r.GET("/", healthHandler.Root)

	api := r.Group("/api")
	healthHandler.RegisterRoutes(api)

	authhttp.New(dep.Auth).Register(api.Group("/auth"))

	projects := projecthttp.New(projectservice.NewProjectService(dep.Store))
	projects.Register(api.Group("/projects"), authmw.RequireAdmin(dep.Auth)...)

	content.NewHandler(dep.Store).Register(api)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders:    []string{middleware.HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		// Echo any origin.
		cfg.AllowOriginFunc = func(string) bool { return true }
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
