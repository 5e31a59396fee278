package bootstrap

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// SetGinMode switches gin to release mode in production and to test mode under "test".
func SetGinMode(env string) {
	switch strings.ToLower(env) {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}
}
