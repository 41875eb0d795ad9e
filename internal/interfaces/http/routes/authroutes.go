package routes

import (
	"github.com/gin-gonic/gin"

	"volunteerhub/internal/interfaces/http/handlers"
)

// SetupAuthRoutes configures the public authentication routes.
func SetupAuthRoutes(api *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/register", authHandler.Register)
	}
}
