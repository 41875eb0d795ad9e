package routes

import (
	"github.com/gin-gonic/gin"

	"volunteerhub/internal/interfaces/http/handlers"
	"volunteerhub/internal/interfaces/http/middleware"
)

// SetupUserRoutes configures the authenticated user's profile routes.
func SetupUserRoutes(api *gin.RouterGroup, profileHandler *handlers.ProfileHandler, authMiddleware *middleware.AuthMiddleware) {
	users := api.Group("/users")
	users.Use(authMiddleware.RequireAuth())
	{
		users.GET("/profile", profileHandler.GetProfile)
		users.PUT("/profile", profileHandler.UpdateProfile)
		users.GET("/my-events", profileHandler.MyEvents)
	}
}
