package routes

import (
	"github.com/gin-gonic/gin"

	"volunteerhub/internal/interfaces/http/handlers"
	"volunteerhub/internal/interfaces/http/middleware"
)

// SetupAnnouncementRoutes configures the volunteer-facing announcement inbox.
func SetupAnnouncementRoutes(api *gin.RouterGroup, announcementHandler *handlers.AnnouncementHandler, authMiddleware *middleware.AuthMiddleware) {
	announcements := api.Group("/announcements")
	announcements.Use(authMiddleware.RequireAuth())
	{
		announcements.GET("/my-announcements", announcementHandler.ListMine)
		announcements.POST("/:id/read", announcementHandler.MarkRead)
	}
}
