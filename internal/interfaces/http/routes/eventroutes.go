package routes

import (
	"github.com/gin-gonic/gin"

	"volunteerhub/internal/interfaces/http/handlers"
	"volunteerhub/internal/interfaces/http/middleware"
	"volunteerhub/internal/shared/authorization"
)

// EventRouteConfig holds dependencies for the event registry routes.
type EventRouteConfig struct {
	EventHandler        *handlers.EventHandler
	AnnouncementHandler *handlers.AnnouncementHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// SetupEventRoutes configures event registry, enrollment and announcement
// distribution routes. Registry mutations are admin-only; enrollment
// transitions act on the caller's own membership.
func SetupEventRoutes(api *gin.RouterGroup, cfg *EventRouteConfig) {
	events := api.Group("/events")
	events.Use(cfg.AuthMiddleware.RequireAuth())
	{
		events.GET("", cfg.EventHandler.List)
		events.POST("", authorization.RequireAdmin(), cfg.EventHandler.Create)

		events.GET("/:id", cfg.EventHandler.Get)
		events.PUT("/:id", authorization.RequireAdmin(), cfg.EventHandler.Update)
		events.DELETE("/:id", authorization.RequireAdmin(), cfg.EventHandler.Delete)

		events.POST("/:id/join", cfg.EventHandler.Join)
		events.POST("/:id/leave", cfg.EventHandler.Leave)
		events.DELETE("/:id/volunteers/:userId", authorization.RequireAdmin(), cfg.EventHandler.RemoveVolunteer)

		events.POST("/:id/announce", authorization.RequireAdmin(), cfg.AnnouncementHandler.Send)
	}
}
