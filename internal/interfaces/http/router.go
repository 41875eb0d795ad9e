// Package http assembles the HTTP surface: repositories, use cases,
// handlers, middleware and routes.
package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	announcementusecases "volunteerhub/internal/application/announcement/usecases"
	eventusecases "volunteerhub/internal/application/event/usecases"
	userusecases "volunteerhub/internal/application/user/usecases"
	"volunteerhub/internal/infrastructure/auth"
	"volunteerhub/internal/infrastructure/config"
	"volunteerhub/internal/infrastructure/repository"
	"volunteerhub/internal/interfaces/http/handlers"
	"volunteerhub/internal/interfaces/http/middleware"
	"volunteerhub/internal/interfaces/http/routes"
	"volunteerhub/internal/shared/authorization"
	"volunteerhub/internal/shared/logger"
)

// jwtServiceAdapter bridges the infrastructure token service to the
// application-layer interface.
type jwtServiceAdapter struct {
	*auth.JWTService
}

func (a *jwtServiceAdapter) Generate(userID uint, role authorization.UserRole) (*userusecases.TokenPair, error) {
	pair, err := a.JWTService.Generate(userID, role)
	if err != nil {
		return nil, err
	}
	return &userusecases.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

// Router owns the configured gin engine.
type Router struct {
	engine *gin.Engine
}

// NewRouter wires the full request path against the given database handle.
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	// Infrastructure services
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	passwordHasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtAdapter := &jwtServiceAdapter{jwtService}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)

	// Use cases
	loginUC := userusecases.NewLoginWithPasswordUseCase(userRepo, passwordHasher, jwtAdapter, log)
	registerUC := userusecases.NewRegisterWithPasswordUseCase(userRepo, passwordHasher, jwtAdapter, log)
	getProfileUC := userusecases.NewGetProfileUseCase(userRepo, log)
	updateProfileUC := userusecases.NewUpdateProfileUseCase(userRepo, log)

	listEventsUC := eventusecases.NewListEventsUseCase(eventRepo, userRepo, log)
	getEventUC := eventusecases.NewGetEventUseCase(eventRepo, userRepo, log)
	createEventUC := eventusecases.NewCreateEventUseCase(eventRepo, log)
	updateEventUC := eventusecases.NewUpdateEventUseCase(eventRepo, userRepo, log)
	deleteEventUC := eventusecases.NewDeleteEventUseCase(eventRepo, log)
	joinEventUC := eventusecases.NewJoinEventUseCase(eventRepo, userRepo, log)
	leaveEventUC := eventusecases.NewLeaveEventUseCase(eventRepo, userRepo, log)
	removeVolunteerUC := eventusecases.NewRemoveVolunteerUseCase(eventRepo, userRepo, log)
	listMyEventsUC := eventusecases.NewListMyEventsUseCase(eventRepo, userRepo, log)

	sendAnnouncementUC := announcementusecases.NewSendAnnouncementUseCase(announcementRepo, eventRepo, userRepo, log)
	listMyAnnouncementsUC := announcementusecases.NewListMyAnnouncementsUseCase(announcementRepo, eventRepo, userRepo, log)
	markReadUC := announcementusecases.NewMarkAnnouncementAsReadUseCase(announcementRepo, log)

	// Handlers
	authHandler := handlers.NewAuthHandler(loginUC, registerUC, log)
	profileHandler := handlers.NewProfileHandler(getProfileUC, updateProfileUC, listMyEventsUC, log)
	eventHandler := handlers.NewEventHandler(listEventsUC, getEventUC, createEventUC, updateEventUC, deleteEventUC, joinEventUC, leaveEventUC, removeVolunteerUC, log)
	announcementHandler := handlers.NewAnnouncementHandler(sendAnnouncementUC, listMyAnnouncementsUC, markReadUC, log)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	api := engine.Group("/api")
	routes.SetupAuthRoutes(api, authHandler)
	routes.SetupUserRoutes(api, profileHandler, authMiddleware)
	routes.SetupEventRoutes(api, &routes.EventRouteConfig{
		EventHandler:        eventHandler,
		AnnouncementHandler: announcementHandler,
		AuthMiddleware:      authMiddleware,
	})
	routes.SetupAnnouncementRoutes(api, announcementHandler, authMiddleware)

	return &Router{engine: engine}
}

// Engine exposes the underlying gin engine for serving and testing.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server on the given address.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
