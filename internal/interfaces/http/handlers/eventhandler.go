package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	eventusecases "volunteerhub/internal/application/event/usecases"
	"volunteerhub/internal/interfaces/dto"
	"volunteerhub/internal/shared/logger"
	"volunteerhub/internal/shared/utils"
)

// EventHandler handles event registry and enrollment HTTP requests.
type EventHandler struct {
	listUseCase            *eventusecases.ListEventsUseCase
	getUseCase             *eventusecases.GetEventUseCase
	createUseCase          *eventusecases.CreateEventUseCase
	updateUseCase          *eventusecases.UpdateEventUseCase
	deleteUseCase          *eventusecases.DeleteEventUseCase
	joinUseCase            *eventusecases.JoinEventUseCase
	leaveUseCase           *eventusecases.LeaveEventUseCase
	removeVolunteerUseCase *eventusecases.RemoveVolunteerUseCase
	logger                 logger.Interface
}

func NewEventHandler(
	listUseCase *eventusecases.ListEventsUseCase,
	getUseCase *eventusecases.GetEventUseCase,
	createUseCase *eventusecases.CreateEventUseCase,
	updateUseCase *eventusecases.UpdateEventUseCase,
	deleteUseCase *eventusecases.DeleteEventUseCase,
	joinUseCase *eventusecases.JoinEventUseCase,
	leaveUseCase *eventusecases.LeaveEventUseCase,
	removeVolunteerUseCase *eventusecases.RemoveVolunteerUseCase,
	logger logger.Interface,
) *EventHandler {
	return &EventHandler{
		listUseCase:            listUseCase,
		getUseCase:             getUseCase,
		createUseCase:          createUseCase,
		updateUseCase:          updateUseCase,
		deleteUseCase:          deleteUseCase,
		joinUseCase:            joinUseCase,
		leaveUseCase:           leaveUseCase,
		removeVolunteerUseCase: removeVolunteerUseCase,
		logger:                 logger,
	}
}

// List handles GET /api/events.
func (h *EventHandler) List(c *gin.Context) {
	result, err := h.listUseCase.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Get handles GET /api/events/:id.
func (h *EventHandler) Get(c *gin.Context) {
	eventID, err := utils.ParseUintParam(c, "id", "event")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), eventusecases.GetEventQuery{EventID: eventID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Create handles POST /api/events.
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), eventusecases.CreateEventCommand{
		Title:         req.Title,
		Description:   req.Description,
		Date:          req.Date,
		Time:          req.Time,
		Location:      req.Location,
		Category:      req.Category,
		MaxVolunteers: req.MaxVolunteers,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "event created successfully")
}

// Update handles PUT /api/events/:id.
func (h *EventHandler) Update(c *gin.Context) {
	eventID, err := utils.ParseUintParam(c, "id", "event")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), eventusecases.UpdateEventCommand{
		EventID:       eventID,
		Title:         req.Title,
		Description:   req.Description,
		Date:          req.Date,
		Time:          req.Time,
		Location:      req.Location,
		Category:      req.Category,
		MaxVolunteers: req.MaxVolunteers,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "event updated successfully", result)
}

// Delete handles DELETE /api/events/:id.
func (h *EventHandler) Delete(c *gin.Context) {
	eventID, err := utils.ParseUintParam(c, "id", "event")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), eventusecases.DeleteEventCommand{EventID: eventID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "event deleted successfully", nil)
}

// Join handles POST /api/events/:id/join.
func (h *EventHandler) Join(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	eventID, err := utils.ParseUintParam(c, "id", "event")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.joinUseCase.Execute(c.Request.Context(), eventusecases.JoinEventCommand{
		EventID: eventID,
		UserID:  userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "joined event successfully", result)
}

// Leave handles POST /api/events/:id/leave.
func (h *EventHandler) Leave(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	eventID, err := utils.ParseUintParam(c, "id", "event")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.leaveUseCase.Execute(c.Request.Context(), eventusecases.LeaveEventCommand{
		EventID: eventID,
		UserID:  userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "left event successfully", result)
}

// RemoveVolunteer handles DELETE /api/events/:id/volunteers/:userId.
func (h *EventHandler) RemoveVolunteer(c *gin.Context) {
	eventID, err := utils.ParseUintParam(c, "id", "event")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, err := utils.ParseUintParam(c, "userId", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.removeVolunteerUseCase.Execute(c.Request.Context(), eventusecases.RemoveVolunteerCommand{
		EventID: eventID,
		UserID:  userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "volunteer removed successfully", result)
}
