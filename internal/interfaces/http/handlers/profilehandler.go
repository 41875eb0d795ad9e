package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	eventusecases "volunteerhub/internal/application/event/usecases"
	userusecases "volunteerhub/internal/application/user/usecases"
	"volunteerhub/internal/interfaces/dto"
	"volunteerhub/internal/shared/logger"
	"volunteerhub/internal/shared/utils"
)

// ProfileHandler handles the authenticated user's own resources.
type ProfileHandler struct {
	getProfileUseCase    *userusecases.GetProfileUseCase
	updateProfileUseCase *userusecases.UpdateProfileUseCase
	listMyEventsUseCase  *eventusecases.ListMyEventsUseCase
	logger               logger.Interface
}

func NewProfileHandler(
	getProfileUseCase *userusecases.GetProfileUseCase,
	updateProfileUseCase *userusecases.UpdateProfileUseCase,
	listMyEventsUseCase *eventusecases.ListMyEventsUseCase,
	logger logger.Interface,
) *ProfileHandler {
	return &ProfileHandler{
		getProfileUseCase:    getProfileUseCase,
		updateProfileUseCase: updateProfileUseCase,
		listMyEventsUseCase:  listMyEventsUseCase,
		logger:               logger,
	}
}

// GetProfile handles GET /api/users/profile.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := h.getProfileUseCase.Execute(c.Request.Context(), userusecases.GetProfileQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateProfile handles PUT /api/users/profile.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateProfileUseCase.Execute(c.Request.Context(), userusecases.UpdateProfileCommand{
		UserID:  userID,
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "profile updated successfully", result)
}

// MyEvents handles GET /api/users/my-events.
func (h *ProfileHandler) MyEvents(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := h.listMyEventsUseCase.Execute(c.Request.Context(), eventusecases.ListMyEventsQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
