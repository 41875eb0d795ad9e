package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	announcementusecases "volunteerhub/internal/application/announcement/usecases"
	"volunteerhub/internal/interfaces/dto"
	"volunteerhub/internal/shared/logger"
	"volunteerhub/internal/shared/utils"
)

// AnnouncementHandler handles announcement distribution HTTP requests.
type AnnouncementHandler struct {
	sendUseCase     *announcementusecases.SendAnnouncementUseCase
	listMineUseCase *announcementusecases.ListMyAnnouncementsUseCase
	markReadUseCase *announcementusecases.MarkAnnouncementAsReadUseCase
	logger          logger.Interface
}

func NewAnnouncementHandler(
	sendUseCase *announcementusecases.SendAnnouncementUseCase,
	listMineUseCase *announcementusecases.ListMyAnnouncementsUseCase,
	markReadUseCase *announcementusecases.MarkAnnouncementAsReadUseCase,
	logger logger.Interface,
) *AnnouncementHandler {
	return &AnnouncementHandler{
		sendUseCase:     sendUseCase,
		listMineUseCase: listMineUseCase,
		markReadUseCase: markReadUseCase,
		logger:          logger,
	}
}

type sendAnnouncementResponse struct {
	Announcement *announcementusecases.AnnouncementDTO `json:"announcement"`
	SentTo       int                                   `json:"sentTo"`
}

// Send handles POST /api/events/:id/announce.
func (h *AnnouncementHandler) Send(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	eventID, err := utils.ParseUintParam(c, "id", "event")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.SendAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.sendUseCase.Execute(c.Request.Context(), announcementusecases.SendAnnouncementCommand{
		EventID: eventID,
		UserID:  userID,
		Title:   req.Title,
		Message: req.Message,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, sendAnnouncementResponse{
		Announcement: result.Announcement,
		SentTo:       result.SentTo,
	}, "announcement sent successfully")
}

// ListMine handles GET /api/announcements/my-announcements.
func (h *AnnouncementHandler) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := h.listMineUseCase.Execute(c.Request.Context(), announcementusecases.ListMyAnnouncementsQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// MarkRead handles POST /api/announcements/:id/read.
func (h *AnnouncementHandler) MarkRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	announcementID, err := utils.ParseUintParam(c, "id", "announcement")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.markReadUseCase.Execute(c.Request.Context(), announcementusecases.MarkAnnouncementAsReadCommand{
		AnnouncementID: announcementID,
		UserID:         userID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "announcement marked as read", nil)
}
