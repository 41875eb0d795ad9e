package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"volunteerhub/internal/shared/constants"
	"volunteerhub/internal/shared/utils"
)

// currentUserID extracts the authenticated user ID set by the auth
// middleware. It aborts with 401 when the identity is missing.
func currentUserID(c *gin.Context) (uint, bool) {
	raw, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return 0, false
	}

	userID, ok := raw.(uint)
	if !ok || userID == 0 {
		utils.ErrorResponse(c, http.StatusInternalServerError, "internal error")
		return 0, false
	}
	return userID, true
}
