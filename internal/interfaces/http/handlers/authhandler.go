package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userusecases "volunteerhub/internal/application/user/usecases"
	"volunteerhub/internal/interfaces/dto"
	"volunteerhub/internal/shared/logger"
	"volunteerhub/internal/shared/utils"
)

// AuthHandler handles authentication HTTP requests.
type AuthHandler struct {
	loginUseCase    *userusecases.LoginWithPasswordUseCase
	registerUseCase *userusecases.RegisterWithPasswordUseCase
	logger          logger.Interface
}

func NewAuthHandler(
	loginUseCase *userusecases.LoginWithPasswordUseCase,
	registerUseCase *userusecases.RegisterWithPasswordUseCase,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUseCase:    loginUseCase,
		registerUseCase: registerUseCase,
		logger:          logger,
	}
}

type authResponse struct {
	Token        string                 `json:"token"`
	RefreshToken string                 `json:"refreshToken"`
	ExpiresIn    int64                  `json:"expiresIn"`
	User         *userusecases.UserDTO  `json:"user"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), userusecases.LoginWithPasswordCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", authResponse{
		Token:        result.AccessToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    result.ExpiresIn,
		User:         result.User,
	})
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), userusecases.RegisterWithPasswordCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "registration successful", authResponse{
		Token:        result.AccessToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    result.ExpiresIn,
		User:         result.User,
	})
}
