package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"phka/internal/models/request_models"
	"phka/internal/services"
	"phka/internal/telegram"
	"phka/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
	botManager  *telegram.BotManager
}

func NewAuthController(authService services.AuthServiceInterface, botManager *telegram.BotManager) *AuthController {
	return &AuthController{
		authService: authService,
		botManager:  botManager,
	}
}

// SendOtp godoc
// @Summary Send a verification code
// @Description Sends a 6-digit OTP to the phone for register or forgot-password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.SendOtpRequest true "OTP request payload"
// @Success 200 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Router /auth/send-otp [post]
func (a *AuthController) SendOtp(c *gin.Context) {
	var req request_models.SendOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	retryAfter, err := a.authService.SendOtp(c.Request.Context(), req.Phone, req.Purpose)
	if err != nil {
		if errors.Is(err, utils.ErrOtpStillValid) {
			utils.HandleRateLimited(c, retryAfter)
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "OTP sent")
}

// VerifyOtp godoc
// @Summary Verify an OTP code
// @Description Validates the code and returns a single-use reset token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.VerifyOtpRequest true "OTP verification payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /auth/verify-otp [post]
func (a *AuthController) VerifyOtp(c *gin.Context) {
	var req request_models.VerifyOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := a.authService.VerifyOtp(c.Request.Context(), req.Phone, req.OtpCode)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "OTP verified")
}

// SetPassword godoc
// @Summary Set the account password
// @Description Consumes the reset token from verify-otp and stores the password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.SetPasswordRequest true "Password payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /auth/set-password [post]
func (a *AuthController) SetPassword(c *gin.Context) {
	var req request_models.SetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := a.authService.SetPassword(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Password set")
}

// Login godoc
// @Summary Login with phone and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := a.authService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Login successful")
}

// TelegramLogin validates the login-widget payload and signs the user in.
func (a *AuthController) TelegramLogin(c *gin.Context) {
	var req request_models.TelegramLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := a.authService.TelegramLogin(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Login successful")
}

// TelegramLinkCode issues a code the user forwards to the bot to link
// their chat. Requires an authenticated session.
func (a *AuthController) TelegramLinkCode(c *gin.Context) {
	userID := c.GetString("user_id")

	code, err := a.botManager.IssueLoginCode(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"code": code}, "Send this code to the bot with /start")
}

// TelegramLinkStatus is polled by the client until the bot consumes
// the code; pending=false means the chat is linked or the code expired,
// and the profile tells which.
func (a *AuthController) TelegramLinkStatus(c *gin.Context) {
	pending, err := a.botManager.LoginCodePending(c.Request.Context(), c.Param("code"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"pending": pending}, "Link status")
}
