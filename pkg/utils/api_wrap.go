package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

func respondErrorData(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

// HandleServiceError maps service sentinels to HTTP statuses and
// translation keys the client can toast.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrRecordNotFound):
		RespondError(c, http.StatusNotFound, "error.not_found")
	case errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, "error.account_not_found")
	case errors.Is(err, ErrPhoneAlreadyRegistered):
		RespondError(c, http.StatusConflict, "error.phone_already_registered")
	case errors.Is(err, ErrPlanAlreadyAssigned):
		RespondError(c, http.StatusConflict, "error.plan_already_assigned")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "error.invalid_credentials")
	case errors.Is(err, ErrOtpNotFound):
		RespondError(c, http.StatusNotFound, "error.otp_not_found")
	case errors.Is(err, ErrOtpExpired):
		RespondError(c, http.StatusBadRequest, "error.otp_expired")
	case errors.Is(err, ErrOtpInvalid):
		RespondError(c, http.StatusBadRequest, "error.otp_invalid")
	case errors.Is(err, ErrResetTokenInvalid):
		RespondError(c, http.StatusBadRequest, "error.reset_token_invalid")
	case errors.Is(err, ErrTelegramSignature):
		RespondError(c, http.StatusUnauthorized, "error.telegram_signature")
	case errors.Is(err, ErrPlanLimitReached):
		RespondError(c, http.StatusForbidden, "error.plan_limit_reached")
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "error.invalid_input")
	case errors.Is(err, ErrSmsGatewayFailure):
		// The upstream body travels in the message so the client sees
		// what the gateway said, not just a generic 500.
		log.Printf("SMS gateway error: %v", err)
		RespondError(c, http.StatusInternalServerError, err.Error())
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "error.internal")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "error.internal")
	}
}

// HandleRateLimited is the one error that carries data: the seconds
// remaining on a still-valid OTP.
func HandleRateLimited(c *gin.Context, retryAfter int64) {
	respondErrorData(c, http.StatusTooManyRequests, "error.otp_rate_limited",
		gin.H{"retry_after_seconds": retryAfter})
}
