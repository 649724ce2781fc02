package response_models

type LoginResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

type UserInfo struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Role          string `json:"role"`
	PhoneVerified bool   `json:"phone_verified"`
}

type VerifyOtpResponse struct {
	ResetToken string `json:"reset_token"`
}

// OtpRateLimited carries the seconds left on a still-valid code.
type OtpRateLimited struct {
	RetryAfterSeconds int64 `json:"retry_after_seconds"`
}
