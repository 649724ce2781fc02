package request_models

type SendOtpRequest struct {
	Phone   string `json:"phone" binding:"required"`
	Purpose string `json:"purpose" binding:"required,oneof=register forgot"`
}

type VerifyOtpRequest struct {
	Phone   string `json:"phone" binding:"required"`
	OtpCode string `json:"otp_code" binding:"required,len=6"`
}

type SetPasswordRequest struct {
	Phone      string `json:"phone" binding:"required"`
	ResetToken string `json:"reset_token" binding:"required"`
	Password   string `json:"password" binding:"required,min=6"`
	Name       string `json:"name"`
}

type LoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TelegramLoginRequest mirrors the fields of the Telegram login widget
// callback. Hash signs the rest of the payload.
type TelegramLoginRequest struct {
	ID        int64  `json:"id" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	PhotoURL  string `json:"photo_url"`
	AuthDate  int64  `json:"auth_date" binding:"required"`
	Hash      string `json:"hash" binding:"required"`
}
