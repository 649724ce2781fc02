package db_models

import "time"

type User struct {
	BaseModel
	Name          string
	Phone         string `gorm:"uniqueIndex"`
	Email         *string
	PasswordHash  string
	Role          string `gorm:"default:user"` // "user" | "admin"
	TelegramID    *int64 `gorm:"uniqueIndex"`
	TelegramChat  *int64
	PhoneVerified bool `gorm:"default:false"`

	// OTP fields live on the row and are cleared on successful verification.
	OtpCode      *string
	OtpExpiresAt *time.Time

	Events    []Event
	UserPlans []UserPlan
}
