package utils

import "errors"

var (
	ErrRecordNotFound         = errors.New("record not found")
	ErrAccountNotFound        = errors.New("account not found")
	ErrPhoneAlreadyRegistered = errors.New("phone already registered")
	ErrPlanAlreadyAssigned    = errors.New("plan already assigned")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrOtpNotFound            = errors.New("no otp on record")
	ErrOtpExpired             = errors.New("otp expired")
	ErrOtpInvalid             = errors.New("otp does not match")
	ErrOtpStillValid          = errors.New("otp still valid")
	ErrResetTokenInvalid      = errors.New("reset token invalid or consumed")
	ErrTelegramSignature      = errors.New("telegram signature mismatch")
	ErrPlanLimitReached       = errors.New("plan limit reached")
	ErrInvalidInput           = errors.New("invalid input")
	ErrDatabaseError          = errors.New("database error")
	ErrSmsGatewayFailure      = errors.New("sms gateway failure")
)
