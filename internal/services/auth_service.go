package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"phka/internal/models/db_models"
	"phka/internal/models/request_models"
	"phka/internal/models/response_models"
	"phka/internal/repositories"
	"phka/pkg/otpstore"
	"phka/pkg/utils"
)

const (
	OtpPurposeRegister = "register"
	OtpPurposeForgot   = "forgot"

	otpLength   = 6
	otpTTL      = 2 * time.Minute
	resetTTL    = 10 * time.Minute
	telegramTTL = 24 * time.Hour
)

type AuthServiceInterface interface {
	// SendOtp returns the seconds remaining on a still-valid code when
	// it refuses to reissue one (err == utils.ErrOtpStillValid).
	SendOtp(ctx context.Context, phone, purpose string) (int64, error)
	VerifyOtp(ctx context.Context, phone, otpCode string) (*response_models.VerifyOtpResponse, error)
	SetPassword(ctx context.Context, request request_models.SetPasswordRequest) (*response_models.LoginResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	TelegramLogin(ctx context.Context, request request_models.TelegramLoginRequest) (*response_models.LoginResponse, error)
}

type AuthService struct {
	userRepo repositories.UserRepository
	sms      SMSSender
	tokens   otpstore.TokenStore
	botToken string
	now      func() time.Time
}

func NewAuthService(userRepo repositories.UserRepository, sms SMSSender, tokens otpstore.TokenStore, botToken string) AuthServiceInterface {
	return &AuthService{
		userRepo: userRepo,
		sms:      sms,
		tokens:   tokens,
		botToken: botToken,
		now:      time.Now,
	}
}

func (a *AuthService) SendOtp(ctx context.Context, phone, purpose string) (int64, error) {

	user, err := a.userRepo.FindByPhone(ctx, phone)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}

	switch purpose {
	case OtpPurposeRegister:
		if user != nil && user.PhoneVerified {
			return 0, utils.ErrPhoneAlreadyRegistered
		}
		if user == nil {
			// Placeholder row carrying only the phone and OTP fields;
			// it becomes a real account at set-password.
			user = &db_models.User{Phone: phone}
			if err := a.userRepo.Insert(ctx, user); err != nil {
				return 0, utils.ErrDatabaseError
			}
		}
	case OtpPurposeForgot:
		if user == nil {
			return 0, utils.ErrAccountNotFound
		}
	default:
		return 0, utils.ErrInvalidInput
	}

	// A still-valid code is never reissued; the caller gets the wait.
	if user.OtpExpiresAt != nil && a.now().Before(*user.OtpExpiresAt) {
		remaining := int64(user.OtpExpiresAt.Sub(a.now()).Seconds())
		if remaining < 1 {
			remaining = 1
		}
		return remaining, utils.ErrOtpStillValid
	}

	code, err := utils.GenerateOtpCode(otpLength)
	if err != nil {
		return 0, err
	}

	expiresAt := a.now().Add(otpTTL)
	if err := a.userRepo.SetOtp(ctx, user.ID.String(), code, expiresAt); err != nil {
		return 0, utils.ErrDatabaseError
	}

	content := fmt.Sprintf("Your verification code is %s. It expires in 2 minutes.", code)
	if err := a.sms.Send(ctx, phone, content); err != nil {
		return 0, err
	}

	return 0, nil
}

func (a *AuthService) VerifyOtp(ctx context.Context, phone, otpCode string) (*response_models.VerifyOtpResponse, error) {

	user, err := a.userRepo.FindByPhone(ctx, phone)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil || user.OtpCode == nil || user.OtpExpiresAt == nil {
		return nil, utils.ErrOtpNotFound
	}

	if a.now().After(*user.OtpExpiresAt) {
		return nil, utils.ErrOtpExpired
	}

	if *user.OtpCode != otpCode {
		return nil, utils.ErrOtpInvalid
	}

	// Single-use: both fields are cleared with the success response.
	markVerified := !user.PhoneVerified
	if err := a.userRepo.ClearOtp(ctx, user.ID.String(), markVerified); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resetToken, err := utils.GenerateSecureToken(32)
	if err != nil {
		return nil, err
	}
	if err := a.tokens.Set(ctx, "reset:"+phone, resetToken, resetTTL); err != nil {
		return nil, err
	}

	return &response_models.VerifyOtpResponse{ResetToken: resetToken}, nil
}

func (a *AuthService) SetPassword(ctx context.Context, request request_models.SetPasswordRequest) (*response_models.LoginResponse, error) {

	stored, err := a.tokens.Consume(ctx, "reset:"+request.Phone)
	if err != nil {
		return nil, err
	}
	if stored == "" || stored != request.ResetToken {
		return nil, utils.ErrResetTokenInvalid
	}

	user, err := a.userRepo.FindByPhone(ctx, request.Phone)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = hashed
	if request.Name != "" {
		user.Name = request.Name
	}
	if err := a.userRepo.Update(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return a.issueSession(user)
}

func (a *AuthService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {

	user, err := a.userRepo.FindByPhone(ctx, request.Phone)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return a.issueSession(user)
}

func (a *AuthService) TelegramLogin(ctx context.Context, request request_models.TelegramLoginRequest) (*response_models.LoginResponse, error) {

	if !a.verifyTelegramHash(request) {
		return nil, utils.ErrTelegramSignature
	}

	if a.now().Sub(time.Unix(request.AuthDate, 0)) > telegramTTL {
		return nil, utils.ErrTelegramSignature
	}

	user, err := a.userRepo.FindByTelegramID(ctx, request.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if user == nil {
		name := strings.TrimSpace(request.FirstName + " " + request.LastName)
		user = &db_models.User{
			Name:       name,
			Phone:      fmt.Sprintf("tg:%d", request.ID),
			TelegramID: &request.ID,
		}
		if err := a.userRepo.Insert(ctx, user); err != nil {
			return nil, utils.ErrDatabaseError
		}
		log.Printf("Created account for telegram user %d", request.ID)
	}

	return a.issueSession(user)
}

// verifyTelegramHash checks HMAC-SHA256 over the sorted key=value lines
// of the widget payload, keyed by SHA256(bot token).
func (a *AuthService) verifyTelegramHash(request request_models.TelegramLoginRequest) bool {
	fields := map[string]string{
		"id":        fmt.Sprintf("%d", request.ID),
		"auth_date": fmt.Sprintf("%d", request.AuthDate),
	}
	if request.FirstName != "" {
		fields["first_name"] = request.FirstName
	}
	if request.LastName != "" {
		fields["last_name"] = request.LastName
	}
	if request.Username != "" {
		fields["username"] = request.Username
	}
	if request.PhotoURL != "" {
		fields["photo_url"] = request.PhotoURL
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+fields[k])
	}
	dataCheck := strings.Join(lines, "\n")

	secret := sha256.Sum256([]byte(a.botToken))
	mac := hmac.New(sha256.New, secret[:])
	mac.Write([]byte(dataCheck))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(strings.ToLower(request.Hash)))
}

func (a *AuthService) issueSession(user *db_models.User) (*response_models.LoginResponse, error) {
	token, err := utils.CreateToken(user.ID, user.Role)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.LoginResponse{
		Token: token,
		User: response_models.UserInfo{
			ID:            user.ID.String(),
			Name:          user.Name,
			Phone:         user.Phone,
			Role:          user.Role,
			PhoneVerified: user.PhoneVerified,
		},
	}, nil
}
