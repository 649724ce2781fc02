package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"phka/internal/models/db_models"
)

type UserRepository interface {
	Insert(ctx context.Context, user *db_models.User) error
	Update(ctx context.Context, user *db_models.User) error
	FindByID(ctx context.Context, id string) (*db_models.User, error)
	FindByPhone(ctx context.Context, phone string) (*db_models.User, error)
	FindByTelegramID(ctx context.Context, telegramID int64) (*db_models.User, error)
	GetAll(ctx context.Context) ([]db_models.User, error)

	SetOtp(ctx context.Context, userID string, code string, expiresAt time.Time) error
	// ClearOtp removes both OTP fields in one update so a verified code
	// can never pass twice.
	ClearOtp(ctx context.Context, userID string, markVerified bool) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Insert(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Update(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) FindByPhone(ctx context.Context, phone string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "phone = ?", phone).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) FindByTelegramID(ctx context.Context, telegramID int64) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "telegram_id = ?", telegramID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) GetAll(ctx context.Context) ([]db_models.User, error) {
	var users []db_models.User
	err := r.db.WithContext(ctx).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) SetOtp(ctx context.Context, userID string, code string, expiresAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&db_models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"otp_code":       code,
			"otp_expires_at": expiresAt,
		}).Error
}

func (r *userRepository) ClearOtp(ctx context.Context, userID string, markVerified bool) error {
	updates := map[string]interface{}{
		"otp_code":       nil,
		"otp_expires_at": nil,
	}
	if markVerified {
		updates["phone_verified"] = true
	}
	return r.db.WithContext(ctx).
		Model(&db_models.User{}).
		Where("id = ?", userID).
		Updates(updates).Error
}
