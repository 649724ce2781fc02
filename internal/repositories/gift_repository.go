package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"phka/internal/models/db_models"
)

type GiftRepository interface {
	Insert(ctx context.Context, gift *db_models.Gift) error
	Update(ctx context.Context, gift *db_models.Gift) error
	Delete(ctx context.Context, giftID string) error
	FindByID(ctx context.Context, id string) (*db_models.Gift, error)
	ListByEvent(ctx context.Context, eventID string) ([]db_models.Gift, error)

	SumByCurrency(ctx context.Context, eventID string, currency db_models.CurrencyType) (float64, error)
	CountByCurrency(ctx context.Context, eventID string, currency db_models.CurrencyType) (int64, error)
}

type giftRepository struct {
	db *gorm.DB
}

func NewGiftRepository(db *gorm.DB) GiftRepository {
	return &giftRepository{db: db}
}

func (r *giftRepository) Insert(ctx context.Context, gift *db_models.Gift) error {
	return r.db.WithContext(ctx).Create(gift).Error
}

func (r *giftRepository) Update(ctx context.Context, gift *db_models.Gift) error {
	return r.db.WithContext(ctx).Save(gift).Error
}

func (r *giftRepository) Delete(ctx context.Context, giftID string) error {
	return r.db.WithContext(ctx).Delete(&db_models.Gift{}, "id = ?", giftID).Error
}

func (r *giftRepository) FindByID(ctx context.Context, id string) (*db_models.Gift, error) {
	var gift db_models.Gift
	err := r.db.WithContext(ctx).Preload("Guest").First(&gift, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &gift, nil
}

func (r *giftRepository) ListByEvent(ctx context.Context, eventID string) ([]db_models.Gift, error) {
	var gifts []db_models.Gift
	err := r.db.WithContext(ctx).
		Preload("Guest").
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Find(&gifts).Error
	if err != nil {
		return nil, err
	}
	return gifts, nil
}

// SumByCurrency sums the currency's own amount column only, so USD and
// KHR totals never cross-contaminate.
func (r *giftRepository) SumByCurrency(ctx context.Context, eventID string, currency db_models.CurrencyType) (float64, error) {
	column := "amount_usd"
	if currency == db_models.CurrencyKHR {
		column = "amount_khr"
	}

	var sum *float64
	err := r.db.WithContext(ctx).
		Model(&db_models.Gift{}).
		Select("SUM("+column+")").
		Where("event_id = ? AND currency = ?", eventID, currency).
		Scan(&sum).Error
	if err != nil || sum == nil {
		return 0, err
	}
	return *sum, nil
}

func (r *giftRepository) CountByCurrency(ctx context.Context, eventID string, currency db_models.CurrencyType) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Gift{}).
		Where("event_id = ? AND currency = ?", eventID, currency).
		Count(&n).Error
	return n, err
}
