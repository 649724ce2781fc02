package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"phka/internal/models/db_models"
)

type DashboardRepository interface {
	CountTotalUsers(ctx context.Context) (int64, error)
	CountNewUsers(ctx context.Context, start, end time.Time) (int64, error)
	CountTotalEvents(ctx context.Context) (int64, error)
	PlanMix(ctx context.Context) ([]PlanMixRow, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

type PlanMixRow struct {
	PlanCode string `gorm:"column:plan_code"`
	PlanName string `gorm:"column:plan_name"`
	Count    int64  `gorm:"column:count"`
}

func (r *dashboardRepository) CountTotalUsers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.User{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountNewUsers(ctx context.Context, start, end time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.User{}).
		Where("created_at BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountTotalEvents(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Event{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) PlanMix(ctx context.Context) ([]PlanMixRow, error) {
	var rows []PlanMixRow
	err := r.db.WithContext(ctx).
		Table("user_plans up").
		Select("p.code AS plan_code, p.name AS plan_name, COUNT(*) AS count").
		Joins("JOIN plans p ON p.id = up.plan_id").
		Where("up.deleted_at IS NULL").
		Group("p.code, p.name").
		Order("count DESC").
		Find(&rows).Error
	return rows, err
}
