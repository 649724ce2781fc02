package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"phka/internal/models/db_models"
)

type IPlanRepository interface {
	Insert(ctx context.Context, plan *db_models.Plan) error
	Update(ctx context.Context, plan *db_models.Plan) error
	Delete(ctx context.Context, planID string) error
	GetPlanInfoById(ctx context.Context, planID string) (*db_models.Plan, error)
	GetAllPlans(ctx context.Context) ([]db_models.Plan, error)

	AssignToUser(ctx context.Context, userPlan *db_models.UserPlan) error
	FindAssignment(ctx context.Context, userID, planID string) (*db_models.UserPlan, error)
	FindActiveByUser(ctx context.Context, userID string) (*db_models.UserPlan, error)
	IncrementExportsUsed(ctx context.Context, userPlanID string) error
}

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) IPlanRepository {
	return &PlanRepository{db: db}
}

func (p *PlanRepository) Insert(ctx context.Context, plan *db_models.Plan) error {
	return p.db.WithContext(ctx).Create(plan).Error
}

func (p *PlanRepository) Update(ctx context.Context, plan *db_models.Plan) error {
	return p.db.WithContext(ctx).Save(plan).Error
}

func (p *PlanRepository) Delete(ctx context.Context, planID string) error {
	return p.db.WithContext(ctx).Delete(&db_models.Plan{}, "id = ?", planID).Error
}

func (p *PlanRepository) GetPlanInfoById(ctx context.Context, planID string) (*db_models.Plan, error) {

	var plan db_models.Plan
	err := p.db.WithContext(ctx).First(&plan, "id = ?", planID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &plan, nil
}

func (p *PlanRepository) GetAllPlans(ctx context.Context) ([]db_models.Plan, error) {

	var plans []db_models.Plan
	err := p.db.WithContext(ctx).Find(&plans).Error

	if err != nil {
		return nil, err
	}

	return plans, nil
}

func (p *PlanRepository) AssignToUser(ctx context.Context, userPlan *db_models.UserPlan) error {
	return p.db.WithContext(ctx).Create(userPlan).Error
}

func (p *PlanRepository) FindAssignment(ctx context.Context, userID, planID string) (*db_models.UserPlan, error) {
	var up db_models.UserPlan
	err := p.db.WithContext(ctx).
		Where("user_id = ? AND plan_id = ?", userID, planID).
		First(&up).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &up, nil
}

// FindActiveByUser returns the most recent assignment with the plan
// preloaded so effective limits can be resolved.
func (p *PlanRepository) FindActiveByUser(ctx context.Context, userID string) (*db_models.UserPlan, error) {
	var up db_models.UserPlan
	err := p.db.WithContext(ctx).
		Preload("Plan").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&up).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &up, nil
}

func (p *PlanRepository) IncrementExportsUsed(ctx context.Context, userPlanID string) error {
	return p.db.WithContext(ctx).
		Model(&db_models.UserPlan{}).
		Where("id = ?", userPlanID).
		UpdateColumn("exports_used", gorm.Expr("exports_used + 1")).Error
}
