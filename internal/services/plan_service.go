package services

import (
	"context"

	"github.com/google/uuid"

	"phka/internal/models/db_models"
	"phka/internal/models/request_models"
	"phka/internal/repositories"
	"phka/pkg/utils"
)

type PlanServiceInterface interface {
	CreatePlan(ctx context.Context, request request_models.CreatePlanRequest) (*db_models.Plan, error)
	GetAllPlans(ctx context.Context) ([]db_models.Plan, error)
	GetPlanInfoById(ctx context.Context, planID string) (*db_models.Plan, error)
	DeletePlan(ctx context.Context, planID string) error
	AssignPlan(ctx context.Context, request request_models.AssignPlanRequest) (*db_models.UserPlan, error)
}

type PlanService struct {
	planRepo repositories.IPlanRepository
	userRepo repositories.UserRepository
}

func NewPlanService(planRepo repositories.IPlanRepository, userRepo repositories.UserRepository) PlanServiceInterface {
	return &PlanService{
		planRepo: planRepo,
		userRepo: userRepo,
	}
}

func (p *PlanService) CreatePlan(ctx context.Context, request request_models.CreatePlanRequest) (*db_models.Plan, error) {

	currency := request.Currency
	if currency == "" {
		currency = "USD"
	}

	plan := &db_models.Plan{
		Code:             request.Code,
		Name:             request.Name,
		NameKh:           request.NameKh,
		PriceMinor:       request.PriceMinor,
		Currency:         currency,
		LimitGuests:      request.LimitGuests,
		LimitTemplates:   request.LimitTemplates,
		LimitExportExcel: request.LimitExportExcel,
	}
	if request.Description != "" {
		plan.Description = &request.Description
	}

	if err := p.planRepo.Insert(ctx, plan); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return plan, nil
}

func (p *PlanService) GetAllPlans(ctx context.Context) ([]db_models.Plan, error) {
	plans, err := p.planRepo.GetAllPlans(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return plans, nil
}

func (p *PlanService) GetPlanInfoById(ctx context.Context, planID string) (*db_models.Plan, error) {

	plan, err := p.planRepo.GetPlanInfoById(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrRecordNotFound
	}
	return plan, nil
}

func (p *PlanService) DeletePlan(ctx context.Context, planID string) error {
	plan, err := p.planRepo.GetPlanInfoById(ctx, planID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if plan == nil {
		return utils.ErrRecordNotFound
	}
	if err := p.planRepo.Delete(ctx, planID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (p *PlanService) AssignPlan(ctx context.Context, request request_models.AssignPlanRequest) (*db_models.UserPlan, error) {

	user, err := p.userRepo.FindByID(ctx, request.UserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}

	plan, err := p.planRepo.GetPlanInfoById(ctx, request.PlanID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrRecordNotFound
	}

	existing, err := p.planRepo.FindAssignment(ctx, request.UserID, request.PlanID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrPlanAlreadyAssigned
	}

	userPlan := &db_models.UserPlan{
		UserID:           uuid.MustParse(request.UserID),
		PlanID:           plan.ID,
		LimitGuests:      request.LimitGuests,
		LimitTemplates:   request.LimitTemplates,
		LimitExportExcel: request.LimitExportExcel,
	}

	if err := p.planRepo.AssignToUser(ctx, userPlan); err != nil {
		return nil, utils.ErrDatabaseError
	}

	userPlan.Plan = *plan
	return userPlan, nil
}
