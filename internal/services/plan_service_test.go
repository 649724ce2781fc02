package services

import (
	"context"
	"errors"
	"testing"

	"phka/internal/models/request_models"
	"phka/internal/repositories"
	"phka/pkg/utils"
)

func buildPlanService(t *testing.T) (PlanServiceInterface, repositories.IPlanRepository, *testDeps) {
	t.Helper()

	db := newTestDB(t)
	planRepo := repositories.NewPlanRepository(db)
	svc := NewPlanService(planRepo, repositories.NewUserRepository(db))
	return svc, planRepo, &testDeps{db: db, planRepo: planRepo}
}

func TestAssignPlan_OncePerUserAndPlan(t *testing.T) {
	svc, _, deps := buildPlanService(t)
	ctx := context.Background()

	user := seedUser(t, deps.db, "+85512900001")

	plan, err := svc.CreatePlan(ctx, request_models.CreatePlanRequest{
		Code:        "standard",
		Name:        "Standard",
		PriceMinor:  999,
		LimitGuests: 50,
	})
	if err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}

	assigned, err := svc.AssignPlan(ctx, request_models.AssignPlanRequest{
		UserID: user.ID.String(),
		PlanID: plan.ID.String(),
	})
	if err != nil {
		t.Fatalf("AssignPlan: %v", err)
	}
	if assigned.UserID != user.ID || assigned.PlanID != plan.ID {
		t.Error("assignment bound to the wrong rows")
	}

	_, err = svc.AssignPlan(ctx, request_models.AssignPlanRequest{
		UserID: user.ID.String(),
		PlanID: plan.ID.String(),
	})
	if !errors.Is(err, utils.ErrPlanAlreadyAssigned) {
		t.Fatalf("err = %v, want ErrPlanAlreadyAssigned", err)
	}
}

func TestAssignPlan_OverridesShadowDefaults(t *testing.T) {
	svc, planRepo, deps := buildPlanService(t)
	ctx := context.Background()

	user := seedUser(t, deps.db, "+85512900002")
	plan, err := svc.CreatePlan(ctx, request_models.CreatePlanRequest{
		Code:        "premium",
		Name:        "Premium",
		LimitGuests: 100,
	})
	if err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}

	if _, err := svc.AssignPlan(ctx, request_models.AssignPlanRequest{
		UserID:      user.ID.String(),
		PlanID:      plan.ID.String(),
		LimitGuests: 250,
	}); err != nil {
		t.Fatalf("AssignPlan: %v", err)
	}

	active, err := planRepo.FindActiveByUser(ctx, user.ID.String())
	if err != nil {
		t.Fatalf("FindActiveByUser: %v", err)
	}
	if active == nil {
		t.Fatal("no active assignment")
	}
	if got := active.EffectiveGuestLimit(); got != 250 {
		t.Errorf("effective guest limit = %d, want the 250 override", got)
	}
	if got := active.EffectiveTemplateLimit(); got != plan.LimitTemplates {
		t.Errorf("template limit = %d, want the plan default %d", got, plan.LimitTemplates)
	}
}

func TestAssignPlan_UnknownUser(t *testing.T) {
	svc, _, _ := buildPlanService(t)

	plan, err := svc.CreatePlan(context.Background(), request_models.CreatePlanRequest{Code: "x", Name: "X"})
	if err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}

	_, err = svc.AssignPlan(context.Background(), request_models.AssignPlanRequest{
		UserID: "0b0b0b0b-0000-0000-0000-000000000000",
		PlanID: plan.ID.String(),
	})
	if !errors.Is(err, utils.ErrAccountNotFound) {
		t.Fatalf("err = %v, want ErrAccountNotFound", err)
	}
}
