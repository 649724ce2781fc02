package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"phka/internal/models/db_models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&db_models.User{},
		&db_models.Plan{},
		&db_models.UserPlan{},
		&db_models.Event{},
		&db_models.Schedule{},
		&db_models.Shift{},
		&db_models.Timeline{},
		&db_models.Guest{},
		&db_models.Tag{},
		&db_models.Group{},
		&db_models.Gift{},
		&db_models.Expense{},
		&db_models.Template{},
		&db_models.EventTemplate{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func seedUser(t *testing.T, db *gorm.DB, phone string) *db_models.User {
	t.Helper()

	user := &db_models.User{Phone: phone, Name: "Test User", PhoneVerified: true}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedEvent(t *testing.T, db *gorm.DB, userID uuid.UUID, slug string) *db_models.Event {
	t.Helper()

	event := &db_models.Event{
		UserID: userID,
		Name:   "Wedding of A and B",
		Type:   "wedding",
		Status: db_models.EventStatusDraft,
		Slug:   slug,
	}
	if err := db.Create(event).Error; err != nil {
		t.Fatalf("seed event: %v", err)
	}
	return event
}

func seedPlanWithLimits(t *testing.T, db *gorm.DB, userID uuid.UUID, guests, templates, exports int) *db_models.UserPlan {
	t.Helper()

	plan := &db_models.Plan{
		Code:             "test-" + uuid.NewString()[:8],
		Name:             "Test Plan",
		LimitGuests:      guests,
		LimitTemplates:   templates,
		LimitExportExcel: exports,
	}
	if err := db.Create(plan).Error; err != nil {
		t.Fatalf("seed plan: %v", err)
	}

	userPlan := &db_models.UserPlan{UserID: userID, PlanID: plan.ID}
	if err := db.Create(userPlan).Error; err != nil {
		t.Fatalf("seed user plan: %v", err)
	}
	return userPlan
}

// fakeSMS records outgoing messages instead of hitting a gateway.
type fakeSMS struct {
	sent []string
}

func (f *fakeSMS) Send(ctx context.Context, to string, content string) error {
	f.sent = append(f.sent, to+": "+content)
	return nil
}
