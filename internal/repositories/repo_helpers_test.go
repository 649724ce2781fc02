package repositories

import (
	"testing"

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

func mustCreate(t *testing.T, db *gorm.DB, value interface{}) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("create %T: %v", value, err)
	}
}

func newEvent(t *testing.T, db *gorm.DB, slug string) *db_models.Event {
	t.Helper()

	user := &db_models.User{Phone: "+85512" + slug, Name: "Owner"}
	mustCreate(t, db, user)

	event := &db_models.Event{
		UserID: user.ID,
		Name:   "Event " + slug,
		Type:   "wedding",
		Status: db_models.EventStatusDraft,
		Slug:   slug,
	}
	mustCreate(t, db, event)
	return event
}

func countRows(t *testing.T, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()

	var n int64
	if err := db.Model(model).Where(query, args...).Count(&n).Error; err != nil {
		t.Fatalf("count %T: %v", model, err)
	}
	return n
}
