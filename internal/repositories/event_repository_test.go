package repositories

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"phka/internal/models/db_models"
)

func TestDeleteCascade_RemovesEverythingScoped(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewEventRepository(db)

	event := newEvent(t, db, "cascade-target")
	bystander := newEvent(t, db, "bystander")

	schedule := &db_models.Schedule{EventID: event.ID, Name: "Day 1"}
	mustCreate(t, db, schedule)
	shift := &db_models.Shift{ScheduleID: schedule.ID, Name: "Morning"}
	mustCreate(t, db, shift)
	mustCreate(t, db, &db_models.Timeline{ShiftID: shift.ID, Name: "Hair and makeup"})
	mustCreate(t, db, &db_models.Timeline{ShiftID: shift.ID, Name: "Monk blessing"})

	tag := &db_models.Tag{EventID: event.ID, NameEn: "VIP"}
	mustCreate(t, db, tag)
	group := &db_models.Group{EventID: event.ID, NameEn: "Groom Side"}
	mustCreate(t, db, group)

	guest := &db_models.Guest{
		EventID: event.ID,
		Name:    "Sok",
		Tags:    []db_models.Tag{*tag},
		Groups:  []db_models.Group{*group},
	}
	mustCreate(t, db, guest)

	mustCreate(t, db, &db_models.Gift{EventID: event.ID, Currency: db_models.CurrencyUSD, AmountUSD: 20})
	mustCreate(t, db, &db_models.Expense{EventID: event.ID, Name: "Flowers", ActualAmount: 30})

	template := &db_models.Template{Name: "Classic", UniqueName: "classic-cascade", DefaultConfig: []byte(`{}`)}
	mustCreate(t, db, template)
	mustCreate(t, db, &db_models.EventTemplate{EventID: event.ID, TemplateID: template.ID, IsDefault: true})

	// The bystander event keeps a guest to prove scoping.
	mustCreate(t, db, &db_models.Guest{EventID: bystander.ID, Name: "Unrelated"})

	if err := repo.DeleteCascade(ctx, event.ID.String()); err != nil {
		t.Fatalf("DeleteCascade: %v", err)
	}

	checks := []struct {
		name  string
		model interface{}
		query string
		args  []interface{}
	}{
		{"schedules", &db_models.Schedule{}, "event_id = ?", []interface{}{event.ID}},
		{"shifts", &db_models.Shift{}, "schedule_id = ?", []interface{}{schedule.ID}},
		{"timelines", &db_models.Timeline{}, "shift_id = ?", []interface{}{shift.ID}},
		{"guests", &db_models.Guest{}, "event_id = ?", []interface{}{event.ID}},
		{"tags", &db_models.Tag{}, "event_id = ?", []interface{}{event.ID}},
		{"groups", &db_models.Group{}, "event_id = ?", []interface{}{event.ID}},
		{"gifts", &db_models.Gift{}, "event_id = ?", []interface{}{event.ID}},
		{"expenses", &db_models.Expense{}, "event_id = ?", []interface{}{event.ID}},
		{"event templates", &db_models.EventTemplate{}, "event_id = ?", []interface{}{event.ID}},
	}
	for _, c := range checks {
		if n := countRows(t, db, c.model, c.query, c.args...); n != 0 {
			t.Errorf("%s left behind: %d rows", c.name, n)
		}
	}

	var joinRows int64
	if err := db.Raw("SELECT COUNT(*) FROM guest_tags WHERE guest_id = ?", guest.ID).Scan(&joinRows).Error; err != nil {
		t.Fatalf("count guest_tags: %v", err)
	}
	if joinRows != 0 {
		t.Errorf("guest_tags left behind: %d rows", joinRows)
	}

	found, err := repo.FindByID(ctx, event.ID.String())
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found != nil {
		t.Error("event still findable after cascade")
	}

	// The catalog template and the other tenant's data survive.
	if n := countRows(t, db, &db_models.Template{}, "id = ?", template.ID); n != 1 {
		t.Error("catalog template deleted by event cascade")
	}
	if n := countRows(t, db, &db_models.Guest{}, "event_id = ?", bystander.ID); n != 1 {
		t.Error("bystander event's guest deleted")
	}
}

func TestDeleteCascade_MissingEvent(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)

	event := newEvent(t, db, "delete-twice")
	if err := repo.DeleteCascade(context.Background(), event.ID.String()); err != nil {
		t.Fatalf("first delete: %v", err)
	}

	err := repo.DeleteCascade(context.Background(), event.ID.String())
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("second delete err = %v, want gorm.ErrRecordNotFound", err)
	}
}

func TestCountByStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)

	newEvent(t, db, "count-a")
	b := newEvent(t, db, "count-b")
	b.Status = db_models.EventStatusPublished
	if err := db.Save(b).Error; err != nil {
		t.Fatalf("publish event: %v", err)
	}

	counts, err := repo.CountByStatus(context.Background())
	if err != nil {
		t.Fatalf("CountByStatus: %v", err)
	}
	if counts["draft"] != 1 || counts["published"] != 1 {
		t.Errorf("counts = %v, want draft:1 published:1", counts)
	}
}
