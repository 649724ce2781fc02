package repositories

import (
	"context"
	"testing"

	"phka/internal/models/db_models"
)

func TestReplace_SwapsWholeSubtree(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewScheduleRepository(db)

	event := newEvent(t, db, "replace-schedule")

	original := &db_models.Schedule{
		EventID: event.ID,
		Name:    "Ceremony Day",
		Shifts: []db_models.Shift{
			{
				Name: "Morning",
				Timelines: []db_models.Timeline{
					{Name: "Hair and makeup", Position: 0},
					{Name: "Procession", Position: 1},
				},
			},
			{Name: "Evening", Timelines: []db_models.Timeline{{Name: "Reception"}}},
		},
	}
	if err := repo.Insert(ctx, original); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	replacement := &db_models.Schedule{
		Name: "Ceremony Day (revised)",
		Shifts: []db_models.Shift{
			{
				Name:      "Full Day",
				Timelines: []db_models.Timeline{{Name: "Everything at once"}},
			},
		},
	}
	if err := repo.Replace(ctx, original.ID.String(), replacement); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	// The old subtree is gone, not merged.
	if n := countRows(t, db, &db_models.Shift{}, "schedule_id = ?", original.ID); n != 0 {
		t.Errorf("old shifts remain: %d", n)
	}

	reloaded, err := repo.FindByID(ctx, replacement.ID.String())
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if reloaded == nil {
		t.Fatal("replacement not found")
	}
	if reloaded.EventID != event.ID {
		t.Error("replacement not bound to the original event")
	}
	if len(reloaded.Shifts) != 1 {
		t.Fatalf("shifts = %d, want 1", len(reloaded.Shifts))
	}
	if len(reloaded.Shifts[0].Timelines) != 1 {
		t.Fatalf("timelines = %d, want 1", len(reloaded.Shifts[0].Timelines))
	}

	schedules, err := repo.ListByEvent(ctx, event.ID.String())
	if err != nil {
		t.Fatalf("ListByEvent: %v", err)
	}
	if len(schedules) != 1 {
		t.Errorf("schedules = %d, want 1 (replace, not append)", len(schedules))
	}
}

func TestDelete_RemovesTree(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewScheduleRepository(db)

	event := newEvent(t, db, "delete-schedule")
	schedule := &db_models.Schedule{
		EventID: event.ID,
		Name:    "Day",
		Shifts:  []db_models.Shift{{Name: "Shift", Timelines: []db_models.Timeline{{Name: "Item"}}}},
	}
	if err := repo.Insert(ctx, schedule); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	if err := repo.Delete(ctx, schedule.ID.String()); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	found, err := repo.FindByID(ctx, schedule.ID.String())
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found != nil {
		t.Error("schedule still findable after delete")
	}
	if n := countRows(t, db, &db_models.Shift{}, "schedule_id = ?", schedule.ID); n != 0 {
		t.Errorf("shifts remain: %d", n)
	}
}
