package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"phka/internal/models/db_models"
	"phka/internal/models/request_models"
	"phka/internal/repositories"
	"phka/pkg/utils"
)

func buildEventService(t *testing.T) (EventServiceInterface, *db_models.User, *testDeps) {
	t.Helper()

	db := newTestDB(t)
	user := seedUser(t, db, "+85512800001")

	deps := &testDeps{
		db:        db,
		eventRepo: repositories.NewEventRepository(db),
	}
	svc := NewEventService(deps.eventRepo, repositories.NewScheduleRepository(db))
	return svc, user, deps
}

func TestCreateEvent_GeneratesSlug(t *testing.T) {
	svc, user, _ := buildEventService(t)
	ctx := context.Background()

	first, err := svc.CreateEvent(ctx, user.ID.String(), request_models.CreateEventRequest{
		Name: "Wedding of Dara & Thida",
		Type: "wedding",
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	if !strings.HasPrefix(first.Slug, "wedding-of-dara-thida-") {
		t.Errorf("slug = %q", first.Slug)
	}
	if first.Status != db_models.EventStatusDraft {
		t.Errorf("status = %q, want draft", first.Status)
	}

	second, err := svc.CreateEvent(ctx, user.ID.String(), request_models.CreateEventRequest{
		Name: "Wedding of Dara & Thida",
		Type: "wedding",
	})
	if err != nil {
		t.Fatalf("second CreateEvent: %v", err)
	}
	if first.Slug == second.Slug {
		t.Error("same-name events share a slug")
	}
}

func TestGetEvent_TenantBoundary(t *testing.T) {
	svc, user, deps := buildEventService(t)
	ctx := context.Background()

	event, err := svc.CreateEvent(ctx, user.ID.String(), request_models.CreateEventRequest{Name: "Mine"})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	stranger := seedUser(t, deps.db, "+85512800002")
	_, err = svc.GetEvent(ctx, stranger.ID.String(), event.ID.String())
	if !errors.Is(err, utils.ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound (never a permission hint)", err)
	}
}

func TestDeleteEvent_ThenNotFound(t *testing.T) {
	svc, user, _ := buildEventService(t)
	ctx := context.Background()

	event, err := svc.CreateEvent(ctx, user.ID.String(), request_models.CreateEventRequest{Name: "Short-lived"})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	if err := svc.DeleteEvent(ctx, user.ID.String(), event.ID.String()); err != nil {
		t.Fatalf("DeleteEvent: %v", err)
	}

	err = svc.DeleteEvent(ctx, user.ID.String(), event.ID.String())
	if !errors.Is(err, utils.ErrRecordNotFound) {
		t.Fatalf("second delete err = %v, want ErrRecordNotFound", err)
	}
}

func TestCreateSchedule_BuildsTree(t *testing.T) {
	svc, user, _ := buildEventService(t)
	ctx := context.Background()

	event, err := svc.CreateEvent(ctx, user.ID.String(), request_models.CreateEventRequest{Name: "With Schedule"})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	schedule, err := svc.CreateSchedule(ctx, user.ID.String(), event.ID.String(), request_models.UpsertScheduleRequest{
		Name: "Ceremony Day",
		Shifts: []request_models.ShiftRequest{
			{
				Name: "Morning",
				Timelines: []request_models.TimelineRequest{
					{Name: "Hair and makeup"},
					{Name: "Procession"},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("CreateSchedule: %v", err)
	}
	if len(schedule.Shifts) != 1 || len(schedule.Shifts[0].Timelines) != 2 {
		t.Fatalf("tree = %d shifts, want 1 with 2 timelines", len(schedule.Shifts))
	}

	// Position falls back to the request order when unset.
	if schedule.Shifts[0].Timelines[1].Position != 1 {
		t.Errorf("position = %d, want 1", schedule.Shifts[0].Timelines[1].Position)
	}
}

func TestInviteQRCode_ProducesPNG(t *testing.T) {
	svc, user, _ := buildEventService(t)
	ctx := context.Background()

	event, err := svc.CreateEvent(ctx, user.ID.String(), request_models.CreateEventRequest{Name: "QR Event"})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	png, err := svc.InviteQRCode(ctx, user.ID.String(), event.ID.String())
	if err != nil {
		t.Fatalf("InviteQRCode: %v", err)
	}
	if len(png) < 8 || string(png[1:4]) != "PNG" {
		t.Error("payload is not a PNG")
	}
}
