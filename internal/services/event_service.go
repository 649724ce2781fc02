package services

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"

	"phka/internal/models/db_models"
	"phka/internal/models/request_models"
	"phka/internal/repositories"
	"phka/pkg/utils"
)

type EventServiceInterface interface {
	CreateEvent(ctx context.Context, userID string, request request_models.CreateEventRequest) (*db_models.Event, error)
	UpdateEvent(ctx context.Context, userID, eventID string, request request_models.UpdateEventRequest) (*db_models.Event, error)
	DeleteEvent(ctx context.Context, userID, eventID string) error
	GetEvent(ctx context.Context, userID, eventID string) (*db_models.Event, error)
	ListEvents(ctx context.Context, userID string) ([]db_models.Event, error)
	InviteQRCode(ctx context.Context, userID, eventID string) ([]byte, error)

	CreateSchedule(ctx context.Context, userID, eventID string, request request_models.UpsertScheduleRequest) (*db_models.Schedule, error)
	ReplaceSchedule(ctx context.Context, userID, scheduleID string, request request_models.UpsertScheduleRequest) (*db_models.Schedule, error)
	ListSchedules(ctx context.Context, userID, eventID string) ([]db_models.Schedule, error)
	DeleteSchedule(ctx context.Context, userID, scheduleID string) error
}

type EventService struct {
	eventRepo    repositories.EventRepository
	scheduleRepo repositories.ScheduleRepository
}

func NewEventService(eventRepo repositories.EventRepository, scheduleRepo repositories.ScheduleRepository) EventServiceInterface {
	return &EventService{
		eventRepo:    eventRepo,
		scheduleRepo: scheduleRepo,
	}
}

// ownedEvent loads the event and checks the tenant boundary.
func (s *EventService) ownedEvent(ctx context.Context, userID, eventID string) (*db_models.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if event == nil || event.UserID.String() != userID {
		return nil, utils.ErrRecordNotFound
	}
	return event, nil
}

func (s *EventService) CreateEvent(ctx context.Context, userID string, request request_models.CreateEventRequest) (*db_models.Event, error) {

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	event := &db_models.Event{
		UserID:   uid,
		Name:     request.Name,
		Type:     request.Type,
		Status:   db_models.EventStatusDraft,
		Location: request.Location,
		Slug:     utils.Slugify(request.Name),
		StartsAt: request.StartsAt,
		EndsAt:   request.EndsAt,
	}

	if err := s.eventRepo.Insert(ctx, event); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return event, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, userID, eventID string, request request_models.UpdateEventRequest) (*db_models.Event, error) {

	event, err := s.ownedEvent(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		event.Name = *request.Name
	}
	if request.Type != nil {
		event.Type = *request.Type
	}
	if request.Status != nil {
		event.Status = db_models.EventStatus(*request.Status)
	}
	if request.Location != nil {
		event.Location = *request.Location
	}
	if request.StartsAt != nil {
		event.StartsAt = request.StartsAt
	}
	if request.EndsAt != nil {
		event.EndsAt = request.EndsAt
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return event, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, userID, eventID string) error {

	if _, err := s.ownedEvent(ctx, userID, eventID); err != nil {
		return err
	}

	if err := s.eventRepo.DeleteCascade(ctx, eventID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *EventService) GetEvent(ctx context.Context, userID, eventID string) (*db_models.Event, error) {
	return s.ownedEvent(ctx, userID, eventID)
}

func (s *EventService) ListEvents(ctx context.Context, userID string) ([]db_models.Event, error) {
	events, err := s.eventRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return events, nil
}

// InviteQRCode renders the public invite URL for the event slug.
func (s *EventService) InviteQRCode(ctx context.Context, userID, eventID string) ([]byte, error) {

	event, err := s.ownedEvent(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}

	base := strings.TrimRight(os.Getenv("APP_BASE_URL"), "/")
	inviteURL := fmt.Sprintf("%s/invite/%s", base, event.Slug)

	png, err := qrcode.Encode(inviteURL, qrcode.Medium, 512)
	if err != nil {
		return nil, err
	}
	return png, nil
}

func buildScheduleTree(request request_models.UpsertScheduleRequest) *db_models.Schedule {
	schedule := &db_models.Schedule{
		Name: request.Name,
		Date: request.Date,
	}
	for _, sh := range request.Shifts {
		shift := db_models.Shift{Name: sh.Name}
		for i, tl := range sh.Timelines {
			position := tl.Position
			if position == 0 {
				position = i
			}
			shift.Timelines = append(shift.Timelines, db_models.Timeline{
				Name:     tl.Name,
				NameKh:   tl.NameKh,
				StartsAt: tl.StartsAt,
				EndsAt:   tl.EndsAt,
				Position: position,
			})
		}
		schedule.Shifts = append(schedule.Shifts, shift)
	}
	return schedule
}

func (s *EventService) CreateSchedule(ctx context.Context, userID, eventID string, request request_models.UpsertScheduleRequest) (*db_models.Schedule, error) {

	event, err := s.ownedEvent(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}

	schedule := buildScheduleTree(request)
	schedule.EventID = event.ID

	if err := s.scheduleRepo.Insert(ctx, schedule); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return schedule, nil
}

// ReplaceSchedule is replace-all: the existing shift/timeline subtree
// is dropped and recreated, never merged.
func (s *EventService) ReplaceSchedule(ctx context.Context, userID, scheduleID string, request request_models.UpsertScheduleRequest) (*db_models.Schedule, error) {

	existing, err := s.scheduleRepo.FindByID(ctx, scheduleID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing == nil {
		return nil, utils.ErrRecordNotFound
	}
	if _, err := s.ownedEvent(ctx, userID, existing.EventID.String()); err != nil {
		return nil, err
	}

	schedule := buildScheduleTree(request)
	if err := s.scheduleRepo.Replace(ctx, scheduleID, schedule); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return schedule, nil
}

func (s *EventService) ListSchedules(ctx context.Context, userID, eventID string) ([]db_models.Schedule, error) {

	if _, err := s.ownedEvent(ctx, userID, eventID); err != nil {
		return nil, err
	}

	schedules, err := s.scheduleRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return schedules, nil
}

func (s *EventService) DeleteSchedule(ctx context.Context, userID, scheduleID string) error {

	existing, err := s.scheduleRepo.FindByID(ctx, scheduleID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrRecordNotFound
	}
	if _, err := s.ownedEvent(ctx, userID, existing.EventID.String()); err != nil {
		return err
	}

	if err := s.scheduleRepo.Delete(ctx, scheduleID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
