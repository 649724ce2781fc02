package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"phka/internal/models/db_models"
)

type EventRepository interface {
	Insert(ctx context.Context, event *db_models.Event) error
	Update(ctx context.Context, event *db_models.Event) error
	FindByID(ctx context.Context, id string) (*db_models.Event, error)
	FindByIDFull(ctx context.Context, id string) (*db_models.Event, error)
	FindBySlug(ctx context.Context, slug string) (*db_models.Event, error)
	ListByUser(ctx context.Context, userID string) ([]db_models.Event, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
	DeleteCascade(ctx context.Context, id string) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Insert(ctx context.Context, event *db_models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) Update(ctx context.Context, event *db_models.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *eventRepository) FindByID(ctx context.Context, id string) (*db_models.Event, error) {
	var event db_models.Event
	err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &event, nil
}

// FindByIDFull loads the event with every dependent the dashboard
// needs in one fetch.
func (r *eventRepository) FindByIDFull(ctx context.Context, id string) (*db_models.Event, error) {
	var event db_models.Event
	err := r.db.WithContext(ctx).
		Preload("Guests").
		Preload("Gifts").
		Preload("Expenses").
		First(&event, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &event, nil
}

func (r *eventRepository) FindBySlug(ctx context.Context, slug string) (*db_models.Event, error) {
	var event db_models.Event
	err := r.db.WithContext(ctx).First(&event, "slug = ?", slug).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &event, nil
}

func (r *eventRepository) ListByUser(ctx context.Context, userID string) ([]db_models.Event, error) {
	var events []db_models.Event
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Status string `gorm:"column:status"`
		Count  int64  `gorm:"column:count"`
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&db_models.Event{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(rows))
	for _, rw := range rows {
		out[rw.Status] = rw.Count
	}
	return out, nil
}

// DeleteCascade removes the event and everything it owns in a single
// transaction: timelines, shifts, schedules, guest links, guests,
// groups, tags, event templates, gifts, expenses, then the event row.
func (r *eventRepository) DeleteCascade(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event db_models.Event
		if err := tx.First(&event, "id = ?", id).Error; err != nil {
			return err
		}

		scheduleIDs := tx.Model(&db_models.Schedule{}).Select("id").Where("event_id = ?", id)
		shiftIDs := tx.Model(&db_models.Shift{}).Select("id").Where("schedule_id IN (?)", scheduleIDs)

		if err := tx.Where("shift_id IN (?)", shiftIDs).Delete(&db_models.Timeline{}).Error; err != nil {
			return err
		}
		if err := tx.Where("schedule_id IN (?)", scheduleIDs).Delete(&db_models.Shift{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&db_models.Schedule{}).Error; err != nil {
			return err
		}

		guestIDs := tx.Model(&db_models.Guest{}).Select("id").Where("event_id = ?", id)
		if err := tx.Exec("DELETE FROM guest_groups WHERE guest_id IN (?)", guestIDs).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM guest_tags WHERE guest_id IN (?)", guestIDs).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&db_models.Guest{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&db_models.Group{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&db_models.Tag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&db_models.EventTemplate{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&db_models.Gift{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&db_models.Expense{}).Error; err != nil {
			return err
		}

		return tx.Delete(&event).Error
	})
}
