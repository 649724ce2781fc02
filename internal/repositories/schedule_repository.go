package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"phka/internal/models/db_models"
)

type ScheduleRepository interface {
	Insert(ctx context.Context, schedule *db_models.Schedule) error
	FindByID(ctx context.Context, id string) (*db_models.Schedule, error)
	ListByEvent(ctx context.Context, eventID string) ([]db_models.Schedule, error)
	// Replace deletes the schedule's whole shift/timeline subtree and
	// recreates it from the given schedule. Update is replace-all.
	Replace(ctx context.Context, scheduleID string, schedule *db_models.Schedule) error
	Delete(ctx context.Context, scheduleID string) error
}

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) Insert(ctx context.Context, schedule *db_models.Schedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

func (r *scheduleRepository) FindByID(ctx context.Context, id string) (*db_models.Schedule, error) {
	var schedule db_models.Schedule
	err := r.db.WithContext(ctx).
		Preload("Shifts.Timelines").
		First(&schedule, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &schedule, nil
}

func (r *scheduleRepository) ListByEvent(ctx context.Context, eventID string) ([]db_models.Schedule, error) {
	var schedules []db_models.Schedule
	err := r.db.WithContext(ctx).
		Preload("Shifts.Timelines").
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) Replace(ctx context.Context, scheduleID string, schedule *db_models.Schedule) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing db_models.Schedule
		if err := tx.First(&existing, "id = ?", scheduleID).Error; err != nil {
			return err
		}

		if err := deleteScheduleTree(tx, scheduleID); err != nil {
			return err
		}

		schedule.EventID = existing.EventID
		return tx.Create(schedule).Error
	})
}

func (r *scheduleRepository) Delete(ctx context.Context, scheduleID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteScheduleTree(tx, scheduleID)
	})
}

func deleteScheduleTree(tx *gorm.DB, scheduleID string) error {
	shiftIDs := tx.Model(&db_models.Shift{}).Select("id").Where("schedule_id = ?", scheduleID)

	if err := tx.Where("shift_id IN (?)", shiftIDs).Delete(&db_models.Timeline{}).Error; err != nil {
		return err
	}
	if err := tx.Where("schedule_id = ?", scheduleID).Delete(&db_models.Shift{}).Error; err != nil {
		return err
	}
	return tx.Delete(&db_models.Schedule{}, "id = ?", scheduleID).Error
}
