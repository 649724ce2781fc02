package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"phka/internal/models/db_models"
)

type GuestRepository interface {
	Insert(ctx context.Context, guest *db_models.Guest) error
	Update(ctx context.Context, guest *db_models.Guest) error
	ReplaceLabels(ctx context.Context, guest *db_models.Guest, tags []db_models.Tag, groups []db_models.Group) error
	Delete(ctx context.Context, guestID string) error
	FindByID(ctx context.Context, id string) (*db_models.Guest, error)
	ListByEvent(ctx context.Context, eventID string) ([]db_models.Guest, error)
	ExistsByPhoneOrName(ctx context.Context, eventID, phone, name string) (bool, error)

	CountByEvent(ctx context.Context, eventID string) (int64, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	CountByStatus(ctx context.Context, eventID string, status db_models.RSVPStatus) (int64, error)
	CountInvited(ctx context.Context, eventID string) (int64, error)
	SumHeadCount(ctx context.Context, eventID string) (int64, error)
}

type guestRepository struct {
	db *gorm.DB
}

func NewGuestRepository(db *gorm.DB) GuestRepository {
	return &guestRepository{db: db}
}

func (r *guestRepository) Insert(ctx context.Context, guest *db_models.Guest) error {
	return r.db.WithContext(ctx).Create(guest).Error
}

func (r *guestRepository) Update(ctx context.Context, guest *db_models.Guest) error {
	return r.db.WithContext(ctx).Omit("Tags", "Groups").Save(guest).Error
}

func (r *guestRepository) ReplaceLabels(ctx context.Context, guest *db_models.Guest, tags []db_models.Tag, groups []db_models.Group) error {
	db := r.db.WithContext(ctx)
	if err := db.Model(guest).Association("Tags").Replace(tags); err != nil {
		return err
	}
	return db.Model(guest).Association("Groups").Replace(groups)
}

// Delete clears both join tables before removing the row, all in one
// transaction.
func (r *guestRepository) Delete(ctx context.Context, guestID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var guest db_models.Guest
		if err := tx.First(&guest, "id = ?", guestID).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM guest_tags WHERE guest_id = ?", guestID).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM guest_groups WHERE guest_id = ?", guestID).Error; err != nil {
			return err
		}
		return tx.Delete(&guest).Error
	})
}

func (r *guestRepository) FindByID(ctx context.Context, id string) (*db_models.Guest, error) {
	var guest db_models.Guest
	err := r.db.WithContext(ctx).
		Preload("Tags").
		Preload("Groups").
		First(&guest, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &guest, nil
}

func (r *guestRepository) ListByEvent(ctx context.Context, eventID string) ([]db_models.Guest, error) {
	var guests []db_models.Guest
	err := r.db.WithContext(ctx).
		Preload("Tags").
		Preload("Groups").
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Find(&guests).Error
	if err != nil {
		return nil, err
	}
	return guests, nil
}

// ExistsByPhoneOrName is the import duplicate check: phone wins when
// present, otherwise the exact name.
func (r *guestRepository) ExistsByPhoneOrName(ctx context.Context, eventID, phone, name string) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&db_models.Guest{}).Where("event_id = ?", eventID)
	if phone != "" {
		q = q.Where("phone = ?", phone)
	} else {
		q = q.Where("name = ?", name)
	}
	err := q.Count(&n).Error
	return n > 0, err
}

func (r *guestRepository) CountByEvent(ctx context.Context, eventID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Guest{}).
		Where("event_id = ?", eventID).
		Count(&n).Error
	return n, err
}

func (r *guestRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Guest{}).
		Joins("JOIN events ON events.id = guests.event_id").
		Where("events.user_id = ?", userID).
		Count(&n).Error
	return n, err
}

func (r *guestRepository) CountByStatus(ctx context.Context, eventID string, status db_models.RSVPStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Guest{}).
		Where("event_id = ? AND status = ?", eventID, status).
		Count(&n).Error
	return n, err
}

func (r *guestRepository) CountInvited(ctx context.Context, eventID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Guest{}).
		Where("event_id = ? AND invited_at IS NOT NULL", eventID).
		Count(&n).Error
	return n, err
}

func (r *guestRepository) SumHeadCount(ctx context.Context, eventID string) (int64, error) {
	var sum *int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Guest{}).
		Select("SUM(head_count)").
		Where("event_id = ?", eventID).
		Scan(&sum).Error
	if err != nil || sum == nil {
		return 0, err
	}
	return *sum, nil
}
