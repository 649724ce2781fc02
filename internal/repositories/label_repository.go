package repositories

import (
	"context"

	"gorm.io/gorm"

	"phka/internal/models/db_models"
)

// LabelRepository covers the event-scoped guest labels: tags and groups.
type LabelRepository interface {
	InsertTag(ctx context.Context, tag *db_models.Tag) error
	InsertGroup(ctx context.Context, group *db_models.Group) error
	ListTags(ctx context.Context, eventID string) ([]db_models.Tag, error)
	ListGroups(ctx context.Context, eventID string) ([]db_models.Group, error)
	FindTags(ctx context.Context, eventID string, ids []string) ([]db_models.Tag, error)
	FindGroups(ctx context.Context, eventID string, ids []string) ([]db_models.Group, error)
	DeleteTag(ctx context.Context, eventID, tagID string) error
	DeleteGroup(ctx context.Context, eventID, groupID string) error
}

type labelRepository struct {
	db *gorm.DB
}

func NewLabelRepository(db *gorm.DB) LabelRepository {
	return &labelRepository{db: db}
}

func (r *labelRepository) InsertTag(ctx context.Context, tag *db_models.Tag) error {
	return r.db.WithContext(ctx).Create(tag).Error
}

func (r *labelRepository) InsertGroup(ctx context.Context, group *db_models.Group) error {
	return r.db.WithContext(ctx).Create(group).Error
}

func (r *labelRepository) ListTags(ctx context.Context, eventID string) ([]db_models.Tag, error) {
	var tags []db_models.Tag
	err := r.db.WithContext(ctx).Where("event_id = ?", eventID).Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *labelRepository) ListGroups(ctx context.Context, eventID string) ([]db_models.Group, error) {
	var groups []db_models.Group
	err := r.db.WithContext(ctx).Where("event_id = ?", eventID).Find(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *labelRepository) FindTags(ctx context.Context, eventID string, ids []string) ([]db_models.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tags []db_models.Tag
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND id IN ?", eventID, ids).
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *labelRepository) FindGroups(ctx context.Context, eventID string, ids []string) ([]db_models.Group, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var groups []db_models.Group
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND id IN ?", eventID, ids).
		Find(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}

// Tag/group deletes clear the guest links first so no join rows leak.
// A miss on the label row itself is gorm.ErrRecordNotFound.
func (r *labelRepository) DeleteTag(ctx context.Context, eventID, tagID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM guest_tags WHERE tag_id = ?", tagID).Error; err != nil {
			return err
		}
		res := tx.Where("event_id = ?", eventID).Delete(&db_models.Tag{}, "id = ?", tagID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *labelRepository) DeleteGroup(ctx context.Context, eventID, groupID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM guest_groups WHERE group_id = ?", groupID).Error; err != nil {
			return err
		}
		res := tx.Where("event_id = ?", eventID).Delete(&db_models.Group{}, "id = ?", groupID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
