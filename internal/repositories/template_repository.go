package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"phka/internal/models/db_models"
)

type TemplateRepository interface {
	Insert(ctx context.Context, template *db_models.Template) error
	Update(ctx context.Context, template *db_models.Template) error
	Delete(ctx context.Context, templateID string) error
	FindByID(ctx context.Context, id string) (*db_models.Template, error)
	FindByUniqueName(ctx context.Context, uniqueName string) (*db_models.Template, error)
	GetAll(ctx context.Context) ([]db_models.Template, error)

	Attach(ctx context.Context, et *db_models.EventTemplate) error
	FindBinding(ctx context.Context, eventID, templateID string) (*db_models.EventTemplate, error)
	FindDefaultForEvent(ctx context.Context, eventID string) (*db_models.EventTemplate, error)
	CountBindingsByUser(ctx context.Context, userID string) (int64, error)
	SetDefault(ctx context.Context, eventID, eventTemplateID string) error
}

type templateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &templateRepository{db: db}
}

func (r *templateRepository) Insert(ctx context.Context, template *db_models.Template) error {
	return r.db.WithContext(ctx).Create(template).Error
}

func (r *templateRepository) Update(ctx context.Context, template *db_models.Template) error {
	return r.db.WithContext(ctx).Save(template).Error
}

func (r *templateRepository) Delete(ctx context.Context, templateID string) error {
	return r.db.WithContext(ctx).Delete(&db_models.Template{}, "id = ?", templateID).Error
}

func (r *templateRepository) FindByID(ctx context.Context, id string) (*db_models.Template, error) {
	var template db_models.Template
	err := r.db.WithContext(ctx).First(&template, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &template, nil
}

func (r *templateRepository) FindByUniqueName(ctx context.Context, uniqueName string) (*db_models.Template, error) {
	var template db_models.Template
	err := r.db.WithContext(ctx).First(&template, "unique_name = ?", uniqueName).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &template, nil
}

func (r *templateRepository) GetAll(ctx context.Context) ([]db_models.Template, error) {
	var templates []db_models.Template
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Find(&templates).Error
	if err != nil {
		return nil, err
	}
	return templates, nil
}

// Attach creates the binding; when it is flagged default, other
// defaults for the event are cleared inside the same transaction so
// at most one default row exists per event.
func (r *templateRepository) Attach(ctx context.Context, et *db_models.EventTemplate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if et.IsDefault {
			if err := tx.Model(&db_models.EventTemplate{}).
				Where("event_id = ?", et.EventID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(et).Error
	})
}

func (r *templateRepository) FindBinding(ctx context.Context, eventID, templateID string) (*db_models.EventTemplate, error) {
	var et db_models.EventTemplate
	err := r.db.WithContext(ctx).
		Preload("Template").
		Where("event_id = ? AND template_id = ?", eventID, templateID).
		First(&et).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &et, nil
}

// FindDefaultForEvent prefers the flagged default; rows predating the
// uniqueness rule fall back to the most recently updated one.
func (r *templateRepository) FindDefaultForEvent(ctx context.Context, eventID string) (*db_models.EventTemplate, error) {
	var et db_models.EventTemplate
	err := r.db.WithContext(ctx).
		Preload("Template").
		Where("event_id = ? AND is_default = ?", eventID, true).
		Order("updated_at DESC").
		First(&et).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = r.db.WithContext(ctx).
			Preload("Template").
			Where("event_id = ?", eventID).
			Order("updated_at DESC").
			First(&et).Error
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &et, nil
}

func (r *templateRepository) CountBindingsByUser(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.EventTemplate{}).
		Joins("JOIN events ON events.id = event_templates.event_id").
		Where("events.user_id = ?", userID).
		Count(&n).Error
	return n, err
}

func (r *templateRepository) SetDefault(ctx context.Context, eventID, eventTemplateID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&db_models.EventTemplate{}).
			Where("event_id = ?", eventID).
			Update("is_default", false).Error; err != nil {
			return err
		}
		res := tx.Model(&db_models.EventTemplate{}).
			Where("id = ? AND event_id = ?", eventTemplateID, eventID).
			Update("is_default", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
