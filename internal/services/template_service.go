package services

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"phka/internal/models/db_models"
	"phka/internal/models/request_models"
	resp "phka/internal/models/response_models"
	"phka/internal/repositories"
	"phka/pkg/utils"
)

type TemplateServiceInterface interface {
	CreateTemplate(ctx context.Context, request request_models.CreateTemplateRequest) (*db_models.Template, error)
	GetAllTemplates(ctx context.Context) ([]db_models.Template, error)
	DeleteTemplate(ctx context.Context, templateID string) error

	AttachToEvent(ctx context.Context, userID, eventID string, request request_models.AttachTemplateRequest) (*db_models.EventTemplate, error)
	SetDefault(ctx context.Context, userID, eventID, eventTemplateID string) error

	// ResolvePreview applies the resolution order: slug, then
	// event+template, then template-only catalog preview.
	ResolvePreview(ctx context.Context, slug, eventID, templateID string) (*resp.TemplatePreview, error)
}

type TemplateService struct {
	templateRepo repositories.TemplateRepository
	eventRepo    repositories.EventRepository
	planRepo     repositories.IPlanRepository
	registry     *RendererRegistry
}

func NewTemplateService(
	templateRepo repositories.TemplateRepository,
	eventRepo repositories.EventRepository,
	planRepo repositories.IPlanRepository,
	registry *RendererRegistry) TemplateServiceInterface {
	return &TemplateService{
		templateRepo: templateRepo,
		eventRepo:    eventRepo,
		planRepo:     planRepo,
		registry:     registry,
	}
}

func (t *TemplateService) CreateTemplate(ctx context.Context, request request_models.CreateTemplateRequest) (*db_models.Template, error) {

	config := request.DefaultConfig
	if len(config) == 0 {
		config = json.RawMessage("{}")
	}

	template := &db_models.Template{
		Name:          request.Name,
		UniqueName:    request.UniqueName,
		Thumbnail:     request.Thumbnail,
		IsActive:      true,
		DefaultConfig: datatypes.JSON(config),
	}

	if err := t.templateRepo.Insert(ctx, template); err != nil {
		return nil, utils.ErrDatabaseError
	}

	t.registry.Register(template.UniqueName)
	return template, nil
}

func (t *TemplateService) GetAllTemplates(ctx context.Context) ([]db_models.Template, error) {
	templates, err := t.templateRepo.GetAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return templates, nil
}

func (t *TemplateService) DeleteTemplate(ctx context.Context, templateID string) error {
	template, err := t.templateRepo.FindByID(ctx, templateID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if template == nil {
		return utils.ErrRecordNotFound
	}
	if err := t.templateRepo.Delete(ctx, templateID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (t *TemplateService) AttachToEvent(ctx context.Context, userID, eventID string, request request_models.AttachTemplateRequest) (*db_models.EventTemplate, error) {

	event, err := t.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if event == nil || event.UserID.String() != userID {
		return nil, utils.ErrRecordNotFound
	}

	template, err := t.templateRepo.FindByID(ctx, request.TemplateID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if template == nil {
		return nil, utils.ErrRecordNotFound
	}

	// Template limit counts every binding across the user's events.
	userPlan, err := t.planRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if userPlan != nil {
		limit := userPlan.EffectiveTemplateLimit()
		if limit > 0 {
			used, err := t.templateRepo.CountBindingsByUser(ctx, userID)
			if err != nil {
				return nil, utils.ErrDatabaseError
			}
			if used >= int64(limit) {
				return nil, utils.ErrPlanLimitReached
			}
		}
	}

	et := &db_models.EventTemplate{
		EventID:    event.ID,
		TemplateID: template.ID,
		IsDefault:  request.IsDefault,
	}
	if len(request.Config) > 0 {
		et.Config = datatypes.JSON(request.Config)
	}

	if err := t.templateRepo.Attach(ctx, et); err != nil {
		return nil, utils.ErrDatabaseError
	}

	et.Template = *template
	return et, nil
}

func (t *TemplateService) SetDefault(ctx context.Context, userID, eventID, eventTemplateID string) error {

	event, err := t.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if event == nil || event.UserID.String() != userID {
		return utils.ErrRecordNotFound
	}

	if err := t.templateRepo.SetDefault(ctx, eventID, eventTemplateID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrRecordNotFound
		}
		return utils.ErrDatabaseError
	}
	return nil
}

// effectiveConfig prefers the event-specific override; a null or empty
// override falls back to the template default.
func effectiveConfig(et *db_models.EventTemplate) json.RawMessage {
	if len(et.Config) > 0 && string(et.Config) != "null" {
		return json.RawMessage(et.Config)
	}
	return json.RawMessage(et.Template.DefaultConfig)
}

func notFoundPreview() *resp.TemplatePreview {
	return &resp.TemplatePreview{Found: false}
}

func (t *TemplateService) ResolvePreview(ctx context.Context, slug, eventID, templateID string) (*resp.TemplatePreview, error) {

	switch {
	case slug != "":
		event, err := t.eventRepo.FindBySlug(ctx, slug)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if event == nil {
			return notFoundPreview(), nil
		}
		et, err := t.templateRepo.FindDefaultForEvent(ctx, event.ID.String())
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if et == nil {
			return notFoundPreview(), nil
		}
		return t.previewFrom(et, event.ID), nil

	case eventID != "" && templateID != "":
		et, err := t.templateRepo.FindBinding(ctx, eventID, templateID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if et == nil {
			return notFoundPreview(), nil
		}
		return t.previewFrom(et, et.EventID), nil

	case templateID != "":
		template, err := t.templateRepo.FindByID(ctx, templateID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if template == nil || !t.registry.Known(template.UniqueName) {
			return notFoundPreview(), nil
		}
		return &resp.TemplatePreview{
			Found:      true,
			UniqueName: template.UniqueName,
			TemplateID: template.ID.String(),
			Config:     json.RawMessage(template.DefaultConfig),
		}, nil

	default:
		return nil, utils.ErrInvalidInput
	}
}

func (t *TemplateService) previewFrom(et *db_models.EventTemplate, eventID uuid.UUID) *resp.TemplatePreview {
	if !t.registry.Known(et.Template.UniqueName) {
		return notFoundPreview()
	}
	return &resp.TemplatePreview{
		Found:      true,
		UniqueName: et.Template.UniqueName,
		EventID:    eventID.String(),
		TemplateID: et.TemplateID.String(),
		Config:     effectiveConfig(et),
	}
}
