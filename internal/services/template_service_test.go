package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"gorm.io/gorm"

	"phka/internal/models/db_models"
	"phka/internal/models/request_models"
	"phka/internal/repositories"
	"phka/pkg/utils"
)

type templateFixture struct {
	db       *gorm.DB
	svc      TemplateServiceInterface
	user     *db_models.User
	event    *db_models.Event
	template *db_models.Template
}

func buildTemplateFixture(t *testing.T) *templateFixture {
	t.Helper()

	db := newTestDB(t)
	user := seedUser(t, db, "+85512500001")
	event := seedEvent(t, db, user.ID, "tpl-test-"+t.Name())

	template := &db_models.Template{
		Name:          "Classic Roses",
		UniqueName:    "classic-roses",
		IsActive:      true,
		DefaultConfig: []byte(`{"color":"red","font":"serif"}`),
	}
	if err := db.Create(template).Error; err != nil {
		t.Fatalf("seed template: %v", err)
	}

	svc := NewTemplateService(
		repositories.NewTemplateRepository(db),
		repositories.NewEventRepository(db),
		repositories.NewPlanRepository(db),
		DefaultRendererRegistry())

	return &templateFixture{db: db, svc: svc, user: user, event: event, template: template}
}

func TestResolvePreview_OverrideBeatsDefault(t *testing.T) {
	f := buildTemplateFixture(t)
	ctx := context.Background()

	_, err := f.svc.AttachToEvent(ctx, f.user.ID.String(), f.event.ID.String(), request_models.AttachTemplateRequest{
		TemplateID: f.template.ID.String(),
		Config:     json.RawMessage(`{"color":"gold"}`),
	})
	if err != nil {
		t.Fatalf("AttachToEvent: %v", err)
	}

	preview, err := f.svc.ResolvePreview(ctx, "", f.event.ID.String(), f.template.ID.String())
	if err != nil {
		t.Fatalf("ResolvePreview: %v", err)
	}
	if !preview.Found {
		t.Fatal("preview not found")
	}
	if string(preview.Config) != `{"color":"gold"}` {
		t.Errorf("config = %s, want the override", preview.Config)
	}
}

func TestResolvePreview_NullOverrideFallsBack(t *testing.T) {
	f := buildTemplateFixture(t)
	ctx := context.Background()

	et := &db_models.EventTemplate{
		EventID:    f.event.ID,
		TemplateID: f.template.ID,
		Config:     []byte(`null`),
	}
	if err := f.db.Create(et).Error; err != nil {
		t.Fatalf("seed binding: %v", err)
	}

	preview, err := f.svc.ResolvePreview(ctx, "", f.event.ID.String(), f.template.ID.String())
	if err != nil {
		t.Fatalf("ResolvePreview: %v", err)
	}
	if !preview.Found {
		t.Fatal("preview not found")
	}
	if string(preview.Config) != `{"color":"red","font":"serif"}` {
		t.Errorf("config = %s, want the template default", preview.Config)
	}
}

func TestResolvePreview_SlugUsesDefaultBinding(t *testing.T) {
	f := buildTemplateFixture(t)
	ctx := context.Background()

	second := &db_models.Template{
		Name:          "Golden Khmer",
		UniqueName:    "golden-khmer",
		IsActive:      true,
		DefaultConfig: []byte(`{"color":"gold"}`),
	}
	if err := f.db.Create(second).Error; err != nil {
		t.Fatalf("seed template: %v", err)
	}

	if _, err := f.svc.AttachToEvent(ctx, f.user.ID.String(), f.event.ID.String(), request_models.AttachTemplateRequest{
		TemplateID: f.template.ID.String(),
	}); err != nil {
		t.Fatalf("attach first: %v", err)
	}
	if _, err := f.svc.AttachToEvent(ctx, f.user.ID.String(), f.event.ID.String(), request_models.AttachTemplateRequest{
		TemplateID: second.ID.String(),
		IsDefault:  true,
	}); err != nil {
		t.Fatalf("attach second: %v", err)
	}

	preview, err := f.svc.ResolvePreview(ctx, f.event.Slug, "", "")
	if err != nil {
		t.Fatalf("ResolvePreview: %v", err)
	}
	if !preview.Found {
		t.Fatal("preview not found")
	}
	if preview.UniqueName != "golden-khmer" {
		t.Errorf("unique name = %q, want the default binding", preview.UniqueName)
	}
}

func TestResolvePreview_UnknownSlug(t *testing.T) {
	f := buildTemplateFixture(t)

	preview, err := f.svc.ResolvePreview(context.Background(), "no-such-slug", "", "")
	if err != nil {
		t.Fatalf("ResolvePreview: %v", err)
	}
	if preview.Found {
		t.Error("unknown slug should resolve to Found=false, not an error")
	}
}

func TestResolvePreview_UnknownRendererHidesTemplate(t *testing.T) {
	f := buildTemplateFixture(t)
	ctx := context.Background()

	orphan := &db_models.Template{
		Name:          "Retired Design",
		UniqueName:    "retired-design",
		IsActive:      true,
		DefaultConfig: []byte(`{}`),
	}
	if err := f.db.Create(orphan).Error; err != nil {
		t.Fatalf("seed template: %v", err)
	}

	preview, err := f.svc.ResolvePreview(ctx, "", "", orphan.ID.String())
	if err != nil {
		t.Fatalf("ResolvePreview: %v", err)
	}
	if preview.Found {
		t.Error("template without a registered renderer should not be previewable")
	}
}

func TestResolvePreview_NoSelector(t *testing.T) {
	f := buildTemplateFixture(t)

	_, err := f.svc.ResolvePreview(context.Background(), "", "", "")
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestAttachToEvent_EnforcesTemplateLimit(t *testing.T) {
	f := buildTemplateFixture(t)
	ctx := context.Background()

	seedPlanWithLimits(t, f.db, f.user.ID, 0, 1, 0)

	if _, err := f.svc.AttachToEvent(ctx, f.user.ID.String(), f.event.ID.String(), request_models.AttachTemplateRequest{
		TemplateID: f.template.ID.String(),
	}); err != nil {
		t.Fatalf("first attach: %v", err)
	}

	_, err := f.svc.AttachToEvent(ctx, f.user.ID.String(), f.event.ID.String(), request_models.AttachTemplateRequest{
		TemplateID: f.template.ID.String(),
	})
	if !errors.Is(err, utils.ErrPlanLimitReached) {
		t.Fatalf("err = %v, want ErrPlanLimitReached", err)
	}
}

func TestSetDefault_MovesTheFlag(t *testing.T) {
	f := buildTemplateFixture(t)
	ctx := context.Background()

	first, err := f.svc.AttachToEvent(ctx, f.user.ID.String(), f.event.ID.String(), request_models.AttachTemplateRequest{
		TemplateID: f.template.ID.String(),
		IsDefault:  true,
	})
	if err != nil {
		t.Fatalf("attach first: %v", err)
	}
	second, err := f.svc.AttachToEvent(ctx, f.user.ID.String(), f.event.ID.String(), request_models.AttachTemplateRequest{
		TemplateID: f.template.ID.String(),
	})
	if err != nil {
		t.Fatalf("attach second: %v", err)
	}

	if err := f.svc.SetDefault(ctx, f.user.ID.String(), f.event.ID.String(), second.ID.String()); err != nil {
		t.Fatalf("SetDefault: %v", err)
	}

	var defaults int64
	if err := f.db.Model(&db_models.EventTemplate{}).
		Where("event_id = ? AND is_default = ?", f.event.ID, true).
		Count(&defaults).Error; err != nil {
		t.Fatalf("count defaults: %v", err)
	}
	if defaults != 1 {
		t.Fatalf("defaults = %d, want exactly 1", defaults)
	}

	var reloaded db_models.EventTemplate
	if err := f.db.First(&reloaded, "id = ?", first.ID).Error; err != nil {
		t.Fatalf("reload first: %v", err)
	}
	if reloaded.IsDefault {
		t.Error("previous default still flagged")
	}
}

func TestSetDefault_UnknownBinding(t *testing.T) {
	f := buildTemplateFixture(t)

	err := f.svc.SetDefault(context.Background(), f.user.ID.String(), f.event.ID.String(), "be5e9d1c-0000-0000-0000-000000000000")
	if !errors.Is(err, utils.ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound", err)
	}
}

func TestResolvePreview_SurvivesRegistryRebuild(t *testing.T) {
	f := buildTemplateFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateTemplate(ctx, request_models.CreateTemplateRequest{
		Name:          "Lotus Garden",
		UniqueName:    "lotus-garden",
		DefaultConfig: json.RawMessage(`{"color":"pink"}`),
	})
	if err != nil {
		t.Fatalf("CreateTemplate: %v", err)
	}

	before, err := f.svc.ResolvePreview(ctx, "", "", created.ID.String())
	if err != nil {
		t.Fatalf("ResolvePreview before: %v", err)
	}
	if !before.Found {
		t.Fatal("freshly created template should preview")
	}

	// A new process starts with the shipped variants only and replays
	// the catalog; the same row must still resolve.
	registry := DefaultRendererRegistry()
	templateRepo := repositories.NewTemplateRepository(f.db)
	if err := registry.SeedFromCatalog(ctx, templateRepo); err != nil {
		t.Fatalf("SeedFromCatalog: %v", err)
	}
	rebuilt := NewTemplateService(
		templateRepo,
		repositories.NewEventRepository(f.db),
		repositories.NewPlanRepository(f.db),
		registry)

	after, err := rebuilt.ResolvePreview(ctx, "", "", created.ID.String())
	if err != nil {
		t.Fatalf("ResolvePreview after: %v", err)
	}
	if !after.Found {
		t.Fatal("template stopped resolving after the registry was rebuilt")
	}
}
