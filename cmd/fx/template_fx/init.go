package template_fx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"phka/internal/repositories"
	"phka/internal/services"
)

var Module = fx.Options(
	fx.Provide(provideTemplateRepo, provideRendererRegistry, provideTemplateService),
	fx.Invoke(seedRendererRegistry),
)

func provideTemplateRepo(db *gorm.DB) repositories.TemplateRepository {
	return repositories.NewTemplateRepository(db)
}

func provideRendererRegistry() *services.RendererRegistry {
	return services.DefaultRendererRegistry()
}

func provideTemplateService(
	templateRepo repositories.TemplateRepository,
	eventRepo repositories.EventRepository,
	planRepo repositories.IPlanRepository,
	registry *services.RendererRegistry) services.TemplateServiceInterface {
	return services.NewTemplateService(templateRepo, eventRepo, planRepo, registry)
}

// Templates created at runtime are registered in memory; the catalog
// is replayed on boot so they stay resolvable after a restart.
func seedRendererRegistry(
	lc fx.Lifecycle,
	registry *services.RendererRegistry,
	templateRepo repositories.TemplateRepository) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return registry.SeedFromCatalog(ctx, templateRepo)
		},
	})
}
