package services

import (
	"context"
	"sync"

	"phka/internal/repositories"
)

// RendererRegistry maps a template's unique_name to a known renderer
// variant. Lookups for unregistered names resolve to the fallback
// "not found" rendering state instead of an error.
type RendererRegistry struct {
	mu       sync.RWMutex
	variants map[string]struct{}
}

func NewRendererRegistry(known ...string) *RendererRegistry {
	r := &RendererRegistry{variants: make(map[string]struct{}, len(known))}
	for _, name := range known {
		r.variants[name] = struct{}{}
	}
	return r
}

func (r *RendererRegistry) Register(uniqueName string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.variants[uniqueName] = struct{}{}
}

func (r *RendererRegistry) Known(uniqueName string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.variants[uniqueName]
	return ok
}

// SeedFromCatalog registers every persisted template name so a slug
// or binding resolves the same way after a restart as before it.
func (r *RendererRegistry) SeedFromCatalog(ctx context.Context, templateRepo repositories.TemplateRepository) error {
	templates, err := templateRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	for _, t := range templates {
		r.Register(t.UniqueName)
	}
	return nil
}

// DefaultRendererRegistry lists the variants the web client ships.
func DefaultRendererRegistry() *RendererRegistry {
	return NewRendererRegistry(
		"classic-roses",
		"golden-khmer",
		"apsara-silk",
		"modern-minimal",
		"birthday-balloons",
	)
}
