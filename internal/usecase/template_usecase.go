package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/brandkit-io/brandkit-backend/internal/domain/apperror"
	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
	usecasecontract "github.com/brandkit-io/brandkit-backend/internal/usecase/contract"
)

const photosPerCategory = 3

// categoryQueries maps each template category to its stock-photo search query.
var categoryQueries = map[entity.TemplateCategory]string{
	entity.CategoryProductShowcase:   "product photography studio",
	entity.CategoryTestimonial:       "happy customer portrait",
	entity.CategoryIndustryTip:       "professional workspace desk",
	entity.CategoryPromotionalOffer:  "sale discount shopping",
	entity.CategoryEventAnnouncement: "event celebration crowd",
	entity.CategoryCompanyNews:       "modern office team",
}

// TemplateUseCase serves the post template catalog. Init assembles it once at
// startup from the stock-photo provider, falling back per category to the
// static built-in library; the assembled catalog is cached when a cache is
// wired.
type TemplateUseCase struct {
	photos usecasecontract.IPhotoService
	cache  usecasecontract.ITemplateCache
	logger usecasecontract.IAppLogger

	mu      sync.RWMutex
	catalog []entity.Template
	ready   bool
}

var _ usecasecontract.ITemplateUseCase = (*TemplateUseCase)(nil)

func NewTemplateUseCase(photos usecasecontract.IPhotoService, cache usecasecontract.ITemplateCache, logger usecasecontract.IAppLogger) *TemplateUseCase {
	return &TemplateUseCase{photos: photos, cache: cache, logger: logger}
}

// Init must complete before the catalog routes are mounted.
func (uc *TemplateUseCase) Init(ctx context.Context) error {
	if uc.cache != nil {
		if cached, ok, err := uc.cache.GetCatalog(ctx); err == nil && ok && len(cached) > 0 {
			uc.setCatalog(cached)
			uc.logger.Infof("template catalog loaded from cache (%d templates)", len(cached))
			return nil
		}
	}

	catalog := uc.assemble(ctx)
	uc.setCatalog(catalog)
	if uc.cache != nil {
		if err := uc.cache.SetCatalog(ctx, catalog); err != nil {
			uc.logger.Warnf("failed to cache template catalog: %v", err)
		}
	}
	uc.logger.Infof("template catalog assembled (%d templates)", len(catalog))
	return nil
}

// Refresh invalidates the cached catalog and rebuilds it from the providers.
// Seeding calls this so a reseed picks up fresh stock photos.
func (uc *TemplateUseCase) Refresh(ctx context.Context) error {
	if uc.cache != nil {
		if err := uc.cache.InvalidateCatalog(ctx); err != nil {
			uc.logger.Warnf("failed to invalidate template catalog cache: %v", err)
		}
	}
	catalog := uc.assemble(ctx)
	uc.setCatalog(catalog)
	if uc.cache != nil {
		if err := uc.cache.SetCatalog(ctx, catalog); err != nil {
			uc.logger.Warnf("failed to cache template catalog: %v", err)
		}
	}
	uc.logger.Infof("template catalog refreshed (%d templates)", len(catalog))
	return nil
}

// assemble builds the full catalog. Provider failures degrade per category to
// the static library, never to an empty catalog.
func (uc *TemplateUseCase) assemble(ctx context.Context) []entity.Template {
	var catalog []entity.Template
	for _, category := range entity.TemplateCategories() {
		entries := uc.liveTemplates(ctx, category)
		if len(entries) == 0 {
			entries = staticTemplates(category)
		}
		catalog = append(catalog, entries...)
	}
	return catalog
}

func (uc *TemplateUseCase) liveTemplates(ctx context.Context, category entity.TemplateCategory) []entity.Template {
	if uc.photos == nil || !uc.photos.Configured() {
		return nil
	}
	photos, err := uc.photos.SearchPhotos(ctx, categoryQueries[category], photosPerCategory)
	if err != nil {
		uc.logger.Warnf("photo search for category %s failed: %v", category, err)
		return nil
	}
	var templates []entity.Template
	for i, photo := range photos {
		templates = append(templates, entity.Template{
			ID:          fmt.Sprintf("%s-%d", category, i+1),
			Name:        fmt.Sprintf("%s %d", categoryDisplayName(category), i+1),
			Description: photo.Description,
			Category:    category,
			Platforms:   []entity.Platform{entity.PlatformInstagram, entity.PlatformFacebook, entity.PlatformLinkedIn},
			ImageURL:    photo.URL,
			Attribution: photo.Attribution,
		})
	}
	return templates
}

func (uc *TemplateUseCase) ListTemplates(ctx context.Context) ([]entity.Template, error) {
	return uc.snapshot()
}

func (uc *TemplateUseCase) ListCategories(_ context.Context) []entity.TemplateCategory {
	return entity.TemplateCategories()
}

func (uc *TemplateUseCase) GetTemplate(_ context.Context, id string) (*entity.Template, error) {
	catalog, err := uc.snapshot()
	if err != nil {
		return nil, err
	}
	for i := range catalog {
		if catalog[i].ID == id {
			return &catalog[i], nil
		}
	}
	return nil, fmt.Errorf("template %s: %w", id, apperror.ErrNotFound)
}

func (uc *TemplateUseCase) ListByCategory(_ context.Context, category entity.TemplateCategory) ([]entity.Template, error) {
	if _, known := categoryQueries[category]; !known {
		return nil, fmt.Errorf("unknown template category %q: %w", category, apperror.ErrValidation)
	}
	catalog, err := uc.snapshot()
	if err != nil {
		return nil, err
	}
	var out []entity.Template
	for _, t := range catalog {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out, nil
}

func (uc *TemplateUseCase) SearchTemplates(_ context.Context, query string) ([]entity.Template, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, fmt.Errorf("search query is required: %w", apperror.ErrValidation)
	}
	catalog, err := uc.snapshot()
	if err != nil {
		return nil, err
	}
	var out []entity.Template
	for _, t := range catalog {
		if strings.Contains(strings.ToLower(t.Name), query) ||
			strings.Contains(strings.ToLower(t.Description), query) ||
			strings.Contains(strings.ToLower(string(t.Category)), query) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (uc *TemplateUseCase) setCatalog(catalog []entity.Template) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.catalog = catalog
	uc.ready = true
}

func (uc *TemplateUseCase) snapshot() ([]entity.Template, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	if !uc.ready {
		return nil, fmt.Errorf("template catalog not initialized: %w", apperror.ErrUpstream)
	}
	out := make([]entity.Template, len(uc.catalog))
	copy(out, uc.catalog)
	return out, nil
}

func categoryDisplayName(category entity.TemplateCategory) string {
	words := strings.Split(string(category), "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// staticTemplates is the built-in library used when the photo provider is
// unavailable for a category.
func staticTemplates(category entity.TemplateCategory) []entity.Template {
	allPlatforms := []entity.Platform{
		entity.PlatformInstagram, entity.PlatformFacebook,
		entity.PlatformTwitter, entity.PlatformLinkedIn,
	}
	descriptions := map[entity.TemplateCategory]string{
		entity.CategoryProductShowcase:   "Put a single product front and center with a short benefit-led caption.",
		entity.CategoryTestimonial:       "Quote a happy customer with their first name and a star rating.",
		entity.CategoryIndustryTip:       "Share one practical tip your audience can use today.",
		entity.CategoryPromotionalOffer:  "Announce a limited-time offer with a clear deadline and call to action.",
		entity.CategoryEventAnnouncement: "Invite followers to an upcoming event with date, time and location.",
		entity.CategoryCompanyNews:       "Share a milestone or update from behind the scenes.",
	}
	return []entity.Template{
		{
			ID:          fmt.Sprintf("%s-static", category),
			Name:        categoryDisplayName(category),
			Description: descriptions[category],
			Category:    category,
			Platforms:   allPlatforms,
		},
	}
}
