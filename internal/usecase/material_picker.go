package usecase

import (
	"context"
	"portal_electro/internal/domain/entities"
	"portal_electro/internal/session"
	"portal_electro/internal/usecase/interfaces"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// MaterialSearchResult holds the matches of both material sources.
type MaterialSearchResult struct {
	Catalog []entities.CatalogProduct   `json:"catalog"`
	Cables  []entities.CableOrAccessory `json:"cables"`
}

// IMaterialPicker feeds the material add/edit forms.
type IMaterialPicker interface {
	Load(ctx context.Context) error
	Search(ctx context.Context, term string) (MaterialSearchResult, error)
	Find(ctx context.Context, ref entities.MaterialRef) (entities.MaterialSelection, error)
}

// MaterialPicker keeps the two lookups in memory for ttl (forever when ttl <= 0). A failed
// load is not remembered, so the next call retries.
//
// The memory copy is only served to callers whose token went through a successful load
// within ttl; any other token triggers a load so the backend can reject it.
type MaterialPicker struct {
	catalog interfaces.ICatalogRepository
	ttl     time.Duration
	now     func() time.Time
	logger  *zap.Logger

	mu       sync.RWMutex
	loadedAt time.Time
	items    MaterialSearchResult
	accepted map[string]time.Time // token fingerprint -> last successful load
}

var _ IMaterialPicker = (*MaterialPicker)(nil)

func NewMaterialPicker(catalog interfaces.ICatalogRepository, ttl time.Duration, logger *zap.Logger) *MaterialPicker {
	return &MaterialPicker{
		catalog:  catalog,
		ttl:      ttl,
		now:      time.Now,
		logger:   logger.Named("material_picker"),
		accepted: map[string]time.Time{},
	}
}

func (p *MaterialPicker) Load(ctx context.Context) error {
	creds, ok := session.FromContext(ctx)
	if !ok || !creds.Valid() {
		return session.ErrMissingToken
	}

	var (
		products []entities.CatalogProduct
		cables   []entities.CableOrAccessory
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = p.catalog.ListCatalog(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		cables, err = p.catalog.ListCablesAndAccessories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		p.logger.Error("material lookups failed", zap.Error(err))
		return &TransportError{Action: "load the materials", Err: err}
	}

	now := p.now()
	p.mu.Lock()
	defer p.mu.Unlock()
	p.items = MaterialSearchResult{
		Catalog: append([]entities.CatalogProduct{}, products...),
		Cables:  append([]entities.CableOrAccessory{}, cables...),
	}
	p.loadedAt = now
	for fp, at := range p.accepted {
		if !p.fresh(at, now) {
			delete(p.accepted, fp)
		}
	}
	p.accepted[creds.Fingerprint()] = now
	return nil
}

func (p *MaterialPicker) ensureLoaded(ctx context.Context) error {
	creds, ok := session.FromContext(ctx)
	if !ok || !creds.Valid() {
		return session.ErrMissingToken
	}

	now := p.now()
	p.mu.RLock()
	loadedAt := p.loadedAt
	acceptedAt, accepted := p.accepted[creds.Fingerprint()]
	p.mu.RUnlock()
	if !loadedAt.IsZero() && p.fresh(loadedAt, now) && accepted && p.fresh(acceptedAt, now) {
		return nil
	}
	return p.Load(ctx)
}

func (p *MaterialPicker) fresh(at, now time.Time) bool {
	return p.ttl <= 0 || now.Sub(at) < p.ttl
}

// Search matches term case-insensitively. An empty term returns every item.
func (p *MaterialPicker) Search(ctx context.Context, term string) (MaterialSearchResult, error) {
	if err := p.ensureLoaded(ctx); err != nil {
		return MaterialSearchResult{}, err
	}
	term = entities.NormalizeSearchTerm(term)

	p.mu.RLock()
	defer p.mu.RUnlock()
	out := MaterialSearchResult{
		Catalog: []entities.CatalogProduct{},
		Cables:  []entities.CableOrAccessory{},
	}
	for _, c := range p.items.Catalog {
		if c.Matches(term) {
			out.Catalog = append(out.Catalog, c)
		}
	}
	for _, c := range p.items.Cables {
		if c.Matches(term) {
			out.Cables = append(out.Cables, c)
		}
	}
	return out, nil
}

// Find resolves ref into a selection. Unknown items yield ErrMaterialNotFound.
func (p *MaterialPicker) Find(ctx context.Context, ref entities.MaterialRef) (entities.MaterialSelection, error) {
	if ref.IsZero() {
		return nil, newValidationError("source", entities.ErrMaterialSourceMissing)
	}
	if err := p.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	switch ref.Kind {
	case entities.MaterialSourceCatalog:
		for _, c := range p.items.Catalog {
			if c.ID == ref.ID {
				return entities.CatalogSelection{Product: c}, nil
			}
		}
	case entities.MaterialSourceCable:
		for _, c := range p.items.Cables {
			if c.ID == ref.ID {
				return entities.CableSelection{Item: c}, nil
			}
		}
	}
	return nil, ErrMaterialNotFound
}
