package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProcessView is one open process-detail view. Its lifecycle controller is not shared
// with any other view.
type ProcessView struct {
	ID        uuid.UUID
	ProcessID int64
	Lifecycle IProcessLifecycle
	OpenedAt  time.Time
}

type viewEntry struct {
	view     ProcessView
	lastUsed time.Time
}

// ViewRegistry holds the open views. Views idle longer than idleTTL are evicted lazily on
// the next registry call.
type ViewRegistry struct {
	mu      sync.Mutex
	views   map[uuid.UUID]*viewEntry
	idleTTL time.Duration
	maxOpen int
	now     func() time.Time
	logger  *zap.Logger
}

func NewViewRegistry(idleTTL time.Duration, maxOpen int, logger *zap.Logger) *ViewRegistry {
	return &ViewRegistry{
		views:   make(map[uuid.UUID]*viewEntry),
		idleTTL: idleTTL,
		maxOpen: maxOpen,
		now:     time.Now,
		logger:  logger.Named("views"),
	}
}

func (r *ViewRegistry) Open(processID int64, lifecycle IProcessLifecycle) (ProcessView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.evictIdle(now)
	if r.maxOpen > 0 && len(r.views) >= r.maxOpen {
		return ProcessView{}, ErrTooManyViews
	}

	v := ProcessView{
		ID:        uuid.New(),
		ProcessID: processID,
		Lifecycle: lifecycle,
		OpenedAt:  now,
	}
	r.views[v.ID] = &viewEntry{view: v, lastUsed: now}
	r.logger.Debug("view opened", zap.String("view_id", v.ID.String()), zap.Int64("process_id", processID))
	return v, nil
}

func (r *ViewRegistry) Get(id uuid.UUID) (ProcessView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.evictIdle(now)
	e, ok := r.views[id]
	if !ok {
		return ProcessView{}, ErrViewNotFound
	}
	e.lastUsed = now
	return e.view, nil
}

func (r *ViewRegistry) Close(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.views[id]; !ok {
		return ErrViewNotFound
	}
	delete(r.views, id)
	return nil
}

func (r *ViewRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.evictIdle(r.now())
	return len(r.views)
}

func (r *ViewRegistry) evictIdle(now time.Time) {
	if r.idleTTL <= 0 {
		return
	}
	for id, e := range r.views {
		if now.Sub(e.lastUsed) > r.idleTTL {
			delete(r.views, id)
			r.logger.Debug("view evicted", zap.String("view_id", id.String()), zap.Int64("process_id", e.view.ProcessID))
		}
	}
}
