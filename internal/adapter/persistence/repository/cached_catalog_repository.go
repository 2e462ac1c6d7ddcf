package repository

import (
	"context"
	"encoding/json"
	"errors"
	"portal_electro/internal/domain/entities"
	"portal_electro/internal/session"
	"portal_electro/internal/usecase/interfaces"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	catalogCacheKey     = "portal:lookup:catalog"
	cablesCacheKey      = "portal:lookup:cables"
	verifiedTokenPrefix = "portal:lookup:token:"
)

// CachedCatalogRepository serves the two material catalogs from redis and falls back to
// the wrapped repository on a miss. Redis failures are logged and never surface.
//
// Cached entries are only served to tokens the backend accepted within ttl. A token seen
// for the first time goes to the backend, which refreshes the entry on success.
type CachedCatalogRepository struct {
	next   interfaces.ICatalogRepository
	rdb    redis.UniversalClient
	ttl    time.Duration
	logger *zap.Logger
}

var _ interfaces.ICatalogRepository = (*CachedCatalogRepository)(nil)

func NewCachedCatalogRepository(next interfaces.ICatalogRepository, rdb redis.UniversalClient, ttl time.Duration, logger *zap.Logger) *CachedCatalogRepository {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &CachedCatalogRepository{next: next, rdb: rdb, ttl: ttl, logger: logger.Named("catalog_cache")}
}

func (r *CachedCatalogRepository) ListCatalog(ctx context.Context) ([]entities.CatalogProduct, error) {
	return cached(ctx, r, catalogCacheKey, r.next.ListCatalog)
}

func (r *CachedCatalogRepository) ListCablesAndAccessories(ctx context.Context) ([]entities.CableOrAccessory, error) {
	return cached(ctx, r, cablesCacheKey, r.next.ListCablesAndAccessories)
}

func cached[T any](ctx context.Context, r *CachedCatalogRepository, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	creds, ok := session.FromContext(ctx)
	if !ok || !creds.Valid() {
		return nil, session.ErrMissingToken
	}
	tokenKey := verifiedTokenPrefix + creds.Fingerprint()

	if r.tokenVerified(ctx, tokenKey) {
		raw, err := r.rdb.Get(ctx, key).Bytes()
		switch {
		case err == nil:
			var out []T
			if err := json.Unmarshal(raw, &out); err == nil {
				return out, nil
			}
			r.logger.Warn("discarding corrupt cache entry", zap.String("key", key))
		case !errors.Is(err, redis.Nil):
			r.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	out, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if err := r.rdb.Set(ctx, tokenKey, 1, r.ttl).Err(); err != nil {
		r.logger.Warn("cache write failed", zap.String("key", verifiedTokenPrefix), zap.Error(err))
	}
	if raw, err := json.Marshal(out); err == nil {
		if err := r.rdb.Set(ctx, key, raw, r.ttl).Err(); err != nil {
			r.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return out, nil
}

// tokenVerified reports whether the backend accepted the token behind tokenKey recently.
// A redis failure counts as not verified.
func (r *CachedCatalogRepository) tokenVerified(ctx context.Context, tokenKey string) bool {
	n, err := r.rdb.Exists(ctx, tokenKey).Result()
	if err != nil {
		r.logger.Warn("cache read failed", zap.String("key", verifiedTokenPrefix), zap.Error(err))
		return false
	}
	return n > 0
}
