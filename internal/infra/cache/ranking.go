package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"roomescape/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const dateKeyLayout = "20060102"

// Store is the subset of the redis client the ranking cache needs.
type Store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
}

// RankingCache keeps TopThemes answers for a fixed TTL. Keys embed a
// generation counter; bumping it drops every cached ranking at once. New
// reservations do not bump it, so counts may lag by up to ttl.
type RankingCache struct {
	store  Store
	ttl    time.Duration
	prefix string
}

func NewRankingCache(store Store, ttl time.Duration, prefix string) *RankingCache {
	return &RankingCache{store: store, ttl: ttl, prefix: prefix}
}

func (c *RankingCache) GetTopThemes(ctx context.Context, q queries.TopThemesQuery) ([]*queries.RankedThemeView, bool) {
	key, ok := c.key(ctx, q)
	if !ok {
		return nil, false
	}
	bs, err := c.store.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("ranking cache read failed", "key", key, "error", err.Error())
		}
		return nil, false
	}

	var themes []*queries.RankedThemeView
	if err := json.Unmarshal(bs, &themes); err != nil {
		slog.Warn("ranking cache entry is corrupt", "key", key, "error", err.Error())
		return nil, false
	}
	return themes, true
}

func (c *RankingCache) SetTopThemes(ctx context.Context, q queries.TopThemesQuery, themes []*queries.RankedThemeView) {
	if c.ttl <= 0 {
		return
	}
	bs, err := json.Marshal(themes)
	if err != nil {
		return
	}
	key, ok := c.key(ctx, q)
	if !ok {
		return
	}
	if err := c.store.Set(ctx, key, bs, c.ttl).Err(); err != nil {
		slog.Warn("ranking cache write failed", "key", key, "error", err.Error())
	}
}

// InvalidateTopThemes makes every cached ranking unreachable.
func (c *RankingCache) InvalidateTopThemes(ctx context.Context) {
	if err := c.store.Incr(ctx, c.generationKey()).Err(); err != nil {
		slog.Warn("ranking cache invalidation failed", "key", c.generationKey(), "error", err.Error())
	}
}

func (c *RankingCache) generationKey() string {
	return c.prefix + ":top-themes:gen"
}

// key reports false when the generation cannot be read; the caller then
// skips the cache rather than risk serving a pre-invalidation entry.
func (c *RankingCache) key(ctx context.Context, q queries.TopThemesQuery) (string, bool) {
	gen, err := c.store.Get(ctx, c.generationKey()).Int64()
	if err != nil && err != redis.Nil {
		slog.Warn("ranking cache generation read failed", "error", err.Error())
		return "", false
	}
	return fmt.Sprintf("%s:top-themes:%d:%d:%s:%s",
		c.prefix, gen, q.Count, q.StartDate.Format(dateKeyLayout), q.EndDate.Format(dateKeyLayout)), true
}

// NoopRankingCache is used when no redis address is configured.
type NoopRankingCache struct{}

func (NoopRankingCache) GetTopThemes(context.Context, queries.TopThemesQuery) ([]*queries.RankedThemeView, bool) {
	return nil, false
}

func (NoopRankingCache) SetTopThemes(context.Context, queries.TopThemesQuery, []*queries.RankedThemeView) {
}

func (NoopRankingCache) InvalidateTopThemes(context.Context) {}
