package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"roomescape/internal/infra/cache"
	"roomescape/internal/pkg/config"
	"roomescape/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRankingCache,
	),
)

// NewRankingCache returns a no-op cache when REDIS_ADDR is unset. An
// unreachable redis is logged and tolerated; reads then fall through to the
// database.
func NewRankingCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) queries.RankingCache {
	if cfg.Redis.Addr == "" {
		logger.Info("ranking cache disabled")
		return cache.NoopRankingCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			defer cancel()
			if err := client.Ping(pingCtx).Err(); err != nil {
				logger.Warn("redis unreachable, ranking cache will miss", "addr", cfg.Redis.Addr, "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return cache.NewRankingCache(client, cfg.Redis.RankingTTL, cfg.Redis.KeyPrefix)
}
