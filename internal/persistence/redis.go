package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/srirahdirs/YoungZen-Admin-backend/internal/config"
	"github.com/srirahdirs/YoungZen-Admin-backend/internal/domain"
)

const seoCacheTTL = 5 * time.Minute

// Redis wraps the go-redis client. It backs the best-effort cache for public
// SEO page lookups; cache failures are logged, never surfaced.
type Redis struct {
	Client *redis.Client
	logger *zap.Logger
}

// NewRedis connects to Redis using the provided configuration.
func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &Redis{Client: client, logger: logger}
}

// Close closes the client.
func (r *Redis) Close() {
	if r != nil && r.Client != nil {
		_ = r.Client.Close()
	}
}

// Ping verifies Redis connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return errors.New("redis client not configured")
	}
	return r.Client.Ping(ctx).Err()
}

func seoCacheKey(pageIdentifier string) string {
	return "seo:page:" + pageIdentifier
}

// GetSeoPage returns the cached SEO record for a page, or nil on miss or any
// cache error.
func (r *Redis) GetSeoPage(ctx context.Context, pageIdentifier string) *domain.SeoMetadata {
	if r == nil || r.Client == nil {
		return nil
	}
	raw, err := r.Client.Get(ctx, seoCacheKey(pageIdentifier)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Warn("seo cache read failed", zap.String("page", pageIdentifier), zap.Error(err))
		}
		return nil
	}
	var meta domain.SeoMetadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		r.logger.Warn("seo cache decode failed", zap.String("page", pageIdentifier), zap.Error(err))
		return nil
	}
	return &meta
}

// SetSeoPage stores a SEO record in the cache, best effort.
func (r *Redis) SetSeoPage(ctx context.Context, meta *domain.SeoMetadata) {
	if r == nil || r.Client == nil || meta == nil {
		return
	}
	raw, err := json.Marshal(meta)
	if err != nil {
		return
	}
	if err := r.Client.Set(ctx, seoCacheKey(meta.PageIdentifier), raw, seoCacheTTL).Err(); err != nil {
		r.logger.Warn("seo cache write failed", zap.String("page", meta.PageIdentifier), zap.Error(err))
	}
}

// InvalidateSeoPage drops the cached record after a write.
func (r *Redis) InvalidateSeoPage(ctx context.Context, pageIdentifier string) {
	if r == nil || r.Client == nil {
		return
	}
	if err := r.Client.Del(ctx, seoCacheKey(pageIdentifier)).Err(); err != nil {
		r.logger.Warn("seo cache invalidate failed", zap.String("page", pageIdentifier), zap.Error(err))
	}
}
