package app

import (
	"context"
	"fmt"

	"github.com/yungbote/vocab-builder/internal/platform/logger"
	"github.com/yungbote/vocab-builder/internal/platform/mongodb"
	"github.com/yungbote/vocab-builder/internal/platform/redis"
)

type Clients struct {
	Mongo     *mongodb.Client
	WordCache *redis.WordCache
}

func wireClients(ctx context.Context, log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")

	mongo, err := mongodb.Connect(ctx, cfg.Mongo, log)
	if err != nil {
		return Clients{}, fmt.Errorf("init mongodb: %w", err)
	}

	// Redis is optional; without REDIS_ADDR the word cache is disabled.
	cache, err := redis.NewWordCache(ctx, cfg.Redis, log)
	if err != nil {
		_ = mongo.Close(context.Background())
		return Clients{}, fmt.Errorf("init redis word cache: %w", err)
	}
	if cache == nil {
		log.Info("Word cache disabled (no REDIS_ADDR)")
	}

	return Clients{Mongo: mongo, WordCache: cache}, nil
}

func (c Clients) Close(ctx context.Context, log *logger.Logger) {
	if c.WordCache != nil {
		if err := c.WordCache.Close(); err != nil {
			log.Warn("redis close failed", "error", err)
		}
	}
	if c.Mongo != nil {
		if err := c.Mongo.Close(ctx); err != nil {
			log.Warn("mongodb close failed", "error", err)
		}
	}
}
