package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/vocab-builder/internal/domain/vocab"
	"github.com/yungbote/vocab-builder/internal/platform/logger"
)

type Config struct {
	Addr      string        `yaml:"addr"`
	Password  string        `yaml:"password"`
	DB        int           `yaml:"db"`
	KeyPrefix string        `yaml:"key_prefix"`
	TTL       time.Duration `yaml:"ttl"`
}

// WordCache keeps JSON copies of words keyed by id.
type WordCache struct {
	log    *logger.Logger
	rdb    goredis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewWordCache returns (nil, nil) when no address is configured; callers
// treat a nil cache as disabled.
func NewWordCache(ctx context.Context, cfg Config, log *logger.Logger) (*WordCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return nil, nil
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return NewWordCacheFromClient(rdb, cfg, log), nil
}

func NewWordCacheFromClient(rdb goredis.UniversalClient, cfg Config, log *logger.Logger) *WordCache {
	prefix := strings.TrimSpace(cfg.KeyPrefix)
	if prefix == "" {
		prefix = "vocab:word:"
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &WordCache{
		log:    log.With("service", "RedisWordCache"),
		rdb:    rdb,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (c *WordCache) key(id string) string { return c.prefix + id }

// Get reports found=false on a cache miss.
func (c *WordCache) Get(ctx context.Context, id string) (*vocab.Word, bool, error) {
	if c == nil || c.rdb == nil {
		return nil, false, nil
	}
	raw, err := c.rdb.Get(ctx, c.key(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var w vocab.Word
	if err := json.Unmarshal(raw, &w); err != nil {
		// A corrupt entry is dropped and treated as a miss.
		_ = c.rdb.Del(ctx, c.key(id)).Err()
		return nil, false, nil
	}
	return &w, true, nil
}

func (c *WordCache) Set(ctx context.Context, w *vocab.Word) error {
	if c == nil || c.rdb == nil || w == nil || w.ID == "" {
		return nil
	}
	raw, err := json.Marshal(w)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, c.key(w.ID), raw, c.ttl).Err()
}

func (c *WordCache) Delete(ctx context.Context, id string) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, c.key(id)).Err()
}

func (c *WordCache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
