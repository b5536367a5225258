package redis

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/vocab-builder/internal/domain/vocab"
	"github.com/yungbote/vocab-builder/internal/platform/logger"
)

func TestNewWordCacheDisabledWithoutAddr(t *testing.T) {
	c, err := NewWordCache(context.Background(), Config{}, logger.Nop())
	if err != nil {
		t.Fatalf("NewWordCache: %v", err)
	}
	if c != nil {
		t.Fatalf("expected nil cache when addr is empty")
	}
	// A nil cache is a no-op.
	if _, found, err := c.Get(context.Background(), "x"); found || err != nil {
		t.Fatalf("nil Get: found=%v err=%v", found, err)
	}
	if err := c.Set(context.Background(), &vocab.Word{ID: "x"}); err != nil {
		t.Fatalf("nil Set: %v", err)
	}
}

func TestNewWordCacheFromClientDefaults(t *testing.T) {
	rdb := goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:1"})
	defer rdb.Close()
	c := NewWordCacheFromClient(rdb, Config{}, logger.Nop())
	if c.ttl != 10*time.Minute {
		t.Fatalf("ttl: want=%s got=%s", 10*time.Minute, c.ttl)
	}
	if got := c.key("abc"); got != "vocab:word:abc" {
		t.Fatalf("key: got=%q", got)
	}
}

func TestWordCacheIntegration(t *testing.T) {
	addr := strings.TrimSpace(os.Getenv("REDIS_TEST_ADDR"))
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	ctx := context.Background()
	c, err := NewWordCache(ctx, Config{Addr: addr, KeyPrefix: "vocab:test:", TTL: time.Minute}, logger.Nop())
	if err != nil {
		t.Fatalf("NewWordCache: %v", err)
	}
	defer c.Close()

	w := &vocab.Word{ID: "65a000000000000000000001", English: "tree", German: "Baum"}
	if err := c.Set(ctx, w); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, found, err := c.Get(ctx, w.ID)
	if err != nil || !found {
		t.Fatalf("Get: found=%v err=%v", found, err)
	}
	if *got != *w {
		t.Fatalf("Get: want=%+v got=%+v", *w, *got)
	}
	if err := c.Delete(ctx, w.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, found, _ := c.Get(ctx, w.ID); found {
		t.Fatalf("expected miss after delete")
	}
}
