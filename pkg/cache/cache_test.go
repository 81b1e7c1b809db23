package cache

import (
	"context"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil || hit || data != nil {
		t.Errorf("NullCache.Get = %q, %v, %v; want miss", data, hit, err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestMemoryCacheGetSet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(4)

	if _, hit, _ := c.Get(ctx, "a"); hit {
		t.Fatal("empty cache should miss")
	}
	_ = c.Set(ctx, "a", []byte("1"), 0)
	_ = c.Set(ctx, "a", []byte("2"), 0)

	data, hit, err := c.Get(ctx, "a")
	if err != nil || !hit || string(data) != "2" {
		t.Errorf("Get(a) = %q, %v, %v; want 2", data, hit, err)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}

	_ = c.Delete(ctx, "a")
	_ = c.Delete(ctx, "missing")
	if _, hit, _ := c.Get(ctx, "a"); hit {
		t.Error("deleted key should miss")
	}
}

func TestMemoryCacheEvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(2)

	_ = c.Set(ctx, "a", []byte("a"), 0)
	_ = c.Set(ctx, "b", []byte("b"), 0)
	_, _, _ = c.Get(ctx, "a") // b is now the oldest
	_ = c.Set(ctx, "c", []byte("c"), 0)

	if _, hit, _ := c.Get(ctx, "b"); hit {
		t.Error("b should have been evicted")
	}
	for _, key := range []string{"a", "c"} {
		if _, hit, _ := c.Get(ctx, key); !hit {
			t.Errorf("%s should still be cached", key)
		}
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(0)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	_ = c.Set(ctx, "short", []byte("x"), time.Minute)
	_ = c.Set(ctx, "forever", []byte("y"), 0)

	now = now.Add(2 * time.Minute)
	if _, hit, _ := c.Get(ctx, "short"); hit {
		t.Error("expired entry should miss")
	}
	if _, hit, _ := c.Get(ctx, "forever"); !hit {
		t.Error("entry without ttl should not expire")
	}
	if c.Len() != 1 {
		t.Errorf("expired entry should be dropped, Len() = %d", c.Len())
	}
}

func TestMemoryCacheClose(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(0)
	_ = c.Set(ctx, "a", []byte("a"), 0)
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
	if c.Len() != 0 {
		t.Errorf("Close should drop entries, Len() = %d", c.Len())
	}
}

func TestHash(t *testing.T) {
	if Hash([]byte("hello")) != Hash([]byte("hello")) {
		t.Error("Hash should be deterministic")
	}
	if Hash([]byte("hello")) == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	if len(Hash([]byte("hello"))) != 64 {
		t.Errorf("Hash length should be 64")
	}
}

func TestRenderKey(t *testing.T) {
	base := RenderKeyOpts{Format: "svg", Path: []int{1, 2, 3}, Marked: []int{1, 3}}

	tests := []struct {
		name string
		gen  uint64
		opts RenderKeyOpts
	}{
		{"other generation", 2, base},
		{"other format", 1, RenderKeyOpts{Format: "png", Path: base.Path, Marked: base.Marked}},
		{"other path", 1, RenderKeyOpts{Format: "svg", Path: []int{1, 4, 3}, Marked: base.Marked}},
		{"labels", 1, RenderKeyOpts{Format: "svg", Path: base.Path, Marked: base.Marked, Labels: true}},
		{"animate", 1, RenderKeyOpts{Format: "svg", Path: base.Path, Marked: base.Marked, Animate: true}},
	}
	ref := RenderKey(1, base)
	if ref != RenderKey(1, base) {
		t.Fatal("RenderKey should be deterministic")
	}
	for _, tt := range tests {
		if RenderKey(tt.gen, tt.opts) == ref {
			t.Errorf("%s: key should differ", tt.name)
		}
	}
}
