package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}

	if _, ok, err := c.Get(ctx, "missing"); ok || err != nil {
		t.Errorf("Get(missing) = ok %v, err %v", ok, err)
	}

	if err := c.Set(ctx, "k", []byte("<svg/>"), 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	data, ok, err := c.Get(ctx, "k")
	if err != nil || !ok || string(data) != "<svg/>" {
		t.Errorf("Get(k) = %q, %v, %v", data, ok, err)
	}

	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("Get() after Delete() should miss")
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete(missing) error = %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := c.Get(ctx, "k"); !ok {
		t.Fatal("entry should be live before expiry")
	}

	now = now.Add(2 * time.Minute)
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("entry should expire")
	}
	if _, err := os.Stat(c.path("k")); !os.IsNotExist(err) {
		t.Error("expired entry should be removed")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	path := c.path("k")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, ok, err := c.Get(ctx, "k"); ok || err != nil {
		t.Errorf("Get(corrupt) = ok %v, err %v", ok, err)
	}
}

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	var c Cache = NullCache{}

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Errorf("Set() error = %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("NullCache should never hit")
	}
}

func TestKey(t *testing.T) {
	a := Key("diagram.svg", []byte("digraph a {}"))
	b := Key("diagram.svg", []byte("digraph b {}"))
	c := Key("diagram.png", []byte("digraph a {}"))

	if a == b || a == c {
		t.Error("keys should differ by kind and input")
	}
	if a != Key("diagram.svg", []byte("digraph a {}")) {
		t.Error("keys should be deterministic")
	}
	if len(Hash([]byte("x"))) != 64 {
		t.Error("Hash() should return 64 hex characters")
	}
}
