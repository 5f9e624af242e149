package catalog

import (
	"testing"
	"time"
)

func TestMemoCacheGetSet(t *testing.T) {
	c := newMemoCache[string](time.Hour, 10)
	if _, ok := c.get(1); ok {
		t.Fatal("expected miss on empty cache")
	}
	c.set(1, "a")
	got, ok := c.get(1)
	if !ok || got != "a" {
		t.Fatalf("expected hit with %q, got %q ok=%v", "a", got, ok)
	}
}

func TestMemoCacheExpiry(t *testing.T) {
	c := newMemoCache[string](time.Hour, 10)
	current := time.Now()
	c.now = func() time.Time { return current }

	c.set(1, "a")
	if _, ok := c.get(1); !ok {
		t.Fatal("expected hit before expiry")
	}

	current = current.Add(2 * time.Hour)
	if _, ok := c.get(1); ok {
		t.Fatal("expected miss after TTL elapsed")
	}
	if c.len() != 0 {
		t.Fatalf("expected expired entry removed, len=%d", c.len())
	}
}

func TestMemoCacheBoundEvictsOldest(t *testing.T) {
	c := newMemoCache[string](time.Hour, 2)
	current := time.Now()
	c.now = func() time.Time { return current }

	c.set(1, "a")
	current = current.Add(time.Minute)
	c.set(2, "b")
	current = current.Add(time.Minute)
	c.set(3, "c")

	if c.len() != 2 {
		t.Fatalf("expected cache bounded at 2 entries, len=%d", c.len())
	}
	if _, ok := c.get(1); ok {
		t.Fatal("expected oldest entry evicted")
	}
	if _, ok := c.get(3); !ok {
		t.Fatal("expected newest entry retained")
	}
}

func TestMemoCacheOverwriteDoesNotEvict(t *testing.T) {
	c := newMemoCache[string](time.Hour, 2)
	c.set(1, "a")
	c.set(2, "b")
	c.set(2, "b2")
	if c.len() != 2 {
		t.Fatalf("expected len 2 after overwrite, got %d", c.len())
	}
	if got, _ := c.get(2); got != "b2" {
		t.Fatalf("expected overwritten value, got %q", got)
	}
}
