package cache

import (
	"testing"
	"time"
)

func TestCache_SetGet(t *testing.T) {
	c := New(10)
	c.Set("k", "v", time.Minute)

	got, ok := c.Get("k")
	if !ok {
		t.Fatal("expected hit for fresh entry")
	}
	if got.(string) != "v" {
		t.Fatalf("got %v, want v", got)
	}
}

func TestCache_ExpiresLazily(t *testing.T) {
	c := New(10)
	now := time.Now()
	c.now = func() time.Time { return now }

	c.Set("k", "v", 100*time.Millisecond)

	now = now.Add(150 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Fatal("expired entry should be absent")
	}
	if c.Len() != 0 {
		t.Fatalf("expired entry should be evicted on read, len=%d", c.Len())
	}
}

func TestCache_EvictsLowestHitCount(t *testing.T) {
	c := New(2)
	c.Set("hot", 1, time.Minute)
	c.Set("cold", 2, time.Minute)

	// hot 被读过，cold 没有
	c.Get("hot")
	c.Get("hot")

	c.Set("new", 3, time.Minute)

	if _, ok := c.Get("cold"); ok {
		t.Fatal("cold entry should have been evicted")
	}
	if _, ok := c.Get("hot"); !ok {
		t.Fatal("hot entry should survive eviction")
	}
	if _, ok := c.Get("new"); !ok {
		t.Fatal("new entry should be present")
	}
}

func TestCache_SetExistingKeyDoesNotEvict(t *testing.T) {
	c := New(2)
	c.Set("a", 1, time.Minute)
	c.Set("b", 2, time.Minute)

	c.Set("a", 10, time.Minute)

	if c.Len() != 2 {
		t.Fatalf("len = %d, want 2", c.Len())
	}
	got, _ := c.Get("a")
	if got.(int) != 10 {
		t.Fatalf("got %v, want 10", got)
	}
}

func TestCache_DeleteAndClear(t *testing.T) {
	c := New(10)
	c.Set("a", 1, time.Minute)
	c.Set("b", 2, time.Minute)

	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Fatal("deleted entry should be absent")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Fatalf("len after clear = %d, want 0", c.Len())
	}
}
