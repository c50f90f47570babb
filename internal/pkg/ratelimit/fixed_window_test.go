package ratelimit

import (
	"testing"
	"time"
)

func TestFixedWindow_DeniesOverLimit(t *testing.T) {
	l := NewFixedWindow(60, time.Minute)
	now := time.Date(2026, 3, 1, 12, 0, 5, 0, time.UTC)

	for i := 0; i < 60; i++ {
		result := l.Allow("caller", now)
		if !result.Allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	result := l.Allow("caller", now)
	if result.Allowed {
		t.Fatal("61st request in window should be denied")
	}
	if result.Remaining != 0 {
		t.Fatalf("remaining = %d, want 0", result.Remaining)
	}
	if result.Limit != 60 {
		t.Fatalf("limit = %d, want 60", result.Limit)
	}
}

func TestFixedWindow_ResetsAtBoundary(t *testing.T) {
	l := NewFixedWindow(2, time.Minute)
	now := time.Date(2026, 3, 1, 12, 0, 30, 0, time.UTC)

	l.Allow("caller", now)
	l.Allow("caller", now)
	if l.Allow("caller", now).Allowed {
		t.Fatal("should be denied inside the window")
	}

	// 窗口翻转后第一条请求放行
	next := time.Date(2026, 3, 1, 12, 1, 0, 0, time.UTC)
	if !l.Allow("caller", next).Allowed {
		t.Fatal("request after window rollover should be allowed")
	}
}

func TestFixedWindow_KeysIndependent(t *testing.T) {
	l := NewFixedWindow(1, time.Minute)
	now := time.Now()

	l.Allow("a", now)
	if l.Allow("a", now).Allowed {
		t.Fatal("a should be exhausted")
	}
	if !l.Allow("b", now).Allowed {
		t.Fatal("b should be unaffected by a")
	}
}

func TestFixedWindow_RetryAfter(t *testing.T) {
	l := NewFixedWindow(1, time.Minute)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	l.Allow("caller", now)
	result := l.Allow("caller", now.Add(10*time.Second))

	if result.Allowed {
		t.Fatal("should be denied")
	}
	retryAfter := result.RetryAfter(now.Add(10 * time.Second))
	if retryAfter < 50 || retryAfter > 51 {
		t.Fatalf("retryAfter = %d, want ~50", retryAfter)
	}
}

func TestFixedWindow_Sweep(t *testing.T) {
	l := NewFixedWindow(5, time.Minute)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	l.Allow("stale", now)
	l.Sweep(now.Add(2 * time.Minute))

	if len(l.windows) != 0 {
		t.Fatalf("stale windows should be swept, len=%d", len(l.windows))
	}
}
