package ratelimit

import (
	"testing"
	"time"
)

func TestTokenBucket_ExhaustsCapacity(t *testing.T) {
	l := NewTokenBucket(3, 1)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		if !l.Allow("caller", now).Allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if l.Allow("caller", now).Allowed {
		t.Fatal("bucket is empty, should be denied")
	}
}

func TestTokenBucket_RefillsOverTime(t *testing.T) {
	l := NewTokenBucket(2, 1)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	l.Allow("caller", now)
	l.Allow("caller", now)
	if l.Allow("caller", now).Allowed {
		t.Fatal("should be denied right after draining")
	}

	if !l.Allow("caller", now.Add(1500*time.Millisecond)).Allowed {
		t.Fatal("1.5s at 1 token/s should refill enough for one request")
	}
}

func TestTokenBucket_RefillCappedAtCapacity(t *testing.T) {
	l := NewTokenBucket(2, 1)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	l.Allow("caller", now)

	// 长时间空闲后桶最多回到容量上限
	later := now.Add(time.Hour)
	l.Allow("caller", later)
	l.Allow("caller", later)
	if l.Allow("caller", later).Allowed {
		t.Fatal("refill must not exceed capacity")
	}
}

func TestTokenBucket_DenialDoesNotConsume(t *testing.T) {
	l := NewTokenBucket(1, 1)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	l.Allow("caller", now)
	for i := 0; i < 5; i++ {
		if l.Allow("caller", now).Allowed {
			t.Fatal("should be denied with zero tokens")
		}
	}

	// 被拒绝的请求不消耗补充进度
	if !l.Allow("caller", now.Add(time.Second)).Allowed {
		t.Fatal("refill should proceed despite denied requests")
	}
}
