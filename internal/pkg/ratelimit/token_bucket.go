package ratelimit

import (
	"math"
	"sync"
	"time"
)

type bucket struct {
	tokens     float64
	lastRefill time.Time
}

// TokenBucket 令牌桶限流：容量 capacity，按 rate 个/秒 随时间匀速补充。
// 判定失败时不扣减状态。
type TokenBucket struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	capacity float64
	rate     float64
	required float64
}

func NewTokenBucket(capacity, rate float64) *TokenBucket {
	return &TokenBucket{
		buckets:  make(map[string]*bucket),
		capacity: capacity,
		rate:     rate,
		required: 1,
	}
}

func (l *TokenBucket) Allow(key string, now time.Time) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{tokens: l.capacity, lastRefill: now}
		l.buckets[key] = b
	}

	elapsed := now.Sub(b.lastRefill).Seconds()
	if elapsed > 0 {
		b.tokens = math.Min(l.capacity, b.tokens+elapsed*l.rate)
		b.lastRefill = now
	}

	resetAt := now
	if b.tokens < l.required && l.rate > 0 {
		resetAt = now.Add(time.Duration((l.required - b.tokens) / l.rate * float64(time.Second)))
	}

	if b.tokens < l.required {
		return Result{
			Allowed:   false,
			Limit:     int(l.capacity),
			Remaining: 0,
			ResetAt:   resetAt,
		}
	}

	b.tokens -= l.required
	return Result{
		Allowed:   true,
		Limit:     int(l.capacity),
		Remaining: int(b.tokens),
		ResetAt:   resetAt,
	}
}
