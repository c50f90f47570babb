package ratelimit

import (
	"sync"
	"time"
)

// Result 单次限流判定结果
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// RetryAfter 拒绝时距窗口重置的秒数，向上取整
func (r Result) RetryAfter(now time.Time) int {
	secs := int(r.ResetAt.Sub(now).Seconds()) + 1
	if secs < 0 {
		return 0
	}
	return secs
}

// Limiter 按 key 做请求准入控制，进程内实现，多实例部署时为近似值
type Limiter interface {
	Allow(key string, now time.Time) Result
}

type window struct {
	count       int
	windowStart time.Time
}

// FixedWindow 固定窗口计数器：窗口边界为 floor(now/W)*W，
// 同一窗口内每个 key 最多放行 limit 次
type FixedWindow struct {
	mu      sync.Mutex
	windows map[string]*window
	limit   int
	size    time.Duration
}

func NewFixedWindow(limit int, size time.Duration) *FixedWindow {
	return &FixedWindow{
		windows: make(map[string]*window),
		limit:   limit,
		size:    size,
	}
}

func (l *FixedWindow) Allow(key string, now time.Time) Result {
	boundary := now.Truncate(l.size)

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || w.windowStart.Before(boundary) {
		w = &window{windowStart: boundary}
		l.windows[key] = w
	}

	resetAt := w.windowStart.Add(l.size)
	if w.count >= l.limit {
		return Result{Allowed: false, Limit: l.limit, Remaining: 0, ResetAt: resetAt}
	}

	w.count++
	return Result{
		Allowed:   true,
		Limit:     l.limit,
		Remaining: l.limit - w.count,
		ResetAt:   resetAt,
	}
}

// Sweep 清掉已经过期的窗口，避免长尾 key 占内存
func (l *FixedWindow) Sweep(now time.Time) {
	boundary := now.Truncate(l.size)
	l.mu.Lock()
	for key, w := range l.windows {
		if w.windowStart.Before(boundary) {
			delete(l.windows, key)
		}
	}
	l.mu.Unlock()
}
