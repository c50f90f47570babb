package service

import (
	"Faceoff/internal/pkg/metrics"
	"context"
	log "log/slog"
	"sync"
)

// bestEffortTask 一条落库后的旁路更新
type bestEffortTask struct {
	name string
	run  func(ctx context.Context) error
}

// runBestEffort 并发执行全部旁路更新：等待所有任务完成，逐个记录失败，
// 绝不让父请求失败。聚合任务的整体重算会在之后修复丢失的增量。
func runBestEffort(ctx context.Context, tasks []bestEffortTask) {
	var wg sync.WaitGroup
	for _, task := range tasks {
		wg.Add(1)
		go func(t bestEffortTask) {
			defer wg.Done()
			if err := t.run(ctx); err != nil {
				log.ErrorContext(ctx, "best-effort update failed", "target", t.name, "err", err)
				metrics.BestEffortFailures.WithLabelValues(t.name).Inc()
			}
		}(task)
	}
	wg.Wait()
}
