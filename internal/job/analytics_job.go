package job

import (
	"Faceoff/internal/api/config"
	"Faceoff/internal/model"
	"Faceoff/internal/pkg/consts"
	"Faceoff/internal/pkg/logger"
	"Faceoff/internal/pkg/metrics"
	"Faceoff/internal/pkg/redis"
	"Faceoff/internal/pkg/util"
	"Faceoff/internal/repository"
	"context"
	log "log/slog"
	"sort"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

const (
	runTimeout  = 10 * time.Minute
	runLockTTL  = 15 * time.Minute
	summaryItem = "summary"
)

// AnalyticsJob 定时从投票账本整体重算五个时间粒度的汇总行。
// 重算结果是事实来源，每票的 day 增量在这里被整体覆盖掉。
type AnalyticsJob struct {
	voteRepo   repository.VoteRepo
	rollupRepo repository.RollupRepo
	pageSize   int
	epoch      time.Time
	now        func() time.Time
}

func NewAnalyticsJob(voteRepo repository.VoteRepo, rollupRepo repository.RollupRepo, cfg config.AnalyticsConfig) *AnalyticsJob {
	epoch, err := time.Parse("2006-01-02", cfg.Epoch)
	if err != nil {
		epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 1000
	}

	return &AnalyticsJob{
		voteRepo:   voteRepo,
		rollupRepo: rollupRepo,
		pageSize:   pageSize,
		epoch:      epoch,
		now:        time.Now,
	}
}

// Run 实现 cron.Job。分布式锁挡住多实例并发重算，
// 卡住的运行靠超时失败出局，等下一个调度周期重试
func (j *AnalyticsJob) Run() {
	traceID := "job-analytics-" + uuid.NewString()
	ctx := logger.WithTraceID(context.Background(), traceID)
	ctx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	locked, err := redis.TryLock(ctx, consts.AggregateRunLock, traceID, runLockTTL, 1)
	if err != nil || !locked {
		log.InfoContext(ctx, "analytics run skipped, another instance holds the lock", "err", err)
		return
	}
	defer redis.UnLock(ctx, consts.AggregateRunLock, traceID)

	if err := j.RunOnce(ctx); err != nil {
		log.ErrorContext(ctx, "analytics aggregation failed", "err", err)
	}
}

type periodSpec struct {
	period string
	start  time.Time
}

// RunOnce 对锚定当前时间的五个周期各做一次完整重算
func (j *AnalyticsJob) RunOnce(ctx context.Context) error {
	now := j.now()

	specs := []periodSpec{
		{model.PeriodDay, util.StartOfDay(now)},
		{model.PeriodWeek, util.StartOfWeek(now)},
		{model.PeriodMonth, util.StartOfMonth(now)},
		{model.PeriodYear, util.StartOfYear(now)},
		{model.PeriodAll, j.epoch},
	}

	for _, spec := range specs {
		start := j.now()
		if err := j.aggregatePeriod(ctx, spec.period, spec.start, now); err != nil {
			return err
		}
		metrics.AggregationDuration.WithLabelValues(spec.period).Observe(j.now().Sub(start).Seconds())
	}

	log.InfoContext(ctx, "analytics aggregation success", "periods", len(specs))
	return nil
}

type imageFold struct {
	votes int64
	wins  int64
}

// aggregatePeriod 分页扫描 [start, end) 内的全部投票，折叠出四类聚合，
// 然后整体覆盖该周期的汇总行
func (j *AnalyticsJob) aggregatePeriod(ctx context.Context, period string, start, end time.Time) error {
	images := make(map[string]*imageFold)
	categories := make(map[string]int64)
	userVotes := make(map[string]int64)
	countries := make(map[string]map[string]int64)
	var totalVotes int64

	offset := 0
	for {
		votes, err := j.voteRepo.GetVotesInRange(ctx, start, end, offset, j.pageSize)
		if err != nil {
			return err
		}

		for _, v := range votes {
			winner := images[v.WinnerImageID]
			if winner == nil {
				winner = &imageFold{}
				images[v.WinnerImageID] = winner
			}
			winner.votes++
			winner.wins++

			loser := images[v.LoserImageID]
			if loser == nil {
				loser = &imageFold{}
				images[v.LoserImageID] = loser
			}
			loser.votes++

			categories[v.Category]++
			userVotes[v.CallerID]++
			totalVotes++

			country := v.Country
			if country == "" {
				country = "unknown"
			}
			if countries[country] == nil {
				countries[country] = make(map[string]int64)
			}
			countries[country][v.Category]++
		}

		if len(votes) < j.pageSize {
			break
		}
		offset += j.pageSize
	}

	dateKey := util.PeriodDateKey(period, end)
	rows := j.buildRows(period, dateKey, images, categories, userVotes, countries, totalVotes)

	return j.rollupRepo.ReplacePeriod(ctx, period, dateKey, rows)
}

// buildRows 汇总行排序后写入，保证对同一关闭周期重复重算输出逐字节一致
func (j *AnalyticsJob) buildRows(
	period, dateKey string,
	images map[string]*imageFold,
	categories map[string]int64,
	userVotes map[string]int64,
	countries map[string]map[string]int64,
	totalVotes int64,
) []*model.AnalyticsRollup {
	rows := make([]*model.AnalyticsRollup, 0, len(images)+len(categories)+len(countries)+1)

	for imageID, fold := range images {
		winRate := float64(0)
		if fold.votes > 0 {
			winRate = float64(fold.wins) / float64(fold.votes)
		}
		rows = append(rows, &model.AnalyticsRollup{
			RollupType: model.RollupTypeImage,
			Period:     period,
			DateKey:    dateKey,
			ItemID:     imageID,
			VoteCount:  fold.votes,
			WinCount:   fold.wins,
			WinRate:    winRate,
		})
	}

	for category, count := range categories {
		rows = append(rows, &model.AnalyticsRollup{
			RollupType: model.RollupTypeCategory,
			Period:     period,
			DateKey:    dateKey,
			ItemID:     category,
			VoteCount:  count,
		})
	}

	uniqueUsers := int64(len(userVotes))
	avgVotes := float64(0)
	if uniqueUsers > 0 {
		avgVotes = float64(totalVotes) / float64(uniqueUsers)
	}
	rows = append(rows, &model.AnalyticsRollup{
		RollupType:      model.RollupTypeUserSummary,
		Period:          period,
		DateKey:         dateKey,
		ItemID:          summaryItem,
		VoteCount:       totalVotes,
		UniqueUsers:     uniqueUsers,
		AvgVotesPerUser: avgVotes,
	})

	for country, byCategory := range countries {
		var countryTotal int64
		for _, count := range byCategory {
			countryTotal += count
		}
		breakdown, _ := json.Marshal(byCategory)
		rows = append(rows, &model.AnalyticsRollup{
			RollupType: model.RollupTypeCountry,
			Period:     period,
			DateKey:    dateKey,
			ItemID:     country,
			VoteCount:  countryTotal,
			Breakdown:  string(breakdown),
		})
	}

	sort.Slice(rows, func(i, k int) bool {
		if rows[i].RollupType != rows[k].RollupType {
			return rows[i].RollupType < rows[k].RollupType
		}
		return rows[i].ItemID < rows[k].ItemID
	})

	return rows
}
