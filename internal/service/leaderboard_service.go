package service

import (
	"Faceoff/internal/api/dto"
	"Faceoff/internal/model"
	"Faceoff/internal/pkg/consts"
	"Faceoff/internal/pkg/redis"
	"Faceoff/internal/pkg/util"
	"Faceoff/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
)

const leaderboardCacheTTL = time.Minute

var validPeriods = map[string]bool{
	model.PeriodDay:   true,
	model.PeriodWeek:  true,
	model.PeriodMonth: true,
	model.PeriodYear:  true,
	model.PeriodAll:   true,
}

var validTypes = map[string]bool{
	model.RollupTypeImage:    true,
	model.RollupTypeCategory: true,
	model.RollupTypeCountry:  true,
}

type LeaderboardService interface {
	GetLeaderboard(ctx context.Context, rollupType, period string, limit int) ([]*dto.LeaderboardEntryDTO, error)
}

type leaderboardServiceImpl struct {
	rollupRepo repository.RollupRepo
	now        func() time.Time
}

func NewLeaderboardService(rollupRepo repository.RollupRepo) LeaderboardService {
	return &leaderboardServiceImpl{
		rollupRepo: rollupRepo,
		now:        time.Now,
	}
}

// GetLeaderboard 读当前周期的汇总行，Redis 读穿透缓存挡住热点查询
func (s *leaderboardServiceImpl) GetLeaderboard(ctx context.Context, rollupType, period string, limit int) ([]*dto.LeaderboardEntryDTO, error) {
	if !validTypes[rollupType] {
		return nil, ErrInvalidType
	}
	if !validPeriods[period] {
		return nil, ErrInvalidPeriod
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	dateKey := util.PeriodDateKey(period, s.now())
	cacheKey := consts.LeaderboardKey + rollupType + ":" + period + ":" + dateKey

	if cached, err := redis.GetValue(ctx, cacheKey); err == nil && cached != "" {
		entries := make([]*dto.LeaderboardEntryDTO, 0)
		if err = json.Unmarshal([]byte(cached), &entries); err == nil && len(entries) >= limit {
			return entries[:limit], nil
		}
	}

	rows, err := s.rollupRepo.GetRollups(ctx, rollupType, period, dateKey, limit)
	if err != nil {
		log.ErrorContext(ctx, "leaderboard query failed", "type", rollupType, "period", period, "err", err)
		return nil, UnExpectedError
	}

	entries := make([]*dto.LeaderboardEntryDTO, 0, len(rows))
	if err = copier.Copy(&entries, rows); err != nil {
		return nil, UnExpectedError
	}

	if payload, err := json.Marshal(entries); err == nil {
		_ = redis.SetWithExpiration(ctx, cacheKey, payload, leaderboardCacheTTL)
	}

	return entries, nil
}
