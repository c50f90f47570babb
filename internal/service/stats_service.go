package service

import (
	"Faceoff/internal/api/dto"
	"Faceoff/internal/pkg/consts"
	"Faceoff/internal/pkg/redis"
	"Faceoff/internal/repository"
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
)

const statsCacheTTL = 30 * time.Second

type StatsService interface {
	GetUserStats(ctx context.Context, callerID string) (*dto.UserStatsDTO, error)
}

type statsServiceImpl struct {
	statsRepo repository.UserStatsRepo
}

func NewStatsService(statsRepo repository.UserStatsRepo) StatsService {
	return &statsServiceImpl{statsRepo: statsRepo}
}

func (s *statsServiceImpl) GetUserStats(ctx context.Context, callerID string) (*dto.UserStatsDTO, error) {
	cacheKey := consts.UserStatsKey + callerID
	if cached, err := redis.GetValue(ctx, cacheKey); err == nil && cached != "" {
		var result dto.UserStatsDTO
		if err = json.Unmarshal([]byte(cached), &result); err == nil {
			return &result, nil
		}
	}

	stats, err := s.statsRepo.GetByCallerID(ctx, callerID)
	if err != nil {
		return nil, UnExpectedError
	}
	if stats == nil {
		return nil, ErrStatsNotFound
	}

	var result dto.UserStatsDTO
	if err = copier.Copy(&result, stats); err != nil {
		return nil, UnExpectedError
	}
	result.LastVoteDate = stats.LastVoteDate.Format("2006-01-02")

	if payload, err := json.Marshal(&result); err == nil {
		_ = redis.SetWithExpiration(ctx, cacheKey, payload, statsCacheTTL)
	}

	return &result, nil
}
