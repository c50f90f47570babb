package repository

import (
	"Faceoff/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserStatsRepo interface {
	GetByCallerID(ctx context.Context, callerID string) (*model.UserStats, error)
	SaveStats(ctx context.Context, stats *model.UserStats) error
}

type userStatsRepoImpl struct {
	db *gorm.DB
}

func NewUserStatsRepository(db *gorm.DB) UserStatsRepo {
	return &userStatsRepoImpl{db: db}
}

// GetByCallerID 不存在时返回 nil，由状态机视作首次投票
func (r *userStatsRepoImpl) GetByCallerID(ctx context.Context, callerID string) (*model.UserStats, error) {
	var stats model.UserStats
	err := r.db.WithContext(ctx).Where("caller_id = ?", callerID).First(&stats).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &stats, nil
}

// SaveStats 采用 Upsert 逻辑，整行覆盖状态机的输出
func (r *userStatsRepoImpl) SaveStats(ctx context.Context, stats *model.UserStats) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "caller_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_votes",
			"current_streak",
			"longest_streak",
			"last_vote_date",
		}),
	}).Create(stats).Error
}
