package repository

import (
	"Faceoff/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

type VoteRepo interface {
	CreateVote(ctx context.Context, vote *model.Vote) error
	GetRecentByCaller(ctx context.Context, callerID string, since time.Time) ([]*model.Vote, error)
	GetVotesInRange(ctx context.Context, start, end time.Time, offset, limit int) ([]*model.Vote, error)
}

type voteRepoImpl struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) VoteRepo {
	return &voteRepoImpl{db: db}
}

// CreateVote 写入投票事实行，主键冲突由上层判定为重复提交
func (r *voteRepoImpl) CreateVote(ctx context.Context, vote *model.Vote) error {
	return r.db.WithContext(ctx).Create(vote).Error
}

// GetRecentByCaller 获取用户 since 之后的投票，用于重复投票判定
func (r *voteRepoImpl) GetRecentByCaller(ctx context.Context, callerID string, since time.Time) ([]*model.Vote, error) {
	votes := make([]*model.Vote, 0)
	result := r.db.WithContext(ctx).
		Where("caller_id = ?", callerID).
		Where("created_at >= ?", since).
		Order("created_at DESC").
		Find(&votes)
	if result.Error != nil {
		return nil, result.Error
	}
	return votes, nil
}

// GetVotesInRange 按时间区间分页扫描投票账本，聚合任务使用
func (r *voteRepoImpl) GetVotesInRange(ctx context.Context, start, end time.Time, offset, limit int) ([]*model.Vote, error) {
	votes := make([]*model.Vote, 0)
	result := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at < ?", start, end).
		Order("created_at ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&votes)
	if result.Error != nil {
		return nil, result.Error
	}
	return votes, nil
}
