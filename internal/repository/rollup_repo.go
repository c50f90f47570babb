package repository

import (
	"Faceoff/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RollupRepo interface {
	IncrementDay(ctx context.Context, rollupType, dateKey, itemID string, won bool) error
	ReplacePeriod(ctx context.Context, period, dateKey string, rows []*model.AnalyticsRollup) error
	GetRollups(ctx context.Context, rollupType, period, dateKey string, limit int) ([]*model.AnalyticsRollup, error)
}

type rollupRepoImpl struct {
	db *gorm.DB
}

func NewRollupRepository(db *gorm.DB) RollupRepo {
	return &rollupRepoImpl{db: db}
}

// IncrementDay 每票对 day 周期的增量更新，只是延迟优化，
// 聚合任务的整体重算随时会覆盖这些行
func (r *rollupRepoImpl) IncrementDay(ctx context.Context, rollupType, dateKey, itemID string, won bool) error {
	winDelta := 0
	if won {
		winDelta = 1
	}

	row := &model.AnalyticsRollup{
		RollupType: rollupType,
		Period:     model.PeriodDay,
		DateKey:    dateKey,
		ItemID:     itemID,
		VoteCount:  1,
		WinCount:   int64(winDelta),
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "rollup_type"}, {Name: "period"}, {Name: "date_key"}, {Name: "item_id"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"vote_count": gorm.Expr("vote_count + 1"),
			"win_count":  gorm.Expr("win_count + ?", winDelta),
		}),
	}).Create(row).Error
}

// ReplacePeriod 整体覆盖一个周期的汇总行：同一事务内先删后批量写，
// 对已关闭周期重复执行结果一致
func (r *rollupRepoImpl) ReplacePeriod(ctx context.Context, period, dateKey string, rows []*model.AnalyticsRollup) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("period = ? AND date_key = ?", period, dateKey).
			Delete(&model.AnalyticsRollup{}).Error
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, 200).Error
	})
}

// GetRollups 读取一个周期内某类型的汇总行，按票数倒序
func (r *rollupRepoImpl) GetRollups(ctx context.Context, rollupType, period, dateKey string, limit int) ([]*model.AnalyticsRollup, error) {
	rows := make([]*model.AnalyticsRollup, 0)
	result := r.db.WithContext(ctx).
		Where("rollup_type = ? AND period = ? AND date_key = ?", rollupType, period, dateKey).
		Order("vote_count DESC").
		Limit(limit).
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}
