package repository

import (
	"Faceoff/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ImageAggregateRepo interface {
	ApplyVote(ctx context.Context, imageID, category string, won bool) error
	GetByID(ctx context.Context, imageID string) (*model.ImageAggregate, error)
	GetRandomPair(ctx context.Context, category string) ([]*model.ImageAggregate, error)
}

type imageAggregateRepoImpl struct {
	db *gorm.DB
}

func NewImageAggregateRepository(db *gorm.DB) ImageAggregateRepo {
	return &imageAggregateRepoImpl{db: db}
}

// ApplyVote 采用 Upsert 逻辑，计数用原子自增而非读改写，
// rating 在同一条语句里由数据库按自增后的值重算，vote_count 此时必大于 0
func (r *imageAggregateRepoImpl) ApplyVote(ctx context.Context, imageID, category string, won bool) error {
	winDelta := 0
	if won {
		winDelta = 1
	}

	agg := &model.ImageAggregate{
		ImageID:   imageID,
		Category:  category,
		VoteCount: 1,
		WinCount:  int64(winDelta),
		Rating:    float64(winDelta),
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "image_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"vote_count": gorm.Expr("vote_count + 1"),
			"win_count":  gorm.Expr("win_count + ?", winDelta),
			// rating 用自增后的值重算，表达式内联避免依赖 SET 子句的求值顺序
			"rating": gorm.Expr("(win_count + ?) / (vote_count + 1)", winDelta),
		}),
	}).Create(agg).Error
}

func (r *imageAggregateRepoImpl) GetByID(ctx context.Context, imageID string) (*model.ImageAggregate, error) {
	var agg model.ImageAggregate
	err := r.db.WithContext(ctx).Where("image_id = ?", imageID).First(&agg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &agg, nil
}

// GetRandomPair 从同一分类随机抽两张图片用于对战
func (r *imageAggregateRepoImpl) GetRandomPair(ctx context.Context, category string) ([]*model.ImageAggregate, error) {
	pair := make([]*model.ImageAggregate, 0, 2)
	query := r.db.WithContext(ctx)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	result := query.Order("RAND()").Limit(2).Find(&pair)
	if result.Error != nil {
		return nil, result.Error
	}
	return pair, nil
}
