package service

import (
	"Faceoff/internal/api/dto"
	"Faceoff/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type ImageService interface {
	GetImage(ctx context.Context, imageID string) (*dto.ImageDTO, error)
	GetRandomPair(ctx context.Context, category string) (*dto.ImagePairDTO, error)
}

type imageServiceImpl struct {
	imageRepo repository.ImageAggregateRepo
}

func NewImageService(imageRepo repository.ImageAggregateRepo) ImageService {
	return &imageServiceImpl{imageRepo: imageRepo}
}

func (s *imageServiceImpl) GetImage(ctx context.Context, imageID string) (*dto.ImageDTO, error) {
	agg, err := s.imageRepo.GetByID(ctx, imageID)
	if err != nil {
		return nil, UnExpectedError
	}
	if agg == nil {
		return nil, ErrImageNotFound
	}

	var result dto.ImageDTO
	if err = copier.Copy(&result, agg); err != nil {
		return nil, UnExpectedError
	}
	return &result, nil
}

// GetRandomPair 随机抽一对同分类图片供客户端对战展示
func (s *imageServiceImpl) GetRandomPair(ctx context.Context, category string) (*dto.ImagePairDTO, error) {
	pair, err := s.imageRepo.GetRandomPair(ctx, category)
	if err != nil {
		return nil, UnExpectedError
	}
	if len(pair) < 2 {
		return nil, ErrNotEnoughImages
	}

	var left, right dto.ImageDTO
	if err = copier.Copy(&left, pair[0]); err != nil {
		return nil, UnExpectedError
	}
	if err = copier.Copy(&right, pair[1]); err != nil {
		return nil, UnExpectedError
	}

	return &dto.ImagePairDTO{Left: &left, Right: &right}, nil
}
