package model

import (
	"time"
)

// ImageAggregate 每张图片的累计对战统计
// rating 为派生值 win_count / vote_count，允许短暂不一致
type ImageAggregate struct {
	ImageID   string    `gorm:"primaryKey;size:64" json:"imageId"`
	Category  string    `gorm:"not null;size:64;index:idx_category" json:"category"`
	VoteCount int64     `gorm:"not null;default:0" json:"voteCount"`
	WinCount  int64     `gorm:"not null;default:0" json:"winCount"`
	Rating    float64   `gorm:"not null;default:0" json:"rating"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (ImageAggregate) TableName() string {
	return "image_aggregates"
}
