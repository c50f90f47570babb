package model

import (
	"time"
)

const (
	RollupTypeImage       = "image"
	RollupTypeCategory    = "category"
	RollupTypeUserSummary = "user_summary"
	RollupTypeCountry     = "country"
)

const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
	PeriodAll   = "all"
)

// AnalyticsRollup 预聚合汇总行，按 (type, period, date_key, item_id) 唯一
// 定时任务整体覆盖写入；每票的 day 增量只是延迟优化
type AnalyticsRollup struct {
	ID              uint64    `gorm:"primaryKey"`
	RollupType      string    `gorm:"not null;size:16;index:idx_rollup,unique" json:"rollupType"`
	Period          string    `gorm:"not null;size:8;index:idx_rollup,unique" json:"period"`
	DateKey         string    `gorm:"not null;size:16;index:idx_rollup,unique;column:date_key" json:"dateKey"`
	ItemID          string    `gorm:"not null;size:64;index:idx_rollup,unique" json:"itemId"`
	VoteCount       int64     `gorm:"not null;default:0" json:"voteCount"`
	WinCount        int64     `gorm:"not null;default:0" json:"winCount"`
	WinRate         float64   `gorm:"not null;default:0" json:"winRate"`
	UniqueUsers     int64     `gorm:"not null;default:0" json:"uniqueUsers"`
	AvgVotesPerUser float64   `gorm:"not null;default:0" json:"avgVotesPerUser"`
	Breakdown       string    `gorm:"type:json" json:"breakdown"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (AnalyticsRollup) TableName() string {
	return "analytics_rollups"
}
