package model

import (
	"time"
)

// UserStats 用户个人投票统计，连续签到式的 streak 由状态机推导
type UserStats struct {
	CallerID      string    `gorm:"primaryKey;size:64" json:"callerId"`
	TotalVotes    int64     `gorm:"not null;default:0" json:"totalVotes"`
	CurrentStreak int       `gorm:"not null;default:0" json:"currentStreak"`
	LongestStreak int       `gorm:"not null;default:0" json:"longestStreak"`
	LastVoteDate  time.Time `gorm:"type:date" json:"lastVoteDate"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (UserStats) TableName() string {
	return "user_stats"
}
