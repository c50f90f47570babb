package model

import (
	"time"
)

// Vote 投票事实表，只追加不修改
type Vote struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	CallerID      string    `gorm:"not null;size:64;index:idx_caller_created" json:"callerId"`
	WinnerImageID string    `gorm:"not null;size:64;index:idx_winner" json:"winnerImageId"`
	LoserImageID  string    `gorm:"not null;size:64" json:"loserImageId"`
	Category      string    `gorm:"not null;size:64" json:"category"`
	SessionID     string    `gorm:"not null;size:64" json:"sessionId"`
	Country       string    `gorm:"size:8" json:"country"`
	CreatedAt     time.Time `gorm:"index:idx_caller_created;index:idx_created" json:"createdAt"`
}

func (Vote) TableName() string {
	return "votes"
}
