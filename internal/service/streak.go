package service

import (
	"Faceoff/internal/model"
	"Faceoff/internal/pkg/util"
	"time"
)

// AdvanceStreak 根据上次投票日期推导新的连续投票状态。
// 纯函数：同一自然日不变（下限 1），恰好昨天 +1，间隔两天以上归 1，
// longest 永不回退，total 无条件 +1。
func AdvanceStreak(prev *model.UserStats, callerID string, now time.Time) *model.UserStats {
	stats := &model.UserStats{
		CallerID:      callerID,
		TotalVotes:    1,
		CurrentStreak: 1,
		LongestStreak: 1,
		LastVoteDate:  util.StartOfDay(now),
	}

	if prev == nil || prev.LastVoteDate.IsZero() {
		return stats
	}

	stats.TotalVotes = prev.TotalVotes + 1
	stats.LongestStreak = prev.LongestStreak

	switch {
	case util.SameDay(prev.LastVoteDate, now):
		if prev.CurrentStreak > 1 {
			stats.CurrentStreak = prev.CurrentStreak
		}
	case util.SameDay(prev.LastVoteDate, now.AddDate(0, 0, -1)):
		stats.CurrentStreak = prev.CurrentStreak + 1
	default:
		stats.CurrentStreak = 1
	}

	if stats.CurrentStreak > stats.LongestStreak {
		stats.LongestStreak = stats.CurrentStreak
	}

	return stats
}
