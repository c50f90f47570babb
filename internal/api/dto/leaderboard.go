package dto

// LeaderboardEntryDTO 排行榜单行
type LeaderboardEntryDTO struct {
	ItemID          string  `json:"itemId"`
	VoteCount       int64   `json:"voteCount"`
	WinCount        int64   `json:"winCount"`
	WinRate         float64 `json:"winRate"`
	UniqueUsers     int64   `json:"uniqueUsers,omitempty"`
	AvgVotesPerUser float64 `json:"avgVotesPerUser,omitempty"`
}
