package dto

// UserStatsDTO 用户个人统计
type UserStatsDTO struct {
	CallerID      string `json:"callerId"`
	TotalVotes    int64  `json:"totalVotes"`
	CurrentStreak int    `json:"currentStreak"`
	LongestStreak int    `json:"longestStreak"`
	LastVoteDate  string `json:"lastVoteDate"`
}

// ImageDTO 单张图片的累计战绩
type ImageDTO struct {
	ImageID   string  `json:"imageId"`
	Category  string  `json:"category"`
	VoteCount int64   `json:"voteCount"`
	WinCount  int64   `json:"winCount"`
	Rating    float64 `json:"rating"`
}

// ImagePairDTO 一组待对战的图片
type ImagePairDTO struct {
	Left  *ImageDTO `json:"left"`
	Right *ImageDTO `json:"right"`
}
