package dto

// VoteCreateDTO 提交投票请求，身份不在请求体里，由中间件解析
type VoteCreateDTO struct {
	WinnerID  string `json:"winnerId" binding:"required"`
	LoserID   string `json:"loserId" binding:"required"`
	Category  string `json:"category" binding:"required"`
	SessionID string `json:"sessionId" binding:"required"`
}

// VoteResultDTO 投票成功响应
type VoteResultDTO struct {
	Success bool   `json:"success"`
	VoteID  string `json:"voteId"`
	Message string `json:"message"`
}

// VoteErrorDTO 投票失败响应
type VoteErrorDTO struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
