package handler

import (
	"Faceoff/internal/model"
	"Faceoff/internal/pkg/response"
	"Faceoff/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	leaderboardSvc service.LeaderboardService
}

func NewLeaderboardHandler(leaderboardSvc service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardSvc: leaderboardSvc}
}

// GetLeaderboard 查询某类型某周期的排行榜
func (s *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	rollupType := c.DefaultQuery("type", model.RollupTypeImage)
	period := c.DefaultQuery("period", model.PeriodDay)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	entries, err := s.leaderboardSvc.GetLeaderboard(c.Request.Context(), rollupType, period, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, entries)
}
