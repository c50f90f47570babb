package handler

import (
	"Faceoff/internal/api/middleware"
	"Faceoff/internal/pkg/response"
	"Faceoff/internal/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsSvc service.StatsService
}

func NewStatsHandler(statsSvc service.StatsService) *StatsHandler {
	return &StatsHandler{statsSvc: statsSvc}
}

// GetMyStats 查询当前调用方的投票统计
func (s *StatsHandler) GetMyStats(c *gin.Context) {
	callerID := middleware.CallerID(c)
	if middleware.IsAnonymous(callerID) {
		response.Error(c, service.ErrStatsNotFound)
		return
	}

	stats, err := s.statsSvc.GetUserStats(c.Request.Context(), callerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, stats)
}
