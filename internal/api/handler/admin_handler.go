package handler

import (
	"Faceoff/internal/job"
	"Faceoff/internal/pkg/response"
	"Faceoff/internal/service"
	log "log/slog"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	analyticsJob *job.AnalyticsJob
}

func NewAdminHandler(analyticsJob *job.AnalyticsJob) *AdminHandler {
	return &AdminHandler{analyticsJob: analyticsJob}
}

// TriggerAggregation 手动触发一次完整的汇总重算，正常由定时任务驱动
func (s *AdminHandler) TriggerAggregation(c *gin.Context) {
	ctx := c.Request.Context()
	if err := s.analyticsJob.RunOnce(ctx); err != nil {
		log.ErrorContext(ctx, "manual aggregation failed", "err", err)
		response.Error(c, service.UnExpectedError)
		return
	}

	response.Success(c, nil)
}
