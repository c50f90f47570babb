package api

import (
	"Faceoff/internal/api/handler"
)

// HandlersGroup 汇总全部 HTTP Handler，便于注入路由
type HandlersGroup struct {
	VoteHandler        *handler.VoteHandler
	LeaderboardHandler *handler.LeaderboardHandler
	StatsHandler       *handler.StatsHandler
	ImageHandler       *handler.ImageHandler
	AdminHandler       *handler.AdminHandler
}
