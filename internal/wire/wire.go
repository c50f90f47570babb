package wire

import (
	"Faceoff/internal/api"
	"Faceoff/internal/api/config"
	"Faceoff/internal/api/handler"
	"Faceoff/internal/job"
	"Faceoff/internal/pkg/cron"
	"Faceoff/internal/pkg/geo"
	"Faceoff/internal/pkg/kafka"
	"Faceoff/internal/pkg/ratelimit"
	"Faceoff/internal/repository"
	"Faceoff/internal/service"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router        *gin.Engine
	DB            *gorm.DB
	CronMgr       *cron.Manager
	VotePublisher *kafka.VotePublisher
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	voteRepo := repository.NewVoteRepository(db)
	imageRepo := repository.NewImageAggregateRepository(db)
	statsRepo := repository.NewUserStatsRepository(db)
	rollupRepo := repository.NewRollupRepository(db)

	votePublisher, err := kafka.NewVotePublisher(cfg.Kafka)
	if err != nil {
		return nil, err
	}

	dedupWindow := time.Duration(cfg.Vote.DedupWindow) * time.Second
	dedupService := service.NewDedupService(voteRepo, dedupWindow)

	voteService := service.NewVoteService(voteRepo, imageRepo, statsRepo, rollupRepo, dedupService, votePublisher)
	leaderboardService := service.NewLeaderboardService(rollupRepo)
	statsService := service.NewStatsService(statsRepo)
	imageService := service.NewImageService(imageRepo)

	analyticsJob := job.NewAnalyticsJob(voteRepo, rollupRepo, cfg.Analytics)

	geoClient := geo.NewClient(cfg.Geo)

	handlers := &api.HandlersGroup{
		VoteHandler:        handler.NewVoteHandler(voteService, geoClient),
		LeaderboardHandler: handler.NewLeaderboardHandler(leaderboardService),
		StatsHandler:       handler.NewStatsHandler(statsService),
		ImageHandler:       handler.NewImageHandler(imageService),
		AdminHandler:       handler.NewAdminHandler(analyticsJob),
	}

	voteLimiter := ratelimit.NewFixedWindow(cfg.Vote.RateLimit, time.Duration(cfg.Vote.RateWindow)*time.Second)

	router := api.SetupRouter(handlers, voteLimiter)

	cronMgr := cron.NewCronManager(analyticsJob)

	return &ApplicationContainer{
		Router:        router,
		DB:            db,
		CronMgr:       cronMgr,
		VotePublisher: votePublisher,
	}, nil
}
