package api

import (
	"Faceoff/internal/api/middleware"
	"Faceoff/internal/pkg/logger"
	"Faceoff/internal/pkg/ratelimit"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter(group *HandlersGroup, voteLimiter ratelimit.Limiter) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		voteGroup := apiGroup.Group("/vote")
		{
			voteGroup.Use(middleware.IdentityMiddleware())
			voteGroup.Use(middleware.RateLimitMiddleware(voteLimiter, middleware.KeyByCallerOrIP))
			{
				voteGroup.POST("", group.VoteHandler.Submit)
			}
		}

		apiGroup.GET("/leaderboard", group.LeaderboardHandler.GetLeaderboard)

		statsGroup := apiGroup.Group("/stats")
		{
			statsGroup.Use(middleware.IdentityMiddleware())
			{
				statsGroup.GET("/me", group.StatsHandler.GetMyStats)
			}
		}

		imageGroup := apiGroup.Group("/images")
		{
			imageGroup.GET("/pair", group.ImageHandler.GetPair)
			imageGroup.GET("/:image_id", group.ImageHandler.GetImage)
		}

		adminGroup := apiGroup.Group("/admin")
		{
			adminGroup.POST("/aggregate", group.AdminHandler.TriggerAggregation)
		}
	}

	return r
}
