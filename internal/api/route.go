package api

import (
	"Pulseboard/internal/api/config"
	"Pulseboard/internal/api/middleware"
	"Pulseboard/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, cfg *config.Config) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware("/api/ping"))
	r.Use(middleware.CORSMiddleware(cfg.Cors.AllowedOrigins))
	logger.SetupGin(r, cfg.Logstash.Index)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong"})
		})

		platformGroup := apiGroup.Group("/platform-management")
		{
			platformGroup.GET("", group.PlatformHandler.ListPlatforms)
			platformGroup.POST("", group.PlatformHandler.CreatePlatform)
			platformGroup.DELETE("", group.PlatformHandler.DeletePlatform)
		}

		statsGroup := apiGroup.Group("/stats")
		{
			statsGroup.GET("/audience", group.StatsHandler.GetAudienceReach)
			statsGroup.GET("/engagement", group.StatsHandler.GetEngagement)
			statsGroup.GET("/engagement/series", group.StatsHandler.GetEngagementSeries)
			statsGroup.GET("/performance", group.StatsHandler.GetPerformance)
			statsGroup.GET("/trends", group.StatsHandler.GetTrends)
			statsGroup.GET("/kpis", group.StatsHandler.GetKpis)
			statsGroup.GET("/platform", group.StatsHandler.GetPlatformStats)
			statsGroup.GET("/comparison", group.StatsHandler.GetComparison)
		}
	}

	return r
}
