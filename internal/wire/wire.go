package wire

import (
	"Pulseboard/internal/api"
	"Pulseboard/internal/api/config"
	"Pulseboard/internal/api/handler"
	"Pulseboard/internal/job"
	"Pulseboard/internal/pkg/cron"
	"Pulseboard/internal/pkg/database"
	"Pulseboard/internal/pkg/redis"
	"Pulseboard/internal/repository"
	"Pulseboard/internal/service"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router      *gin.Engine
	DB          *gorm.DB
	Gateway     *database.Gateway
	CronMgr     *cron.Manager
	PlatformSvc service.PlatformService
	KpiSvc      service.KpiService
	StatsSvc    service.StatsService
}

// BuildServices 只构建服务层，命令行工具复用
func BuildServices(db *gorm.DB, cfg *config.Config) *ApplicationContainer {
	gw := database.NewGateway(db)

	platformRepo := repository.NewPlatformRepo(gw)
	snapshotRepo := repository.NewSnapshotRepo(gw)
	kpiRepo := repository.NewKpiRepo(gw)
	statsRepo := repository.NewStatsRepo(gw)

	statsCache := redis.NewStatsCache(time.Duration(cfg.Stats.CacheTTLMinutes) * time.Minute)

	return &ApplicationContainer{
		DB:          db,
		Gateway:     gw,
		PlatformSvc: service.NewPlatformService(gw, platformRepo, snapshotRepo, kpiRepo, statsCache),
		KpiSvc:      service.NewKpiService(gw, kpiRepo, snapshotRepo, statsCache),
		StatsSvc:    service.NewStatsService(statsRepo, statsCache, cfg.Stats.DefaultWindowDays),
	}
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	app := BuildServices(db, cfg)

	handlers := &api.HandlersGroup{
		PlatformHandler: handler.NewPlatformHandler(app.PlatformSvc),
		StatsHandler:    handler.NewStatsHandler(app.StatsSvc, app.KpiSvc),
	}
	app.Router = api.SetupRouter(handlers, cfg)

	kpiReconcileJob := job.NewKpiReconcileJob(app.KpiSvc)
	app.CronMgr = cron.NewCronManager(cfg.Cron.ReconcileSpec, kpiReconcileJob)

	return app, nil
}
