package service

import (
	"Pulseboard/internal/model"
	"Pulseboard/internal/pkg/database"
	"Pulseboard/internal/pkg/redis"
	"Pulseboard/internal/pkg/testutil"
	"Pulseboard/internal/repository"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var (
	fixedNow = time.Date(2026, 10, 18, 14, 30, 0, 0, time.UTC)
	today    = time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	priorDay = time.Date(2026, 9, 18, 0, 0, 0, 0, time.UTC)
)

type testEnv struct {
	db       *gorm.DB
	gw       *database.Gateway
	platform *platformServiceImpl
	kpi      *kpiServiceImpl
	stats    *statsServiceImpl
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewTestDB(t)
	gw := database.NewGateway(db)
	cache := redis.NewStatsCache(time.Hour).WithClock(func() time.Time { return fixedNow })

	platformRepo := repository.NewPlatformRepo(gw)
	snapshotRepo := repository.NewSnapshotRepo(gw)
	kpiRepo := repository.NewKpiRepo(gw)
	statsRepo := repository.NewStatsRepo(gw)

	platformSvc := NewPlatformService(gw, platformRepo, snapshotRepo, kpiRepo, cache).(*platformServiceImpl)
	platformSvc.now = func() time.Time { return fixedNow }
	kpiSvc := NewKpiService(gw, kpiRepo, snapshotRepo, cache).(*kpiServiceImpl)
	kpiSvc.now = func() time.Time { return fixedNow }
	statsSvc := NewStatsService(statsRepo, cache, 30).(*statsServiceImpl)
	statsSvc.now = func() time.Time { return fixedNow }

	return &testEnv{db: db, gw: gw, platform: platformSvc, kpi: kpiSvc, stats: statsSvc}
}

// useRedis 让缓存连接 miniredis，测试结束后恢复
func useRedis(t *testing.T) {
	t.Helper()
	_, client := testutil.NewTestRedis(t)
	prev := redis.Rdb
	redis.Rdb = client
	t.Cleanup(func() { redis.Rdb = prev })
}

func (e *testEnv) seedKpi(t *testing.T, name string, date time.Time, value, previous float64) {
	t.Helper()
	require.NoError(t, e.db.Create(&model.DashboardKpi{
		Name: name, Date: date, Value: value, PreviousValue: previous,
	}).Error)
}

func (e *testEnv) kpiRow(t *testing.T, name string, date time.Time) *model.DashboardKpi {
	t.Helper()
	var rows []model.DashboardKpi
	require.NoError(t, e.db.Where("name = ? AND date = ?", name, date).Find(&rows).Error)
	if len(rows) == 0 {
		return nil
	}
	return &rows[0]
}

func (e *testEnv) countRows(t *testing.T, value any, platformID uint64) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(value).Where("platform_id = ?", platformID).Count(&n).Error)
	return n
}
