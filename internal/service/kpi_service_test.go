package service

import (
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/model"
	"Pulseboard/internal/pkg/consts"
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintString(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func TestGetKpis_GrowthPercentage(t *testing.T) {
	env := newTestEnv(t)
	env.seedKpi(t, consts.KpiTotalFollowers, today, 1100, 1000)
	env.seedKpi(t, "Total Posts", today, 50, 0)
	env.seedKpi(t, "Stale", priorDay, 1, 1)

	kpis, err := env.kpi.GetKpis(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, kpis, 2)

	assert.Equal(t, "Total Followers", kpis[0].Name)
	assert.InDelta(t, 10.0, kpis[0].GrowthPercentage, 1e-9)
	assert.Equal(t, "2026-10-18", kpis[0].Date)
	assert.Equal(t, "Total Posts", kpis[1].Name)
	assert.Equal(t, 0.0, kpis[1].GrowthPercentage)
}

func TestGetKpis_ExplicitDateAndFallback(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedKpi(t, consts.KpiTotalFollowers, daysAgo(5), 10, 5)
	env.seedKpi(t, consts.KpiTotalFollowers, daysAgo(2), 20, 10)

	kpis, err := env.kpi.GetKpis(ctx, "2026-10-13")
	require.NoError(t, err)
	require.Len(t, kpis, 1)
	assert.InDelta(t, 10, kpis[0].Value, 1e-9)

	// 今日无数据，回退到最近的日期
	kpis, err = env.kpi.GetKpis(ctx, "")
	require.NoError(t, err)
	require.Len(t, kpis, 1)
	assert.Equal(t, "2026-10-16", kpis[0].Date)
	assert.InDelta(t, 100, kpis[0].GrowthPercentage, 1e-9)

	_, err = env.kpi.GetKpis(ctx, "10/16/2026")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestGetKpis_Empty(t *testing.T) {
	env := newTestEnv(t)
	kpis, err := env.kpi.GetKpis(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, kpis)
	assert.Empty(t, kpis)
}

func TestReconcileTotalFollowers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	a, err := env.platform.CreatePlatform(ctx, &dto.CreatePlatformDTO{Name: "A", Icon: "a", Color: "#a"})
	require.NoError(t, err)
	_, err = env.platform.CreatePlatform(ctx, &dto.CreatePlatformDTO{Name: "B", Icon: "b", Color: "#b"})
	require.NoError(t, err)
	require.NoError(t, env.db.Create(&model.PlatformFollower{PlatformID: a.ID, Date: today, Count: 250}).Error)

	// 行不存在时创建
	kpi, err := env.kpi.ReconcileTotalFollowers(ctx, fixedNow)
	require.NoError(t, err)
	assert.InDelta(t, 2250, kpi.Value, 1e-9)
	assert.InDelta(t, 1800, kpi.PreviousValue, 1e-9)
	assert.InDelta(t, 25, kpi.GrowthPercentage, 1e-9)

	// 已存在时覆盖为明细合计
	require.NoError(t, env.db.Model(&model.DashboardKpi{}).
		Where("name = ?", consts.KpiTotalFollowers).Update("value", 1).Error)
	_, err = env.kpi.ReconcileTotalFollowers(ctx, fixedNow)
	require.NoError(t, err)

	var rows []model.DashboardKpi
	require.NoError(t, env.db.Where("name = ?", consts.KpiTotalFollowers).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.InDelta(t, 2250, rows[0].Value, 1e-9)
}

func TestRefreshTotalFollowers_OnlyUpdatesExistingRow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	a, err := env.platform.CreatePlatform(ctx, &dto.CreatePlatformDTO{Name: "A", Icon: "a", Color: "#a"})
	require.NoError(t, err)
	require.NoError(t, env.db.Where("name = ?", consts.KpiTotalFollowers).Delete(&model.DashboardKpi{}).Error)

	// 行不存在时不创建
	kpi, err := env.kpi.RefreshTotalFollowers(ctx, fixedNow)
	require.NoError(t, err)
	assert.Nil(t, kpi)
	assert.Nil(t, env.kpiRow(t, consts.KpiTotalFollowers, today))

	env.seedKpi(t, consts.KpiTotalFollowers, today, 1, 1)
	require.NoError(t, env.db.Create(&model.PlatformFollower{PlatformID: a.ID, Date: today, Count: 50}).Error)
	kpi, err = env.kpi.RefreshTotalFollowers(ctx, fixedNow)
	require.NoError(t, err)
	require.NotNil(t, kpi)
	assert.InDelta(t, 1050, kpi.Value, 1e-9)
	assert.InDelta(t, 900, kpi.PreviousValue, 1e-9)
	assert.Equal(t, "2026-10-18", kpi.Date)
}

func TestStatsCache_InvalidatedByPlatformWrites(t *testing.T) {
	useRedis(t)
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedKpi(t, consts.KpiTotalFollowers, today, 100, 100)

	kpis, err := env.kpi.GetKpis(ctx, "")
	require.NoError(t, err)
	require.Len(t, kpis, 1)
	assert.InDelta(t, 100, kpis[0].Value, 1e-9)

	// 绕过服务直接改库，缓存仍返回旧值
	require.NoError(t, env.db.Model(&model.DashboardKpi{}).Where("name = ?", consts.KpiTotalFollowers).
		Update("value", 300).Error)
	kpis, err = env.kpi.GetKpis(ctx, "")
	require.NoError(t, err)
	assert.InDelta(t, 100, kpis[0].Value, 1e-9)

	_, err = env.platform.CreatePlatform(ctx, &dto.CreatePlatformDTO{Name: "New", Icon: "n", Color: "#n"})
	require.NoError(t, err)
	kpis, err = env.kpi.GetKpis(ctx, "")
	require.NoError(t, err)
	assert.InDelta(t, 1300, kpis[0].Value, 1e-9)
}
