package job

import (
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/model"
	"Pulseboard/internal/pkg/consts"
	"Pulseboard/internal/pkg/database"
	"Pulseboard/internal/pkg/logger"
	"Pulseboard/internal/pkg/redis"
	"Pulseboard/internal/pkg/testutil"
	"Pulseboard/internal/repository"
	"Pulseboard/internal/service"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKpiService struct {
	service.KpiService
	calls []time.Time
	err   error
}

func (f *fakeKpiService) RefreshTotalFollowers(_ context.Context, date time.Time) (*dto.KpiDTO, error) {
	f.calls = append(f.calls, date)
	if f.err != nil {
		return nil, f.err
	}
	return &dto.KpiDTO{Name: "Total Followers", Value: 10, PreviousValue: 5}, nil
}

func newJob(svc service.KpiService) *KpiReconcileJob {
	j := NewKpiReconcileJob(svc)
	j.now = func() time.Time { return time.Date(2026, 10, 18, 0, 0, 5, 0, time.UTC) }
	return j
}

func jobCtx() context.Context {
	return logger.WithTraceID(context.Background(), "job-test")
}

func TestKpiReconcileJob_WithoutRedis(t *testing.T) {
	prev := redis.Rdb
	redis.Rdb = nil
	t.Cleanup(func() { redis.Rdb = prev })

	svc := &fakeKpiService{}
	j := newJob(svc)
	assert.True(t, j.run(jobCtx()))
	assert.True(t, j.run(jobCtx()))
	require.Len(t, svc.calls, 2)
	assert.True(t, svc.calls[0].Equal(time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)))
}

func TestKpiReconcileJob_LockedPerDay(t *testing.T) {
	mr, client := testutil.NewTestRedis(t)
	prev := redis.Rdb
	redis.Rdb = client
	t.Cleanup(func() { redis.Rdb = prev })

	svc := &fakeKpiService{}
	j := newJob(svc)
	assert.True(t, j.run(jobCtx()))
	assert.False(t, j.run(jobCtx()))
	assert.Len(t, svc.calls, 1)
	assert.True(t, mr.Exists("kpi:reconcile:lock:2026-10-17"))

	mr.FastForward(2 * time.Hour)
	assert.True(t, j.run(jobCtx()))
	assert.Len(t, svc.calls, 2)
}

func TestKpiReconcileJob_Failure(t *testing.T) {
	prev := redis.Rdb
	redis.Rdb = nil
	t.Cleanup(func() { redis.Rdb = prev })

	svc := &fakeKpiService{err: errors.New("boom")}
	assert.False(t, newJob(svc).run(jobCtx()))
	assert.Len(t, svc.calls, 1)
}

func withoutRedis(t *testing.T) {
	t.Helper()
	prev := redis.Rdb
	redis.Rdb = nil
	t.Cleanup(func() { redis.Rdb = prev })
}

func newKpiService(gw *database.Gateway) service.KpiService {
	return service.NewKpiService(gw, repository.NewKpiRepo(gw), repository.NewSnapshotRepo(gw), redis.NewStatsCache(time.Hour))
}

func TestKpiReconcileJob_KeepsPreviousDayKpis(t *testing.T) {
	withoutRedis(t)
	db := testutil.NewTestDB(t)
	gw := database.NewGateway(db)

	yesterday := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	platform := &model.Platform{Name: "A", Icon: "a", Color: "#a"}
	require.NoError(t, db.Create(platform).Error)
	require.NoError(t, db.Create(&model.PlatformFollower{PlatformID: platform.ID, Date: yesterday, Count: 1200}).Error)
	require.NoError(t, db.Create(&model.PlatformFollower{PlatformID: platform.ID, Date: yesterday.AddDate(0, 0, -30), Count: 1000}).Error)
	for _, k := range []*model.DashboardKpi{
		{Name: consts.KpiTotalFollowers, Date: yesterday, Value: 1, PreviousValue: 1},
		{Name: "Total Posts", Date: yesterday, Value: 40, PreviousValue: 20},
		{Name: "Engagement Rate", Date: yesterday, Value: 4.5, PreviousValue: 4},
	} {
		require.NoError(t, db.Create(k).Error)
	}

	svc := newKpiService(gw)
	assert.True(t, newJob(svc).run(jobCtx()))

	var n int64
	require.NoError(t, db.Model(&model.DashboardKpi{}).Where("date > ?", yesterday).Count(&n).Error)
	assert.Zero(t, n)

	kpis, err := svc.GetKpis(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, kpis, 3)
	names := make(map[string]*dto.KpiDTO, len(kpis))
	for _, k := range kpis {
		assert.Equal(t, "2026-10-17", k.Date)
		names[k.Name] = k
	}
	require.Contains(t, names, consts.KpiTotalFollowers)
	assert.InDelta(t, 1200, names[consts.KpiTotalFollowers].Value, 1e-9)
	assert.InDelta(t, 1000, names[consts.KpiTotalFollowers].PreviousValue, 1e-9)
	assert.Contains(t, names, "Total Posts")
	assert.Contains(t, names, "Engagement Rate")
}

func TestKpiReconcileJob_MissingRowNotCreated(t *testing.T) {
	withoutRedis(t)
	db := testutil.NewTestDB(t)

	assert.True(t, newJob(newKpiService(database.NewGateway(db))).run(jobCtx()))

	var n int64
	require.NoError(t, db.Model(&model.DashboardKpi{}).Count(&n).Error)
	assert.Zero(t, n)
}
