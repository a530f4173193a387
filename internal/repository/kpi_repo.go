package repository

import (
	"Pulseboard/internal/model"
	"Pulseboard/internal/pkg/database"
	"context"
	"time"
)

type KpiRepo interface {
	WithTx(tx *database.Gateway) KpiRepo
	AdjustKpi(ctx context.Context, name string, date time.Time, valueDelta, previousDelta float64) (int64, error)
	GetKpi(ctx context.Context, name string, date time.Time) (*model.DashboardKpi, error)
	ListKpisByDate(ctx context.Context, date time.Time) ([]*model.DashboardKpi, error)
	ListLatestKpis(ctx context.Context) ([]*model.DashboardKpi, error)
	SaveOrUpdateKpi(ctx context.Context, kpi *model.DashboardKpi) error
	UpdateKpiValues(ctx context.Context, name string, date time.Time, value, previous float64) (int64, error)
}

type kpiRepoImpl struct {
	gw *database.Gateway
}

func NewKpiRepo(gw *database.Gateway) KpiRepo {
	return &kpiRepoImpl{gw: gw}
}

func (s *kpiRepoImpl) WithTx(tx *database.Gateway) KpiRepo {
	return &kpiRepoImpl{gw: tx}
}

// AdjustKpi 原地增减，行不存在时影响行数为 0；在事务内由行锁串行化
func (s *kpiRepoImpl) AdjustKpi(ctx context.Context, name string, date time.Time, valueDelta, previousDelta float64) (int64, error) {
	return s.gw.Exec(ctx, `
		UPDATE dashboard_kpis
		SET value = value + ?,
		    previous_value = previous_value + ?
		WHERE name = ? AND date = ?`, valueDelta, previousDelta, name, date)
}

func (s *kpiRepoImpl) GetKpi(ctx context.Context, name string, date time.Time) (*model.DashboardKpi, error) {
	rows, err := database.Query[*model.DashboardKpi](ctx, s.gw, `
		SELECT id, name, value, previous_value, date
		FROM dashboard_kpis
		WHERE name = ? AND date = ?`, name, date)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (s *kpiRepoImpl) ListKpisByDate(ctx context.Context, date time.Time) ([]*model.DashboardKpi, error) {
	return database.Query[*model.DashboardKpi](ctx, s.gw, `
		SELECT id, name, value, previous_value, date
		FROM dashboard_kpis
		WHERE date = ?
		ORDER BY name`, date)
}

// ListLatestKpis 最近一个有数据日期的全部 KPI
func (s *kpiRepoImpl) ListLatestKpis(ctx context.Context) ([]*model.DashboardKpi, error) {
	return database.Query[*model.DashboardKpi](ctx, s.gw, `
		SELECT id, name, value, previous_value, date
		FROM dashboard_kpis
		WHERE date = (SELECT MAX(date) FROM dashboard_kpis)
		ORDER BY name`)
}

func (s *kpiRepoImpl) SaveOrUpdateKpi(ctx context.Context, kpi *model.DashboardKpi) error {
	return s.gw.Upsert(ctx, kpi, []string{"name", "date"}, []string{"value", "previous_value"})
}

// UpdateKpiValues 覆盖已有行的数值，不新建行
func (s *kpiRepoImpl) UpdateKpiValues(ctx context.Context, name string, date time.Time, value, previous float64) (int64, error) {
	return s.gw.Exec(ctx, `
		UPDATE dashboard_kpis
		SET value = ?,
		    previous_value = ?
		WHERE name = ? AND date = ?`, value, previous, name, date)
}
