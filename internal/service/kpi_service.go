package service

import (
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/model"
	"Pulseboard/internal/pkg/consts"
	"Pulseboard/internal/pkg/database"
	"Pulseboard/internal/pkg/redis"
	"Pulseboard/internal/pkg/util"
	"Pulseboard/internal/repository"
	"context"
	log "log/slog"
	"time"
)

type KpiService interface {
	GetKpis(ctx context.Context, date string) ([]*dto.KpiDTO, error)
	ReconcileTotalFollowers(ctx context.Context, date time.Time) (*dto.KpiDTO, error)
	RefreshTotalFollowers(ctx context.Context, date time.Time) (*dto.KpiDTO, error)
}

type kpiServiceImpl struct {
	gw           *database.Gateway
	kpiRepo      repository.KpiRepo
	snapshotRepo repository.SnapshotRepo
	statsCache   *redis.StatsCache
	now          func() time.Time
}

func NewKpiService(
	gw *database.Gateway,
	kpiRepo repository.KpiRepo,
	snapshotRepo repository.SnapshotRepo,
	statsCache *redis.StatsCache,
) KpiService {
	return &kpiServiceImpl{
		gw:           gw,
		kpiRepo:      kpiRepo,
		snapshotRepo: snapshotRepo,
		statsCache:   statsCache,
		now:          time.Now,
	}
}

// GetKpis 查询指定日期（默认今日）的 KPI，该日无数据时回退到最近有数据的日期
func (s *kpiServiceImpl) GetKpis(ctx context.Context, date string) ([]*dto.KpiDTO, error) {
	day, ok, err := util.ParseDate(date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if !ok {
		day = util.Midnight(s.now())
	}

	params := []string{util.FormatDate(day)}
	return redis.Load(ctx, s.statsCache, "kpis", params, func() ([]*dto.KpiDTO, error) {
		kpis, err := s.kpiRepo.ListKpisByDate(ctx, day)
		if err != nil {
			log.ErrorContext(ctx, "list kpis failed", "date", params[0], "err", err)
			return nil, ErrFetchKpis
		}
		if len(kpis) == 0 {
			kpis, err = s.kpiRepo.ListLatestKpis(ctx)
			if err != nil {
				log.ErrorContext(ctx, "list latest kpis failed", "err", err)
				return nil, ErrFetchKpis
			}
		}

		result := make([]*dto.KpiDTO, 0, len(kpis))
		for _, k := range kpis {
			result = append(result, toKpiDTO(k))
		}
		return result, nil
	})
}

// ReconcileTotalFollowers 按明细重算某日的 Total Followers：value 为当日粉丝合计，previous_value 为30天前合计。
// 该日没有这一行时新建
func (s *kpiServiceImpl) ReconcileTotalFollowers(ctx context.Context, date time.Time) (*dto.KpiDTO, error) {
	return s.reconcile(ctx, util.Midnight(date), true)
}

// RefreshTotalFollowers 与 ReconcileTotalFollowers 相同，但只更新已存在的行；
// 该日没有这一行时返回 nil，避免凭空生成一个只含 Total Followers 的日期
func (s *kpiServiceImpl) RefreshTotalFollowers(ctx context.Context, date time.Time) (*dto.KpiDTO, error) {
	return s.reconcile(ctx, util.Midnight(date), false)
}

func (s *kpiServiceImpl) reconcile(ctx context.Context, day time.Time, create bool) (*dto.KpiDTO, error) {
	prior := util.DaysBefore(day, consts.SnapshotLookbackDays)

	var kpi *model.DashboardKpi
	err := s.gw.Transaction(ctx, func(tx *database.Gateway) error {
		snapshotRepo := s.snapshotRepo.WithTx(tx)
		kpiRepo := s.kpiRepo.WithTx(tx)

		current, err := snapshotRepo.SumFollowers(ctx, day)
		if err != nil {
			return err
		}
		previous, err := snapshotRepo.SumFollowers(ctx, prior)
		if err != nil {
			return err
		}

		if create {
			err = kpiRepo.SaveOrUpdateKpi(ctx, &model.DashboardKpi{
				Name:          consts.KpiTotalFollowers,
				Value:         float64(current),
				PreviousValue: float64(previous),
				Date:          day,
			})
		} else {
			_, err = kpiRepo.UpdateKpiValues(ctx, consts.KpiTotalFollowers, day, float64(current), float64(previous))
		}
		if err != nil {
			return err
		}

		kpi, err = kpiRepo.GetKpi(ctx, consts.KpiTotalFollowers, day)
		return err
	})
	if err != nil {
		log.ErrorContext(ctx, "reconcile total followers failed", "date", util.FormatDate(day), "err", err)
		return nil, ErrReconcileKpis
	}
	if kpi == nil {
		return nil, nil
	}

	s.statsCache.Invalidate(ctx)
	return toKpiDTO(kpi), nil
}

func toKpiDTO(k *model.DashboardKpi) *dto.KpiDTO {
	return &dto.KpiDTO{
		ID:               k.ID,
		Name:             k.Name,
		Value:            k.Value,
		PreviousValue:    k.PreviousValue,
		Date:             util.FormatDate(k.Date),
		GrowthPercentage: model.GrowthPercentage(k.Value, k.PreviousValue),
	}
}
