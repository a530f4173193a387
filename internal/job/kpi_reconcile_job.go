package job

import (
	"Pulseboard/internal/pkg/consts"
	"Pulseboard/internal/pkg/logger"
	"Pulseboard/internal/pkg/redis"
	"Pulseboard/internal/pkg/util"
	"Pulseboard/internal/service"
	"context"
	"errors"
	log "log/slog"
	"time"

	"github.com/bsm/redislock"
	"github.com/google/uuid"
)

// 锁不主动释放，过期前同一天的其他实例直接跳过
const reconcileLockTTL = time.Hour

// KpiReconcileJob 每日零点后按明细校准前一天的 Total Followers KPI。
// 只更新已存在的行，不会为新的一天单独生成 KPI
type KpiReconcileJob struct {
	kpiSvc service.KpiService
	now    func() time.Time
}

func NewKpiReconcileJob(kpiSvc service.KpiService) *KpiReconcileJob {
	return &KpiReconcileJob{
		kpiSvc: kpiSvc,
		now:    time.Now,
	}
}

func (s *KpiReconcileJob) Run() {
	traceID := "job-" + uuid.NewString()
	ctx := logger.WithTraceID(context.Background(), traceID)
	s.run(ctx)
}

func (s *KpiReconcileJob) run(ctx context.Context) bool {
	day := util.DaysBefore(s.now(), 1)
	date := util.FormatDate(day)

	if locker := redis.NewLocker(); locker != nil {
		_, err := locker.Obtain(ctx, consts.KpiReconcileLock+date, reconcileLockTTL, nil)
		if errors.Is(err, redislock.ErrNotObtained) {
			log.InfoContext(ctx, "kpi reconcile already done by another instance, skipped", "date", date)
			return false
		}
		if err != nil {
			log.ErrorContext(ctx, "kpi reconcile lock error", "date", date, "err", err)
			return false
		}
	}

	start := time.Now()
	kpi, err := s.kpiSvc.RefreshTotalFollowers(ctx, day)
	if err != nil {
		log.ErrorContext(ctx, "kpi reconcile failed", "date", date, "err", err)
		return false
	}
	if kpi == nil {
		log.InfoContext(ctx, "no total followers kpi for date, skipped", "date", date)
		return true
	}
	log.InfoContext(ctx, "kpi reconcile finished",
		"date", date,
		"value", kpi.Value,
		"previous_value", kpi.PreviousValue,
		"cost", time.Since(start),
	)
	return true
}
