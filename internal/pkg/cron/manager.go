package cron

import (
	"Pulseboard/internal/job"
	log "log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

const defaultReconcileSpec = "@daily"

type Manager struct {
	engine          *cron.Cron
	reconcileSpec   string
	kpiReconcileJob *job.KpiReconcileJob
}

// NewCronManager spec 使用标准五段式或 @daily 之类的描述符，任务在 UTC 时区执行
func NewCronManager(reconcileSpec string, kpiReconcileJob *job.KpiReconcileJob) *Manager {
	if reconcileSpec == "" {
		reconcileSpec = defaultReconcileSpec
	}
	return &Manager{
		engine:          cron.New(cron.WithLocation(time.UTC)),
		reconcileSpec:   reconcileSpec,
		kpiReconcileJob: kpiReconcileJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(s.reconcileSpec, cron.NewChain(cron.SkipIfStillRunning(cron.DiscardLogger)).Then(s.kpiReconcileJob)); err != nil {
		return err
	}
	log.Info("Cron job registered", "job", "kpi_reconcile", "spec", s.reconcileSpec)
	return nil
}

func (s *Manager) Entries() int {
	return len(s.engine.Entries())
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	<-s.engine.Stop().Done()
}
