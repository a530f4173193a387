package cron

import log "log/slog"

// InitCron 注册并启动定时任务，enabled 为 false 时不启动
func InitCron(mgr *Manager, enabled bool) error {
	if !enabled {
		log.Info("Cron Jobs disabled")
		return nil
	}
	log.Info("Cron Jobs starting...")
	if err := mgr.RegisterJobs(); err != nil {
		return err
	}
	mgr.Start()
	return nil
}
