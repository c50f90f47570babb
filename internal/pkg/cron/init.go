package cron

import (
	"Faceoff/internal/api/config"
	log "log/slog"
)

func InitCron(mgr *Manager) error {
	log.Info("Cron Jobs starting...", "analytics_schedule", config.Cfg.Analytics.Schedule)
	if err := mgr.RegisterJobs(); err != nil {
		return err
	}
	mgr.Start()
	return nil
}
