package jobs

import (
	"context"

	"github.com/sametkarakasoglu-wq/filoooo-web/internal/domain"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/logger"
)

// ScanDueReminders walks the fleet's upcoming insurance, inspection and
// maintenance dates and logs everything inside the reminder horizon, flagging
// items that are already overdue. The feed itself is computed on demand; this
// job gives operators a daily record in the server log.
func (jr *JobRunner) ScanDueReminders() {
	jr.runWithRecovery("ScanDueReminders", func() {
		reminders, err := jr.services.Dashboard.UpcomingReminders(context.Background())
		if err != nil {
			logger.Error("Failed to scan due reminders", "error", err)
			return
		}
		overdue := 0
		for _, r := range reminders {
			if r.Urgency == domain.UrgencyOverdue {
				overdue++
				logger.Warn("Obligation overdue",
					"kind", r.Kind, "plate", r.VehiclePlate, "date", r.Date, "days", r.Days)
				continue
			}
			logger.Info("Obligation due soon",
				"kind", r.Kind, "plate", r.VehiclePlate, "date", r.Date, "days", r.Days)
		}
		logger.Info("Reminder scan finished", "total", len(reminders), "overdue", overdue)
	})
}

// CheckpointSnapshot forces a periodic snapshot save so a crash between
// mutations loses at most one checkpoint interval of in-memory-only state.
func (jr *JobRunner) CheckpointSnapshot() {
	jr.runWithRecovery("CheckpointSnapshot", func() {
		jr.store.Persist()
	})
}
