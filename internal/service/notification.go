package service

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/sametkarakasoglu-wq/filoooo-web/internal/datex"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/domain"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/repository"
)

// Reminder notification ids are derived from the due date plus a per-kind
// offset, activity ids from the log timestamp. Recomputing the feed therefore
// reproduces the same ids, which is what lets persisted read state stick to
// items that are never stored.
const (
	notifOffsetInsurance   = 0
	notifOffsetInspection  = 1000
	notifOffsetMaintenance = 2000
	notifOffsetActivity    = 3000
)

type notificationService struct {
	tx          repository.Tx
	vehicles    repository.VehicleRepository
	maintenance repository.MaintenanceRepository
	activities  repository.ActivityRepository
	prefs       repository.PreferenceRepository
	now         func() time.Time
}

func NewNotificationService(
	tx repository.Tx,
	vehicles repository.VehicleRepository,
	maintenance repository.MaintenanceRepository,
	activities repository.ActivityRepository,
	prefs repository.PreferenceRepository,
) NotificationService {
	return &notificationService{
		tx:          tx,
		vehicles:    vehicles,
		maintenance: maintenance,
		activities:  activities,
		prefs:       prefs,
		now:         time.Now,
	}
}

func (s *notificationService) Feed(ctx context.Context, filter NotificationFilter) ([]domain.Notification, error) {
	var out []domain.Notification
	var err error
	s.tx.View(func() {
		var vehicles []domain.Vehicle
		vehicles, err = s.vehicles.List(ctx)
		if err != nil {
			return
		}
		var records []domain.Maintenance
		records, err = s.maintenance.List(ctx)
		if err != nil {
			return
		}
		var activities []domain.Activity
		activities, err = s.activities.List(ctx)
		if err != nil {
			return
		}
		var settings domain.Settings
		settings, err = s.prefs.Settings(ctx)
		if err != nil {
			return
		}
		var read []int64
		read, err = s.prefs.ReadNotifications(ctx)
		if err != nil {
			return
		}

		if filter != NotificationFilterActivities {
			for _, r := range collectReminders(vehicles, records, settings.ReminderDays, s.now()) {
				if r.Kind == domain.ReminderKindInsurance && !settings.NotifTypeInsurance {
					continue
				}
				if r.Kind == domain.ReminderKindInspection && !settings.NotifTypeInspection {
					continue
				}
				out = append(out, reminderNotification(r, read))
			}
		}
		if filter != NotificationFilterReminders && settings.NotifTypeActivity {
			for _, a := range activities {
				id := a.Time.UnixMilli() + notifOffsetActivity
				out = append(out, domain.Notification{
					ID:      id,
					Type:    domain.NotificationTypeActivity,
					Urgency: domain.UrgencyNormal,
					Icon:    a.Icon,
					Message: a.Message,
					Time:    a.Time,
					Read:    slices.Contains(read, id),
				})
			}
		}
		sort.SliceStable(out, func(i, j int) bool { return out[i].Time.After(out[j].Time) })
	})
	return out, err
}

func (s *notificationService) MarkRead(ctx context.Context, id int64) error {
	return s.tx.Atomic(func() error {
		return s.prefs.MarkNotificationRead(ctx, id)
	})
}

func reminderNotification(r domain.Reminder, read []int64) domain.Notification {
	due, err := datex.ParseDate(r.Date)
	if err != nil {
		due = time.Time{}
	}

	var offset int64
	var icon, subject string
	switch r.Kind {
	case domain.ReminderKindInsurance:
		offset = notifOffsetInsurance
		icon = "fa-shield-halved"
		subject = "sigortası"
	case domain.ReminderKindInspection:
		offset = notifOffsetInspection
		icon = "fa-clipboard-check"
		subject = "muayenesi"
	default:
		offset = notifOffsetMaintenance
		icon = "fa-oil-can"
		subject = "periyodik bakımı"
	}

	id := due.UnixMilli() + offset
	return domain.Notification{
		ID:           id,
		Type:         domain.NotificationTypeReminder,
		Kind:         r.Kind,
		Urgency:      r.Urgency,
		Icon:         icon,
		Message:      fmt.Sprintf("<strong>%s</strong> plakalı aracın %s yaklaşıyor.", r.VehiclePlate, subject),
		Time:         due,
		DaysLeft:     r.Days,
		DaysText:     datex.ReminderText(r.Days),
		VehiclePlate: r.VehiclePlate,
		Read:         slices.Contains(read, id),
	}
}
