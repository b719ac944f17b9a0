package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sametkarakasoglu-wq/filoooo-web/internal/datex"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/domain"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/repository/memory"
)

func newNotificationService(store *memory.Store) *notificationService {
	svc := NewNotificationService(store, store.VehicleRepository, store.MaintenanceRepository, store.ActivityRepository, store).(*notificationService)
	svc.now = func() time.Time { return testNow }
	return svc
}

func seedActivity(t *testing.T, store *memory.Store, a domain.Activity) {
	t.Helper()
	err := store.Atomic(func() error {
		return store.ActivityRepository.Append(context.Background(), a)
	})
	require.NoError(t, err)
}

func TestFeedMergesAndSorts(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	svc := newNotificationService(store)

	day := func(offset int) string {
		return testNow.AddDate(0, 0, offset).Format("2006-01-02")
	}
	seedVehicle(t, store, domain.Vehicle{Plate: "34 ABC 123", InsuranceDate: day(5)})
	seedActivity(t, store, domain.Activity{Icon: "fa-car-side", Message: "m", Time: testNow.Add(-time.Hour)})

	feed, err := svc.Feed(ctx, NotificationFilterAll)
	require.NoError(t, err)
	require.Len(t, feed, 2)

	// The insurance due date is five days out, so the reminder sorts before
	// the hour-old activity.
	assert.Equal(t, domain.NotificationTypeReminder, feed[0].Type)
	assert.Equal(t, domain.NotificationTypeActivity, feed[1].Type)
	assert.Equal(t, domain.UrgencyUrgent, feed[0].Urgency)
	assert.Equal(t, "Son 5 gün", feed[0].DaysText)
	assert.Contains(t, feed[0].Message, "sigortası")
}

func TestFeedDeterministicIDs(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	svc := newNotificationService(store)

	date := testNow.AddDate(0, 0, 5).Format("2006-01-02")
	seedVehicle(t, store, domain.Vehicle{Plate: "34 ABC 123", InsuranceDate: date, InspectionDate: date})

	feed, err := svc.Feed(ctx, NotificationFilterReminders)
	require.NoError(t, err)
	require.Len(t, feed, 2)

	due, err := datex.ParseDate(date)
	require.NoError(t, err)

	ids := []int64{feed[0].ID, feed[1].ID}
	assert.ElementsMatch(t, []int64{due.UnixMilli(), due.UnixMilli() + 1000}, ids)

	// Recomputing the feed yields the same ids.
	again, err := svc.Feed(ctx, NotificationFilterReminders)
	require.NoError(t, err)
	assert.ElementsMatch(t, ids, []int64{again[0].ID, again[1].ID})
}

func TestFeedReadState(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	svc := newNotificationService(store)

	seedVehicle(t, store, domain.Vehicle{Plate: "34 ABC 123", InsuranceDate: testNow.AddDate(0, 0, 5).Format("2006-01-02")})

	feed, err := svc.Feed(ctx, NotificationFilterReminders)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.False(t, feed[0].Read)

	require.NoError(t, svc.MarkRead(ctx, feed[0].ID))

	feed, err = svc.Feed(ctx, NotificationFilterReminders)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.True(t, feed[0].Read)
}

func TestFeedFilters(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	svc := newNotificationService(store)

	seedVehicle(t, store, domain.Vehicle{Plate: "34 ABC 123", InsuranceDate: testNow.AddDate(0, 0, 5).Format("2006-01-02")})
	seedActivity(t, store, domain.Activity{Icon: "fa-car-side", Message: "m", Time: testNow.Add(-time.Hour)})

	reminders, err := svc.Feed(ctx, NotificationFilterReminders)
	require.NoError(t, err)
	require.Len(t, reminders, 1)
	assert.Equal(t, domain.NotificationTypeReminder, reminders[0].Type)

	activities, err := svc.Feed(ctx, NotificationFilterActivities)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, domain.NotificationTypeActivity, activities[0].Type)
}

func TestFeedHonorsTypeToggles(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	svc := newNotificationService(store)

	day := func(offset int) string {
		return testNow.AddDate(0, 0, offset).Format("2006-01-02")
	}
	seedVehicle(t, store, domain.Vehicle{Plate: "34 ABC 123", InsuranceDate: day(5), InspectionDate: day(6)})
	seedActivity(t, store, domain.Activity{Icon: "fa-car-side", Message: "m", Time: testNow.Add(-time.Hour)})

	settings := domain.DefaultSettings()
	settings.NotifTypeInsurance = false
	settings.NotifTypeActivity = false
	err := store.Atomic(func() error {
		return store.SetSettings(ctx, settings)
	})
	require.NoError(t, err)

	feed, err := svc.Feed(ctx, NotificationFilterAll)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, domain.ReminderKindInspection, feed[0].Kind)
}

func TestFeedReminderHorizonFromSettings(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	svc := newNotificationService(store)

	seedVehicle(t, store, domain.Vehicle{Plate: "34 ABC 123", InsuranceDate: testNow.AddDate(0, 0, 10).Format("2006-01-02")})

	settings := domain.DefaultSettings()
	settings.ReminderDays = 5
	err := store.Atomic(func() error {
		return store.SetSettings(ctx, settings)
	})
	require.NoError(t, err)

	feed, err := svc.Feed(ctx, NotificationFilterReminders)
	require.NoError(t, err)
	assert.Empty(t, feed)
}
