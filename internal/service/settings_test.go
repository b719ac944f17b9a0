package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sametkarakasoglu-wq/filoooo-web/internal/domain"
)

func TestPreferences(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	svc := NewSettingsService(store, store)

	prefs, err := svc.GetPreferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, prefs.Theme)
	assert.Equal(t, domain.DefaultSettings(), prefs.Settings)

	require.NoError(t, svc.SetTheme(ctx, domain.ThemeDark))

	settings := domain.DefaultSettings()
	settings.ReminderDays = 14
	settings.VehicleBtnEdit = false
	require.NoError(t, svc.UpdateSettings(ctx, settings))

	prefs, err = svc.GetPreferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, prefs.Theme)
	assert.Equal(t, 14, prefs.Settings.ReminderDays)
	assert.False(t, prefs.Settings.VehicleBtnEdit)
}

func TestSetThemeRejectsUnknownValue(t *testing.T) {
	store := newTestStore()
	svc := NewSettingsService(store, store)
	assert.Error(t, svc.SetTheme(context.Background(), domain.Theme("sepia")))
}

func TestUpdateSettingsZeroReminderDaysFallsBack(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	svc := NewSettingsService(store, store)

	settings := domain.DefaultSettings()
	settings.ReminderDays = 0
	require.NoError(t, svc.UpdateSettings(ctx, settings))

	prefs, err := svc.GetPreferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, 30, prefs.Settings.ReminderDays)
}
