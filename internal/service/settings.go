package service

import (
	"context"
	"fmt"

	"github.com/sametkarakasoglu-wq/filoooo-web/internal/domain"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/repository"
)

type settingsService struct {
	tx    repository.Tx
	prefs repository.PreferenceRepository
}

func NewSettingsService(tx repository.Tx, prefs repository.PreferenceRepository) SettingsService {
	return &settingsService{tx: tx, prefs: prefs}
}

func (s *settingsService) GetPreferences(ctx context.Context) (Preferences, error) {
	var out Preferences
	var err error
	s.tx.View(func() {
		out.Theme, err = s.prefs.Theme(ctx)
		if err != nil {
			return
		}
		out.Settings, err = s.prefs.Settings(ctx)
	})
	return out, err
}

func (s *settingsService) SetTheme(ctx context.Context, t domain.Theme) error {
	if t != domain.ThemeLight && t != domain.ThemeDark {
		return fmt.Errorf("invalid theme %q", t)
	}
	return s.tx.Atomic(func() error {
		return s.prefs.SetTheme(ctx, t)
	})
}

func (s *settingsService) UpdateSettings(ctx context.Context, settings domain.Settings) error {
	if settings.ReminderDays <= 0 {
		settings.ReminderDays = domain.DefaultSettings().ReminderDays
	}
	return s.tx.Atomic(func() error {
		return s.prefs.SetSettings(ctx, settings)
	})
}
