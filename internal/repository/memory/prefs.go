package memory

import (
	"context"
	"slices"

	"github.com/sametkarakasoglu-wq/filoooo-web/internal/domain"
)

// Preference state lives next to the entity collections so that it rides
// along in the same snapshot.

func (s *Store) Theme(_ context.Context) (domain.Theme, error) {
	return s.d.snap.Theme, nil
}

func (s *Store) SetTheme(_ context.Context, t domain.Theme) error {
	s.d.snap.Theme = t
	return nil
}

func (s *Store) Settings(_ context.Context) (domain.Settings, error) {
	return s.d.snap.Settings, nil
}

func (s *Store) SetSettings(_ context.Context, set domain.Settings) error {
	s.d.snap.Settings = set
	return nil
}

func (s *Store) ReadNotifications(_ context.Context) ([]int64, error) {
	return slices.Clone(s.d.snap.ReadNotifications), nil
}

func (s *Store) MarkNotificationRead(_ context.Context, id int64) error {
	if !slices.Contains(s.d.snap.ReadNotifications, id) {
		s.d.snap.ReadNotifications = append(s.d.snap.ReadNotifications, id)
	}
	return nil
}
