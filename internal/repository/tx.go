package repository

import (
	"context"

	"github.com/sametkarakasoglu-wq/filoooo-web/internal/domain"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/persist"
)

// Tx serializes access to the store. Transition operations run their whole
// body inside Atomic so that no two operations interleave and the snapshot is
// written through exactly once per successful operation. Derivations run
// inside View. Repository and preference methods must only be called from
// within one of the two.
type Tx interface {
	// Atomic takes the store write lock, runs fn, and persists the snapshot
	// when fn returns nil. When fn returns an error nothing is persisted.
	Atomic(fn func() error) error
	// View takes the store read lock for the duration of fn.
	View(fn func())
}

// PreferenceRepository holds the persisted UI preference state.
type PreferenceRepository interface {
	Theme(ctx context.Context) (domain.Theme, error)
	SetTheme(ctx context.Context, t domain.Theme) error
	Settings(ctx context.Context) (domain.Settings, error)
	SetSettings(ctx context.Context, s domain.Settings) error
	ReadNotifications(ctx context.Context) ([]int64, error)
	// MarkNotificationRead records a notification id as read; ids are never
	// un-marked automatically.
	MarkNotificationRead(ctx context.Context, id int64) error
}

// SnapshotRepository exposes the full store state for export and replaces it
// wholesale on import.
type SnapshotRepository interface {
	Export(ctx context.Context) (*persist.Snapshot, error)
	Import(ctx context.Context, s *persist.Snapshot) error
}
