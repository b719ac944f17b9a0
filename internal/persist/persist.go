package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sametkarakasoglu-wq/filoooo-web/internal/domain"
)

// Snapshot is the complete serialized state of all entity stores plus user
// preferences. This is both the persisted blob and the export file format.
type Snapshot struct {
	Vehicles          []domain.Vehicle     `json:"vehicles"`
	Customers         []domain.Customer    `json:"customers"`
	Rentals           []domain.Rental      `json:"rentals"`
	Reservations      []domain.Reservation `json:"reservations"`
	Maintenance       []domain.Maintenance `json:"maintenance"`
	Activities        []domain.Activity    `json:"activities"`
	Theme             domain.Theme         `json:"theme"`
	ReadNotifications []int64              `json:"readNotifications"`
	Settings          domain.Settings      `json:"settings"`
}

// Default returns the snapshot used when no persisted state exists.
func Default() *Snapshot {
	return &Snapshot{
		Theme:    domain.ThemeLight,
		Settings: domain.DefaultSettings(),
	}
}

// Gateway persists and restores the application snapshot. The core writes
// through after every mutating operation and loads once at startup.
type Gateway interface {
	SaveSnapshot(s *Snapshot) error
	// LoadSnapshot returns (nil, false, nil) when no snapshot has been saved.
	LoadSnapshot() (*Snapshot, bool, error)
}

// FileGateway stores the snapshot as a single JSON file on local disk,
// written atomically via a temp file and rename.
type FileGateway struct {
	path string
}

func NewFileGateway(path string) (*FileGateway, error) {
	if path == "" {
		return nil, errors.New("snapshot path is required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	return &FileGateway{path: path}, nil
}

func (g *FileGateway) SaveSnapshot(s *Snapshot) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}
	tmp := g.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, g.path); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

func (g *FileGateway) LoadSnapshot() (*Snapshot, bool, error) {
	data, err := os.ReadFile(g.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read snapshot: %w", err)
	}
	// Unmarshal over defaults so fields missing from older snapshots fall
	// back instead of zeroing out.
	s := Default()
	if err := json.Unmarshal(data, s); err != nil {
		return nil, false, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	return s, true, nil
}
