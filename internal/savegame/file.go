package savegame

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/osse101/SuperAdventure_Go/internal/domain"
	"github.com/osse101/SuperAdventure_Go/internal/logger"
)

// FileStore keeps the saved game as one XML file on disk.
type FileStore struct {
	path string
}

// NewFileStore stores the saved game at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Save writes the snapshot through a temporary file and a rename, so a crash
// mid-write never leaves a half-written save behind.
func (s *FileStore) Save(ctx context.Context, snap domain.PlayerSnapshot) error {
	data, err := Marshal(snap)
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("savegame: create save directory: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("savegame: write save file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("savegame: replace save file: %w", err)
	}

	logger.FromContext(ctx).Debug("saved game written", "path", s.path, "bytes", len(data))
	return nil
}

// Load reads and validates the saved game. A missing file is ErrNotFound;
// unreadable or invalid content is ErrCorrupt.
func (s *FileStore) Load(ctx context.Context) (domain.PlayerSnapshot, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.PlayerSnapshot{}, ErrNotFound
	}
	if err != nil {
		return domain.PlayerSnapshot{}, fmt.Errorf("savegame: read save file: %w", err)
	}

	snap, err := Unmarshal(data)
	if err != nil {
		return domain.PlayerSnapshot{}, err
	}

	logger.FromContext(ctx).Debug("saved game loaded", "path", s.path)
	return snap, nil
}
