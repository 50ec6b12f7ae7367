package savegame

import (
	"context"
	"errors"

	"github.com/osse101/SuperAdventure_Go/internal/dice"
	"github.com/osse101/SuperAdventure_Go/internal/domain"
	"github.com/osse101/SuperAdventure_Go/internal/event"
	"github.com/osse101/SuperAdventure_Go/internal/game"
	"github.com/osse101/SuperAdventure_Go/internal/logger"
	"github.com/osse101/SuperAdventure_Go/internal/world"
)

// Store reads and writes player snapshots. Load returns ErrNotFound when no
// save exists and ErrCorrupt when one exists but cannot be trusted.
type Store interface {
	Load(ctx context.Context) (domain.PlayerSnapshot, error)
	Save(ctx context.Context, snap domain.PlayerSnapshot) error
}

// Mapper loads and saves players across the configured stores: the database
// mirror is preferred on load, the XML file is the fallback, and a brand-new
// default player is the last resort. Saves go to every store.
type Mapper struct {
	catalog *world.Catalog
	bus     *event.Bus
	roll    dice.Roller

	database Store // optional
	file     Store
}

// NewMapper wires a Mapper. database may be nil when the mirror is disabled.
func NewMapper(catalog *world.Catalog, bus *event.Bus, roll dice.Roller, database, file Store) *Mapper {
	return &Mapper{
		catalog:  catalog,
		bus:      bus,
		roll:     roll,
		database: database,
		file:     file,
	}
}

// LoadPlayer restores the player from the first store that yields a usable
// snapshot. Corruption anywhere is logged and skipped, never fatal: the
// worst case is starting over with the default player.
func (m *Mapper) LoadPlayer(ctx context.Context) *game.Player {
	log := logger.FromContext(ctx)

	stores := []struct {
		name  string
		store Store
	}{
		{"database", m.database},
		{"file", m.file},
	}
	for _, source := range stores {
		if source.store == nil {
			continue
		}
		snap, err := source.store.Load(ctx)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			log.Warn("ignoring unusable saved game", "store", source.name, "error", err)
			continue
		}

		player, err := game.RestorePlayer(snap, m.catalog, m.bus, m.roll)
		if err != nil {
			log.Warn("ignoring saved game with dangling references", "store", source.name, "error", err)
			continue
		}
		log.Info("saved game restored", "store", source.name)
		return player
	}

	log.Info("starting a new game")
	return game.NewDefaultPlayer(m.catalog, m.bus, m.roll)
}

// SavePlayer writes the player's snapshot to every configured store. Stores
// fail independently; the joined error reports all of them.
func (m *Mapper) SavePlayer(ctx context.Context, player *game.Player) error {
	snap := player.Snapshot()

	var errs []error
	if m.database != nil {
		if err := m.database.Save(ctx, snap); err != nil {
			errs = append(errs, err)
		}
	}
	if err := m.file.Save(ctx, snap); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
