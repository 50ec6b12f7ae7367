// Package sqlite mirrors the saved game into an embedded SQLite database.
// The database holds exactly one save slot.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/osse101/SuperAdventure_Go/internal/domain"
	"github.com/osse101/SuperAdventure_Go/internal/savegame"
)

// saveSlot is the only row ID ever used; the schema enforces it.
const saveSlot = 1

const schema = `
CREATE TABLE IF NOT EXISTS saved_game (
    id                  INTEGER PRIMARY KEY CHECK (id = 1),
    current_hit_points  INTEGER NOT NULL,
    maximum_hit_points  INTEGER NOT NULL,
    gold                INTEGER NOT NULL,
    experience_points   INTEGER NOT NULL,
    current_location_id INTEGER NOT NULL,
    current_weapon_id   INTEGER NOT NULL,
    current_potion_id   INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS saved_location (
    location_id INTEGER PRIMARY KEY,
    visit_order INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS saved_inventory (
    item_id  INTEGER PRIMARY KEY,
    quantity INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS saved_quest (
    quest_id     INTEGER PRIMARY KEY,
    is_completed INTEGER NOT NULL
);
`

// Store persists the save slot in SQLite. It implements savegame.Store.
type Store struct {
	sqlDB *sql.DB
}

// Open opens the database at path, creating the schema when missing.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite: database path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open database: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("sqlite: ping database: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("sqlite: create schema: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Save replaces the save slot with the snapshot, atomically.
func (s *Store) Save(ctx context.Context, snap domain.PlayerSnapshot) error {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO saved_game
		    (id, current_hit_points, maximum_hit_points, gold, experience_points,
		     current_location_id, current_weapon_id, current_potion_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		saveSlot, snap.CurrentHitPoints, snap.MaximumHitPoints, snap.Gold,
		snap.ExperiencePoints, snap.CurrentLocationID, snap.CurrentWeaponID,
		snap.CurrentPotionID); err != nil {
		return fmt.Errorf("sqlite: write stats: %w", err)
	}

	for _, table := range []string{"saved_location", "saved_inventory", "saved_quest"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("sqlite: clear %s: %w", table, err)
		}
	}

	for order, locationID := range snap.LocationsVisited {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO saved_location (location_id, visit_order) VALUES (?, ?)`,
			locationID, order); err != nil {
			return fmt.Errorf("sqlite: write visited location: %w", err)
		}
	}
	for _, entry := range snap.Inventory {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO saved_inventory (item_id, quantity) VALUES (?, ?)`,
			entry.ItemID, entry.Quantity); err != nil {
			return fmt.Errorf("sqlite: write inventory entry: %w", err)
		}
	}
	for _, entry := range snap.Quests {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO saved_quest (quest_id, is_completed) VALUES (?, ?)`,
			entry.QuestID, entry.IsCompleted); err != nil {
			return fmt.Errorf("sqlite: write quest entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit save: %w", err)
	}
	return nil
}

// Load reads the save slot. An empty database is savegame.ErrNotFound;
// a slot failing validation is savegame.ErrCorrupt.
func (s *Store) Load(ctx context.Context) (domain.PlayerSnapshot, error) {
	var snap domain.PlayerSnapshot

	err := s.sqlDB.QueryRowContext(ctx, `
		SELECT current_hit_points, maximum_hit_points, gold, experience_points,
		       current_location_id, current_weapon_id, current_potion_id
		FROM saved_game WHERE id = ?`, saveSlot).Scan(
		&snap.CurrentHitPoints, &snap.MaximumHitPoints, &snap.Gold,
		&snap.ExperiencePoints, &snap.CurrentLocationID, &snap.CurrentWeaponID,
		&snap.CurrentPotionID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.PlayerSnapshot{}, savegame.ErrNotFound
	}
	if err != nil {
		return domain.PlayerSnapshot{}, fmt.Errorf("sqlite: read stats: %w", err)
	}

	if err := s.loadVisited(ctx, &snap); err != nil {
		return domain.PlayerSnapshot{}, err
	}
	if err := s.loadInventory(ctx, &snap); err != nil {
		return domain.PlayerSnapshot{}, err
	}
	if err := s.loadQuests(ctx, &snap); err != nil {
		return domain.PlayerSnapshot{}, err
	}

	if err := savegame.Validate(snap); err != nil {
		return domain.PlayerSnapshot{}, err
	}
	return snap, nil
}

func (s *Store) loadVisited(ctx context.Context, snap *domain.PlayerSnapshot) error {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT location_id FROM saved_location ORDER BY visit_order`)
	if err != nil {
		return fmt.Errorf("sqlite: read visited locations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("sqlite: scan visited location: %w", err)
		}
		snap.LocationsVisited = append(snap.LocationsVisited, id)
	}
	return rows.Err()
}

func (s *Store) loadInventory(ctx context.Context, snap *domain.PlayerSnapshot) error {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT item_id, quantity FROM saved_inventory ORDER BY item_id`)
	if err != nil {
		return fmt.Errorf("sqlite: read inventory: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entry domain.InventoryItem
		if err := rows.Scan(&entry.ItemID, &entry.Quantity); err != nil {
			return fmt.Errorf("sqlite: scan inventory entry: %w", err)
		}
		snap.Inventory = append(snap.Inventory, entry)
	}
	return rows.Err()
}

func (s *Store) loadQuests(ctx context.Context, snap *domain.PlayerSnapshot) error {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT quest_id, is_completed FROM saved_quest ORDER BY quest_id`)
	if err != nil {
		return fmt.Errorf("sqlite: read quests: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entry domain.PlayerQuest
		if err := rows.Scan(&entry.QuestID, &entry.IsCompleted); err != nil {
			return fmt.Errorf("sqlite: scan quest entry: %w", err)
		}
		snap.Quests = append(snap.Quests, entry)
	}
	return rows.Err()
}
