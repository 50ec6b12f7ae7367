package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SuperAdventure_Go/internal/domain"
	"github.com/osse101/SuperAdventure_Go/internal/savegame"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "save.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleSnapshot() domain.PlayerSnapshot {
	return domain.PlayerSnapshot{
		CurrentHitPoints:  7,
		MaximumHitPoints:  20,
		Gold:              35,
		ExperiencePoints:  120,
		CurrentLocationID: 3,
		CurrentWeaponID:   1,
		CurrentPotionID:   7,
		LocationsVisited:  []int{1, 2, 3},
		Inventory: []domain.InventoryItem{
			{ItemID: 1, Quantity: 1},
			{ItemID: 2, Quantity: 4},
		},
		Quests: []domain.PlayerQuest{
			{QuestID: 1, IsCompleted: true},
			{QuestID: 2, IsCompleted: false},
		},
	}
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("  ")
	assert.Error(t, err)
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	require.NoError(t, store.Save(ctx, sampleSnapshot()))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleSnapshot(), got)
}

func TestLoadEmptyDatabase(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, savegame.ErrNotFound)
}

func TestSaveReplacesSlot(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	require.NoError(t, store.Save(ctx, sampleSnapshot()))

	second := sampleSnapshot()
	second.Gold = 1
	second.LocationsVisited = []int{1}
	second.Inventory = []domain.InventoryItem{{ItemID: 6, Quantity: 1}}
	second.Quests = nil
	require.NoError(t, store.Save(ctx, second))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestVisitOrderSurvives(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	snap := sampleSnapshot()
	snap.LocationsVisited = []int{5, 2, 9, 1}
	require.NoError(t, store.Save(ctx, snap))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 2, 9, 1}, got.LocationsVisited)
}

func TestLoadRejectsInvalidSlot(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	bad := sampleSnapshot()
	bad.CurrentLocationID = 0
	require.NoError(t, store.Save(ctx, bad))

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, savegame.ErrCorrupt)
}
