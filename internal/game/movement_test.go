package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SuperAdventure_Go/internal/domain"
	"github.com/osse101/SuperAdventure_Go/internal/world"
)

func TestMoveDirections(t *testing.T) {
	ctx := context.Background()

	t.Run("north from home reaches the town square", func(t *testing.T) {
		p, _ := newTestPlayer(t)
		p.MoveNorth(ctx)

		assert.Equal(t, "Town square", p.CurrentLocation().Name)
	})

	t.Run("moving into a wall is ignored", func(t *testing.T) {
		p, _ := newTestPlayer(t)
		p.MoveSouth(ctx) // home has no southern neighbor

		assert.Equal(t, world.LocationIDHome, p.CurrentLocation().ID)
	})

	t.Run("south from the town square returns home", func(t *testing.T) {
		p, _ := newTestPlayer(t)
		p.MoveNorth(ctx)
		p.MoveSouth(ctx)

		assert.Equal(t, world.LocationIDHome, p.CurrentLocation().ID)
	})
}

func TestMoveToGatedLocation(t *testing.T) {
	ctx := context.Background()
	catalog := world.MustLoad()
	guardPost := catalog.LocationByID(7)
	pass := catalog.ItemByID(world.ItemIDAdventurerPass)

	t.Run("blocked without the pass", func(t *testing.T) {
		p, rec := newTestPlayer(t)
		p.MoveTo(ctx, guardPost)

		assert.Equal(t, world.LocationIDHome, p.CurrentLocation().ID)
		assert.Equal(t, []string{"You must have a Adventurer pass to enter this location."}, rec.Messages())
		assert.Empty(t, p.LocationsVisited(), "a blocked move is not a visit")
	})

	t.Run("admitted with the pass", func(t *testing.T) {
		p, _ := newTestPlayer(t)
		p.AddItemToInventory(ctx, pass, 1)
		p.MoveTo(ctx, guardPost)

		assert.Equal(t, guardPost.ID, p.CurrentLocation().ID)
	})
}

func TestMoveToHealsAndRecordsVisit(t *testing.T) {
	ctx := context.Background()

	snap := domain.PlayerSnapshot{
		CurrentHitPoints:  3,
		MaximumHitPoints:  10,
		Gold:              20,
		CurrentLocationID: 2,
		CurrentWeaponID:   world.ItemIDRustySword,
		Inventory:         []domain.InventoryItem{{ItemID: world.ItemIDRustySword, Quantity: 1}},
		LocationsVisited:  []int{1, 2},
	}
	p, _ := restoreTestPlayer(t, snap)

	p.MoveNorth(ctx) // alchemist's hut

	assert.Equal(t, 10, p.CurrentHitPoints(), "entering a location heals completely")
	assert.Equal(t, []int{1, 2, 3}, p.LocationsVisited())

	p.MoveSouth(ctx)
	p.MoveNorth(ctx)
	assert.Equal(t, []int{1, 2, 3}, p.LocationsVisited(), "revisits are recorded once")
}

func TestMoveToSpawnsAndClearsMonster(t *testing.T) {
	ctx := context.Background()
	catalog := world.MustLoad()
	garden := catalog.LocationByID(4)

	p, rec := newTestPlayer(t)
	p.MoveTo(ctx, garden)

	require.NotNil(t, p.ActiveMonster())
	assert.Equal(t, "Rat", p.ActiveMonster().Name)
	assert.Equal(t, 3, p.ActiveMonster().CurrentHitPoints)
	assert.Equal(t, []string{"You see a Rat"}, rec.Messages())

	// Wounding the instance must not touch the catalog template.
	p.ActiveMonster().CurrentHitPoints = 1
	assert.Equal(t, 3, catalog.MonsterByID(1).HitPoints)

	p.MoveTo(ctx, catalog.LocationByID(world.LocationIDHome))
	assert.Nil(t, p.ActiveMonster())
}
