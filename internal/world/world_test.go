package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SuperAdventure_Go/internal/domain"
)

func TestLoad_EmbeddedContent(t *testing.T) {
	catalog, err := Load()
	require.NoError(t, err)

	sword := catalog.ItemByID(ItemIDRustySword)
	assert.Equal(t, "Rusty sword", sword.Name)
	assert.Equal(t, domain.KindWeapon, sword.Kind)
	assert.Equal(t, 5, sword.MaximumDamage)

	potion := catalog.ItemByID(ItemIDHealingPotion)
	assert.Equal(t, domain.KindPotion, potion.Kind)
	assert.Equal(t, 5, potion.AmountToHeal)

	home := catalog.LocationByID(LocationIDHome)
	assert.Equal(t, "Home", home.Name)
	assert.False(t, home.HasMonster())
}

func TestLoad_GraphReferencesResolve(t *testing.T) {
	catalog, err := Load()
	require.NoError(t, err)

	for _, loc := range catalog.Locations() {
		for _, neighbor := range []int{loc.NorthID, loc.EastID, loc.SouthID, loc.WestID} {
			if neighbor == 0 {
				continue
			}
			assert.NotPanics(t, func() { catalog.LocationByID(neighbor) },
				"location %d has a dangling neighbor %d", loc.ID, neighbor)
		}
		if loc.HasQuest() {
			quest := catalog.QuestByID(loc.QuestAvailableHereID)
			assert.NotPanics(t, func() { catalog.ItemByID(quest.RewardItemID) })
		}
		if loc.HasMonster() {
			monster := catalog.MonsterByID(loc.MonsterLivingHereID)
			assert.Greater(t, monster.HitPoints, 0)
		}
	}
}

func TestCatalog_UnknownIDPanics(t *testing.T) {
	catalog, err := Load()
	require.NoError(t, err)

	assert.Panics(t, func() { catalog.ItemByID(9999) })
	assert.Panics(t, func() { catalog.MonsterByID(9999) })
	assert.Panics(t, func() { catalog.LocationByID(9999) })
	assert.Panics(t, func() { catalog.QuestByID(9999) })
}

func TestCatalog_FindVariantsReportMisses(t *testing.T) {
	catalog, err := Load()
	require.NoError(t, err)

	_, ok := catalog.FindItem(9999)
	assert.False(t, ok)

	item, ok := catalog.FindItem(ItemIDRustySword)
	assert.True(t, ok)
	assert.Equal(t, ItemIDRustySword, item.ID)

	_, ok = catalog.FindLocation(9999)
	assert.False(t, ok)

	_, ok = catalog.FindQuest(9999)
	assert.False(t, ok)
}

func TestNewCatalog_RejectsDanglingReferences(t *testing.T) {
	items := []domain.Item{
		{ID: 1, Kind: domain.KindWeapon, Name: "Stick", NamePlural: "Sticks", MaximumDamage: 2},
	}
	locations := []domain.Location{
		{ID: 1, Name: "Home", Description: "home"},
	}

	t.Run("monster loot", func(t *testing.T) {
		monsters := []domain.Monster{
			{ID: 1, Name: "Rat", HitPoints: 3, LootTable: []domain.LootEntry{{ItemID: 42, DropPercentage: 50}}},
		}
		_, err := newCatalog(items, monsters, locations, nil)
		assert.ErrorIs(t, err, ErrDanglingReference)
	})

	t.Run("location neighbor", func(t *testing.T) {
		badLocations := []domain.Location{
			{ID: 1, Name: "Home", Description: "home", NorthID: 42},
		}
		_, err := newCatalog(items, nil, badLocations, nil)
		assert.ErrorIs(t, err, ErrDanglingReference)
	})

	t.Run("duplicate item", func(t *testing.T) {
		dupItems := append([]domain.Item{}, items...)
		dupItems = append(dupItems, items[0])
		_, err := newCatalog(dupItems, nil, locations, nil)
		assert.ErrorIs(t, err, ErrDuplicateID)
	})
}

func TestValidateItems_VariantConstraints(t *testing.T) {
	err := validateItems([]domain.Item{
		{ID: 1, Kind: domain.KindWeapon, Name: "Blade", NamePlural: "Blades", MinimumDamage: 5, MaximumDamage: 2},
	})
	assert.ErrorIs(t, err, ErrInvalidContent)

	err = validateItems([]domain.Item{
		{ID: 2, Kind: domain.KindPotion, Name: "Vial", NamePlural: "Vials"},
	})
	assert.ErrorIs(t, err, ErrInvalidContent)

	err = validateItems([]domain.Item{
		{ID: 3, Kind: domain.KindPlain, Name: "Rock", NamePlural: "Rocks", AmountToHeal: 1},
	})
	assert.ErrorIs(t, err, ErrInvalidContent)
}
