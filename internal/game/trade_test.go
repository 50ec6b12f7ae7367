package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SuperAdventure_Go/internal/event"
	"github.com/osse101/SuperAdventure_Go/internal/world"
)

func TestTrading(t *testing.T) {
	ctx := context.Background()
	catalog := world.MustLoad()
	potion := catalog.ItemByID(world.ItemIDHealingPotion)
	club := catalog.ItemByID(6)
	ratTail := catalog.ItemByID(2)
	pass := catalog.ItemByID(world.ItemIDAdventurerPass)

	atTownSquare := func(t *testing.T) (*Player, *event.Recorder) {
		t.Helper()
		p, rec := newTestPlayer(t)
		p.MoveNorth(ctx)
		rec.Reset()
		return p, rec
	}

	t.Run("vendor is present at the town square", func(t *testing.T) {
		p, _ := atTownSquare(t)
		vendor, ok := p.Vendor()
		require.True(t, ok)
		assert.Equal(t, "Bob the Rat-Catcher", vendor.Name)
		assert.Equal(t, []int{7, 6}, vendor.WareIDs)
	})

	t.Run("buying takes gold and adds the item", func(t *testing.T) {
		p, rec := atTownSquare(t)
		p.BuyItem(ctx, potion)

		assert.Equal(t, 17, p.Gold())
		assert.Equal(t, 1, p.ItemQuantity(potion))
		assert.Contains(t, rec.Messages(), "You buy a Healing potion for 3 gold.")
	})

	t.Run("buying beyond your gold is refused", func(t *testing.T) {
		p, rec := atTownSquare(t)
		p.BuyItem(ctx, club) // 20 - 10
		p.BuyItem(ctx, club) // 10 - 10
		p.BuyItem(ctx, club) // refused

		assert.Equal(t, 0, p.Gold())
		assert.Equal(t, 2, p.ItemQuantity(club))
		assert.Contains(t, rec.Messages(), "You do not have enough gold to buy a Club.")
	})

	t.Run("selling pays gold and removes the item", func(t *testing.T) {
		p, rec := atTownSquare(t)
		p.AddItemToInventory(ctx, ratTail, 2)
		p.SellItem(ctx, ratTail)

		assert.Equal(t, 21, p.Gold())
		assert.Equal(t, 1, p.ItemQuantity(ratTail))
		assert.Contains(t, rec.Messages(), "You sell a Rat tail for 1 gold.")
	})

	t.Run("selling an item you do not hold is refused", func(t *testing.T) {
		p, rec := atTownSquare(t)
		p.SellItem(ctx, ratTail)

		assert.Equal(t, 20, p.Gold())
		assert.Contains(t, rec.Messages(), "You do not have a Rat tail to sell.")
	})

	t.Run("priceless items are not tradable", func(t *testing.T) {
		p, rec := atTownSquare(t)
		p.AddItemToInventory(ctx, pass, 1)

		p.BuyItem(ctx, pass)
		p.SellItem(ctx, pass)

		assert.Equal(t, 20, p.Gold())
		assert.Equal(t, 1, p.ItemQuantity(pass))
		assert.Contains(t, rec.Messages(), "The Adventurer pass cannot be bought.")
		assert.Contains(t, rec.Messages(), "The Adventurer pass cannot be sold.")
	})

	t.Run("no trading without a vendor", func(t *testing.T) {
		p, rec := newTestPlayer(t) // home has no vendor
		p.BuyItem(ctx, potion)

		assert.Equal(t, 20, p.Gold())
		assert.Equal(t, []string{"There is no one here to trade with."}, rec.Messages())
	})
}
