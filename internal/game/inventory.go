package game

import (
	"context"

	"github.com/osse101/SuperAdventure_Go/internal/domain"
	"github.com/osse101/SuperAdventure_Go/internal/event"
	"github.com/osse101/SuperAdventure_Go/internal/logger"
)

// AddItemToInventory adds quantity of an item to the ledger, merging with an
// existing entry when present. The first weapon a player ever holds is
// selected as the current weapon automatically.
func (p *Player) AddItemToInventory(ctx context.Context, item domain.Item, quantity int) {
	if quantity <= 0 {
		return
	}
	for i := range p.inventory {
		if p.inventory[i].ItemID == item.ID {
			p.inventory[i].Quantity += quantity
			p.raiseInventoryChanged(item)
			return
		}
	}

	if item.IsWeapon() && len(p.Weapons()) == 0 {
		p.currentWeaponID = item.ID
		logger.FromContext(ctx).Debug("auto-equipped first weapon", "item", item.Name)
	}
	if item.IsPotion() && len(p.Potions()) == 0 {
		p.currentPotionID = item.ID
	}

	p.inventory = append(p.inventory, domain.InventoryItem{ItemID: item.ID, Quantity: quantity})
	p.raiseInventoryChanged(item)
}

// RemoveItemFromInventory removes quantity of an item. Removing more than is
// held clamps at zero; a zeroed entry is deleted from the ledger, and a
// deleted current weapon or potion selection is reassigned to another held
// item of the same kind, or cleared.
func (p *Player) RemoveItemFromInventory(ctx context.Context, item domain.Item, quantity int) {
	idx := -1
	for i := range p.inventory {
		if p.inventory[i].ItemID == item.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		logger.FromContext(ctx).Debug("remove of item not in inventory", "item", item.Name)
		return
	}

	p.inventory[idx].Quantity -= quantity
	if p.inventory[idx].Quantity < 0 {
		p.inventory[idx].Quantity = 0
	}
	if p.inventory[idx].Quantity == 0 {
		p.inventory = append(p.inventory[:idx], p.inventory[idx+1:]...)
		p.reassignSelections(item.ID)
	}
	p.raiseInventoryChanged(item)
}

// reassignSelections repairs the current weapon/potion selections after the
// item with the given ID left the inventory.
func (p *Player) reassignSelections(removedItemID int) {
	if p.currentWeaponID == removedItemID {
		p.currentWeaponID = 0
		if weapons := p.Weapons(); len(weapons) > 0 {
			p.currentWeaponID = weapons[0].ID
		}
	}
	if p.currentPotionID == removedItemID {
		p.currentPotionID = 0
		if potions := p.Potions(); len(potions) > 0 {
			p.currentPotionID = potions[0].ID
		}
	}
}

func (p *Player) raiseInventoryChanged(item domain.Item) {
	if item.IsWeapon() {
		p.bus.PublishProperty(event.PropWeapons)
	}
	if item.IsPotion() {
		p.bus.PublishProperty(event.PropPotions)
	}
}

// ItemQuantity returns how many of the item the player holds.
func (p *Player) ItemQuantity(item domain.Item) int {
	for _, entry := range p.inventory {
		if entry.ItemID == item.ID {
			return entry.Quantity
		}
	}
	return 0
}

// HasRequiredItemToEnterThisLocation reports whether the player may enter the
// location. Locations without an item gate admit everyone.
func (p *Player) HasRequiredItemToEnterThisLocation(location domain.Location) bool {
	if !location.RequiresItem() {
		return true
	}
	for _, entry := range p.inventory {
		if entry.ItemID == location.ItemRequiredToEnterID {
			return true
		}
	}
	return false
}
