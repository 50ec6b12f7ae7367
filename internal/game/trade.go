package game

import (
	"context"
	"strconv"

	"github.com/osse101/SuperAdventure_Go/internal/domain"
	"github.com/osse101/SuperAdventure_Go/internal/logger"
)

// Vendor returns the trader at the player's current location, if any.
func (p *Player) Vendor() (domain.Vendor, bool) {
	loc := p.CurrentLocation()
	if loc.VendorWorkingHere == nil {
		return domain.Vendor{}, false
	}
	return *loc.VendorWorkingHere, true
}

// BuyItem purchases one of the item from the vendor at the current location.
// Items priced at zero are not tradable.
func (p *Player) BuyItem(ctx context.Context, item domain.Item) {
	if _, ok := p.Vendor(); !ok {
		p.message("There is no one here to trade with.")
		return
	}
	if item.Price <= 0 {
		p.message("The " + item.Name + " cannot be bought.")
		return
	}
	if p.gold < item.Price {
		p.message("You do not have enough gold to buy a " + item.Name + ".")
		return
	}

	p.setGold(p.gold - item.Price)
	p.AddItemToInventory(ctx, item, 1)
	p.message("You buy a " + item.Name + " for " + strconv.Itoa(item.Price) + " gold.")

	logger.FromContext(ctx).Info("item bought", "item", item.Name, "price", item.Price)
}

// SellItem sells one of the item to the vendor at the current location, at
// the same price the vendor charges.
func (p *Player) SellItem(ctx context.Context, item domain.Item) {
	if _, ok := p.Vendor(); !ok {
		p.message("There is no one here to trade with.")
		return
	}
	if item.Price <= 0 {
		p.message("The " + item.Name + " cannot be sold.")
		return
	}
	if p.ItemQuantity(item) == 0 {
		p.message("You do not have a " + item.Name + " to sell.")
		return
	}

	p.RemoveItemFromInventory(ctx, item, 1)
	p.setGold(p.gold + item.Price)
	p.message("You sell a " + item.Name + " for " + strconv.Itoa(item.Price) + " gold.")

	logger.FromContext(ctx).Info("item sold", "item", item.Name, "price", item.Price)
}
