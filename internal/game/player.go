// Package game holds the player aggregate and its mutation rules: the
// inventory and quest ledgers, the movement controller, the combat resolver
// and trading. All state changes flow out through the event bus so a
// presentation layer can mirror them.
package game

import (
	"context"

	"github.com/osse101/SuperAdventure_Go/internal/dice"
	"github.com/osse101/SuperAdventure_Go/internal/domain"
	"github.com/osse101/SuperAdventure_Go/internal/event"
	"github.com/osse101/SuperAdventure_Go/internal/logger"
	"github.com/osse101/SuperAdventure_Go/internal/world"
)

// Default starting stats.
const (
	defaultHitPoints        = 10
	defaultGold             = 20
	defaultExperiencePoints = 0

	// hitPointsPerLevel sets MaximumHitPoints to Level * 10 on every
	// experience gain.
	hitPointsPerLevel = 10

	// experiencePerLevel: the level is ExperiencePoints/100 + 1.
	experiencePerLevel = 100
)

// Player is the root aggregate of a game session. It exclusively owns its
// ledgers and the active monster; catalog references are shared read-only.
// A Player is driven by a single goroutine.
type Player struct {
	catalog *world.Catalog
	bus     *event.Bus
	roll    dice.Roller

	currentHitPoints  int
	maximumHitPoints  int
	gold              int
	experiencePoints  int
	currentLocationID int

	// Selected battle items, by item ID into the inventory ledger.
	// 0 means none selected.
	currentWeaponID int
	currentPotionID int

	locationsVisited []int
	inventory        []domain.InventoryItem
	quests           []domain.PlayerQuest

	activeMonster *ActiveMonster
}

// NewDefaultPlayer creates the starting player: 10/10 hit points, 20 gold,
// no experience, a rusty sword, standing at home.
func NewDefaultPlayer(catalog *world.Catalog, bus *event.Bus, roll dice.Roller) *Player {
	p := &Player{
		catalog:           catalog,
		bus:               bus,
		roll:              roll,
		currentHitPoints:  defaultHitPoints,
		maximumHitPoints:  defaultHitPoints,
		gold:              defaultGold,
		experiencePoints:  defaultExperiencePoints,
		currentLocationID: world.LocationIDHome,
	}
	p.AddItemToInventory(context.Background(), catalog.ItemByID(world.ItemIDRustySword), 1)
	return p
}

// CurrentHitPoints returns the player's current hit points.
func (p *Player) CurrentHitPoints() int { return p.currentHitPoints }

// MaximumHitPoints returns the player's maximum hit points.
func (p *Player) MaximumHitPoints() int { return p.maximumHitPoints }

// Gold returns the player's gold. Nothing clamps it at zero; debt is a
// permitted, if curious, state.
func (p *Player) Gold() int { return p.gold }

// ExperiencePoints returns the player's lifetime experience.
func (p *Player) ExperiencePoints() int { return p.experiencePoints }

// Level derives the player's level from experience. It is never stored.
func (p *Player) Level() int {
	return p.experiencePoints/experiencePerLevel + 1
}

// CurrentLocation returns the location the player stands at.
func (p *Player) CurrentLocation() domain.Location {
	return p.catalog.LocationByID(p.currentLocationID)
}

// CurrentWeapon returns the selected weapon, if any.
func (p *Player) CurrentWeapon() (domain.Item, bool) {
	if p.currentWeaponID == 0 {
		return domain.Item{}, false
	}
	return p.catalog.ItemByID(p.currentWeaponID), true
}

// CurrentPotion returns the selected potion, if any.
func (p *Player) CurrentPotion() (domain.Item, bool) {
	if p.currentPotionID == 0 {
		return domain.Item{}, false
	}
	return p.catalog.ItemByID(p.currentPotionID), true
}

// SelectWeapon makes the given weapon the default for attack commands.
// It must be a weapon held in inventory.
func (p *Player) SelectWeapon(item domain.Item) bool {
	if !item.IsWeapon() || p.ItemQuantity(item) == 0 {
		return false
	}
	p.currentWeaponID = item.ID
	return true
}

// Inventory returns a copy of the inventory ledger.
func (p *Player) Inventory() []domain.InventoryItem {
	out := make([]domain.InventoryItem, len(p.inventory))
	copy(out, p.inventory)
	return out
}

// Quests returns a copy of the quest ledger.
func (p *Player) Quests() []domain.PlayerQuest {
	out := make([]domain.PlayerQuest, len(p.quests))
	copy(out, p.quests)
	return out
}

// LocationsVisited returns a copy of the visited-location IDs, in first-visit
// order.
func (p *Player) LocationsVisited() []int {
	out := make([]int, len(p.locationsVisited))
	copy(out, p.locationsVisited)
	return out
}

// HasVisited reports whether the player has ever entered the location.
func (p *Player) HasVisited(locationID int) bool {
	for _, id := range p.locationsVisited {
		if id == locationID {
			return true
		}
	}
	return false
}

// ActiveMonster returns the monster currently engaged, or nil.
func (p *Player) ActiveMonster() *ActiveMonster {
	return p.activeMonster
}

// Weapons returns the weapons held, in ledger order.
func (p *Player) Weapons() []domain.Item {
	return p.itemsOfKind(domain.KindWeapon)
}

// Potions returns the healing potions held, in ledger order.
func (p *Player) Potions() []domain.Item {
	return p.itemsOfKind(domain.KindPotion)
}

func (p *Player) itemsOfKind(kind domain.ItemKind) []domain.Item {
	var out []domain.Item
	for _, entry := range p.inventory {
		item := p.catalog.ItemByID(entry.ItemID)
		if item.Kind == kind {
			out = append(out, item)
		}
	}
	return out
}

// AddExperiencePoints grants experience and recomputes maximum hit points
// from the (possibly new) level. Current hit points are not refilled.
func (p *Player) AddExperiencePoints(ctx context.Context, points int) {
	oldLevel := p.Level()

	p.experiencePoints += points
	p.bus.PublishProperty(event.PropExperiencePoints)
	p.bus.PublishProperty(event.PropLevel)

	p.maximumHitPoints = p.Level() * hitPointsPerLevel
	p.bus.PublishProperty(event.PropMaximumHitPoints)

	if newLevel := p.Level(); newLevel != oldLevel {
		logger.FromContext(ctx).Info("level up",
			"old_level", oldLevel, "new_level", newLevel,
			"maximum_hit_points", p.maximumHitPoints)
	}
}

func (p *Player) setGold(gold int) {
	p.gold = gold
	p.bus.PublishProperty(event.PropGold)
}

func (p *Player) setCurrentHitPoints(hp int) {
	p.currentHitPoints = hp
	p.bus.PublishProperty(event.PropCurrentHitPoints)
}

// completelyHeal restores the player to full hit points.
func (p *Player) completelyHeal() {
	p.setCurrentHitPoints(p.maximumHitPoints)
}

func (p *Player) message(text string) {
	p.bus.PublishMessage(text, false)
}
