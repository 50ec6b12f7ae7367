// Package world builds and serves the static content catalog: items,
// monster templates, locations and quests, keyed by integer ID. The catalog
// is built once at startup and read-only afterwards; every reference inside
// it is checked at build time, so an unknown ID at lookup time is a
// programming error and panics.
package world

import (
	"fmt"

	"github.com/osse101/SuperAdventure_Go/internal/domain"
)

// Well-known content IDs referenced by engine code.
const (
	ItemIDRustySword     = 1
	ItemIDHealingPotion  = 7
	ItemIDAdventurerPass = 10

	LocationIDHome = 1
)

// Catalog is the closed universe of valid game content.
type Catalog struct {
	items     map[int]domain.Item
	monsters  map[int]domain.Monster
	locations map[int]domain.Location
	quests    map[int]domain.Quest
}

// ItemByID returns the item definition. Panics on an unknown ID.
func (c *Catalog) ItemByID(id int) domain.Item {
	item, ok := c.items[id]
	if !ok {
		panic(fmt.Sprintf("world: unknown item ID %d", id))
	}
	return item
}

// MonsterByID returns the monster template. Panics on an unknown ID.
func (c *Catalog) MonsterByID(id int) domain.Monster {
	monster, ok := c.monsters[id]
	if !ok {
		panic(fmt.Sprintf("world: unknown monster ID %d", id))
	}
	return monster
}

// LocationByID returns the location. Panics on an unknown ID.
func (c *Catalog) LocationByID(id int) domain.Location {
	location, ok := c.locations[id]
	if !ok {
		panic(fmt.Sprintf("world: unknown location ID %d", id))
	}
	return location
}

// QuestByID returns the quest definition. Panics on an unknown ID.
func (c *Catalog) QuestByID(id int) domain.Quest {
	quest, ok := c.quests[id]
	if !ok {
		panic(fmt.Sprintf("world: unknown quest ID %d", id))
	}
	return quest
}

// FindItem is the non-panicking lookup used when resolving save data, which
// may reference content that no longer exists.
func (c *Catalog) FindItem(id int) (domain.Item, bool) {
	item, ok := c.items[id]
	return item, ok
}

// FindLocation is the non-panicking location lookup for save data.
func (c *Catalog) FindLocation(id int) (domain.Location, bool) {
	location, ok := c.locations[id]
	return location, ok
}

// FindQuest is the non-panicking quest lookup for save data.
func (c *Catalog) FindQuest(id int) (domain.Quest, bool) {
	quest, ok := c.quests[id]
	return quest, ok
}

// Locations returns every location, for map rendering. The slice is ordered
// by ID.
func (c *Catalog) Locations() []domain.Location {
	out := make([]domain.Location, 0, len(c.locations))
	for id := 1; len(out) < len(c.locations); id++ {
		if loc, ok := c.locations[id]; ok {
			out = append(out, loc)
		}
	}
	return out
}

// newCatalog indexes the definitions and verifies that every cross-reference
// resolves. Content with a dangling reference is a build-time defect.
func newCatalog(items []domain.Item, monsters []domain.Monster, locations []domain.Location, quests []domain.Quest) (*Catalog, error) {
	c := &Catalog{
		items:     make(map[int]domain.Item, len(items)),
		monsters:  make(map[int]domain.Monster, len(monsters)),
		locations: make(map[int]domain.Location, len(locations)),
		quests:    make(map[int]domain.Quest, len(quests)),
	}

	for _, item := range items {
		if _, dup := c.items[item.ID]; dup {
			return nil, fmt.Errorf("%w: item ID %d", ErrDuplicateID, item.ID)
		}
		c.items[item.ID] = item
	}
	for _, monster := range monsters {
		if _, dup := c.monsters[monster.ID]; dup {
			return nil, fmt.Errorf("%w: monster ID %d", ErrDuplicateID, monster.ID)
		}
		c.monsters[monster.ID] = monster
	}
	for _, location := range locations {
		if _, dup := c.locations[location.ID]; dup {
			return nil, fmt.Errorf("%w: location ID %d", ErrDuplicateID, location.ID)
		}
		c.locations[location.ID] = location
	}
	for _, quest := range quests {
		if _, dup := c.quests[quest.ID]; dup {
			return nil, fmt.Errorf("%w: quest ID %d", ErrDuplicateID, quest.ID)
		}
		c.quests[quest.ID] = quest
	}

	if err := c.checkReferences(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Catalog) checkReferences() error {
	for _, monster := range c.monsters {
		for _, entry := range monster.LootTable {
			if _, ok := c.items[entry.ItemID]; !ok {
				return fmt.Errorf("%w: monster %d loot references item %d", ErrDanglingReference, monster.ID, entry.ItemID)
			}
		}
	}

	for _, quest := range c.quests {
		for _, qci := range quest.CompletionItems {
			if _, ok := c.items[qci.ItemID]; !ok {
				return fmt.Errorf("%w: quest %d requires item %d", ErrDanglingReference, quest.ID, qci.ItemID)
			}
		}
		if _, ok := c.items[quest.RewardItemID]; !ok {
			return fmt.Errorf("%w: quest %d rewards item %d", ErrDanglingReference, quest.ID, quest.RewardItemID)
		}
	}

	for _, location := range c.locations {
		for _, neighbor := range []int{location.NorthID, location.EastID, location.SouthID, location.WestID} {
			if neighbor != 0 {
				if _, ok := c.locations[neighbor]; !ok {
					return fmt.Errorf("%w: location %d links to location %d", ErrDanglingReference, location.ID, neighbor)
				}
			}
		}
		if location.RequiresItem() {
			if _, ok := c.items[location.ItemRequiredToEnterID]; !ok {
				return fmt.Errorf("%w: location %d requires item %d", ErrDanglingReference, location.ID, location.ItemRequiredToEnterID)
			}
		}
		if location.HasQuest() {
			if _, ok := c.quests[location.QuestAvailableHereID]; !ok {
				return fmt.Errorf("%w: location %d offers quest %d", ErrDanglingReference, location.ID, location.QuestAvailableHereID)
			}
		}
		if location.HasMonster() {
			if _, ok := c.monsters[location.MonsterLivingHereID]; !ok {
				return fmt.Errorf("%w: location %d hosts monster %d", ErrDanglingReference, location.ID, location.MonsterLivingHereID)
			}
		}
		if location.VendorWorkingHere != nil {
			for _, ware := range location.VendorWorkingHere.WareIDs {
				if _, ok := c.items[ware]; !ok {
					return fmt.Errorf("%w: location %d vendor sells item %d", ErrDanglingReference, location.ID, ware)
				}
			}
		}
	}

	if _, ok := c.locations[LocationIDHome]; !ok {
		return fmt.Errorf("%w: home location %d missing", ErrDanglingReference, LocationIDHome)
	}
	if item, ok := c.items[ItemIDRustySword]; !ok || !item.IsWeapon() {
		return fmt.Errorf("%w: starting weapon %d missing or not a weapon", ErrDanglingReference, ItemIDRustySword)
	}

	return nil
}
