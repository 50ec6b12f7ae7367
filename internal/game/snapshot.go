package game

import (
	"errors"
	"fmt"

	"github.com/osse101/SuperAdventure_Go/internal/dice"
	"github.com/osse101/SuperAdventure_Go/internal/domain"
	"github.com/osse101/SuperAdventure_Go/internal/event"
	"github.com/osse101/SuperAdventure_Go/internal/world"
)

// ErrSnapshotInvalid marks a snapshot whose references don't resolve against
// the catalog. Callers treat it as save corruption and fall back to the
// default player.
var ErrSnapshotInvalid = errors.New("game: snapshot invalid")

// Snapshot captures the player's full persistable state as plain IDs.
func (p *Player) Snapshot() domain.PlayerSnapshot {
	return domain.PlayerSnapshot{
		CurrentHitPoints:  p.currentHitPoints,
		MaximumHitPoints:  p.maximumHitPoints,
		Gold:              p.gold,
		ExperiencePoints:  p.experiencePoints,
		CurrentLocationID: p.currentLocationID,
		CurrentWeaponID:   p.currentWeaponID,
		CurrentPotionID:   p.currentPotionID,
		LocationsVisited:  p.LocationsVisited(),
		Inventory:         p.Inventory(),
		Quests:            p.Quests(),
	}
}

// RestorePlayer rebuilds a player from a snapshot. Every catalog reference is
// checked; a dangling one returns ErrSnapshotInvalid. Restoring does not
// rerun location entry, but it does spawn the local monster so the player is
// never standing unarmed-against-nothing in a monster location.
func RestorePlayer(snap domain.PlayerSnapshot, catalog *world.Catalog, bus *event.Bus, roll dice.Roller) (*Player, error) {
	location, ok := catalog.FindLocation(snap.CurrentLocationID)
	if !ok {
		return nil, fmt.Errorf("%w: location %d", ErrSnapshotInvalid, snap.CurrentLocationID)
	}

	if snap.CurrentWeaponID != 0 {
		item, ok := catalog.FindItem(snap.CurrentWeaponID)
		if !ok || !item.IsWeapon() {
			return nil, fmt.Errorf("%w: weapon %d", ErrSnapshotInvalid, snap.CurrentWeaponID)
		}
	}
	if snap.CurrentPotionID != 0 {
		item, ok := catalog.FindItem(snap.CurrentPotionID)
		if !ok || !item.IsPotion() {
			return nil, fmt.Errorf("%w: potion %d", ErrSnapshotInvalid, snap.CurrentPotionID)
		}
	}
	for _, id := range snap.LocationsVisited {
		if _, ok := catalog.FindLocation(id); !ok {
			return nil, fmt.Errorf("%w: visited location %d", ErrSnapshotInvalid, id)
		}
	}
	for _, entry := range snap.Inventory {
		if _, ok := catalog.FindItem(entry.ItemID); !ok {
			return nil, fmt.Errorf("%w: inventory item %d", ErrSnapshotInvalid, entry.ItemID)
		}
	}
	for _, entry := range snap.Quests {
		if _, ok := catalog.FindQuest(entry.QuestID); !ok {
			return nil, fmt.Errorf("%w: quest %d", ErrSnapshotInvalid, entry.QuestID)
		}
	}

	p := &Player{
		catalog:           catalog,
		bus:               bus,
		roll:              roll,
		currentHitPoints:  snap.CurrentHitPoints,
		maximumHitPoints:  snap.MaximumHitPoints,
		gold:              snap.Gold,
		experiencePoints:  snap.ExperiencePoints,
		currentLocationID: snap.CurrentLocationID,
		currentWeaponID:   snap.CurrentWeaponID,
		currentPotionID:   snap.CurrentPotionID,
	}
	// Save documents from outside sources may repeat an ID; merge such
	// entries so the ledgers keep at most one entry per ID.
	p.locationsVisited = mergeVisited(snap.LocationsVisited)
	p.inventory = mergeInventory(snap.Inventory)
	p.quests = mergeQuests(snap.Quests)

	if location.HasMonster() {
		p.activeMonster = p.newMonsterInstance(location.MonsterLivingHereID)
	}

	return p, nil
}

func mergeVisited(ids []int) []int {
	var out []int
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func mergeInventory(entries []domain.InventoryItem) []domain.InventoryItem {
	var out []domain.InventoryItem
	index := make(map[int]int, len(entries))
	for _, entry := range entries {
		if i, ok := index[entry.ItemID]; ok {
			out[i].Quantity += entry.Quantity
			continue
		}
		index[entry.ItemID] = len(out)
		out = append(out, entry)
	}
	return out
}

func mergeQuests(entries []domain.PlayerQuest) []domain.PlayerQuest {
	var out []domain.PlayerQuest
	index := make(map[int]int, len(entries))
	for _, entry := range entries {
		if i, ok := index[entry.QuestID]; ok {
			out[i].IsCompleted = out[i].IsCompleted || entry.IsCompleted
			continue
		}
		index[entry.QuestID] = len(out)
		out = append(out, entry)
	}
	return out
}
