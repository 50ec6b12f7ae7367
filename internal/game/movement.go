package game

import (
	"context"

	"github.com/osse101/SuperAdventure_Go/internal/domain"
	"github.com/osse101/SuperAdventure_Go/internal/event"
	"github.com/osse101/SuperAdventure_Go/internal/logger"
	"github.com/osse101/SuperAdventure_Go/internal/world"
)

// MoveNorth moves the player to the northern neighbor, if there is one.
// Moving into a wall is silently ignored.
func (p *Player) MoveNorth(ctx context.Context) {
	if loc := p.CurrentLocation(); loc.NorthID != 0 {
		p.MoveTo(ctx, p.catalog.LocationByID(loc.NorthID))
	}
}

// MoveEast moves the player to the eastern neighbor, if there is one.
func (p *Player) MoveEast(ctx context.Context) {
	if loc := p.CurrentLocation(); loc.EastID != 0 {
		p.MoveTo(ctx, p.catalog.LocationByID(loc.EastID))
	}
}

// MoveSouth moves the player to the southern neighbor, if there is one.
func (p *Player) MoveSouth(ctx context.Context) {
	if loc := p.CurrentLocation(); loc.SouthID != 0 {
		p.MoveTo(ctx, p.catalog.LocationByID(loc.SouthID))
	}
}

// MoveWest moves the player to the western neighbor, if there is one.
func (p *Player) MoveWest(ctx context.Context) {
	if loc := p.CurrentLocation(); loc.WestID != 0 {
		p.MoveTo(ctx, p.catalog.LocationByID(loc.WestID))
	}
}

func (p *Player) moveHome(ctx context.Context) {
	p.MoveTo(ctx, p.catalog.LocationByID(world.LocationIDHome))
}

// MoveTo runs the full entry sequence for a location: the item gate, the
// visit record, the full heal, the quest hand-out or turn-in, and the monster
// spawn. Entering the current location again is legal and reruns the whole
// sequence, which is how combat respawns the monster after a kill.
func (p *Player) MoveTo(ctx context.Context, newLocation domain.Location) {
	if !p.HasRequiredItemToEnterThisLocation(newLocation) {
		gate := p.catalog.ItemByID(newLocation.ItemRequiredToEnterID)
		p.message("You must have a " + gate.Name + " to enter this location.")
		return
	}

	p.currentLocationID = newLocation.ID
	p.bus.PublishProperty(event.PropCurrentLocation)

	if !p.HasVisited(newLocation.ID) {
		p.locationsVisited = append(p.locationsVisited, newLocation.ID)
	}

	p.completelyHeal()

	if newLocation.HasQuest() {
		quest := p.catalog.QuestByID(newLocation.QuestAvailableHereID)
		if !p.HasThisQuest(quest) {
			p.GiveQuestToPlayer(ctx, quest)
		} else if !p.CompletedThisQuest(quest) && p.HasAllQuestCompletionItems(quest) {
			p.CompleteQuestAndGiveRewards(ctx, quest)
		}
	}

	if newLocation.HasMonster() {
		p.activeMonster = p.newMonsterInstance(newLocation.MonsterLivingHereID)
		p.message("You see a " + p.activeMonster.Name)
	} else {
		p.activeMonster = nil
	}

	logger.FromContext(ctx).Debug("moved", "location", newLocation.Name,
		"monster", newLocation.HasMonster())
}
