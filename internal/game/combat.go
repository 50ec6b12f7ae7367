package game

import (
	"context"
	"strconv"

	"github.com/osse101/SuperAdventure_Go/internal/domain"
	"github.com/osse101/SuperAdventure_Go/internal/logger"
)

// ActiveMonster is a live combat instance of a catalog monster. The catalog
// template is never mutated; only the instance takes damage.
type ActiveMonster struct {
	domain.Monster
	CurrentHitPoints int
}

func (p *Player) newMonsterInstance(monsterID int) *ActiveMonster {
	template := p.catalog.MonsterByID(monsterID)
	return &ActiveMonster{
		Monster:          template,
		CurrentHitPoints: template.HitPoints,
	}
}

// UseItemInBattle routes a battle item to the matching action. Items that
// are neither weapons nor potions do nothing.
func (p *Player) UseItemInBattle(ctx context.Context, item domain.Item) {
	switch {
	case item.IsWeapon():
		p.UseWeapon(ctx, item)
	case item.IsPotion():
		p.UsePotion(ctx, item)
	}
}

// UseWeapon swings a weapon at the active monster. The player strikes first;
// a kill pays out experience, gold and loot and then re-enters the current
// location, which heals the player and spawns a fresh monster. A surviving
// monster strikes back, and a lethal counterblow sends the player home.
func (p *Player) UseWeapon(ctx context.Context, weapon domain.Item) {
	if p.activeMonster == nil {
		logger.FromContext(ctx).Warn("attack with no active monster", "weapon", weapon.Name)
		return
	}
	monster := p.activeMonster

	damageToMonster := p.roll.NumberBetween(weapon.MinimumDamage, weapon.MaximumDamage)
	monster.CurrentHitPoints -= damageToMonster

	p.message("You hit the " + monster.Name + " for " + strconv.Itoa(damageToMonster) + " points.")

	if monster.CurrentHitPoints <= 0 {
		p.message("")
		p.message("You defeated the " + monster.Name)

		p.AddExperiencePoints(ctx, monster.RewardExperiencePoints)
		p.message("You receive " + strconv.Itoa(monster.RewardExperiencePoints) + " experience points")

		p.setGold(p.gold + monster.RewardGold)
		p.message("You receive " + strconv.Itoa(monster.RewardGold) + " gold")

		for _, loot := range p.rollLoot(monster.LootTable) {
			p.AddItemToInventory(ctx, loot, 1)
			p.message("You loot 1 " + loot.DisplayName(1))
		}
		p.message("")

		logger.FromContext(ctx).Info("monster defeated", "monster", monster.Name,
			"experience", monster.RewardExperiencePoints, "gold", monster.RewardGold)

		// Re-entering the current location heals the player and spawns
		// the next monster.
		p.MoveTo(ctx, p.CurrentLocation())
		return
	}

	p.monsterStrikesBack(ctx, monster)
}

// UsePotion drinks a healing potion, clamped at maximum hit points, and
// consumes it. Drinking takes the turn, so the monster still strikes back.
func (p *Player) UsePotion(ctx context.Context, potion domain.Item) {
	if p.activeMonster == nil {
		logger.FromContext(ctx).Warn("potion with no active monster", "potion", potion.Name)
		return
	}

	healed := p.currentHitPoints + potion.AmountToHeal
	if healed > p.maximumHitPoints {
		healed = p.maximumHitPoints
	}
	p.setCurrentHitPoints(healed)

	p.RemoveItemFromInventory(ctx, potion, 1)

	p.message("You drink a " + potion.Name)

	p.monsterStrikesBack(ctx, p.activeMonster)
}

// monsterStrikesBack rolls the monster's damage for the turn. Damage may be
// zero, a clean miss. A lethal hit moves the player home.
func (p *Player) monsterStrikesBack(ctx context.Context, monster *ActiveMonster) {
	damageToPlayer := p.roll.NumberBetween(0, monster.MaximumDamage)

	p.message("The " + monster.Name + " did " + strconv.Itoa(damageToPlayer) + " points of damage.")

	p.setCurrentHitPoints(p.currentHitPoints - damageToPlayer)

	if p.currentHitPoints <= 0 {
		p.message("The " + monster.Name + " killed you.")
		logger.FromContext(ctx).Info("player killed", "monster", monster.Name)
		p.moveHome(ctx)
	}
}

// rollLoot rolls each loot table entry independently against its drop
// percentage. If nothing drops, the default entries drop instead so a kill is
// never empty-handed.
func (p *Player) rollLoot(table []domain.LootEntry) []domain.Item {
	var dropped []domain.Item
	for _, entry := range table {
		if p.roll.NumberBetween(1, 100) <= entry.DropPercentage {
			dropped = append(dropped, p.catalog.ItemByID(entry.ItemID))
		}
	}
	if len(dropped) == 0 {
		for _, entry := range table {
			if entry.IsDefaultItem {
				dropped = append(dropped, p.catalog.ItemByID(entry.ItemID))
			}
		}
	}
	return dropped
}
