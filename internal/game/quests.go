package game

import (
	"context"
	"strconv"

	"github.com/osse101/SuperAdventure_Go/internal/domain"
	"github.com/osse101/SuperAdventure_Go/internal/logger"
)

// HasThisQuest reports whether the quest is in the player's ledger,
// completed or not.
func (p *Player) HasThisQuest(quest domain.Quest) bool {
	for _, entry := range p.quests {
		if entry.QuestID == quest.ID {
			return true
		}
	}
	return false
}

// CompletedThisQuest reports whether the quest is in the ledger and marked
// completed.
func (p *Player) CompletedThisQuest(quest domain.Quest) bool {
	for _, entry := range p.quests {
		if entry.QuestID == quest.ID {
			return entry.IsCompleted
		}
	}
	return false
}

// HasAllQuestCompletionItems reports whether the inventory covers every item
// and quantity the quest asks for.
func (p *Player) HasAllQuestCompletionItems(quest domain.Quest) bool {
	for _, required := range quest.CompletionItems {
		found := false
		for _, entry := range p.inventory {
			if entry.ItemID == required.ItemID && entry.Quantity >= required.Quantity {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// RemoveQuestCompletionItems takes the quest's required quantities out of the
// inventory.
func (p *Player) RemoveQuestCompletionItems(ctx context.Context, quest domain.Quest) {
	for _, required := range quest.CompletionItems {
		p.RemoveItemFromInventory(ctx, p.catalog.ItemByID(required.ItemID), required.Quantity)
	}
}

// GiveQuestToPlayer adds the quest to the ledger as not completed and
// announces it.
func (p *Player) GiveQuestToPlayer(ctx context.Context, quest domain.Quest) {
	p.message("You receive the " + quest.Name + " quest.")
	p.message(quest.Description)
	p.message("To complete it, return with:")
	for _, required := range quest.CompletionItems {
		item := p.catalog.ItemByID(required.ItemID)
		p.message(strconv.Itoa(required.Quantity) + " " + item.DisplayName(required.Quantity))
	}

	p.quests = append(p.quests, domain.PlayerQuest{QuestID: quest.ID})
	logger.FromContext(ctx).Info("quest granted", "quest", quest.Name)
}

// CompleteQuestAndGiveRewards removes the turn-in items, pays out the quest's
// experience, gold and reward item, and marks the ledger entry completed.
func (p *Player) CompleteQuestAndGiveRewards(ctx context.Context, quest domain.Quest) {
	p.message("")
	p.message("You complete the " + quest.Name + " quest.")

	p.RemoveQuestCompletionItems(ctx, quest)

	rewardItem := p.catalog.ItemByID(quest.RewardItemID)
	p.message("You receive: ")
	p.message(strconv.Itoa(quest.RewardExperiencePoints) + " experience points")
	p.message(strconv.Itoa(quest.RewardGold) + " gold")
	p.message(rewardItem.Name)

	p.AddExperiencePoints(ctx, quest.RewardExperiencePoints)
	p.setGold(p.gold + quest.RewardGold)
	p.AddItemToInventory(ctx, rewardItem, 1)

	p.markQuestCompleted(quest)
	logger.FromContext(ctx).Info("quest completed", "quest", quest.Name,
		"experience", quest.RewardExperiencePoints, "gold", quest.RewardGold)
}

// markQuestCompleted flips the ledger entry for the quest to completed.
// Unknown quests are ignored.
func (p *Player) markQuestCompleted(quest domain.Quest) {
	for i := range p.quests {
		if p.quests[i].QuestID == quest.ID {
			p.quests[i].IsCompleted = true
			return
		}
	}
}
