package domain

// QuestCompletionItem is an item and quantity a quest requires the player
// to surrender in exchange for its reward.
type QuestCompletionItem struct {
	ItemID   int `json:"item_id"`
	Quantity int `json:"quantity"`
}

// Quest is a catalog-owned, immutable quest definition.
type Quest struct {
	ID                     int                   `json:"id"`
	Name                   string                `json:"name"`
	Description            string                `json:"description"`
	CompletionItems        []QuestCompletionItem `json:"completion_items"`
	RewardExperiencePoints int                   `json:"reward_experience_points"`
	RewardGold             int                   `json:"reward_gold"`
	RewardItemID           int                   `json:"reward_item_id"`
}
