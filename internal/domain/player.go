package domain

// InventoryItem is a player-owned ledger entry: an item reference plus a
// quantity. The ledger keeps at most one entry per item ID and drops
// entries that reach quantity zero.
type InventoryItem struct {
	ItemID   int `json:"item_id" validate:"gt=0"`
	Quantity int `json:"quantity" validate:"gt=0"`
}

// PlayerQuest is a player-owned ledger entry tracking quest state. At most
// one entry exists per quest ID.
type PlayerQuest struct {
	QuestID     int  `json:"quest_id" validate:"gt=0"`
	IsCompleted bool `json:"is_completed"`
}
