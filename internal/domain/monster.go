package domain

// LootEntry is one row of a monster's loot table. DropPercentage is rolled
// independently per entry (1-100 inclusive). Entries flagged IsDefaultItem
// are granted as a fallback when no entry wins its roll.
type LootEntry struct {
	ItemID         int  `json:"item_id"`
	DropPercentage int  `json:"drop_percentage"`
	IsDefaultItem  bool `json:"is_default_item"`
}

// Monster is a catalog-owned, immutable monster template. Per-encounter
// state (current hit points) lives on the active instance owned by the
// player, never here.
type Monster struct {
	ID                     int         `json:"id"`
	Name                   string      `json:"name"`
	MaximumDamage          int         `json:"maximum_damage"`
	RewardExperiencePoints int         `json:"reward_experience_points"`
	RewardGold             int         `json:"reward_gold"`
	HitPoints              int         `json:"hit_points"`
	LootTable              []LootEntry `json:"loot_table"`
}
