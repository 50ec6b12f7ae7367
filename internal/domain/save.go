package domain

// PlayerSnapshot is the persistable image of a player. It carries plain
// catalog IDs only, so a snapshot can be validated before any catalog
// lookup happens. CurrentWeaponID/CurrentPotionID use 0 for "none".
//
// The validate tags guard restores from untrusted save data; a snapshot
// failing them is treated as corruption and replaced by the default player.
type PlayerSnapshot struct {
	CurrentHitPoints  int `validate:"gte=0"`
	MaximumHitPoints  int `validate:"gt=0,gtefield=CurrentHitPoints"`
	Gold              int
	ExperiencePoints  int `validate:"gte=0"`
	CurrentLocationID int `validate:"gt=0"`
	CurrentWeaponID   int `validate:"gte=0"`
	CurrentPotionID   int `validate:"gte=0"`

	LocationsVisited []int
	Inventory        []InventoryItem `validate:"dive"`
	Quests           []PlayerQuest   `validate:"dive"`
}
