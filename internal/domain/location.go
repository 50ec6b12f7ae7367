package domain

// Vendor is a trader working at a location. Wares lists the item IDs the
// vendor offers for purchase; selling is open to any item with a price.
type Vendor struct {
	Name    string `json:"name"`
	WareIDs []int  `json:"ware_ids"`
}

// Location is a catalog-owned, immutable node of the world graph. Neighbor
// and reference fields use 0 for "absent" (all catalog IDs start at 1).
// Edges are directed and not guaranteed symmetric.
type Location struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	NorthID int `json:"north_id,omitempty"`
	EastID  int `json:"east_id,omitempty"`
	SouthID int `json:"south_id,omitempty"`
	WestID  int `json:"west_id,omitempty"`

	ItemRequiredToEnterID int     `json:"item_required_to_enter_id,omitempty"`
	QuestAvailableHereID  int     `json:"quest_available_here_id,omitempty"`
	MonsterLivingHereID   int     `json:"monster_living_here_id,omitempty"`
	VendorWorkingHere     *Vendor `json:"vendor_working_here,omitempty"`
}

// HasQuest reports whether a quest is offered at this location.
func (l Location) HasQuest() bool { return l.QuestAvailableHereID != 0 }

// HasMonster reports whether a monster lives at this location.
func (l Location) HasMonster() bool { return l.MonsterLivingHereID != 0 }

// RequiresItem reports whether an item is needed to enter this location.
func (l Location) RequiresItem() bool { return l.ItemRequiredToEnterID != 0 }
