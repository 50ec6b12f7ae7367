package domain

// ItemKind tags the variant of an Item. The set is closed: code that
// dispatches on it should switch over all three kinds.
type ItemKind string

const (
	KindPlain  ItemKind = "plain"
	KindWeapon ItemKind = "weapon"
	KindPotion ItemKind = "potion"
)

// Item is a catalog-owned, immutable item definition. Variant fields are
// only meaningful for the matching Kind: MinimumDamage/MaximumDamage for
// weapons, AmountToHeal for potions.
type Item struct {
	ID         int      `json:"id"`
	Kind       ItemKind `json:"kind"`
	Name       string   `json:"name"`
	NamePlural string   `json:"name_plural"`
	Price      int      `json:"price"` // 0 = not tradable

	MinimumDamage int `json:"minimum_damage,omitempty"`
	MaximumDamage int `json:"maximum_damage,omitempty"`
	AmountToHeal  int `json:"amount_to_heal,omitempty"`
}

// DisplayName returns the singular or plural name depending on quantity.
func (i Item) DisplayName(quantity int) string {
	if quantity == 1 {
		return i.Name
	}
	return i.NamePlural
}

// IsWeapon reports whether the item can be equipped as a weapon.
func (i Item) IsWeapon() bool { return i.Kind == KindWeapon }

// IsPotion reports whether the item can be drunk in battle.
func (i Item) IsPotion() bool { return i.Kind == KindPotion }
