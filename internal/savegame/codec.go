// Package savegame persists player snapshots. The canonical format is an
// XML document; a SQLite mirror can be layered on top through the Mapper.
// Anything wrong with stored data is reported as ErrCorrupt so callers can
// fall back to a fresh default player instead of failing the session.
package savegame

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/SuperAdventure_Go/internal/domain"
)

var (
	// ErrNotFound means no saved game exists yet.
	ErrNotFound = errors.New("savegame: not found")

	// ErrCorrupt means stored data exists but cannot be trusted.
	ErrCorrupt = errors.New("savegame: corrupt data")
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func snapshotValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// xmlBool renders like the original save files: "True" / "False".
type xmlBool bool

func (b xmlBool) MarshalXMLAttr(name xml.Name) (xml.Attr, error) {
	if b {
		return xml.Attr{Name: name, Value: "True"}, nil
	}
	return xml.Attr{Name: name, Value: "False"}, nil
}

func (b *xmlBool) UnmarshalXMLAttr(attr xml.Attr) error {
	v, err := strconv.ParseBool(attr.Value)
	if err != nil {
		return fmt.Errorf("attribute %s: %w", attr.Name.Local, err)
	}
	*b = xmlBool(v)
	return nil
}

type xmlLocationVisited struct {
	ID int `xml:"ID,attr"`
}

type xmlInventoryItem struct {
	ID       int `xml:"ID,attr"`
	Quantity int `xml:"Quantity,attr"`
}

type xmlPlayerQuest struct {
	ID          int     `xml:"ID,attr"`
	IsCompleted xmlBool `xml:"IsCompleted,attr"`
}

type xmlPlayer struct {
	XMLName xml.Name `xml:"Player"`

	CurrentHitPoints int  `xml:"Stats>CurrentHitPoints"`
	MaximumHitPoints int  `xml:"Stats>MaximumHitPoints"`
	Gold             int  `xml:"Stats>Gold"`
	ExperiencePoints int  `xml:"Stats>ExperiencePoints"`
	CurrentLocation  int  `xml:"Stats>CurrentLocation"`
	CurrentWeapon    *int `xml:"Stats>CurrentWeapon"`
	CurrentPotion    *int `xml:"Stats>CurrentPotion"`

	LocationsVisited []xmlLocationVisited `xml:"LocationsVisited>LocationVisited"`
	InventoryItems   []xmlInventoryItem   `xml:"InventoryItems>InventoryItem"`
	PlayerQuests     []xmlPlayerQuest     `xml:"PlayerQuests>PlayerQuest"`
}

// Marshal renders a snapshot as a saved-game XML document.
func Marshal(snap domain.PlayerSnapshot) ([]byte, error) {
	doc := xmlPlayer{
		CurrentHitPoints: snap.CurrentHitPoints,
		MaximumHitPoints: snap.MaximumHitPoints,
		Gold:             snap.Gold,
		ExperiencePoints: snap.ExperiencePoints,
		CurrentLocation:  snap.CurrentLocationID,
	}
	if snap.CurrentWeaponID != 0 {
		id := snap.CurrentWeaponID
		doc.CurrentWeapon = &id
	}
	if snap.CurrentPotionID != 0 {
		id := snap.CurrentPotionID
		doc.CurrentPotion = &id
	}
	for _, locationID := range snap.LocationsVisited {
		doc.LocationsVisited = append(doc.LocationsVisited, xmlLocationVisited{ID: locationID})
	}
	for _, entry := range snap.Inventory {
		doc.InventoryItems = append(doc.InventoryItems, xmlInventoryItem{
			ID:       entry.ItemID,
			Quantity: entry.Quantity,
		})
	}
	for _, entry := range snap.Quests {
		doc.PlayerQuests = append(doc.PlayerQuests, xmlPlayerQuest{
			ID:          entry.QuestID,
			IsCompleted: xmlBool(entry.IsCompleted),
		})
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("savegame: marshal: %w", err)
	}
	return out, nil
}

// Unmarshal parses and validates a saved-game XML document. Malformed XML
// and snapshots violating the shape constraints both come back as ErrCorrupt.
func Unmarshal(data []byte) (domain.PlayerSnapshot, error) {
	var doc xmlPlayer
	if err := xml.Unmarshal(data, &doc); err != nil {
		return domain.PlayerSnapshot{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	snap := domain.PlayerSnapshot{
		CurrentHitPoints:  doc.CurrentHitPoints,
		MaximumHitPoints:  doc.MaximumHitPoints,
		Gold:              doc.Gold,
		ExperiencePoints:  doc.ExperiencePoints,
		CurrentLocationID: doc.CurrentLocation,
	}
	if doc.CurrentWeapon != nil {
		snap.CurrentWeaponID = *doc.CurrentWeapon
	}
	if doc.CurrentPotion != nil {
		snap.CurrentPotionID = *doc.CurrentPotion
	}
	for _, node := range doc.LocationsVisited {
		snap.LocationsVisited = append(snap.LocationsVisited, node.ID)
	}
	for _, node := range doc.InventoryItems {
		snap.Inventory = append(snap.Inventory, domain.InventoryItem{
			ItemID:   node.ID,
			Quantity: node.Quantity,
		})
	}
	for _, node := range doc.PlayerQuests {
		snap.Quests = append(snap.Quests, domain.PlayerQuest{
			QuestID:     node.ID,
			IsCompleted: bool(node.IsCompleted),
		})
	}

	if err := Validate(snap); err != nil {
		return domain.PlayerSnapshot{}, err
	}
	return snap, nil
}

// Validate checks a snapshot against the shape constraints shared by every
// store. Violations come back as ErrCorrupt.
func Validate(snap domain.PlayerSnapshot) error {
	if err := snapshotValidator().Struct(snap); err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return nil
}
