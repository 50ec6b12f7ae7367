package world

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/osse101/SuperAdventure_Go/internal/domain"
	"github.com/osse101/SuperAdventure_Go/internal/world/gamedata"
)

// Sentinel errors for catalog construction.
var (
	ErrInvalidContent    = errors.New("invalid content")
	ErrDuplicateID       = errors.New("duplicate ID")
	ErrDanglingReference = errors.New("dangling reference")
)

// Content file names inside the gamedata filesystem.
const (
	itemsFile     = "items.json"
	monstersFile  = "monsters.json"
	locationsFile = "locations.json"
	questsFile    = "quests.json"

	itemsSchema     = "items.schema.json"
	monstersSchema  = "monsters.schema.json"
	locationsSchema = "locations.schema.json"
	questsSchema    = "quests.schema.json"
)

type itemsConfig struct {
	Version     string        `json:"version"`
	Description string        `json:"description"`
	Items       []domain.Item `json:"items"`
}

type monstersConfig struct {
	Version     string           `json:"version"`
	Description string           `json:"description"`
	Monsters    []domain.Monster `json:"monsters"`
}

type locationsConfig struct {
	Version     string            `json:"version"`
	Description string            `json:"description"`
	Locations   []domain.Location `json:"locations"`
}

type questsConfig struct {
	Version     string         `json:"version"`
	Description string         `json:"description"`
	Quests      []domain.Quest `json:"quests"`
}

// Load builds the catalog from the embedded content files.
func Load() (*Catalog, error) {
	return LoadFS(gamedata.FS())
}

// MustLoad builds the catalog from embedded content, panicking on error.
// Embedded content that fails to load is a build defect, not a runtime
// condition.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// LoadFS builds a catalog from an arbitrary filesystem holding the content
// and schema files. Tests use it to supply fixture worlds.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	validator := newSchemaValidator(fsys)

	var items itemsConfig
	if err := readContent(fsys, validator, itemsFile, itemsSchema, &items); err != nil {
		return nil, err
	}
	if err := validateItems(items.Items); err != nil {
		return nil, err
	}

	var monsters monstersConfig
	if err := readContent(fsys, validator, monstersFile, monstersSchema, &monsters); err != nil {
		return nil, err
	}

	var locations locationsConfig
	if err := readContent(fsys, validator, locationsFile, locationsSchema, &locations); err != nil {
		return nil, err
	}

	var quests questsConfig
	if err := readContent(fsys, validator, questsFile, questsSchema, &quests); err != nil {
		return nil, err
	}

	return newCatalog(items.Items, monsters.Monsters, locations.Locations, quests.Quests)
}

func readContent(fsys fs.FS, validator *schemaValidator, dataPath, schemaPath string, out interface{}) error {
	data, err := fs.ReadFile(fsys, dataPath)
	if err != nil {
		return fmt.Errorf("failed to read content file %s: %w", dataPath, err)
	}

	if err := validator.validateBytes(data, schemaPath); err != nil {
		return fmt.Errorf("schema validation failed for %s: %w", dataPath, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", dataPath, err)
	}

	return nil
}

// validateItems checks variant constraints the JSON schema cannot express.
func validateItems(items []domain.Item) error {
	for _, item := range items {
		switch item.Kind {
		case domain.KindWeapon:
			if item.MaximumDamage < item.MinimumDamage {
				return fmt.Errorf("%w: weapon %d has maximum damage below minimum", ErrInvalidContent, item.ID)
			}
		case domain.KindPotion:
			if item.AmountToHeal <= 0 {
				return fmt.Errorf("%w: potion %d heals nothing", ErrInvalidContent, item.ID)
			}
		case domain.KindPlain:
			if item.MinimumDamage != 0 || item.MaximumDamage != 0 || item.AmountToHeal != 0 {
				return fmt.Errorf("%w: plain item %d carries variant fields", ErrInvalidContent, item.ID)
			}
		default:
			return fmt.Errorf("%w: item %d has unknown kind %q", ErrInvalidContent, item.ID, item.Kind)
		}
	}
	return nil
}
