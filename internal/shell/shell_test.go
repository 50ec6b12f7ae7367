package shell

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SuperAdventure_Go/internal/dice"
	"github.com/osse101/SuperAdventure_Go/internal/event"
	"github.com/osse101/SuperAdventure_Go/internal/game"
	"github.com/osse101/SuperAdventure_Go/internal/savegame"
	"github.com/osse101/SuperAdventure_Go/internal/world"
)

// runSession feeds the commands to a fresh default player and returns
// everything the shell printed. The session always ends with exit.
func runSession(t *testing.T, rolls []int, commands ...string) string {
	t.Helper()

	catalog := world.MustLoad()
	bus := event.NewBus()
	player := game.NewDefaultPlayer(catalog, bus, dice.NewScripted(rolls...))
	file := savegame.NewFileStore(filepath.Join(t.TempDir(), "save.xml"))
	mapper := savegame.NewMapper(catalog, bus, dice.NewScripted(), nil, file)

	in := strings.NewReader(strings.Join(append(commands, "exit"), "\n"))
	var out strings.Builder
	s := New(player, catalog, bus, mapper, in, &out)

	require.NoError(t, s.Run(context.Background()))
	return out.String()
}

func TestRunBanner(t *testing.T) {
	out := runSession(t, nil)

	assert.Contains(t, out, "Type 'help' to see a list of commands")
	assert.Contains(t, out, "You are at: Home")
}

func TestHelpListsCommands(t *testing.T) {
	out := runSession(t, nil, "help")

	assert.Contains(t, out, "Available commands")
	assert.Contains(t, out, "attack")
	assert.Contains(t, out, "sell <item>")
}

func TestUnknownCommand(t *testing.T) {
	out := runSession(t, nil, "dance")

	assert.Contains(t, out, "I do not understand: Invalid Command")
}

func TestStatsAndInventory(t *testing.T) {
	out := runSession(t, nil, "stats", "inventory", "quests")

	assert.Contains(t, out, "Hit points: 10/10")
	assert.Contains(t, out, "Gold: 20")
	assert.Contains(t, out, "Level: 1")
	assert.Contains(t, out, "Weapon: Rusty sword")
	assert.Contains(t, out, "Rusty sword: 1")
	assert.Contains(t, out, "You do not have any quests")
}

func TestMovementRendersLocations(t *testing.T) {
	out := runSession(t, nil, "north", "south", "south")

	assert.Contains(t, out, "You are at: Town square")
	assert.Contains(t, out, "You see a vendor here: Bob the Rat-Catcher")
	assert.Contains(t, out, "You cannot move South")
}

func TestQuestNarrationReachesTheTerminal(t *testing.T) {
	out := runSession(t, nil, "north", "north")

	assert.Contains(t, out, "You are at: Alchemist's hut")
	assert.Contains(t, out, "You receive the Clear the alchemist's garden quest.")
	assert.Contains(t, out, "3 Rat tails")
}

func TestAttack(t *testing.T) {
	t.Run("nothing to attack at home", func(t *testing.T) {
		out := runSession(t, nil, "attack")
		assert.Contains(t, out, "There is nothing here to attack")
	})

	t.Run("kills the rat in the garden", func(t *testing.T) {
		// Three norths reach the garden; the kill rolls 3 damage, the
		// loot misses at 80 and drops the fur at 10.
		out := runSession(t, []int{3, 80, 10}, "north", "north", "north", "attack")

		assert.Contains(t, out, "You see a Rat")
		assert.Contains(t, out, "You hit the Rat for 3 points.")
		assert.Contains(t, out, "You defeated the Rat")
		assert.Contains(t, out, "You loot 1 Piece of fur")
	})
}

func TestEquip(t *testing.T) {
	out := runSession(t, nil, "equip", "equip excalibur", "equip rusty sword")

	assert.Contains(t, out, "You must enter the name of the weapon to equip")
	assert.Contains(t, out, "You do not have the weapon: excalibur")
	assert.Contains(t, out, "You equip your Rusty sword")
}

func TestDrink(t *testing.T) {
	t.Run("needs a battle", func(t *testing.T) {
		out := runSession(t, nil, "drink healing potion")
		assert.Contains(t, out, "There is nothing here to fight")
	})

	t.Run("needs the potion", func(t *testing.T) {
		out := runSession(t, []int{1, 0}, "north", "north", "north", "drink healing potion")
		assert.Contains(t, out, "You do not have the potion: healing potion")
	})
}

func TestTrading(t *testing.T) {
	t.Run("no vendor at home", func(t *testing.T) {
		out := runSession(t, nil, "trade")
		assert.Contains(t, out, "There is no one here to trade with.")
	})

	t.Run("vendor lists wares", func(t *testing.T) {
		out := runSession(t, nil, "north", "trade")
		assert.Contains(t, out, "Bob the Rat-Catcher sells:")
		assert.Contains(t, out, "Healing potion: 3 gold")
		assert.Contains(t, out, "Club: 10 gold")
	})

	t.Run("buying and selling", func(t *testing.T) {
		out := runSession(t, nil, "north", "buy healing potion", "sell rusty sword", "buy excalibur")

		assert.Contains(t, out, "You buy a Healing potion for 3 gold.")
		assert.Contains(t, out, "You sell a Rusty sword for 5 gold.")
		assert.Contains(t, out, "Bob the Rat-Catcher does not sell: excalibur")
	})
}

func TestMapShowsExploredGround(t *testing.T) {
	out := runSession(t, nil, "north", "map")

	assert.Contains(t, out, "*Town square")
	assert.Contains(t, out, "Home")
	// The hut to the north has not been entered yet.
	assert.Contains(t, out, "[?")
	assert.NotContains(t, out, "Alchemist's hut")
}

func TestExitSavesTheGame(t *testing.T) {
	catalog := world.MustLoad()
	bus := event.NewBus()
	player := game.NewDefaultPlayer(catalog, bus, dice.NewScripted())
	path := filepath.Join(t.TempDir(), "save.xml")
	file := savegame.NewFileStore(path)
	mapper := savegame.NewMapper(catalog, bus, dice.NewScripted(), nil, file)

	in := strings.NewReader("north\nexit\n")
	var out strings.Builder
	s := New(player, catalog, bus, mapper, in, &out)
	require.NoError(t, s.Run(context.Background()))

	snap, err := file.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, snap.CurrentLocationID)
}

func TestSaveCommand(t *testing.T) {
	out := runSession(t, nil, "save")

	assert.Contains(t, out, "Game saved.")
}
