// Package shell is the interactive console front end. It owns all terminal
// I/O: it renders engine events as narration and turns typed commands into
// player actions. The engine never prints anything itself.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/osse101/SuperAdventure_Go/internal/domain"
	"github.com/osse101/SuperAdventure_Go/internal/event"
	"github.com/osse101/SuperAdventure_Go/internal/game"
	"github.com/osse101/SuperAdventure_Go/internal/logger"
	"github.com/osse101/SuperAdventure_Go/internal/savegame"
	"github.com/osse101/SuperAdventure_Go/internal/world"
)

// Shell runs the read-eval-print loop for one game session.
type Shell struct {
	player  *game.Player
	catalog *world.Catalog
	mapper  *savegame.Mapper

	in  io.Reader
	out io.Writer
}

// New wires a shell to the player it drives. The bus must be the one the
// player publishes on.
func New(player *game.Player, catalog *world.Catalog, bus *event.Bus, mapper *savegame.Mapper, in io.Reader, out io.Writer) *Shell {
	s := &Shell{
		player:  player,
		catalog: catalog,
		mapper:  mapper,
		in:      in,
		out:     out,
	}

	bus.Subscribe(event.TypeMessage, s.onMessage)
	bus.Subscribe(event.TypePropertyChanged, s.onPropertyChanged)
	return s
}

func (s *Shell) onMessage(e event.Event) {
	msg, ok := e.Payload.(event.Message)
	if !ok {
		return
	}
	fmt.Fprintln(s.out, msg.Text)
	if msg.AddExtraNewLine {
		fmt.Fprintln(s.out)
	}
}

func (s *Shell) onPropertyChanged(e event.Event) {
	change, ok := e.Payload.(event.PropertyChanged)
	if !ok || change.Name != event.PropCurrentLocation {
		return
	}

	s.displayCurrentLocation()

	if vendor, ok := s.player.Vendor(); ok {
		fmt.Fprintf(s.out, "You see a vendor here: %s\n", vendor.Name)
	}
}

// Run reads commands until "exit" or end of input. The game is saved on the
// way out.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "Type 'help' to see a list of commands")
	fmt.Fprintln(s.out)

	s.displayCurrentLocation()

	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, ">")

		if !scanner.Scan() {
			break
		}
		input := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if input == "" {
			continue
		}
		if input == "exit" {
			break
		}

		s.dispatch(ctx, input)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("shell: read input: %w", err)
	}

	return s.save(ctx)
}

func (s *Shell) dispatch(ctx context.Context, input string) {
	command, argument, _ := strings.Cut(input, " ")
	argument = strings.TrimSpace(argument)

	switch command {
	case "help", "?":
		s.displayHelp()
	case "look":
		s.displayCurrentLocation()
	case "stats":
		s.displayStats()
	case "inventory":
		s.displayInventory()
	case "quests":
		s.displayQuests()
	case "map":
		s.displayMap()
	case "north", "south", "east", "west":
		s.move(ctx, command)
	case "attack":
		s.attack(ctx)
	case "equip":
		s.equip(argument)
	case "drink":
		s.drink(ctx, argument)
	case "trade":
		s.displayWares()
	case "buy":
		s.buy(ctx, argument)
	case "sell":
		s.sell(ctx, argument)
	case "save":
		if err := s.save(ctx); err != nil {
			fmt.Fprintln(s.out, "Saving failed:", err)
		} else {
			fmt.Fprintln(s.out, "Game saved.")
		}
	default:
		fmt.Fprintln(s.out, "I do not understand: Invalid Command")
		fmt.Fprintln(s.out, "Type 'help' to see a list of available commands")
	}

	fmt.Fprintln(s.out)
}

func (s *Shell) displayHelp() {
	fmt.Fprintln(s.out, "Available commands")
	fmt.Fprintln(s.out, "=====================================")
	fmt.Fprintln(s.out, "look               - describe where you are")
	fmt.Fprintln(s.out, "stats              - show your character")
	fmt.Fprintln(s.out, "inventory          - list what you carry")
	fmt.Fprintln(s.out, "quests             - list your quests")
	fmt.Fprintln(s.out, "map                - show the places you have been")
	fmt.Fprintln(s.out, "north/south/east/west - move")
	fmt.Fprintln(s.out, "attack             - fight the monster here")
	fmt.Fprintln(s.out, "equip <weapon>     - choose your weapon")
	fmt.Fprintln(s.out, "drink <potion>     - drink a potion in battle")
	fmt.Fprintln(s.out, "trade              - see what the vendor sells")
	fmt.Fprintln(s.out, "buy <item>         - buy from the vendor")
	fmt.Fprintln(s.out, "sell <item>        - sell to the vendor")
	fmt.Fprintln(s.out, "save               - save the game")
	fmt.Fprintln(s.out, "exit               - save and quit")
}

func (s *Shell) displayCurrentLocation() {
	location := s.player.CurrentLocation()

	fmt.Fprintf(s.out, "You are at: %s\n", location.Name)
	if location.Description != "" {
		fmt.Fprintln(s.out, location.Description)
	}
}

func (s *Shell) displayStats() {
	fmt.Fprintf(s.out, "Hit points: %d/%d\n", s.player.CurrentHitPoints(), s.player.MaximumHitPoints())
	fmt.Fprintf(s.out, "Gold: %d\n", s.player.Gold())
	fmt.Fprintf(s.out, "Experience: %d\n", s.player.ExperiencePoints())
	fmt.Fprintf(s.out, "Level: %d\n", s.player.Level())
	if weapon, ok := s.player.CurrentWeapon(); ok {
		fmt.Fprintf(s.out, "Weapon: %s\n", weapon.Name)
	}
}

func (s *Shell) displayInventory() {
	for _, entry := range s.player.Inventory() {
		item := s.catalog.ItemByID(entry.ItemID)
		fmt.Fprintf(s.out, "%s: %d\n", item.DisplayName(entry.Quantity), entry.Quantity)
	}
}

func (s *Shell) displayQuests() {
	quests := s.player.Quests()
	if len(quests) == 0 {
		fmt.Fprintln(s.out, "You do not have any quests")
		return
	}
	for _, entry := range quests {
		quest := s.catalog.QuestByID(entry.QuestID)
		status := "Incomplete"
		if entry.IsCompleted {
			status = "Completed"
		}
		fmt.Fprintf(s.out, "%s: %s\n", quest.Name, status)
	}
}

func (s *Shell) move(ctx context.Context, direction string) {
	location := s.player.CurrentLocation()

	neighbors := map[string]struct {
		id   int
		move func(context.Context)
		name string
	}{
		"north": {location.NorthID, s.player.MoveNorth, "North"},
		"south": {location.SouthID, s.player.MoveSouth, "South"},
		"east":  {location.EastID, s.player.MoveEast, "East"},
		"west":  {location.WestID, s.player.MoveWest, "West"},
	}

	n := neighbors[direction]
	if n.id == 0 {
		fmt.Fprintf(s.out, "You cannot move %s\n", n.name)
		return
	}
	n.move(ctx)
}

func (s *Shell) attack(ctx context.Context) {
	if s.player.ActiveMonster() == nil {
		fmt.Fprintln(s.out, "There is nothing here to attack")
		return
	}

	weapon, ok := s.player.CurrentWeapon()
	if !ok {
		weapons := s.player.Weapons()
		if len(weapons) == 0 {
			fmt.Fprintln(s.out, "You do not have any weapons")
			return
		}
		weapon = weapons[0]
		s.player.SelectWeapon(weapon)
	}

	s.player.UseWeapon(ctx, weapon)
}

func (s *Shell) equip(name string) {
	if name == "" {
		fmt.Fprintln(s.out, "You must enter the name of the weapon to equip")
		return
	}

	weapon, ok := findByName(s.player.Weapons(), name)
	if !ok {
		fmt.Fprintf(s.out, "You do not have the weapon: %s\n", name)
		return
	}

	s.player.SelectWeapon(weapon)
	fmt.Fprintf(s.out, "You equip your %s\n", weapon.Name)
}

func (s *Shell) drink(ctx context.Context, name string) {
	if name == "" {
		fmt.Fprintln(s.out, "You must enter the name of the potion to drink")
		return
	}
	if s.player.ActiveMonster() == nil {
		fmt.Fprintln(s.out, "There is nothing here to fight")
		return
	}

	potion, ok := findByName(s.player.Potions(), name)
	if !ok {
		fmt.Fprintf(s.out, "You do not have the potion: %s\n", name)
		return
	}

	s.player.UsePotion(ctx, potion)
}

func (s *Shell) displayWares() {
	vendor, ok := s.player.Vendor()
	if !ok {
		fmt.Fprintln(s.out, "There is no one here to trade with.")
		return
	}

	fmt.Fprintf(s.out, "%s sells:\n", vendor.Name)
	for _, id := range vendor.WareIDs {
		item := s.catalog.ItemByID(id)
		fmt.Fprintf(s.out, "%s: %d gold\n", item.Name, item.Price)
	}
}

func (s *Shell) buy(ctx context.Context, name string) {
	vendor, ok := s.player.Vendor()
	if !ok {
		fmt.Fprintln(s.out, "There is no one here to trade with.")
		return
	}

	var wares []domain.Item
	for _, id := range vendor.WareIDs {
		wares = append(wares, s.catalog.ItemByID(id))
	}
	item, ok := findByName(wares, name)
	if !ok {
		fmt.Fprintf(s.out, "%s does not sell: %s\n", vendor.Name, name)
		return
	}

	s.player.BuyItem(ctx, item)
}

func (s *Shell) sell(ctx context.Context, name string) {
	if _, ok := s.player.Vendor(); !ok {
		fmt.Fprintln(s.out, "There is no one here to trade with.")
		return
	}

	var held []domain.Item
	for _, entry := range s.player.Inventory() {
		held = append(held, s.catalog.ItemByID(entry.ItemID))
	}
	item, ok := findByName(held, name)
	if !ok {
		fmt.Fprintf(s.out, "You do not have a %s to sell.\n", name)
		return
	}

	s.player.SellItem(ctx, item)
}

func (s *Shell) save(ctx context.Context) error {
	if err := s.mapper.SavePlayer(ctx, s.player); err != nil {
		logger.FromContext(ctx).Error("saving game failed", "error", err)
		return err
	}
	return nil
}

// findByName matches an item by singular or plural name, ignoring case.
func findByName(items []domain.Item, name string) (domain.Item, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, item := range items {
		if strings.ToLower(item.Name) == name || strings.ToLower(item.NamePlural) == name {
			return item, true
		}
	}
	return domain.Item{}, false
}
