// Command adventure runs the text adventure in a terminal.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/osse101/SuperAdventure_Go/internal/config"
	"github.com/osse101/SuperAdventure_Go/internal/dice"
	"github.com/osse101/SuperAdventure_Go/internal/event"
	"github.com/osse101/SuperAdventure_Go/internal/logger"
	"github.com/osse101/SuperAdventure_Go/internal/savegame"
	"github.com/osse101/SuperAdventure_Go/internal/savegame/sqlite"
	"github.com/osse101/SuperAdventure_Go/internal/shell"
	"github.com/osse101/SuperAdventure_Go/internal/world"
)

func main() {
	cmd := &cli.Command{
		Name:  "adventure",
		Usage: "play the adventure in your terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "save-file",
				Usage: "path of the XML saved game",
			},
			&cli.StringFlag{
				Name:  "db-file",
				Usage: "path of the SQLite save mirror",
			},
			&cli.BoolFlag{
				Name:  "use-db",
				Usage: "mirror saves into SQLite",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level: DEBUG, INFO, WARN or ERROR",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "log format: text or json",
			},
		},
		Action: run,
		Commands: []*cli.Command{
			{
				Name:   "reset",
				Usage:  "delete the saved game and start over",
				Action: reset,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "adventure:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := logger.Setup(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, false), os.Stderr)
	ctx = logger.WithSessionID(ctx, logger.NewSessionID())

	catalog, err := world.Load()
	if err != nil {
		return fmt.Errorf("load world content: %w", err)
	}

	var database savegame.Store
	if cfg.UseDatabase {
		store, err := sqlite.Open(cfg.SaveDatabaseFile)
		if err != nil {
			return fmt.Errorf("open save database: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Warn("closing save database failed", "error", err)
			}
		}()
		database = store
	}

	bus := event.NewBus()
	mapper := savegame.NewMapper(catalog, bus, dice.NewCryptoRoller(), database, savegame.NewFileStore(cfg.SaveFile))

	player := mapper.LoadPlayer(ctx)

	return shell.New(player, catalog, bus, mapper, os.Stdin, os.Stdout).Run(ctx)
}

// reset wipes the saved game, both the XML file and the SQLite mirror.
func reset(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	for _, path := range []string{cfg.SaveFile, cfg.SaveDatabaseFile} {
		err := os.Remove(path)
		switch {
		case err == nil:
			fmt.Println("removed", path)
		case os.IsNotExist(err):
			// nothing to remove
		default:
			return fmt.Errorf("remove %s: %w", path, err)
		}
	}
	return nil
}

// loadConfig reads the environment configuration and lets command-line flags
// override it.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if cmd.IsSet("save-file") {
		cfg.SaveFile = cmd.String("save-file")
	}
	if cmd.IsSet("db-file") {
		cfg.SaveDatabaseFile = cmd.String("db-file")
	}
	if cmd.IsSet("use-db") {
		cfg.UseDatabase = cmd.Bool("use-db")
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		cfg.LogFormat = cmd.String("log-format")
	}
	return cfg, nil
}
