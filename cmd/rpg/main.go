package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lawnchairsociety/wildlands/internal/command"
	"github.com/lawnchairsociety/wildlands/internal/config"
	"github.com/lawnchairsociety/wildlands/internal/logger"
	"github.com/lawnchairsociety/wildlands/internal/lore"
	"github.com/lawnchairsociety/wildlands/internal/save"
	"github.com/lawnchairsociety/wildlands/internal/worlddata"
	"github.com/lawnchairsociety/wildlands/internal/worldgen"
)

func main() {
	// Parse command-line flags
	configFile := flag.String("config", "data/wildlands.yaml", "Path to config YAML file")
	loggingConfig := flag.String("logging", "data/logging.yaml", "Path to logging config YAML file")
	loreFile := flag.String("lore", "", "Path to lore tables YAML file (empty for built-in tables)")
	seed := flag.Int64("seed", 0, "World seed (overrides config; 0 keeps config value)")
	loadSlot := flag.String("load", "", "Load a saved world from this slot instead of generating")
	flag.Parse()

	// Initialize logger first (before any logging)
	logConfig, _ := logger.LoadConfig(*loggingConfig)
	logger.Initialize(logConfig)

	logger.Info("Starting Wildlands")

	// Load game config
	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		logger.Warning("Failed to load config, using defaults", "path", *configFile, "error", err)
	}
	if *seed != 0 {
		cfg.World.Seed = *seed
	}

	// Open the save store; the game still runs without one.
	store, err := save.Open(save.Config{
		Driver:      cfg.Save.Driver,
		SQLitePath:  cfg.Save.SQLitePath,
		PostgresDSN: cfg.Save.PostgresDSN,
	})
	if err != nil {
		logger.Warning("Failed to open save store, saving disabled", "driver", cfg.Save.Driver, "error", err)
		store = nil
	} else {
		defer store.Close()
		logger.Info("Save store ready", "driver", cfg.Save.Driver)
	}

	world, err := loadOrGenerate(cfg, store, *loadSlot, *loreFile)
	if err != nil {
		log.Fatalf("Failed to prepare world: %v", err)
	}

	logger.Info("World ready",
		"seed", world.Header.Seed,
		"regions", world.Header.RegionCount,
		"npcs", world.Header.NPCCount,
		"items", world.Header.ItemCount)

	runConsole(world, store)
}

// loadOrGenerate loads a saved world when a slot is named, otherwise
// generates a fresh one from the configured seed and dimensions.
func loadOrGenerate(cfg *config.Config, store *save.Store, slot, loreFile string) (*worlddata.WorldData, error) {
	if slot != "" {
		if store == nil {
			return nil, fmt.Errorf("cannot load slot %q: no save store", slot)
		}
		logger.Info("Loading world", "slot", slot)
		return store.Load(slot)
	}

	tables := lore.Defaults()
	if loreFile != "" {
		var err error
		tables, err = lore.Load(loreFile)
		if err != nil {
			logger.Warning("Failed to load lore tables, using built-ins", "path", loreFile, "error", err)
			tables = lore.Defaults()
		} else {
			logger.Info("Lore tables loaded", "path", loreFile)
		}
	}

	gen := worldgen.New(cfg.World.Seed, cfg.World.Width, cfg.World.Height, tables)
	gen.Progress = func(stage string) {
		logger.Info("Generating world", "stage", stage)
	}
	return gen.Generate()
}

// runConsole runs the read-eval-print loop until the player quits.
func runConsole(world *worlddata.WorldData, store *save.Store) {
	session := command.NewSession(world, store)

	fmt.Println("Welcome to the Wildlands. Type 'help' for commands.")
	fmt.Println()
	fmt.Println(command.ParseCommand("look").Execute(session))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		cmd := command.ParseCommand(scanner.Text())
		fmt.Println(cmd.Execute(session))

		if session.Quit {
			break
		}
	}

	logger.Info("Session ended")
}
