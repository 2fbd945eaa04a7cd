package main

import (
	"context"
	"log"
	"time"

	"github.com/osse101/CrashSite_Go/internal/bootstrap"
	"github.com/osse101/CrashSite_Go/internal/catalog"
	"github.com/osse101/CrashSite_Go/internal/config"
	"github.com/osse101/CrashSite_Go/internal/game"
)

// reset overwrites the configured save slot with a fresh game
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.SaveBackend == config.SaveBackendNone {
		log.Fatalf("SAVE_BACKEND=none: nothing to reset")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cat, err := catalog.Load()
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	storage, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open save store: %v", err)
	}
	defer storage.Store.Close()

	log.Printf("Resetting slot %q on the %s backend...\n", cfg.SaveSlot, cfg.SaveBackend)
	fresh := game.NewState(cat, game.NewRealClock()).Snapshot()
	if err := storage.Store.Save(ctx, cfg.SaveSlot, fresh); err != nil {
		log.Fatalf("Failed to reset slot: %v", err)
	}
	log.Printf("Slot %q reset to a new game.\n", cfg.SaveSlot)
}
