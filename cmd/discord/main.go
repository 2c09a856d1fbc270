package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/keshon/prefixkit/internal/commands/core"

	"github.com/keshon/prefixkit/internal/config"
	"github.com/keshon/prefixkit/internal/core"
	"github.com/keshon/prefixkit/internal/discord"
	"github.com/keshon/prefixkit/internal/storage"
	"github.com/keshon/prefixkit/internal/storage/jsonfile"
	"github.com/keshon/prefixkit/internal/storage/memory"
	"github.com/keshon/prefixkit/internal/storage/sqlite"
	"github.com/keshon/prefixkit/internal/version"
	"github.com/keshon/prefixkit/pkg/jobmgr"
)

const historyRetention = 30 * 24 * time.Hour

func main() {
	log.Printf("[INFO] Starting %v bot...", version.AppName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.New()

	provider, err := openProvider(cfg)
	if err != nil {
		log.Fatal("[ERR] Failed to open storage:", err)
	}
	store := storage.New(provider, cfg.HistoryLimit)
	defer store.Close()

	if err := applyOverrides(cfg); err != nil {
		log.Fatal("[ERR] Failed to apply overrides:", err)
	}

	jobs := jobmgr.NewManager(func(s string) { log.Println("[INFO]", s) })
	defer jobs.StopAll()

	if err := jobs.StartPeriodic("history-prune", time.Hour, func(context.Context) error {
		pruned, err := store.PruneHistory(historyRetention)
		if err != nil {
			return err
		}
		if pruned > 0 {
			log.Printf("[INFO] Pruned %d stale history records", pruned)
		}
		return nil
	}); err != nil {
		log.Fatal("[ERR] Failed to start history pruner:", err)
	}

	bot := discord.NewBot(cfg, store)

	errCh := make(chan error, 1)
	go func() {
		if err := bot.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...\n", s)
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Println("[ERR] Discord bot error:", err)
		}
		cancel()
	case <-ctx.Done():
	}

	log.Println("[INFO] Discord bot exited cleanly")
}

// openProvider picks the settings backend from configuration.
func openProvider(cfg *config.Config) (storage.Provider, error) {
	switch cfg.StorageBackend {
	case "json":
		return jsonfile.Open(cfg.StoragePath)
	case "memory":
		return memory.New(), nil
	default:
		return sqlite.Open(cfg.StoragePath)
	}
}

// applyOverrides binds per-deployment aliases and category weights on
// top of the compiled-in registrations.
func applyOverrides(cfg *config.Config) error {
	overrides, err := config.LoadOverrides(cfg.OverridesPath)
	if err != nil {
		return err
	}
	for name, aliases := range overrides.Aliases {
		for _, alias := range aliases {
			if err := core.AddAlias(name, alias); err != nil {
				return err
			}
		}
	}
	overrides.ApplyCategoryWeights()
	return nil
}
