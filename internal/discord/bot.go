package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/prefixkit/internal/config"
	"github.com/keshon/prefixkit/internal/core"
	"github.com/keshon/prefixkit/internal/storage"
)

// Bot is a Discord bot dispatching prefix commands.
type Bot struct {
	dg       *discordgo.Session
	cfg      *config.Config
	store    *storage.Storage
	registry *core.Registry
}

// NewBot creates a bot dispatching into the default command registry.
func NewBot(cfg *config.Config, store *storage.Storage) *Bot {
	return &Bot{
		cfg:      cfg,
		store:    store,
		registry: core.Default,
	}
}

// Run connects to Discord and blocks until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	b.dg = dg

	b.configureIntents()
	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)
	dg.AddHandler(b.onGuildCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	log.Println("[INFO] ❎ Shutdown signal received. Cleaning up...")
	return nil
}

// configureIntents limits the gateway subscription to what message
// dispatch needs.
func (b *Bot) configureIntents() {
	b.dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent
}

// guildPrefix resolves the command prefix for a guild, falling back to
// the configured default. DMs always use the default.
func (b *Bot) guildPrefix(guildID string) string {
	if guildID == "" || b.store == nil {
		return b.cfg.DefaultPrefix
	}
	prefix, ok, err := b.store.GuildPrefix(guildID)
	if err != nil {
		log.Printf("[WARN] Failed to read prefix for guild %s: %v", guildID, err)
		return b.cfg.DefaultPrefix
	}
	if !ok {
		return b.cfg.DefaultPrefix
	}
	return prefix
}
