package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, falling back to system environment variables")
	}
}

// Config is the process configuration, read from the environment.
type Config struct {
	DiscordToken     string        `env:"DISCORD_TOKEN"`
	DefaultPrefix    string        `env:"COMMAND_PREFIX" envDefault:"!"`
	StorageBackend   string        `env:"STORAGE_BACKEND" envDefault:"sqlite"`
	StoragePath      string        `env:"STORAGE_PATH" envDefault:"prefixkit.db"`
	DeveloperID      string        `env:"DEVELOPER_ID"`
	GuildBlacklist   []string      `env:"GUILD_BLACKLIST" envSeparator:","`
	HistoryLimit     int           `env:"HISTORY_LIMIT" envDefault:"20"`
	CooldownInterval time.Duration `env:"COMMAND_COOLDOWN" envDefault:"2s"`
	OverridesPath    string        `env:"OVERRIDES_PATH"`
}

// Load parses configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DefaultPrefix == "" {
		return nil, fmt.Errorf("command prefix cannot be empty")
	}
	switch cfg.StorageBackend {
	case "sqlite", "json", "memory":
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
	return cfg, nil
}

// New loads configuration and exits on error. For use from main.
func New() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("[ERR] Config error: %v", err)
	}
	if cfg.DiscordToken == "" {
		log.Fatal("[ERR] DISCORD_TOKEN is not set")
	}
	return cfg
}

// IsGuildBlacklisted reports whether the bot should refuse to serve the guild.
func (c *Config) IsGuildBlacklisted(guildID string) bool {
	for _, id := range c.GuildBlacklist {
		if id == guildID {
			return true
		}
	}
	return false
}
