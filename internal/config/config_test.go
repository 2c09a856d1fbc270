package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DefaultPrefix != "!" {
		t.Errorf("expected default prefix !, got %q", cfg.DefaultPrefix)
	}
	if cfg.StorageBackend != "sqlite" {
		t.Errorf("expected sqlite backend, got %q", cfg.StorageBackend)
	}
	if cfg.HistoryLimit != 20 {
		t.Errorf("expected history limit 20, got %d", cfg.HistoryLimit)
	}
	if cfg.CooldownInterval != 2*time.Second {
		t.Errorf("expected 2s cooldown, got %v", cfg.CooldownInterval)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "cassandra")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestGuildBlacklist(t *testing.T) {
	t.Setenv("GUILD_BLACKLIST", "111,222")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.IsGuildBlacklisted("111") || !cfg.IsGuildBlacklisted("222") {
		t.Error("expected listed guilds to be blacklisted")
	}
	if cfg.IsGuildBlacklisted("333") {
		t.Error("unexpected blacklist hit")
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.yaml")
	content := []byte("aliases:\n  help: [h, commands]\ncategories:\n  \"🎲 Gameplay\": 5\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	o, err := LoadOverrides(path)
	if err != nil {
		t.Fatalf("load overrides: %v", err)
	}
	if len(o.Aliases["help"]) != 2 {
		t.Fatalf("expected 2 help aliases, got %v", o.Aliases["help"])
	}
	if o.Categories["🎲 Gameplay"] != 5 {
		t.Errorf("expected category weight 5, got %d", o.Categories["🎲 Gameplay"])
	}
}

func TestLoadOverridesMissingFile(t *testing.T) {
	o, err := LoadOverrides(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if len(o.Aliases) != 0 {
		t.Error("expected empty overrides")
	}
}
