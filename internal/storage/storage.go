// Package storage provides typed per-guild settings on top of a
// generic key-value Provider.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const defaultHistoryLimit = 20

// Setting keys within a guild record.
const (
	keyPrefix           = "prefix"
	keyDisabledGroups   = "disabled_groups"
	keyDisabledCommands = "disabled_commands"
	keyHistory          = "cmd_history"
)

// HistoryRecord is one command invocation remembered per guild.
type HistoryRecord struct {
	ChannelID   string    `json:"channel_id"`
	ChannelName string    `json:"channel_name"`
	GuildName   string    `json:"guild_name"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	Command     string    `json:"command"`
	Param       string    `json:"param"`
	Datetime    time.Time `json:"datetime"`
}

// Storage wraps a Provider with typed accessors for guild settings.
type Storage struct {
	p            Provider
	historyLimit int
}

// New creates a Storage over the given provider. historyLimit caps the
// per-guild command history; values below 1 fall back to the default.
func New(p Provider, historyLimit int) *Storage {
	if historyLimit < 1 {
		historyLimit = defaultHistoryLimit
	}
	return &Storage{p: p, historyLimit: historyLimit}
}

func (s *Storage) Close() error {
	return s.p.Close()
}

// GuildPrefix returns the stored prefix for a guild. The boolean
// reports whether one is set.
func (s *Storage) GuildPrefix(guildID string) (string, bool, error) {
	var prefix string
	ok, err := s.getJSON(guildID, keyPrefix, &prefix)
	if err != nil || !ok {
		return "", false, err
	}
	return prefix, true, nil
}

// SetGuildPrefix stores a custom prefix for a guild.
func (s *Storage) SetGuildPrefix(guildID, prefix string) error {
	if prefix == "" {
		return fmt.Errorf("prefix cannot be empty")
	}
	return s.setJSON(guildID, keyPrefix, prefix)
}

// RemoveGuildPrefix restores the default prefix for a guild.
func (s *Storage) RemoveGuildPrefix(guildID string) error {
	return s.p.Remove(guildID, keyPrefix)
}

// Group and command names are stored lowercased so a mixed-case
// registration still matches what toggle wrote.

func (s *Storage) DisableGroup(guildID, group string) error {
	return s.addToSet(guildID, keyDisabledGroups, strings.ToLower(group))
}

func (s *Storage) EnableGroup(guildID, group string) error {
	return s.removeFromSet(guildID, keyDisabledGroups, strings.ToLower(group))
}

func (s *Storage) IsGroupDisabled(guildID, group string) (bool, error) {
	return s.setContains(guildID, keyDisabledGroups, strings.ToLower(group))
}

func (s *Storage) DisabledGroups(guildID string) ([]string, error) {
	return s.getSet(guildID, keyDisabledGroups)
}

func (s *Storage) DisableCommand(guildID, name string) error {
	return s.addToSet(guildID, keyDisabledCommands, strings.ToLower(name))
}

func (s *Storage) EnableCommand(guildID, name string) error {
	return s.removeFromSet(guildID, keyDisabledCommands, strings.ToLower(name))
}

func (s *Storage) IsCommandDisabled(guildID, name string) (bool, error) {
	return s.setContains(guildID, keyDisabledCommands, strings.ToLower(name))
}

func (s *Storage) DisabledCommands(guildID string) ([]string, error) {
	return s.getSet(guildID, keyDisabledCommands)
}

// AppendHistory records a command invocation, keeping at most the
// configured number of entries per guild.
func (s *Storage) AppendHistory(guildID string, rec HistoryRecord) error {
	var history []HistoryRecord
	if _, err := s.getJSON(guildID, keyHistory, &history); err != nil {
		return err
	}

	history = append(history, rec)
	if len(history) > s.historyLimit {
		history = history[len(history)-s.historyLimit:]
	}
	return s.setJSON(guildID, keyHistory, history)
}

// History returns the remembered command invocations, oldest first.
func (s *Storage) History(guildID string) ([]HistoryRecord, error) {
	var history []HistoryRecord
	if _, err := s.getJSON(guildID, keyHistory, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// PruneHistory drops history entries older than maxAge across all
// guilds and returns how many were removed.
func (s *Storage) PruneHistory(maxAge time.Duration) (int, error) {
	guilds, err := s.p.Guilds()
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-maxAge)
	pruned := 0
	for _, guildID := range guilds {
		var history []HistoryRecord
		ok, err := s.getJSON(guildID, keyHistory, &history)
		if err != nil {
			return pruned, err
		}
		if !ok {
			continue
		}

		kept := history[:0]
		for _, rec := range history {
			if rec.Datetime.After(cutoff) {
				kept = append(kept, rec)
			}
		}
		if len(kept) == len(history) {
			continue
		}
		pruned += len(history) - len(kept)
		if err := s.setJSON(guildID, keyHistory, kept); err != nil {
			return pruned, err
		}
	}
	return pruned, nil
}

func (s *Storage) getJSON(guildID, key string, out any) (bool, error) {
	raw, ok, err := s.p.Get(guildID, key)
	if err != nil {
		return false, fmt.Errorf("get %s/%s: %w", guildID, key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode %s/%s: %w", guildID, key, err)
	}
	return true, nil
}

func (s *Storage) setJSON(guildID, key string, val any) error {
	raw, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", guildID, key, err)
	}
	if err := s.p.Set(guildID, key, raw); err != nil {
		return fmt.Errorf("set %s/%s: %w", guildID, key, err)
	}
	return nil
}

func (s *Storage) getSet(guildID, key string) ([]string, error) {
	var items []string
	if _, err := s.getJSON(guildID, key, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Storage) addToSet(guildID, key, item string) error {
	items, err := s.getSet(guildID, key)
	if err != nil {
		return err
	}
	for _, it := range items {
		if it == item {
			return nil
		}
	}
	return s.setJSON(guildID, key, append(items, item))
}

func (s *Storage) removeFromSet(guildID, key, item string) error {
	items, err := s.getSet(guildID, key)
	if err != nil {
		return err
	}
	updated := make([]string, 0, len(items))
	for _, it := range items {
		if it != item {
			updated = append(updated, it)
		}
	}
	return s.setJSON(guildID, key, updated)
}

func (s *Storage) setContains(guildID, key, item string) (bool, error) {
	items, err := s.getSet(guildID, key)
	if err != nil {
		return false, err
	}
	for _, it := range items {
		if it == item {
			return true, nil
		}
	}
	return false, nil
}
