// Package jsonfile implements the storage provider over the datastore
// JSON file library. One datastore key per guild holding a map of
// setting key to raw JSON text.
package jsonfile

import (
	"fmt"
	"sort"
	"sync"

	"github.com/keshon/datastore"
)

// indexKey tracks which datastore keys are guild records, since the
// datastore itself does not enumerate keys.
const indexKey = "__guilds__"

type Store struct {
	mu sync.Mutex
	ds *datastore.DataStore
}

// Open opens (or creates) the JSON file at path.
func Open(path string) (*Store, error) {
	ds, err := datastore.New(path)
	if err != nil {
		return nil, fmt.Errorf("open datastore: %w", err)
	}
	return &Store{ds: ds}, nil
}

func (s *Store) Close() error {
	return s.ds.Close()
}

func (s *Store) Get(guildID, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := s.guildSettings(guildID)
	val, ok := settings[key]
	if !ok {
		return nil, false, nil
	}
	return []byte(val), true, nil
}

func (s *Store) Set(guildID, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := s.guildSettings(guildID)
	settings[key] = string(value)
	s.ds.Add(guildID, settings)
	// Add drops the write without error when the store is closed or its
	// memory limit would be exceeded; read back so Set can keep the
	// provider promise that a nil return means the value is stored.
	if stored := s.guildSettings(guildID); stored[key] != string(value) {
		return fmt.Errorf("set %s/%s: write rejected by datastore", guildID, key)
	}
	s.indexGuild(guildID)
	return nil
}

func (s *Store) Remove(guildID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := s.guildSettings(guildID)
	if _, ok := settings[key]; !ok {
		return nil
	}
	delete(settings, key)
	if len(settings) == 0 {
		s.ds.Delete(guildID)
		s.unindexGuild(guildID)
		return nil
	}
	s.ds.Add(guildID, settings)
	return nil
}

func (s *Store) Guilds() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	guilds := s.guildIndex()
	sort.Strings(guilds)
	return guilds, nil
}

// guildSettings loads the settings map for a guild. The datastore
// round-trips values through JSON, so stored maps come back as
// map[string]any.
func (s *Store) guildSettings(guildID string) map[string]string {
	settings := make(map[string]string)
	raw, ok := s.ds.Get(guildID)
	if !ok {
		return settings
	}

	switch m := raw.(type) {
	case map[string]string:
		for k, v := range m {
			settings[k] = v
		}
	case map[string]any:
		for k, v := range m {
			if str, ok := v.(string); ok {
				settings[k] = str
			}
		}
	}
	return settings
}

func (s *Store) guildIndex() []string {
	raw, ok := s.ds.Get(indexKey)
	if !ok {
		return nil
	}

	var guilds []string
	switch list := raw.(type) {
	case []string:
		guilds = append(guilds, list...)
	case []any:
		for _, v := range list {
			if str, ok := v.(string); ok {
				guilds = append(guilds, str)
			}
		}
	}
	return guilds
}

func (s *Store) indexGuild(guildID string) {
	guilds := s.guildIndex()
	for _, id := range guilds {
		if id == guildID {
			return
		}
	}
	s.ds.Add(indexKey, append(guilds, guildID))
}

func (s *Store) unindexGuild(guildID string) {
	guilds := s.guildIndex()
	updated := make([]string, 0, len(guilds))
	for _, id := range guilds {
		if id != guildID {
			updated = append(updated, id)
		}
	}
	s.ds.Add(indexKey, updated)
}
