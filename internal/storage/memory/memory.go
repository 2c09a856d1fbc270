// Package memory implements the storage provider as an in-process map.
// Used by tests and as a throwaway backend; nothing survives a restart.
package memory

import (
	"sort"
	"sync"
)

type Store struct {
	mu     sync.RWMutex
	guilds map[string]map[string][]byte
}

func New() *Store {
	return &Store{guilds: make(map[string]map[string][]byte)}
}

func (s *Store) Get(guildID, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	settings, ok := s.guilds[guildID]
	if !ok {
		return nil, false, nil
	}
	val, ok := settings[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, true, nil
}

func (s *Store) Set(guildID, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, ok := s.guilds[guildID]
	if !ok {
		settings = make(map[string][]byte)
		s.guilds[guildID] = settings
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	settings[key] = stored
	return nil
}

func (s *Store) Remove(guildID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if settings, ok := s.guilds[guildID]; ok {
		delete(settings, key)
		if len(settings) == 0 {
			delete(s.guilds, guildID)
		}
	}
	return nil
}

func (s *Store) Guilds() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.guilds))
	for id := range s.guilds {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}

func (s *Store) Close() error {
	return nil
}
