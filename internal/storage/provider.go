package storage

// Provider is the persistence boundary: per-guild key-value settings
// with opaque JSON values. Implementations live in the sqlite, jsonfile
// and memory subpackages.
type Provider interface {
	// Get returns the raw value for a guild key. The boolean reports
	// whether the key exists.
	Get(guildID, key string) ([]byte, bool, error)
	// Set stores the raw value for a guild key, replacing any previous one.
	Set(guildID, key string, value []byte) error
	// Remove deletes a guild key. Removing a missing key is not an error.
	Remove(guildID, key string) error
	// Guilds lists guild IDs that have at least one stored key.
	Guilds() ([]string, error)
	Close() error
}
