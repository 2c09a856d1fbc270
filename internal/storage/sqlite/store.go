// Package sqlite implements the storage provider over an embedded SQL
// file using the pure-Go sqlite driver.
package sqlite

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/keshon/prefixkit/internal/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store is a SQLite-backed settings provider.
type Store struct {
	sqlDB *sql.DB
}

// Open opens (or creates) the SQLite file at path and applies schema
// migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if err := applyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) Get(guildID, key string) ([]byte, bool, error) {
	var value []byte
	row := s.sqlDB.QueryRow(
		"SELECT value FROM guild_settings WHERE guild_id = ? AND key = ?",
		guildID, key,
	)
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("select setting: %w", err)
	}
	return value, true, nil
}

func (s *Store) Set(guildID, key string, value []byte) error {
	_, err := s.sqlDB.Exec(
		`INSERT INTO guild_settings (guild_id, key, value, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT (guild_id, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		guildID, key, value, time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("upsert setting: %w", err)
	}
	return nil
}

func (s *Store) Remove(guildID, key string) error {
	if _, err := s.sqlDB.Exec(
		"DELETE FROM guild_settings WHERE guild_id = ? AND key = ?",
		guildID, key,
	); err != nil {
		return fmt.Errorf("delete setting: %w", err)
	}
	return nil
}

func (s *Store) Guilds() ([]string, error) {
	rows, err := s.sqlDB.Query("SELECT DISTINCT guild_id FROM guild_settings ORDER BY guild_id")
	if err != nil {
		return nil, fmt.Errorf("select guilds: %w", err)
	}
	defer rows.Close()

	var guilds []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan guild id: %w", err)
		}
		guilds = append(guilds, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate guilds: %w", err)
	}
	return guilds, nil
}
