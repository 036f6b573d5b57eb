// Package settings persists user preferences that outlive a process, chiefly
// the Data API key override.
package settings

import (
	"context"
	"os"
	"path/filepath"
)

// KeyAPIKey holds the user-supplied Data API key.
const KeyAPIKey = "api_key"

// Store is a tiny key/value table. Get returns "" with a nil error for missing keys.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Open picks PostgreSQL when databaseURL is set, SQLite at sqlitePath otherwise.
// An empty sqlitePath means ~/.go_tube/settings.db.
func Open(ctx context.Context, sqlitePath, databaseURL string) (Store, error) {
	if databaseURL != "" {
		pg, err := OpenPostgres(ctx, databaseURL)
		if err != nil {
			return nil, err
		}
		return pg, nil
	}
	if sqlitePath == "" {
		sqlitePath = DefaultPath()
	}
	lite, err := OpenSQLite(sqlitePath)
	if err != nil {
		return nil, err
	}
	return lite, nil
}

// DefaultPath is the SQLite location used when none is configured.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".go_tube", "settings.db")
}
