package database

import (
	"fmt"
	"os"
	"path/filepath"

	"pastebin-go/internal/config"
	"pastebin-go/internal/pastebin"
)

// historyFile is the database file name inside data_dir.
const historyFile = "history.db"

// NewDatabaseFromConfig creates a History implementation based on the database config type.
func NewDatabaseFromConfig(cfg config.DatabaseConfig) (pastebin.History, error) {
	switch cfg.Type {
	case "sqlite":
		if cfg.DataDir == "" {
			return nil, fmt.Errorf("data_dir required for sqlite database")
		}
		if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
		return NewSQLiteDatabase(filepath.Join(cfg.DataDir, historyFile))
	case "memory":
		return NewSQLiteDatabase(":memory:")
	default:
		return nil, fmt.Errorf("unknown database type: %s", cfg.Type)
	}
}
