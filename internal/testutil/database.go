package testutil

import (
	"testing"

	"pastebin-go/internal/database"
	"pastebin-go/internal/pastebin"
)

// NewTestDatabase creates a new in-memory SQLite history with schema applied.
// The database is automatically closed when the test completes.
func NewTestDatabase(t *testing.T) pastebin.History {
	t.Helper()

	db, err := database.NewSQLiteDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}
