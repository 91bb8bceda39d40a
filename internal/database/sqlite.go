package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"pastebin-go/internal/database/migrations"
	"pastebin-go/internal/pastebin"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteDatabase implements pastebin.History using SQLite.
type SQLiteDatabase struct {
	db   *sql.DB
	path string
}

var _ pastebin.History = (*SQLiteDatabase)(nil)

// NewSQLiteDatabase opens the database at path and applies pending migrations.
// path can be a file path or ":memory:" for an in-memory database.
func NewSQLiteDatabase(path string) (*SQLiteDatabase, error) {
	db, err := OpenConnection(path)
	if err != nil {
		return nil, err
	}

	if err := migrations.Up(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}

	return &SQLiteDatabase{db: db, path: path}, nil
}

// OpenConnection opens and configures a SQLite connection.
func OpenConnection(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every connection to ":memory:" is a separate database.
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	return db, nil
}

// Operation history

func (s *SQLiteDatabase) CreateOperation(uuid, operation, parameters string, startedAt time.Time) (*pastebin.Operation, error) {
	res, err := s.db.ExecContext(context.Background(),
		`INSERT INTO operations (uuid, operation, parameters, status, started_at) VALUES (?, ?, ?, 'running', ?)`,
		uuid, operation, parameters, startedAt.UTC())
	if err != nil {
		return nil, fmt.Errorf("creating operation: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading operation id: %w", err)
	}

	return &pastebin.Operation{
		ID:         id,
		UUID:       uuid,
		Operation:  operation,
		Parameters: parameters,
		Status:     "running",
		StartedAt:  startedAt.UTC(),
	}, nil
}

func (s *SQLiteDatabase) FinishOperation(id int64, status, result string, finishedAt time.Time) error {
	res, err := s.db.ExecContext(context.Background(),
		`UPDATE operations SET status = ?, result = ?, finished_at = ? WHERE id = ?`,
		status, result, finishedAt.UTC(), id)
	if err != nil {
		return fmt.Errorf("finishing operation: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("finishing operation: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("operation %d not found", id)
	}
	return nil
}

func (s *SQLiteDatabase) ListOperations(limit int) ([]*pastebin.Operation, error) {
	rows, err := s.db.QueryContext(context.Background(),
		`SELECT id, uuid, operation, parameters, status, result, started_at, finished_at
		 FROM operations ORDER BY started_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing operations: %w", err)
	}
	defer rows.Close()

	var ops []*pastebin.Operation
	for rows.Next() {
		op := &pastebin.Operation{}
		if err := rows.Scan(&op.ID, &op.UUID, &op.Operation, &op.Parameters, &op.Status,
			&op.Result, &op.StartedAt, &op.FinishedAt); err != nil {
			return nil, fmt.Errorf("scanning operation: %w", err)
		}
		ops = append(ops, op)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing operations: %w", err)
	}
	return ops, nil
}

// Path returns the database file path (or ":memory:" for in-memory databases).
func (s *SQLiteDatabase) Path() string {
	return s.path
}

// CheckMigrations verifies the database schema is up-to-date.
func (s *SQLiteDatabase) CheckMigrations() error {
	return migrations.Status(s.db)
}

// Close closes the database connection.
func (s *SQLiteDatabase) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
