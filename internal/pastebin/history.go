package pastebin

import (
	"database/sql"
	"time"
)

// Operation is one recorded CLI operation that changed remote state.
type Operation struct {
	ID         int64
	UUID       string
	Operation  string
	Parameters string
	Status     string // "running", "success" or "error"
	Result     string
	StartedAt  time.Time
	FinishedAt sql.NullTime
}

// History stores the operations performed from this machine.
type History interface {
	// CreateOperation records a started operation and returns it with its ID.
	CreateOperation(uuid, operation, parameters string, startedAt time.Time) (*Operation, error)

	// FinishOperation marks an operation complete with its status and result.
	FinishOperation(id int64, status, result string, finishedAt time.Time) error

	// ListOperations returns up to limit operations, newest first.
	ListOperations(limit int) ([]*Operation, error)

	// Close releases the underlying storage.
	Close() error
}
