// Package store is the adapter over the remote tabular service backing all
// domain data. Two named tables exist, created lazily with fixed header rows.
package store

import (
	"context"
	"errors"

	"github.com/Abdelrahman0111/managment-arkaan-issues-bookings/internal/models"
)

const (
	TableIssues = "issues"
	TableAgents = "agents"
)

var (
	// ErrUnavailable wraps the cached connection failure; once a handshake
	// fails every later call short-circuits with this error until Reset.
	ErrUnavailable = errors.New("record store unavailable")

	// ErrRowNotFound is returned by FindRow when no row matches.
	ErrRowNotFound = errors.New("row not found")

	// ErrUnknownTable guards against addressing a table outside the schema.
	ErrUnknownTable = errors.New("unknown table")
)

// headers maps each table to its fixed header row.
func headers(table string) ([]string, bool) {
	switch table {
	case TableIssues:
		return models.IssueHeader, true
	case TableAgents:
		return models.AgentHeader, true
	}
	return nil, false
}

// TableStore is the row-level contract every consumer programs against.
// Row indexes are 0-based over data rows (the header is never addressable).
type TableStore interface {
	// Rows returns all data rows of the table, creating the table with its
	// header row first if it does not exist yet.
	Rows(ctx context.Context, table string) ([][]any, error)

	// Append adds one row after the last data row.
	Append(ctx context.Context, table string, row []any) error

	// FindRow returns the first data row whose cell in column col equals
	// value, with its index. ErrRowNotFound when nothing matches.
	FindRow(ctx context.Context, table string, col int, value string) (int, []any, error)

	// UpdateCells writes the given column->value updates into one row.
	UpdateCells(ctx context.Context, table string, rowIndex int, updates map[int]any) error

	// Reset clears a cached connection failure so the next call retries the
	// handshake. No-op for stores that cannot fail.
	Reset()
}
