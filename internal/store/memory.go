package store

import (
	"context"
	"fmt"
	"sync"
)

// Memory is the map-backed TableStore used by STORE_DRIVER=memory and by
// tests. It mirrors the Sheets semantics: lazy table creation, 0-based data
// rows, first-match scans.
type Memory struct {
	mu     sync.Mutex
	tables map[string][][]any
}

func NewMemory() *Memory {
	return &Memory{tables: make(map[string][][]any)}
}

func (m *Memory) ensure(table string) ([]string, error) {
	header, ok := headers(table)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}
	if _, ok := m.tables[table]; !ok {
		m.tables[table] = [][]any{}
	}
	return header, nil
}

func (m *Memory) Rows(_ context.Context, table string) ([][]any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, err := m.ensure(table); err != nil {
		return nil, err
	}
	rows := make([][]any, len(m.tables[table]))
	for i, r := range m.tables[table] {
		rows[i] = append([]any(nil), r...)
	}
	return rows, nil
}

func (m *Memory) Append(_ context.Context, table string, row []any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	header, err := m.ensure(table)
	if err != nil {
		return err
	}
	m.tables[table] = append(m.tables[table], padRow(append([]any(nil), row...), len(header)))
	return nil
}

func (m *Memory) FindRow(_ context.Context, table string, col int, value string) (int, []any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, err := m.ensure(table); err != nil {
		return 0, nil, err
	}
	for i, row := range m.tables[table] {
		if col < len(row) && fmt.Sprint(row[col]) == value {
			return i, append([]any(nil), row...), nil
		}
	}
	return 0, nil, ErrRowNotFound
}

func (m *Memory) UpdateCells(_ context.Context, table string, rowIndex int, updates map[int]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, err := m.ensure(table); err != nil {
		return err
	}
	rows := m.tables[table]
	if rowIndex < 0 || rowIndex >= len(rows) {
		return fmt.Errorf("row %d out of range for %s", rowIndex, table)
	}
	for col, v := range updates {
		if col < 0 || col >= len(rows[rowIndex]) {
			return fmt.Errorf("column %d out of range for %s", col, table)
		}
		rows[rowIndex][col] = v
	}
	return nil
}

func (m *Memory) Reset() {}
