package store

import (
	"context"
	"fmt"
	"log"
	"sync"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

type connState int

const (
	connIdle connState = iota
	connReady
	connFailed
)

// Sheets is the Google Sheets implementation of TableStore. The handshake is
// lazy: the first call builds the client, and a failed handshake is cached so
// every subsequent call fails fast with ErrUnavailable instead of retrying.
// Reset clears the cached failure.
type Sheets struct {
	spreadsheetID   string
	credentialsFile string

	mu      sync.Mutex
	state   connState
	svc     *sheets.Service
	lastErr error
}

func NewSheets(spreadsheetID, credentialsFile string) *Sheets {
	return &Sheets{spreadsheetID: spreadsheetID, credentialsFile: credentialsFile}
}

// service returns the connected client, performing the handshake once.
func (s *Sheets) service(ctx context.Context) (*sheets.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case connReady:
		return s.svc, nil
	case connFailed:
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, s.lastErr)
	}
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(s.credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope))
	if err != nil {
		s.state = connFailed
		s.lastErr = err
		log.Printf("sheets: connection failed, failing fast until reset: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	s.state = connReady
	s.svc = svc
	return svc, nil
}

// Reset drops a cached failure so the next call retries the handshake.
func (s *Sheets) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == connFailed {
		log.Printf("sheets: connection state reset (was: %v)", s.lastErr)
	}
	s.state = connIdle
	s.svc = nil
	s.lastErr = nil
}

func (s *Sheets) Rows(ctx context.Context, table string) ([][]any, error) {
	header, ok := headers(table)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}
	svc, err := s.service(ctx)
	if err != nil {
		return nil, err
	}
	rng := fmt.Sprintf("%s!A1:%s", table, colName(len(header)-1))
	resp, err := svc.Spreadsheets.Values.Get(s.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		// Worksheet missing: create it with its header row and report empty.
		if cerr := s.createTable(ctx, svc, table, header); cerr != nil {
			return nil, fmt.Errorf("get %s: %w", table, err)
		}
		return nil, nil
	}
	if len(resp.Values) <= 1 {
		return nil, nil
	}
	rows := make([][]any, 0, len(resp.Values)-1)
	for _, r := range resp.Values[1:] {
		rows = append(rows, padRow(r, len(header)))
	}
	return rows, nil
}

func (s *Sheets) Append(ctx context.Context, table string, row []any) error {
	header, ok := headers(table)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}
	svc, err := s.service(ctx)
	if err != nil {
		return err
	}
	if err := s.ensureTable(ctx, svc, table, header); err != nil {
		return err
	}
	vr := &sheets.ValueRange{Values: [][]any{row}}
	_, err = svc.Spreadsheets.Values.Append(s.spreadsheetID, table+"!A1", vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append to %s: %w", table, err)
	}
	return nil
}

func (s *Sheets) FindRow(ctx context.Context, table string, col int, value string) (int, []any, error) {
	rows, err := s.Rows(ctx, table)
	if err != nil {
		return 0, nil, err
	}
	for i, row := range rows {
		if col < len(row) && fmt.Sprint(row[col]) == value {
			return i, row, nil
		}
	}
	return 0, nil, ErrRowNotFound
}

func (s *Sheets) UpdateCells(ctx context.Context, table string, rowIndex int, updates map[int]any) error {
	if _, ok := headers(table); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}
	svc, err := s.service(ctx)
	if err != nil {
		return err
	}
	// Data row i sits below the header, at 1-based sheet row i+2.
	sheetRow := rowIndex + 2
	data := make([]*sheets.ValueRange, 0, len(updates))
	for col, v := range updates {
		data = append(data, &sheets.ValueRange{
			Range:  fmt.Sprintf("%s!%s%d", table, colName(col), sheetRow),
			Values: [][]any{{v}},
		})
	}
	req := &sheets.BatchUpdateValuesRequest{
		ValueInputOption: "USER_ENTERED",
		Data:             data,
	}
	if _, err := svc.Spreadsheets.Values.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("update %s row %d: %w", table, rowIndex, err)
	}
	return nil
}

// ensureTable creates the worksheet with its header row when absent.
func (s *Sheets) ensureTable(ctx context.Context, svc *sheets.Service, table string, header []string) error {
	meta, err := svc.Spreadsheets.Get(s.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("spreadsheet metadata: %w", err)
	}
	for _, sh := range meta.Sheets {
		if sh.Properties != nil && sh.Properties.Title == table {
			return nil
		}
	}
	return s.createTable(ctx, svc, table, header)
}

func (s *Sheets) createTable(ctx context.Context, svc *sheets.Service, table string, header []string) error {
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: table},
			},
		}},
	}
	if _, err := svc.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("create table %s: %w", table, err)
	}
	headerRow := make([]any, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	vr := &sheets.ValueRange{Values: [][]any{headerRow}}
	_, err := svc.Spreadsheets.Values.Append(s.spreadsheetID, table+"!A1", vr).
		ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("write header for %s: %w", table, err)
	}
	log.Printf("sheets: created table %q", table)
	return nil
}

// colName converts a 0-based column index to its A1 letter.
func colName(col int) string {
	name := ""
	for col >= 0 {
		name = string(rune('A'+col%26)) + name
		col = col/26 - 1
	}
	return name
}

// padRow right-pads short rows; the values API trims trailing empty cells.
func padRow(r []any, width int) []any {
	if len(r) >= width {
		return r
	}
	out := make([]any, width)
	copy(out, r)
	for i := len(r); i < width; i++ {
		out[i] = ""
	}
	return out
}
