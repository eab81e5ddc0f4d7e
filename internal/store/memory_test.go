package store

import (
	"context"
	"errors"
	"testing"

	"github.com/Abdelrahman0111/managment-arkaan-issues-bookings/internal/models"
)

func TestMemoryLazyTableIsEmpty(t *testing.T) {
	m := NewMemory()
	rows, err := m.Rows(context.Background(), TableIssues)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected empty table, got %d rows", len(rows))
	}
}

func TestMemoryUnknownTableRejected(t *testing.T) {
	m := NewMemory()
	if _, err := m.Rows(context.Background(), "bookings"); !errors.Is(err, ErrUnknownTable) {
		t.Fatalf("expected ErrUnknownTable, got %v", err)
	}
	if err := m.Append(context.Background(), "bookings", []any{"x"}); !errors.Is(err, ErrUnknownTable) {
		t.Fatalf("expected ErrUnknownTable, got %v", err)
	}
}

func TestMemoryAppendFindUpdate(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	issue := models.Issue{AgentName: "A", BookingNumber: "BK-7", Discount: 10, PaymentStatus: models.StatusUnpaid}
	if err := m.Append(ctx, TableIssues, issue.Row()); err != nil {
		t.Fatalf("append: %v", err)
	}
	other := models.Issue{AgentName: "B", BookingNumber: "BK-8", Discount: 5, PaymentStatus: models.StatusUnpaid}
	if err := m.Append(ctx, TableIssues, other.Row()); err != nil {
		t.Fatalf("append: %v", err)
	}

	idx, row, err := m.FindRow(ctx, TableIssues, models.ColBookingNumber, "BK-8")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if idx != 1 {
		t.Fatalf("index = %d, want 1", idx)
	}
	if got, _ := models.ParseIssueRow(row); got.AgentName != "B" {
		t.Fatalf("found wrong row: %#v", got)
	}

	if _, _, err := m.FindRow(ctx, TableIssues, models.ColBookingNumber, "BK-404"); !errors.Is(err, ErrRowNotFound) {
		t.Fatalf("expected ErrRowNotFound, got %v", err)
	}

	updates := map[int]any{
		models.ColPaidAmount:      5.0,
		models.ColRemainingAmount: 0.0,
		models.ColPaymentStatus:   models.StatusComplete,
	}
	if err := m.UpdateCells(ctx, TableIssues, idx, updates); err != nil {
		t.Fatalf("update: %v", err)
	}
	rows, err := m.Rows(ctx, TableIssues)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	got, err := models.ParseIssueRow(rows[1])
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.PaidAmount != 5 || got.RemainingAmount != 0 || got.PaymentStatus != models.StatusComplete {
		t.Fatalf("update not applied: %#v", got)
	}
	// Other row untouched.
	first, _ := models.ParseIssueRow(rows[0])
	if first.PaidAmount != 0 || first.PaymentStatus != models.StatusUnpaid {
		t.Fatalf("unrelated row mutated: %#v", first)
	}
}

func TestMemoryUpdateOutOfRange(t *testing.T) {
	m := NewMemory()
	if err := m.UpdateCells(context.Background(), TableIssues, 3, map[int]any{0: "x"}); err == nil {
		t.Fatal("expected error for out-of-range row")
	}
}

func TestMemoryRowsReturnsCopies(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	if err := m.Append(ctx, TableAgents, models.Agent{Name: "X", CreatedAt: "now"}.Row()); err != nil {
		t.Fatalf("append: %v", err)
	}
	rows, _ := m.Rows(ctx, TableAgents)
	rows[0][0] = "mutated"
	again, _ := m.Rows(ctx, TableAgents)
	if again[0][0] != "X" {
		t.Fatal("Rows leaked internal storage")
	}
}
