package models

import "testing"

func sampleIssue() Issue {
	return Issue{
		AgentName:       "وكيل الرياض",
		BookingNumber:   "BK-1001",
		Discount:        250,
		Notes:           "late checkout",
		CheckIn:         "2024-03-01",
		CheckOut:        "2024-03-05",
		CreatedAt:       "2024-03-06 10:00:00",
		IssueType:       IssueTypeSimple,
		PaymentType:     PaymentTypePartial,
		MonthlyAmount:   50,
		PaidAmount:      100,
		RemainingAmount: 150,
		PaymentStatus:   StatusPartial,
	}
}

func TestIssueRowRoundTrip(t *testing.T) {
	want := sampleIssue()
	row := want.Row()
	if len(row) != len(IssueHeader) {
		t.Fatalf("row has %d cells, header has %d", len(row), len(IssueHeader))
	}
	got, err := ParseIssueRow(row)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch:\n got %#v\nwant %#v", got, want)
	}
}

func TestParseIssueRowShortRowFails(t *testing.T) {
	if _, err := ParseIssueRow([]any{"agent", "BK-1"}); err == nil {
		t.Fatal("expected error for short row")
	}
}

func TestParseIssueRowBadAmountFails(t *testing.T) {
	row := sampleIssue().Row()
	row[2] = "not-a-number"
	if _, err := ParseIssueRow(row); err == nil {
		t.Fatal("expected error for non-numeric discount")
	}
}

func TestParseIssueRowStringAndEmptyCells(t *testing.T) {
	// The values API hands back strings; blank amount cells read as zero.
	row := sampleIssue().Row()
	row[2] = "250"
	row[10] = ""
	got, err := ParseIssueRow(row)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.Discount != 250 {
		t.Fatalf("discount = %v, want 250", got.Discount)
	}
	if got.PaidAmount != 0 {
		t.Fatalf("paid = %v, want 0 for blank cell", got.PaidAmount)
	}
}

func TestAgentRowRoundTrip(t *testing.T) {
	want := Agent{Name: "أحمد", CreatedAt: "2024-01-01 09:30:00"}
	got, err := ParseAgentRow(want.Row())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != want {
		t.Fatalf("got %#v want %#v", got, want)
	}
	if _, err := ParseAgentRow([]any{"only-name"}); err == nil {
		t.Fatal("expected error for short agent row")
	}
}
