package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Payment type tokens, chosen at issue creation.
const (
	PaymentTypeFull    = "full"
	PaymentTypePartial = "partial"
)

// Derived payment status tokens.
const (
	StatusUnpaid   = "unpaid"
	StatusPartial  = "partial"
	StatusComplete = "complete"
)

// Issue category tokens.
const (
	IssueTypeSimple = "simple"
	IssueTypeMedium = "medium"
	IssueTypeMajor  = "major"
)

var (
	PaymentTypes = []string{PaymentTypeFull, PaymentTypePartial}
	IssueTypes   = []string{IssueTypeSimple, IssueTypeMedium, IssueTypeMajor}
)

// Issue is one booking-discount claim. Rows are append-only except the three
// payment columns, which reconciliation rewrites.
type Issue struct {
	AgentName       string  `json:"agent_name"`
	BookingNumber   string  `json:"booking_number"`
	Discount        float64 `json:"discount"`
	Notes           string  `json:"notes"`
	CheckIn         string  `json:"check_in"`
	CheckOut        string  `json:"check_out"`
	CreatedAt       string  `json:"created_at"`
	IssueType       string  `json:"issue_type"`
	PaymentType     string  `json:"payment_type"`
	MonthlyAmount   float64 `json:"monthly_amount"`
	PaidAmount      float64 `json:"paid_amount"`
	RemainingAmount float64 `json:"remaining_amount"`
	PaymentStatus   string  `json:"payment_status"`
}

// IssueHeader is the fixed header row of the issues table; Row and
// ParseIssueRow must stay in column lockstep with it.
var IssueHeader = []string{
	"agent_name", "booking_number", "discount", "notes",
	"check_in", "check_out", "created_at", "issue_type",
	"payment_type", "monthly_amount", "paid_amount",
	"remaining_amount", "payment_status",
}

// Column indexes used by payment reconciliation.
const (
	ColBookingNumber   = 1
	ColPaidAmount      = 10
	ColRemainingAmount = 11
	ColPaymentStatus   = 12
)

// Row emits the issue in header column order, amounts as numbers.
func (i Issue) Row() []any {
	return []any{
		i.AgentName, i.BookingNumber, i.Discount, i.Notes,
		i.CheckIn, i.CheckOut, i.CreatedAt, i.IssueType,
		i.PaymentType, i.MonthlyAmount, i.PaidAmount,
		i.RemainingAmount, i.PaymentStatus,
	}
}

// ParseIssueRow converts one stored row into a typed Issue. Short rows and
// non-numeric amount cells fail here, at the store boundary, instead of
// surfacing as missing-key errors deep inside rendering.
func ParseIssueRow(row []any) (Issue, error) {
	if len(row) < len(IssueHeader) {
		return Issue{}, fmt.Errorf("issue row has %d columns, want %d", len(row), len(IssueHeader))
	}
	var i Issue
	var err error
	i.AgentName = cellString(row[0])
	i.BookingNumber = cellString(row[1])
	if i.Discount, err = cellFloat(row[2]); err != nil {
		return Issue{}, fmt.Errorf("discount: %w", err)
	}
	i.Notes = cellString(row[3])
	i.CheckIn = cellString(row[4])
	i.CheckOut = cellString(row[5])
	i.CreatedAt = cellString(row[6])
	i.IssueType = cellString(row[7])
	i.PaymentType = cellString(row[8])
	if i.MonthlyAmount, err = cellFloat(row[9]); err != nil {
		return Issue{}, fmt.Errorf("monthly_amount: %w", err)
	}
	if i.PaidAmount, err = cellFloat(row[10]); err != nil {
		return Issue{}, fmt.Errorf("paid_amount: %w", err)
	}
	if i.RemainingAmount, err = cellFloat(row[11]); err != nil {
		return Issue{}, fmt.Errorf("remaining_amount: %w", err)
	}
	i.PaymentStatus = cellString(row[12])
	return i, nil
}

func cellString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// cellFloat reads a numeric cell; the values API hands back strings for
// user-entered cells and blank cells read as zero.
func cellFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", n)
		}
		return f, nil
	case nil:
		return 0, nil
	default:
		return 0, fmt.Errorf("not a number: %v", v)
	}
}
