// Package services holds the domain logic between handlers and the record
// store: issue creation, payment reconciliation, and dashboard aggregation.
package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Abdelrahman0111/managment-arkaan-issues-bookings/internal/models"
	"github.com/Abdelrahman0111/managment-arkaan-issues-bookings/internal/store"
	"github.com/Abdelrahman0111/managment-arkaan-issues-bookings/internal/validation"
)

// ErrNotFound is returned when no row matches a lookup key.
var ErrNotFound = errors.New("not found")

// ValidationError carries per-field violations for the JSON envelope.
type ValidationError struct {
	Violations validation.Violations
}

func (e *ValidationError) Error() string { return "validation failed" }

const timestampLayout = "2006-01-02 15:04:05"

// LedgerService owns every read/write against the issues and agents tables.
type LedgerService struct {
	Store store.TableStore

	// bookingMu serializes payments per booking number: the remote store
	// has no transaction primitive, so the scan-then-update would otherwise
	// lose concurrent updates against the same booking.
	mu        sync.Mutex
	bookingMu map[string]*sync.Mutex
}

func NewLedgerService(st store.TableStore) *LedgerService {
	return &LedgerService{Store: st, bookingMu: make(map[string]*sync.Mutex)}
}

func (s *LedgerService) lockBooking(bookingNumber string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.bookingMu[bookingNumber]
	if !ok {
		m = &sync.Mutex{}
		s.bookingMu[bookingNumber] = m
	}
	return m
}

// CreateIssueInput is the raw request payload for a new issue.
type CreateIssueInput struct {
	AgentName     string  `json:"agent_name"`
	BookingNumber string  `json:"booking_number"`
	Discount      float64 `json:"discount"`
	Notes         string  `json:"notes"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	IssueType     string  `json:"issue_type"`
	PaymentType   string  `json:"payment_type"`
	MonthlyAmount float64 `json:"monthly_amount"`
}

// CreateIssue validates the input, derives the payment columns, and appends
// exactly one fully-derived row. No partial writes: everything is computed
// before the store is touched.
func (s *LedgerService) CreateIssue(ctx context.Context, in CreateIssueInput) (models.Issue, error) {
	v := validation.Violations{}
	validation.Required("agent_name", in.AgentName, v)
	validation.Required("booking_number", in.BookingNumber, v)
	validation.Required("check_in", in.CheckIn, v)
	validation.Required("check_out", in.CheckOut, v)
	validation.Required("issue_type", in.IssueType, v)
	validation.OneOf("issue_type", in.IssueType, models.IssueTypes, v)
	validation.OneOf("payment_type", in.PaymentType, models.PaymentTypes, v)
	validation.DateLike("check_in", in.CheckIn, v)
	validation.DateLike("check_out", in.CheckOut, v)
	validation.NonNegativeFloat("discount", in.Discount, v)
	validation.NonNegativeFloat("monthly_amount", in.MonthlyAmount, v)
	if !v.Empty() {
		return models.Issue{}, &ValidationError{Violations: v}
	}

	paymentType := in.PaymentType
	if paymentType == "" {
		paymentType = models.PaymentTypeFull
	}
	monthly := in.MonthlyAmount
	if paymentType == models.PaymentTypeFull {
		monthly = in.Discount
	}
	status := models.StatusUnpaid
	if in.Discount <= 0 {
		status = models.StatusComplete
	}
	issue := models.Issue{
		AgentName:       in.AgentName,
		BookingNumber:   in.BookingNumber,
		Discount:        in.Discount,
		Notes:           in.Notes,
		CheckIn:         in.CheckIn,
		CheckOut:        in.CheckOut,
		CreatedAt:       time.Now().Format(timestampLayout),
		IssueType:       in.IssueType,
		PaymentType:     paymentType,
		MonthlyAmount:   monthly,
		PaidAmount:      0,
		RemainingAmount: in.Discount,
		PaymentStatus:   status,
	}
	if err := s.Store.Append(ctx, store.TableIssues, issue.Row()); err != nil {
		return models.Issue{}, err
	}
	return issue, nil
}

// RecordPayment applies a payment to the first issue matching the booking
// number. Overpayment is accepted; only the remaining-balance column is
// clamped at zero. Payments against one booking are serialized.
func (s *LedgerService) RecordPayment(ctx context.Context, bookingNumber string, amount float64) (models.Issue, error) {
	v := validation.Violations{}
	validation.Required("booking_number", bookingNumber, v)
	validation.NonNegativeFloat("payment_amount", amount, v)
	if !v.Empty() {
		return models.Issue{}, &ValidationError{Violations: v}
	}

	lock := s.lockBooking(bookingNumber)
	lock.Lock()
	defer lock.Unlock()

	idx, row, err := s.Store.FindRow(ctx, store.TableIssues, models.ColBookingNumber, bookingNumber)
	if err != nil {
		if errors.Is(err, store.ErrRowNotFound) {
			return models.Issue{}, fmt.Errorf("booking %q: %w", bookingNumber, ErrNotFound)
		}
		return models.Issue{}, err
	}
	issue, err := models.ParseIssueRow(row)
	if err != nil {
		return models.Issue{}, err
	}

	issue.PaidAmount += amount
	remaining := issue.Discount - issue.PaidAmount
	if remaining <= 0 {
		issue.PaymentStatus = models.StatusComplete
	} else {
		issue.PaymentStatus = models.StatusPartial
	}
	if remaining < 0 {
		remaining = 0
	}
	issue.RemainingAmount = remaining

	updates := map[int]any{
		models.ColPaidAmount:      issue.PaidAmount,
		models.ColRemainingAmount: issue.RemainingAmount,
		models.ColPaymentStatus:   issue.PaymentStatus,
	}
	if err := s.Store.UpdateCells(ctx, store.TableIssues, idx, updates); err != nil {
		return models.Issue{}, err
	}
	return issue, nil
}

// AddAgent appends a new agent row. Names are not deduplicated; uniqueness
// is by convention.
func (s *LedgerService) AddAgent(ctx context.Context, name string) (models.Agent, error) {
	v := validation.Violations{}
	validation.Required("agent_name", name, v)
	if !v.Empty() {
		return models.Agent{}, &ValidationError{Violations: v}
	}
	agent := models.Agent{Name: name, CreatedAt: time.Now().Format(timestampLayout)}
	if err := s.Store.Append(ctx, store.TableAgents, agent.Row()); err != nil {
		return models.Agent{}, err
	}
	return agent, nil
}

func (s *LedgerService) Agents(ctx context.Context) ([]models.Agent, error) {
	rows, err := s.Store.Rows(ctx, store.TableAgents)
	if err != nil {
		return nil, err
	}
	agents := make([]models.Agent, 0, len(rows))
	for _, r := range rows {
		a, err := models.ParseAgentRow(r)
		if err != nil {
			return nil, err
		}
		agents = append(agents, a)
	}
	return agents, nil
}

func (s *LedgerService) Issues(ctx context.Context) ([]models.Issue, error) {
	rows, err := s.Store.Rows(ctx, store.TableIssues)
	if err != nil {
		return nil, err
	}
	issues := make([]models.Issue, 0, len(rows))
	for _, r := range rows {
		is, err := models.ParseIssueRow(r)
		if err != nil {
			return nil, err
		}
		issues = append(issues, is)
	}
	return issues, nil
}

// RecentIssues returns up to n issues, most recent first (rows are stored
// in insertion order).
func (s *LedgerService) RecentIssues(ctx context.Context, n int) ([]models.Issue, error) {
	issues, err := s.Issues(ctx)
	if err != nil {
		return nil, err
	}
	recent := make([]models.Issue, 0, n)
	for i := len(issues) - 1; i >= 0 && len(recent) < n; i-- {
		recent = append(recent, issues[i])
	}
	return recent, nil
}

// AgentNames returns the distinct agent names appearing on issues, sorted
// ascending.
func (s *LedgerService) AgentNames(ctx context.Context) ([]string, error) {
	issues, err := s.Issues(ctx)
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	names := []string{}
	for _, is := range issues {
		if !seen[is.AgentName] {
			seen[is.AgentName] = true
			names = append(names, is.AgentName)
		}
	}
	sort.Strings(names)
	return names, nil
}

// DashboardStats is the front-page aggregate.
type DashboardStats struct {
	TotalIssues   int     `json:"total_issues"`
	TotalAgents   int     `json:"total_agents"`
	SimpleIssues  int     `json:"simple_issues"`
	MediumIssues  int     `json:"medium_issues"`
	MajorIssues   int     `json:"major_issues"`
	TotalDiscount float64 `json:"total_discount"`
}

func (s *LedgerService) Stats(ctx context.Context) (DashboardStats, error) {
	issues, err := s.Issues(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	stats := DashboardStats{TotalIssues: len(issues)}
	agents := map[string]bool{}
	for _, is := range issues {
		agents[is.AgentName] = true
		switch is.IssueType {
		case models.IssueTypeSimple:
			stats.SimpleIssues++
		case models.IssueTypeMedium:
			stats.MediumIssues++
		case models.IssueTypeMajor:
			stats.MajorIssues++
		}
		stats.TotalDiscount += is.Discount
	}
	stats.TotalAgents = len(agents)
	return stats, nil
}
