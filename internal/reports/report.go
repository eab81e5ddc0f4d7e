// Package reports turns the full issue set into the two downloadable report
// formats. Both renderers consume the same aggregation built here.
package reports

import (
	"errors"
	"sort"
	"time"

	"github.com/Abdelrahman0111/managment-arkaan-issues-bookings/internal/models"
)

// ErrNoData is returned when a report is requested with zero issues.
var ErrNoData = errors.New("no data to report")

// Arabic display labels for the stored issue-type tokens.
var issueTypeLabels = map[string]string{
	models.IssueTypeSimple: "مشكلة بسيطة",
	models.IssueTypeMedium: "مشكلة متوسطة",
	models.IssueTypeMajor:  "مشكلة كبيرة",
}

// IssueTypeLabel returns the localized label, falling back to the raw token
// for values outside the known set.
func IssueTypeLabel(token string) string {
	if l, ok := issueTypeLabels[token]; ok {
		return l
	}
	return token
}

type AgentSummary struct {
	AgentName   string
	IssueCount  int
	DiscountSum float64
}

// Report is the shared aggregation both renderers consume. Issue date fields
// are already reformatted for display.
type Report struct {
	Issues        []models.Issue
	TotalIssues   int
	SimpleCount   int
	MediumCount   int
	MajorCount    int
	TotalDiscount float64
	Agents        []AgentSummary
	GeneratedAt   string
}

// Build aggregates the issue set. Per-agent rows are sorted by agent name
// ascending so output is deterministic.
func Build(issues []models.Issue, now time.Time) (*Report, error) {
	if len(issues) == 0 {
		return nil, ErrNoData
	}
	r := &Report{
		TotalIssues: len(issues),
		GeneratedAt: FormatTime(now),
	}
	byAgent := map[string]*AgentSummary{}
	for _, is := range issues {
		display := is
		display.CheckIn = FormatDate(is.CheckIn).Text
		display.CheckOut = FormatDate(is.CheckOut).Text
		display.CreatedAt = FormatDate(is.CreatedAt).Text
		r.Issues = append(r.Issues, display)

		switch is.IssueType {
		case models.IssueTypeSimple:
			r.SimpleCount++
		case models.IssueTypeMedium:
			r.MediumCount++
		case models.IssueTypeMajor:
			r.MajorCount++
		}
		r.TotalDiscount += is.Discount

		agg, ok := byAgent[is.AgentName]
		if !ok {
			agg = &AgentSummary{AgentName: is.AgentName}
			byAgent[is.AgentName] = agg
		}
		agg.IssueCount++
		agg.DiscountSum += is.Discount
	}
	for _, agg := range byAgent {
		r.Agents = append(r.Agents, *agg)
	}
	sort.Slice(r.Agents, func(i, j int) bool { return r.Agents[i].AgentName < r.Agents[j].AgentName })
	return r, nil
}

// Filename builds the download name: <prefix>_<YYYYMMDD>.<ext>.
func Filename(prefix string, now time.Time, ext string) string {
	return prefix + "_" + now.Format("20060102") + "." + ext
}
