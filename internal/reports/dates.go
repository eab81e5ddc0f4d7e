package reports

import (
	"fmt"
	"strings"
	"time"
)

// arabicMonths is the fixed month-name lookup; index 0 is January.
var arabicMonths = [12]string{
	"يناير", "فبراير", "مارس", "أبريل",
	"مايو", "يونيو", "يوليو", "أغسطس",
	"سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
}

// Formatted distinguishes a parsed, localized date from a raw passthrough so
// callers and tests can tell success from fallback.
type Formatted struct {
	Text   string
	Parsed bool
}

var dateLayouts = []string{"2006-01-02", "2006-01-02 15:04:05", "2006/01/02", "02-01-2006"}

// FormatDate reformats a stored date string to "<day> <month> <year>" with
// the Arabic month name. Unparseable input passes through unchanged.
func FormatDate(s string) Formatted {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Formatted{Text: "", Parsed: false}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return Formatted{Text: FormatTime(t), Parsed: true}
		}
	}
	return Formatted{Text: s, Parsed: false}
}

// FormatTime renders a time.Time in the same localized display form.
func FormatTime(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), arabicMonths[int(t.Month())-1], t.Year())
}
