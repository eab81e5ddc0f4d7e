package reports

import (
	"strings"

	"github.com/abdullahdiaa/garabic"
	"golang.org/x/text/unicode/bidi"
)

// Shape prepares a string for a left-to-right layout engine: Arabic letters
// are joined into their contextual forms, then right-to-left runs are
// reordered into visual order. Required for every displayed Arabic string in
// the PDF, not optional styling.
func Shape(s string) string {
	shaped := garabic.Shape(s)
	var p bidi.Paragraph
	if _, err := p.SetString(shaped, bidi.DefaultDirection(bidi.LeftToRight)); err != nil {
		return shaped
	}
	o, err := p.Order()
	if err != nil {
		return shaped
	}
	var b strings.Builder
	for i := 0; i < o.NumRuns(); i++ {
		run := o.Run(i)
		if run.Direction() == bidi.RightToLeft {
			b.WriteString(bidi.ReverseString(run.String()))
		} else {
			b.WriteString(run.String())
		}
	}
	return b.String()
}
