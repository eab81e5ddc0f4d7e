package validation

import (
	"strings"
	"time"
)

type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

func NonNegativeFloat(field string, val float64, v Violations) {
	if val < 0 {
		v[field] = "must_not_be_negative"
	}
}

func PositiveFloat(field string, val float64, v Violations) {
	if val <= 0 {
		v[field] = "must_be_positive"
	}
}

// OneOf checks membership in an allowed token set; empty values are left to
// Required so a missing field reports "required" rather than "invalid_value".
func OneOf(field, value string, allowed []string, v Violations) {
	if strings.TrimSpace(value) == "" {
		return
	}
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v[field] = "invalid_value"
}

var dateLayouts = []string{"2006-01-02", "2006-01-02 15:04:05", "2006/01/02", "02-01-2006"}

// DateLike accepts the date string layouts the spreadsheet rows carry.
func DateLike(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		return
	}
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return
		}
	}
	v[field] = "invalid_date"
}
