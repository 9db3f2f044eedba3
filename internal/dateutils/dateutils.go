// Package dateutils provides the date parsing primitives used by the date
// resolver: layout lists for receipt-style dates, ordinal suffix stripping,
// and the future-date tolerance check.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Date layout constants for the formats receipts actually use.
const (
	DateLayoutISO       = "2006-01-02"
	DateLayoutUS        = "1/2/2006"
	DateLayoutUSDashed  = "1-2-2006"
	DateLayoutLongMonth = "January 2, 2006"
	DateLayoutAbbrMonth = "Jan 2, 2006"
)

// ReceiptFormats is the ordered list of layouts tried when parsing a date
// candidate. More specific layouts come first so "2025-06-23" never parses
// as a US date.
var ReceiptFormats = []string{
	DateLayoutISO,
	DateLayoutLongMonth,
	DateLayoutAbbrMonth,
	"January 2 2006",
	"Jan 2 2006",
	DateLayoutUS,
	DateLayoutUSDashed,
	"01/02/2006",
	"01-02-2006",
}

var (
	ordinalRe = regexp.MustCompile(`(\d{1,2})(st|nd|rd|th)\b`)
	spaceRe   = regexp.MustCompile(`\s+`)
	// "Sept" is a common abbreviation time.Parse does not know; the \b keeps
	// "September" intact.
	septRe = regexp.MustCompile(`(?i)\bsept\b`)
)

// CleanDateString trims a candidate, collapses whitespace, and strips the
// ordinal suffixes ("1st" -> "1") that time.Parse cannot handle.
func CleanDateString(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)
	dateStr = spaceRe.ReplaceAllString(dateStr, " ")
	dateStr = ordinalRe.ReplaceAllString(dateStr, "$1")
	dateStr = septRe.ReplaceAllString(dateStr, "Sep")
	return dateStr
}

// ParseDate attempts to parse a date string using the receipt layouts.
func ParseDate(dateStr string) (time.Time, error) {
	cleaned := CleanDateString(dateStr)

	for _, format := range ReceiptFormats {
		if t, err := time.Parse(format, cleaned); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// WithinFutureTolerance reports whether a candidate date is acceptable
// relative to now: anything in the past, plus a small future window that
// absorbs timezone skew for same-day emails.
func WithinFutureTolerance(candidate, now time.Time, tolerance time.Duration) bool {
	return !candidate.After(now.Add(tolerance))
}

// ToISODate formats a time.Time as YYYY-MM-DD.
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// Truncate strips the time-of-day component, normalizing to UTC midnight.
func Truncate(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}
