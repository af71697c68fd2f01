// File: utils/dates.go
package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Dates travel through the system in two encodings: the API and storage use
// ISO "YYYY-MM-DD", guest-facing input and output use "DD/MM/YYYY". The
// converters never fail: invalid input yields an empty string or false, and
// callers are responsible for surfacing validation messages.

var displayDatePattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// ToDisplayDate converts an ISO date (YYYY-MM-DD) to display form (DD/MM/YYYY).
// Empty input yields an empty string.
func ToDisplayDate(iso string) string {
	if iso == "" {
		return ""
	}
	parts := strings.Split(iso, "-")
	if len(parts) != 3 {
		return ""
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

// ToISODate converts a display date (DD/MM/YYYY) to ISO form (YYYY-MM-DD) by
// token reordering. No calendar validation is performed here; callers must
// check IsValidDisplayDate first. Malformed input yields an empty string.
func ToISODate(display string) string {
	if display == "" {
		return ""
	}
	parts := strings.Split(display, "/")
	if len(parts) != 3 {
		return ""
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}

// IsValidDisplayDate reports whether s is a well-formed DD/MM/YYYY string
// naming a real calendar date. The shape check alone would accept 31/02/2024;
// the date is round-tripped through time.Date and compared back out to reject
// normalized overflow.
func IsValidDisplayDate(s string) bool {
	if !displayDatePattern.MatchString(s) {
		return false
	}
	day, _ := strconv.Atoi(s[0:2])
	month, _ := strconv.Atoi(s[3:5])
	year, _ := strconv.Atoi(s[6:10])

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

// ParseISODate parses an ISO date string into a UTC midnight time. The
// boolean result is false when the string is not a valid ISO date.
func ParseISODate(iso string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
