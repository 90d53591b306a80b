package collection

import (
	"strconv"
	"strings"
	"time"
)

// NormalizeDate parses a raw date value from an uncurated record into a
// concrete UTC date. Accepted shapes:
//
//   - year-first textual dates: 2024-03-05, 2024/3/5
//   - day-first textual dates: 05-03-2024, 5/3/2024
//   - RFC 3339 timestamps
//   - a bare 1-31 integer, read as a recurring due day and resolved
//     against the month of ref
//
// Anything else, and any value that names an impossible calendar date,
// returns ok=false. It never panics.
func NormalizeDate(value string, ref time.Time) (time.Time, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, false
	}

	if n, err := strconv.Atoi(s); err == nil {
		return resolveDueDay(n, ref)
	}

	if strings.Contains(s, "T") {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
		return time.Time{}, false
	}

	parts := strings.Split(strings.ReplaceAll(s, "/", "-"), "-")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	var year, month, day string
	switch {
	case len(parts[0]) == 4:
		year, month, day = parts[0], parts[1], parts[2]
	case len(parts[2]) == 4:
		day, month, year = parts[0], parts[1], parts[2]
	default:
		return time.Time{}, false
	}
	if len(month) == 1 {
		month = "0" + month
	}
	if len(day) == 1 {
		day = "0" + day
	}
	if len(month) != 2 || len(day) != 2 {
		return time.Time{}, false
	}

	t, err := time.Parse("2006-01-02", year+"-"+month+"-"+day)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// resolveDueDay turns a recurring due day into a concrete date in the
// month of ref. Days past the end of that month are invalid rather than
// rolled over.
func resolveDueDay(day int, ref time.Time) (time.Time, bool) {
	if day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(ref.Year(), ref.Month(), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}
