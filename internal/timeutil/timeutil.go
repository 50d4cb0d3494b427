// SPDX-License-Identifier: MIT

// Package timeutil parses the CLI time-window selectors into concrete
// start/end pairs.
package timeutil

import (
	"fmt"
	"regexp"
	"time"
)

var sinceRe = regexp.MustCompile(`^(\d+)([mhd])$`)

// ParseSince parses a relative period like "30m", "2h" or "3d" into a
// (start, end) window ending now. Zero or negative magnitudes and
// unknown unit characters are rejected.
func ParseSince(s string, now time.Time) (time.Time, time.Time, error) {
	m := sinceRe.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid --since format %q: use e.g. 30m, 2h, 3d", s)
	}

	var amount int
	if _, err := fmt.Sscanf(m[1], "%d", &amount); err != nil || amount <= 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid --since value %q: must be > 0", s)
	}

	var unit time.Duration
	switch m[2] {
	case "m":
		unit = time.Minute
	case "h":
		unit = time.Hour
	case "d":
		unit = 24 * time.Hour
	}

	return now.Add(-time.Duration(amount) * unit), now, nil
}

// ParseDateRange resolves --date / --from / --to into a (start, end)
// window. An explicit date covers that whole day; "today" and
// "yesterday" are accepted. A from/to pair spans both days inclusive.
// With nothing given the window defaults to today.
func ParseDateRange(dateStr, fromStr, toStr string, now time.Time) (time.Time, time.Time, error) {
	if dateStr != "" {
		var d time.Time
		switch dateStr {
		case "today":
			d = now
		case "yesterday":
			d = now.AddDate(0, 0, -1)
		default:
			parsed, err := time.ParseInLocation("2006-01-02", dateStr, now.Location())
			if err != nil {
				return time.Time{}, time.Time{}, fmt.Errorf("invalid --date %q: use YYYY-MM-DD, today or yesterday", dateStr)
			}
			d = parsed
		}
		return dayStart(d), dayEnd(d), nil
	}

	if fromStr != "" && toStr != "" {
		from, err := time.ParseInLocation("2006-01-02", fromStr, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --from %q: use YYYY-MM-DD", fromStr)
		}
		to, err := time.ParseInLocation("2006-01-02", toStr, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --to %q: use YYYY-MM-DD", toStr)
		}
		return dayStart(from), dayEnd(to), nil
	}

	return dayStart(now), dayEnd(now), nil
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
