// Package timecalc handles the text date and clock formats work logs are
// recorded in: "HH:MM" times of day and lenient "D/M/YYYY" dates without
// zero padding.
package timecalc

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// minutesPerDay is the wrap-around for shifts that cross midnight.
const minutesPerDay = 24 * 60

// ParseClock parses an "HH:MM" 24-hour time of day and returns minutes
// since midnight.
func ParseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("parse clock %q: want HH:MM", s)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("parse clock %q: %w", s, err)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("parse clock %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("parse clock %q: out of range", s)
	}
	return hour*60 + minute, nil
}

// DurationMinutes computes the length of a shift in minutes from its start
// and end clock times. An end at or before the start is read as crossing
// midnight into the next day, so start == end means a full 24-hour shift.
// An empty or malformed time yields 0: the shift is not yet specified.
func DurationMinutes(start, end string) int {
	if start == "" || end == "" {
		return 0
	}
	s, err := ParseClock(start)
	if err != nil {
		return 0
	}
	e, err := ParseClock(end)
	if err != nil {
		return 0
	}

	var total int
	if e > s {
		total = e - s
	} else {
		total = (e + minutesPerDay) - s
	}
	if total < 0 {
		total = -total
	}
	return total
}

// ParseDay parses a "D/M/YYYY" date. Single-digit days and months are the
// norm, zero-padded ones are accepted too.
func ParseDay(s string) (time.Time, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("parse day %q: want D/M/YYYY", s)
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day %q: %w", s, err)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day %q: %w", s, err)
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day %q: %w", s, err)
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (32/1 becomes 1/2), so a round-trip
	// mismatch means the calendar date did not exist.
	if t.Day() != day || int(t.Month()) != month || t.Year() != year {
		return time.Time{}, fmt.Errorf("parse day %q: no such date", s)
	}
	return t, nil
}

// FormatDay renders t in the store's non-padded D/M/YYYY form.
func FormatDay(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}

// Today returns today's date in D/M/YYYY form, for pre-filling the add form.
func Today() string {
	return FormatDay(time.Now())
}

// FormatMinutes formats a minute count as a human-readable string like
// "8h 30m" or "45m".
func FormatMinutes(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// HalfHourTimes returns every half-hour clock time of the day, "00:00"
// through "23:30", the choices offered by the start/end selects.
func HalfHourTimes() []string {
	times := make([]string, 0, 48)
	for h := 0; h < 24; h++ {
		times = append(times, fmt.Sprintf("%02d:00", h), fmt.Sprintf("%02d:30", h))
	}
	return times
}
