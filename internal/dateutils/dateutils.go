// Package dateutils provides calendar-date operations on ISO
// YYYY-MM-DD strings. Dates are parsed into time.Time for arithmetic
// and serialized back to the fixed-width ISO form at the boundary, so
// lexicographic comparison of the strings stays chronologically sound.
package dateutils

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// LayoutISO is the canonical date layout used throughout the application.
const LayoutISO = "2006-01-02"

// Sentinel bounds for the all-time range, wide enough to cover any
// realistic transaction.
const (
	SentinelMin = "1900-01-01"
	SentinelMax = "2999-12-31"
)

// Range is an inclusive date range of ISO date strings.
type Range struct {
	Min string
	Max string
}

// Preset names a fixed date window.
type Preset string

const (
	PresetThisMonth Preset = "this_month"
	PresetLastMonth Preset = "last_month"
	PresetLast90    Preset = "last_90"
	PresetAll       Preset = "all"
)

// ParseISO parses an ISO date string.
func ParseISO(date string) (time.Time, error) {
	return time.Parse(LayoutISO, date)
}

// ToISO formats a time as an ISO date string.
func ToISO(t time.Time) string {
	return t.Format(LayoutISO)
}

// TodayISO returns the current date as an ISO string.
func TodayISO() string {
	return ToISO(time.Now())
}

// AddDaysISO shifts an ISO date by a number of days. Unparseable input
// is returned unchanged.
func AddDaysISO(date string, days int) string {
	t, err := ParseISO(date)
	if err != nil {
		log.WithField("date", date).Debug("Unparseable date, returning unchanged")
		return date
	}
	return ToISO(t.AddDate(0, 0, days))
}

// MonthStartISO returns the first day of the month containing the
// given date. Unparseable input is returned unchanged.
func MonthStartISO(date string) string {
	t, err := ParseISO(date)
	if err != nil {
		log.WithField("date", date).Debug("Unparseable date, returning unchanged")
		return date
	}
	return ToISO(time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()))
}

// MonthEndISO returns the last day of the month containing the given
// date. Unparseable input is returned unchanged.
func MonthEndISO(date string) string {
	t, err := ParseISO(date)
	if err != nil {
		return date
	}
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return ToISO(first.AddDate(0, 1, -1))
}

// ParsePreset validates free-form preset text against the closed set.
func ParsePreset(s string) (Preset, error) {
	switch p := Preset(s); p {
	case PresetThisMonth, PresetLastMonth, PresetLast90, PresetAll:
		return p, nil
	}
	return "", fmt.Errorf("unknown range preset: %s", s)
}

// RangeForPreset resolves a preset to an inclusive date range relative
// to today.
func RangeForPreset(preset Preset) Range {
	return rangeForPresetAt(preset, time.Now())
}

func rangeForPresetAt(preset Preset, now time.Time) Range {
	today := ToISO(now)
	switch preset {
	case PresetThisMonth:
		return Range{Min: MonthStartISO(today), Max: MonthEndISO(today)}
	case PresetLastMonth:
		prev := AddDaysISO(MonthStartISO(today), -1)
		return Range{Min: MonthStartISO(prev), Max: prev}
	case PresetLast90:
		return Range{Min: AddDaysISO(today, -89), Max: today}
	default:
		return Range{Min: SentinelMin, Max: SentinelMax}
	}
}

// InRange reports whether a date falls inside the range, inclusive on
// both ends. The fixed-width ISO format makes string comparison
// equivalent to chronological comparison.
func InRange(date string, r Range) bool {
	return date >= r.Min && date <= r.Max
}

// DaysBetween returns the number of days from min to max. Zero for
// identical dates, negative when max precedes min, zero when either
// side is unparseable.
func DaysBetween(min, max string) int {
	from, err := ParseISO(min)
	if err != nil {
		return 0
	}
	to, err := ParseISO(max)
	if err != nil {
		return 0
	}
	return int(to.Sub(from).Hours() / 24)
}

// PreviousRange returns the immediately preceding period of identical
// length in days, ending the day before r.Min. Applied to the all-time
// sentinel range it yields a degenerate range no transaction falls in,
// which callers treat as an empty comparison set.
func PreviousRange(r Range) Range {
	span := DaysBetween(r.Min, r.Max)
	max := AddDaysISO(r.Min, -1)
	return Range{Min: AddDaysISO(max, -span), Max: max}
}
