// Package dates resolves human date phrases ("October 31", "next Friday",
// "10/31") into concrete UTC times. Resolution is total: every phrase
// produces a value through a three-step ladder of explicit formats, weekday
// names, and a one-week fallback.
package dates

import (
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultHour is the hour of day, UTC, assigned to phrases that carry no
// time component. Every arm of the ladder normalizes to it.
const DefaultHour = 17

var dateLayouts = []string{
	"January 2, 2006",
	"January 2 2006",
	"2 January 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"1/2/06",
	"January 2",
	"Jan 2",
	"2 January",
	"2 Jan",
	"1/2",
}

var weekdays = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday, "tues": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday, "thurs": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

var (
	ordinalRe  = regexp.MustCompile(`(\d+)(?:st|nd|rd|th)\b`)
	titleCaser = cases.Title(language.English)
)

// Resolve turns a date phrase into a concrete time at DefaultHour UTC.
// Explicit formats are tried first; a phrase without a year adopts the
// current year, rolling forward when that would land far in the past.
// Weekday names resolve to their next occurrence, today included. Anything
// unparseable lands one week out. Resolve never fails.
func Resolve(raw string, now time.Time) time.Time {
	phrase := normalize(raw)
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, phrase)
		if err != nil {
			continue
		}
		return atDefaultHour(inferYear(t, now))
	}
	if t, ok := resolveWeekday(raw, now); ok {
		return atDefaultHour(t)
	}
	return atDefaultHour(now.AddDate(0, 0, 7))
}

// FormatBanner renders a resolved time the way result banners show it.
func FormatBanner(t time.Time) string {
	return t.UTC().Format("Jan 2, 2006")
}

func normalize(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, ".,!?")
	s = strings.ToLower(s)
	s = strings.TrimPrefix(s, "on ")
	s = ordinalRe.ReplaceAllString(s, "$1")
	s = strings.Join(strings.Fields(s), " ")
	return titleCaser.String(s)
}

// inferYear fills in the current year on yearless parses. A result more
// than ~180 days behind now is taken to mean next year, so "January 5"
// seen in December schedules forward, while a date a few weeks back keeps
// the current year.
func inferYear(t, now time.Time) time.Time {
	if t.Year() != 0 {
		return t
	}
	candidate := time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	if candidate.Before(now.AddDate(0, 0, -180)) {
		candidate = candidate.AddDate(1, 0, 0)
	}
	return candidate
}

func resolveWeekday(raw string, now time.Time) (time.Time, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.Trim(s, ".,!?")
	next := strings.HasPrefix(s, "next ")
	for _, prefix := range []string{"next ", "this ", "on "} {
		s = strings.TrimPrefix(s, prefix)
	}
	target, ok := weekdays[s]
	if !ok {
		return time.Time{}, false
	}
	days := (int(target) - int(now.Weekday()) + 7) % 7
	if days == 0 && next {
		days = 7
	}
	return now.AddDate(0, 0, days), true
}

func atDefaultHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), DefaultHour, 0, 0, 0, time.UTC)
}
