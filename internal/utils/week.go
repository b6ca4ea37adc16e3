package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/mealweek/internal/constants"
)

// MondayOf returns midnight of the Monday starting the week containing t, in t's location.
func MondayOf(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7 // Monday = 0
	y, m, d := t.Date()
	return time.Date(y, m, d-offset, 0, 0, 0, 0, t.Location())
}

// WeekKey returns the canonical YYYY-MM-DD key of the Monday of t's week.
func WeekKey(t time.Time) string {
	return MondayOf(t).Format(constants.DateFormat)
}

// ParseWeekKey parses a week key and rejects dates that are not Mondays.
func ParseWeekKey(key string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid week key %q: %w", key, err)
	}
	if t.Weekday() != time.Monday {
		return time.Time{}, fmt.Errorf("invalid week key %q: not a Monday", key)
	}
	return t, nil
}

// PreviousWeekKey returns the key seven days before key.
func PreviousWeekKey(key string) (string, error) {
	t, err := ParseWeekKey(key)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, -7).Format(constants.DateFormat), nil
}

// WeekLabel renders a display label such as "Week of Oct 19 – Oct 25, 2026".
// Unparseable keys are returned as-is.
func WeekLabel(key string) string {
	start, err := ParseWeekKey(key)
	if err != nil {
		return key
	}
	end := start.AddDate(0, 0, 6)
	return fmt.Sprintf("Week of %s – %s", start.Format("Jan 2"), end.Format("Jan 2, 2006"))
}

// ParseDate accepts "today" or a YYYY-MM-DD date.
func ParseDate(s string, now time.Time) (time.Time, error) {
	if s == "" || s == "today" {
		return now, nil
	}
	t, err := time.ParseInLocation(constants.DateFormat, s, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, use YYYY-MM-DD or 'today': %w", err)
	}
	return t, nil
}
