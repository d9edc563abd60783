package show

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseError reports a date or time string that doesn't match any recognized
// layout. The raw input is preserved for diagnostics.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %q: %s", e.Input, e.Reason)
}

// Date is a calendar date with no time-of-day component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate validates the components and returns a Date. Out-of-range days
// (e.g. day 31 in a 30-day month) are rejected rather than normalized.
func NewDate(year int, month time.Month, day int) (Date, error) {
	if month < time.January || month > time.December {
		return Date{}, fmt.Errorf("invalid month: %d", month)
	}
	// time.Date normalizes overflow (Jan 32 becomes Feb 1), so round-trip
	// the components to catch it.
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, fmt.Errorf("invalid day %d for %s %d", day, month, year)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// MarshalJSON encodes the date as "2006-01-02".
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a "2006-01-02" date string.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return err
	}
	*d = Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
	return nil
}

// TimeOfDay is a wall-clock time with minute precision. The source renders
// show times separately from dates, so the two stay separate here as well.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// NewTimeOfDay validates the components and returns a TimeOfDay.
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("invalid time of day: %02d:%02d", hour, minute)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// MarshalJSON encodes the time as "HH:MM".
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes an "HH:MM" time string.
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTime(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// hebrewMonths maps a Hebrew month name to its month number. The site
// sometimes renders the name with the prefix letter bet ("in January");
// ParseDate strips the prefix before the lookup.
var hebrewMonths = map[string]time.Month{
	"ינואר":  time.January,
	"פברואר": time.February,
	"מרץ":    time.March,
	"אפריל":  time.April,
	"מאי":    time.May,
	"יוני":   time.June,
	"יולי":   time.July,
	"אוגוסט": time.August,
	"ספטמבר": time.September,
	"אוקטובר": time.October,
	"נובמבר": time.November,
	"דצמבר":  time.December,
}

// timePrefix is the literal "at the hour" marker preceding show times.
const timePrefix = "בשעה"

// ParseDate normalizes a Hebrew-locale date string into a Date.
//
// Recognized layouts:
//
//	"יום שלישי, 15 בינואר 2025"  (weekday, day month year)
//	"15 בינואר 2025"             (day month year)
//
// The month name may carry the leading bet prefix or not. Anything else
// fails with *ParseError.
func ParseDate(raw string) (Date, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Date{}, &ParseError{Input: raw, Reason: "empty date string"}
	}

	// Drop the weekday segment if present ("יום שלישי, 15 בינואר 2025").
	if i := strings.LastIndex(s, ","); i >= 0 {
		s = strings.TrimSpace(s[i+1:])
	}

	fields := strings.Fields(s)
	if len(fields) != 3 {
		return Date{}, &ParseError{Input: raw, Reason: "expected day, month and year"}
	}

	day, err := strconv.Atoi(fields[0])
	if err != nil {
		return Date{}, &ParseError{Input: raw, Reason: fmt.Sprintf("invalid day %q", fields[0])}
	}

	monthName := strings.TrimPrefix(fields[1], "ב")
	month, ok := hebrewMonths[monthName]
	if !ok {
		return Date{}, &ParseError{Input: raw, Reason: fmt.Sprintf("unknown month %q", fields[1])}
	}

	year, err := strconv.Atoi(fields[2])
	if err != nil {
		return Date{}, &ParseError{Input: raw, Reason: fmt.Sprintf("invalid year %q", fields[2])}
	}

	date, err := NewDate(year, month, day)
	if err != nil {
		return Date{}, &ParseError{Input: raw, Reason: err.Error()}
	}
	return date, nil
}

// ParseTime normalizes a time-of-day string into a TimeOfDay. It accepts a
// bare 24-hour "HH:MM" as well as the site's "בשעה HH:MM" rendering.
func ParseTime(raw string) (TimeOfDay, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSpace(strings.TrimPrefix(s, timePrefix))
	if s == "" {
		return TimeOfDay{}, &ParseError{Input: raw, Reason: "empty time string"}
	}

	parsed, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, &ParseError{Input: raw, Reason: "expected 24-hour HH:MM"}
	}
	return TimeOfDay{Hour: parsed.Hour(), Minute: parsed.Minute()}, nil
}
