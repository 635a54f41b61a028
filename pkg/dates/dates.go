// Package dates is the single boundary where calendar dates cross between
// the DD/MM/YYYY text the shop uses and the values stored in the database.
package dates

import (
	"strconv"
	"strings"
	"time"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/apperror"
	"gorm.io/datatypes"
)

// Layout is the display layout for every date in documents and API payloads.
const Layout = "02/01/2006"

var ErrInvalidDate = apperror.Validation("date", "invalid_date")

// Parse reads DD/MM/YYYY (single-digit day and month accepted) and returns UTC midnight.
func Parse(raw string) (time.Time, error) {
	return ParseField("date", raw)
}

// ParseField is Parse with the failing field named in the error.
func ParseField(field, raw string) (time.Time, error) {
	fail := ErrInvalidDate
	if field != "date" {
		fail = apperror.Validation(field, "invalid_"+field)
	}

	parts := strings.Split(strings.TrimSpace(raw), "/")
	if len(parts) != 3 {
		return time.Time{}, fail
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fail
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fail
	}
	if len(parts[2]) != 4 {
		return time.Time{}, fail
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, fail
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes 31/02 into March; reject instead.
	if t.Day() != day || int(t.Month()) != month || t.Year() != year {
		return time.Time{}, fail
	}
	return t, nil
}

// ParseOptional returns nil for blank input.
func ParseOptional(field, raw string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	t, err := ParseField(field, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Format renders t as DD/MM/YYYY in t's own location. Stored dates are UTC
// midnight so they print as stored.
func Format(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(Layout)
}

// FormatDate renders a stored calendar date.
func FormatDate(d datatypes.Date) string {
	return Format(time.Time(d))
}

// Truncate takes the calendar date of t in t's own location and returns it
// as UTC midnight, the form every date is stored in.
func Truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ToDate converts t to the stored calendar date type.
func ToDate(t time.Time) datatypes.Date {
	return datatypes.Date(Truncate(t))
}

// EndOfDay returns the last instant of t's calendar day, for inclusive range filters.
func EndOfDay(t time.Time) time.Time {
	return Truncate(t).Add(24*time.Hour - time.Nanosecond)
}

// Today is the calendar date of now on the given clock, in the clock's zone.
func Today(c interface{ Now() time.Time }) time.Time {
	return Truncate(c.Now())
}
