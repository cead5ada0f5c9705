package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidDateFormat = errors.New("model: invalid date format")

// Accepted layouts for ParseDate. A month-only value selects day 1.
var dateLayouts = []string{"2006-01-02", "2006-01"}

// monthLengths is indexed by 0-based month. February is stored as 28 and
// adjusted for leap years at lookup time.
var monthLengths = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

var weekdayHeader = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// WeekdayHeader returns the short weekday labels, Sunday first.
func WeekdayHeader() [7]string {
	return weekdayHeader
}

// IsLeapYear applies the Gregorian rule.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysIn returns the number of days in month of year. month must be in
// January..December.
func DaysIn(year int, month time.Month) int {
	days := monthLengths[int(month)-1]
	if month == time.February && IsLeapYear(year) {
		days++
	}
	return days
}

// Date is a calendar day without a time component. The zero value is not a
// valid date; build one with NewDate, FromTime or ParseDate. Dates are values:
// every change returns a new Date.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate normalizes out-of-range month and day values the same way
// time.Date does, so June 31 becomes July 1 and month 13 becomes January of
// the next year.
func NewDate(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

func ParseDate(raw string) (Date, error) {
	trimmed := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return FromTime(t), nil
		}
	}
	return Date{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, trimmed)
}

func (d Date) Year() int             { return d.year }
func (d Date) Month() time.Month     { return d.month }
func (d Date) Day() int              { return d.day }
func (d Date) IsZero() bool          { return d == Date{} }
func (d Date) MonthIndex() int       { return int(d.month) - 1 }
func (d Date) DaysInMonth() int      { return DaysIn(d.year, d.month) }
func (d Date) Weekday() time.Weekday { return d.Time().Weekday() }

// FirstWeekday is the weekday of day 1 of d's month.
func (d Date) FirstWeekday() time.Weekday {
	return time.Date(d.year, d.month, 1, 0, 0, 0, 0, time.UTC).Weekday()
}

// Time returns midnight UTC of d.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// WithDay substitutes the day of month. Out-of-range days roll over into
// the neighbouring month.
func (d Date) WithDay(day int) Date {
	return NewDate(d.year, d.month, day)
}

// AddMonths moves n months forward (or backward for negative n), rolling the
// year as needed. The day is clamped to the length of the target month, so
// January 31 plus one month is the last day of February.
func (d Date) AddMonths(n int) Date {
	total := d.year*12 + d.MonthIndex() + n
	year := floorDiv(total, 12)
	month := time.Month(total-year*12) + 1
	day := d.day
	if last := DaysIn(year, month); day > last {
		day = last
	}
	return Date{year: year, month: month, day: day}
}

func (d Date) SameMonth(other Date) bool {
	return d.year == other.year && d.month == other.month
}

func (d Date) Equal(other Date) bool {
	return d == other
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

// MonthTitle renders "January 2024".
func (d Date) MonthTitle() string {
	return fmt.Sprintf("%s %d", d.month, d.year)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
