// Package navigation implements the transitions of the active calendar date.
// Every operation takes the current date and returns a new one; nothing is
// mutated in place.
package navigation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sandeepkv93/calview/internal/model"
)

var ErrInvalidDate = errors.New("navigation: invalid date")

type InvalidDateReason string

const (
	ReasonMissing    InvalidDateReason = "missing"
	ReasonOutOfRange InvalidDateReason = "out_of_range"
)

// InvalidDateError reports which jump component was rejected. It matches
// ErrInvalidDate with errors.Is.
type InvalidDateError struct {
	Field  string
	Reason InvalidDateReason
	Value  int
}

func (e *InvalidDateError) Error() string {
	if e.Reason == ReasonMissing {
		return fmt.Sprintf("%s: %s is required", ErrInvalidDate, e.Field)
	}
	return fmt.Sprintf("%s: %s %d out of range", ErrInvalidDate, e.Field, e.Value)
}

func (e *InvalidDateError) Is(target error) bool {
	return target == ErrInvalidDate
}

// SelectDay substitutes day into active. Days outside the active month are
// rejected: active is returned unchanged with ok=false.
func SelectDay(active model.Date, day int) (model.Date, bool) {
	if day < 1 || day > active.DaysInMonth() {
		return active, false
	}
	return active.WithDay(day), true
}

// ChangeMonth moves active by delta months. The day is clamped to the length
// of the target month, so the displayed month always moves by exactly delta.
func ChangeMonth(active model.Date, delta int) model.Date {
	return active.AddMonths(delta)
}

// PendingJump holds the components typed into the jump form. A nil field has
// not been entered yet.
type PendingJump struct {
	Day   *int
	Month *int
	Year  *int
}

// ParsePendingJump converts raw field text. Blank or non-numeric text leaves
// the component unset.
func ParsePendingJump(day, month, year string) PendingJump {
	return PendingJump{
		Day:   parseComponent(day),
		Month: parseComponent(month),
		Year:  parseComponent(year),
	}
}

func NewPendingJump(day, month, year int) PendingJump {
	return PendingJump{Day: &day, Month: &month, Year: &year}
}

// Complete reports whether all three components are present. Hosts keep the
// jump action disabled until it is true.
func (p PendingJump) Complete() bool {
	return p.Day != nil && p.Month != nil && p.Year != nil
}

// Missing lists the unset components in day, month, year order.
func (p PendingJump) Missing() []string {
	var out []string
	if p.Day == nil {
		out = append(out, "day")
	}
	if p.Month == nil {
		out = append(out, "month")
	}
	if p.Year == nil {
		out = append(out, "year")
	}
	return out
}

// JumpTo builds a date from a complete PendingJump. Month is 1-based as typed.
// Day and month are range checked on their own; a day past the end of the
// month rolls over into the next month instead of failing.
func JumpTo(p PendingJump) (model.Date, error) {
	if missing := p.Missing(); len(missing) > 0 {
		return model.Date{}, &InvalidDateError{Field: missing[0], Reason: ReasonMissing}
	}
	day, month, year := *p.Day, *p.Month, *p.Year
	if day < 1 || day > 31 {
		return model.Date{}, &InvalidDateError{Field: "day", Reason: ReasonOutOfRange, Value: day}
	}
	if month < 1 || month > 12 {
		return model.Date{}, &InvalidDateError{Field: "month", Reason: ReasonOutOfRange, Value: month}
	}
	return model.NewDate(year, time.Month(month), day), nil
}

func parseComponent(raw string) *int {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	v, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil
	}
	return &v
}
