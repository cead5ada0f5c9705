package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{2024, true},
		{2023, false},
		{2000, true},
		{1900, false},
		{2100, false},
		{2400, true},
		{1996, true},
		{0, true},
		{-4, true},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, IsLeapYear(tt.year), "year %d", tt.year)
	}
}

func TestDaysInFebruaryFollowsLeapRule(t *testing.T) {
	for year := 1800; year <= 2400; year++ {
		want := 28
		if (year%4 == 0 && year%100 != 0) || year%400 == 0 {
			want = 29
		}
		require.Equalf(t, want, DaysIn(year, time.February), "february %d", year)
	}
}

func TestDaysInMatchesTimePackage(t *testing.T) {
	for _, year := range []int{1900, 1999, 2000, 2023, 2024} {
		for month := time.January; month <= time.December; month++ {
			// Day 0 of the next month is the last day of this one.
			want := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
			assert.Equalf(t, want, DaysIn(year, month), "%d-%02d", year, month)
		}
	}
}

func TestWeekdayHeaderIsACopy(t *testing.T) {
	header := WeekdayHeader()
	assert.Equal(t, "Sun", header[0])
	assert.Equal(t, "Sat", header[6])

	header[0] = "changed"
	assert.Equal(t, "Sun", WeekdayHeader()[0])
}

func TestNewDateRollsOverOutOfRangeDay(t *testing.T) {
	d := NewDate(2023, time.June, 31)
	assert.Equal(t, NewDate(2023, time.July, 1), d)

	d = NewDate(2023, time.Month(13), 5)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.January, d.Month())
	assert.Equal(t, 5, d.Day())
}

func TestDateAccessors(t *testing.T) {
	d := NewDate(2024, time.February, 10)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.February, d.Month())
	assert.Equal(t, 1, d.MonthIndex())
	assert.Equal(t, 10, d.Day())
	assert.Equal(t, 29, d.DaysInMonth())
	assert.Equal(t, time.Saturday, d.Weekday())
	assert.Equal(t, time.Thursday, d.FirstWeekday())
	assert.Equal(t, "2024-02-10", d.String())
	assert.Equal(t, "February 2024", d.MonthTitle())
	assert.False(t, d.IsZero())
	assert.True(t, Date{}.IsZero())
}

func TestWithDayReturnsNewValue(t *testing.T) {
	original := NewDate(2024, time.March, 1)
	changed := original.WithDay(15)

	assert.Equal(t, 1, original.Day())
	assert.Equal(t, 15, changed.Day())
	assert.True(t, original.SameMonth(changed))
}

func TestAddMonthsClampsDay(t *testing.T) {
	tests := []struct {
		name  string
		from  Date
		delta int
		want  Date
	}{
		{"next month", NewDate(2024, time.May, 15), 1, NewDate(2024, time.June, 15)},
		{"previous month", NewDate(2024, time.May, 15), -1, NewDate(2024, time.April, 15)},
		{"year forward", NewDate(2023, time.December, 3), 1, NewDate(2024, time.January, 3)},
		{"year backward", NewDate(2024, time.January, 3), -1, NewDate(2023, time.December, 3)},
		{"jan 31 to leap feb", NewDate(2024, time.January, 31), 1, NewDate(2024, time.February, 29)},
		{"jan 31 to feb", NewDate(2023, time.January, 31), 1, NewDate(2023, time.February, 28)},
		{"may 31 back to apr", NewDate(2023, time.May, 31), -1, NewDate(2023, time.April, 30)},
		{"many months", NewDate(2020, time.February, 29), 48, NewDate(2024, time.February, 29)},
		{"many months back", NewDate(2020, time.February, 29), -25, NewDate(2018, time.January, 29)},
		{"zero", NewDate(2020, time.February, 29), 0, NewDate(2020, time.February, 29)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.AddMonths(tt.delta))
		})
	}
}

func TestAddMonthsAcrossYearZero(t *testing.T) {
	d := NewDate(0, time.January, 10).AddMonths(-1)
	assert.Equal(t, -1, d.Year())
	assert.Equal(t, time.December, d.Month())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2023-06-15 ")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2023, time.June, 15), d)

	d, err = ParseDate("2024-02")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2024, time.February, 1), d)

	_, err = ParseDate("15/06/2023")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestFromTimeDropsClock(t *testing.T) {
	loc := time.FixedZone("test", 5*3600)
	d := FromTime(time.Date(2025, time.August, 9, 23, 59, 0, 0, loc))
	assert.Equal(t, NewDate(2025, time.August, 9), d)
}
