// Package calendar builds the month matrix shown by the calendar view.
package calendar

import (
	"github.com/sandeepkv93/calview/internal/model"
)

const (
	Columns = 7
	// DayRows is fixed so the rendered grid keeps the same height for every
	// month, even when the last one or two week rows are empty.
	DayRows = 6
	Rows    = DayRows + 1
)

type CellKind int

const (
	CellEmpty CellKind = iota
	CellHeader
	CellDay
)

type Cell struct {
	Kind  CellKind
	Day   int
	Label string
}

func (c Cell) IsEmpty() bool  { return c.Kind == CellEmpty }
func (c Cell) IsHeader() bool { return c.Kind == CellHeader }
func (c Cell) IsDay() bool    { return c.Kind == CellDay }

// Week is one row of the grid.
type Week [Columns]Cell

// Grid is the header row followed by six week rows. It is an array so copies
// never share cells.
type Grid [Rows]Week

// Generate builds the grid for the year and month of ref. The day of ref does
// not affect the result.
func Generate(ref model.Date) Grid {
	var g Grid

	for col, label := range model.WeekdayHeader() {
		g[0][col] = Cell{Kind: CellHeader, Label: label}
	}

	firstWeekday := int(ref.FirstWeekday())
	maxDays := model.DaysIn(ref.Year(), ref.Month())

	counter := 1
	for row := 1; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if row == 1 && col < firstWeekday {
				continue
			}
			if counter > maxDays {
				continue
			}
			g[row][col] = Cell{Kind: CellDay, Day: counter}
			counter++
		}
	}
	return g
}

func (g Grid) Header() Week {
	return g[0]
}

// Weeks returns the day rows. With trim set, trailing rows holding no days
// are dropped.
func (g Grid) Weeks(trim bool) []Week {
	weeks := make([]Week, 0, DayRows)
	for row := 1; row < Rows; row++ {
		weeks = append(weeks, g[row])
	}
	if !trim {
		return weeks
	}
	for len(weeks) > 0 && weeks[len(weeks)-1].isBlank() {
		weeks = weeks[:len(weeks)-1]
	}
	return weeks
}

// Locate returns the grid position of day. Row 0 is the header, so found days
// are always at row >= 1.
func (g Grid) Locate(day int) (row int, col int, ok bool) {
	for r := 1; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			if g[r][c].IsDay() && g[r][c].Day == day {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

func (g Grid) Contains(day int) bool {
	_, _, ok := g.Locate(day)
	return ok
}

// Days lists day numbers in row-major order.
func (g Grid) Days() []int {
	out := make([]int, 0, 31)
	for r := 1; r < Rows; r++ {
		for _, cell := range g[r] {
			if cell.IsDay() {
				out = append(out, cell.Day)
			}
		}
	}
	return out
}

// FirstWeekday is the column holding day 1, or -1 for an empty grid.
func (g Grid) FirstWeekday() int {
	_, col, ok := g.Locate(1)
	if !ok {
		return -1
	}
	return col
}

func (w Week) isBlank() bool {
	for _, cell := range w {
		if !cell.IsEmpty() {
			return false
		}
	}
	return true
}
