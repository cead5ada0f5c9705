package navigation

import (
	"github.com/sandeepkv93/calview/internal/calendar"
	"github.com/sandeepkv93/calview/internal/model"
)

// State pairs the active date with the grid of its month. Transitions return
// a new State and regenerate the grid only when the month changes.
type State struct {
	active model.Date
	grid   calendar.Grid
}

func NewState(active model.Date) State {
	return State{active: active, grid: calendar.Generate(active)}
}

func (s State) Active() model.Date  { return s.active }
func (s State) Grid() calendar.Grid { return s.grid }

// IsSelected reports whether cell is the active day.
func (s State) IsSelected(cell calendar.Cell) bool {
	return cell.IsDay() && cell.Day == s.active.Day()
}

// Select applies SelectDay. ok is false when day is not in the grid.
func (s State) Select(day int) (State, bool) {
	next, ok := SelectDay(s.active, day)
	if !ok {
		return s, false
	}
	return s.with(next), true
}

func (s State) Shift(delta int) State {
	return s.with(ChangeMonth(s.active, delta))
}

func (s State) Jump(p PendingJump) (State, error) {
	next, err := JumpTo(p)
	if err != nil {
		return s, err
	}
	return s.with(next), nil
}

// Replace swaps in an externally supplied date, e.g. when the host resets to
// today.
func (s State) Replace(active model.Date) State {
	return s.with(active)
}

func (s State) with(next model.Date) State {
	if s.active.IsZero() || !next.SameMonth(s.active) {
		return NewState(next)
	}
	return State{active: next, grid: s.grid}
}
