package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/calview/internal/model"
	"github.com/sandeepkv93/calview/internal/views"
)

func (m Model) handleCalendarKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case m.Keys.PrevMonth, "pgup":
		m.shiftMonths(-1)
	case m.Keys.NextMonth, "pgdown":
		m.shiftMonths(1)
	case m.Keys.PrevYear:
		m.shiftMonths(-12)
	case m.Keys.NextYear:
		m.shiftMonths(12)
	case "left":
		m.moveSelection(-1)
	case "right":
		m.moveSelection(1)
	case "up", "k":
		m.moveSelection(-7)
	case "down", "j":
		m.moveSelection(7)
	case "home":
		m.selectDay(1)
	case "end":
		m.selectDay(m.Active().DaysInMonth())
	}
	return m
}

func (m *Model) shiftMonths(delta int) {
	m.navigate("shift", m.Nav.Shift(delta))
	m.Status = StatusBar{Text: fmt.Sprintf("showing %s", m.Active().MonthTitle()), IsError: false}
}

// moveSelection steps the selected day within the displayed month. Steps that
// would leave the month are ignored.
func (m *Model) moveSelection(delta int) {
	m.selectDay(m.Active().Day() + delta)
}

func (m *Model) selectDay(day int) bool {
	next, ok := m.Nav.Select(day)
	if !ok {
		return false
	}
	m.navigate("select", next)
	return true
}

func (m *Model) goToday() {
	m.Today = today(m.clock)
	m.navigate("today", m.Nav.Replace(m.Today))
	m.Status = StatusBar{Text: fmt.Sprintf("today: %s", m.Today), IsError: false}
}

func (m Model) monthGridData() views.MonthGridData {
	active := m.Active()
	weeks := m.Nav.Grid().Weeks(m.TrimWeeks)
	data := views.MonthGridData{
		Title:  active.MonthTitle(),
		Header: model.WeekdayHeader(),
		Weeks:  make([][7]views.DayCellData, 0, len(weeks)),
	}
	showToday := m.HighlightToday && m.Today.SameMonth(active)
	for _, week := range weeks {
		var row [7]views.DayCellData
		for col, cell := range week {
			if !cell.IsDay() {
				row[col] = views.DayCellData{Empty: true}
				continue
			}
			row[col] = views.DayCellData{
				Day:      cell.Day,
				Selected: m.Nav.IsSelected(cell),
				Today:    showToday && cell.Day == m.Today.Day(),
			}
		}
		data.Weeks = append(data.Weeks, row)
	}
	return data
}

func (m Model) renderCalendarView() string {
	active := m.Active()
	return views.RenderCalendarPanel(views.CalendarPanelData{
		Grid:       views.RenderMonthGrid(m.monthGridData()),
		ActiveDate: active.String(),
		Weekday:    active.Weekday().String(),
	})
}

// RenderMonth renders the month grid alone, for non-interactive output.
func (m Model) RenderMonth() string {
	return views.RenderMonthGrid(m.monthGridData())
}
