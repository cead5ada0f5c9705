package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

type DayCellData struct {
	Day      int
	Empty    bool
	Selected bool
	Today    bool
}

type MonthGridData struct {
	Title  string
	Header [7]string
	Weeks  [][7]DayCellData
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Align(lipgloss.Center)
	weekdayStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Align(lipgloss.Center)
	dayStyle      = lipgloss.NewStyle().Align(lipgloss.Right).Padding(0, 1)
	sundayStyle   = dayStyle.Foreground(lipgloss.Color("9"))
	selectedStyle = dayStyle.Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("12"))
	todayStyle    = dayStyle.Underline(true)
	gridBorder    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderMonthGrid draws the weekday header and week rows as a table. The
// selected day is bracketed and today carries a trailing asterisk so both stay
// visible without colour.
func RenderMonthGrid(data MonthGridData) string {
	rows := make([][]string, 0, len(data.Weeks))
	for _, week := range data.Weeks {
		row := make([]string, 0, len(week))
		for _, cell := range week {
			row = append(row, dayLabel(cell))
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(gridBorder).
		BorderRow(false).
		BorderColumn(false).
		Headers(data.Header[:]...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return weekdayStyle
			}
			if row < 0 || row >= len(data.Weeks) || col < 0 || col >= 7 {
				return dayStyle
			}
			cell := data.Weeks[row][col]
			switch {
			case cell.Selected:
				return selectedStyle
			case cell.Today:
				return todayStyle
			case col == 0:
				return sundayStyle
			default:
				return dayStyle
			}
		})

	grid := t.Render()
	title := titleStyle.Width(lipgloss.Width(grid)).Render(data.Title)
	return title + "\n" + grid
}

func dayLabel(cell DayCellData) string {
	if cell.Empty {
		return ""
	}
	label := fmt.Sprintf("%d", cell.Day)
	if cell.Today {
		label += "*"
	}
	if cell.Selected {
		label = "[" + label + "]"
	}
	return label
}

type JumpPanelData struct {
	DayView   string
	MonthView string
	YearView  string
	Ready     bool
	Missing   []string
}

func RenderJumpPanel(data JumpPanelData) string {
	var b strings.Builder
	b.WriteString("jump to date:\n")
	b.WriteString(fmt.Sprintf("%s  %s  %s\n", data.DayView, data.MonthView, data.YearView))
	if data.Ready {
		b.WriteString("go: [enter] ready\n")
	} else {
		b.WriteString(fmt.Sprintf("go: disabled (missing %s)\n", strings.Join(data.Missing, ", ")))
	}
	b.WriteString("keys: [tab] field [enter] go [esc] close")
	return b.String()
}
