package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/calview/internal/commands"
	"github.com/sandeepkv93/calview/internal/views"
)

func (m *Model) openPalette() {
	m.Mode = ModePalette
	m.Palette.Active = true
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Focus()
	m.Status = StatusBar{Text: "command palette active", IsError: false}
}

func (m *Model) closePalette() {
	m.Mode = ModeCalendar
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePalette()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand(), nil
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return m, cmd
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.closePalette()
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Shift: func(a commands.ShiftArgs) (commands.Result, error) {
			m.navigate("shift", m.Nav.Shift(a.Months))
			return commands.Result{Message: fmt.Sprintf("showing %s", m.Active().MonthTitle())}, nil
		},
		Goto: func(a commands.GotoArgs) (commands.Result, error) {
			next, err := m.Nav.Jump(a.Jump)
			if err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			m.navigate("jump", next)
			return commands.Result{Message: fmt.Sprintf("jumped to %s", m.Active())}, nil
		},
		Select: func(a commands.SelectArgs) (commands.Result, error) {
			if !m.selectDay(a.Day) {
				return commands.Result{}, &commands.CommandError{
					Code:    commands.ErrCodeInvalidArgument,
					Message: fmt.Sprintf("day %d is not in %s", a.Day, m.Active().MonthTitle()),
				}
			}
			return commands.Result{Message: fmt.Sprintf("selected %s", m.Active())}, nil
		},
		Today: func() (commands.Result, error) {
			m.goToday()
			return commands.Result{Message: m.Status.Text}, nil
		},
	})
	if err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.logger.Warn("command failed", "command", raw, "error", err)
	} else {
		m.Status = StatusBar{Text: res.Message, IsError: false}
	}

	m.closePalette()
	return m
}

func (m Model) renderCommandPalette() string {
	if !m.Palette.Active {
		return ""
	}
	return views.RenderCommandPalette(true, m.commandInput.View())
}
