package update

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/calview/internal/views"
)

const todayTickInterval = time.Minute

func (m Model) Init() tea.Cmd {
	return todayTickCmd()
}

func todayTickCmd() tea.Cmd {
	return tea.Tick(todayTickInterval, func(at time.Time) tea.Msg { return TodayTickMsg{At: at} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.syncBubbleData()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}

		switch m.Mode {
		case ModePalette:
			if typed.String() == m.Keys.Help {
				m.HelpVisible = !m.HelpVisible
				return m, nil
			}
			return m.handlePaletteKey(typed)
		case ModeJump:
			return m.handleJumpKey(typed), nil
		}

		switch typed.String() {
		case "/":
			m.openPalette()
			return m, nil
		case m.Keys.Jump:
			m.openJumpForm()
			return m, nil
		case m.Keys.Today:
			m.goToday()
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			if m.HelpVisible {
				m.Status = StatusBar{Text: "help shown", IsError: false}
			} else {
				m.Status = StatusBar{Text: "help hidden", IsError: false}
			}
			return m, nil
		case m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}
		return m.handleCalendarKey(typed), nil
	case tea.WindowSizeMsg:
		m.width = typed.Width
		return m, nil
	case SetActiveDateMsg:
		if typed.Date.IsZero() {
			return m, nil
		}
		if !typed.Date.Equal(m.Active()) {
			m.navigate("replace", m.Nav.Replace(typed.Date))
		}
		return m, nil
	case TodayTickMsg:
		m.Today = today(m.clock)
		return m, todayTickCmd()
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.logger.Error("app error", "error", typed.Err)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	var side []string
	switch m.Mode {
	case ModeJump:
		side = append(side, m.renderJumpView())
	case ModePalette:
		side = append(side, m.renderCommandPalette())
	}
	side = append(side, m.renderHelpIfVisible())

	return views.RenderApp(views.AppData{
		Header:      fmt.Sprintf("calview | mode: %s | active: %s", m.Mode, m.Active()),
		Calendar:    m.renderCalendarView(),
		Side:        side,
		Status:      m.Status.Text,
		StatusError: m.Status.IsError,
		Footer: fmt.Sprintf("keys: %s/%s month | %s/%s year | %s today | %s jump | / cmd | %s help | %s quit",
			m.Keys.PrevMonth, m.Keys.NextMonth, m.Keys.PrevYear, m.Keys.NextYear,
			m.Keys.Today, m.Keys.Jump, m.Keys.Help, m.Keys.Quit),
		Width: m.width,
	})
}
