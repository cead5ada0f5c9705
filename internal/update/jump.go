package update

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/calview/internal/views"
)

func (m *Model) openJumpForm() {
	m.Mode = ModeJump
	m.Jump = JumpFormState{Focus: JumpFieldDay}
	m.Status = StatusBar{Text: "jump form open", IsError: false}
}

func (m *Model) closeJumpForm(status string) {
	m.Mode = ModeCalendar
	m.Jump = JumpFormState{}
	m.Status = StatusBar{Text: status, IsError: false}
}

func (m Model) handleJumpKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.closeJumpForm("jump cancelled")
	case "tab", "right":
		m.Jump.Focus = (m.Jump.Focus + 1) % 3
	case "shift+tab", "left":
		m.Jump.Focus = (m.Jump.Focus + 2) % 3
	case "backspace":
		field := m.Jump.Fields[m.Jump.Focus]
		if field != "" {
			m.Jump.Fields[m.Jump.Focus] = field[:len(field)-1]
		}
	case "enter":
		m.commitJump()
	default:
		if msg.Type == tea.KeyRunes {
			for _, r := range msg.Runes {
				m.typeJumpRune(r)
			}
		}
	}
	return m
}

// typeJumpRune appends a digit to the focused field. Input that would exceed
// the field length or its cap (31 for day, 12 for month) is dropped.
func (m *Model) typeJumpRune(r rune) {
	if r < '0' || r > '9' {
		return
	}
	spec := jumpFieldSpecs[m.Jump.Focus]
	candidate := m.Jump.Fields[m.Jump.Focus] + string(r)
	if len(candidate) > spec.MaxLen {
		return
	}
	if spec.MaxValue > 0 {
		if v, err := strconv.Atoi(candidate); err != nil || v > spec.MaxValue {
			return
		}
	}
	m.Jump.Fields[m.Jump.Focus] = candidate
}

// jumpReady gates the go action on all three fields being present.
func (m Model) jumpReady() bool {
	return m.Jump.Pending().Complete()
}

func (m *Model) commitJump() {
	pending := m.Jump.Pending()
	if !pending.Complete() {
		m.Status = StatusBar{
			Text:    fmt.Sprintf("jump disabled: enter %s", strings.Join(pending.Missing(), ", ")),
			IsError: true,
		}
		return
	}
	next, err := m.Nav.Jump(pending)
	if err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.logger.Warn("jump rejected", "error", err)
		return
	}
	m.navigate("jump", next)
	m.closeJumpForm(fmt.Sprintf("jumped to %s", m.Active()))
}

func (m Model) renderJumpView() string {
	pending := m.Jump.Pending()
	return views.RenderJumpPanel(views.JumpPanelData{
		DayView:   m.jumpInputs[JumpFieldDay].View(),
		MonthView: m.jumpInputs[JumpFieldMonth].View(),
		YearView:  m.jumpInputs[JumpFieldYear].View(),
		Ready:     m.jumpReady(),
		Missing:   pending.Missing(),
	})
}
