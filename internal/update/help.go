package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/calview/internal/views"
)

const helpIntro = `# calview

Month view calendar. Move between months, pick a day, or jump straight to a
typed **day / month / year**. A day past the end of the month rolls over into
the next one (31 06 2023 opens July 1).`

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return m.renderHelpView()
}

func (m Model) renderHelpView() string {
	var plain []string
	for _, kb := range m.modeBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentMode: string(m.Mode),
		Intro:       views.RenderMarkdown(helpIntro, views.SideWidth(m.width, views.CalendarPaneWidth(m.renderCalendarView()))),
		Bindings:    plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: toKeyBindings(m.globalBindings()),
			full:  [][]key.Binding{toKeyBindings(m.globalBindings())},
		}),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.PrevMonth + "/" + m.Keys.NextMonth, Action: "previous/next month"},
		{Key: m.Keys.PrevYear + "/" + m.Keys.NextYear, Action: "previous/next year"},
		{Key: m.Keys.Today, Action: "go to today"},
		{Key: m.Keys.Jump, Action: "jump to date"},
		{Key: "/", Action: "open command palette"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) modeBindings() []KeyBinding {
	switch m.Mode {
	case ModeCalendar:
		return []KeyBinding{
			{Key: "arrows", Action: "move selected day"},
			{Key: "j/k", Action: "next/previous week"},
			{Key: "home/end", Action: "first/last day of month"},
		}
	case ModeJump:
		return []KeyBinding{
			{Key: "0-9", Action: "type into the focused field"},
			{Key: "tab", Action: "next field"},
			{Key: "enter", Action: "go (needs day, month and year)"},
			{Key: "esc", Action: "close form"},
		}
	case ModePalette:
		return []KeyBinding{
			{Key: "next [n] / prev [n]", Action: "move n months"},
			{Key: "goto DD MM YYYY", Action: "jump to a date"},
			{Key: "select N", Action: "select day N"},
			{Key: "today", Action: "go to today"},
		}
	default:
		return []KeyBinding{{Key: "-", Action: "no contextual bindings"}}
	}
}

func toKeyBindings(in []KeyBinding) []key.Binding {
	out := make([]key.Binding, 0, len(in))
	for _, kb := range in {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
