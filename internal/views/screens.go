package views

import (
	"fmt"
	"strings"
)

type CalendarPanelData struct {
	Grid       string
	ActiveDate string
	Weekday    string
}

type HelpPanelData struct {
	CurrentMode string
	Intro       string
	Bindings    []string
	HelpView    string
}

func RenderCalendarPanel(data CalendarPanelData) string {
	var b strings.Builder
	b.WriteString(data.Grid + "\n")
	b.WriteString(fmt.Sprintf("selected: %s (%s)\n", data.ActiveDate, data.Weekday))
	b.WriteString("actions: [h/l]month [H/L]year [arrows]day [t]today [g]jump")
	return b.String()
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: %s", input)
}

func RenderHelpPanel(data HelpPanelData) string {
	var b strings.Builder
	if data.Intro != "" {
		b.WriteString(data.Intro + "\n\n")
	}
	b.WriteString(fmt.Sprintf("help:\n%s mode:\n%s\n%s",
		strings.ToLower(data.CurrentMode),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	))
	return b.String()
}
