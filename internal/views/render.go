package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultSideWidth = 52
	minSideWidth     = 32
	maxSideWidth     = 72
)

// AppData is one frame of the app. Calendar is the month panel; Side holds
// the optional jump, palette and help panels, stacked top to bottom.
type AppData struct {
	Header      string
	Calendar    string
	Side        []string
	Status      string
	StatusError bool
	Footer      string
	// Width is the terminal width, 0 until the first resize message.
	Width int
}

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	calendarPane  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("12")).Padding(0, 1)
	sidePane      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	sidePaneInset = sidePane.GetHorizontalFrameSize()
)

// RenderApp lays the calendar out at its natural width and puts the side
// panels to its right. When the terminal is too narrow for both, the side
// panels move below the calendar.
func RenderApp(data AppData) string {
	cal := calendarPane.Render(data.Calendar)
	calWidth := CalendarPaneWidth(data.Calendar)

	body := cal
	if side := renderSide(data.Side, SideWidth(data.Width, calWidth)); side != "" {
		if data.Width > 0 && calWidth+lipgloss.Width(side) > data.Width {
			body = lipgloss.JoinVertical(lipgloss.Left, cal, side)
		} else {
			body = lipgloss.JoinHorizontal(lipgloss.Top, cal, side)
		}
	}

	lines := []string{headerStyle.Render(data.Header), body}
	switch {
	case data.Status == "":
	case data.StatusError:
		lines = append(lines, errorStyle.Render("status: error: "+data.Status))
	default:
		lines = append(lines, statusStyle.Render("status: "+data.Status))
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func renderSide(panels []string, width int) string {
	var boxes []string
	for _, p := range panels {
		if strings.TrimSpace(p) == "" {
			continue
		}
		boxes = append(boxes, sidePane.Width(width-sidePane.GetHorizontalBorderSize()).Render(p))
	}
	if len(boxes) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, boxes...)
}

// CalendarPaneWidth is the framed width of the calendar panel content.
func CalendarPaneWidth(calendar string) int {
	return lipgloss.Width(calendarPane.Render(calendar))
}

// SideWidth is the side panel width left over next to a calendar pane of
// calWidth columns in a terminal of total columns. An unknown terminal width
// yields the default.
func SideWidth(total, calWidth int) int {
	if total <= 0 {
		return defaultSideWidth
	}
	w := total - calWidth
	if w < minSideWidth {
		return minSideWidth
	}
	if w > maxSideWidth {
		return maxSideWidth
	}
	return w
}

// RenderMarkdown renders md wrapped to fit inside a side panel of width
// columns. Rendering errors fall back to the raw text.
func RenderMarkdown(md string, width int) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	wrap := width - sidePaneInset
	if wrap < minSideWidth-sidePaneInset {
		wrap = minSideWidth - sidePaneInset
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
