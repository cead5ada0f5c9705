package update

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sandeepkv93/calview/internal/model"
	"github.com/sandeepkv93/calview/internal/navigation"
)

type Mode string

const (
	ModeCalendar Mode = "Calendar"
	ModeJump     Mode = "Jump"
	ModePalette  Mode = "Palette"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	PrevMonth string
	NextMonth string
	PrevYear  string
	NextYear  string
	Today     string
	Jump      string
	Help      string
	Quit      string
}

type JumpField int

const (
	JumpFieldDay JumpField = iota
	JumpFieldMonth
	JumpFieldYear
)

// jumpFieldSpecs mirrors the DD / MM / YYYY inputs: max length and the
// highest value accepted while typing (0 means no cap).
var jumpFieldSpecs = [3]struct {
	Name        string
	Placeholder string
	MaxLen      int
	MaxValue    int
}{
	{Name: "day", Placeholder: "DD", MaxLen: 2, MaxValue: 31},
	{Name: "month", Placeholder: "MM", MaxLen: 2, MaxValue: 12},
	{Name: "year", Placeholder: "YYYY", MaxLen: 4},
}

type JumpFormState struct {
	Fields [3]string
	Focus  JumpField
}

// Pending converts the raw fields into a navigation.PendingJump.
func (j JumpFormState) Pending() navigation.PendingJump {
	return navigation.ParsePendingJump(j.Fields[JumpFieldDay], j.Fields[JumpFieldMonth], j.Fields[JumpFieldYear])
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Model struct {
	Nav            navigation.State
	Today          model.Date
	Mode           Mode
	Jump           JumpFormState
	Palette        CommandPaletteState
	HelpVisible    bool
	TrimWeeks      bool
	HighlightToday bool
	Status         StatusBar
	Keys           GlobalKeyMap
	Quitting       bool
	LastError      error
	clock          Clock
	width          int
	logger         *slog.Logger
	// Bubble components used for rich TUI controls
	jumpInputs   [3]textinput.Model
	commandInput textinput.Model
	helpModel    help.Model
}

// SetActiveDateMsg replaces the active date from outside the calendar, e.g.
// when an embedding program changes the date it wants shown.
type SetActiveDateMsg struct {
	Date model.Date
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type TodayTickMsg struct {
	At time.Time
}

func NewModel() Model {
	m, _ := NewModelWithConfig(DefaultRuntimeConfig(), RealClock{}, nil)
	return m
}

func NewModelWithConfig(cfg RuntimeConfig, clock Clock, logger *slog.Logger) (Model, error) {
	if clock == nil {
		clock = RealClock{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	now := today(clock)
	active := now
	if raw := strings.TrimSpace(cfg.InitialDate); raw != "" {
		d, err := model.ParseDate(raw)
		if err != nil {
			return Model{}, fmt.Errorf("initial date: %w", err)
		}
		active = d
	}

	m := Model{
		Nav:            navigation.NewState(active),
		Today:          now,
		Mode:           ModeCalendar,
		TrimWeeks:      cfg.TrimWeeks,
		HighlightToday: cfg.HighlightToday,
		Keys: GlobalKeyMap{
			PrevMonth: "h",
			NextMonth: "l",
			PrevYear:  "H",
			NextYear:  "L",
			Today:     "t",
			Jump:      "g",
			Help:      "?",
			Quit:      "q",
		},
		clock:  clock,
		logger: logger.With("component", "update"),
	}
	m.initBubbleComponents()
	m.syncBubbleData()
	return m, nil
}

// Active is the date currently displayed and selected.
func (m Model) Active() model.Date {
	return m.Nav.Active()
}

func (m *Model) initBubbleComponents() {
	for i, spec := range jumpFieldSpecs {
		in := textinput.New()
		in.Placeholder = spec.Placeholder
		in.Prompt = ""
		in.CharLimit = spec.MaxLen
		in.Width = spec.MaxLen + 1
		m.jumpInputs[i] = in
	}

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 64
	m.commandInput.Width = 40
	m.commandInput.Placeholder = "next 2 | goto 15 6 2023 | today"

	m.helpModel = help.New()
	m.helpModel.ShowAll = true
}

// syncBubbleData mirrors form state into the textinputs. The cursor is kept
// at the end of each value since SetValue leaves it where it was.
func (m *Model) syncBubbleData() {
	for i := range m.jumpInputs {
		m.jumpInputs[i].SetValue(m.Jump.Fields[i])
		m.jumpInputs[i].CursorEnd()
		if m.Mode == ModeJump && JumpField(i) == m.Jump.Focus {
			m.jumpInputs[i].Focus()
		} else {
			m.jumpInputs[i].Blur()
		}
	}
	if m.commandInput.Value() != m.Palette.Input {
		m.commandInput.SetValue(m.Palette.Input)
		m.commandInput.CursorEnd()
	}
	if m.Palette.Active {
		m.commandInput.Focus()
	} else {
		m.commandInput.Blur()
	}
}

// navigate installs next as the navigation state and logs the transition.
func (m *Model) navigate(action string, next navigation.State) {
	from := m.Nav.Active()
	m.Nav = next
	m.logger.Debug("navigate",
		"action", action,
		"from", from.String(),
		"to", next.Active().String(),
	)
}
