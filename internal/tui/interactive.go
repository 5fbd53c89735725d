package tui

import (
	"fmt"
	"io"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/fk3r/internal/form"
	"github.com/san-kum/fk3r/internal/kinematics"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))

	title   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")).MarginBottom(1)
	heading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).MarginTop(1)
	column  = lipgloss.NewStyle().MarginRight(4)
	panel   = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("238"))
)

const inputWidth = 8

var subscripts = map[string]string{"1": "₁", "2": "₂", "3": "₃"}

// Options controls the interactive program.
type Options struct {
	ShowPose bool
	// LogFile receives debug logs; empty disables logging.
	LogFile string
}

type model struct {
	store    *form.Store
	fields   []form.Field
	cursor   int
	buf      string
	showPose bool

	width  int
	height int
}

func newModel(store *form.Store, showPose bool) model {
	m := model{
		store:    store,
		fields:   form.Fields(),
		showPose: showPose,
		width:    80,
		height:   24,
	}
	m.loadBuffer()
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) focused() form.Field { return m.fields[m.cursor] }

// loadBuffer replaces the edit buffer with the stored value of the focused
// field.
func (m *model) loadBuffer() {
	m.buf = form.FormatValue(m.focused().Get(m.store.State()))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "shift+tab":
		m.cursor = (m.cursor + len(m.fields) - 1) % len(m.fields)
		m.loadBuffer()
	case "down", "tab", "enter":
		m.cursor = (m.cursor + 1) % len(m.fields)
		m.loadBuffer()
	case "backspace":
		if r := []rune(m.buf); len(r) > 0 {
			m.buf = string(r[:len(r)-1])
		}
		m.edit()
	case "ctrl+u":
		m.buf = ""
		m.edit()
	case "ctrl+r":
		m.store.Reset()
		m.loadBuffer()
		log.Printf("reset to %+v", m.store.State())
	case "ctrl+p":
		m.showPose = !m.showPose
	default:
		switch msg.Type {
		case tea.KeyRunes:
			m.buf += string(msg.Runes)
			m.edit()
		case tea.KeySpace:
			m.buf += " "
			m.edit()
		}
	}
	return m, nil
}

func (m model) edit() {
	v := m.store.Edit(m.focused(), m.buf)
	log.Printf("edit %s %q -> %g", m.focused(), m.buf, v)
}

func (m model) View() string {
	v := m.store.View()

	var b strings.Builder
	b.WriteString(title.Render(v.Title) + "\n")

	cols := make([]string, 0, len(v.Groups))
	for _, g := range v.Groups {
		cols = append(cols, column.Render(m.viewGroup(g)))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cols...) + "\n")

	b.WriteString(heading.Render("Results") + "\n")
	b.WriteString(dim.Render(form.PositionLabel+": ") + white.Render(v.Results.Position) + "\n")
	b.WriteString(dim.Render(form.VelocityLabel+": ") + white.Render(v.Results.Velocity) + "\n")

	if m.showPose {
		c := newPoseCanvas(m.poseSize())
		c.drawChain(m.store.State())
		b.WriteString("\n" + panel.Render(cyan.Render(c.String())) + "\n")
	}

	b.WriteString("\n" + dim.Render("↑↓ select  type to edit  ctrl+u clear  ctrl+r reset  ctrl+p pose  esc quit") + "\n")
	return b.String()
}

func (m model) viewGroup(g form.GroupView) string {
	var b strings.Builder
	b.WriteString(heading.Render(g.Name) + "\n")
	for _, in := range g.Inputs {
		label := in.Symbol + subscripts[in.Subscript] + " = "
		if in.Field == m.focused() {
			val := fmt.Sprintf("%-*s", inputWidth, m.buf+"▋")
			b.WriteString(cyan.Render("▸ "+label) + magenta.Render(val) + white.Render(in.Unit) + "\n")
		} else {
			val := fmt.Sprintf("%-*s", inputWidth, in.Value)
			b.WriteString("  " + dim.Render(label) + white.Render(val) + dimmer.Render(in.Unit) + "\n")
		}
	}
	return b.String()
}

// poseSize keeps the canvas inside the window below the form.
func (m model) poseSize() (int, int) {
	w := m.width - 4
	h := m.height - 20
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	if h > 21 {
		h = 21
	}
	if h < 7 {
		h = 7
	}
	return w, h
}

// Run starts the form on the alternate screen and blocks until the user
// quits.
func Run(initial kinematics.JointState, opts Options) error {
	if opts.LogFile != "" {
		f, err := tea.LogToFile(opts.LogFile, "fk3r")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(newModel(form.NewStore(initial), opts.ShowPose), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
