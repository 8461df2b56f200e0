// Package tui provides the Bubble Tea counter interface.
package tui

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/tasbih/internal/counter"
)

const (
	defaultBarWidth = 40
	maxBarWidth     = 60
)

type rolloverMsg time.Time

// Model implements the Bubble Tea counter UI and is the session's presenter.
type Model struct {
	ctx     context.Context
	session *counter.Session
	view    counter.View

	keys     keyMap
	help     help.Model
	bar      progress.Model
	target   textinput.Model
	editing  bool
	inputErr string

	width  int
	height int
}

// NewModel constructs a counter TUI model. Attach a session before running it.
func NewModel(ctx context.Context) *Model {
	ti := textinput.New()
	ti.Placeholder = "100"
	ti.CharLimit = 9
	ti.Width = 10
	ti.Prompt = "target: "

	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = defaultBarWidth

	return &Model{
		ctx:    ctx,
		keys:   defaultKeyMap(),
		help:   help.New(),
		bar:    bar,
		target: ti,
	}
}

// Attach binds the session driven by this model.
func (m *Model) Attach(s *counter.Session) {
	m.session = s
	m.view = s.View()
}

// Render implements counter.Presenter.
func (m *Model) Render(v counter.View) {
	m.view = v
}

// Init implements tea.Model. It loads the session and starts the rollover poll.
func (m *Model) Init() tea.Cmd {
	m.session.Load(m.ctx)
	return tickRollover()
}

func tickRollover() tea.Cmd {
	return tea.Tick(counter.RolloverInterval, func(t time.Time) tea.Msg {
		return rolloverMsg(t)
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.bar.Width = barWidth(msg.Width)
		return m, nil
	case rolloverMsg:
		m.session.CheckRollover(m.ctx)
		return m, tickRollover()
	case tea.KeyMsg:
		if m.editing {
			return m.updateTarget(msg)
		}
		return m.updateKeys(msg)
	default:
		return m, nil
	}
}

func (m *Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Increment):
		m.session.Increment(m.ctx)
	case key.Matches(msg, m.keys.Reset):
		m.session.Reset(m.ctx)
	case key.Matches(msg, m.keys.NextLabel):
		m.cycleLabel(1)
	case key.Matches(msg, m.keys.PrevLabel):
		m.cycleLabel(-1)
	case key.Matches(msg, m.keys.Sound):
		m.session.ToggleSound(m.ctx, !m.view.Sound)
	case key.Matches(msg, m.keys.Vibration):
		m.session.ToggleVibration(m.ctx, !m.view.Vibration)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Target):
		return m, m.startTarget()
	default:
		if idx, ok := labelIndex(msg.String()); ok && idx < len(m.view.Labels) {
			m.session.ChangeLabel(m.ctx, m.view.Labels[idx].Label)
		}
	}
	return m, nil
}

func (m *Model) startTarget() tea.Cmd {
	m.editing = true
	m.inputErr = ""
	m.target.SetValue(strconv.Itoa(m.view.Target))
	m.target.CursorEnd()
	return m.target.Focus()
}

func (m *Model) updateTarget(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.stopTarget()
		return m, nil
	case tea.KeyEnter:
		n, err := strconv.Atoi(strings.TrimSpace(m.target.Value()))
		if err != nil {
			m.inputErr = "target must be a whole number"
			return m, nil
		}
		m.stopTarget()
		m.session.SetTarget(m.ctx, n)
		return m, nil
	}
	var cmd tea.Cmd
	m.target, cmd = m.target.Update(msg)
	return m, cmd
}

func (m *Model) stopTarget() {
	m.editing = false
	m.inputErr = ""
	m.target.Blur()
}

func (m *Model) cycleLabel(step int) {
	labels := m.view.Labels
	if len(labels) == 0 {
		return
	}
	current := -1
	for i, c := range labels {
		if c.Active {
			current = i
			break
		}
	}
	next := (current + step + len(labels)) % len(labels)
	if current < 0 && step < 0 {
		next = len(labels) - 1
	}
	m.session.ChangeLabel(m.ctx, labels[next].Label)
}

// labelIndex maps the digit keys 1-9 to a zero-based label index.
func labelIndex(s string) (int, bool) {
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return 0, false
	}
	return int(s[0] - '1'), true
}

func barWidth(termWidth int) int {
	w := termWidth - 10
	if w > maxBarWidth {
		w = maxBarWidth
	}
	if w < 10 {
		w = 10
	}
	return w
}
