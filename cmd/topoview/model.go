package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/topoview/pkg/geometry"
	"github.com/dd0wney/topoview/pkg/logging"
	"github.com/dd0wney/topoview/pkg/metrics"
	"github.com/dd0wney/topoview/pkg/render"
	"github.com/dd0wney/topoview/pkg/topology"
	"github.com/dd0wney/topoview/pkg/viewport"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF"))

	mapBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FFFF"))

	detailBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#FFFF00")).
			Padding(1, 2)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

// Rows taken by the title, status and help lines around the map box.
const (
	titleRows  = 1
	footerRows = 2
	borderSize = 1
)

type keyMap struct {
	ZoomIn  key.Binding
	ZoomOut key.Binding
	Reset   key.Binding
	Confirm key.Binding
	Back    key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	ZoomIn: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "zoom in"),
	),
	ZoomOut: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "zoom out"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset view"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "details"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ZoomIn, k.ZoomOut, k.Reset, k.Confirm, k.Back, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ZoomIn, k.ZoomOut, k.Reset},
		{k.Confirm, k.Back},
		{k.Quit},
	}
}

// snapshotSource is satisfied by snapshot.FileSource.
type snapshotSource interface {
	Load() (topology.Snapshot, error)
}

type model struct {
	controller *viewport.Controller
	source     snapshotSource
	refresh    time.Duration
	logger     logging.Logger
	metrics    *metrics.Registry

	help   help.Model
	keys   keyMap
	width  int
	height int

	focus        *viewport.FocusRequest
	loaded       bool
	message      string
	errored      bool
	pressedInMap bool
}

type tickMsg time.Time

type snapshotMsg struct {
	snap topology.Snapshot
	err  error
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func loadCmd(src snapshotSource) tea.Cmd {
	return func() tea.Msg {
		snap, err := src.Load()
		return snapshotMsg{snap: snap, err: err}
	}
}

func initialModel(controller *viewport.Controller, src snapshotSource, refresh time.Duration,
	logger logging.Logger, registry *metrics.Registry) model {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return model{
		controller: controller,
		source:     src,
		refresh:    refresh,
		logger:     logger.With(logging.Component("tui")),
		metrics:    registry,
		help:       help.New(),
		keys:       keys,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		loadCmd(m.source),
		tickCmd(m.refresh),
	)
}

// mapArea is the screen rectangle inside the map box border.
func (m model) mapArea() geometry.Area {
	outer := geometry.Area{X: 0, Y: titleRows, Width: m.width, Height: m.height - titleRows - footerRows}
	return outer.Inner(borderSize)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.metrics.SetTerminalSize(msg.Width, msg.Height)

	case tickMsg:
		m.metrics.RecordRefreshTick()
		return m, tea.Batch(loadCmd(m.source), tickCmd(m.refresh))

	case snapshotMsg:
		if msg.err != nil {
			// Keep showing the last good snapshot.
			m.message = msg.err.Error()
			m.errored = true
			return m, nil
		}
		m.controller.Update(msg.snap)
		if !m.loaded {
			m.controller.ResetView()
			m.loaded = true
		}
		m.message = fmt.Sprintf("%d nodes", m.controller.Nodes().Len())
		m.errored = false
		if m.focus != nil && !m.controller.Nodes().Contains(m.focus.ID) {
			m.focus = nil
		}

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.focus == nil {
			m.handleMouse(msg)
		}
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.focus = nil

	case m.focus != nil:
		// The detail view only answers to back and quit.

	case key.Matches(msg, m.keys.ZoomIn):
		m.controller.ZoomIn()

	case key.Matches(msg, m.keys.ZoomOut):
		m.controller.ZoomOut()

	case key.Matches(msg, m.keys.Reset):
		m.controller.ResetView()

	case key.Matches(msg, m.keys.Confirm):
		if req, ok := m.controller.Confirm(); ok {
			m.focus = &req
		}
	}
	return m, nil
}

// handleMouse forwards pointer events to the controller. Drags and releases
// only count when the press that started them landed inside the map.
func (m *model) handleMouse(msg tea.MouseMsg) {
	area := m.mapArea()
	px, py := float64(msg.X), float64(msg.Y)

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.controller.ZoomIn()
	case msg.Button == tea.MouseButtonWheelDown:
		m.controller.ZoomOut()
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.pressedInMap = area.Contains(msg.X, msg.Y)
		if m.pressedInMap {
			m.controller.HandlePointer(viewport.PointerEvent{Kind: viewport.PointerDown, X: px, Y: py}, area)
		}
	case msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonLeft:
		if m.pressedInMap {
			m.controller.HandlePointer(viewport.PointerEvent{Kind: viewport.PointerDrag, X: px, Y: py}, area)
		}
	case msg.Action == tea.MouseActionRelease:
		if m.pressedInMap {
			m.controller.HandlePointer(viewport.PointerEvent{Kind: viewport.PointerUp}, area)
		}
		m.pressedInMap = false
	}
}

func (m model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render(fmt.Sprintf("Network Map  zoom %.2fx", m.controller.Zoom())))
	s.WriteString("\n")

	area := m.mapArea()
	if m.focus != nil {
		s.WriteString(m.renderDetail(area))
	} else {
		s.WriteString(m.renderMap(area))
	}
	s.WriteString("\n")

	status := m.controller.StatusLine()
	if m.message != "" {
		if m.errored {
			status += "  " + errorStyle.Render("✗ "+m.message)
		} else {
			status += "  " + m.message
		}
	}
	s.WriteString(statusStyle.Render(status))
	s.WriteString("\n")
	s.WriteString(helpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())))

	return s.String()
}

func (m model) renderMap(area geometry.Area) string {
	if !m.loaded {
		return mapBoxStyle.Width(area.Width).Height(area.Height).Render("Loading snapshot...")
	}
	c := newCanvas(area.Width, area.Height, m.controller.Transform())
	c.draw(render.Render(m.controller))
	return mapBoxStyle.Render(c.String())
}

func (m model) renderDetail(area geometry.Area) string {
	sel, ok := m.controller.Selected()
	if !ok {
		return detailBoxStyle.Render("Node no longer present")
	}

	var b strings.Builder
	title := "Device details"
	if m.focus.Target == viewport.FocusClient {
		title = "Client details"
	}
	b.WriteString(title + "\n\n")
	fmt.Fprintf(&b, "Name:  %s\n", sel.Name)
	fmt.Fprintf(&b, "ID:    %s\n", sel.ID)
	fmt.Fprintf(&b, "Kind:  %s", sel.Kind)

	if n, ok := m.controller.Nodes().Get(sel.ID); ok {
		if parent, ok := m.controller.Nodes().Parent(n); ok {
			fmt.Fprintf(&b, "\nUplink: %s", parent.DisplayName())
		}
		if len(n.Children) > 0 {
			fmt.Fprintf(&b, "\nDownlinks: %d", len(n.Children))
		}
	}

	return detailBoxStyle.Width(area.Width).Height(area.Height).Render(b.String())
}
