// Package tui is a terminal host for the tooltip add-on. It renders actor
// sheet, item directory and compendium panes as rows, emits a render hook
// for every pane render and feeds mouse and keyboard input to the host
// hubs. The tooltip surface is a Layer composited over the panes.
package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/KirkDiggler/rpg-tooltips/internal/errors"
	"github.com/KirkDiggler/rpg-tooltips/internal/host"
	"github.com/KirkDiggler/rpg-tooltips/internal/pkg/placement"
)

// RowTop is the screen line of the first row; tabs and a rule sit above it
const RowTop = 2

var (
	activeTabStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")).Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	hoverRowStyle    = lipgloss.NewStyle().Reverse(true)
	detailStyle      = lipgloss.NewStyle().Faint(true)
	helpStyle        = lipgloss.NewStyle().Faint(true)
)

// Entry is one listed document
type Entry struct {
	ID     string
	Type   string
	Label  string
	Detail string
}

// Pane is one browsable surface
type Pane struct {
	Title   string
	Hook    string
	Data    map[string]string
	Entries []Entry
}

// Config holds the dependencies for the terminal host
type Config struct {
	Context  context.Context
	App      string
	Hooks    *host.Hooks
	Pointer  *host.PointerHub
	Keyboard *host.Keyboard
	Layer    *Layer
	Panes    []Pane
	// EmptyText is shown for panes without entries
	EmptyText string
	Help      string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Hooks == nil {
		vb.RequiredField("Hooks")
	}
	if c.Pointer == nil {
		vb.RequiredField("Pointer")
	}
	if c.Keyboard == nil {
		vb.RequiredField("Keyboard")
	}
	if c.Layer == nil {
		vb.RequiredField("Layer")
	}
	if len(c.Panes) == 0 {
		vb.RequiredField("Panes")
	}

	return vb.Build()
}

// Model is the bubbletea model of the terminal host
type Model struct {
	ctx       context.Context
	app       string
	hooks     *host.Hooks
	pointer   *host.PointerHub
	keys      *host.Keyboard
	layer     *Layer
	panes     []Pane
	emptyText string
	help      string

	active  int
	rows    []*host.Row
	hovered int
	width   int
	height  int
}

// New creates the model and renders the first pane
func New(cfg *Config) (*Model, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ctx := cfg.Context
	if ctx == nil {
		ctx = context.Background()
	}

	m := &Model{
		ctx:       ctx,
		app:       cfg.App,
		hooks:     cfg.Hooks,
		pointer:   cfg.Pointer,
		keys:      cfg.Keyboard,
		layer:     cfg.Layer,
		panes:     cfg.Panes,
		emptyText: cfg.EmptyText,
		help:      cfg.Help,
		hovered:   -1,
	}
	m.renderPane()

	return m, nil
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layer.Resize(msg.Width, msg.Height)

	case tea.MouseMsg:
		p := PointerAt(msg.X, msg.Y)
		m.pointer.Move(p)
		m.hover(m.rowAt(msg.X, msg.Y), p)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.hover(-1, placement.Point{})
			return m, tea.Quit
		case "esc":
			m.keys.Press(host.KeyEscape)
		case "tab":
			m.switchPane(m.active + 1)
		case "shift+tab":
			m.switchPane(m.active - 1)
		default:
			m.keys.Press(msg.String())
		}

	case LayerChangedMsg:
		// redraw only
	}

	return m, nil
}

// View implements tea.Model
func (m *Model) View() string {
	lines := []string{m.tabs(), strings.Repeat("─", max(m.width, 1))}

	for i := range m.rows {
		line := m.rowLine(i)
		if i == m.hovered {
			line = hoverRowStyle.Render(ansi.Strip(line))
		}
		lines = append(lines, " "+line)
	}
	if len(m.rows) == 0 && m.emptyText != "" {
		lines = append(lines, " "+detailStyle.Render(m.emptyText))
	}

	for m.height > 0 && len(lines) < m.height-1 {
		lines = append(lines, "")
	}
	if m.help != "" {
		lines = append(lines, helpStyle.Render(m.help))
	}
	if m.height > 0 && len(lines) > m.height {
		lines = lines[:m.height]
	}
	if m.width > 0 {
		for i, line := range lines {
			if pad := m.width - ansi.StringWidth(line); pad > 0 {
				lines[i] = line + strings.Repeat(" ", pad)
			}
		}
	}

	view := strings.Join(lines, "\n")
	if box, col, row, ok := m.layer.Snapshot(); ok {
		view = Overlay(view, box, col, row)
	}
	return view
}

// Active returns the index of the shown pane
func (m *Model) Active() int {
	return m.active
}

// Rows returns the rows of the shown pane
func (m *Model) Rows() []*host.Row {
	return m.rows
}

func (m *Model) tabs() string {
	parts := make([]string, 0, len(m.panes))
	for i, p := range m.panes {
		if i == m.active {
			parts = append(parts, activeTabStyle.Render(p.Title))
		} else {
			parts = append(parts, inactiveTabStyle.Render(p.Title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) switchPane(i int) {
	n := len(m.panes)
	next := ((i % n) + n) % n
	if next == m.active {
		return
	}
	m.hover(-1, placement.Point{})
	m.active = next
	m.renderPane()
}

// renderPane builds fresh rows for the active pane and announces them
func (m *Model) renderPane() {
	pane := m.panes[m.active]
	rows := make([]*host.Row, 0, len(pane.Entries))
	for _, e := range pane.Entries {
		rows = append(rows, &host.Row{
			DocumentID:   e.ID,
			DocumentType: e.Type,
			Label:        e.Label,
			Detail:       e.Detail,
		})
	}
	m.rows = rows
	m.hovered = -1

	m.hooks.Emit(m.ctx, pane.Hook, &host.RenderEvent{
		App:     m.app,
		Surface: pane.Title,
		Rows:    rows,
		Data:    pane.Data,
	})
}

// hover moves the hover to row i, or to nothing when i is out of range
func (m *Model) rowLine(i int) string {
	row := m.rows[i]
	line := row.Label
	if row.Detail != "" {
		line += "  " + detailStyle.Render(row.Detail)
	}
	return line
}

// rowAt returns the row drawn under cell (x, y), or -1. Blank space right of
// a row's text is not part of it.
func (m *Model) rowAt(x, y int) int {
	i := y - RowTop
	if i < 0 || i >= len(m.rows) {
		return -1
	}
	if x < 0 || x >= 1+ansi.StringWidth(m.rowLine(i)) {
		return -1
	}
	return i
}

func (m *Model) hover(i int, p placement.Point) {
	if i < 0 || i >= len(m.rows) {
		i = -1
	}
	if i == m.hovered {
		return
	}

	if m.hovered >= 0 {
		if t := m.rows[m.hovered].Target(); t != nil {
			t.OnLeave()
		}
	}
	m.hovered = i
	if i >= 0 {
		if t := m.rows[i].Target(); t != nil {
			t.OnEnter(m.ctx, p)
		}
	}
}
