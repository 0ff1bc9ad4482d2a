package tui_test

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-tooltips/internal/host"
	"github.com/KirkDiggler/rpg-tooltips/internal/pkg/placement"
	"github.com/KirkDiggler/rpg-tooltips/internal/tui"
)

type recordingTarget struct {
	id     string
	events *[]string
}

func (r *recordingTarget) OnEnter(_ context.Context, p placement.Point) {
	*r.events = append(*r.events, "enter:"+r.id)
}

func (r *recordingTarget) OnLeave() {
	*r.events = append(*r.events, "leave:"+r.id)
}

type ModelTestSuite struct {
	suite.Suite
	hooks    *host.Hooks
	pointer  *host.PointerHub
	keyboard *host.Keyboard
	layer    *tui.Layer
	model    *tui.Model
	events   []string
	renders  []string
}

func TestModelSuite(t *testing.T) {
	suite.Run(t, new(ModelTestSuite))
}

func (s *ModelTestSuite) SetupTest() {
	s.events = nil
	s.renders = nil
	s.hooks = host.NewHooks()
	s.pointer = host.NewPointerHub()
	s.keyboard = host.NewKeyboard()
	s.layer = tui.NewLayer()

	attach := func(_ context.Context, ev *host.RenderEvent) {
		s.renders = append(s.renders, ev.Surface)
		for _, row := range ev.Rows {
			row.Attach(&recordingTarget{id: row.DocumentID, events: &s.events})
		}
	}
	s.hooks.On(host.HookRenderActorSheet, attach)
	s.hooks.On(host.HookRenderItemDirectory, attach)

	var err error
	s.model, err = tui.New(&tui.Config{
		App:      "test",
		Hooks:    s.hooks,
		Pointer:  s.pointer,
		Keyboard: s.keyboard,
		Layer:    s.layer,
		Panes: []tui.Pane{
			{
				Title: "Sheet",
				Hook:  host.HookRenderActorSheet,
				Data:  map[string]string{host.DataActorID: "a1"},
				Entries: []tui.Entry{
					{ID: "p1", Type: host.DocumentTypeItem, Label: "Optic Blast", Detail: "power"},
					{ID: "t1", Type: host.DocumentTypeItem, Label: "Leader", Detail: "trait"},
				},
			},
			{Title: "Directory", Hook: host.HookRenderItemDirectory},
		},
		EmptyText: "Nothing here",
		Help:      "tab: switch",
	})
	s.Require().NoError(err)
	s.model.Update(tea.WindowSizeMsg{Width: 60, Height: 12})
}

func (s *ModelTestSuite) move(x, y int) {
	s.model.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion})
}

func (s *ModelTestSuite) TestNewValidation() {
	_, err := tui.New(&tui.Config{Hooks: s.hooks})
	s.Require().Error(err)
	s.Contains(err.Error(), "Panes: is required")
}

func (s *ModelTestSuite) TestFirstPaneRenderedOnCreate() {
	s.Equal([]string{"Sheet"}, s.renders)
	s.Len(s.model.Rows(), 2)
	s.NotNil(s.model.Rows()[0].Target())
}

func (s *ModelTestSuite) TestHoverEnterAndLeave() {
	s.move(5, tui.RowTop+1)
	s.move(6, tui.RowTop+1)
	s.move(5, tui.RowTop)
	s.move(5, 0)

	s.Equal([]string{"enter:t1", "leave:t1", "enter:p1", "leave:p1"}, s.events)

	last, seen := s.pointer.Last()
	s.True(seen)
	s.Equal(tui.PointerAt(5, 0), last)
}

func (s *ModelTestSuite) TestHoverIgnoresBlankSpaceRightOfRow() {
	// " Leader  trait" spans columns 0 to 13
	s.move(13, tui.RowTop+1)
	s.move(14, tui.RowTop+1)
	s.move(40, tui.RowTop+1)
	s.move(40, tui.RowTop)
	s.move(12, tui.RowTop)

	s.Equal([]string{"enter:t1", "leave:t1", "enter:p1"}, s.events)
}

func (s *ModelTestSuite) TestTabLeavesAndRendersNextPane() {
	s.move(5, tui.RowTop)
	s.model.Update(tea.KeyMsg{Type: tea.KeyTab})

	s.Equal(1, s.model.Active())
	s.Equal([]string{"Sheet", "Directory"}, s.renders)
	s.Equal([]string{"enter:p1", "leave:p1"}, s.events)
	s.Empty(s.model.Rows())
	s.Contains(ansi.Strip(s.model.View()), "Nothing here")

	s.model.Update(tea.KeyMsg{Type: tea.KeyTab})
	s.Equal(0, s.model.Active())
	s.Equal([]string{"Sheet", "Directory", "Sheet"}, s.renders)
}

func (s *ModelTestSuite) TestEscapeReachesKeyboard() {
	var keys []string
	s.keyboard.AddKeyListener(func(k string) { keys = append(keys, k) })

	s.model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s.model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})

	s.Equal([]string{host.KeyEscape, "x"}, keys)
}

func (s *ModelTestSuite) TestQuit() {
	s.move(5, tui.RowTop)
	_, cmd := s.model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	s.Require().NotNil(cmd)
	s.IsType(tea.QuitMsg{}, cmd())
	s.Equal([]string{"enter:p1", "leave:p1"}, s.events)
}

func (s *ModelTestSuite) TestViewCompositesTooltip() {
	view := ansi.Strip(s.model.View())
	s.Contains(view, "Optic Blast")
	s.Contains(view, "Leader")
	s.Len(strings.Split(view, "\n"), 12)
	s.NotContains(view, "╭")

	s.Require().NoError(s.layer.Mount())
	s.layer.SetContent("<h3>Blast</h3>")
	s.layer.SetVisible(true)
	s.layer.MoveTo(placement.Position{Left: 10 * tui.CellWidth, Top: 4 * tui.CellHeight})

	lines := strings.Split(ansi.Strip(s.model.View()), "\n")
	s.Len(lines, 12)
	s.True(strings.HasPrefix(lines[4][len("          "):], "╭"), lines[4])
	s.Contains(lines[5], "Blast")
}
