package tui

import (
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/KirkDiggler/rpg-tooltips/internal/errors"
	"github.com/KirkDiggler/rpg-tooltips/internal/pkg/placement"
)

// Cell size used to map terminal cells onto the pixel space the placement
// engine works in
const (
	CellWidth  = 8
	CellHeight = 16
)

// LayerChangedMsg tells the program the tooltip layer needs redrawing
type LayerChangedMsg struct{}

// Layer is the tooltip surface of the terminal host. It is written from
// controller goroutines and read from the program loop.
type Layer struct {
	mu       sync.Mutex
	mounted  bool
	visible  bool
	payload  string
	box      string
	pos      placement.Position
	cols     int
	rows     int
	notifier func()
}

// NewLayer creates an unmounted layer
func NewLayer() *Layer {
	return &Layer{}
}

// SetNotifier installs the function called after every visible change.
// It must not block.
func (l *Layer) SetNotifier(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.notifier = fn
}

// Resize records the terminal size in cells
func (l *Layer) Resize(cols, rows int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cols, l.rows = cols, rows
}

// Mount attaches the layer. A layer mounts once.
func (l *Layer) Mount() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.mounted {
		return errors.FailedPrecondition("tooltip layer already mounted")
	}
	l.mounted = true
	return nil
}

// Unmount detaches and clears the layer
func (l *Layer) Unmount() {
	l.mu.Lock()
	l.mounted = false
	l.visible = false
	l.payload, l.box = "", ""
	notify := l.notifier
	l.mu.Unlock()

	if notify != nil {
		notify()
	}
}

// SetContent replaces the payload and re-renders the box
func (l *Layer) SetContent(payload string) {
	box := RenderPayload(payload)

	l.mu.Lock()
	l.payload, l.box = payload, box
	notify := l.notifier
	visible := l.visible
	l.mu.Unlock()

	if visible && notify != nil {
		notify()
	}
}

// SetVisible toggles the layer
func (l *Layer) SetVisible(visible bool) {
	l.mu.Lock()
	changed := l.visible != visible
	l.visible = visible
	notify := l.notifier
	l.mu.Unlock()

	if changed && notify != nil {
		notify()
	}
}

// Size is the rendered box in pixels
func (l *Layer) Size() placement.Size {
	l.mu.Lock()
	defer l.mu.Unlock()
	return placement.Size{
		W: lipgloss.Width(l.box) * CellWidth,
		H: lipgloss.Height(l.box) * CellHeight,
	}
}

// Viewport is the terminal in pixels
func (l *Layer) Viewport() placement.Size {
	l.mu.Lock()
	defer l.mu.Unlock()
	return placement.Size{W: l.cols * CellWidth, H: l.rows * CellHeight}
}

// MoveTo positions the box; the position is in pixels
func (l *Layer) MoveTo(pos placement.Position) {
	l.mu.Lock()
	changed := l.pos != pos
	l.pos = pos
	notify := l.notifier
	visible := l.visible
	l.mu.Unlock()

	if changed && visible && notify != nil {
		notify()
	}
}

// Snapshot returns the box and its cell position when visible
func (l *Layer) Snapshot() (box string, col, row int, visible bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.mounted || !l.visible || l.box == "" {
		return "", 0, 0, false
	}
	return l.box, l.pos.Left / CellWidth, l.pos.Top / CellHeight, true
}

// Payload returns the raw HTML currently set
func (l *Layer) Payload() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.payload
}

// PointerAt maps a cell to the pixel at its centre
func PointerAt(col, row int) placement.Point {
	return placement.Point{X: col*CellWidth + CellWidth/2, Y: row*CellHeight + CellHeight/2}
}
