// Package tooltip implements the hover tooltip lifecycle: one surface, one
// pointer listener while visible, and last-hover-wins across async work.
package tooltip

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-tooltips/internal/entities/settings"
	"github.com/KirkDiggler/rpg-tooltips/internal/errors"
	"github.com/KirkDiggler/rpg-tooltips/internal/host"
	"github.com/KirkDiggler/rpg-tooltips/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-tooltips/internal/pkg/placement"
)

// Config holds the dependencies for the tooltip controller
type Config struct {
	Surface Surface
	Pointer PointerSource
	Keys    KeySource
	Builder ContentBuilder
	// Visibility defaults to every type visible
	Visibility *settings.TypeVisibility
	// Tokens defaults to a sequential generator
	Tokens idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Surface == nil {
		vb.RequiredField("Surface")
	}
	if c.Pointer == nil {
		vb.RequiredField("Pointer")
	}
	if c.Keys == nil {
		vb.RequiredField("Keys")
	}
	if c.Builder == nil {
		vb.RequiredField("Builder")
	}

	return vb.Build()
}

// Controller owns the tooltip surface. All state is guarded by mu, which
// is never held while loading or building content.
type Controller struct {
	surface Surface
	pointer PointerSource
	keys    KeySource
	builder ContentBuilder
	tokens  idgen.Generator

	mu         sync.Mutex
	started    bool
	visible    bool
	html       string
	token      string
	visibility settings.TypeVisibility
	removeMove func()
	removeKey  func()
}

// NewOrchestrator creates a tooltip controller
func NewOrchestrator(cfg *Config) (*Controller, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	visibility := settings.AllVisible()
	if cfg.Visibility != nil {
		visibility = *cfg.Visibility
	}
	tokens := cfg.Tokens
	if tokens == nil {
		tokens = idgen.NewSequential("hover")
	}

	return &Controller{
		surface:    cfg.Surface,
		pointer:    cfg.Pointer,
		keys:       cfg.Keys,
		builder:    cfg.Builder,
		tokens:     tokens,
		visibility: visibility,
	}, nil
}

// Start mounts the surface and subscribes to the key source. Starting a
// started controller does nothing.
func (c *Controller) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return nil
	}
	if err := c.surface.Mount(); err != nil {
		return errors.Wrap(err, "failed to mount tooltip surface")
	}
	c.removeKey = c.keys.AddKeyListener(c.HandleKey)
	c.started = true

	return nil
}

// Stop hides the tooltip, unsubscribes and unmounts the surface
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.started {
		return
	}
	c.token = c.tokens.Generate()
	c.hideLocked()
	if c.removeKey != nil {
		c.removeKey()
		c.removeKey = nil
	}
	c.surface.Unmount()
	c.started = false
}

// Show displays the tooltip for a hovered item. Only the most recent call
// may commit; earlier calls still in flight report ReasonSuperseded.
func (c *Controller) Show(ctx context.Context, input *ShowInput) (*ShowOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	token, vis, ok := c.begin()
	if !ok {
		return &ShowOutput{Reason: ReasonInactive}, nil
	}

	return c.run(ctx, token, vis, input)
}

// ShowAsync claims the hover immediately and finishes the show in a new
// goroutine. A Hide issued after ShowAsync returns always wins, even if the
// goroutine has not started yet. done may be nil.
func (c *Controller) ShowAsync(ctx context.Context, input *ShowInput, done ShowCallback) {
	if done == nil {
		done = func(*ShowOutput, error) {}
	}
	if input == nil {
		done(nil, errors.InvalidArgument("input is required"))
		return
	}

	token, vis, ok := c.begin()
	if !ok {
		done(&ShowOutput{Reason: ReasonInactive}, nil)
		return
	}

	go func() {
		done(c.run(ctx, token, vis, input))
	}()
}

// Hide clears and hides the tooltip. It invalidates any show still in
// flight and is safe to call repeatedly.
func (c *Controller) Hide() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = c.tokens.Generate()
	if c.started {
		c.hideLocked()
	}
}

// HandleKey hides the tooltip on Escape
func (c *Controller) HandleKey(key string) {
	if key == host.KeyEscape {
		c.Hide()
	}
}

// Visible reports whether the tooltip is showing
func (c *Controller) Visible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible
}

// Content returns the current payload, empty while hidden
func (c *Controller) Content() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.html
}

// SetVisibility replaces the per-type visibility flags. Shows already in
// flight keep the flags they started with.
func (c *Controller) SetVisibility(v settings.TypeVisibility) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.visibility = v
}

// Visibility returns the current per-type visibility flags
func (c *Controller) Visibility() settings.TypeVisibility {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visibility
}

func (c *Controller) begin() (string, settings.TypeVisibility, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.started {
		return "", settings.TypeVisibility{}, false
	}
	c.token = c.tokens.Generate()
	return c.token, c.visibility, true
}

func (c *Controller) run(ctx context.Context, token string, vis settings.TypeVisibility, input *ShowInput) (*ShowOutput, error) {
	it := input.Item
	if input.Loader != nil {
		loaded, err := input.Loader(ctx)
		if err != nil {
			if !c.current(token) {
				return &ShowOutput{Reason: ReasonSuperseded}, nil
			}
			// Any lookup failure means there is nothing to show.
			slog.Log(ctx, errors.LogLevel(err), "hovered item lookup failed", "error", err)
			c.hideIfCurrent(token)
			return &ShowOutput{Reason: ReasonNotFound}, nil
		}
		it = loaded
	}
	if it == nil {
		c.hideIfCurrent(token)
		return &ShowOutput{Reason: ReasonNotFound}, nil
	}

	if !vis.Allows(it.Type) {
		c.hideIfCurrent(token)
		return &ShowOutput{Reason: ReasonDisabledType}, nil
	}

	built, ok := c.builder.Build(ctx, it)
	if !ok {
		c.hideIfCurrent(token)
		return &ShowOutput{Reason: ReasonNoContent}, nil
	}

	if !c.commit(token, built.HTML(), input.Pointer) {
		slog.DebugContext(ctx, "discarding stale tooltip", "item_id", it.ID)
		return &ShowOutput{Reason: ReasonSuperseded}, nil
	}

	return &ShowOutput{Reason: ReasonShown, Shown: true}, nil
}

func (c *Controller) commit(token, html string, pointer placement.Point) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.started || c.token != token {
		return false
	}

	c.html = html
	c.surface.SetContent(html)
	c.surface.SetVisible(true)
	c.visible = true
	if c.removeMove == nil {
		c.removeMove = c.pointer.AddMoveListener(c.onMove)
	}
	c.placeLocked(pointer)

	return true
}

func (c *Controller) current(token string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.started && c.token == token
}

// hideIfCurrent clears a tooltip left over from an earlier hover when the
// current hover turns out to have nothing to show
func (c *Controller) hideIfCurrent(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started && c.token == token {
		c.hideLocked()
	}
}

func (c *Controller) onMove(p placement.Point) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.visible {
		return
	}
	c.placeLocked(p)
}

func (c *Controller) placeLocked(p placement.Point) {
	c.surface.MoveTo(placement.Place(p, c.surface.Size(), c.surface.Viewport()))
}

func (c *Controller) hideLocked() {
	if c.removeMove != nil {
		c.removeMove()
		c.removeMove = nil
	}
	if !c.visible && c.html == "" {
		return
	}
	c.html = ""
	c.visible = false
	c.surface.SetContent("")
	c.surface.SetVisible(false)
}
