package host

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-tooltips/internal/pkg/placement"
)

// Render hooks emitted by the host
const (
	HookRenderActorSheet    = "renderActorSheet"
	HookRenderItemDirectory = "renderItemDirectory"
	HookRenderCompendium    = "renderCompendium"
)

// Keys carried in RenderEvent.Data
const (
	DataActorID      = "actor_id"
	DataPackID       = "pack_id"
	DataDocumentName = "document_name"
)

// DocumentTypeItem marks rows that represent items
const DocumentTypeItem = "Item"

// Info identifies the running host
type Info struct {
	SystemID string
	Version  string
}

// HoverTarget receives pointer enter and leave for one row
type HoverTarget interface {
	OnEnter(ctx context.Context, pointer placement.Point)
	OnLeave()
}

// Row is one rendered list row. Bindings attach a hover target to the rows
// they handle.
type Row struct {
	DocumentID   string
	DocumentType string
	Label        string
	Detail       string

	mu     sync.Mutex
	target HoverTarget
}

// Attach sets the row's hover target, replacing any previous one
func (r *Row) Attach(t HoverTarget) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.target = t
}

// Target returns the attached hover target, or nil
func (r *Row) Target() HoverTarget {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.target
}

// RenderEvent announces a freshly rendered surface. App names the host
// application and Surface the rendered view within it.
type RenderEvent struct {
	App     string
	Surface string
	Rows    []*Row
	Data    map[string]string
}

// HookFunc handles a render event
type HookFunc func(ctx context.Context, ev *RenderEvent)

type hookEntry struct {
	id int
	fn HookFunc
}

// Hooks is a registry of named render hooks
type Hooks struct {
	mu       sync.Mutex
	next     int
	handlers map[string][]hookEntry
}

// NewHooks creates an empty hook registry
func NewHooks() *Hooks {
	return &Hooks{handlers: make(map[string][]hookEntry)}
}

// On registers fn for the named hook. The returned function removes it and
// is safe to call more than once.
func (h *Hooks) On(name string, fn HookFunc) (off func()) {
	h.mu.Lock()
	h.next++
	id := h.next
	h.handlers[name] = append(h.handlers[name], hookEntry{id: id, fn: fn})
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		entries := h.handlers[name]
		for i, e := range entries {
			if e.id == id {
				h.handlers[name] = append(entries[:i:i], entries[i+1:]...)
				return
			}
		}
	}
}

// Emit calls the handlers registered for name in registration order
func (h *Hooks) Emit(ctx context.Context, name string, ev *RenderEvent) {
	h.mu.Lock()
	entries := append([]hookEntry(nil), h.handlers[name]...)
	h.mu.Unlock()

	for _, e := range entries {
		e.fn(ctx, ev)
	}
}

// Count returns the number of handlers registered for a hook
func (h *Hooks) Count(name string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.handlers[name])
}
