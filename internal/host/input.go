package host

import (
	"sync"

	"github.com/KirkDiggler/rpg-tooltips/internal/pkg/placement"
)

// KeyEscape is the key name delivered for the escape key
const KeyEscape = "Escape"

// listeners is an ordered set of callbacks with idempotent removal
type listeners[T any] struct {
	mu      sync.Mutex
	next    int
	entries []listener[T]
}

type listener[T any] struct {
	id int
	fn func(T)
}

func (l *listeners[T]) add(fn func(T)) func() {
	l.mu.Lock()
	l.next++
	id := l.next
	l.entries = append(l.entries, listener[T]{id: id, fn: fn})
	l.mu.Unlock()

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		for i, e := range l.entries {
			if e.id == id {
				l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
				return
			}
		}
	}
}

func (l *listeners[T]) dispatch(v T) {
	l.mu.Lock()
	entries := append([]listener[T](nil), l.entries...)
	l.mu.Unlock()

	for _, e := range entries {
		e.fn(v)
	}
}

func (l *listeners[T]) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// PointerHub fans global pointer movement out to listeners
type PointerHub struct {
	listeners listeners[placement.Point]

	mu   sync.Mutex
	last placement.Point
	seen bool
}

// NewPointerHub creates a pointer hub
func NewPointerHub() *PointerHub {
	return &PointerHub{}
}

// AddMoveListener registers fn for every pointer move and returns its
// remover
func (h *PointerHub) AddMoveListener(fn func(placement.Point)) (remove func()) {
	return h.listeners.add(fn)
}

// Move records the pointer position and notifies listeners
func (h *PointerHub) Move(p placement.Point) {
	h.mu.Lock()
	h.last = p
	h.seen = true
	h.mu.Unlock()

	h.listeners.dispatch(p)
}

// Last returns the most recent pointer position
func (h *PointerHub) Last() (placement.Point, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.last, h.seen
}

// ListenerCount returns the number of registered move listeners
func (h *PointerHub) ListenerCount() int {
	return h.listeners.count()
}

// Keyboard fans global key presses out to listeners
type Keyboard struct {
	listeners listeners[string]
}

// NewKeyboard creates a keyboard hub
func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// AddKeyListener registers fn for every key press and returns its remover
func (k *Keyboard) AddKeyListener(fn func(key string)) (remove func()) {
	return k.listeners.add(fn)
}

// Press notifies listeners of a key press
func (k *Keyboard) Press(key string) {
	k.listeners.dispatch(key)
}

// ListenerCount returns the number of registered key listeners
func (k *Keyboard) ListenerCount() int {
	return k.listeners.count()
}
