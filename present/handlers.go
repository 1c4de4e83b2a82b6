package present

import (
	"sync"
	"time"

	"github.com/gogpu/vg"
)

// CursorEvent reports pointer movement in logical window coordinates.
type CursorEvent struct {
	Position vg.Point
}

// ButtonEvent reports a mouse button press or release.
type ButtonEvent struct {
	Button   int
	Pressed  bool
	Position vg.Point
}

// KeyEvent reports a keyboard key press or release.
type KeyEvent struct {
	Key     int
	Pressed bool
}

// ResizeEvent reports a new framebuffer size in device pixels.
type ResizeEvent struct {
	Size       vg.Point
	PixelRatio float64
}

// Subscription identifies a registered handler for Unsubscribe.
type Subscription uint64

// Handlers is the event registry for one window. It replaces ambient
// per-window state with an explicit object: the loop delivers events to
// whatever is subscribed at dispatch time. All methods are safe for
// concurrent use.
type Handlers struct {
	mu     sync.RWMutex
	next   Subscription
	cursor map[Subscription]func(CursorEvent)
	button map[Subscription]func(ButtonEvent)
	key    map[Subscription]func(KeyEvent)
	resize map[Subscription]func(ResizeEvent)
	tick   map[Subscription]func(elapsed time.Duration)
}

// NewHandlers creates an empty registry.
func NewHandlers() *Handlers {
	return &Handlers{
		cursor: make(map[Subscription]func(CursorEvent)),
		button: make(map[Subscription]func(ButtonEvent)),
		key:    make(map[Subscription]func(KeyEvent)),
		resize: make(map[Subscription]func(ResizeEvent)),
		tick:   make(map[Subscription]func(time.Duration)),
	}
}

func (h *Handlers) id() Subscription {
	h.next++
	return h.next
}

// OnCursor subscribes to pointer movement.
func (h *Handlers) OnCursor(fn func(CursorEvent)) Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.id()
	h.cursor[id] = fn
	return id
}

// OnButton subscribes to mouse button events.
func (h *Handlers) OnButton(fn func(ButtonEvent)) Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.id()
	h.button[id] = fn
	return id
}

// OnKey subscribes to keyboard events.
func (h *Handlers) OnKey(fn func(KeyEvent)) Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.id()
	h.key[id] = fn
	return id
}

// OnResize subscribes to framebuffer size changes.
func (h *Handlers) OnResize(fn func(ResizeEvent)) Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.id()
	h.resize[id] = fn
	return id
}

// OnTick subscribes to the per-iteration tick with the elapsed time
// since the previous iteration.
func (h *Handlers) OnTick(fn func(elapsed time.Duration)) Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.id()
	h.tick[id] = fn
	return id
}

// Unsubscribe removes a handler. Unknown subscriptions are ignored.
func (h *Handlers) Unsubscribe(id Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.cursor, id)
	delete(h.button, id)
	delete(h.key, id)
	delete(h.resize, id)
	delete(h.tick, id)
}

func (h *Handlers) dispatchCursor(e CursorEvent) {
	h.mu.RLock()
	fns := make([]func(CursorEvent), 0, len(h.cursor))
	for _, fn := range h.cursor {
		fns = append(fns, fn)
	}
	h.mu.RUnlock()
	for _, fn := range fns {
		fn(e)
	}
}

func (h *Handlers) dispatchButton(e ButtonEvent) {
	h.mu.RLock()
	fns := make([]func(ButtonEvent), 0, len(h.button))
	for _, fn := range h.button {
		fns = append(fns, fn)
	}
	h.mu.RUnlock()
	for _, fn := range fns {
		fn(e)
	}
}

func (h *Handlers) dispatchKey(e KeyEvent) {
	h.mu.RLock()
	fns := make([]func(KeyEvent), 0, len(h.key))
	for _, fn := range h.key {
		fns = append(fns, fn)
	}
	h.mu.RUnlock()
	for _, fn := range fns {
		fn(e)
	}
}

func (h *Handlers) dispatchResize(e ResizeEvent) {
	h.mu.RLock()
	fns := make([]func(ResizeEvent), 0, len(h.resize))
	for _, fn := range h.resize {
		fns = append(fns, fn)
	}
	h.mu.RUnlock()
	for _, fn := range fns {
		fn(e)
	}
}

func (h *Handlers) dispatchTick(elapsed time.Duration) {
	h.mu.RLock()
	fns := make([]func(time.Duration), 0, len(h.tick))
	for _, fn := range h.tick {
		fns = append(fns, fn)
	}
	h.mu.RUnlock()
	for _, fn := range fns {
		fn(elapsed)
	}
}
