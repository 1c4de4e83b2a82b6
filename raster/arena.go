package raster

import (
	"sync"

	"github.com/gogpu/vg"
)

// arena stores drawable objects in generation-checked slots. A handle
// carries its slot index and the generation it was issued for; removing
// an object bumps the generation, which turns every outstanding handle
// for that slot into a no-op instead of aliasing a later occupant.
type arena struct {
	mu    sync.RWMutex
	slots []slot
	free  []int
	order []int
}

type slot struct {
	gen  uint64
	live bool
	obj  *objectState
}

// objectState is the shared storage a handle points at. It has its own
// lock so handle mutation does not contend with adds and removes.
type objectState struct {
	mu        sync.RWMutex
	content   vg.Rasterizable
	transform vg.Matrix
	depth     int
}

func (o *objectState) read() (vg.Rasterizable, vg.Matrix) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.content, o.transform
}

func (a *arena) add(c vg.Content) *Object {
	state := &objectState{
		content:   c.Content,
		transform: c.Transform,
		depth:     c.Depth,
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	var index int
	if n := len(a.free); n > 0 {
		index = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		index = len(a.slots)
		a.slots = append(a.slots, slot{})
	}
	s := &a.slots[index]
	s.live = true
	s.obj = state
	a.order = append(a.order, index)
	return &Object{arena: a, index: index, gen: s.gen}
}

func (a *arena) remove(index int, gen uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if index < 0 || index >= len(a.slots) {
		return
	}
	s := &a.slots[index]
	if !s.live || s.gen != gen {
		return
	}
	s.live = false
	s.gen++
	s.obj = nil
	a.free = append(a.free, index)
	for i, idx := range a.order {
		if idx == index {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
}

// get resolves a handle to its storage, or nil when the handle is stale.
func (a *arena) get(index int, gen uint64) *objectState {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if index < 0 || index >= len(a.slots) {
		return nil
	}
	s := &a.slots[index]
	if !s.live || s.gen != gen {
		return nil
	}
	return s.obj
}

// snapshot returns the live objects in insertion order. The draw pass
// iterates the snapshot so concurrent adds and removes do not shift
// the list under it.
func (a *arena) snapshot() []*objectState {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]*objectState, 0, len(a.order))
	for _, idx := range a.order {
		if s := a.slots[idx]; s.live {
			out = append(out, s.obj)
		}
	}
	return out
}

// Object is a handle into a frame's object arena. It implements
// vg.Object; all methods on a stale handle are no-ops (reads return
// zero values).
type Object struct {
	arena *arena
	index int
	gen   uint64
}

var _ vg.Object = (*Object)(nil)

// Transform returns the object's current transform.
func (h *Object) Transform() vg.Matrix {
	o := h.arena.get(h.index, h.gen)
	if o == nil {
		return vg.Identity()
	}
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.transform
}

// SetTransform replaces the object's transform.
func (h *Object) SetTransform(m vg.Matrix) {
	o := h.arena.get(h.index, h.gen)
	if o == nil {
		return
	}
	o.mu.Lock()
	o.transform = m
	o.mu.Unlock()
}

// ApplyTransform concatenates m onto the current transform.
func (h *Object) ApplyTransform(m vg.Matrix) {
	o := h.arena.get(h.index, h.gen)
	if o == nil {
		return
	}
	o.mu.Lock()
	o.transform = o.transform.Multiply(m)
	o.mu.Unlock()
}

// Update replaces the object's drawable content.
func (h *Object) Update(r vg.Rasterizable) {
	o := h.arena.get(h.index, h.gen)
	if o == nil {
		return
	}
	o.mu.Lock()
	o.content = r
	o.mu.Unlock()
}

// Depth returns the object's depth value.
func (h *Object) Depth() int {
	o := h.arena.get(h.index, h.gen)
	if o == nil {
		return 0
	}
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.depth
}

// SetDepth replaces the object's depth value.
func (h *Object) SetDepth(depth int) {
	o := h.arena.get(h.index, h.gen)
	if o == nil {
		return
	}
	o.mu.Lock()
	o.depth = depth
	o.mu.Unlock()
}
