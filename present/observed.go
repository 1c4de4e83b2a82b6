package present

import "sync"

// observed is a value cell with a dirty flag. Writers set it from any
// goroutine; the consumer drains pending changes with take.
type observed[T any] struct {
	mu    sync.Mutex
	value T
	dirty bool
}

func (o *observed[T]) set(v T) {
	o.mu.Lock()
	o.value = v
	o.dirty = true
	o.mu.Unlock()
}

// take returns the value and whether it changed since the last take,
// clearing the dirty flag.
func (o *observed[T]) take() (T, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	dirty := o.dirty
	o.dirty = false
	return o.value, dirty
}
