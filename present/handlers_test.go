package present

import (
	"sync"
	"testing"
	"time"

	"github.com/gogpu/vg"
)

func TestHandlersDispatch(t *testing.T) {
	h := NewHandlers()
	var got []CursorEvent
	h.OnCursor(func(e CursorEvent) { got = append(got, e) })

	h.dispatchCursor(CursorEvent{Position: vg.Pt(3, 4)})
	if len(got) != 1 || got[0].Position != vg.Pt(3, 4) {
		t.Fatalf("dispatch = %v, want one event at (3,4)", got)
	}
}

func TestHandlersUnsubscribe(t *testing.T) {
	h := NewHandlers()
	calls := 0
	id := h.OnTick(func(time.Duration) { calls++ })

	h.dispatchTick(time.Millisecond)
	h.Unsubscribe(id)
	h.dispatchTick(time.Millisecond)

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestHandlersUnsubscribeUnknown(t *testing.T) {
	h := NewHandlers()
	h.Unsubscribe(Subscription(99))
}

func TestHandlersMultipleSubscribers(t *testing.T) {
	h := NewHandlers()
	var a, b int
	h.OnKey(func(KeyEvent) { a++ })
	h.OnKey(func(KeyEvent) { b++ })

	h.dispatchKey(KeyEvent{Key: 1, Pressed: true})
	if a != 1 || b != 1 {
		t.Errorf("a,b = %d,%d, want 1,1", a, b)
	}
}

func TestHandlersConcurrentSubscribe(t *testing.T) {
	h := NewHandlers()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				id := h.OnResize(func(ResizeEvent) {})
				h.dispatchResize(ResizeEvent{Size: vg.Pt(1, 1), PixelRatio: 1})
				h.Unsubscribe(id)
			}
		}()
	}
	wg.Wait()
}

func TestObservedTake(t *testing.T) {
	var cell observed[vg.Point]

	if _, dirty := cell.take(); dirty {
		t.Error("fresh cell reported dirty")
	}

	cell.set(vg.Pt(10, 20))
	v, dirty := cell.take()
	if !dirty || v != vg.Pt(10, 20) {
		t.Errorf("take = %v, %v, want (10,20), true", v, dirty)
	}

	if _, dirty := cell.take(); dirty {
		t.Error("second take reported dirty")
	}

	cell.set(vg.Pt(1, 1))
	cell.set(vg.Pt(2, 2))
	v, dirty = cell.take()
	if !dirty || v != vg.Pt(2, 2) {
		t.Errorf("take after two sets = %v, want latest (2,2)", v)
	}
}
