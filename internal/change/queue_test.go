package change

import (
	"testing"

	"github.com/ashwm/ashwm/internal/desktop"
)

func TestQueueFIFOOrder(t *testing.T) {
	var q Queue
	q.Push(LocationChange(1, 0, 0))
	q.Push(LocationChange(2, 10, 0))
	q.Push(LocationChange(3, 20, 0))

	if q.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", q.Len())
	}

	first, ok := q.Pop()
	if !ok || first.Window != 1 {
		t.Fatalf("Pop() = %+v, want window 1", first)
	}
	if q.Len() != 2 {
		t.Fatalf("Len() after one Pop = %d, want 2", q.Len())
	}
}

func TestQueuePopEmpty(t *testing.T) {
	var q Queue
	if _, ok := q.Pop(); ok {
		t.Fatalf("expected Pop on an empty queue to report ok=false")
	}
}

func TestQueueDrainOrderAndReset(t *testing.T) {
	var q Queue
	q.Push(UnmapChange(1))
	q.Push(UnmapChange(2))

	got := q.Drain()
	if len(got) != 2 || got[0].Window != 1 || got[1].Window != 2 {
		t.Fatalf("Drain() = %+v, want windows [1 2] in order", got)
	}
	if q.Len() != 0 {
		t.Fatalf("expected queue to be empty after Drain, Len() = %d", q.Len())
	}
}

func TestChangeStringDoesNotPanic(t *testing.T) {
	changes := []Change{
		ClientDesktopChange(1, desktop.Zero, desktop.Zero),
		CurrentDesktopChange(0, 1),
		LayerChange(1, 2),
		FocusChangeEvent(0, false, 1, true),
		LocationChange(1, 0, 0),
		SizeChange(1, 10, 10),
		ScreenChange(1, Box{}),
		CPSModeChange(1, Max),
		ChildAddChange(1, 2),
		ChildRemoveChange(1, 2),
		UnmapChange(1),
		DestroyChange(1, desktop.Zero, 0),
	}
	for _, c := range changes {
		if c.String() == "" {
			t.Errorf("String() returned empty for %+v", c)
		}
	}
}
