package xaux

import "testing"

func TestRegisterAndFindIcon(t *testing.T) {
	m := New()
	icon := &Icon{Client: 1, IconWindow: 100}
	m.RegisterIcon(icon)

	got, ok := m.FindIconFromClient(1)
	if !ok || got != icon {
		t.Fatalf("FindIconFromClient(1) = %+v, %v", got, ok)
	}
	got, ok = m.FindIconFromIconWindow(100)
	if !ok || got != icon {
		t.Fatalf("FindIconFromIconWindow(100) = %+v, %v", got, ok)
	}

	m.UnregisterIcon(icon)
	if _, ok := m.FindIconFromClient(1); ok {
		t.Fatalf("expected icon to be gone after UnregisterIcon")
	}
	if _, ok := m.FindIconFromIconWindow(100); ok {
		t.Fatalf("expected icon window mapping to be gone after UnregisterIcon")
	}
}

func TestHasEffectIsBitwiseAnd(t *testing.T) {
	m := New()
	if m.HasEffect(1, ExpectMap) {
		t.Fatalf("expected no effects on a fresh window")
	}
	m.SetEffect(1, ExpectMap)
	if !m.HasEffect(1, ExpectMap) {
		t.Fatalf("expected ExpectMap to be set")
	}
	if m.HasEffect(1, ExpectUnmap) {
		t.Fatalf("expected ExpectUnmap to still be unset")
	}
}

func TestClearEffectIsAndNot(t *testing.T) {
	m := New()
	m.SetEffect(1, ExpectMap)
	m.SetEffect(1, ExpectUnmap)

	m.ClearEffect(1, ExpectMap)
	if m.HasEffect(1, ExpectMap) {
		t.Fatalf("expected ExpectMap cleared")
	}
	if !m.HasEffect(1, ExpectUnmap) {
		t.Fatalf("expected ExpectUnmap to survive clearing ExpectMap")
	}
}

func TestRemoveAllEffects(t *testing.T) {
	m := New()
	m.SetEffect(1, ExpectMap|ExpectUnmap)
	m.RemoveAllEffects(1)
	if m.HasEffect(1, ExpectMap) || m.HasEffect(1, ExpectUnmap) {
		t.Fatalf("expected RemoveAllEffects to clear every flag")
	}
}

func TestMoveResizeIsSingleProcessWide(t *testing.T) {
	m := New()
	m.EnterMove(1, 100, 0, 0)
	m.EnterResize(2, 200, 0, 0) // no-op: a move is already in progress

	cur, ok := m.Current()
	if !ok || cur.Client != 1 || cur.Kind != KindMove {
		t.Fatalf("expected the first EnterMove to win, got %+v ok=%v", cur, ok)
	}

	dx, dy := m.UpdatePointer(10, 5)
	if dx != 10 || dy != 5 {
		t.Fatalf("UpdatePointer delta = (%d,%d), want (10,5)", dx, dy)
	}

	m.ExitMoveResize()
	if _, ok := m.Current(); ok {
		t.Fatalf("expected no in-progress gesture after ExitMoveResize")
	}
	if dx, dy := m.UpdatePointer(1, 1); dx != 0 || dy != 0 {
		t.Fatalf("expected UpdatePointer to return (0,0) with no gesture in progress, got (%d,%d)", dx, dy)
	}
}
