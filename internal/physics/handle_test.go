package physics

import "testing"

func TestAddObjectReturnsStableHandles(t *testing.T) {
	w := NewWorld()
	a, b := NewBody(), NewBody()
	ha := w.AddObject(a)
	hb := w.AddObject(b)

	if !ha.Valid() || !hb.Valid() || ha == hb {
		t.Fatalf("Expected two distinct valid handles, got %v and %v", ha, hb)
	}
	if got, ok := w.Body(ha); !ok || got != a {
		t.Error("Handle should resolve to its body")
	}
	if again := w.AddObject(a); again != ha {
		t.Errorf("Adding twice should return the existing handle, got %v want %v", again, ha)
	}
	if w.Len() != 2 {
		t.Errorf("Expected 2 bodies, got %d", w.Len())
	}
	if w.AddObject(nil).Valid() {
		t.Error("nil body should not be registered")
	}
}

func TestRemoveObjectInvalidatesHandle(t *testing.T) {
	w := NewWorld()
	a := NewBody()
	ha := w.AddObject(a)

	if !w.RemoveObject(ha) {
		t.Fatal("RemoveObject should succeed")
	}
	if _, ok := w.Body(ha); ok {
		t.Error("Removed handle should not resolve")
	}
	if w.RemoveObject(ha) {
		t.Error("Removing twice should fail")
	}
	if _, ok := w.HandleOf(a); ok {
		t.Error("Removed body should have no handle")
	}

	b := NewBody()
	hb := w.AddObject(b)
	if hb.index() != ha.index() {
		t.Errorf("Expected slot reuse, got index %d want %d", hb.index(), ha.index())
	}
	if hb == ha {
		t.Error("Reused slot must carry a new generation")
	}
	if got, _ := w.Body(ha); got != nil {
		t.Error("Stale handle must not alias the new body")
	}
}

func TestObjectsKeepsRegistrationOrder(t *testing.T) {
	w := NewWorld()
	a, b, c := NewBody(), NewBody(), NewBody()
	w.AddObject(a)
	hb := w.AddObject(b)
	w.AddObject(c)
	w.RemoveObject(hb)
	d := NewBody()
	w.AddObject(d)

	got := w.Objects()
	want := []*Body{a, c, d}
	if len(got) != len(want) {
		t.Fatalf("Expected %d bodies, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Position %d holds the wrong body", i)
		}
	}

	got[0] = nil
	if w.Objects()[0] != a {
		t.Error("Objects should return a copy")
	}
	if len(w.Handles()) != 3 {
		t.Errorf("Expected 3 handles, got %d", len(w.Handles()))
	}
}

func TestRemoveBody(t *testing.T) {
	w := NewWorld()
	a := NewBody()
	w.AddObject(a)

	if !w.RemoveBody(a) {
		t.Error("RemoveBody should succeed for a registered body")
	}
	if w.RemoveBody(a) {
		t.Error("RemoveBody should fail for an unregistered body")
	}
}

func TestClearInvalidatesEverything(t *testing.T) {
	w := NewWorld()
	ha := w.AddObject(NewBody())
	hb := w.AddObject(NewBody())

	w.Clear()

	if w.Len() != 0 {
		t.Errorf("Expected empty world, got %d", w.Len())
	}
	for _, h := range []Handle{ha, hb} {
		if _, ok := w.Body(h); ok {
			t.Errorf("Handle %v should be invalid after Clear", h)
		}
	}
	if !w.AddObject(NewBody()).Valid() {
		t.Error("World should accept bodies after Clear")
	}
}

func TestZeroHandleIsInvalid(t *testing.T) {
	w := NewWorld()
	var h Handle
	if h.Valid() {
		t.Error("Zero handle should be invalid")
	}
	if _, ok := w.Body(h); ok {
		t.Error("Zero handle should not resolve")
	}
}
