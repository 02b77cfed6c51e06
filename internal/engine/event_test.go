package engine

import "testing"

func TestEventInvokesInOrder(t *testing.T) {
	var e Event
	var calls []int
	e.AddListener(func() { calls = append(calls, 1) })
	e.AddListener(func() { calls = append(calls, 2) })
	e.AddListener(nil)

	e.Invoke()

	if len(calls) != 2 || calls[0] != 1 || calls[1] != 2 {
		t.Errorf("Expected [1 2], got %v", calls)
	}
	if e.GetListenerCount() != 2 {
		t.Errorf("Expected 2 listeners, got %d", e.GetListenerCount())
	}
}

func TestEventRemoveListener(t *testing.T) {
	var e Event
	count := 0
	id := e.AddListener(func() { count++ })

	if !e.RemoveListener(id) {
		t.Error("RemoveListener should succeed for a live id")
	}
	if e.RemoveListener(id) {
		t.Error("RemoveListener should fail the second time")
	}

	e.Invoke()
	if count != 0 {
		t.Errorf("Removed listener ran %d times", count)
	}
}

func TestEventWithArg(t *testing.T) {
	var e EventWithArg[string]
	var got []string
	id := e.AddListener(func(s string) { got = append(got, "a:"+s) })
	e.AddListener(func(s string) { got = append(got, "b:"+s) })

	e.Invoke("x")
	e.RemoveListener(id)
	e.Invoke("y")

	want := []string{"a:x", "b:x", "b:y"}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Call %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestEventListenerCanUnsubscribeWhileFiring(t *testing.T) {
	var e EventWithArg[int]
	calls := 0
	var id ListenerID
	id = e.AddListener(func(int) {
		calls++
		e.RemoveListener(id)
	})
	e.AddListener(func(int) { calls++ })

	e.Invoke(1)
	e.Invoke(2)

	if calls != 3 {
		t.Errorf("Expected 3 calls, got %d", calls)
	}
}

func TestEventRemoveAllListeners(t *testing.T) {
	var e EventWithArg[int]
	e.AddListener(func(int) {})
	e.RemoveAllListeners()
	if e.GetListenerCount() != 0 {
		t.Errorf("Expected 0 listeners, got %d", e.GetListenerCount())
	}
}
