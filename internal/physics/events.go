package physics

// EventKind classifies a change in the set of touching pairs.
type EventKind int

const (
	CollisionEnter EventKind = iota
	CollisionExit
	TriggerEnter
	TriggerExit
)

func (k EventKind) String() string {
	switch k {
	case CollisionEnter:
		return "collision_enter"
	case CollisionExit:
		return "collision_exit"
	case TriggerEnter:
		return "trigger_enter"
	case TriggerExit:
		return "trigger_exit"
	}
	return "unknown"
}

// CollisionEvent reports that A and B started or stopped touching. A is the
// body registered first. Enter events carry the first contact seen for the
// pair during the step; exit events carry the contact from the last step the
// pair touched.
type CollisionEvent struct {
	Kind    EventKind
	A, B    Handle
	Contact Contact
}

type pairKey struct {
	a, b Handle
}

type pairState struct {
	trigger bool
	contact Contact
}

// pairTracker diffs the touching pairs of consecutive steps.
type pairTracker struct {
	active      map[pairKey]pairState // pairs from the previous step
	current     map[pairKey]pairState // pairs this step
	activeOrder []pairKey
	order       []pairKey
}

func newPairTracker() pairTracker {
	return pairTracker{
		active:  make(map[pairKey]pairState),
		current: make(map[pairKey]pairState),
	}
}

func (t *pairTracker) record(a, b Handle, trigger bool, c Contact) {
	k := pairKey{a, b}
	if _, ok := t.current[k]; ok {
		return
	}
	t.current[k] = pairState{trigger: trigger, contact: c}
	t.order = append(t.order, k)
}

// flush appends enter and exit events to out and swaps the buffers.
func (t *pairTracker) flush(out []CollisionEvent) []CollisionEvent {
	for _, k := range t.order {
		if _, ok := t.active[k]; ok {
			continue
		}
		st := t.current[k]
		kind := CollisionEnter
		if st.trigger {
			kind = TriggerEnter
		}
		out = append(out, CollisionEvent{Kind: kind, A: k.a, B: k.b, Contact: st.contact})
	}
	for _, k := range t.activeOrder {
		if _, ok := t.current[k]; ok {
			continue
		}
		st := t.active[k]
		kind := CollisionExit
		if st.trigger {
			kind = TriggerExit
		}
		out = append(out, CollisionEvent{Kind: kind, A: k.a, B: k.b, Contact: st.contact})
	}

	t.active, t.current = t.current, t.active
	t.activeOrder, t.order = t.order, t.activeOrder[:0]
	clear(t.current)
	return out
}

// forget drops every pair involving h and appends exit events for the pairs
// that were active to out.
func (t *pairTracker) forget(h Handle, out []CollisionEvent) []CollisionEvent {
	for _, k := range t.activeOrder {
		if k.a != h && k.b != h {
			continue
		}
		st := t.active[k]
		kind := CollisionExit
		if st.trigger {
			kind = TriggerExit
		}
		out = append(out, CollisionEvent{Kind: kind, A: k.a, B: k.b, Contact: st.contact})
	}
	t.activeOrder = dropPairs(t.activeOrder, t.active, h)
	t.order = dropPairs(t.order, t.current, h)
	return out
}

func (t *pairTracker) reset() {
	clear(t.active)
	clear(t.current)
	t.activeOrder = t.activeOrder[:0]
	t.order = t.order[:0]
}

func (t *pairTracker) touching(h Handle) int {
	n := 0
	for _, k := range t.activeOrder {
		if k.a == h || k.b == h {
			n++
		}
	}
	return n
}

func dropPairs(order []pairKey, set map[pairKey]pairState, h Handle) []pairKey {
	kept := order[:0]
	for _, k := range order {
		if k.a == h || k.b == h {
			delete(set, k)
			continue
		}
		kept = append(kept, k)
	}
	return kept
}
