package physics

import "strconv"

// Handle identifies a body registered in a World. Removing the body
// invalidates the handle; a later body reusing the slot gets a new
// generation, so stale handles never alias it. The zero Handle is never
// issued.
type Handle uint64

const handleIndexBits = 32

func makeHandle(index int, gen uint32) Handle {
	return Handle(uint64(gen)<<handleIndexBits | uint64(uint32(index+1)))
}

// index is the slot position, -1 for the zero handle.
func (h Handle) index() int {
	return int(uint32(h)) - 1
}

func (h Handle) generation() uint32 {
	return uint32(uint64(h) >> handleIndexBits)
}

func (h Handle) Valid() bool {
	return h != 0
}

func (h Handle) String() string {
	return strconv.FormatUint(uint64(h), 10)
}

type slot struct {
	body *Body
	gen  uint32
}

// arena stores bodies in reusable slots. order keeps live handles in
// registration order, which is the pair enumeration order.
type arena struct {
	slots []slot
	free  []int
	order []Handle
	index map[*Body]Handle
}

func newArena() arena {
	return arena{index: make(map[*Body]Handle)}
}

func (a *arena) add(b *Body) Handle {
	if h, ok := a.index[b]; ok {
		return h
	}
	var i int
	if n := len(a.free); n > 0 {
		i = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		i = len(a.slots)
		a.slots = append(a.slots, slot{})
	}
	a.slots[i].body = b
	h := makeHandle(i, a.slots[i].gen)
	a.order = append(a.order, h)
	a.index[b] = h
	return h
}

func (a *arena) get(h Handle) (*Body, bool) {
	i := h.index()
	if i < 0 || i >= len(a.slots) {
		return nil, false
	}
	s := a.slots[i]
	if s.body == nil || s.gen != h.generation() {
		return nil, false
	}
	return s.body, true
}

func (a *arena) remove(h Handle) bool {
	b, ok := a.get(h)
	if !ok {
		return false
	}
	i := h.index()
	a.slots[i].body = nil
	a.slots[i].gen++
	a.free = append(a.free, i)
	delete(a.index, b)
	for j, o := range a.order {
		if o == h {
			a.order = append(a.order[:j], a.order[j+1:]...)
			break
		}
	}
	return true
}

func (a *arena) clear() {
	for i := range a.slots {
		if a.slots[i].body != nil {
			a.slots[i].body = nil
			a.slots[i].gen++
			a.free = append(a.free, i)
		}
	}
	a.order = a.order[:0]
	clear(a.index)
}
