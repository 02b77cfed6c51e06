package game

import (
	"physics2d/internal/engine"
	"physics2d/internal/world"
)

const maxUndoStack = 50

// spawnHistory remembers recently spawned objects so they can be undone
// newest first.
type spawnHistory struct {
	objects []*engine.GameObject
}

func (h *spawnHistory) push(g *engine.GameObject) {
	h.objects = append(h.objects, g)
	if len(h.objects) > maxUndoStack {
		h.objects = h.objects[len(h.objects)-maxUndoStack:]
	}
}

// pop destroys the newest object still alive. Objects already destroyed by
// other means are skipped. Returns false when nothing was left to undo.
func (h *spawnHistory) pop(w *world.World) bool {
	for len(h.objects) > 0 {
		last := h.objects[len(h.objects)-1]
		h.objects = h.objects[:len(h.objects)-1]
		if last.World == nil {
			continue
		}
		w.Destroy(last)
		return true
	}
	return false
}

func (h *spawnHistory) clear() {
	h.objects = h.objects[:0]
}

func (h *spawnHistory) len() int {
	return len(h.objects)
}
