// Package history implements a linear undo/redo stack over full scene
// snapshots. Memory is proportional to edits x scene size, a deliberate
// simplicity trade-off over structural diffing at the element counts a
// flyer targets (tens, not thousands).
package history

import "github.com/paceup/paceup/backend-go/internal/scene"

// History holds the past and future snapshot stacks for one flyer.
// The zero value is ready to use.
type History struct {
	past   []scene.Scene
	future []scene.Scene
}

// Record pushes the pre-mutation scene onto the past stack and clears the
// future stack. It must be called strictly before the mutation it precedes
// is committed, and never from the undo/redo path itself.
func (h *History) Record(prev scene.Scene) {
	h.past = append(h.past, prev)
	h.future = nil
}

// Undo pops the most recent past snapshot, pushes current onto the future
// stack, and returns the popped snapshot. Returns ok=false when there is
// nothing to undo.
func (h *History) Undo(current scene.Scene) (scene.Scene, bool) {
	if len(h.past) == 0 {
		return current, false
	}
	restored := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append(h.future, current)
	return restored, true
}

// Redo is symmetric to Undo, using the future stack.
func (h *History) Redo(current scene.Scene) (scene.Scene, bool) {
	if len(h.future) == 0 {
		return current, false
	}
	restored := h.future[len(h.future)-1]
	h.future = h.future[:len(h.future)-1]
	h.past = append(h.past, current)
	return restored, true
}

// CanUndo reports whether the past stack is non-empty.
func (h *History) CanUndo() bool { return len(h.past) > 0 }

// CanRedo reports whether the future stack is non-empty.
func (h *History) CanRedo() bool { return len(h.future) > 0 }

// UndoDepth returns the number of past snapshots.
func (h *History) UndoDepth() int { return len(h.past) }

// RedoDepth returns the number of future snapshots.
func (h *History) RedoDepth() int { return len(h.future) }

// Reset discards both stacks. Switching the edited article must call this
// unconditionally; there is no cross-article undo.
func (h *History) Reset() {
	h.past = nil
	h.future = nil
}
