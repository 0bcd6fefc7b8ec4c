// Package editor is the flyer layout editor state machine: it owns the
// current scene, the undo/redo history, the selection and global-edit
// state, and the text formatting bridge, and routes every mutation through
// a single commit path that snapshots history and notifies the host.
package editor

import (
	"errors"

	"github.com/paceup/paceup/backend-go/internal/article"
	"github.com/paceup/paceup/backend-go/internal/element"
	"github.com/paceup/paceup/backend-go/internal/geometry"
	"github.com/paceup/paceup/backend-go/internal/history"
	"github.com/paceup/paceup/backend-go/internal/richtext"
	"github.com/paceup/paceup/backend-go/internal/scene"
	"github.com/paceup/paceup/backend-go/internal/typeid"
)

// ErrNoTarget is returned when a property edit arrives with no element
// selected and global mode off. The host UI is expected to disable the
// property controls in this state, so hitting this is a contract signal,
// not a failure.
var ErrNoTarget = errors.New("no selected element and global mode inactive")

// Arrow-key nudge step in page pixels.
const (
	nudgeStep     = 1.0
	nudgeStepFast = 10.0
)

// ChangeFunc receives the full, current ordered element array after every
// committed mutation. Elements are plain serializable values; the host
// persists them as the article's layout JSON.
type ChangeFunc func([]element.Element)

// Editor edits one flyer at a time. All methods are synchronous and must
// be called from a single goroutine (the UI event loop).
type Editor struct {
	articleID string
	scene     scene.Scene
	hist      history.History
	bridge    richtext.Bridge

	selectedID string
	globalMode bool

	onChange ChangeFunc
}

// New creates an editor with an empty scene. onChange may be nil.
func New(onChange ChangeFunc) *Editor {
	return &Editor{onChange: onChange}
}

// LoadArticle switches the editor to a new article. A saved non-empty
// layout is used verbatim as the initial scene; otherwise the scene is
// derived from the article's facets. History, selection, global mode, and
// text focus tracking are all discarded unconditionally.
func (e *Editor) LoadArticle(a article.Article, saved []element.Element) {
	e.articleID = a.ID
	if len(saved) > 0 {
		e.scene = scene.New(saved)
	} else {
		e.scene = scene.FromArticle(a)
	}
	e.hist.Reset()
	e.bridge.Reset()
	e.selectedID = ""
	e.globalMode = false
}

// ArticleID returns the id of the article being edited.
func (e *Editor) ArticleID() string { return e.articleID }

// Elements returns the current ordered element array.
func (e *Editor) Elements() []element.Element { return e.scene.Elements() }

// Scene returns the current scene value.
func (e *Editor) Scene() scene.Scene { return e.scene }

// Bridge exposes the text formatting bridge to the host bindings.
func (e *Editor) Bridge() *richtext.Bridge { return &e.bridge }

// commit installs next as the current scene. When record is true the
// pre-mutation scene is pushed onto history first; the undo/redo path
// passes record=false so restoration is never treated as a new edit.
// Selection referencing an element that no longer exists is cleared, and
// the host is notified with the new element array.
func (e *Editor) commit(next scene.Scene, record bool) {
	if record {
		e.hist.Record(e.scene)
	}
	e.scene = next

	if e.selectedID != "" {
		if _, ok := e.scene.Find(e.selectedID); !ok {
			e.selectedID = ""
		}
	}
	if focused := e.bridge.FocusedID(); focused != "" {
		if _, ok := e.scene.Find(focused); !ok {
			e.bridge.Forget(focused)
		}
	}

	if e.onChange != nil {
		e.onChange(e.scene.Elements())
	}
}

// --- Selection & global mode ---

// Select marks the element as the single selected one. Unknown ids clear
// the selection (a click on stale chrome must not leave a dangling id).
func (e *Editor) Select(id string) {
	if _, ok := e.scene.Find(id); !ok {
		e.selectedID = ""
		return
	}
	e.selectedID = id
}

// ClearSelection drops the selection.
func (e *Editor) ClearSelection() { e.selectedID = "" }

// SelectedID returns the selected element id, or "".
func (e *Editor) SelectedID() string { return e.selectedID }

// SetGlobalMode toggles the explicit bulk-edit opt-in. Bulk edits can
// touch every element at once, so they are never the default behavior.
func (e *Editor) SetGlobalMode(on bool) { e.globalMode = on }

// GlobalMode reports whether bulk-edit mode is active.
func (e *Editor) GlobalMode() bool { return e.globalMode }

// --- Property routing ---

// ApplyProperty routes a property panel edit. With a selection it applies
// to that one element; otherwise, in global mode, to every element whose
// type supports the property. Unsupported properties and rejected values
// leave elements untouched and are never failed; an edit that writes
// nothing commits nothing, so it cannot grow history or clear the redo
// stack. With neither target the edit is rejected with ErrNoTarget.
func (e *Editor) ApplyProperty(p element.Property, v any) error {
	if e.selectedID != "" {
		el, ok := e.scene.Find(e.selectedID)
		if !ok {
			e.selectedID = ""
			return ErrNoTarget
		}
		applied, changed := element.ApplyProperty(el, p, v)
		if !changed {
			return nil
		}
		e.commit(e.scene.Update(el.ID, applied), true)
		return nil
	}

	if e.globalMode {
		next := e.scene
		touched := false
		for _, el := range e.scene.Elements() {
			applied, changed := element.ApplyProperty(el, p, v)
			if !changed {
				continue
			}
			next = next.Update(el.ID, applied)
			touched = true
		}
		if touched {
			e.commit(next, true)
		}
		return nil
	}

	return ErrNoTarget
}

// --- Element mutations ---

// UpdateElement merges a partial JSON patch into one element. No-op if the
// id is absent or the patch is malformed (stale callbacks must not fail).
func (e *Editor) UpdateElement(id string, patch []byte) {
	el, ok := e.scene.Find(id)
	if !ok {
		return
	}
	merged, err := element.ApplyPatch(el, patch)
	if err != nil {
		return
	}
	e.commit(e.scene.Update(id, merged), true)
}

// ReplaceElement swaps in a fully-built element value by id.
func (e *Editor) ReplaceElement(el element.Element) {
	if _, ok := e.scene.Find(el.ID); !ok {
		return
	}
	e.commit(e.scene.Update(el.ID, el), true)
}

// DeleteElement removes an element. Selection and text focus tracking for
// the deleted id are cleared by the commit path.
func (e *Editor) DeleteElement(id string) {
	if _, ok := e.scene.Find(id); !ok {
		return
	}
	e.commit(e.scene.Delete(id), true)
}

// AddElement builds a default element literal of the given type with a
// fresh id and a zIndex above all existing content, appends it, and
// selects it. Returns the created element.
func (e *Editor) AddElement(t element.Type) element.Element {
	el := defaultElement(t)
	el.ID = typeid.NewElementID()
	el.ZIndex = e.scene.MaxZ() + 1
	e.commit(e.scene.Add(el), true)
	e.selectedID = el.ID
	return el
}

// ReorderByZ moves sourceID immediately before targetID in the z-order
// and densely renumbers all zIndex values.
func (e *Editor) ReorderByZ(sourceID, targetID string) {
	if sourceID == targetID {
		return
	}
	if _, ok := e.scene.Find(sourceID); !ok {
		return
	}
	if _, ok := e.scene.Find(targetID); !ok {
		return
	}
	e.commit(e.scene.ReorderByZ(sourceID, targetID), true)
}

// BringToFront raises the element above everything else.
func (e *Editor) BringToFront(id string) {
	if _, ok := e.scene.Find(id); !ok {
		return
	}
	e.commit(e.scene.BringToFront(id), true)
}

// SendToBack lowers the element below everything else.
func (e *Editor) SendToBack(id string) {
	if _, ok := e.scene.Find(id); !ok {
		return
	}
	e.commit(e.scene.SendToBack(id), true)
}

// --- Geometry adapter fold-in ---

// DragStop folds a drag-stop report from the interaction layer into the
// element's geometry. Coordinates arrive already clamped to page bounds.
// Locked elements are skipped even if the interaction layer lets a drag
// through.
func (e *Editor) DragStop(id string, x, y float64) {
	el, ok := e.scene.Find(id)
	if !ok || el.Locked {
		return
	}
	el.X = x
	el.Y = y
	e.commit(e.scene.Update(id, el), true)
}

// ResizeStop folds a resize-stop report into the element's geometry.
func (e *Editor) ResizeStop(id string, x, y, width, height float64) {
	el, ok := e.scene.Find(id)
	if !ok || el.Locked {
		return
	}
	el.X = x
	el.Y = y
	el.Width = width
	el.Height = height
	e.commit(e.scene.Update(id, el), true)
}

// Nudge moves an element by arrow key: one page pixel per press, ten with
// the modifier held. It goes through the same commit path as dragging so
// nudges participate in history.
func (e *Editor) Nudge(id string, dx, dy float64, fast bool) {
	el, ok := e.scene.Find(id)
	if !ok || el.Locked {
		return
	}
	step := nudgeStep
	if fast {
		step = nudgeStepFast
	}
	el.X += dx * step
	el.Y += dy * step
	e.commit(e.scene.Update(id, el), true)
}

// --- History ---

// Undo restores the previous snapshot. The restoration commits with
// recording suppressed so undoing can never grow the past stack.
func (e *Editor) Undo() bool {
	restored, ok := e.hist.Undo(e.scene)
	if !ok {
		return false
	}
	e.commit(restored, false)
	return true
}

// Redo restores the next snapshot, symmetric to Undo.
func (e *Editor) Redo() bool {
	restored, ok := e.hist.Redo(e.scene)
	if !ok {
		return false
	}
	e.commit(restored, false)
	return true
}

// UndoShortcut is the keyboard binding entry point. While the caret is
// inside a rich-text element the browser's native text-undo owns the
// keystroke, so the scene history stays out of the way.
func (e *Editor) UndoShortcut() bool {
	if e.bridge.HasFocus() {
		return false
	}
	return e.Undo()
}

// RedoShortcut mirrors UndoShortcut.
func (e *Editor) RedoShortcut() bool {
	if e.bridge.HasFocus() {
		return false
	}
	return e.Redo()
}

// CanUndo reports whether undo is available.
func (e *Editor) CanUndo() bool { return e.hist.CanUndo() }

// CanRedo reports whether redo is available.
func (e *Editor) CanRedo() bool { return e.hist.CanRedo() }

// UndoDepth returns the past stack size (exposed for the host UI).
func (e *Editor) UndoDepth() int { return e.hist.UndoDepth() }

// RedoDepth returns the future stack size.
func (e *Editor) RedoDepth() int { return e.hist.RedoDepth() }

// --- Text formatting ---

// Format applies a formatting command through the bridge, restoring the
// retained selection range first. Failures degrade to a no-op.
func (e *Editor) Format(cmd richtext.Command, ex richtext.Executor) bool {
	return e.bridge.Apply(cmd, ex)
}

// --- Queries ---

// HitTest returns the id of the topmost visible element containing the
// point, honoring rotation, or "" when nothing is hit.
func (e *Editor) HitTest(x, y float64) string {
	order := e.scene.PaintOrder()
	for i := len(order) - 1; i >= 0; i-- {
		el := order[i]
		r := geometry.Rect{X: el.X, Y: el.Y, Width: el.Width, Height: el.Height}
		if geometry.RotatedContains(r, el.Rotation, x, y) {
			return el.ID
		}
	}
	return ""
}

// SelectionBounds returns the axis-aligned bounds of the selected element
// (rotation included), or an empty rect when nothing is selected.
func (e *Editor) SelectionBounds() geometry.Rect {
	el, ok := e.scene.Find(e.selectedID)
	if !ok {
		return geometry.Rect{}
	}
	r := geometry.Rect{X: el.X, Y: el.Y, Width: el.Width, Height: el.Height}
	return geometry.RotatedBounds(r, el.Rotation)
}
