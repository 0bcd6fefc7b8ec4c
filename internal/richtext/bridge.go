// Package richtext tracks which element currently owns rich-text edit
// focus and preserves the text-selection range across focus loss.
// Formatting commands are selection-relative, and clicking any panel
// control blurs the text element and destroys its selection; the bridge
// re-focuses the tracked element and restores the retained range before
// every command so the formatting lands on the last focused text region.
package richtext

// Range is a cloneable capture of a text selection inside an editable
// element, expressed as child-index paths from the element root plus
// character offsets. It mirrors what a DOM Range resolves to, but carries
// no live references.
type Range struct {
	StartPath   []int `json:"startPath"`
	StartOffset int   `json:"startOffset"`
	EndPath     []int `json:"endPath"`
	EndOffset   int   `json:"endOffset"`
}

// Clone returns a copy sharing no state with the original.
func (r Range) Clone() Range {
	out := r
	out.StartPath = append([]int(nil), r.StartPath...)
	out.EndPath = append([]int(nil), r.EndPath...)
	return out
}

// Command is a formatting action issued from the detached panel.
type Command struct {
	Name  string `json:"name"`            // "bold", "italic", "insertUnorderedList", "foreColor", "createLink"
	Value string `json:"value,omitempty"` // color or URL for value-carrying commands
}

// Executor performs the environment-specific half of a formatting command.
// The wasm build implements it against the DOM; tests use fakes. Any error
// aborts the command without propagating: a stale range must degrade to a
// no-op, never crash the editor.
type Executor interface {
	Focus(elementID string) error
	RestoreRange(r Range) error
	Exec(cmd Command) error
}

// Bridge is the explicit focus/selection state passed to the formatting
// panel. At most one element holds rich-text focus at a time.
type Bridge struct {
	focusedID     string
	lastFocusedID string
	saved         *Range
}

// FocusGained records id as the element owning rich-text focus and drops
// any range retained for a previous element.
func (b *Bridge) FocusGained(id string) {
	if b.lastFocusedID != id {
		b.saved = nil
	}
	b.focusedID = id
	b.lastFocusedID = id
}

// FocusLost clears tracking only when the blurred element is the tracked
// one. The retained range survives the blur: that is the whole point.
func (b *Bridge) FocusLost(id string) {
	if b.focusedID == id {
		b.focusedID = ""
	}
}

// SelectionChanged clones and retains the selection range when it belongs
// to the focused element; selection changes elsewhere are ignored.
func (b *Bridge) SelectionChanged(id string, r Range) {
	if id != b.focusedID {
		return
	}
	cloned := r.Clone()
	b.saved = &cloned
}

// FocusedID returns the id of the element holding rich-text focus, or "".
func (b *Bridge) FocusedID() string { return b.focusedID }

// HasFocus reports whether any element holds rich-text focus. While true,
// keyboard undo/redo belongs to the native text-undo, not the scene
// history.
func (b *Bridge) HasFocus() bool { return b.focusedID != "" }

// TargetID returns the element a formatting command would apply to: the
// focused element, or the element the last range was retained for.
func (b *Bridge) TargetID() string {
	if b.focusedID != "" {
		return b.focusedID
	}
	if b.saved != nil {
		return b.lastFocusedID
	}
	return ""
}

// Apply re-focuses the target element, restores the retained range, then
// executes cmd. Returns false when there is no target or any executor step
// fails; failures are swallowed so the worst case is a missed format, not
// a crash.
func (b *Bridge) Apply(cmd Command, ex Executor) bool {
	target := b.TargetID()
	if target == "" || ex == nil {
		return false
	}
	if err := ex.Focus(target); err != nil {
		return false
	}
	if b.saved != nil {
		if err := ex.RestoreRange(*b.saved); err != nil {
			return false
		}
	}
	return ex.Exec(cmd) == nil
}

// Reset drops all tracking. Called when the edited article changes or the
// tracked element is deleted.
func (b *Bridge) Reset() {
	b.focusedID = ""
	b.lastFocusedID = ""
	b.saved = nil
}

// Forget drops tracking for one element only, used when that element is
// deleted from the scene.
func (b *Bridge) Forget(id string) {
	if b.focusedID == id {
		b.focusedID = ""
	}
	if b.lastFocusedID == id {
		b.saved = nil
		b.lastFocusedID = ""
	}
}
