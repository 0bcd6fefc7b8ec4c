//go:build js && wasm

package main

import (
	"errors"
	"fmt"
	"syscall/js"

	"github.com/paceup/paceup/backend-go/internal/richtext"
)

// domExecutor runs formatting commands against the real DOM. Every method
// recovers from JS exceptions and reports them as errors: a stale node
// path or a detached element must degrade to a no-op in the bridge, never
// take down the editor.
type domExecutor struct{}

func (domExecutor) Focus(elementID string) (err error) {
	defer recoverJS(&err)

	doc := js.Global().Get("document")
	node := doc.Call("querySelector", fmt.Sprintf(`[data-element-id=%q] [contenteditable]`, elementID))
	if node.IsNull() {
		return errors.New("editable node not found")
	}
	node.Call("focus")
	return nil
}

func (domExecutor) RestoreRange(r richtext.Range) (err error) {
	defer recoverJS(&err)

	doc := js.Global().Get("document")
	active := doc.Get("activeElement")
	if active.IsNull() {
		return errors.New("no active element")
	}

	start := resolvePath(active, r.StartPath)
	end := resolvePath(active, r.EndPath)
	if start.IsNull() || end.IsNull() {
		return errors.New("range path no longer valid")
	}

	rng := doc.Call("createRange")
	rng.Call("setStart", start, r.StartOffset)
	rng.Call("setEnd", end, r.EndOffset)

	sel := js.Global().Call("getSelection")
	sel.Call("removeAllRanges")
	sel.Call("addRange", rng)
	return nil
}

func (domExecutor) Exec(cmd richtext.Command) (err error) {
	defer recoverJS(&err)

	doc := js.Global().Get("document")
	if cmd.Value != "" {
		doc.Call("execCommand", cmd.Name, false, cmd.Value)
	} else {
		doc.Call("execCommand", cmd.Name, false)
	}
	return nil
}

// resolvePath walks childNodes indices from root down to the node the
// range endpoint was captured against.
func resolvePath(root js.Value, path []int) js.Value {
	node := root
	for _, idx := range path {
		children := node.Get("childNodes")
		if idx < 0 || idx >= children.Length() {
			return js.Null()
		}
		node = children.Index(idx)
	}
	return node
}

func recoverJS(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("dom error: %v", r)
	}
}
