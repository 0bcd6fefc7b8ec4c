//go:build js && wasm

package main

import (
	"encoding/json"
	"errors"
	"syscall/js"

	"github.com/paceup/paceup/backend-go/internal/article"
	"github.com/paceup/paceup/backend-go/internal/editor"
	"github.com/paceup/paceup/backend-go/internal/element"
	"github.com/paceup/paceup/backend-go/internal/richtext"
)

var (
	ed         *editor.Editor
	onElements js.Value // JS callback receiving the element array after every commit
)

func main() {
	ed = editor.New(func(els []element.Element) {
		if onElements.Type() != js.TypeFunction {
			return
		}
		data, err := json.Marshal(els)
		if err != nil {
			return
		}
		onElements.Invoke(string(data))
	})

	flyerEditor := js.Global().Get("Object").New()

	// --- Commands (frontend → editor) ---
	flyerEditor.Set("loadArticle", js.FuncOf(loadArticle))
	flyerEditor.Set("selectElement", js.FuncOf(selectElement))
	flyerEditor.Set("clearSelection", js.FuncOf(clearSelection))
	flyerEditor.Set("setGlobalMode", js.FuncOf(setGlobalMode))
	flyerEditor.Set("applyProperty", js.FuncOf(applyProperty))
	flyerEditor.Set("updateElement", js.FuncOf(updateElement))
	flyerEditor.Set("deleteElement", js.FuncOf(deleteElement))
	flyerEditor.Set("addElement", js.FuncOf(addElement))
	flyerEditor.Set("reorderByZ", js.FuncOf(reorderByZ))
	flyerEditor.Set("bringToFront", js.FuncOf(bringToFront))
	flyerEditor.Set("sendToBack", js.FuncOf(sendToBack))
	flyerEditor.Set("dragStop", js.FuncOf(dragStop))
	flyerEditor.Set("resizeStop", js.FuncOf(resizeStop))
	flyerEditor.Set("nudge", js.FuncOf(nudge))
	flyerEditor.Set("undo", js.FuncOf(undo))
	flyerEditor.Set("redo", js.FuncOf(redo))
	flyerEditor.Set("undoShortcut", js.FuncOf(undoShortcut))
	flyerEditor.Set("redoShortcut", js.FuncOf(redoShortcut))
	flyerEditor.Set("focusText", js.FuncOf(focusText))
	flyerEditor.Set("blurText", js.FuncOf(blurText))
	flyerEditor.Set("textSelectionChanged", js.FuncOf(textSelectionChanged))
	flyerEditor.Set("formatText", js.FuncOf(formatText))
	flyerEditor.Set("onElementsChanged", js.FuncOf(setOnElementsChanged))

	// --- Queries (frontend ← editor) ---
	flyerEditor.Set("getElements", js.FuncOf(getElements))
	flyerEditor.Set("getSelection", js.FuncOf(getSelection))
	flyerEditor.Set("getGlobalMode", js.FuncOf(getGlobalMode))
	flyerEditor.Set("canUndo", js.FuncOf(canUndo))
	flyerEditor.Set("canRedo", js.FuncOf(canRedo))
	flyerEditor.Set("hitTest", js.FuncOf(hitTest))
	flyerEditor.Set("getSelectionBounds", js.FuncOf(getSelectionBounds))
	flyerEditor.Set("getArticleId", js.FuncOf(getArticleID))

	js.Global().Set("paceupFlyer", flyerEditor)
	js.Global().Set("paceupWasmReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

// --- Command handlers ---

func loadArticle(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing article JSON"})
	}

	var a article.Article
	if err := json.Unmarshal([]byte(args[0].String()), &a); err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}

	var saved []element.Element
	if len(args) > 1 && args[1].Type() == js.TypeString && args[1].String() != "" {
		if err := json.Unmarshal([]byte(args[1].String()), &saved); err != nil {
			return js.ValueOf(map[string]interface{}{"error": err.Error()})
		}
	}

	ed.LoadArticle(a, saved)
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func selectElement(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	ed.Select(args[0].String())
	return nil
}

func clearSelection(this js.Value, args []js.Value) interface{} {
	ed.ClearSelection()
	return nil
}

func setGlobalMode(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	ed.SetGlobalMode(args[0].Bool())
	return nil
}

func applyProperty(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return js.ValueOf(map[string]interface{}{"error": "missing property or value"})
	}

	var value any
	if err := json.Unmarshal([]byte(args[1].String()), &value); err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}

	err := ed.ApplyProperty(element.Property(args[0].String()), value)
	if errors.Is(err, editor.ErrNoTarget) {
		return js.ValueOf(map[string]interface{}{"rejected": true})
	}
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func updateElement(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	ed.UpdateElement(args[0].String(), []byte(args[1].String()))
	return nil
}

func deleteElement(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	ed.DeleteElement(args[0].String())
	return nil
}

func addElement(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf("{}")
	}
	el := ed.AddElement(element.Type(args[0].String()))
	data, _ := json.Marshal(el)
	return js.ValueOf(string(data))
}

func reorderByZ(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	ed.ReorderByZ(args[0].String(), args[1].String())
	return nil
}

func bringToFront(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	ed.BringToFront(args[0].String())
	return nil
}

func sendToBack(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	ed.SendToBack(args[0].String())
	return nil
}

func dragStop(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return nil
	}
	ed.DragStop(args[0].String(), args[1].Float(), args[2].Float())
	return nil
}

func resizeStop(this js.Value, args []js.Value) interface{} {
	if len(args) < 5 {
		return nil
	}
	ed.ResizeStop(args[0].String(), args[1].Float(), args[2].Float(), args[3].Float(), args[4].Float())
	return nil
}

func nudge(this js.Value, args []js.Value) interface{} {
	if len(args) < 4 {
		return nil
	}
	ed.Nudge(args[0].String(), args[1].Float(), args[2].Float(), args[3].Bool())
	return nil
}

func undo(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(ed.Undo())
}

func redo(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(ed.Redo())
}

func undoShortcut(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(ed.UndoShortcut())
}

func redoShortcut(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(ed.RedoShortcut())
}

func focusText(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	ed.Bridge().FocusGained(args[0].String())
	return nil
}

func blurText(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	ed.Bridge().FocusLost(args[0].String())
	return nil
}

func textSelectionChanged(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	var r richtext.Range
	if err := json.Unmarshal([]byte(args[1].String()), &r); err != nil {
		return nil
	}
	ed.Bridge().SelectionChanged(args[0].String(), r)
	return nil
}

func formatText(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(false)
	}
	var cmd richtext.Command
	if err := json.Unmarshal([]byte(args[0].String()), &cmd); err != nil {
		return js.ValueOf(false)
	}
	return js.ValueOf(ed.Format(cmd, domExecutor{}))
}

func setOnElementsChanged(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	onElements = args[0]
	return nil
}

// --- Query handlers ---

func getElements(this js.Value, args []js.Value) interface{} {
	data, _ := json.Marshal(ed.Elements())
	return js.ValueOf(string(data))
}

func getSelection(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(ed.SelectedID())
}

func getGlobalMode(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(ed.GlobalMode())
}

func canUndo(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(ed.CanUndo())
}

func canRedo(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(ed.CanRedo())
}

func hitTest(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return js.ValueOf("")
	}
	return js.ValueOf(ed.HitTest(args[0].Float(), args[1].Float()))
}

func getSelectionBounds(this js.Value, args []js.Value) interface{} {
	data, _ := json.Marshal(ed.SelectionBounds())
	return js.ValueOf(string(data))
}

func getArticleID(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(ed.ArticleID())
}
