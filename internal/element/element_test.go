package element

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnknownFieldsSurviveRoundTrip(t *testing.T) {
	in := []byte(`{
		"id": "el_1", "type": "button",
		"x": 10, "y": 20, "width": 160, "height": 44,
		"rotation": 0, "zIndex": 12, "opacity": 1,
		"visible": true, "locked": false,
		"text": "Go",
		"futureField": {"nested": [1, 2, 3]},
		"analyticsTag": "cta-main"
	}`)

	var el Element
	require.NoError(t, json.Unmarshal(in, &el))
	require.Equal(t, "el_1", el.ID)
	require.Equal(t, TypeButton, el.Type)
	require.Len(t, el.Extra, 2)

	out, err := json.Marshal(el)
	require.NoError(t, err)

	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &m))
	require.JSONEq(t, `{"nested":[1,2,3]}`, string(m["futureField"]))
	require.JSONEq(t, `"cta-main"`, string(m["analyticsTag"]))
	require.JSONEq(t, `"Go"`, string(m["text"]))
}

func TestApplyPatchMergesFields(t *testing.T) {
	el := Element{
		ID: "el_1", Type: TypeTextBox,
		X: 10, Y: 20, Width: 240, Height: 80,
		Text: "hello", TextColor: "#111111",
		Visible: true,
	}

	got, err := ApplyPatch(el, []byte(`{"x": 50, "text": "updated"}`))
	require.NoError(t, err)
	require.Equal(t, 50.0, got.X)
	require.Equal(t, 20.0, got.Y)
	require.Equal(t, "updated", got.Text)
	require.Equal(t, "#111111", got.TextColor)
	require.True(t, got.Visible)
}

func TestApplyPatchKeepsIdentity(t *testing.T) {
	el := Element{ID: "el_1", Type: TypeChip}

	got, err := ApplyPatch(el, []byte(`{"id": "el_2", "type": "line"}`))
	require.NoError(t, err)
	require.Equal(t, "el_1", got.ID)
	require.Equal(t, TypeChip, got.Type)
}

func TestApplyPatchRoutesUnknownKeysToExtra(t *testing.T) {
	el := Element{ID: "el_1", Type: TypeChip}

	got, err := ApplyPatch(el, []byte(`{"theme": "dark"}`))
	require.NoError(t, err)
	require.JSONEq(t, `"dark"`, string(got.Extra["theme"]))
}

func TestApplyPatchInvalidJSONIsNoop(t *testing.T) {
	el := Element{ID: "el_1", Type: TypeChip, Text: "keep"}

	got, err := ApplyPatch(el, []byte(`{bad`))
	require.Error(t, err)
	require.Equal(t, el, got)
}

func TestCloneIsIndependent(t *testing.T) {
	shadow := true
	el := Element{
		ID: "el_1", Type: TypeRectangle,
		HasShadow: &shadow,
		Extra:     map[string]json.RawMessage{"k": json.RawMessage(`1`)},
	}

	cl := el.Clone()
	*cl.HasShadow = false
	cl.Extra["k2"] = json.RawMessage(`2`)

	require.True(t, *el.HasShadow)
	require.NotContains(t, el.Extra, "k2")
}
