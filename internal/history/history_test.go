package history

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paceup/paceup/backend-go/internal/element"
	"github.com/paceup/paceup/backend-go/internal/scene"
)

func sceneWithX(x float64) scene.Scene {
	return scene.New([]element.Element{{ID: "hero", Type: element.TypeHeroImage, X: x}})
}

func xOf(t *testing.T, s scene.Scene) float64 {
	t.Helper()
	el, ok := s.Find("hero")
	require.True(t, ok)
	return el.X
}

func TestUndoRedoRoundTrip(t *testing.T) {
	var h History
	current := sceneWithX(0)

	// N mutations, each recording the pre-mutation snapshot.
	const n = 5
	for i := 1; i <= n; i++ {
		h.Record(current)
		current = sceneWithX(float64(i * 10))
	}
	require.Equal(t, n, h.UndoDepth())

	for i := n - 1; i >= 0; i-- {
		restored, ok := h.Undo(current)
		require.True(t, ok)
		current = restored
		require.Equal(t, float64(i*10), xOf(t, current))
	}
	require.False(t, h.CanUndo())
	require.Equal(t, n, h.RedoDepth())

	for i := 1; i <= n; i++ {
		restored, ok := h.Redo(current)
		require.True(t, ok)
		current = restored
		require.Equal(t, float64(i*10), xOf(t, current))
	}
	require.False(t, h.CanRedo())
	require.Equal(t, n, h.UndoDepth())
}

func TestUndoOnEmptyReturnsCurrent(t *testing.T) {
	var h History
	current := sceneWithX(7)

	got, ok := h.Undo(current)
	require.False(t, ok)
	require.Equal(t, 7.0, xOf(t, got))
	require.Zero(t, h.RedoDepth())
}

func TestRecordClearsFuture(t *testing.T) {
	var h History
	h.Record(sceneWithX(0))
	h.Record(sceneWithX(10))

	current, _ := h.Undo(sceneWithX(20))
	require.Equal(t, 1, h.RedoDepth())

	h.Record(current)
	require.False(t, h.CanRedo(), "a new edit after undo must discard the future stack")
}

func TestReset(t *testing.T) {
	var h History
	for i := 0; i < 3; i++ {
		h.Record(sceneWithX(float64(i)))
	}
	h.Undo(sceneWithX(99))

	h.Reset()
	require.Zero(t, h.UndoDepth())
	require.Zero(t, h.RedoDepth())
}

func TestSnapshotsAreIndependent(t *testing.T) {
	var h History
	s := sceneWithX(1)
	h.Record(s)

	// Mutating a value derived from the recorded scene must not reach
	// into the snapshot.
	el, _ := s.Find("hero")
	el.X = 999
	s = s.Update("hero", el)

	restored, ok := h.Undo(s)
	require.True(t, ok)
	require.Equal(t, 1.0, xOf(t, restored))
}
