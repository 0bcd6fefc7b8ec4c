package richtext

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeExecutor records the call sequence and can be told to fail any step.
type fakeExecutor struct {
	calls []string

	focusErr   error
	restoreErr error
	execErr    error

	focusedID string
	restored  *Range
	executed  *Command
}

func (f *fakeExecutor) Focus(id string) error {
	f.calls = append(f.calls, "focus")
	f.focusedID = id
	return f.focusErr
}

func (f *fakeExecutor) RestoreRange(r Range) error {
	f.calls = append(f.calls, "restore")
	f.restored = &r
	return f.restoreErr
}

func (f *fakeExecutor) Exec(cmd Command) error {
	f.calls = append(f.calls, "exec")
	f.executed = &cmd
	return f.execErr
}

func TestApplyRestoresBeforeExec(t *testing.T) {
	var b Bridge
	b.FocusGained("text-1")
	b.SelectionChanged("text-1", Range{StartPath: []int{0}, StartOffset: 2, EndPath: []int{0}, EndOffset: 8})
	b.FocusLost("text-1") // panel click blurs the element

	ex := &fakeExecutor{}
	ok := b.Apply(Command{Name: "bold"}, ex)

	require.True(t, ok)
	require.Equal(t, []string{"focus", "restore", "exec"}, ex.calls)
	require.Equal(t, "text-1", ex.focusedID)
	require.Equal(t, 2, ex.restored.StartOffset)
	require.Equal(t, "bold", ex.executed.Name)
}

func TestApplyWithoutRetainedRange(t *testing.T) {
	var b Bridge
	b.FocusGained("text-1")

	ex := &fakeExecutor{}
	require.True(t, b.Apply(Command{Name: "italic"}, ex))
	require.Equal(t, []string{"focus", "exec"}, ex.calls)
}

func TestApplyNoTarget(t *testing.T) {
	var b Bridge
	ex := &fakeExecutor{}

	require.False(t, b.Apply(Command{Name: "bold"}, ex))
	require.Empty(t, ex.calls)
}

func TestApplySwallowsFailures(t *testing.T) {
	boom := errors.New("boom")

	cases := []struct {
		name  string
		wire  func(*fakeExecutor)
		calls []string
	}{
		{"focus fails", func(f *fakeExecutor) { f.focusErr = boom }, []string{"focus"}},
		{"restore fails", func(f *fakeExecutor) { f.restoreErr = boom }, []string{"focus", "restore"}},
		{"exec fails", func(f *fakeExecutor) { f.execErr = boom }, []string{"focus", "restore", "exec"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var b Bridge
			b.FocusGained("text-1")
			b.SelectionChanged("text-1", Range{EndOffset: 4})

			ex := &fakeExecutor{}
			tc.wire(ex)

			require.False(t, b.Apply(Command{Name: "foreColor", Value: "#ff0000"}, ex))
			require.Equal(t, tc.calls, ex.calls)
		})
	}
}

func TestRangeSurvivesBlur(t *testing.T) {
	var b Bridge
	b.FocusGained("text-1")
	b.SelectionChanged("text-1", Range{EndOffset: 4})
	b.FocusLost("text-1")

	require.False(t, b.HasFocus())
	require.Equal(t, "text-1", b.TargetID())
}

func TestFocusOnDifferentElementDropsRange(t *testing.T) {
	var b Bridge
	b.FocusGained("text-1")
	b.SelectionChanged("text-1", Range{EndOffset: 4})
	b.FocusGained("text-2")
	b.FocusLost("text-2")

	// No range was ever retained for text-2.
	require.Equal(t, "", b.TargetID())
}

func TestSelectionChangeIgnoredWithoutFocus(t *testing.T) {
	var b Bridge
	b.SelectionChanged("text-1", Range{EndOffset: 4})
	require.Equal(t, "", b.TargetID())

	b.FocusGained("text-1")
	b.SelectionChanged("text-2", Range{EndOffset: 9})
	b.FocusLost("text-1")
	require.Equal(t, "", b.TargetID())
}

func TestFocusLostForOtherElementIsIgnored(t *testing.T) {
	var b Bridge
	b.FocusGained("text-1")
	b.FocusLost("text-2")

	require.True(t, b.HasFocus())
	require.Equal(t, "text-1", b.FocusedID())
}

func TestForget(t *testing.T) {
	var b Bridge
	b.FocusGained("text-1")
	b.SelectionChanged("text-1", Range{EndOffset: 4})

	b.Forget("text-1")
	require.False(t, b.HasFocus())
	require.Equal(t, "", b.TargetID())
}

func TestRangeCloneIsDeep(t *testing.T) {
	r := Range{StartPath: []int{1, 2}, EndPath: []int{1, 3}}
	cl := r.Clone()
	cl.StartPath[0] = 99

	require.Equal(t, 1, r.StartPath[0])
}
