package element

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyPropertyUnsupportedIsUnchanged(t *testing.T) {
	line := Element{ID: "l1", Type: TypeLine, BackgroundColor: "#1a1a2e", Thickness: 2}

	for _, p := range []Property{
		PropTextColor, PropSubtitleColor, PropBorderColor,
		PropFontFamily, PropFontSize, PropFontWeight,
		PropTextAlign, PropLineHeight, PropHasShadow,
	} {
		got, changed := ApplyProperty(line, p, "#ff0000")
		require.False(t, changed, "property %s must not touch a line", p)
		require.Equal(t, line, got)
	}
}

func TestApplyPropertySupported(t *testing.T) {
	title := Element{ID: "t1", Type: TypeTitle, TextColor: "#000000"}

	got, changed := ApplyProperty(title, PropTextColor, "#ff0000")
	require.True(t, changed)
	require.Equal(t, "#ff0000", got.TextColor)
	// original untouched
	require.Equal(t, "#000000", title.TextColor)

	got, changed = ApplyProperty(title, PropSubtitleColor, "#00ff00")
	require.True(t, changed)
	require.Equal(t, "#00ff00", got.SubtitleColor)
	require.Equal(t, "#000000", got.TextColor, "textColor and subtitleColor are independent channels")
}

func TestApplyPropertyLineStrokeColor(t *testing.T) {
	// Lines keep their stroke color in backgroundColor.
	line := Element{ID: "l1", Type: TypeLine}

	got, changed := ApplyProperty(line, PropBackgroundColor, "#ff5a36")
	require.True(t, changed)
	require.Equal(t, "#ff5a36", got.BackgroundColor)

	got, changed = ApplyProperty(line, PropThickness, 4.0)
	require.True(t, changed)
	require.Equal(t, 4.0, got.Thickness)
}

func TestApplyPropertyTypographyLineVsButton(t *testing.T) {
	line := Element{ID: "l1", Type: TypeLine}
	button := Element{ID: "b1", Type: TypeButton}

	got, changed := ApplyProperty(line, PropFontFamily, "mono")
	require.False(t, changed)
	require.Equal(t, line, got)

	got, changed = ApplyProperty(button, PropFontFamily, "mono")
	require.True(t, changed)
	require.Equal(t, FontMono, got.FontFamily)
}

func TestApplyPropertyRejectsBadValues(t *testing.T) {
	button := Element{ID: "b1", Type: TypeButton, FontSize: 14}

	cases := []struct {
		prop  Property
		value any
	}{
		{PropFontSize, "big"},
		{PropFontSize, -2.0},
		{PropFontFamily, "comic-sans"},
		{PropTextAlign, "middle"},
		{PropHasShadow, "yes"},
		{PropTextColor, 42},
	}
	for _, tc := range cases {
		got, changed := ApplyProperty(button, tc.prop, tc.value)
		require.False(t, changed, "property %s with value %v", tc.prop, tc.value)
		require.Equal(t, button, got)
	}
}

func TestApplyPropertyHasShadow(t *testing.T) {
	rect := Element{ID: "r1", Type: TypeRectangle}

	got, changed := ApplyProperty(rect, PropHasShadow, true)
	require.True(t, changed)
	require.NotNil(t, got.HasShadow)
	require.True(t, *got.HasShadow)

	got, changed = ApplyProperty(got, PropHasShadow, false)
	require.True(t, changed)
	require.NotNil(t, got.HasShadow)
	require.False(t, *got.HasShadow)
}

func TestSupports(t *testing.T) {
	require.True(t, Supports(TypeTitle, PropSubtitleColor))
	require.False(t, Supports(TypeTextBox, PropSubtitleColor))
	require.True(t, Supports(TypeLine, PropThickness))
	require.False(t, Supports(TypeRectangle, PropThickness))
	require.False(t, Supports(Type("bogus"), PropTextColor))
}
