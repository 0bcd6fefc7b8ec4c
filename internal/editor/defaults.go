package editor

import "github.com/paceup/paceup/backend-go/internal/element"

// defaultElement builds the sidebar "add element" literal for each type:
// sensible geometry near the top-left, visible, fully opaque. The caller
// assigns id and zIndex.
func defaultElement(t element.Type) element.Element {
	el := element.Element{
		Type: t,
		X:    60, Y: 60, Width: 160, Height: 60,
		Opacity: 1,
		Visible: true,
	}

	switch t {
	case element.TypeHeroImage, element.TypeImage:
		el.Width, el.Height = 240, 160
	case element.TypeAccentPanel:
		el.Width, el.Height = 280, 140
		el.BackgroundColor = "#f4f1ec"
	case element.TypeBadge:
		el.Width, el.Height = 140, 40
		el.Text = "New badge"
		el.BackgroundColor = "#ff5a36"
		el.TextColor = "#ffffff"
		el.FontFamily = element.FontSans
		el.FontSize = 13
		el.FontWeight = 600
	case element.TypeVerticalLabel:
		el.Width, el.Height = 40, 240
		el.Rotation = 90
		el.Text = "LABEL"
		el.TextColor = "#1a1a2e"
		el.FontFamily = element.FontMono
		el.FontSize = 14
	case element.TypeTitle:
		el.Width, el.Height = 320, 100
		el.Title = "New title"
		el.Subtitle = "Subtitle"
		el.TextColor = "#1a1a2e"
		el.SubtitleColor = "#5b5b6b"
		el.FontFamily = element.FontDisplay
		el.FontSize = 30
		el.FontWeight = 700
	case element.TypeInfoBox:
		el.Width, el.Height = 320, 100
		el.Text = "Info text"
		el.BackgroundColor = "#ffffff"
		el.TextColor = "#33333d"
		el.FontFamily = element.FontSans
		el.FontSize = 14
		el.LineHeight = 1.5
	case element.TypeRectangle:
		el.Width, el.Height = 160, 100
		el.BackgroundColor = "#d9d4c8"
	case element.TypeCircle:
		el.Width, el.Height = 100, 100
		el.BackgroundColor = "#d9d4c8"
	case element.TypeLine:
		el.Width, el.Height = 200, 2
		// Stroke color lives in backgroundColor for lines.
		el.BackgroundColor = "#1a1a2e"
		el.Thickness = 2
	case element.TypeButton:
		el.Width, el.Height = 160, 44
		el.Text = "Learn more"
		el.BackgroundColor = "#1a1a2e"
		el.TextColor = "#ffffff"
		el.FontFamily = element.FontSans
		el.FontSize = 14
		el.FontWeight = 600
	case element.TypeIcon:
		el.Width, el.Height = 40, 40
		el.Icon = "run"
		el.TextColor = "#1a1a2e"
	case element.TypeTextBox:
		el.Width, el.Height = 240, 80
		el.Text = "New text"
		el.TextColor = "#33333d"
		el.FontFamily = element.FontSans
		el.FontSize = 14
		el.LineHeight = 1.4
	case element.TypeChip:
		el.Width, el.Height = 100, 32
		el.Text = "Chip"
		el.BackgroundColor = "#e8e4db"
		el.TextColor = "#1a1a2e"
		el.FontFamily = element.FontSans
		el.FontSize = 12
	}

	return el
}
