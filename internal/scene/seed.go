package scene

import (
	"github.com/paceup/paceup/backend-go/internal/article"
	"github.com/paceup/paceup/backend-go/internal/element"
)

// FromArticle deterministically derives the initial flyer scene from an
// article: one element per known article facet plus geometry and zIndex
// defaults. It is a pure function of its input, used both for the initial
// load and for the reset when the edited article changes. Element ids are
// stable ("hero", "title", "block-<id>", ...) so re-seeding the same
// article yields the same scene.
func FromArticle(a article.Article) Scene {
	var els []element.Element
	z := zBase

	next := func(el element.Element) {
		el.ZIndex = z
		z++
		el.Visible = true
		el.Opacity = 1
		els = append(els, el)
	}

	if a.HeroImageURL != "" {
		next(element.Element{
			ID: "hero", Type: element.TypeHeroImage,
			X: 40, Y: 40, Width: PageWidth - 80, Height: 260,
			URL: a.HeroImageURL,
		})
	}

	next(element.Element{
		ID: "accent", Type: element.TypeAccentPanel,
		X: 0, Y: 320, Width: PageWidth, Height: 180,
		BackgroundColor: "#f4f1ec",
	})

	if a.Label != "" {
		next(element.Element{
			ID: "label", Type: element.TypeVerticalLabel,
			X: 20, Y: 340, Width: 40, Height: 300,
			Rotation: 90,
			Text:     a.Label, TextColor: "#1a1a2e",
			FontFamily: element.FontMono, FontSize: 14,
		})
	}

	next(element.Element{
		ID: "title", Type: element.TypeTitle,
		X: 70, Y: 340, Width: PageWidth - 110, Height: 120,
		Title: a.Title, Subtitle: a.Subtitle,
		TextColor: "#1a1a2e", SubtitleColor: "#5b5b6b",
		FontFamily: element.FontDisplay, FontSize: 34, FontWeight: 700,
		LetterSpacing: 0.5,
	})

	next(element.Element{
		ID: "info", Type: element.TypeInfoBox,
		X: 70, Y: 470, Width: PageWidth - 110, Height: 110,
		Text:            a.Description,
		BackgroundColor: "#ffffff", TextColor: "#33333d",
		FontFamily: element.FontSans, FontSize: 14, LineHeight: 1.5,
	})

	if a.BadgeText != "" {
		next(element.Element{
			ID: "badge", Type: element.TypeBadge,
			X: PageWidth - 180, Y: 60, Width: 140, Height: 40,
			Text:            a.BadgeText,
			BackgroundColor: "#ff5a36", TextColor: "#ffffff",
			FontFamily: element.FontSans, FontSize: 13, FontWeight: 600,
		})
	}

	y := 600.0
	for _, blk := range a.Blocks {
		next(element.Element{
			ID: "block-" + blk.ID, Type: element.TypeArticleBlockRef,
			X: 70, Y: y, Width: PageWidth - 110, Height: 70,
			BlockID:   blk.ID,
			TextColor: "#33333d", FontFamily: element.FontSans,
			FontSize: 13, LineHeight: 1.4,
		})
		y += 80
	}

	return Scene{elements: els}
}
