package article

import (
	"encoding/json"
	"time"

	"github.com/paceup/paceup/backend-go/internal/typeid"
)

// NewSampleArticle builds a built-in coaching article used by the
// playground and by tests.
func NewSampleArticle(articleID string) *Article {
	now := time.Now().UTC().Format(time.RFC3339)

	richText, _ := json.Marshal(RichTextPayload{
		HTML: "<p>Cadence is the easiest lever for softening impact. Count your steps for 30 seconds and double the number.</p>",
	})
	checklist, _ := json.Marshal(ChecklistPayload{
		Items: []string{
			"Warm up 10 minutes easy",
			"6 x 20s strides, full recovery",
			"Film yourself from the side",
		},
	})
	quote, _ := json.Marshal(QuotePayload{
		Text:   "Run tall, land quiet.",
		Source: "Coach Mirela",
	})

	return &Article{
		ID:           articleID,
		Title:        "Fix Your Running Form in 4 Weeks",
		Subtitle:     "A progressive drill plan for recreational runners",
		Description:  "Overstriding is the most common form fault we see. This plan walks you from baseline video analysis to a stable mid-foot strike.",
		HeroImageURL: "/assets/sample/hero-track.jpg",
		BadgeText:    "4-week plan",
		Label:        "TECHNIQUE",
		Blocks: []Block{
			{ID: typeid.NewBlockID(), Type: BlockRichText, Payload: richText},
			{ID: typeid.NewBlockID(), Type: BlockChecklist, Payload: checklist},
			{ID: typeid.NewBlockID(), Type: BlockQuote, Payload: quote},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
