package article

import "encoding/json"

// BlockType discriminates the content block variants an article can carry.
type BlockType string

const (
	BlockRichText  BlockType = "rich-text"
	BlockImage     BlockType = "image"
	BlockQuote     BlockType = "quote"
	BlockChecklist BlockType = "checklist"
	BlockTwoColumn BlockType = "two-column"
)

// Block is one ordered content unit of an article. Payload is
// type-specific and opaque to the layout editor; the editor only
// references blocks by id.
type Block struct {
	ID      string          `json:"id"`
	Type    BlockType       `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Article is the input contract from the surrounding CMS: the record a
// flyer layout is derived from and attached to.
type Article struct {
	ID           string  `json:"id"`
	OwnerID      string  `json:"ownerId"`
	Title        string  `json:"title"`
	Subtitle     string  `json:"subtitle"`
	Description  string  `json:"description"`
	HeroImageURL string  `json:"heroImageUrl"`
	BadgeText    string  `json:"badgeText"`
	Label        string  `json:"label"`
	Blocks       []Block `json:"blocks"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// RichTextPayload is the payload of a rich-text block.
type RichTextPayload struct {
	HTML string `json:"html"`
}

// ImagePayload is the payload of an image block.
type ImagePayload struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

// QuotePayload is the payload of a quote block.
type QuotePayload struct {
	Text   string `json:"text"`
	Source string `json:"source,omitempty"`
}

// ChecklistPayload is the payload of a checklist block.
type ChecklistPayload struct {
	Items []string `json:"items"`
}

// TwoColumnPayload is the payload of a two-column block.
type TwoColumnPayload struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}
