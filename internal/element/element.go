// Package element defines the flyer element schema: a flat tagged record
// with shared geometry/flags, per-type variant fields, and a style payload
// gated by the capability tables in capability.go. The JSON encoding of an
// Element is the wire and storage format for saved layouts.
package element

import (
	"encoding/json"
	"reflect"
	"strings"
)

// Type discriminates the element variants a flyer can contain.
type Type string

const (
	TypeHeroImage       Type = "hero-image"
	TypeAccentPanel     Type = "accent-panel"
	TypeBadge           Type = "badge"
	TypeVerticalLabel   Type = "vertical-label"
	TypeTitle           Type = "title"
	TypeInfoBox         Type = "info-box"
	TypeArticleBlockRef Type = "article-block-reference"
	TypeRectangle       Type = "rectangle"
	TypeCircle          Type = "circle"
	TypeLine            Type = "line"
	TypeButton          Type = "button"
	TypeIcon            Type = "icon"
	TypeTextBox         Type = "text-box"
	TypeImage           Type = "image-element"
	TypeChip            Type = "chip"
)

// FontFamily is a design token, not a raw font string. Renderers map
// tokens to actual font stacks.
type FontFamily string

const (
	FontSans    FontFamily = "sans"
	FontSerif   FontFamily = "serif"
	FontDisplay FontFamily = "display"
	FontMono    FontFamily = "mono"
)

// Valid reports whether f is one of the known font tokens.
func (f FontFamily) Valid() bool {
	switch f {
	case FontSans, FontSerif, FontDisplay, FontMono:
		return true
	}
	return false
}

// Element is one placeable visual unit on the flyer page.
//
// Geometry is in page-local pixel units, rotation in degrees around the
// element center, zIndex is the draw order (higher paints on top).
// Variant and style fields are only meaningful when the element's type
// supports them; stale values may be present but are never authoritative.
type Element struct {
	ID   string `json:"id"`
	Type Type   `json:"type"`

	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation"`
	ZIndex   int     `json:"zIndex"`
	Opacity  float64 `json:"opacity"`

	Visible bool `json:"visible"`
	Locked  bool `json:"locked"`

	// Variant fields
	Title         string  `json:"title,omitempty"`
	Subtitle      string  `json:"subtitle,omitempty"`
	LetterSpacing float64 `json:"letterSpacing,omitempty"`
	Text          string  `json:"text,omitempty"`
	URL           string  `json:"url,omitempty"`
	Icon          string  `json:"icon,omitempty"`
	Thickness     float64 `json:"thickness,omitempty"`
	BlockID       string  `json:"blockId,omitempty"`

	// Style fields. For the line type, BackgroundColor is the stroke
	// color (downstream renderers already treat it that way).
	BackgroundColor string     `json:"backgroundColor,omitempty"`
	TextColor       string     `json:"textColor,omitempty"`
	SubtitleColor   string     `json:"subtitleColor,omitempty"`
	BorderColor     string     `json:"borderColor,omitempty"`
	FontFamily      FontFamily `json:"fontFamily,omitempty"`
	FontSize        float64    `json:"fontSize,omitempty"`
	FontWeight      int        `json:"fontWeight,omitempty"`
	TextAlign       string     `json:"textAlign,omitempty"`
	LineHeight      float64    `json:"lineHeight,omitempty"`
	HasShadow       *bool      `json:"hasShadow,omitempty"`

	// Extra holds fields this editor does not understand. They are
	// preserved on load and re-emitted unchanged on save.
	Extra map[string]json.RawMessage `json:"-"`
}

// knownKeys is the set of JSON keys owned by the Element struct itself.
// Built from the struct tags so it cannot drift from the field list.
var knownKeys = func() map[string]bool {
	keys := make(map[string]bool)
	t := reflect.TypeOf(Element{})
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		name, _, _ := strings.Cut(tag, ",")
		if name != "" && name != "-" {
			keys[name] = true
		}
	}
	return keys
}()

type elementAlias Element

// UnmarshalJSON decodes known fields into the struct and routes everything
// else into Extra.
func (e *Element) UnmarshalJSON(data []byte) error {
	var a elementAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for k := range raw {
		if knownKeys[k] {
			delete(raw, k)
		}
	}
	if len(raw) > 0 {
		a.Extra = raw
	}

	*e = Element(a)
	return nil
}

// MarshalJSON re-emits preserved unknown fields alongside the known ones.
func (e Element) MarshalJSON() ([]byte, error) {
	base, err := json.Marshal(elementAlias(e))
	if err != nil {
		return nil, err
	}
	if len(e.Extra) == 0 {
		return base, nil
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	for k, v := range e.Extra {
		merged[k] = v
	}
	return json.Marshal(merged)
}

// Clone returns a copy that shares no mutable state with the original.
func (e Element) Clone() Element {
	out := e
	if e.HasShadow != nil {
		v := *e.HasShadow
		out.HasShadow = &v
	}
	if e.Extra != nil {
		out.Extra = make(map[string]json.RawMessage, len(e.Extra))
		for k, v := range e.Extra {
			out.Extra[k] = v
		}
	}
	return out
}
