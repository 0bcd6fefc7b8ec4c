package element

// Property names a style channel that the property panel and bulk-edit
// mode can write. The names match the JSON keys of the style fields.
type Property string

const (
	PropBackgroundColor Property = "backgroundColor"
	PropTextColor       Property = "textColor"
	PropSubtitleColor   Property = "subtitleColor"
	PropBorderColor     Property = "borderColor"
	PropFontFamily      Property = "fontFamily"
	PropFontSize        Property = "fontSize"
	PropFontWeight      Property = "fontWeight"
	PropTextAlign       Property = "textAlign"
	PropLineHeight      Property = "lineHeight"
	PropHasShadow       Property = "hasShadow"
	PropThickness       Property = "thickness"
)

type propertySet map[Property]struct{}

func props(ps ...Property) propertySet {
	set := make(propertySet, len(ps))
	for _, p := range ps {
		set[p] = struct{}{}
	}
	return set
}

// typography is the group of properties every text-bearing type supports.
var typography = []Property{PropFontFamily, PropFontSize, PropFontWeight, PropTextAlign}

func withTypography(ps ...Property) propertySet {
	return props(append(ps, typography...)...)
}

// capabilities is the single authoritative table of which style properties
// each element type supports. Any property-application routine must
// consult it before writing; writing an unsupported property is a no-op.
//
// Quirks kept on purpose: line keeps its stroke color in backgroundColor,
// and title carries two independent color channels (textColor for the
// headline, subtitleColor for the subline).
var capabilities = map[Type]propertySet{
	TypeHeroImage:       props(PropHasShadow),
	TypeAccentPanel:     props(PropBackgroundColor, PropBorderColor, PropHasShadow),
	TypeBadge:           withTypography(PropBackgroundColor, PropTextColor, PropHasShadow),
	TypeVerticalLabel:   withTypography(PropTextColor),
	TypeTitle:           withTypography(PropTextColor, PropSubtitleColor, PropLineHeight),
	TypeInfoBox:         withTypography(PropBackgroundColor, PropTextColor, PropSubtitleColor, PropBorderColor, PropLineHeight, PropHasShadow),
	TypeArticleBlockRef: withTypography(PropTextColor, PropLineHeight),
	TypeRectangle:       props(PropBackgroundColor, PropBorderColor, PropHasShadow),
	TypeCircle:          props(PropBackgroundColor, PropBorderColor, PropHasShadow),
	TypeLine:            props(PropBackgroundColor, PropThickness),
	TypeButton:          withTypography(PropBackgroundColor, PropTextColor, PropBorderColor, PropHasShadow),
	TypeIcon:            props(PropTextColor),
	TypeTextBox:         withTypography(PropBackgroundColor, PropTextColor, PropLineHeight, PropHasShadow),
	TypeImage:           props(PropBorderColor, PropHasShadow),
	TypeChip:            withTypography(PropBackgroundColor, PropTextColor, PropBorderColor, PropHasShadow),
}

// Supports reports whether elements of type t carry property p.
func Supports(t Type, p Property) bool {
	set, ok := capabilities[t]
	if !ok {
		return false
	}
	_, ok = set[p]
	return ok
}

// ApplyProperty returns a copy of el with property p set to v, and reports
// whether anything was written. Unsupported properties and wrong-shaped or
// out-of-range values leave el as-is and report false: a bulk edit may
// include properties irrelevant to some types, and callers must not treat
// the untouched result as a new revision.
func ApplyProperty(el Element, p Property, v any) (Element, bool) {
	if !Supports(el.Type, p) {
		return el, false
	}

	out := el.Clone()
	switch p {
	case PropBackgroundColor:
		s, ok := v.(string)
		if !ok {
			return el, false
		}
		out.BackgroundColor = s
	case PropTextColor:
		s, ok := v.(string)
		if !ok {
			return el, false
		}
		out.TextColor = s
	case PropSubtitleColor:
		s, ok := v.(string)
		if !ok {
			return el, false
		}
		out.SubtitleColor = s
	case PropBorderColor:
		s, ok := v.(string)
		if !ok {
			return el, false
		}
		out.BorderColor = s
	case PropFontFamily:
		s, ok := v.(string)
		if !ok || !FontFamily(s).Valid() {
			return el, false
		}
		out.FontFamily = FontFamily(s)
	case PropFontSize:
		f, ok := toFloat(v)
		if !ok || f <= 0 {
			return el, false
		}
		out.FontSize = f
	case PropFontWeight:
		f, ok := toFloat(v)
		if !ok {
			return el, false
		}
		out.FontWeight = int(f)
	case PropTextAlign:
		s, ok := v.(string)
		if !ok {
			return el, false
		}
		switch s {
		case "left", "center", "right", "justify":
			out.TextAlign = s
		default:
			return el, false
		}
	case PropLineHeight:
		f, ok := toFloat(v)
		if !ok || f <= 0 {
			return el, false
		}
		out.LineHeight = f
	case PropHasShadow:
		b, ok := v.(bool)
		if !ok {
			return el, false
		}
		out.HasShadow = &b
	case PropThickness:
		f, ok := toFloat(v)
		if !ok || f <= 0 {
			return el, false
		}
		out.Thickness = f
	default:
		return el, false
	}
	return out, true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
