package typf

// GlyphSourceKind identifies one of the fixed, known ways a glyph's visual
// can be produced, per spec §3's glyph-source enumeration.
type GlyphSourceKind int

const (
	SourceOutlineTrueType GlyphSourceKind = iota
	SourceOutlineCFF
	SourceOutlineCFF2
	SourceColorLayeredV0
	SourceColorLayeredV1
	SourceColorSVG
	SourceColorBitmapSbix
	SourceColorBitmapCBDT
	SourceColorBitmapEBDT
)

func (k GlyphSourceKind) String() string {
	switch k {
	case SourceOutlineTrueType:
		return "Outline-TrueType"
	case SourceOutlineCFF:
		return "Outline-CFF"
	case SourceOutlineCFF2:
		return "Outline-CFF2"
	case SourceColorLayeredV0:
		return "Color-Layered-v0"
	case SourceColorLayeredV1:
		return "Color-Layered-v1"
	case SourceColorSVG:
		return "Color-SVG"
	case SourceColorBitmapSbix:
		return "Color-Bitmap-sbix"
	case SourceColorBitmapCBDT:
		return "Color-Bitmap-CBDT"
	case SourceColorBitmapEBDT:
		return "Color-Bitmap-EBDT"
	default:
		return "unknown"
	}
}

// defaultGlyphSourcePreference is the module default: outlines first, then
// color layered, then SVG, then bitmap strikes.
var defaultGlyphSourcePreference = []GlyphSourceKind{
	SourceOutlineTrueType,
	SourceOutlineCFF2,
	SourceOutlineCFF,
	SourceColorLayeredV1,
	SourceColorLayeredV0,
	SourceColorSVG,
	SourceColorBitmapSbix,
	SourceColorBitmapCBDT,
	SourceColorBitmapEBDT,
}

// GlyphSourcePreference is an ordered preference list plus a deny set,
// consulted by color-capable renderers once per glyph, per spec §4.7.
type GlyphSourcePreference struct {
	prefer []GlyphSourceKind
	deny   map[GlyphSourceKind]struct{}
}

// DefaultGlyphSourcePreference returns the module's default preference with
// an empty deny set.
func DefaultGlyphSourcePreference() GlyphSourcePreference {
	return GlyphSourcePreference{
		prefer: append([]GlyphSourceKind(nil), defaultGlyphSourcePreference...),
	}
}

// NewGlyphSourcePreferenceFromParts builds a preference from an explicit
// prefer list and deny set: denied entries are removed from prefer,
// duplicates in prefer are removed preserving first occurrence, and if the
// result is empty, the default preference list minus denied sources is
// substituted.
func NewGlyphSourcePreferenceFromParts(prefer []GlyphSourceKind, deny []GlyphSourceKind) GlyphSourcePreference {
	denySet := make(map[GlyphSourceKind]struct{}, len(deny))
	for _, d := range deny {
		denySet[d] = struct{}{}
	}

	seen := make(map[GlyphSourceKind]struct{}, len(prefer))
	filtered := make([]GlyphSourceKind, 0, len(prefer))
	for _, k := range prefer {
		if _, denied := denySet[k]; denied {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		filtered = append(filtered, k)
	}

	if len(filtered) == 0 {
		for _, k := range defaultGlyphSourcePreference {
			if _, denied := denySet[k]; !denied {
				filtered = append(filtered, k)
			}
		}
	}

	return GlyphSourcePreference{prefer: filtered, deny: denySet}
}

// Prefer returns the resolved, ordered preference list.
func (p GlyphSourcePreference) Prefer() []GlyphSourceKind {
	return append([]GlyphSourceKind(nil), p.prefer...)
}

// Denies reports whether a source kind is in the deny set.
func (p GlyphSourcePreference) Denies(k GlyphSourceKind) bool {
	_, denied := p.deny[k]
	return denied
}

// Select scans the preference list in order and returns the first entry
// present in available. ok is false if none of the preferred sources are
// available.
func (p GlyphSourcePreference) Select(available []GlyphSourceKind) (chosen GlyphSourceKind, ok bool) {
	availSet := make(map[GlyphSourceKind]struct{}, len(available))
	for _, a := range available {
		availSet[a] = struct{}{}
	}
	for _, k := range p.prefer {
		if _, present := availSet[k]; present {
			return k, true
		}
	}
	return 0, false
}
