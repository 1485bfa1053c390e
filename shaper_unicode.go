package typf

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/fontlaborg/typf/cache"
	gotextfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// UnicodeShaper provides HarfBuzz-level shaping via go-text/typesetting:
// ligatures, kerning pairs, contextual alternates, bidi reordering, and
// complex scripts (Arabic, Devanagari, Thai, ...). It is the cross-platform
// fallback the registry (C9) selects when no platform-native shaper applies.
//
// UnicodeShaper is safe for concurrent use. It caches parsed go-text
// font.Font objects (thread-safe, read-only) keyed by Font identity; Font
// implementations passed to Shape should be comparable (typically a pointer
// type), since the cache keys on the Font value itself; every lookup and
// insert consults the cache-enable gate in cachegate.go. The underlying
// shaping.HarfbuzzShaper is pooled via sync.Pool because it is not
// concurrent-safe on its own.
type UnicodeShaper struct {
	shaperPool sync.Pool

	fontCache *cache.GatedCache[Font, *gotextfont.Font]
}

// NewUnicodeShaper creates a UnicodeShaper.
func NewUnicodeShaper() *UnicodeShaper {
	return &UnicodeShaper{
		shaperPool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
		fontCache: cache.NewGated(cache.NewSharded[Font, *gotextfont.Font](cache.DefaultCapacity, fontHasher), cacheEnabled),
	}
}

// fontHasher hashes a Font by its interface value's pointer identity, since
// typf.Font carries no content-addressable id of its own. Only used for
// shard selection; collisions just mean two fonts share a shard.
func fontHasher(f Font) uint64 {
	h := fnv.New64a()
	_, _ = fmt.Fprintf(h, "%p", f)
	return h.Sum64()
}

func (s *UnicodeShaper) Name() string { return "unicode-aware" }

// SupportsScript reports true for the empty tag (auto-detect) and every
// ISO 15924 script tag this backend knows how to map onto a
// language.Script constant. Shape rejects any other explicit tag with
// ShapingScriptNotSupported rather than silently auto-detecting.
func (s *UnicodeShaper) SupportsScript(script string) bool {
	if script == "" {
		return true
	}
	_, ok := scriptByTag[script]
	return ok
}

// scriptByTag maps ISO 15924 four-letter script tags onto
// go-text/typesetting's language.Script constants, covering the scripts
// this backend is actually exercised against.
var scriptByTag = map[string]language.Script{
	"Latn": language.Latin,
	"Cyrl": language.Cyrillic,
	"Grek": language.Greek,
	"Arab": language.Arabic,
	"Hebr": language.Hebrew,
	"Deva": language.Devanagari,
	"Thai": language.Thai,
	"Hani": language.Han,
	"Hira": language.Hiragana,
	"Kana": language.Katakana,
	"Hang": language.Hangul,
	"Armn": language.Armenian,
	"Geor": language.Georgian,
}

// unicodeShaperDefaultFeatures are the OpenType feature tags HarfBuzz
// applies by default (liga/kern-class substitution and positioning,
// mark attachment, locale-aware glyph substitution, glyph composition).
// UnicodeShaper has no plumbing to override individual feature tags past
// this default set, so a Features request is only honored when it asks
// for the behavior HarfBuzz already applies; anything else is rejected
// with ShapingFeatureNotSupported rather than silently ignored.
var unicodeShaperDefaultFeatures = map[string]bool{
	"liga": true, "clig": true, "calt": true, "rlig": true,
	"kern": true, "mark": true, "mkmk": true, "ccmp": true, "locl": true,
}

// validateFeatures rejects any requested feature tag/state pair this
// shaper cannot actually honor.
func validateFeatures(features map[string]bool) error {
	for tag, enabled := range features {
		def, known := unicodeShaperDefaultFeatures[tag]
		if !known || def != enabled {
			return fmt.Errorf("feature %q=%v not supported", tag, enabled)
		}
	}
	return nil
}

// isWellFormedLanguageTag applies a minimal BCP-47-shaped sanity check
// (ASCII letters/digits separated by hyphens) since go-text's
// language.NewLanguage accepts any string without validating it itself.
func isWellFormedLanguageTag(tag string) bool {
	if tag == "" {
		return false
	}
	for _, r := range tag {
		alnum := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if !alnum && r != '-' {
			return false
		}
	}
	return true
}

func (s *UnicodeShaper) ClearCache() {
	s.fontCache.Clear()
}

func (s *UnicodeShaper) Shape(text string, font Font, params ShapingParams) (ShapingResult, error) {
	result := ShapingResult{
		Direction:     params.Direction,
		AdvanceHeight: params.Size,
	}
	if text == "" {
		return result, nil
	}
	if font == nil {
		return result, &ShapingError{Kind: ShapingInvalidText, Backend: s.Name()}
	}
	if err := ValidateTextInput(text); err != nil {
		return result, &ShapingError{Kind: ShapingInvalidText, Backend: s.Name(), Err: err}
	}
	if err := validateFeatures(params.Features); err != nil {
		return result, &ShapingError{Kind: ShapingFeatureNotSupported, Backend: s.Name(), Err: err}
	}

	lang := "en"
	if params.Language != "" {
		if !isWellFormedLanguageTag(params.Language) {
			return result, &ShapingError{Kind: ShapingLanguageNotSupported, Backend: s.Name()}
		}
		lang = params.Language
	}

	gf, err := s.getOrParseFont(font)
	if err != nil {
		return result, &ShapingError{Kind: ShapingBackendInternal, Backend: s.Name(), Err: err}
	}

	face := gotextfont.NewFace(gf)
	runes := []rune(text)
	dir := mapDirection(params.Direction)

	var script language.Script
	if params.Script != "" {
		sc, ok := scriptByTag[params.Script]
		if !ok {
			return result, &ShapingError{Kind: ShapingScriptNotSupported, Backend: s.Name()}
		}
		script = sc
	} else {
		script = detectScript(runes)
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      face,
		Size:      floatToFixed(params.Size),
		Script:    script,
		Language:  language.NewLanguage(lang),
	}

	hb, _ := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.shaperPool.Put(hb)

	glyphs, advanceWidth := convertGlyphs(output.Glyphs, dir, params.LetterSpacing)
	result.Glyphs = glyphs
	result.AdvanceWidth = advanceWidth
	return result, nil
}

func (s *UnicodeShaper) getOrParseFont(f Font) (*gotextfont.Font, error) {
	if gf, ok := s.fontCache.Get(f); ok {
		return gf, nil
	}
	face, err := gotextfont.ParseTTF(bytes.NewReader(f.Bytes()))
	if err != nil {
		return nil, err
	}
	s.fontCache.Set(f, face.Font)
	return face.Font, nil
}

func mapDirection(d Direction) di.Direction {
	switch d {
	case DirectionRTL:
		return di.DirectionRTL
	case DirectionTTB:
		return di.DirectionTTB
	case DirectionBTT:
		return di.DirectionBTT
	default:
		return di.DirectionLTR
	}
}

func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

func convertGlyphs(glyphs []shaping.Glyph, dir di.Direction, letterSpacing float64) ([]PositionedGlyph, float64) {
	if len(glyphs) == 0 {
		return nil, 0
	}

	result := make([]PositionedGlyph, len(glyphs))
	var x, y, total float64

	for i, g := range glyphs {
		xOff := fixedToFloat(g.XOffset)
		yOff := fixedToFloat(g.YOffset)

		result[i] = PositionedGlyph{
			GID:     GlyphID(g.GlyphID),
			Cluster: g.TextIndex(),
			X:       x + xOff,
			Y:       y + yOff,
		}

		adv := fixedToFloat(g.Advance) + letterSpacing
		if dir.IsVertical() {
			result[i].YAdvance = adv
			y += adv
		} else {
			result[i].XAdvance = adv
			x += adv
		}
		total += adv
	}

	return result, total
}
