package typf

// Shaper converts text into positioned glyphs, per spec §4.2. Implementations
// must be safe to share and invoke concurrently across goroutines (spec §5);
// a Shaper holding a cache must serialize access to it itself.
type Shaper interface {
	// Name identifies the backend, used by the registry (C9) and in error
	// context.
	Name() string

	// Shape runs the shaping contract: empty text yields zero glyphs, zero
	// advance width, and AdvanceHeight == params.Size.
	Shape(text string, font Font, params ShapingParams) (ShapingResult, error)

	// SupportsScript reports whether this backend can shape the given
	// Unicode script, identified by its four-letter ISO 15924 tag (e.g.
	// "Latn", "Arab"). Callers may dispatch by script support.
	SupportsScript(script string) bool

	// ClearCache drops any internal cache the backend maintains. Safe to
	// call at any time, including concurrently with Shape.
	ClearCache()
}
