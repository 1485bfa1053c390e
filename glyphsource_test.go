package typf

import (
	"reflect"
	"testing"
)

// TestGlyphSourcePreferenceFromPartsScenario is spec's concrete scenario S4.
func TestGlyphSourcePreferenceFromPartsScenario(t *testing.T) {
	prefs := NewGlyphSourcePreferenceFromParts(
		[]GlyphSourceKind{SourceColorSVG, SourceOutlineTrueType, SourceColorSVG, SourceColorLayeredV0},
		[]GlyphSourceKind{SourceColorSVG, SourceColorBitmapCBDT},
	)
	want := []GlyphSourceKind{SourceOutlineTrueType, SourceColorLayeredV0}
	if got := prefs.Prefer(); !reflect.DeepEqual(got, want) {
		t.Errorf("Prefer() = %v, want %v", got, want)
	}
	if !prefs.Denies(SourceColorSVG) {
		t.Error("expected SourceColorSVG to be denied")
	}
	if !prefs.Denies(SourceColorBitmapCBDT) {
		t.Error("expected SourceColorBitmapCBDT to be denied")
	}
}

// TestGlyphSourcePreferenceEmptyPreferDefaultsWithNoDeny covers Testable
// Property 7's "empty prefer with deny = Ø yields the default list" clause.
func TestGlyphSourcePreferenceEmptyPreferDefaultsWithNoDeny(t *testing.T) {
	prefs := NewGlyphSourcePreferenceFromParts(nil, nil)
	want := DefaultGlyphSourcePreference().Prefer()
	if got := prefs.Prefer(); !reflect.DeepEqual(got, want) {
		t.Errorf("Prefer() = %v, want default %v", got, want)
	}
}

// TestGlyphSourcePreferenceEmptyPreferDefaultsMinusDeny covers the case
// where prefer is empty but deny is not: the substituted default list still
// has denied entries filtered out.
func TestGlyphSourcePreferenceEmptyPreferDefaultsMinusDeny(t *testing.T) {
	prefs := NewGlyphSourcePreferenceFromParts(nil, []GlyphSourceKind{SourceOutlineTrueType})
	for _, k := range prefs.Prefer() {
		if k == SourceOutlineTrueType {
			t.Error("expected denied source to be absent from the substituted default list")
		}
	}
	if len(prefs.Prefer()) != len(defaultGlyphSourcePreference)-1 {
		t.Errorf("expected default list minus one entry, got %v", prefs.Prefer())
	}
}

// TestGlyphSourcePreferenceDropsDuplicates covers Testable Property 7's
// "duplicates in prefer do not appear twice" clause.
func TestGlyphSourcePreferenceDropsDuplicates(t *testing.T) {
	prefs := NewGlyphSourcePreferenceFromParts(
		[]GlyphSourceKind{SourceOutlineTrueType, SourceOutlineTrueType, SourceColorSVG},
		nil,
	)
	want := []GlyphSourceKind{SourceOutlineTrueType, SourceColorSVG}
	if got := prefs.Prefer(); !reflect.DeepEqual(got, want) {
		t.Errorf("Prefer() = %v, want %v", got, want)
	}
}

// TestGlyphSourcePreferenceSelectEquivalence covers Testable Property 7's
// core equivalence: from_parts(x, deny); select(S) is equivalent to
// filtering x by S \ deny and taking the first.
func TestGlyphSourcePreferenceSelectEquivalence(t *testing.T) {
	prefs := NewGlyphSourcePreferenceFromParts(
		[]GlyphSourceKind{SourceColorSVG, SourceOutlineTrueType, SourceColorLayeredV0},
		[]GlyphSourceKind{SourceColorSVG},
	)
	available := []GlyphSourceKind{SourceColorSVG, SourceColorLayeredV0, SourceOutlineTrueType}

	got, ok := prefs.Select(available)
	if !ok {
		t.Fatal("expected a selection")
	}
	if got != SourceOutlineTrueType {
		t.Errorf("Select() = %v, want SourceOutlineTrueType (first of prefer\\deny present in available)", got)
	}
}

func TestGlyphSourcePreferenceSelectNoneAvailable(t *testing.T) {
	prefs := NewGlyphSourcePreferenceFromParts([]GlyphSourceKind{SourceOutlineTrueType}, nil)
	if _, ok := prefs.Select([]GlyphSourceKind{SourceColorSVG}); ok {
		t.Error("expected ok=false when none of the preferred sources are available")
	}
}
