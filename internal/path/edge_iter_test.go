package path

import "testing"

func square(x0, y0, x1, y1 float64) []PathElement {
	return []PathElement{
		MoveTo{Point{x0, y0}},
		LineTo{Point{x1, y0}},
		LineTo{Point{x1, y1}},
		LineTo{Point{x0, y1}},
		Close{},
	}
}

func TestCollectEdgesClosesSingleSubpath(t *testing.T) {
	edges := CollectEdges(square(0, 0, 10, 10))
	// 3 explicit LineTo edges plus the implicit close-back-to-start edge.
	if len(edges) != 4 {
		t.Fatalf("expected 4 edges for a closed square, got %d", len(edges))
	}
	last := edges[len(edges)-1]
	if last.P1 != (Point{0, 0}) {
		t.Fatalf("expected closing edge to return to subpath start (0,0), got %v", last.P1)
	}
}

// TestCollectEdgesDoesNotBridgeSubpaths is the regression case for a
// "closes to the first point of the whole path" bug: a glyph with a hole
// (outer contour plus an inner counter, like "O") must close each subpath
// to its OWN start, never to the first point of an earlier subpath.
func TestCollectEdgesDoesNotBridgeSubpaths(t *testing.T) {
	outer := square(0, 0, 10, 10)
	inner := square(3, 3, 7, 7)
	elems := append(append([]PathElement{}, outer...), inner...)

	edges := CollectEdges(elems)
	if len(edges) != 8 {
		t.Fatalf("expected 4 edges per subpath (8 total), got %d", len(edges))
	}

	for _, e := range edges {
		bridges := (e.P0.X == 0 || e.P0.X == 10) && (e.P1.X == 3 || e.P1.X == 7)
		bridges = bridges || (e.P1.X == 0 || e.P1.X == 10) && (e.P0.X == 3 || e.P0.X == 7)
		if bridges {
			t.Fatalf("edge %v bridges between outer and inner subpaths", e)
		}
	}

	innerClose := edges[7]
	if innerClose.P1 != (Point{3, 3}) {
		t.Fatalf("expected inner subpath to close to its own start (3,3), got %v", innerClose.P1)
	}
}

func TestCollectEdgesSkipsZeroLengthEdges(t *testing.T) {
	elems := []PathElement{
		MoveTo{Point{0, 0}},
		LineTo{Point{0, 0}},
		LineTo{Point{5, 5}},
		Close{},
	}
	edges := CollectEdges(elems)
	for _, e := range edges {
		if e.P0 == e.P1 {
			t.Fatalf("expected zero-length edges to be skipped, got %v", e)
		}
	}
}

func TestCollectEdgesEmptyPath(t *testing.T) {
	if edges := CollectEdges(nil); edges != nil {
		t.Fatalf("expected nil edges for an empty path, got %v", edges)
	}
}
