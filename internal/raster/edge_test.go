package raster

import "testing"

func TestNewEdgeOrientation(t *testing.T) {
	e := NewEdge(Point{X: 0, Y: 10}, Point{X: 5, Y: 0})
	if e.y0 != 0 || e.y1 != 10 {
		t.Fatalf("expected edge to be reordered so y0 < y1, got y0=%v y1=%v", e.y0, e.y1)
	}
	if e.dir != -1 {
		t.Fatalf("expected dir -1 for a descending-y input edge, got %d", e.dir)
	}
}

func TestNewEdgeAscending(t *testing.T) {
	e := NewEdge(Point{X: 0, Y: 0}, Point{X: 5, Y: 10})
	if e.dir != 1 {
		t.Fatalf("expected dir 1 for an ascending-y edge, got %d", e.dir)
	}
	if e.dx != 0.5 {
		t.Fatalf("expected dx 0.5, got %v", e.dx)
	}
}

func TestEdgeXAtY(t *testing.T) {
	e := NewEdge(Point{X: 0, Y: 0}, Point{X: 10, Y: 10})
	if got := e.XAtY(5); got != 5 {
		t.Fatalf("expected XAtY(5) == 5, got %v", got)
	}
}

func TestActiveEdgeTableAddSortRemove(t *testing.T) {
	aet := NewActiveEdgeTable()
	aet.Add(NewEdge(Point{X: 5, Y: 0}, Point{X: 5, Y: 10}))
	aet.Add(NewEdge(Point{X: 1, Y: 0}, Point{X: 1, Y: 10}))
	aet.Sort()

	edges := aet.Edges()
	if len(edges) != 2 {
		t.Fatalf("expected 2 active edges, got %d", len(edges))
	}
	if edges[0].x != 1 || edges[1].x != 5 {
		t.Fatalf("expected edges sorted by x, got %v, %v", edges[0].x, edges[1].x)
	}

	aet.Remove(10)
	if len(aet.Edges()) != 0 {
		t.Fatalf("expected edges past their yMax to be removed, got %d left", len(aet.Edges()))
	}
}

func TestActiveEdgeTableUpdateAndClear(t *testing.T) {
	aet := NewActiveEdgeTable()
	aet.Add(NewEdge(Point{X: 0, Y: 0}, Point{X: 10, Y: 10}))
	aet.Update()
	if edges := aet.Edges(); edges[0].x != 1 {
		t.Fatalf("expected Update to advance x by dx, got %v", edges[0].x)
	}

	aet.Clear()
	if len(aet.Edges()) != 0 {
		t.Fatalf("expected Clear to empty the table, got %d", len(aet.Edges()))
	}
}
