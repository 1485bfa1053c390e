package typf

// PathCommand represents a single vector drawing instruction, matching the
// MoveTo/LineTo/QuadTo/CubicTo/Close family a glyph outline is built from.
type PathCommand interface {
	isPathCommand()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathCommand() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathCommand() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathCommand() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathCommand() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathCommand() {}

// AffineTransform is a 2D affine transformation matrix:
//
//	[A B Tx]
//	[C D Ty]
//	[0 0 1 ]
type AffineTransform struct {
	A, B, C, D float64
	Tx, Ty     float64
}

// IdentityTransform returns the identity transformation.
func IdentityTransform() AffineTransform {
	return AffineTransform{A: 1, D: 1}
}

// ScaleTransform returns a scaling transformation.
func ScaleTransform(sx, sy float64) AffineTransform {
	return AffineTransform{A: sx, D: sy}
}

// TranslateTransform returns a translation transformation.
func TranslateTransform(tx, ty float64) AffineTransform {
	return AffineTransform{A: 1, D: 1, Tx: tx, Ty: ty}
}

// TransformPoint applies the transformation to a point.
func (m AffineTransform) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.Tx,
		Y: m.C*p.X + m.D*p.Y + m.Ty,
	}
}

// Multiply returns the composition of m and other: applying the result to a
// point is equivalent to applying other first, then m.
func (m AffineTransform) Multiply(other AffineTransform) AffineTransform {
	return AffineTransform{
		A:  m.A*other.A + m.B*other.C,
		B:  m.A*other.B + m.B*other.D,
		C:  m.C*other.A + m.D*other.C,
		D:  m.C*other.B + m.D*other.D,
		Tx: m.A*other.Tx + m.B*other.Ty + m.Tx,
		Ty: m.C*other.Tx + m.D*other.Ty + m.Ty,
	}
}

// Path is a single drawable contour group: a sequence of PathCommands plus
// the fill/stroke it should be painted with when exported.
type Path struct {
	Commands []PathCommand
	Fill     *Color
	Stroke   *Color
	// StrokeWidth is only meaningful when Stroke is set.
	StrokeWidth float64
}

// PathSet is the vector render output for one glyph run: a small, ordered
// collection of Paths (one per color layer for COLR glyphs, a single Path
// for a plain outline glyph), plus an optional transform applied on export.
type PathSet struct {
	Paths     []Path
	Transform *AffineTransform
}

// NewPath creates an empty Path building helper. The returned builder's
// current contents can be read back via Commands.
func NewPath() *Path {
	return &Path{Commands: make([]PathCommand, 0, 16)}
}

// MoveTo appends a move-to command.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, MoveTo{Point: Pt(x, y)})
}

// LineTo appends a line-to command.
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, LineTo{Point: Pt(x, y)})
}

// QuadraticTo appends a quadratic Bezier command.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	p.Commands = append(p.Commands, QuadTo{Control: Pt(cx, cy), Point: Pt(x, y)})
}

// CubicTo appends a cubic Bezier command.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.Commands = append(p.Commands, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
}

// CloseSubpath appends a close-subpath command.
func (p *Path) CloseSubpath() {
	p.Commands = append(p.Commands, Close{})
}

// Transformed returns a new Path with m applied to every point, preserving
// fill/stroke.
func (p *Path) Transformed(m AffineTransform) *Path {
	result := &Path{
		Commands:    make([]PathCommand, len(p.Commands)),
		Fill:        p.Fill,
		Stroke:      p.Stroke,
		StrokeWidth: p.StrokeWidth,
	}
	for i, cmd := range p.Commands {
		switch c := cmd.(type) {
		case MoveTo:
			result.Commands[i] = MoveTo{Point: m.TransformPoint(c.Point)}
		case LineTo:
			result.Commands[i] = LineTo{Point: m.TransformPoint(c.Point)}
		case QuadTo:
			result.Commands[i] = QuadTo{
				Control: m.TransformPoint(c.Control),
				Point:   m.TransformPoint(c.Point),
			}
		case CubicTo:
			result.Commands[i] = CubicTo{
				Control1: m.TransformPoint(c.Control1),
				Control2: m.TransformPoint(c.Control2),
				Point:    m.TransformPoint(c.Point),
			}
		case Close:
			result.Commands[i] = Close{}
		}
	}
	return result
}

// Bounds returns the axis-aligned bounding box of all points in the path
// (control points included, so it over-estimates curve extents slightly).
// ok is false for an empty path.
func (p *Path) Bounds() (minX, minY, maxX, maxY float64, ok bool) {
	first := true
	consider := func(pt Point) {
		if first {
			minX, minY, maxX, maxY = pt.X, pt.Y, pt.X, pt.Y
			first = false
			return
		}
		if pt.X < minX {
			minX = pt.X
		}
		if pt.Y < minY {
			minY = pt.Y
		}
		if pt.X > maxX {
			maxX = pt.X
		}
		if pt.Y > maxY {
			maxY = pt.Y
		}
	}
	for _, cmd := range p.Commands {
		switch c := cmd.(type) {
		case MoveTo:
			consider(c.Point)
		case LineTo:
			consider(c.Point)
		case QuadTo:
			consider(c.Control)
			consider(c.Point)
		case CubicTo:
			consider(c.Control1)
			consider(c.Control2)
			consider(c.Point)
		}
	}
	return minX, minY, maxX, maxY, !first
}
