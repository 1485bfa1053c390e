package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fontlaborg/typf"
)

// SVGExporter encodes a PathSet as an SVG document: one <path> element per
// typf.Path, with its own fill/stroke, inside a top-level <g> carrying the
// PathSet's optional transform. Grounded on the path-command-to-SVG-path-data
// idiom implied by typf.PathCommand's MoveTo/LineTo/QuadTo/CubicTo/Close set.
type SVGExporter struct{}

func NewSVGExporter() *SVGExporter { return &SVGExporter{} }

func (e *SVGExporter) Name() string { return "svg" }

func (e *SVGExporter) SupportsFormat(format string) bool { return format == "vector" }

func (e *SVGExporter) Export(output typf.RenderOutput) (typf.ExportedFile, error) {
	if output.Vector == nil {
		return typf.ExportedFile{}, &typf.ExportError{Kind: typf.ExportFormatNotSupported, Backend: e.Name()}
	}

	minX, minY, maxX, maxY, ok := pathSetBounds(output.Vector)
	if !ok {
		minX, minY, maxX, maxY = 0, 0, 1, 1
	}
	width, height := maxX-minX, maxY-minY

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s" width="%s" height="%s">`+"\n",
		f(minX), f(minY), f(width), f(height), f(width), f(height))

	b.WriteString("<g")
	if output.Vector.Transform != nil {
		fmt.Fprintf(&b, ` transform="matrix(%s,%s,%s,%s,%s,%s)"`,
			f(output.Vector.Transform.A), f(output.Vector.Transform.B),
			f(output.Vector.Transform.C), f(output.Vector.Transform.D),
			f(output.Vector.Transform.Tx), f(output.Vector.Transform.Ty))
	}
	b.WriteString(">\n")

	for _, p := range output.Vector.Paths {
		b.WriteString("<path d=\"")
		b.WriteString(pathData(&p))
		b.WriteString("\"")
		if p.Fill != nil {
			fmt.Fprintf(&b, ` fill="%s"`, hexColor(*p.Fill))
		} else {
			b.WriteString(` fill="none"`)
		}
		if p.Stroke != nil {
			fmt.Fprintf(&b, ` stroke="%s" stroke-width="%s"`, hexColor(*p.Stroke), f(p.StrokeWidth))
		}
		b.WriteString("/>\n")
	}

	b.WriteString("</g>\n</svg>\n")

	return typf.ExportedFile{Bytes: []byte(b.String()), Extension: "svg", MIMEType: "image/svg+xml"}, nil
}

func pathSetBounds(ps *typf.PathSet) (minX, minY, maxX, maxY float64, ok bool) {
	first := true
	for i := range ps.Paths {
		x0, y0, x1, y1, pathOK := ps.Paths[i].Bounds()
		if !pathOK {
			continue
		}
		if first {
			minX, minY, maxX, maxY = x0, y0, x1, y1
			first = false
			continue
		}
		if x0 < minX {
			minX = x0
		}
		if y0 < minY {
			minY = y0
		}
		if x1 > maxX {
			maxX = x1
		}
		if y1 > maxY {
			maxY = y1
		}
	}
	return minX, minY, maxX, maxY, !first
}

func pathData(p *typf.Path) string {
	var b strings.Builder
	for _, c := range p.Commands {
		switch cmd := c.(type) {
		case typf.MoveTo:
			fmt.Fprintf(&b, "M%s,%s ", f(cmd.Point.X), f(cmd.Point.Y))
		case typf.LineTo:
			fmt.Fprintf(&b, "L%s,%s ", f(cmd.Point.X), f(cmd.Point.Y))
		case typf.QuadTo:
			fmt.Fprintf(&b, "Q%s,%s %s,%s ", f(cmd.Control.X), f(cmd.Control.Y), f(cmd.Point.X), f(cmd.Point.Y))
		case typf.CubicTo:
			fmt.Fprintf(&b, "C%s,%s %s,%s %s,%s ",
				f(cmd.Control1.X), f(cmd.Control1.Y), f(cmd.Control2.X), f(cmd.Control2.Y), f(cmd.Point.X), f(cmd.Point.Y))
		case typf.Close:
			b.WriteString("Z ")
		}
	}
	return strings.TrimSpace(b.String())
}

func f(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func hexColor(c typf.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
