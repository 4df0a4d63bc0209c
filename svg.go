package inkpad

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

type svgDoc struct {
	XMLName xml.Name  `xml:"svg"`
	Xmlns   string    `xml:"xmlns,attr"`
	Width   string    `xml:"width,attr"`
	Height  string    `xml:"height,attr"`
	ViewBox string    `xml:"viewBox,attr"`
	Rect    *svgRect  `xml:"rect,omitempty"`
	Paths   []svgPath `xml:"path"`
}

type svgRect struct {
	X      string `xml:"x,attr"`
	Y      string `xml:"y,attr"`
	Width  string `xml:"width,attr"`
	Height string `xml:"height,attr"`
	Fill   string `xml:"fill,attr"`
}

type svgPath struct {
	D        string `xml:"d,attr"`
	Fill     string `xml:"fill,attr"`
	FillRule string `xml:"fill-rule,attr"`
}

// ToSVG writes the stroke collection as an SVG document. The frame
// follows opts the same way ToImage does: the full canvas by default,
// the inflated ink bounds when trimming. An empty collection still
// produces a valid document.
func (p *Pad) ToSVG(w io.Writer, opts *ExportOptions) error {
	opts = p.fillOptions(opts)
	frame := p.exportFrame(opts)

	doc := svgDoc{
		Xmlns:   "http://www.w3.org/2000/svg",
		Width:   svgNum(frame.Width()),
		Height:  svgNum(frame.Height()),
		ViewBox: fmt.Sprintf("%s %s %s %s", svgNum(frame.MinX), svgNum(frame.MinY), svgNum(frame.Width()), svgNum(frame.Height())),
	}
	if !opts.Transparent {
		doc.Rect = &svgRect{
			X:      svgNum(frame.MinX),
			Y:      svgNum(frame.MinY),
			Width:  svgNum(frame.Width()),
			Height: svgNum(frame.Height()),
			Fill:   opts.BackgroundColor,
		}
	}

	for _, s := range p.strokes {
		pts, widths := p.strokeGeometry(s)
		var path *Path
		switch len(pts) {
		case 0:
			continue
		case 1:
			path = dotPath(pts[0], p.dotRadius(s.MaxWidth))
		default:
			path = Outline(pts, widths)
		}
		col := s.Color
		if opts.PenColor != "" {
			col = opts.PenColor
		}
		doc.Paths = append(doc.Paths, svgPath{
			D:        pathData(path),
			Fill:     col,
			FillRule: "nonzero",
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("unable to encode the SVG document: %v", err)
	}
	return enc.Flush()
}

// pathData serializes a path into SVG path data. Quadratics map to Q
// commands; circular arcs to A commands, with the sweep flag derived
// from the arc orientation.
func pathData(path *Path) string {
	var sb strings.Builder

	var cur Point
	for _, seg := range path.Segments() {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		switch seg.Op {
		case MoveOp:
			fmt.Fprintf(&sb, "M %s %s", svgNum(seg.To.X), svgNum(seg.To.Y))
			cur = seg.To
		case QuadOp:
			fmt.Fprintf(&sb, "Q %s %s %s %s", svgNum(seg.Ctrl.X), svgNum(seg.Ctrl.Y), svgNum(seg.To.X), svgNum(seg.To.Y))
			cur = seg.To
		case ArcOp:
			c, r, ok := circumcircle(cur, seg.Ctrl, seg.To)
			if !ok {
				fmt.Fprintf(&sb, "L %s %s", svgNum(seg.To.X), svgNum(seg.To.Y))
				cur = seg.To
				continue
			}
			sweepFlag := 0
			if arcSweep(c, cur, seg.Ctrl, seg.To) > 0 {
				sweepFlag = 1
			}
			fmt.Fprintf(&sb, "A %s %s 0 0 %d %s %s", svgNum(r), svgNum(r), sweepFlag, svgNum(seg.To.X), svgNum(seg.To.Y))
			cur = seg.To
		case CloseOp:
			sb.WriteByte('Z')
		}
	}
	return sb.String()
}

// svgNum formats a coordinate with three decimals, trailing zeros
// trimmed.
func svgNum(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "-0" || s == "" {
		s = "0"
	}
	return s
}
