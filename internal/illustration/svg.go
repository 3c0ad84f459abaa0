// Package illustration renders the catalog's vector artwork. Every function
// here is a pure mapping from a variant (and size, for containers) to SVG
// markup: identical inputs always yield byte-identical documents.
package illustration

import (
	"fmt"
	"strings"
)

// point is a 2D coordinate on the drawing canvas.
type point struct {
	X, Y float64
}

// style carries the paint attributes of one element. Dash is an SVG
// stroke-dasharray value, empty for solid strokes.
type style struct {
	Fill        string
	Stroke      string
	StrokeWidth float64
	Dash        string
}

// canvas accumulates SVG elements in paint order.
type canvas struct {
	width  float64
	height float64
	els    []string
}

func newCanvas(width, height float64) *canvas {
	return &canvas{width: width, height: height}
}

func (c *canvas) polygon(pts []point, st style) {
	coords := make([]string, len(pts))
	for i, p := range pts {
		coords[i] = num(p.X) + "," + num(p.Y)
	}
	c.els = append(c.els, fmt.Sprintf(`<polygon points="%s"%s/>`, strings.Join(coords, " "), paint(st)))
}

func (c *canvas) rect(x, y, w, h float64, st style) {
	c.els = append(c.els, fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s"%s/>`,
		num(x), num(y), num(w), num(h), paint(st)))
}

func (c *canvas) line(x1, y1, x2, y2 float64, st style) {
	c.els = append(c.els, fmt.Sprintf(`<line x1="%s" y1="%s" x2="%s" y2="%s"%s/>`,
		num(x1), num(y1), num(x2), num(y2), paint(st)))
}

func (c *canvas) circle(cx, cy, r float64, st style) {
	c.els = append(c.els, fmt.Sprintf(`<circle cx="%s" cy="%s" r="%s"%s/>`,
		num(cx), num(cy), num(r), paint(st)))
}

func (c *canvas) ellipse(cx, cy, rx, ry float64, st style) {
	c.els = append(c.els, fmt.Sprintf(`<ellipse cx="%s" cy="%s" rx="%s" ry="%s"%s/>`,
		num(cx), num(cy), num(rx), num(ry), paint(st)))
}

// String assembles the final document. Element order is insertion order, so
// callers paint back to front.
func (c *canvas) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s">`, num(c.width), num(c.height))
	for _, el := range c.els {
		b.WriteString(el)
	}
	b.WriteString("</svg>")
	return b.String()
}

func paint(st style) string {
	var b strings.Builder
	fill := st.Fill
	if fill == "" {
		fill = "none"
	}
	fmt.Fprintf(&b, ` fill="%s"`, fill)
	if st.Stroke != "" {
		fmt.Fprintf(&b, ` stroke="%s"`, st.Stroke)
		sw := st.StrokeWidth
		if sw == 0 {
			sw = 1
		}
		fmt.Fprintf(&b, ` stroke-width="%s"`, num(sw))
		if st.Dash != "" {
			fmt.Fprintf(&b, ` stroke-dasharray="%s"`, st.Dash)
		}
	}
	return b.String()
}

// num formats coordinates without a fixed decimal tail so documents stay
// compact and stable across runs.
func num(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}
