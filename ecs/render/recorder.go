package render

import (
	"image/color"

	"github.com/jakecoffman/cp"
)

// Op is one recorded canvas call.
type Op struct {
	Kind   string
	X, Y   float64
	W, H   float64
	Points int
	Text   string
	Color  color.RGBA
}

// Recorder is a Canvas that remembers what was drawn instead of drawing it.
type Recorder struct {
	W, H float64
	Ops  []Op
}

func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h}
}

func rgba(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "fill_rect", X: x, Y: y, W: w, H: h, Color: rgba(c)})
}

func (r *Recorder) StrokeRect(x, y, w, h, _ float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "stroke_rect", X: x, Y: y, W: w, H: h, Color: rgba(c)})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "fill_circle", X: cx, Y: cy, W: radius * 2, H: radius * 2, Color: rgba(c)})
}

func (r *Recorder) StrokeCircle(cx, cy, radius, _ float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "stroke_circle", X: cx, Y: cy, W: radius * 2, H: radius * 2, Color: rgba(c)})
}

func (r *Recorder) FillPolygon(points []cp.Vector, c color.Color) {
	op := Op{Kind: "fill_polygon", Points: len(points), Color: rgba(c)}
	if len(points) > 0 {
		op.X, op.Y = points[0].X, points[0].Y
	}
	r.Ops = append(r.Ops, op)
}

func (r *Recorder) Text(s string, x, y, _ float64, _ Align, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "text", X: x, Y: y, Text: s, Color: rgba(c)})
}

func (r *Recorder) Size() (float64, float64) { return r.W, r.H }

// Texts returns every string drawn, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }
