// Package render draws a session onto any Canvas: the world through the
// camera, then the HUD, overlay and pause menu in screen space.
package render

import (
	"image/color"
	"math"

	"github.com/jakecoffman/cp"
)

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Canvas is a drawing surface measured in base-resolution pixels.
type Canvas interface {
	FillRect(x, y, w, h float64, c color.Color)
	StrokeRect(x, y, w, h, width float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	StrokeCircle(cx, cy, r, width float64, c color.Color)
	FillPolygon(points []cp.Vector, c color.Color)
	Text(s string, x, y, size float64, align Align, c color.Color)
	Size() (float64, float64)
}

// StarPoints returns the ten vertices of a five-pointed star, top point first.
func StarPoints(cx, cy, size float64) []cp.Vector {
	const spikes = 5
	outer := size / 2
	inner := outer / 2
	rot := math.Pi / 2 * 3
	step := math.Pi / spikes

	pts := make([]cp.Vector, 0, spikes*2)
	for i := 0; i < spikes; i++ {
		pts = append(pts, cp.Vector{X: cx + math.Cos(rot)*outer, Y: cy + math.Sin(rot)*outer})
		rot += step
		pts = append(pts, cp.Vector{X: cx + math.Cos(rot)*inner, Y: cy + math.Sin(rot)*inner})
		rot += step
	}
	return pts
}

// HeartPoints approximates a heart of the given height centred on (cx, cy).
func HeartPoints(cx, cy, size float64) []cp.Vector {
	const n = 24
	scale := size / 32
	pts := make([]cp.Vector, 0, n)
	for i := 0; i < n; i++ {
		t := 2 * math.Pi * float64(i) / n
		x := 16 * math.Pow(math.Sin(t), 3)
		y := 13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)
		pts = append(pts, cp.Vector{X: cx + x*scale, Y: cy - y*scale})
	}
	return pts
}

// SpikePoints fills a rectangle with a row of upward triangles as wide as
// the rectangle is tall.
func SpikePoints(x, y, w, h float64) [][]cp.Vector {
	if w <= 0 || h <= 0 {
		return nil
	}
	n := max(int(math.Round(w/h)), 1)
	tw := w / float64(n)
	out := make([][]cp.Vector, 0, n)
	for i := 0; i < n; i++ {
		left := x + float64(i)*tw
		out = append(out, []cp.Vector{
			{X: left, Y: y + h},
			{X: left + tw/2, Y: y},
			{X: left + tw, Y: y + h},
		})
	}
	return out
}
