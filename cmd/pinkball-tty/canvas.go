package main

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/pinkball/common"
	"github.com/milk9111/pinkball/ecs/render"
)

// cellCanvas draws onto terminal cells. Shapes paint cell backgrounds;
// text paints runes over whatever background is already there. The
// logical 800x600 canvas is scaled to the screen size on every call.
type cellCanvas struct {
	screen tcell.Screen
}

func newCellCanvas(s tcell.Screen) *cellCanvas {
	return &cellCanvas{screen: s}
}

func tcellColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

// alpha is c's 8-bit opacity. Translucent fills darken the existing
// background instead of replacing it.
func alpha(c color.Color) uint32 {
	_, _, _, a := c.RGBA()
	return a >> 8
}

func (c *cellCanvas) scale() (float64, float64) {
	cols, rows := c.screen.Size()
	return float64(cols) / common.BaseWidth, float64(rows) / common.BaseHeight
}

func (c *cellCanvas) paint(col, row int, clr color.Color) {
	cols, rows := c.screen.Size()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return
	}
	_, _, style, _ := c.screen.GetContent(col, row)
	if a := alpha(clr); a < 255 {
		_, bg, _ := style.Decompose()
		c.screen.SetContent(col, row, ' ', nil, style.Background(dimColor(bg, a)))
		return
	}
	c.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault.Background(tcellColor(clr)))
}

// dimColor darkens bg by the overlay's alpha.
func dimColor(bg tcell.Color, a uint32) tcell.Color {
	r, g, b := bg.RGB()
	if r < 0 {
		return tcell.ColorBlack
	}
	keep := 1 - float64(a)/255
	return tcell.NewRGBColor(int32(float64(r)*keep), int32(float64(g)*keep), int32(float64(b)*keep))
}

// cells visits every cell whose centre falls in the logical rectangle.
func (c *cellCanvas) cells(x, y, w, h float64, fn func(col, row int, lx, ly float64)) {
	sx, sy := c.scale()
	c0 := int(math.Floor(x * sx))
	c1 := int(math.Ceil((x + w) * sx))
	r0 := int(math.Floor(y * sy))
	r1 := int(math.Ceil((y + h) * sy))
	for row := r0; row < r1; row++ {
		ly := (float64(row) + 0.5) / sy
		if ly < y || ly > y+h {
			continue
		}
		for col := c0; col < c1; col++ {
			lx := (float64(col) + 0.5) / sx
			if lx < x || lx > x+w {
				continue
			}
			fn(col, row, lx, ly)
		}
	}
}

func (c *cellCanvas) FillRect(x, y, w, h float64, clr color.Color) {
	if alpha(clr) == 0 {
		return
	}
	c.cells(x, y, w, h, func(col, row int, _, _ float64) { c.paint(col, row, clr) })
}

func (c *cellCanvas) StrokeRect(x, y, w, h, width float64, clr color.Color) {
	c.FillRect(x, y, w, width, clr)
	c.FillRect(x, y+h-width, w, width, clr)
	c.FillRect(x, y, width, h, clr)
	c.FillRect(x+w-width, y, width, h, clr)
}

func (c *cellCanvas) FillCircle(cx, cy, r float64, clr color.Color) {
	c.cells(cx-r, cy-r, 2*r, 2*r, func(col, row int, lx, ly float64) {
		if math.Hypot(lx-cx, ly-cy) <= r {
			c.paint(col, row, clr)
		}
	})
}

func (c *cellCanvas) StrokeCircle(cx, cy, r, width float64, clr color.Color) {
	// A cell is coarser than any stroke; mark the outermost ring of cells.
	sx, sy := c.scale()
	ring := math.Max(width, math.Max(1/sx, 1/sy))
	c.cells(cx-r, cy-r, 2*r, 2*r, func(col, row int, lx, ly float64) {
		d := math.Hypot(lx-cx, ly-cy)
		if d <= r && d >= r-ring {
			c.paint(col, row, clr)
		}
	})
}

func (c *cellCanvas) FillPolygon(points []cp.Vector, clr color.Color) {
	if len(points) < 3 {
		return
	}
	bb := cp.NewBBForExtents(points[0], 0, 0)
	for _, p := range points[1:] {
		bb = bb.Expand(p)
	}
	c.cells(bb.L, bb.B, bb.R-bb.L, bb.T-bb.B, func(col, row int, lx, ly float64) {
		if insidePolygon(points, lx, ly) {
			c.paint(col, row, clr)
		}
	})
}

func insidePolygon(pts []cp.Vector, x, y float64) bool {
	in := false
	for i, j := 0, len(pts)-1; i < len(pts); j, i = i, i+1 {
		a, b := pts[i], pts[j]
		if (a.Y > y) != (b.Y > y) && x < (b.X-a.X)*(y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}

func (c *cellCanvas) Text(s string, x, y, size float64, align render.Align, clr color.Color) {
	sx, sy := c.scale()
	runes := []rune(s)
	col := int(math.Round(x * sx))
	if align == render.AlignCenter {
		col -= len(runes) / 2
	}
	// y is the baseline; put the row at the glyphs' middle.
	row := int(math.Floor((y - size/2) * sy))
	cols, rows := c.screen.Size()
	if row < 0 || row >= rows {
		return
	}
	fg := tcellColor(clr)
	for i, r := range runes {
		cx := col + i
		if cx < 0 || cx >= cols {
			continue
		}
		_, _, style, _ := c.screen.GetContent(cx, row)
		c.screen.SetContent(cx, row, r, nil, style.Foreground(fg))
	}
}

func (c *cellCanvas) Size() (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}
