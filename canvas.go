package main

import (
	"bytes"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/pinkball/ecs/render"
	"golang.org/x/image/font/gofont/goregular"
)

// ebitenCanvas adapts an ebiten image to render.Canvas. Text y is the
// baseline.
type ebitenCanvas struct {
	dst     *ebiten.Image
	source  *text.GoTextFaceSource
	faces   map[float64]*text.GoTextFace
	fillImg *ebiten.Image
	vs      []ebiten.Vertex
	is      []uint16
}

func newEbitenCanvas() *ebitenCanvas {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Printf("canvas: load font: %v", err)
	}
	fill := ebiten.NewImage(1, 1)
	fill.Fill(color.White)
	return &ebitenCanvas{source: src, faces: map[float64]*text.GoTextFace{}, fillImg: fill}
}

func (c *ebitenCanvas) target(dst *ebiten.Image) *ebitenCanvas {
	c.dst = dst
	return c
}

func (c *ebitenCanvas) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (c *ebitenCanvas) StrokeRect(x, y, w, h, width float64, clr color.Color) {
	vector.StrokeRect(c.dst, float32(x), float32(y), float32(w), float32(h), float32(width), clr, false)
}

func (c *ebitenCanvas) FillCircle(cx, cy, r float64, clr color.Color) {
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), clr, true)
}

func (c *ebitenCanvas) StrokeCircle(cx, cy, r, width float64, clr color.Color) {
	vector.StrokeCircle(c.dst, float32(cx), float32(cy), float32(r), float32(width), clr, true)
}

func (c *ebitenCanvas) FillPolygon(points []cp.Vector, clr color.Color) {
	if len(points) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	c.vs, c.is = path.AppendVerticesAndIndicesForFilling(c.vs[:0], c.is[:0])
	r, g, b, a := clr.RGBA()
	for i := range c.vs {
		c.vs[i].SrcX, c.vs[i].SrcY = 0, 0
		c.vs[i].ColorR = float32(r) / 0xffff
		c.vs[i].ColorG = float32(g) / 0xffff
		c.vs[i].ColorB = float32(b) / 0xffff
		c.vs[i].ColorA = float32(a) / 0xffff
	}
	c.dst.DrawTriangles(c.vs, c.is, c.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (c *ebitenCanvas) face(size float64) *text.GoTextFace {
	if f, ok := c.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: c.source, Size: size}
	c.faces[size] = f
	return f
}

func (c *ebitenCanvas) Text(s string, x, y, size float64, align render.Align, clr color.Color) {
	if c.source == nil || s == "" {
		return
	}
	face := c.face(size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(clr)
	if align == render.AlignCenter {
		op.PrimaryAlign = text.AlignCenter
	}
	text.Draw(c.dst, s, face, op)
}

func (c *ebitenCanvas) Size() (float64, float64) {
	b := c.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}
