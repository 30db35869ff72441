// Package glyph rasterizes a fixed-width bitmap face into a texture atlas and
// lays out strings as textured quads in surface coordinates.
package glyph

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"pong/internal/pong"
)

// Printable ASCII range held by the atlas.
const (
	FirstRune = ' '
	LastRune  = '~'
	Columns   = 16
)

// Atlas is a grid of equally sized glyph cells. Image is white with the
// glyph coverage in the alpha channel.
type Atlas struct {
	Image *image.RGBA

	CellW, CellH int
	Ascent       int
	Advance      int
}

// Quad is one glyph: surface rectangle (X0,Y0)-(X1,Y1) and the atlas UV
// rectangle (U0,V0)-(U1,V1) to sample.
type Quad struct {
	X0, Y0, X1, Y1 float32
	U0, V0, U1, V1 float32
}

// New rasterizes FirstRune..LastRune of face, one glyph per cell. Cells are
// one advance wide so neighbouring glyphs never bleed into each other.
func New(face *basicfont.Face) *Atlas {
	n := int(LastRune-FirstRune) + 1
	rows := (n + Columns - 1) / Columns
	a := &Atlas{
		Image:   image.NewRGBA(image.Rect(0, 0, Columns*face.Advance, rows*face.Height)),
		CellW:   face.Advance,
		CellH:   face.Height,
		Ascent:  face.Ascent,
		Advance: face.Advance,
	}

	d := &font.Drawer{Dst: a.Image, Src: image.White, Face: face}
	for i := 0; i < n; i++ {
		col, row := i%Columns, i/Columns
		d.Dot = fixed.P(col*a.CellW, row*a.CellH+a.Ascent)
		d.DrawString(string(rune(FirstRune + i)))
	}
	return a
}

// Default is the 7x13 face shipped with x/image.
func Default() *Atlas { return New(basicfont.Face7x13) }

// Scale is the factor that makes a cell size units tall.
func (a *Atlas) Scale(size float64) float64 {
	return size / float64(a.CellH)
}

// Width is the advance of text at size, in surface units.
func (a *Atlas) Width(text string, size float64) float64 {
	n := 0
	for range text {
		n++
	}
	return float64(n*a.Advance) * a.Scale(size)
}

// Layout places text with its baseline at y, anchored at x per align.
// Runes outside the atlas advance the pen but produce no quad.
func (a *Atlas) Layout(text string, x, y, size float64, align pong.Align) []Quad {
	scale := a.Scale(size)
	switch align {
	case pong.AlignCenter:
		x -= a.Width(text, size) / 2
	case pong.AlignRight:
		x -= a.Width(text, size)
	}
	top := y - float64(a.Ascent)*scale
	w := float64(a.CellW) * scale
	h := float64(a.CellH) * scale

	b := a.Image.Bounds()
	atlasW, atlasH := float32(b.Dx()), float32(b.Dy())

	quads := make([]Quad, 0, len(text))
	pen := x
	for _, ch := range text {
		if ch >= FirstRune && ch <= LastRune {
			i := int(ch - FirstRune)
			col, row := i%Columns, i/Columns
			quads = append(quads, Quad{
				X0: float32(pen), Y0: float32(top),
				X1: float32(pen + w), Y1: float32(top + h),
				U0: float32(col*a.CellW) / atlasW, V0: float32(row*a.CellH) / atlasH,
				U1: float32((col+1)*a.CellW) / atlasW, V1: float32((row+1)*a.CellH) / atlasH,
			})
		}
		pen += float64(a.Advance) * scale
	}
	return quads
}
