package glyph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pong/internal/pong"
)

func TestDefaultAtlasDimensions(t *testing.T) {
	a := Default()

	assert.Equal(t, 7, a.CellW)
	assert.Equal(t, 13, a.CellH)
	assert.Equal(t, 7*Columns, a.Image.Bounds().Dx())
	assert.Equal(t, 13*6, a.Image.Bounds().Dy(), "95 glyphs in rows of 16")
}

// coverage counts opaque pixels in the cell holding ch.
func coverage(a *Atlas, ch rune) int {
	i := int(ch - FirstRune)
	x0, y0 := (i%Columns)*a.CellW, (i/Columns)*a.CellH
	n := 0
	for y := y0; y < y0+a.CellH; y++ {
		for x := x0; x < x0+a.CellW; x++ {
			if a.Image.RGBAAt(x, y).A > 0 {
				n++
			}
		}
	}
	return n
}

func TestAtlasRasterizesDigits(t *testing.T) {
	a := Default()
	for ch := '0'; ch <= '9'; ch++ {
		assert.Positive(t, coverage(a, ch), "digit %q is blank", ch)
	}
	assert.Zero(t, coverage(a, ' '))
}

func TestLayoutAlignment(t *testing.T) {
	a := Default()
	size := 36.0
	scale := size / 13
	width := 2 * 7 * scale

	testCases := []struct {
		name  string
		align pong.Align
		wantX float64
	}{
		{"Left", pong.AlignLeft, 200},
		{"Center", pong.AlignCenter, 200 - width/2},
		{"Right", pong.AlignRight, 200 - width},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			quads := a.Layout("12", 200, 60, size, tc.align)
			require.Len(t, quads, 2)
			assert.InDelta(t, tc.wantX, quads[0].X0, 1e-3)
			assert.InDelta(t, quads[0].X1, quads[1].X0, 1e-3, "glyphs abut")
			assert.InDelta(t, 60-11*scale, quads[0].Y0, 1e-3, "baseline at y")
			assert.InDelta(t, size, quads[0].Y1-quads[0].Y0, 1e-3)
		})
	}
}

func TestLayoutUV(t *testing.T) {
	a := Default()
	quads := a.Layout("0", 0, 0, 13, pong.AlignLeft)
	require.Len(t, quads, 1)

	i := int('0' - FirstRune) // 16: first cell of the second row
	assert.Equal(t, 16, i)
	assert.InDelta(t, 0, quads[0].U0, 1e-6)
	assert.InDelta(t, 13.0/78.0, quads[0].V0, 1e-6)
	assert.InDelta(t, 7.0/112.0, quads[0].U1, 1e-6)
	assert.InDelta(t, 26.0/78.0, quads[0].V1, 1e-6)
}

func TestLayoutSkipsUnknownRunes(t *testing.T) {
	a := Default()
	quads := a.Layout("1é2", 0, 20, 13, pong.AlignLeft)
	require.Len(t, quads, 2)
	assert.InDelta(t, 14, quads[1].X0, 1e-6, "unknown rune still advances the pen")
	assert.InDelta(t, 21, a.Width("1é2", 13), 1e-9)
}
