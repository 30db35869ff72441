package pong

// Align anchors text horizontally at its x coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Surface is a fixed-size drawing target. Coordinates are surface units with
// the origin at the top-left corner; text y is the baseline.
type Surface interface {
	FillRect(x, y, w, h float64, col RGB)
	FillCircle(cx, cy, r float64, col RGB)
	DrawText(text string, x, y, size float64, align Align, col RGB)
}
