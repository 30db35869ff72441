package pong

import "fmt"

// fixedRand replays vals in a loop.
type fixedRand struct {
	vals []float64
	i    int
}

func (r *fixedRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

// newTestState serves straight right: vx = +speed, vy = 0.
func newTestState() *State {
	return NewState(DefaultTuning(), &fixedRand{vals: []float64{0.25, 0.5}})
}

type drawCall struct {
	Op   string
	Args string
	Col  RGB
}

// recordingSurface keeps every draw call in order.
type recordingSurface struct {
	calls []drawCall
}

func (r *recordingSurface) FillRect(x, y, w, h float64, col RGB) {
	r.calls = append(r.calls, drawCall{"rect", fmt.Sprintf("%g,%g,%g,%g", x, y, w, h), col})
}

func (r *recordingSurface) FillCircle(cx, cy, rad float64, col RGB) {
	r.calls = append(r.calls, drawCall{"circle", fmt.Sprintf("%g,%g,%g", cx, cy, rad), col})
}

func (r *recordingSurface) DrawText(text string, x, y, size float64, align Align, col RGB) {
	r.calls = append(r.calls, drawCall{"text", fmt.Sprintf("%s@%g,%g/%g/%d", text, x, y, size, align), col})
}
