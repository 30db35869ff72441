package pong

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Floats returns the colour as normalized components.
func (c RGB) Floats() (r, g, b float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

var Palette = struct {
	Background RGB
	Net        RGB
	Paddle     RGB
	Ball       RGB
	Score      RGB
}{
	Background: RGB{0, 0, 0},
	Net:        RGB{255, 255, 255},
	Paddle:     RGB{255, 255, 255},
	Ball:       RGB{255, 255, 255},
	Score:      RGB{255, 255, 255},
}
