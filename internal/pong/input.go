package pong

// PointerMoved centres the human paddle on a pointer at surface height y.
// Only the latest position matters, so repeated calls between frames simply
// overwrite each other.
func PointerMoved(s *State, y float64) {
	s.HumanY = s.clampPaddle(y - s.Geometry.PaddleHeight/2)
}

// SurfaceY converts a cursor y in window coordinates to surface units. The
// window may be scaled relative to the surface (HiDPI, compositor scaling).
func SurfaceY(cursorY float64, windowHeight int, surfaceHeight float64) float64 {
	if windowHeight <= 0 {
		return cursorY
	}
	return cursorY * surfaceHeight / float64(windowHeight)
}
