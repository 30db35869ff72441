package pong

// Serve returns a launch velocity with horizontal speed exactly speed,
// heading left or right with equal odds, and vertical speed drawn
// uniformly from [-speed, speed).
func Serve(speed float64, src RandSource) (vx, vy float64) {
	vx = speed
	if src.Float64() >= 0.5 {
		vx = -speed
	}
	vy = speed * (src.Float64()*2 - 1)
	return vx, vy
}
