package pong

// Advance moves the simulation forward by one frame. The steps run in a
// fixed order; each one sees the positions corrected by the previous ones.
//
// The ball moves by a single Euler step with no sweep, so a ball faster than
// a paddle is wide can pass through it. That is part of the game's feel and
// is kept as is.
func Advance(s *State) {
	b := &s.Ball
	g := s.Geometry

	b.X += b.VX
	b.Y += b.VY

	collideWalls(s)

	if b.X-b.Radius < g.HumanX+g.PaddleWidth && withinPaddle(b.Y, s.HumanY, g.PaddleHeight) {
		b.X = g.HumanX + g.PaddleWidth + b.Radius
		rebound(s, s.HumanY, SideHuman)
	}
	if b.X+b.Radius > g.OpponentX && withinPaddle(b.Y, s.OpponentY, g.PaddleHeight) {
		b.X = g.OpponentX - b.Radius
		rebound(s, s.OpponentY, SideOpponent)
	}

	if b.X-b.Radius < 0 {
		scorePoint(s, SideOpponent)
	}
	if b.X+b.Radius > g.Width {
		scorePoint(s, SideHuman)
	}

	trackBall(s)
	s.OpponentY = s.clampPaddle(s.OpponentY)
}

func collideWalls(s *State) {
	b := &s.Ball
	if b.Y-b.Radius < 0 {
		b.Y = b.Radius
		b.VY = -b.VY
		s.Events.Emit(Event{Type: EventWallBounce, X: b.X, Y: b.Y})
	}
	if b.Y+b.Radius > s.Geometry.Height {
		b.Y = s.Geometry.Height - b.Radius
		b.VY = -b.VY
		s.Events.Emit(Event{Type: EventWallBounce, X: b.X, Y: b.Y})
	}
}

// withinPaddle reports whether y lies strictly inside the paddle's span.
func withinPaddle(y, paddleY, paddleHeight float64) bool {
	return y > paddleY && y < paddleY+paddleHeight
}

// rebound reverses the ball and sets its vertical speed from how far off
// the paddle centre it struck: edges send it away steeper than the middle.
func rebound(s *State, paddleY float64, side Side) {
	b := &s.Ball
	b.VX = -b.VX
	b.VY = (b.Y - (paddleY + s.Geometry.PaddleHeight/2)) * s.Tuning.SpinFactor
	s.Events.Emit(Event{Type: EventPaddleHit, X: b.X, Y: b.Y, Side: side})
}

func scorePoint(s *State, winner Side) {
	x, y := s.Ball.X, s.Ball.Y
	if winner == SideHuman {
		s.HumanScore++
	} else {
		s.OpponentScore++
	}
	s.ResetBall()
	s.Events.Emit(Event{Type: EventPointScored, X: x, Y: y, Side: winner})
}
