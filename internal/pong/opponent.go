package pong

import "math"

// trackBall steers the opponent paddle toward the ball. It holds still while
// its centre is within the dead-zone of the ball and otherwise closes the gap
// by at most OpponentSpeed, never moving past the ball.
func trackBall(s *State) {
	half := s.Geometry.PaddleHeight / 2
	center := s.OpponentY + half
	if math.Abs(center-s.Ball.Y) <= s.Tuning.OpponentDeadZone {
		return
	}
	s.OpponentY = approach(center, s.Ball.Y, s.Tuning.OpponentSpeed) - half
}
