package pong

import "strconv"

// Render draws s back to front: background, net, paddles, ball, scores.
// It only reads s, so rendering the same state twice issues the same calls.
func Render(s *State, dst Surface) {
	g := s.Geometry

	dst.FillRect(0, 0, g.Width, g.Height, Palette.Background)

	for y := 0.0; y < g.Height; y += NetStride {
		dst.FillRect(g.CenterX()-NetWidth/2, y, NetWidth, NetSegment, Palette.Net)
	}

	dst.FillRect(g.HumanX, s.HumanY, g.PaddleWidth, g.PaddleHeight, Palette.Paddle)
	dst.FillRect(g.OpponentX, s.OpponentY, g.PaddleWidth, g.PaddleHeight, Palette.Paddle)

	dst.FillCircle(s.Ball.X, s.Ball.Y, s.Ball.Radius, Palette.Ball)

	dst.DrawText(strconv.Itoa(s.HumanScore), g.Width/4, ScoreY, ScoreSize, AlignCenter, Palette.Score)
	dst.DrawText(strconv.Itoa(s.OpponentScore), 3*g.Width/4, ScoreY, ScoreSize, AlignCenter, Palette.Score)
}
