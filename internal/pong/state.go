package pong

// Geometry is derived from the tuning once and never changes afterwards.
type Geometry struct {
	Width, Height float64

	PaddleWidth  float64
	PaddleHeight float64
	BallRadius   float64

	HumanX    float64 // left edge of the human paddle
	OpponentX float64 // left edge of the opponent paddle
}

func NewGeometry(t Tuning) Geometry {
	w := float64(t.SurfaceWidth)
	return Geometry{
		Width:        w,
		Height:       float64(t.SurfaceHeight),
		PaddleWidth:  t.PaddleWidth,
		PaddleHeight: t.PaddleHeight,
		BallRadius:   t.BallRadius,
		HumanX:       t.PaddleMargin,
		OpponentX:    w - t.PaddleWidth - t.PaddleMargin,
	}
}

// MaxPaddleY is the largest legal paddle top edge.
func (g Geometry) MaxPaddleY() float64 { return g.Height - g.PaddleHeight }

// CenterX and CenterY locate the middle of the surface.
func (g Geometry) CenterX() float64 { return g.Width / 2 }
func (g Geometry) CenterY() float64 { return g.Height / 2 }

type Ball struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

// State is the whole simulation. HumanY and OpponentY are paddle top edges
// and stay within [0, MaxPaddleY].
type State struct {
	Geometry Geometry
	Tuning   Tuning

	HumanY    float64
	OpponentY float64
	Ball      Ball

	HumanScore    int
	OpponentScore int

	Events *EventBus

	rng RandSource
}

// NewState centres both paddles and serves the ball from the middle.
func NewState(t Tuning, rng RandSource) *State {
	g := NewGeometry(t)
	s := &State{
		Geometry:  g,
		Tuning:    t,
		HumanY:    g.MaxPaddleY() / 2,
		OpponentY: g.MaxPaddleY() / 2,
		Ball:      Ball{Radius: g.BallRadius},
		Events:    NewEventBus(),
		rng:       rng,
	}
	s.ResetBall()
	return s
}

// ResetBall recentres the ball and serves it again. Paddles and scores are
// left alone.
func (s *State) ResetBall() {
	s.Ball.X = s.Geometry.CenterX()
	s.Ball.Y = s.Geometry.CenterY()
	s.Ball.VX, s.Ball.VY = Serve(s.Tuning.ServeSpeed, s.rng)
}

func (s *State) clampPaddle(y float64) float64 {
	return clampF(y, 0, s.Geometry.MaxPaddleY())
}
