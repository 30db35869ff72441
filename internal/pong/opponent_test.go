package pong

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stillBall parks the ball mid-field with no velocity so only the opponent moves.
func stillBall(s *State, y float64) {
	s.Ball = Ball{X: 400, Y: y, VX: 0, VY: 0, Radius: 10}
}

func TestOpponentDeadZone(t *testing.T) {
	testCases := []struct {
		offset float64
		wantDY float64
	}{
		{0, 0},
		{3, 0},
		{10, 0},
		{-10, 0},
		{11, 5},
		{-11, -5},
		{120, 5},
		{-120, -5},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("offset %g", tc.offset), func(t *testing.T) {
			s := newTestState()
			before := s.OpponentY
			stillBall(s, s.OpponentY+DefaultPaddleHeight/2+tc.offset)

			Advance(s)

			assert.InDelta(t, tc.wantDY, s.OpponentY-before, 1e-9)
		})
	}
}

func TestOpponentNeverOvershoots(t *testing.T) {
	tuning := DefaultTuning()
	tuning.OpponentDeadZone = 0
	s := NewState(tuning, &fixedRand{vals: []float64{0.25, 0.5}})
	before := s.OpponentY
	stillBall(s, s.OpponentY+DefaultPaddleHeight/2+3)

	Advance(s)

	assert.InDelta(t, 3.0, s.OpponentY-before, 1e-9)
}

func TestOpponentBoundedSpeed(t *testing.T) {
	for _, start := range []float64{0, 120, 250, 400, 500} {
		for y := 10.0; y <= 590; y += 7 {
			s := newTestState()
			s.OpponentY = start
			stillBall(s, y)

			Advance(s)

			moved := s.OpponentY - start
			assert.LessOrEqual(t, abs(moved), DefaultOpponentSpeed+1e-9, "start %g ball %g", start, y)
		}
	}
}

func TestOpponentClampedAtEdges(t *testing.T) {
	s := newTestState()
	s.OpponentY = s.Geometry.MaxPaddleY() - 2
	stillBall(s, 590)

	Advance(s)

	assert.Equal(t, s.Geometry.MaxPaddleY(), s.OpponentY)

	s.OpponentY = 1
	stillBall(s, 10)

	Advance(s)

	assert.Equal(t, 0.0, s.OpponentY)
}
