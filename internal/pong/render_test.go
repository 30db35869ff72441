package pong

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderOrder(t *testing.T) {
	s := newTestState()
	s.HumanScore, s.OpponentScore = 3, 11
	rec := &recordingSurface{}

	Render(s, rec)

	netSegments := 20 // 600 / 30
	require.Len(t, rec.calls, 1+netSegments+2+1+2)

	assert.Equal(t, drawCall{"rect", "0,0,800,600", Palette.Background}, rec.calls[0])
	assert.Equal(t, drawCall{"rect", "398,0,4,15", Palette.Net}, rec.calls[1])
	assert.Equal(t, drawCall{"rect", "398,570,4,15", Palette.Net}, rec.calls[netSegments])

	rest := rec.calls[1+netSegments:]
	assert.Equal(t, drawCall{"rect", "10,250,15,100", Palette.Paddle}, rest[0])
	assert.Equal(t, drawCall{"rect", "775,250,15,100", Palette.Paddle}, rest[1])
	assert.Equal(t, drawCall{"circle", "400,300,10", Palette.Ball}, rest[2])
	assert.Equal(t, drawCall{"text", "3@200,60/36/1", Palette.Score}, rest[3])
	assert.Equal(t, drawCall{"text", "11@600,60/36/1", Palette.Score}, rest[4])
}

func TestRenderIsIdempotent(t *testing.T) {
	s := newTestState()
	Advance(s)
	before := *s

	first, second := &recordingSurface{}, &recordingSurface{}
	Render(s, first)
	Render(s, second)

	assert.Equal(t, first.calls, second.calls)
	assert.Equal(t, before.Ball, s.Ball)
	assert.Equal(t, before.HumanY, s.HumanY)
	assert.Equal(t, before.OpponentY, s.OpponentY)
}

func TestRenderFollowsState(t *testing.T) {
	s := newTestState()
	PointerMoved(s, 60)
	s.Ball = Ball{X: 123, Y: 45, Radius: 10}
	rec := &recordingSurface{}

	Render(s, rec)

	n := len(rec.calls)
	assert.Equal(t, drawCall{"rect", "10,10,15,100", Palette.Paddle}, rec.calls[n-5])
	assert.Equal(t, drawCall{"circle", "123,45,10", Palette.Ball}, rec.calls[n-3])
}
