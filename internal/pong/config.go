package pong

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Reference tuning values.
const (
	DefaultSurfaceWidth  = 800
	DefaultSurfaceHeight = 600

	DefaultPaddleWidth  = 15.0
	DefaultPaddleHeight = 100.0
	DefaultPaddleMargin = 10.0
	DefaultBallRadius   = 10.0

	DefaultServeSpeed       = 5.0
	DefaultSpinFactor       = 0.2
	DefaultOpponentSpeed    = 5.0
	DefaultOpponentDeadZone = 10.0
)

// Net and score layout.
const (
	NetWidth   = 4.0
	NetSegment = 15.0
	NetStride  = 30.0

	ScoreSize = 36.0
	ScoreY    = 60.0
)

// Environment variables.
const (
	EnvSeed   = "PONG_SEED"
	EnvConfig = "PONG_CONFIG"
)

// Tuning holds the values fixed at start-up. Every field may be overridden
// from a TOML file; omitted keys keep their default.
type Tuning struct {
	SurfaceWidth  int `toml:"surface_width"`
	SurfaceHeight int `toml:"surface_height"`

	PaddleWidth  float64 `toml:"paddle_width"`
	PaddleHeight float64 `toml:"paddle_height"`
	PaddleMargin float64 `toml:"paddle_margin"`
	BallRadius   float64 `toml:"ball_radius"`

	ServeSpeed       float64 `toml:"serve_speed"`
	SpinFactor       float64 `toml:"spin_factor"`
	OpponentSpeed    float64 `toml:"opponent_speed"`
	OpponentDeadZone float64 `toml:"opponent_dead_zone"`
}

func DefaultTuning() Tuning {
	return Tuning{
		SurfaceWidth:     DefaultSurfaceWidth,
		SurfaceHeight:    DefaultSurfaceHeight,
		PaddleWidth:      DefaultPaddleWidth,
		PaddleHeight:     DefaultPaddleHeight,
		PaddleMargin:     DefaultPaddleMargin,
		BallRadius:       DefaultBallRadius,
		ServeSpeed:       DefaultServeSpeed,
		SpinFactor:       DefaultSpinFactor,
		OpponentSpeed:    DefaultOpponentSpeed,
		OpponentDeadZone: DefaultOpponentDeadZone,
	}
}

// Validate reports the first value that would break the paddle bounds or
// leave no room between the two paddles.
func (t Tuning) Validate() error {
	switch {
	case t.SurfaceWidth <= 0 || t.SurfaceHeight <= 0:
		return fmt.Errorf("surface %dx%d: dimensions must be positive", t.SurfaceWidth, t.SurfaceHeight)
	case t.PaddleWidth <= 0 || t.PaddleHeight <= 0:
		return fmt.Errorf("paddle %gx%g: dimensions must be positive", t.PaddleWidth, t.PaddleHeight)
	case t.PaddleMargin < 0:
		return fmt.Errorf("paddle margin %g: must not be negative", t.PaddleMargin)
	case t.BallRadius <= 0:
		return fmt.Errorf("ball radius %g: must be positive", t.BallRadius)
	case t.ServeSpeed <= 0 || t.OpponentSpeed <= 0:
		return fmt.Errorf("speeds (serve %g, opponent %g): must be positive", t.ServeSpeed, t.OpponentSpeed)
	case t.OpponentDeadZone < 0:
		return fmt.Errorf("opponent dead-zone %g: must not be negative", t.OpponentDeadZone)
	case float64(t.SurfaceHeight) <= t.PaddleHeight:
		return fmt.Errorf("surface height %d: must exceed paddle height %g", t.SurfaceHeight, t.PaddleHeight)
	case float64(t.SurfaceWidth) <= 2*(t.PaddleMargin+t.PaddleWidth):
		return fmt.Errorf("surface width %d: too narrow for two paddles", t.SurfaceWidth)
	}
	return nil
}

// LoadTuning decodes path over DefaultTuning. A missing file yields the
// defaults and found=false.
func LoadTuning(path string) (t Tuning, found bool, err error) {
	t = DefaultTuning()
	if path == "" {
		return t, false, nil
	}
	if _, err := toml.DecodeFile(path, &t); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultTuning(), false, nil
		}
		return DefaultTuning(), false, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return DefaultTuning(), true, fmt.Errorf("tuning %s: %w", path, err)
	}
	return t, true, nil
}

// TuningPath returns $PONG_CONFIG, or ~/.config/pong/config.toml.
func TuningPath() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "pong", "config.toml")
}

// LoadEnv loads a .env file from the working directory if there is one.
// Variables already set in the process environment win.
func LoadEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// SeedFromEnv returns $PONG_SEED when it parses, otherwise fallback.
func SeedFromEnv(fallback uint64) uint64 {
	if s := os.Getenv(EnvSeed); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			return v
		}
	}
	return fallback
}
