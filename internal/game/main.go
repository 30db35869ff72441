package game

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"pong/internal/glyph"
	"pong/internal/pong"
)

// desktopHost drives pong.Run from a glfw window. Present blocks in
// SwapBuffers until the next vertical refresh.
type desktopHost struct {
	window *glfw.Window
	rend   *Renderer
}

func (h *desktopHost) Running() bool { return !h.window.ShouldClose() }

func (h *desktopHost) NextFrame() {
	glfw.PollEvents()
	if quitRequested(h.window) {
		h.window.SetShouldClose(true)
	}
	fbW, fbH := h.window.GetFramebufferSize()
	h.rend.BeginFrame(fbW, fbH)
}

func (h *desktopHost) Present() {
	h.rend.Flush()
	h.window.SwapBuffers()
}

func RunDesktop() {
	runtime.LockOSThread()

	if err := pong.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "%v (continuing without it)\n", err)
	}

	path := pong.TuningPath()
	tuning, found, err := pong.LoadTuning(path)
	if err != nil {
		panic(fmt.Errorf("tuning: %w", err))
	}
	if found {
		fmt.Printf("Tuning loaded from %s\n", path)
	}

	// Seed from environment or clock.
	seed := pong.SeedFromEnv(uint64(time.Now().UnixNano()))
	state := pong.NewState(tuning, pong.NewRand(seed))

	window, err := initWindow(tuning.SurfaceWidth, tuning.SurfaceHeight)
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	bg := pong.Palette.Background
	r, g, b := bg.Floats()
	gl.ClearColor(r, g, b, 1.0)

	rend, err := NewRenderer(state.Geometry.Width, state.Geometry.Height)
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()
	rend.InitFont(glyph.Default())

	bindPointer(window, state)
	state.Events.Subscribe(pong.EventPointScored, func(e pong.Event) {
		fmt.Printf("Point to %s at y=%.0f, score %d-%d\n", e.Side, e.Y, state.HumanScore, state.OpponentScore)
		window.SetTitle(fmt.Sprintf("%s %d - %d", windowTitle, state.HumanScore, state.OpponentScore))
	})

	fmt.Printf("Pong started: %dx%d, seed %d\n", tuning.SurfaceWidth, tuning.SurfaceHeight, seed)
	pong.Run(&desktopHost{window: window, rend: rend}, pong.NewDriver(state, rend))
}
