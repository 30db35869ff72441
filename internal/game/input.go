package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"pong/internal/pong"
)

// bindPointer routes cursor movement over the window to the human paddle.
// glfw only delivers the callback from PollEvents, on the loop's own thread,
// so the state is never touched mid-frame.
func bindPointer(window *glfw.Window, state *pong.State) {
	window.SetCursorPosCallback(func(w *glfw.Window, _, ypos float64) {
		_, winH := w.GetSize()
		pong.PointerMoved(state, pong.SurfaceY(ypos, winH, state.Geometry.Height))
	})
}

func quitRequested(window *glfw.Window) bool {
	return window.GetKey(glfw.KeyEscape) == glfw.Press
}
