package pong

// Driver couples one State to the surface it is drawn on.
type Driver struct {
	State   *State
	Surface Surface
}

func NewDriver(s *State, dst Surface) *Driver {
	return &Driver{State: s, Surface: dst}
}

// Tick runs exactly one frame: advance, then render. It always steps once,
// however late the frame is, so game speed follows the display refresh rate.
func (d *Driver) Tick() {
	Advance(d.State)
	Render(d.State, d.Surface)
}

// FrameHost is the platform side of the loop. NextFrame dispatches pending
// input and prepares the surface; Present shows the frame and returns once
// the display is ready for the next one.
type FrameHost interface {
	Running() bool
	NextFrame()
	Present()
}

// Run ticks d once per frame until the host stops running.
func Run(host FrameHost, d *Driver) {
	for host.Running() {
		host.NextFrame()
		d.Tick()
		host.Present()
	}
}
