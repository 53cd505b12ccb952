package engine

// MinSimulationSpeed is the floor for Context.SimulationSpeed.
const MinSimulationSpeed = 0.1

// Context is the viewport state shared by the driver and the active scene.
// It is passed explicitly to every scene call.
type Context struct {
	SimulationSpeed float64
	// Paused is carried for collaborators; playback does not consult it.
	Paused       bool
	ScreenWidth  int
	ScreenHeight int
}

func NewContext(width, height int) *Context {
	return &Context{
		SimulationSpeed: 1.0,
		ScreenWidth:     width,
		ScreenHeight:    height,
	}
}
