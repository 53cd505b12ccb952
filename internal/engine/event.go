package engine

// Event is a discrete input event produced by a Backend.
type Event interface {
	isEvent()
}

// Button identifies a pointer button.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	case ButtonMiddle:
		return "middle"
	}
	return "unknown"
}

// Key is a lower-case key name such as "escape", "r" or "left".
type Key string

// Key names produced by the bundled backends.
const (
	KeyEscape    Key = "escape"
	KeyLeft      Key = "left"
	KeyRight     Key = "right"
	KeyArrowUp   Key = "up"
	KeyArrowDown Key = "down"
	KeySpace     Key = "space"
	KeyEnter     Key = "enter"
	KeyTab       Key = "tab"
)

// CloseRequested signals that the window system wants the loop to end.
type CloseRequested struct{}

type ButtonDown struct{ Button Button }

type ButtonUp struct{ Button Button }

// PointerMove carries the pointer motion since the previous event, in pixels.
type PointerMove struct{ DX, DY float64 }

type KeyDown struct{ Key Key }

// Scroll carries the vertical wheel movement; positive is away from the user.
type Scroll struct{ Y float64 }

func (CloseRequested) isEvent() {}
func (ButtonDown) isEvent()     {}
func (ButtonUp) isEvent()       {}
func (PointerMove) isEvent()    {}
func (KeyDown) isEvent()        {}
func (Scroll) isEvent()         {}
