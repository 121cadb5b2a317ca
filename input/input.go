package input

// Action is something the user asks for through a bound key.
type Action int

const (
	MoveForward Action = iota
	MoveBackward
	MoveLeft
	MoveRight
	Quit
	// Wireframe and Fill switch polygon rasterization between outlines and filled faces.
	Wireframe
	Fill

	actionCount
)

func (a Action) String() string {
	switch a {
	case MoveForward:
		return "forward"
	case MoveBackward:
		return "backward"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case Quit:
		return "quit"
	case Wireframe:
		return "wireframe"
	case Fill:
		return "fill"
	}
	return "unknown"
}

// Sink receives input events from the window system.
type Sink interface {
	// ActionChanged reports a bound key being pressed or released.
	ActionChanged(a Action, pressed bool)
	// CursorMoved reports the absolute cursor position in window coordinates.
	CursorMoved(x, y float64)
	// CursorEntered reports the cursor entering or leaving the window.
	CursorEntered(entered bool)
	Scrolled(xOffset, yOffset float64)
}
