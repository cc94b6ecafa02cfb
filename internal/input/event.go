package input

// Key names a physical key using the same spelling the terminal host
// reports ("a", "left", "enter", "esc", " ").
type Key string

// AxisID selects one of the controller's axes.
type AxisID int

const (
	AxisLeft AxisID = iota
	AxisRight
	AxisUp
	AxisDown
	AxisFire
	AxisBack
	axisCount
)

// String returns a human-readable name for the axis.
func (a AxisID) String() string {
	switch a {
	case AxisLeft:
		return "left"
	case AxisRight:
		return "right"
	case AxisUp:
		return "up"
	case AxisDown:
		return "down"
	case AxisFire:
		return "fire"
	case AxisBack:
		return "back"
	default:
		return "unknown"
	}
}

// Event is a raw input event delivered by the host.
type Event interface {
	isEvent()
}

// KeyEvent is a keyboard press or release.
type KeyEvent struct {
	Key     Key
	Pressed bool
}

// ButtonEvent is a press or release of a device button (mouse or pad).
type ButtonEvent struct {
	Button  int
	Pressed bool
}

func (KeyEvent) isEvent()    {}
func (ButtonEvent) isEvent() {}

// Bindings maps physical keys and buttons to axes.
type Bindings struct {
	Keys    map[Key]AxisID
	Buttons map[int]AxisID
}

// DefaultBindings returns WASD/arrow movement, space or enter to fire,
// escape to go back and the primary button as fire.
func DefaultBindings() Bindings {
	return Bindings{
		Keys: map[Key]AxisID{
			"a":     AxisLeft,
			"left":  AxisLeft,
			"d":     AxisRight,
			"right": AxisRight,
			"w":     AxisUp,
			"up":    AxisUp,
			"s":     AxisDown,
			"down":  AxisDown,
			" ":     AxisFire,
			"space": AxisFire,
			"enter": AxisFire,
			"esc":   AxisBack,
		},
		Buttons: map[int]AxisID{
			0: AxisFire,
		},
	}
}

// Lookup returns the axis bound to an event, if any.
func (b Bindings) Lookup(ev Event) (AxisID, bool, bool) {
	switch e := ev.(type) {
	case KeyEvent:
		id, ok := b.Keys[e.Key]
		return id, e.Pressed, ok
	case ButtonEvent:
		id, ok := b.Buttons[e.Button]
		return id, e.Pressed, ok
	}
	return 0, false, false
}
