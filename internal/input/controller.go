package input

// Controller is the logical input snapshot the simulation and the menu
// read every tick. It is mutated in place by Input and owned by one host.
type Controller struct {
	axes     [axisCount]Axis
	bindings Bindings
}

// NewController creates a controller with the default bindings.
func NewController() *Controller {
	return NewControllerWithBindings(DefaultBindings())
}

// NewControllerWithBindings creates a controller with custom bindings.
func NewControllerWithBindings(b Bindings) *Controller {
	return &Controller{bindings: b}
}

// Input applies a raw event to the bound axis. Unbound keys and buttons
// are ignored.
func (c *Controller) Input(ev Event) {
	id, pressed, ok := c.bindings.Lookup(ev)
	if !ok {
		return
	}
	c.axes[id].SetDigital(pressed)
}

// Axis returns a copy of the given axis.
func (c *Controller) Axis(id AxisID) Axis {
	return c.axes[id]
}

// Dir returns right minus left, in [-1, 1].
func (c *Controller) Dir() float64 {
	return c.axes[AxisRight].Value - c.axes[AxisLeft].Value
}

// Fire returns the held value of the fire axis.
func (c *Controller) Fire() float64 {
	return c.axes[AxisFire].Value
}

func (c *Controller) FireJustPressed() bool { return c.axes[AxisFire].JustPressed }
func (c *Controller) BackJustPressed() bool { return c.axes[AxisBack].JustPressed }
func (c *Controller) UpJustPressed() bool   { return c.axes[AxisUp].JustPressed }
func (c *Controller) DownJustPressed() bool { return c.axes[AxisDown].JustPressed }

// Reset clears the fire, back, left and right edges. Axis values and the
// up/down edges are kept.
func (c *Controller) Reset() {
	c.axes[AxisLeft].JustPressed = false
	c.axes[AxisRight].JustPressed = false
	c.axes[AxisFire].JustPressed = false
	c.axes[AxisBack].JustPressed = false
}

// EndTick clears every edge flag. The host calls it once per tick after
// all consumers have read the controller, so a single press is seen as
// "just pressed" for exactly one tick.
func (c *Controller) EndTick() {
	for i := range c.axes {
		c.axes[i].JustPressed = false
	}
}

// ReleaseAll drops every held axis, e.g. when the terminal loses focus.
func (c *Controller) ReleaseAll() {
	for i := range c.axes {
		c.axes[i] = Axis{}
	}
}
