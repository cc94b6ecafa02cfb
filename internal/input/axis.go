// Package input turns raw key and button events into a small set of named
// logical axes with edge-triggered "just pressed" flags.
package input

// Axis is one logical input channel. Value is 0 or 1 for digital sources
// and anywhere in [0, 1] for analog ones. JustPressed is set on the
// transition to active and stays set until the owner clears it.
type Axis struct {
	Value       float64
	JustPressed bool
}

// Set stores an analog value. Any positive value counts as a press edge.
func (a *Axis) Set(value float64) {
	switch {
	case value < 0:
		value = 0
	case value > 1:
		value = 1
	}
	a.Value = value
	a.JustPressed = value > 0
}

// SetDigital stores a pressed/released state.
func (a *Axis) SetDigital(pressed bool) {
	if pressed {
		a.Value = 1
	} else {
		a.Value = 0
	}
	a.JustPressed = pressed
}

// Press is SetDigital(true).
func (a *Axis) Press() {
	a.SetDigital(true)
}

// Release is SetDigital(false).
func (a *Axis) Release() {
	a.SetDigital(false)
}

// Active reports whether the axis is currently held.
func (a Axis) Active() bool {
	return a.Value > 0
}
