package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func press(c *Controller, k Key)   { c.Input(KeyEvent{Key: k, Pressed: true}) }
func release(c *Controller, k Key) { c.Input(KeyEvent{Key: k, Pressed: false}) }

func TestControllerDir(t *testing.T) {
	c := NewController()
	assert.Equal(t, 0.0, c.Dir())

	press(c, "d")
	assert.Equal(t, 1.0, c.Dir())

	press(c, "left")
	assert.Equal(t, 0.0, c.Dir(), "both held cancel out")

	release(c, "d")
	assert.Equal(t, -1.0, c.Dir())

	release(c, "left")
	assert.Equal(t, 0.0, c.Dir())
}

func TestControllerBindings(t *testing.T) {
	tests := []struct {
		key  Key
		axis AxisID
	}{
		{"a", AxisLeft},
		{"left", AxisLeft},
		{"d", AxisRight},
		{"right", AxisRight},
		{"w", AxisUp},
		{"up", AxisUp},
		{"s", AxisDown},
		{"down", AxisDown},
		{" ", AxisFire},
		{"enter", AxisFire},
		{"esc", AxisBack},
	}

	for _, tc := range tests {
		t.Run(string(tc.key)+"->"+tc.axis.String(), func(t *testing.T) {
			c := NewController()
			press(c, tc.key)
			for id := AxisID(0); id < axisCount; id++ {
				assert.Equal(t, id == tc.axis, c.Axis(id).Active(), "axis %s", id)
			}
		})
	}
}

func TestControllerIgnoresUnboundInput(t *testing.T) {
	c := NewController()
	press(c, "x")
	c.Input(ButtonEvent{Button: 3, Pressed: true})

	for id := AxisID(0); id < axisCount; id++ {
		assert.Equal(t, Axis{}, c.Axis(id))
	}
}

func TestControllerButtonFires(t *testing.T) {
	c := NewController()
	c.Input(ButtonEvent{Button: 0, Pressed: true})
	assert.True(t, c.FireJustPressed())
	assert.Equal(t, 1.0, c.Fire())

	c.Input(ButtonEvent{Button: 0, Pressed: false})
	assert.False(t, c.FireJustPressed())
	assert.Equal(t, 0.0, c.Fire())
}

func TestControllerEdges(t *testing.T) {
	c := NewController()
	press(c, "enter")
	press(c, "esc")
	press(c, "up")
	press(c, "down")

	assert.True(t, c.FireJustPressed())
	assert.True(t, c.BackJustPressed())
	assert.True(t, c.UpJustPressed())
	assert.True(t, c.DownJustPressed())

	// Edges persist across reads until cleared.
	assert.True(t, c.FireJustPressed())
}

func TestControllerReset(t *testing.T) {
	c := NewController()
	press(c, "d")
	press(c, "enter")
	press(c, "esc")
	press(c, "up")

	c.Reset()

	assert.False(t, c.FireJustPressed())
	assert.False(t, c.BackJustPressed())
	assert.False(t, c.Axis(AxisRight).JustPressed)
	assert.True(t, c.UpJustPressed(), "reset leaves up/down edges alone")
	assert.Equal(t, 1.0, c.Dir(), "reset keeps held values")
}

func TestControllerEndTick(t *testing.T) {
	c := NewController()
	press(c, "right")
	press(c, "down")

	c.EndTick()

	assert.False(t, c.DownJustPressed())
	assert.False(t, c.Axis(AxisRight).JustPressed)
	assert.Equal(t, 1.0, c.Dir(), "held state survives the tick boundary")
}

func TestControllerReleaseAll(t *testing.T) {
	c := NewController()
	press(c, "right")
	press(c, "enter")
	c.ReleaseAll()

	assert.Equal(t, 0.0, c.Dir())
	assert.False(t, c.FireJustPressed())
}

func TestAxisSet(t *testing.T) {
	var a Axis
	a.Set(0.5)
	assert.Equal(t, 0.5, a.Value)
	assert.True(t, a.JustPressed)

	a.Set(2)
	assert.Equal(t, 1.0, a.Value)

	a.Set(0)
	assert.False(t, a.JustPressed)
	assert.False(t, a.Active())

	a.Press()
	assert.True(t, a.Active())
	a.Release()
	assert.False(t, a.Active())
}
