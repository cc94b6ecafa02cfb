package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/brick-breaker/internal/input"
)

func press(k input.Key) input.Event   { return input.KeyEvent{Key: k, Pressed: true} }
func release(k input.Key) input.Event { return input.KeyEvent{Key: k, Pressed: false} }

func TestHoldTracker_ReleasesAfterHoldWindow(t *testing.T) {
	h := NewHoldTracker(input.DefaultBindings(), 3)

	assert.Equal(t, []input.Event{press("d")}, h.Press("d"))
	assert.Empty(t, h.Tick())
	assert.Empty(t, h.Tick())
	assert.Equal(t, []input.Event{release("d")}, h.Tick())
	assert.False(t, h.Held("d"))
	assert.Empty(t, h.Tick())
}

func TestHoldTracker_RepeatExtendsHold(t *testing.T) {
	h := NewHoldTracker(input.DefaultBindings(), 2)

	h.Press("d")
	h.Tick()
	assert.Equal(t, []input.Event{press("d")}, h.Press("d"), "repeats are press edges")
	assert.Empty(t, h.Tick())
	assert.True(t, h.Held("d"))
	assert.Equal(t, []input.Event{release("d")}, h.Tick())
}

func TestHoldTracker_OppositeDirectionReleases(t *testing.T) {
	h := NewHoldTracker(input.DefaultBindings(), 10)

	h.Press("d")
	h.Press("right")
	got := h.Press("a")
	assert.Equal(t, []input.Event{release("d"), release("right"), press("a")}, got)
	assert.True(t, h.Held("a"))
	assert.False(t, h.Held("d"))
}

func TestHoldTracker_OtherAxesIndependent(t *testing.T) {
	h := NewHoldTracker(input.DefaultBindings(), 10)

	h.Press("d")
	assert.Equal(t, []input.Event{press("space")}, h.Press("space"))
	assert.True(t, h.Held("d"))
}

func TestHoldTracker_UnboundKey(t *testing.T) {
	h := NewHoldTracker(input.DefaultBindings(), 10)
	assert.Nil(t, h.Press("x"))
	assert.False(t, h.Held("x"))
}

func TestHoldTracker_ReleaseAll(t *testing.T) {
	h := NewHoldTracker(input.DefaultBindings(), 10)
	h.Press("w")
	h.Press("d")

	assert.Equal(t, []input.Event{release("d"), release("w")}, h.ReleaseAll())
	assert.Empty(t, h.Tick())
}

func TestHoldTracker_MinimumOneTick(t *testing.T) {
	h := NewHoldTracker(input.DefaultBindings(), 0)
	h.Press("a")
	assert.Equal(t, []input.Event{release("a")}, h.Tick())
}
