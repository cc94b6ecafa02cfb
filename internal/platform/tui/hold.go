package tui

import (
	"sort"

	"github.com/vovakirdan/brick-breaker/internal/input"
)

// HoldTracker turns the press-only key stream of a terminal into press and
// release events. A key stays held for holdTicks ticks after its last press
// or auto-repeat. Pressing a horizontal direction releases the opposite
// one immediately, since terminals stop repeating the old key.
type HoldTracker struct {
	bindings  input.Bindings
	holdTicks int
	held      map[input.Key]int
}

// NewHoldTracker creates a tracker for the given bindings.
func NewHoldTracker(b input.Bindings, holdTicks int) *HoldTracker {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &HoldTracker{
		bindings:  b,
		holdTicks: holdTicks,
		held:      make(map[input.Key]int),
	}
}

// Press records a key message and returns the events to feed the
// controller. Every message is a press edge. Unbound keys yield nothing.
func (h *HoldTracker) Press(k input.Key) []input.Event {
	axis, ok := h.bindings.Keys[k]
	if !ok {
		return nil
	}

	var out []input.Event
	if opposite, ok := oppositeAxis(axis); ok {
		for _, other := range h.sortedHeld() {
			if h.bindings.Keys[other] == opposite {
				delete(h.held, other)
				out = append(out, input.KeyEvent{Key: other, Pressed: false})
			}
		}
	}

	h.held[k] = h.holdTicks
	return append(out, input.KeyEvent{Key: k, Pressed: true})
}

// Tick ages held keys and returns releases for the ones that expired.
func (h *HoldTracker) Tick() []input.Event {
	var out []input.Event
	for _, k := range h.sortedHeld() {
		h.held[k]--
		if h.held[k] <= 0 {
			delete(h.held, k)
			out = append(out, input.KeyEvent{Key: k, Pressed: false})
		}
	}
	return out
}

// ReleaseAll releases every held key, e.g. on focus loss.
func (h *HoldTracker) ReleaseAll() []input.Event {
	var out []input.Event
	for _, k := range h.sortedHeld() {
		out = append(out, input.KeyEvent{Key: k, Pressed: false})
	}
	clear(h.held)
	return out
}

// Held reports whether k is currently considered down.
func (h *HoldTracker) Held(k input.Key) bool {
	_, ok := h.held[k]
	return ok
}

func (h *HoldTracker) sortedHeld() []input.Key {
	keys := make([]input.Key, 0, len(h.held))
	for k := range h.held {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func oppositeAxis(a input.AxisID) (input.AxisID, bool) {
	switch a {
	case input.AxisLeft:
		return input.AxisRight, true
	case input.AxisRight:
		return input.AxisLeft, true
	}
	return 0, false
}
