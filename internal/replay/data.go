// Package replay records the input events of a play session and re-runs
// them headlessly. The simulation is deterministic, so the same events on
// the same config always reach the same world.
package replay

import (
	"github.com/vovakirdan/brick-breaker/internal/config"
	"github.com/vovakirdan/brick-breaker/internal/input"
	"github.com/vovakirdan/brick-breaker/internal/sprites"
)

// Version is the format written by Recorder.
const Version = "1"

// EventInput is one raw input event.
type EventInput struct {
	K   string `json:"k,omitempty"`   // Key name
	B   int    `json:"b,omitempty"`   // Button index
	Btn bool   `json:"btn,omitempty"` // Button event rather than key
	P   bool   `json:"p,omitempty"`   // Pressed
}

// FrameInput holds the events delivered before tick F. Frames without
// events are not stored.
type FrameInput struct {
	F  int          `json:"f"`
	Ev []EventInput `json:"ev"`
}

// ReplayData contains all data needed to replay a session.
type ReplayData struct {
	Version    string                  `json:"version"`
	StartTime  string                  `json:"startTime"`
	Difficulty string                  `json:"difficulty,omitempty"`
	Config     config.GameConfig       `json:"config"`
	Sprites    map[string]sprites.Size `json:"sprites"`
	Frames     []FrameInput            `json:"frames"`
	// Ticks is the total number of ticks recorded.
	Ticks int `json:"ticks"`
	// FinalHash is the world hash after the last tick, zero if unknown.
	FinalHash uint64 `json:"finalHash,omitempty"`
}

func encodeEvent(ev input.Event) (EventInput, bool) {
	switch e := ev.(type) {
	case input.KeyEvent:
		return EventInput{K: string(e.Key), P: e.Pressed}, true
	case input.ButtonEvent:
		return EventInput{B: e.Button, Btn: true, P: e.Pressed}, true
	}
	return EventInput{}, false
}

func (e EventInput) event() input.Event {
	if e.Btn {
		return input.ButtonEvent{Button: e.B, Pressed: e.P}
	}
	return input.KeyEvent{Key: input.Key(e.K), Pressed: e.P}
}
