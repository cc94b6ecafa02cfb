// Package menu implements the main-menu focus state machine. It reads
// controller edges and emits Messages; the host decides what they mean.
package menu

import (
	"fmt"

	"github.com/vovakirdan/brick-breaker/internal/core"
	"github.com/vovakirdan/brick-breaker/internal/sprites"
)

// Focus is the currently highlighted menu item.
type Focus int

// Items in navigation order. Down moves forward and wraps.
const (
	FocusStart Focus = iota
	FocusExit
	FocusFullscreen
	focusCount
)

// String returns a human-readable name for the focus.
func (f Focus) String() string {
	switch f {
	case FocusStart:
		return "start"
	case FocusExit:
		return "exit"
	case FocusFullscreen:
		return "fullscreen"
	default:
		return "unknown"
	}
}

// Next returns the item after f, wrapping around.
func (f Focus) Next() Focus {
	return (f + 1) % focusCount
}

// Prev returns the item before f, wrapping around.
func (f Focus) Prev() Focus {
	return (f + focusCount - 1) % focusCount
}

// Message is a high-level request emitted by the menu.
type Message int

const (
	MsgStart Message = iota
	MsgExit
	MsgToggleFullscreen
	MsgFocusChanged
)

// String returns a human-readable name for the message.
func (m Message) String() string {
	switch m {
	case MsgStart:
		return "start"
	case MsgExit:
		return "exit"
	case MsgToggleFullscreen:
		return "toggle_fullscreen"
	case MsgFocusChanged:
		return "focus_changed"
	default:
		return "unknown"
	}
}

// Controls is the part of the controller the menu reads.
type Controls interface {
	UpJustPressed() bool
	DownJustPressed() bool
	FireJustPressed() bool
}

// SizeLookup resolves sprite sizes by name.
type SizeLookup interface {
	Size(name string) (sprites.Size, error)
}

// Menu holds the focus and the sprite sizes used for layout.
type Menu struct {
	focus      Focus
	screenSize core.Vec2

	title      core.Vec2
	start      core.Vec2
	exit       core.Vec2
	fullscreen core.Vec2
	checkBox   core.Vec2
}

// New builds a menu for a screen of the given world size. Every menu
// sprite must be present in the lookup.
func New(lookup SizeLookup, screenSize core.Vec2) (*Menu, error) {
	m := &Menu{focus: FocusStart, screenSize: screenSize}

	fields := []struct {
		name string
		dst  *core.Vec2
	}{
		{sprites.Title, &m.title},
		{sprites.StartButton, &m.start},
		{sprites.ExitButton, &m.exit},
		{sprites.FullscreenToggle, &m.fullscreen},
		{sprites.CheckBox, &m.checkBox},
	}
	for _, f := range fields {
		s, err := lookup.Size(f.name)
		if err != nil {
			return nil, fmt.Errorf("menu: %w", err)
		}
		*f.dst = s.Vec()
	}
	return m, nil
}

// Focus returns the highlighted item.
func (m *Menu) Focus() Focus {
	return m.focus
}

// SetFocus moves the highlight without emitting anything.
func (m *Menu) SetFocus(f Focus) {
	if f >= 0 && f < focusCount {
		m.focus = f
	}
}

// Input applies navigation edges then the fire edge and appends the
// resulting messages to out. MsgFocusChanged is emitted once when the
// focus at the end of navigation differs from the focus on entry.
func (m *Menu) Input(c Controls, out []Message) []Message {
	before := m.focus

	if c.DownJustPressed() {
		m.focus = m.focus.Next()
	}
	if c.UpJustPressed() {
		m.focus = m.focus.Prev()
	}
	if m.focus != before {
		out = append(out, MsgFocusChanged)
	}

	if c.FireJustPressed() {
		switch m.focus {
		case FocusStart:
			out = append(out, MsgStart)
		case FocusExit:
			out = append(out, MsgExit)
		case FocusFullscreen:
			out = append(out, MsgToggleFullscreen)
		}
	}
	return out
}
