// Package audio plays short synthesized cues for game and menu messages.
package audio

import (
	"github.com/vovakirdan/brick-breaker/internal/games/breakout"
	"github.com/vovakirdan/brick-breaker/internal/menu"
)

// Cue identifies one sound effect.
type Cue int

const (
	CueLaunch Cue = iota
	CueBounce
	CueDrop
	CueWin
	CueFocus
	CueSelect
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueLaunch:
		return "launch"
	case CueBounce:
		return "bounce"
	case CueDrop:
		return "drop"
	case CueWin:
		return "win"
	case CueFocus:
		return "focus"
	case CueSelect:
		return "select"
	default:
		return "unknown"
	}
}

// Player plays cues. Implementations must not block the caller.
type Player interface {
	Play(c Cue)
	Close()
}

// Nop is a Player that discards every cue.
type Nop struct{}

func (Nop) Play(Cue) {}
func (Nop) Close()   {}

// GameCue maps a simulation message to its cue.
func GameCue(m breakout.Message) (Cue, bool) {
	switch m {
	case breakout.MsgFire:
		return CueLaunch, true
	case breakout.MsgBounce:
		return CueBounce, true
	case breakout.MsgDrop:
		return CueDrop, true
	case breakout.MsgWin:
		return CueWin, true
	}
	return 0, false
}

// MenuCue maps a menu message to its cue. Exit has none since the
// process is about to stop.
func MenuCue(m menu.Message) (Cue, bool) {
	switch m {
	case menu.MsgFocusChanged:
		return CueFocus, true
	case menu.MsgStart, menu.MsgToggleFullscreen:
		return CueSelect, true
	}
	return 0, false
}

// PlayMessages plays the cues for one tick's messages in order.
func PlayMessages(p Player, game []breakout.Message, menuMsgs []menu.Message) {
	for _, m := range menuMsgs {
		if c, ok := MenuCue(m); ok {
			p.Play(c)
		}
	}
	for _, m := range game {
		if c, ok := GameCue(m); ok {
			p.Play(c)
		}
	}
}
