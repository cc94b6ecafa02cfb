package replay

import (
	"fmt"

	"github.com/vovakirdan/brick-breaker/internal/config"
	"github.com/vovakirdan/brick-breaker/internal/games/breakout"
	"github.com/vovakirdan/brick-breaker/internal/input"
	"github.com/vovakirdan/brick-breaker/internal/session"
	"github.com/vovakirdan/brick-breaker/internal/sprites"
)

// Replayer hands out recorded events tick by tick.
type Replayer struct {
	data  ReplayData
	frame int
	next  int
}

// NewReplayer creates a new replayer from replay data.
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// Next returns the events to feed before the current tick and advances.
// ok is false once every recorded tick has been handed out.
func (r *Replayer) Next() (events []input.Event, ok bool) {
	if r.frame >= r.data.Ticks {
		return nil, false
	}
	for r.next < len(r.data.Frames) && r.data.Frames[r.next].F <= r.frame {
		for _, e := range r.data.Frames[r.next].Ev {
			events = append(events, e.event())
		}
		r.next++
	}
	r.frame++
	return events, true
}

// CurrentFrame returns the current frame number.
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames.
func (r *Replayer) TotalFrames() int {
	return r.data.Ticks
}

// Reset rewinds to the beginning.
func (r *Replayer) Reset() {
	r.frame = 0
	r.next = 0
}

// Outcome is the result of a headless run.
type Outcome struct {
	Snapshot breakout.Snapshot
	Hash     uint64
	Ticks    int
	Rounds   []session.Result
	// Verified is true when the recording carried a final hash and the
	// run reproduced it.
	Verified bool
}

// Run re-simulates a recording from a fresh session.
func Run(data ReplayData) (*Outcome, error) {
	atlas, err := sprites.FromSizes(data.Sprites)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	s, err := session.New(data.Config, atlas, config.DefaultSettings())
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}

	out := &Outcome{}
	r := NewReplayer(data)
	for {
		events, ok := r.Next()
		if !ok {
			break
		}
		for _, ev := range events {
			s.Input(ev)
		}
		rep := s.Tick()
		out.Ticks++
		if rep.Finished != nil {
			out.Rounds = append(out.Rounds, *rep.Finished)
		}
		if rep.Quit {
			break
		}
	}

	out.Snapshot = s.State().Snapshot()
	out.Hash = out.Snapshot.Hash()
	out.Verified = data.FinalHash != 0 && data.FinalHash == out.Hash
	return out, nil
}
