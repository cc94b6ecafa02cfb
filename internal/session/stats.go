package session

import "github.com/vovakirdan/brick-breaker/internal/games/breakout"

// Outcome is how a round ended.
type Outcome string

const (
	OutcomeWon       Outcome = "won"
	OutcomeAbandoned Outcome = "abandoned"
)

// Stats are counted over one round.
type Stats struct {
	Launches        int
	Bounces         int
	Drops           int
	BricksDestroyed int
	Ticks           int
	Score           int
}

// Result describes a finished round.
type Result struct {
	Round   int
	Outcome Outcome
	Stats   Stats
	// BricksLeft is the number of bricks still standing.
	BricksLeft int
}

// record folds one tick's messages and brick count change into s.
func (s *Stats) record(msgs []breakout.Message, destroyed, points int) {
	s.Ticks++
	for _, m := range msgs {
		switch m {
		case breakout.MsgFire:
			s.Launches++
		case breakout.MsgBounce:
			s.Bounces++
		case breakout.MsgDrop:
			s.Drops++
		}
	}
	if destroyed > 0 {
		s.BricksDestroyed += destroyed
		s.Score += destroyed * points
	}
}
