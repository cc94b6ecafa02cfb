package breakout

import "math"

// BrickSnapshot is the visible state of one live brick.
type BrickSnapshot struct {
	X, Y   float64
	Status int
}

// Snapshot is a flat copy of the world used by renderers, replays and
// determinism checks.
type Snapshot struct {
	PaddleX, PaddleY float64
	PaddleW, PaddleH float64

	BallX, BallY   float64
	BallVX, BallVY float64
	BallW, BallH   float64
	Fired          bool

	GameJustStarted bool
	Bricks          []BrickSnapshot
}

// Snapshot copies the current state.
func (s *State) Snapshot() Snapshot {
	bricks := make([]BrickSnapshot, len(s.Bricks))
	for i, b := range s.Bricks {
		bricks[i] = BrickSnapshot{X: b.Body.Pos.X, Y: b.Body.Pos.Y, Status: b.Status}
	}

	p := s.Player.Body
	ball := s.Ball
	return Snapshot{
		PaddleX:         p.Pos.X,
		PaddleY:         p.Pos.Y,
		PaddleW:         p.Size.X,
		PaddleH:         p.Size.Y,
		BallX:           ball.Body.Pos.X,
		BallY:           ball.Body.Pos.Y,
		BallVX:          ball.Vel.X,
		BallVY:          ball.Vel.Y,
		BallW:           ball.Body.Size.X,
		BallH:           ball.Body.Size.Y,
		Fired:           ball.Fired,
		GameJustStarted: s.GameJustStarted,
		Bricks:          bricks,
	}
}

// Hash folds the snapshot into a single value for determinism tests.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(17)
	mix := func(v uint64) { h = h*31 + v }
	f := func(v float64) { mix(math.Float64bits(v)) }
	b := func(v bool) {
		if v {
			mix(1)
		} else {
			mix(0)
		}
	}

	f(snap.PaddleX)
	f(snap.PaddleY)
	f(snap.BallX)
	f(snap.BallY)
	f(snap.BallVX)
	f(snap.BallVY)
	b(snap.Fired)
	b(snap.GameJustStarted)
	mix(uint64(len(snap.Bricks)))
	for _, br := range snap.Bricks {
		f(br.X)
		f(br.Y)
		mix(uint64(br.Status)) //#nosec G115 -- hash computation
	}
	return h
}
