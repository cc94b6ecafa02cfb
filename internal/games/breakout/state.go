package breakout

import "github.com/vovakirdan/brick-breaker/internal/core"

// DefaultBrickStatus is the hit points a freshly laid brick starts with.
const DefaultBrickStatus = 4

// Player is the paddle. Only horizontal movement is meaningful.
type Player struct {
	Body core.Body
	Vel  core.Vec2
}

// Ball rests on the paddle until fired.
type Ball struct {
	Body  core.Body
	Vel   core.Vec2
	Fired bool
}

// Brick is removed once Status drops to zero or below.
type Brick struct {
	Body   core.Body
	Status int
}

// State is the whole simulated world. It is built once and rebuilt in
// place by Setup for every round.
type State struct {
	ArenaSize core.Vec2
	BrickSize core.Vec2

	// Bricks keeps layout order. Indices shift on removal and are not
	// stable identifiers.
	Bricks []Brick
	Player Player
	Ball   Ball

	// GameJustStarted suppresses launching on the first tick after Setup.
	GameJustStarted bool

	// BrickStatus is the status new bricks are laid with.
	BrickStatus int
}

// New creates a state with the paddle centered at the bottom of the arena
// and the ball resting on it.
func New(arenaSize, playerSize, ballSize, brickSize core.Vec2) *State {
	s := &State{
		ArenaSize:   arenaSize,
		BrickSize:   brickSize,
		Player:      Player{Body: core.Body{Size: playerSize}},
		Ball:        Ball{Body: core.Body{Size: ballSize}},
		BrickStatus: DefaultBrickStatus,
	}
	s.centerPlayer()
	s.restBall()
	return s
}

// Setup clears the bricks, recenters the paddle and ball and lays out a
// numX by numY grid. The grid is centered horizontally with no gaps and
// rows stack down from the top of the arena. A zero dimension lays out
// nothing.
func (s *State) Setup(numX, numY int) {
	s.Bricks = s.Bricks[:0]
	s.centerPlayer()
	s.Player.Vel = core.Vec2{}
	s.Ball.Fired = false
	s.restBall()
	s.GameJustStarted = true

	if numX <= 0 || numY <= 0 {
		return
	}

	status := s.BrickStatus
	if status <= 0 {
		status = DefaultBrickStatus
	}

	startX := (s.ArenaSize.X - s.BrickSize.X*float64(numX)) / 2
	for y := range numY {
		top := s.ArenaSize.Y - float64(y)*s.BrickSize.Y - s.BrickSize.Y
		for x := range numX {
			s.Bricks = append(s.Bricks, Brick{
				Body: core.Body{
					Pos:  core.V(startX+float64(x)*s.BrickSize.X, top),
					Size: s.BrickSize,
				},
				Status: status,
			})
		}
	}
}

// RemoveBrick deletes the brick at index i, shifting later bricks down.
func (s *State) RemoveBrick(i int) {
	if i < 0 || i >= len(s.Bricks) {
		return
	}
	s.Bricks = append(s.Bricks[:i], s.Bricks[i+1:]...)
}

// Cleared reports whether every brick has been destroyed.
func (s *State) Cleared() bool {
	return len(s.Bricks) == 0
}

// PaddleMaxX is the largest legal paddle x position.
func (s *State) PaddleMaxX() float64 {
	return s.ArenaSize.X - s.Player.Body.Size.X
}

func (s *State) centerPlayer() {
	s.Player.Body.Pos = core.V((s.ArenaSize.X-s.Player.Body.Size.X)/2, 0)
}

// restBall places the ball centered just above the paddle and stops it.
func (s *State) restBall() {
	p := s.Player.Body
	s.Ball.Body.Pos = p.Pos.Add(core.V(
		(p.Size.X-s.Ball.Body.Size.X)/2,
		p.Size.Y+1,
	))
	s.Ball.Vel = core.Vec2{}
}
