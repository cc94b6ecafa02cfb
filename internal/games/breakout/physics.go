package breakout

import "github.com/vovakirdan/brick-breaker/internal/core"

// Dt is the fixed simulation step. The host runs one tick per frame and
// always advances the world by this amount.
const Dt = 1.0 / 60.0

// launchFactor scales the ball speed relative to the paddle speed.
const launchFactor = 0.5

// paddleLift is the vertical component of the paddle reflection before
// normalization. Larger values give steeper exits.
const paddleLift = 2.0

// Message is a discrete gameplay event emitted by a tick.
type Message int

const (
	MsgFire Message = iota
	MsgBounce
	MsgDrop
	MsgWin
)

// String returns a human-readable name for the message.
func (m Message) String() string {
	switch m {
	case MsgFire:
		return "fire"
	case MsgBounce:
		return "bounce"
	case MsgDrop:
		return "drop"
	case MsgWin:
		return "win"
	default:
		return "unknown"
	}
}

// Controls is the part of the controller the simulation reads.
type Controls interface {
	Dir() float64
	FireJustPressed() bool
}

// MovementSystem advances State by one tick: paddle movement, launching,
// ball integration and collision response.
type MovementSystem struct {
	Speed float64

	dir  float64
	fire bool
}

// NewMovementSystem creates a system. speed is the paddle speed in world
// units per second; the ball travels at half of it.
func NewMovementSystem(speed float64) *MovementSystem {
	return &MovementSystem{Speed: speed}
}

// Input samples the controller for the next Update.
func (m *MovementSystem) Input(c Controls) {
	m.dir = core.ClampF(c.Dir(), -1, 1)
	m.fire = c.FireJustPressed()
}

// Update advances s by dt and appends the tick's messages to out.
// Collisions resolve in a fixed order: paddle, bricks, side walls, floor,
// ceiling. At most one MsgBounce is emitted per tick and a drop
// suppresses it.
func (m *MovementSystem) Update(s *State, dt float64, out []Message) []Message {
	m.movePaddle(s, dt)

	ball := &s.Ball
	switch {
	case m.fire && !ball.Fired && !s.GameJustStarted:
		s.restBall()
		ball.Vel = core.V(m.dir, 1).Normalize().Scale(m.Speed * launchFactor)
		ball.Fired = true
		out = append(out, MsgFire)
	case !ball.Fired:
		s.restBall()
	}

	ball.Body.Pos = ball.Body.Pos.Add(ball.Vel.Scale(dt))

	if ball.Fired {
		out = m.collide(s, out)
	}

	s.GameJustStarted = false
	return out
}

func (m *MovementSystem) movePaddle(s *State, dt float64) {
	p := &s.Player
	p.Vel = core.V(m.dir*m.Speed, 0)
	p.Body.Pos = p.Body.Pos.Add(p.Vel.Scale(dt))

	maxX := s.PaddleMaxX()
	if maxX < 0 {
		maxX = 0
	}
	p.Body.Pos.X = core.ClampF(p.Body.Pos.X, 0, maxX)
}

func (m *MovementSystem) collide(s *State, out []Message) []Message {
	ball := &s.Ball
	bounced := false
	dropped := false

	if ball.Body.Overlaps(s.Player.Body) {
		ball.Vel = paddleReflection(ball.Body, s.Player.Body).Scale(m.Speed * launchFactor)
		bounced = true
	}

	if hitBricks(s) {
		bounced = true
	}

	arena := s.ArenaSize
	if ball.Body.Pos.X < 0 {
		ball.Body.Pos.X = 0
		ball.Vel.X = -ball.Vel.X
		bounced = true
	} else if ball.Body.Right() > arena.X {
		ball.Body.Pos.X = arena.X - ball.Body.Size.X
		ball.Vel.X = -ball.Vel.X
		bounced = true
	}

	if ball.Body.Pos.Y < 0 {
		out = append(out, MsgDrop)
		dropped = true
		ball.Fired = false
		s.restBall()
	} else if ball.Body.Top() > arena.Y {
		ball.Body.Pos.Y = arena.Y - ball.Body.Size.Y
		ball.Vel.Y = -ball.Vel.Y
		bounced = true
	}

	if s.Cleared() {
		out = append(out, MsgWin)
	}
	if bounced && !dropped {
		out = append(out, MsgBounce)
	}
	return out
}

// paddleReflection returns the unit exit direction off the paddle. The
// ball center's position across the paddle maps linearly to [-1, 1] on X.
func paddleReflection(ball, paddle core.Body) core.Vec2 {
	rel := 0.0
	if paddle.Size.X > 0 {
		rel = (ball.Center().X-paddle.Pos.X)/paddle.Size.X*2 - 1
	}
	rel = core.ClampF(rel, -1, 1)
	return core.V(rel, paddleLift).Normalize()
}

// hitBricks damages every brick the ball overlaps, then reflects the ball
// once off the nearest of them and drops destroyed bricks. Hits are
// collected before the ball moves so adjacent bricks are all damaged.
func hitBricks(s *State) bool {
	ball := &s.Ball
	hits := 0
	destroyed := false
	// Moving up the ball exits below the lowest brick hit, otherwise above
	// the highest one.
	up := ball.Vel.Y > 0
	snapY := 0.0

	for i := range s.Bricks {
		b := &s.Bricks[i]
		if !ball.Body.Overlaps(b.Body) {
			continue
		}
		b.Status--
		if b.Status <= 0 {
			destroyed = true
		}

		y := b.Body.Top()
		if up {
			y = b.Body.Pos.Y - ball.Body.Size.Y
		}
		if hits == 0 || (up && y < snapY) || (!up && y > snapY) {
			snapY = y
		}
		hits++
	}
	if hits == 0 {
		return false
	}

	ball.Body.Pos.Y = snapY
	ball.Vel.Y = -ball.Vel.Y

	if destroyed {
		live := s.Bricks[:0]
		for _, b := range s.Bricks {
			if b.Status > 0 {
				live = append(live, b)
			}
		}
		s.Bricks = live
	}
	return true
}
