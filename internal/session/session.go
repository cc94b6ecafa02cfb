// Package session owns everything one player's host loop needs between
// ticks: the controller, the world, the menu and the current mode. Hosts
// feed it input events, call Tick once per frame and react to the Report.
package session

import (
	"fmt"

	"github.com/vovakirdan/brick-breaker/internal/config"
	"github.com/vovakirdan/brick-breaker/internal/games/breakout"
	"github.com/vovakirdan/brick-breaker/internal/input"
	"github.com/vovakirdan/brick-breaker/internal/menu"
	"github.com/vovakirdan/brick-breaker/internal/sprites"
)

// Report is what happened during one Tick. Its slices are reused and
// are only valid until the next Tick.
type Report struct {
	Game []breakout.Message
	Menu []menu.Message

	// ModeChanged is set when the tick switched between menu and play.
	ModeChanged bool
	// FullscreenToggled is set when the fullscreen setting flipped.
	FullscreenToggled bool
	// Quit is set when the player asked to leave.
	Quit bool
	// Finished is non-nil when a round ended this tick.
	Finished *Result
}

// Session is the explicit per-player context passed through the host loop.
type Session struct {
	ctrl     *input.Controller
	state    *breakout.State
	menu     *menu.Menu
	movement *breakout.MovementSystem

	settings config.Settings
	grid     config.GridConfig
	points   int

	mode   Mode
	rounds int
	frame  int
	stats  Stats
	quit   bool

	gameBuf []breakout.Message
	menuBuf []menu.Message
}

// New builds a session in menu mode.
func New(cfg config.GameConfig, atlas menu.SizeLookup, settings config.Settings) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	size := func(name string) (sprites.Size, error) {
		s, err := atlas.Size(name)
		if err != nil {
			return s, fmt.Errorf("session: %w", err)
		}
		return s, nil
	}
	paddle, err := size(sprites.Paddle)
	if err != nil {
		return nil, err
	}
	ball, err := size(sprites.Ball)
	if err != nil {
		return nil, err
	}
	brick, err := size(sprites.Brick)
	if err != nil {
		return nil, err
	}

	if err := cfg.ValidateLayout(paddle.Vec(), ball.Vec(), brick.Vec()); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	m, err := menu.New(atlas, cfg.Arena.Size())
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	state := breakout.New(cfg.Arena.Size(), paddle.Vec(), ball.Vec(), brick.Vec())
	state.BrickStatus = cfg.Bricks.Status

	return &Session{
		ctrl:     input.NewController(),
		state:    state,
		menu:     m,
		movement: breakout.NewMovementSystem(cfg.Physics.Speed),
		settings: settings,
		grid:     cfg.Grid,
		points:   cfg.Bricks.Points,
		mode:     MenuMode{},
	}, nil
}

// Input forwards a raw event to the controller.
func (s *Session) Input(ev input.Event) {
	s.ctrl.Input(ev)
}

// Tick advances the session by one fixed step.
func (s *Session) Tick() Report {
	s.gameBuf = s.gameBuf[:0]
	s.menuBuf = s.menuBuf[:0]
	r := Report{}

	switch s.mode.(type) {
	case MenuMode:
		s.tickMenu(&r)
	case PlayMode:
		s.tickPlay(&r)
	}

	r.Game = s.gameBuf
	r.Menu = s.menuBuf
	r.Quit = s.quit
	s.frame++
	s.ctrl.EndTick()
	return r
}

func (s *Session) tickMenu(r *Report) {
	if s.ctrl.BackJustPressed() {
		s.quit = true
		return
	}

	s.menuBuf = s.menu.Input(s.ctrl, s.menuBuf)
	for _, msg := range s.menuBuf {
		switch msg {
		case menu.MsgStart:
			s.startRound()
			r.ModeChanged = true
		case menu.MsgExit:
			s.quit = true
		case menu.MsgToggleFullscreen:
			s.ToggleFullscreen()
			r.FullscreenToggled = true
		}
	}
}

func (s *Session) tickPlay(r *Report) {
	if s.ctrl.BackJustPressed() {
		r.Finished = s.finishRound(OutcomeAbandoned)
		r.ModeChanged = true
		return
	}

	before := len(s.state.Bricks)
	s.movement.Input(s.ctrl)
	s.gameBuf = s.movement.Update(s.state, breakout.Dt, s.gameBuf)
	s.stats.record(s.gameBuf, before-len(s.state.Bricks), s.points)

	for _, msg := range s.gameBuf {
		if msg == breakout.MsgWin {
			r.Finished = s.finishRound(OutcomeWon)
			r.ModeChanged = true
			break
		}
	}
}

func (s *Session) startRound() {
	s.rounds++
	s.state.Setup(s.grid.Columns, s.grid.Rows)
	s.stats = Stats{}
	s.mode = PlayMode{Round: s.rounds}
}

func (s *Session) finishRound(outcome Outcome) *Result {
	res := &Result{
		Round:      s.rounds,
		Outcome:    outcome,
		Stats:      s.stats,
		BricksLeft: len(s.state.Bricks),
	}
	s.mode = MenuMode{}
	return res
}

// Mode returns the current mode.
func (s *Session) Mode() Mode { return s.mode }

// State returns the world. Hosts must treat it as read-only.
func (s *Session) State() *breakout.State { return s.state }

// Menu returns the menu.
func (s *Session) Menu() *menu.Menu { return s.menu }

// Controller returns the controller.
func (s *Session) Controller() *input.Controller { return s.ctrl }

// Stats returns the running statistics of the current or last round.
func (s *Session) Stats() Stats { return s.stats }

// Settings returns the user settings as modified by the session.
func (s *Session) Settings() config.Settings { return s.settings }

// ToggleFullscreen flips the fullscreen setting and returns the new value.
// Hosts call it directly for a dedicated fullscreen key.
func (s *Session) ToggleFullscreen() bool {
	s.settings.Fullscreen = !s.settings.Fullscreen
	return s.settings.Fullscreen
}

// SetWindowSize records the host's viewport size in the settings.
func (s *Session) SetWindowSize(width, height int) {
	s.settings.Width = width
	s.settings.Height = height
}

// Frame is the number of ticks run so far.
func (s *Session) Frame() int { return s.frame }

// Quitting reports whether the player asked to leave.
func (s *Session) Quitting() bool { return s.quit }
