// Package config provides YAML-based game configuration loading,
// difficulty presets and persisted user settings.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/brick-breaker/internal/core"
)

// GameConfig contains all tunables of a brick-breaker session.
type GameConfig struct {
	Arena   ArenaConfig   `yaml:"arena"`
	Grid    GridConfig    `yaml:"grid"`
	Physics PhysicsConfig `yaml:"physics"`
	Bricks  BricksConfig  `yaml:"bricks"`
	Input   InputConfig   `yaml:"input"`
	Audio   AudioConfig   `yaml:"audio"`
	// Atlas is an optional path to a sprite atlas overriding the embedded one.
	Atlas string `yaml:"atlas"`
}

// ArenaConfig is the world size in world units.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Size returns the arena as a vector.
func (a ArenaConfig) Size() core.Vec2 {
	return core.V(a.Width, a.Height)
}

// GridConfig is the brick layout.
type GridConfig struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// PhysicsConfig holds the movement speed shared by paddle and ball.
type PhysicsConfig struct {
	Speed float64 `yaml:"speed"`
}

// BricksConfig defines brick durability and scoring.
type BricksConfig struct {
	Status int `yaml:"status"` // hits to destroy
	Points int `yaml:"points"` // score per destroyed brick
}

// InputConfig tunes the terminal key handling.
type InputConfig struct {
	// HoldTicks is how many ticks a key stays held after its last repeat.
	HoldTicks int `yaml:"hold_ticks"`
}

// AudioConfig toggles sound cues.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 .. 1.0
}

// Validate rejects configurations the simulation cannot run with.
func (c GameConfig) Validate() error {
	var errs []error
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		errs = append(errs, fmt.Errorf("arena must be positive, got %gx%g", c.Arena.Width, c.Arena.Height))
	}
	if c.Grid.Columns < 0 || c.Grid.Rows < 0 {
		errs = append(errs, fmt.Errorf("grid must not be negative, got %dx%d", c.Grid.Columns, c.Grid.Rows))
	}
	if c.Physics.Speed <= 0 {
		errs = append(errs, fmt.Errorf("physics.speed must be positive, got %g", c.Physics.Speed))
	}
	if c.Bricks.Status < 1 {
		errs = append(errs, fmt.Errorf("bricks.status must be at least 1, got %d", c.Bricks.Status))
	}
	if c.Bricks.Points < 0 {
		errs = append(errs, fmt.Errorf("bricks.points must not be negative, got %d", c.Bricks.Points))
	}
	if c.Input.HoldTicks < 1 {
		errs = append(errs, fmt.Errorf("input.hold_ticks must be at least 1, got %d", c.Input.HoldTicks))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be within [0, 1], got %g", c.Audio.Volume))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

// ValidateLayout checks that the grid and the paddle fit the arena once
// sprite sizes are known. The grid must fit the arena width and leave room
// for the paddle and the resting ball below it.
func (c GameConfig) ValidateLayout(paddle, ball, brick core.Vec2) error {
	var errs []error
	arena := c.Arena.Size()
	if paddle.X > arena.X || ball.X > arena.X {
		errs = append(errs, fmt.Errorf("paddle (%g) and ball (%g) must fit the arena width %g", paddle.X, ball.X, arena.X))
	}
	if w := float64(c.Grid.Columns) * brick.X; w > arena.X {
		errs = append(errs, fmt.Errorf("grid: %d columns of width %g exceed the arena width %g", c.Grid.Columns, brick.X, arena.X))
	}
	// The ball rests one unit above the paddle
	floor := paddle.Y + 1 + ball.Y
	if h := float64(c.Grid.Rows) * brick.Y; h > arena.Y-floor {
		errs = append(errs, fmt.Errorf("grid: %d rows of height %g leave no room above the paddle (%g of %g free)",
			c.Grid.Rows, brick.Y, arena.Y-floor, arena.Y))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid layout: %w", err)
	}
	return nil
}
