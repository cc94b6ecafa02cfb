package config

import (
	_ "embed"
)

//go:embed defaults/bricks.yaml
var defaultBricksYAML []byte

// DefaultGameConfig returns the default configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Arena: ArenaConfig{
			Width:  100,
			Height: 100,
		},
		Grid: GridConfig{
			Columns: 12,
			Rows:    5,
		},
		Physics: PhysicsConfig{
			Speed: 30,
		},
		Bricks: BricksConfig{
			Status: 4,
			Points: 10,
		},
		Input: InputConfig{
			HoldTicks: 15,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
	}
}
