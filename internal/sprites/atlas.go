// Package sprites provides the sprite-size lookup the simulation and the
// menu use for placement. Only sizes are modeled; how sprites are drawn
// is up to the renderer.
package sprites

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/brick-breaker/internal/core"
)

// Well-known sprite names.
const (
	Paddle           = "paddle"
	Ball             = "ball"
	Brick            = "brick1"
	Title            = "title"
	StartButton      = "start_button"
	ExitButton       = "exit_button"
	FullscreenToggle = "fullscreen"
	CheckBox         = "check_box"
)

// ErrUnknownSprite is returned for names missing from the atlas.
var ErrUnknownSprite = errors.New("sprites: unknown sprite")

//go:embed defaults/atlas.yaml
var defaultAtlasYAML []byte

// Size is a sprite's width and height in world units.
type Size struct {
	W float64 `yaml:"w" json:"w"`
	H float64 `yaml:"h" json:"h"`
}

// Vec returns the size as a vector.
func (s Size) Vec() core.Vec2 {
	return core.V(s.W, s.H)
}

// Atlas is a named collection of sprite sizes.
type Atlas struct {
	sprites map[string]Size
}

type atlasFile struct {
	Sprites map[string]Size `yaml:"sprites"`
}

// Default returns the embedded atlas.
func Default() (*Atlas, error) {
	return Parse(defaultAtlasYAML)
}

// Load reads an atlas from a YAML file.
func Load(path string) (*Atlas, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sprites: failed to read atlas %s: %w", path, err)
	}
	a, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("sprites: %s: %w", path, err)
	}
	return a, nil
}

// Parse decodes YAML atlas data and rejects non-positive sizes.
func Parse(data []byte) (*Atlas, error) {
	var f atlasFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("sprites: failed to parse atlas: %w", err)
	}
	return FromSizes(f.Sprites)
}

// FromSizes builds an atlas from a name to size map. The map is copied.
func FromSizes(sizes map[string]Size) (*Atlas, error) {
	a := &Atlas{sprites: make(map[string]Size, len(sizes))}
	for name, s := range sizes {
		if s.W <= 0 || s.H <= 0 {
			return nil, fmt.Errorf("sprites: %q has non-positive size %gx%g", name, s.W, s.H)
		}
		a.sprites[name] = s
	}
	return a, nil
}

// Size looks up a sprite by name.
func (a *Atlas) Size(name string) (Size, error) {
	s, ok := a.sprites[name]
	if !ok {
		return Size{}, fmt.Errorf("%w %q", ErrUnknownSprite, name)
	}
	return s, nil
}

// Names lists the sprite names in sorted order.
func (a *Atlas) Names() []string {
	names := make([]string, 0, len(a.sprites))
	for n := range a.sprites {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Sizes returns a copy of every sprite size.
func (a *Atlas) Sizes() map[string]Size {
	out := make(map[string]Size, len(a.sprites))
	for n, s := range a.sprites {
		out[n] = s
	}
	return out
}
