package sprites

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brick-breaker/internal/core"
)

func TestDefaultAtlas(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)

	for _, name := range []string{Paddle, Ball, Brick, Title, StartButton, ExitButton, FullscreenToggle, CheckBox} {
		s, err := a.Size(name)
		require.NoError(t, err, name)
		assert.Positive(t, s.W)
		assert.Positive(t, s.H)
	}

	p, err := a.Size(Paddle)
	require.NoError(t, err)
	assert.Equal(t, core.V(10, 3), p.Vec())
}

func TestUnknownSprite(t *testing.T) {
	a, err := Parse([]byte("sprites:\n  ball: {w: 1, h: 1}\n"))
	require.NoError(t, err)

	_, err = a.Size("nope")
	assert.ErrorIs(t, err, ErrUnknownSprite)
	assert.Equal(t, []string{"ball"}, a.Names())
}

func TestParseRejectsBadSizes(t *testing.T) {
	_, err := Parse([]byte("sprites:\n  ball: {w: 0, h: 1}\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("sprites: [nonsense"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atlas.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sprites:\n  paddle: {w: 12, h: 2}\n"), 0o600))

	a, err := Load(path)
	require.NoError(t, err)
	s, err := a.Size(Paddle)
	require.NoError(t, err)
	assert.Equal(t, Size{W: 12, H: 2}, s)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestFromSizes_CopiesAndValidates(t *testing.T) {
	src := map[string]Size{Ball: {W: 2, H: 2}}
	a, err := FromSizes(src)
	require.NoError(t, err)

	src[Ball] = Size{W: 9, H: 9}
	s, err := a.Size(Ball)
	require.NoError(t, err)
	assert.Equal(t, Size{W: 2, H: 2}, s)

	out := a.Sizes()
	out[Ball] = Size{W: 7, H: 7}
	s, _ = a.Size(Ball)
	assert.Equal(t, Size{W: 2, H: 2}, s)

	_, err = FromSizes(map[string]Size{Ball: {W: 0, H: 1}})
	assert.Error(t, err)
}
