package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brick-breaker/internal/core"
	"github.com/vovakirdan/brick-breaker/internal/sprites"
)

type edges struct {
	up, down, fire bool
}

func (e edges) UpJustPressed() bool   { return e.up }
func (e edges) DownJustPressed() bool { return e.down }
func (e edges) FireJustPressed() bool { return e.fire }

func newTestMenu(t *testing.T) *Menu {
	t.Helper()
	atlas, err := sprites.Default()
	require.NoError(t, err)
	m, err := New(atlas, core.V(100, 100))
	require.NoError(t, err)
	return m
}

func TestMenu_StartsOnStart(t *testing.T) {
	m := newTestMenu(t)
	assert.Equal(t, FocusStart, m.Focus())
}

func TestMenu_DownCyclesWithPeriodThree(t *testing.T) {
	m := newTestMenu(t)
	seen := []Focus{m.Focus()}
	for i := 0; i < 3; i++ {
		out := m.Input(edges{down: true}, nil)
		assert.Equal(t, []Message{MsgFocusChanged}, out)
		seen = append(seen, m.Focus())
	}
	assert.Equal(t, []Focus{FocusStart, FocusExit, FocusFullscreen, FocusStart}, seen)
}

func TestMenu_UpIsInverseOfDown(t *testing.T) {
	for f := FocusStart; f < focusCount; f++ {
		assert.Equal(t, f, f.Next().Prev(), f.String())
		assert.Equal(t, f, f.Prev().Next(), f.String())
	}

	m := newTestMenu(t)
	m.Input(edges{up: true}, nil)
	assert.Equal(t, FocusFullscreen, m.Focus())
}

func TestMenu_UpAndDownSameTickCancel(t *testing.T) {
	m := newTestMenu(t)
	out := m.Input(edges{up: true, down: true}, nil)
	assert.Empty(t, out)
	assert.Equal(t, FocusStart, m.Focus())
}

func TestMenu_FireEmitsPerFocus(t *testing.T) {
	tests := []struct {
		focus Focus
		want  Message
	}{
		{FocusStart, MsgStart},
		{FocusExit, MsgExit},
		{FocusFullscreen, MsgToggleFullscreen},
	}
	for _, tt := range tests {
		t.Run(tt.focus.String(), func(t *testing.T) {
			m := newTestMenu(t)
			m.SetFocus(tt.focus)
			out := m.Input(edges{fire: true}, nil)
			assert.Equal(t, []Message{tt.want}, out)
			assert.Equal(t, tt.focus, m.Focus())
		})
	}
}

func TestMenu_NavigateThenFireSameTick(t *testing.T) {
	m := newTestMenu(t)
	out := m.Input(edges{down: true, fire: true}, nil)
	assert.Equal(t, []Message{MsgFocusChanged, MsgExit}, out)
}

func TestMenu_NoEdgesNoMessages(t *testing.T) {
	m := newTestMenu(t)
	out := m.Input(edges{}, []Message{MsgStart})
	assert.Equal(t, []Message{MsgStart}, out, "existing messages are preserved")
}

type missing struct{}

func (missing) Size(name string) (sprites.Size, error) {
	return sprites.Size{}, sprites.ErrUnknownSprite
}

func TestNew_MissingSprite(t *testing.T) {
	_, err := New(missing{}, core.V(100, 100))
	require.Error(t, err)
	assert.ErrorIs(t, err, sprites.ErrUnknownSprite)
}

func TestTopDownLayout_Place(t *testing.T) {
	l := NewTopDownLayout(core.V(4, 96), 4)
	assert.Equal(t, core.V(4, 84), l.Place(core.V(60, 12)))
	assert.Equal(t, core.V(8, 72), l.PlaceWithOffset(core.V(24, 8), core.V(4, 0)))
}

func TestMenu_Layout(t *testing.T) {
	m := newTestMenu(t)
	m.SetFocus(FocusExit)
	got := m.Layout(true)
	require.Len(t, got, 5)

	byName := map[string]Placement{}
	for _, p := range got {
		byName[p.Sprite] = p
	}

	assert.Equal(t, core.V(4, 84), byName[sprites.Title].Body.Pos)
	assert.Equal(t, core.V(8, 72), byName[sprites.StartButton].Body.Pos)
	assert.Equal(t, core.V(8, 60), byName[sprites.ExitButton].Body.Pos)
	assert.Equal(t, core.V(4, 4), byName[sprites.FullscreenToggle].Body.Pos)
	assert.Equal(t, core.V(38, 4), byName[sprites.CheckBox].Body.Pos)

	assert.True(t, byName[sprites.ExitButton].Selected)
	assert.False(t, byName[sprites.StartButton].Selected)
	assert.True(t, byName[sprites.CheckBox].Checked)
}
