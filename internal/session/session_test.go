package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brick-breaker/internal/config"
	"github.com/vovakirdan/brick-breaker/internal/games/breakout"
	"github.com/vovakirdan/brick-breaker/internal/input"
	"github.com/vovakirdan/brick-breaker/internal/menu"
	"github.com/vovakirdan/brick-breaker/internal/sprites"
)

func newTestSession(t *testing.T, mutate func(*config.GameConfig)) *Session {
	t.Helper()
	cfg := config.DefaultGameConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	atlas, err := sprites.Default()
	require.NoError(t, err)
	s, err := New(cfg, atlas, config.DefaultSettings())
	require.NoError(t, err)
	return s
}

func press(s *Session, key input.Key) {
	s.Input(input.KeyEvent{Key: key, Pressed: true})
}

func TestNew_StartsInMenu(t *testing.T) {
	s := newTestSession(t, nil)
	assert.Equal(t, MenuMode{}, s.Mode())
	assert.Empty(t, s.State().Bricks)

	r := s.Tick()
	assert.Empty(t, r.Menu)
	assert.Empty(t, r.Game)
	assert.False(t, r.ModeChanged)
	assert.Equal(t, 1, s.Frame())
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	atlas, err := sprites.Default()
	require.NoError(t, err)
	cfg := config.DefaultGameConfig()
	cfg.Physics.Speed = 0
	_, err = New(cfg, atlas, config.DefaultSettings())
	assert.Error(t, err)
}

func TestNew_RejectsOversizedGrid(t *testing.T) {
	atlas, err := sprites.Default()
	require.NoError(t, err)

	cfg := config.DefaultGameConfig()
	cfg.Grid.Columns = 13 // 13 * 8 > 100
	_, err = New(cfg, atlas, config.DefaultSettings())
	assert.ErrorContains(t, err, "columns")

	cfg = config.DefaultGameConfig()
	cfg.Grid.Rows = 24 // 24 * 4 leaves 4 units for paddle and ball
	_, err = New(cfg, atlas, config.DefaultSettings())
	assert.ErrorContains(t, err, "rows")
}

func TestNew_MissingSprite(t *testing.T) {
	atlas, err := sprites.FromSizes(map[string]sprites.Size{sprites.Paddle: {W: 10, H: 3}})
	require.NoError(t, err)
	_, err = New(config.DefaultGameConfig(), atlas, config.DefaultSettings())
	assert.ErrorIs(t, err, sprites.ErrUnknownSprite)
}

func TestTick_StartEntersPlay(t *testing.T) {
	s := newTestSession(t, nil)
	press(s, "enter")
	r := s.Tick()

	assert.Equal(t, []menu.Message{menu.MsgStart}, r.Menu)
	assert.True(t, r.ModeChanged)
	assert.Equal(t, PlayMode{Round: 1}, s.Mode())
	assert.Len(t, s.State().Bricks, 12*5)
	assert.True(t, s.State().GameJustStarted)
	assert.False(t, s.Controller().FireJustPressed(), "edges clear after every tick")
}

func TestTick_FirstPlayTickSuppressesLaunch(t *testing.T) {
	s := newTestSession(t, nil)
	press(s, "space")
	s.Tick()

	press(s, "space")
	r := s.Tick()
	assert.Empty(t, r.Game)
	assert.False(t, s.State().Ball.Fired)

	press(s, "space")
	r = s.Tick()
	assert.Equal(t, []breakout.Message{breakout.MsgFire}, r.Game)
	assert.True(t, s.State().Ball.Fired)
	assert.Equal(t, 1, s.Stats().Launches)
	assert.Equal(t, 2, s.Stats().Ticks)
}

func TestTick_HeldKeyFiresOnce(t *testing.T) {
	s := newTestSession(t, nil)
	press(s, "space")
	s.Tick()
	s.Tick()

	press(s, "space")
	s.Tick()
	launches := s.Stats().Launches
	for i := 0; i < 5; i++ {
		s.Tick()
	}
	assert.Equal(t, 1, launches)
	assert.Equal(t, 1, s.Stats().Launches)
}

func TestTick_BackAbandonsRound(t *testing.T) {
	s := newTestSession(t, nil)
	press(s, "enter")
	s.Tick()
	s.Tick()

	press(s, "esc")
	r := s.Tick()
	require.NotNil(t, r.Finished)
	assert.Equal(t, OutcomeAbandoned, r.Finished.Outcome)
	assert.Equal(t, 1, r.Finished.Round)
	assert.Equal(t, 60, r.Finished.BricksLeft)
	assert.True(t, r.ModeChanged)
	assert.False(t, r.Quit)
	assert.Equal(t, MenuMode{}, s.Mode())
}

func TestTick_BackInMenuQuits(t *testing.T) {
	s := newTestSession(t, nil)
	press(s, "esc")
	r := s.Tick()
	assert.True(t, r.Quit)
	assert.True(t, s.Quitting())
}

func TestTick_ExitQuits(t *testing.T) {
	s := newTestSession(t, nil)
	press(s, "down")
	press(s, "enter")
	r := s.Tick()
	assert.Equal(t, []menu.Message{menu.MsgFocusChanged, menu.MsgExit}, r.Menu)
	assert.True(t, r.Quit)
}

func TestTick_ToggleFullscreen(t *testing.T) {
	s := newTestSession(t, nil)
	press(s, "up")
	s.Tick()
	require.Equal(t, menu.FocusFullscreen, s.Menu().Focus())

	press(s, "enter")
	r := s.Tick()
	assert.True(t, r.FullscreenToggled)
	assert.True(t, s.Settings().Fullscreen)
	assert.Equal(t, MenuMode{}, s.Mode())

	press(s, "enter")
	s.Tick()
	assert.False(t, s.Settings().Fullscreen)
}

func TestTick_WinReturnsToMenu(t *testing.T) {
	s := newTestSession(t, func(c *config.GameConfig) {
		c.Grid.Columns = 1
		c.Grid.Rows = 1
		c.Bricks.Status = 1
		c.Bricks.Points = 25
	})
	press(s, "enter")
	s.Tick()
	s.Tick()
	press(s, "space")

	var finished *Result
	var last []breakout.Message
	for i := 0; i < 2000 && finished == nil; i++ {
		r := s.Tick()
		finished = r.Finished
		last = append(last[:0], r.Game...)
	}
	require.NotNil(t, finished, "ball launched straight up must reach the centered brick")

	assert.Equal(t, OutcomeWon, finished.Outcome)
	assert.Equal(t, 0, finished.BricksLeft)
	assert.Equal(t, 1, finished.Stats.BricksDestroyed)
	assert.Equal(t, 25, finished.Stats.Score)
	assert.Equal(t, 1, finished.Stats.Launches)
	assert.Contains(t, last, breakout.MsgWin)
	assert.Equal(t, MenuMode{}, s.Mode())

	press(s, "enter")
	s.Tick()
	assert.Equal(t, PlayMode{Round: 2}, s.Mode())
	assert.Equal(t, Stats{}, s.Stats())
	assert.Len(t, s.State().Bricks, 1)
}

func TestSetWindowSize(t *testing.T) {
	s := newTestSession(t, nil)
	s.SetWindowSize(120, 40)
	assert.Equal(t, 120, s.Settings().Width)
	assert.Equal(t, 40, s.Settings().Height)
}

func TestStatsRecord(t *testing.T) {
	var st Stats
	st.record([]breakout.Message{breakout.MsgFire, breakout.MsgBounce}, 0, 10)
	st.record([]breakout.Message{breakout.MsgDrop}, 2, 10)
	st.record(nil, 1, 10)

	assert.Equal(t, Stats{
		Launches:        1,
		Bounces:         1,
		Drops:           1,
		BricksDestroyed: 3,
		Ticks:           3,
		Score:           30,
	}, st)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "menu", MenuMode{}.String())
	assert.Equal(t, "play", PlayMode{}.String())
}
