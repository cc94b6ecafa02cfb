package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brick-breaker/internal/config"
	"github.com/vovakirdan/brick-breaker/internal/core"
	"github.com/vovakirdan/brick-breaker/internal/session"
	"github.com/vovakirdan/brick-breaker/internal/sprites"
	"github.com/vovakirdan/brick-breaker/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	atlas, err := sprites.Default()
	require.NoError(t, err)

	m, err := NewModel(Options{
		Config:   config.DefaultGameConfig(),
		Atlas:    atlas,
		Settings: config.DefaultSettings(),
		Runtime:  core.RuntimeConfig{ScreenW: 100, ScreenH: 52, TickRate: 60},
		Store:    store,
		Player:   "tester",
	})
	require.NoError(t, err)
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEscape}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_StartsInMenu(t *testing.T) {
	m := newTestModel(t, nil)
	assert.Equal(t, session.MenuMode{}, m.Session().Mode())
	assert.Contains(t, m.View(), "START")
}

func TestModel_EnterStartsRound(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = send(t, m, keyEnter)
	m, cmd := send(t, m, TickMsg{})
	assert.NotNil(t, cmd)
	assert.Equal(t, session.PlayMode{Round: 1}, m.Session().Mode())
	assert.Contains(t, m.View(), "SCORE 0")
}

func TestModel_QuitKey(t *testing.T) {
	m := newTestModel(t, nil)

	m, cmd := send(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModel_EscInMenuQuits(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = send(t, m, keyEsc)
	_, cmd := send(t, m, TickMsg{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_FullscreenToggle(t *testing.T) {
	m := newTestModel(t, nil)
	require.False(t, m.Session().Settings().Fullscreen)

	m, cmd := send(t, m, runes("f"))
	assert.True(t, m.Session().Settings().Fullscreen)
	assert.True(t, m.altScreen, "returned model tracks the alt screen")
	assert.NotNil(t, cmd)

	// Already in sync, no command needed
	assert.Nil(t, m.syncAltScreen())

	m, cmd = send(t, m, runes("f"))
	assert.False(t, m.Session().Settings().Fullscreen)
	assert.False(t, m.altScreen)
	assert.NotNil(t, cmd)
}

func TestModel_WindowResize(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
	assert.Equal(t, 80, m.screen.Width())
	assert.Equal(t, 29, m.screen.Height())
	assert.Equal(t, 80, m.Session().Settings().Width)
	assert.Equal(t, 30, m.Session().Settings().Height)
}

func TestModel_AbandonedRoundIsSaved(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "bricks.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	m := newTestModel(t, store)
	m, _ = send(t, m, keyEnter)
	m, _ = send(t, m, TickMsg{})
	m, _ = send(t, m, keyEsc)
	m, _ = send(t, m, TickMsg{})

	assert.Equal(t, session.MenuMode{}, m.Session().Mode())
	assert.Contains(t, m.View(), "round 1 abandoned")

	recs, err := store.RecentSessions(10)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "tester", recs[0].Player)
	assert.Equal(t, "abandoned", recs[0].Outcome)
	assert.Equal(t, 60, recs[0].BricksLeft)
}

func TestModel_BlurReleasesHeldKeys(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = send(t, m, runes("d"))
	require.True(t, m.hold.Held("d"))
	m, _ = send(t, m, tea.BlurMsg{})
	assert.False(t, m.hold.Held("d"))
	assert.Zero(t, m.Session().Controller().Dir())
}
