package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brick-breaker/internal/audio"
	"github.com/vovakirdan/brick-breaker/internal/config"
	"github.com/vovakirdan/brick-breaker/internal/core"
	"github.com/vovakirdan/brick-breaker/internal/input"
	"github.com/vovakirdan/brick-breaker/internal/replay"
	"github.com/vovakirdan/brick-breaker/internal/session"
	"github.com/vovakirdan/brick-breaker/internal/sprites"
	"github.com/vovakirdan/brick-breaker/internal/storage"
)

// Options configures a terminal host.
type Options struct {
	Config   config.GameConfig
	Atlas    *sprites.Atlas
	Settings config.Settings
	Runtime  core.RuntimeConfig

	// Store, Audio, Logger and Recorder are optional.
	Store    *storage.Store
	Audio    audio.Player
	Logger   *log.Logger
	Recorder *replay.Recorder

	// Player names the rounds saved to the store.
	Player     string
	Difficulty string
}

// Model is the Bubble Tea model hosting one session.
type Model struct {
	sess     *session.Session
	renderer *Renderer
	screen   *core.Screen
	hold     *HoldTracker
	keys     KeyMap
	help     help.Model

	store    *storage.Store
	audio    audio.Player
	logger   *log.Logger
	recorder *replay.Recorder

	tickRate   int
	player     string
	difficulty string
	highScore  int
	last       *session.Result
	altScreen  bool
	quitting   bool
}

// NewModel creates a model and its session.
func NewModel(opts Options) (Model, error) {
	s, err := session.New(opts.Config, opts.Atlas, opts.Settings)
	if err != nil {
		return Model{}, err
	}

	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Player == "" {
		opts.Player = "local"
	}
	rt, def := opts.Runtime, core.DefaultConfig()
	if rt.ScreenW <= 0 {
		rt.ScreenW = def.ScreenW
	}
	if rt.ScreenH <= 0 {
		rt.ScreenH = def.ScreenH
	}
	if rt.TickRate <= 0 {
		rt.TickRate = def.TickRate
	}

	m := Model{
		sess:       s,
		renderer:   NewRenderer(opts.Config.Arena.Size()),
		screen:     core.NewScreen(rt.ScreenW, max(rt.ScreenH-1, 1)),
		hold:       NewHoldTracker(input.DefaultBindings(), opts.Config.Input.HoldTicks),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		store:      opts.Store,
		audio:      opts.Audio,
		logger:     opts.Logger,
		recorder:   opts.Recorder,
		tickRate:   rt.TickRate,
		player:     opts.Player,
		difficulty: opts.Difficulty,
		altScreen:  opts.Settings.Fullscreen,
	}
	m.help.Width = rt.ScreenW
	s.SetWindowSize(rt.ScreenW, rt.ScreenH)

	if m.store != nil {
		if high, err := m.store.HighScore(); err == nil {
			m.highScore = high
		}
	}
	return m, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		m.sess.SetWindowSize(msg.Width, msg.Height)
		return m, nil

	case tea.BlurMsg:
		m.feed(m.hold.ReleaseAll())
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Fullscreen):
		m.sess.ToggleFullscreen()
		cmd := m.syncAltScreen()
		return m, cmd
	case msg.String() == "?":
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case msg.String() == "ctrl+s":
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	m.feed(m.hold.Press(keyName(msg)))
	return m, nil
}

// feed passes events to the session and the recorder.
func (m Model) feed(events []input.Event) {
	for _, ev := range events {
		m.sess.Input(ev)
		if m.recorder != nil {
			m.recorder.Record(ev)
		}
	}
}

// handleTick runs one simulation step and reacts to its report.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	report := m.sess.Tick()
	if m.recorder != nil {
		m.recorder.Tick()
	}
	// Releases apply to the next tick so a press is never lost
	m.feed(m.hold.Tick())

	audio.PlayMessages(m.audio, report.Game, report.Menu)

	if report.ModeChanged {
		m.logger.Debug("mode changed", "mode", m.sess.Mode())
	}
	if report.Finished != nil {
		m.finishRound(*report.Finished)
	}
	if report.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	cmds := []tea.Cmd{tickCmd(m.tickRate)}
	if report.FullscreenToggled {
		cmds = append(cmds, m.syncAltScreen())
	}
	return m, tea.Batch(cmds...)
}

// finishRound logs and stores a finished round.
func (m *Model) finishRound(res session.Result) {
	m.last = &res
	m.logger.Info("round finished",
		"player", m.player,
		"round", res.Round,
		"outcome", res.Outcome,
		"score", res.Stats.Score,
		"ticks", res.Stats.Ticks,
	)
	if res.Stats.Score > m.highScore {
		m.highScore = res.Stats.Score
	}
	if m.store == nil {
		return
	}
	_, err := m.store.SaveSession(storage.SessionRecord{
		Player:          m.player,
		Outcome:         string(res.Outcome),
		Difficulty:      m.difficulty,
		Score:           res.Stats.Score,
		BricksDestroyed: res.Stats.BricksDestroyed,
		BricksLeft:      res.BricksLeft,
		Launches:        res.Stats.Launches,
		Bounces:         res.Stats.Bounces,
		Drops:           res.Stats.Drops,
		Ticks:           res.Stats.Ticks,
	})
	if err != nil {
		m.logger.Warn("could not save round", "error", err)
	}
}

// syncAltScreen matches the terminal's alternate screen to the setting.
func (m *Model) syncAltScreen() tea.Cmd {
	want := m.sess.Settings().Fullscreen
	if want == m.altScreen {
		return nil
	}
	m.altScreen = want
	if want {
		return tea.EnterAltScreen
	}
	return tea.ExitAltScreen
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch mode := m.sess.Mode().(type) {
	case session.PlayMode:
		st := m.sess.State()
		m.renderer.DrawPlay(m.screen, st, Hud{
			Score:      m.sess.Stats().Score,
			HighScore:  m.highScore,
			BricksLeft: len(st.Bricks),
			Round:      mode.Round,
			Message:    "press space to launch",
		})
	default:
		m.renderer.DrawMenu(m.screen, m.sess.Menu().Layout(m.sess.Settings().Fullscreen), m.menuFooter())
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// menuFooter summarizes the last round.
func (m Model) menuFooter() string {
	if m.last == nil {
		return fmt.Sprintf("high score %d", m.highScore)
	}
	verb := "abandoned"
	if m.last.Outcome == session.OutcomeWon {
		verb = "cleared"
	}
	return fmt.Sprintf("round %d %s with %d points, high score %d", m.last.Round, verb, m.last.Stats.Score, m.highScore)
}

// Session exposes the hosted session.
func (m Model) Session() *session.Session {
	return m.sess
}

// saveScreenshot writes the current screen as plain text.
func (m Model) saveScreenshot() (string, error) {
	dir := filepath.Join(config.Dir(), "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: create screenshot dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("bricks_%s.txt", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: write screenshot: %w", err)
	}
	return path, nil
}

// Run starts the Bubble Tea program and returns the final settings.
func Run(opts Options) (config.Settings, error) {
	model, err := NewModel(opts)
	if err != nil {
		return opts.Settings, err
	}

	progOpts := []tea.ProgramOption{tea.WithReportFocus()}
	if opts.Settings.Fullscreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}

	p := tea.NewProgram(model, progOpts...)
	final, err := p.Run()
	if err != nil {
		return opts.Settings, fmt.Errorf("tui: %w", err)
	}

	fm, ok := final.(Model)
	if !ok {
		return opts.Settings, nil
	}
	if fm.recorder != nil {
		snap := fm.sess.State().Snapshot()
		fm.recorder.Finish(snap.Hash())
	}
	return fm.sess.Settings(), nil
}
