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
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/registry"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

// helpHeight is the number of rows reserved for the key help footer.
const helpHeight = 1

// Resizer is implemented by games that can adapt to a new screen size
// without losing the current game.
type Resizer interface {
	Resize(w, h int)
}

// releaser is implemented by games that configure how long a key may stay
// silent before it counts as released.
type releaser interface {
	ReleaseAfter() time.Duration
}

// Options configures a Model beyond the game and runtime settings.
type Options struct {
	Store     *storage.Store
	Player    string
	SessionID string
	Logger    *log.Logger
	Renderer  *lipgloss.Renderer
	// Now replaces time.Now for key timestamps.
	Now func() time.Time
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	player     string
	sessionID  string
	logger     *log.Logger
	styles     Styles
	keys       KeyMap
	help       help.Model
	releases   *releaseTracker
	now        func() time.Time
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.SessionID == "" {
		opts.SessionID = uuid.NewString()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	after := DefaultReleaseAfter
	if r, ok := game.(releaser); ok {
		after = r.ReleaseAfter()
	}

	h := help.New()
	if opts.Renderer != nil {
		h.Styles.ShortKey = opts.Renderer.NewStyle().Foreground(lipgloss.Color("245"))
		h.Styles.ShortDesc = opts.Renderer.NewStyle().Foreground(lipgloss.Color("241"))
		h.Styles.ShortSeparator = opts.Renderer.NewStyle().Foreground(lipgloss.Color("239"))
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		config:     cfg,
		player:     opts.Player,
		sessionID:  opts.SessionID,
		logger:     opts.Logger,
		styles:     NewStyles(opts.Renderer),
		keys:       DefaultKeyMap(),
		help:       h,
		releases:   newReleaseTracker(after),
		now:        opts.Now,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.loadHighScore()
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	switch {
	case action == core.ActionNone:
	case holdable(action):
		m.releases.Press(action, m.now(), &m.inputFrame)
	case action == core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-helpHeight, 1)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(Resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
		return m, nil
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.releases.Expire(now, &m.inputFrame)

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.loadHighScore()
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.releases.Reset()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScore persists the finished game once. Failures are logged and the
// session goes on.
func (m Model) saveScore() {
	if m.store == nil {
		return
	}

	entry := storage.ScoreEntry{
		GameID:    m.game.ID(),
		Player:    m.player,
		SessionID: m.sessionID,
		Points:    float64(m.gameState.Score),
	}
	if s, ok := m.game.(registry.Scored); ok {
		res := s.Result()
		entry.Points = res.Points
		entry.Lines = res.Lines
		entry.Level = res.Level
	}
	if entry.Points <= 0 && entry.Lines == 0 {
		return
	}

	id, err := m.store.SaveScore(entry)
	if err != nil {
		m.logger.Error("save score", "err", err)
		return
	}
	m.logger.Info("score saved", "id", id, "points", entry.Points, "lines", entry.Lines, "level", entry.Level)
	m.loadHighScore()
}

// loadHighScore hands the best stored score to games that display it.
func (m Model) loadHighScore() {
	s, ok := m.game.(registry.Scored)
	if !ok || m.store == nil {
		return
	}
	best, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("load high score", "err", err)
		return
	}
	s.SetHighScore(best)
}

// saveScreenshot writes the current screen to ~/.arcade/screenshots.
func (m Model) saveScreenshot() (string, error) {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: home dir: %w", err)
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: create screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	return RenderScreen(m.screen, m.styles) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a local game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
