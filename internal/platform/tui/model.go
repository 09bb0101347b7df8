package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shapematch/internal/core"
	"github.com/vovakirdan/shapematch/internal/match"
	"github.com/vovakirdan/shapematch/internal/shapes"
	"github.com/vovakirdan/shapematch/internal/storage"
)

// Model is the Bubble Tea model for one round of the game.
type Model struct {
	game     *match.Game
	screen   *core.Screen
	renderer *Renderer
	store    *storage.Store
	logger   *log.Logger
	keys     *KeyMapper
	config   core.RuntimeConfig
	ended    bool // Round finished; holding the final frame
	saved    bool // Whether the round has been recorded
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
// store may be nil; the round is then not recorded. A nil logger discards
// output, since the terminal belongs to the program.
func NewModel(game *match.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer: NewRenderer(),
		store:    store,
		logger:   logger,
		keys:     NewKeyMapper(),
		config:   cfg,
	}
}

// Init starts the countdown and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Start(time.Now())
	m.logger.Debug("round started",
		"duration", m.game.State().Remaining,
		"tokens", m.game.State().Total,
		"cols", m.screen.Width(),
		"rows", m.screen.Height())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case holdDoneMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionCancel:
		if m.game.Cancel(time.Now()) {
			return m.finish()
		}
	}
	return m, nil
}

// handleMouse forwards pointer input to the game.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	ev, ok := MapMouse(msg, m.viewport())
	if !ok {
		return m, nil
	}

	in := m.game.Handle(ev)
	switch in.Outcome {
	case match.OutcomePicked, match.OutcomeMatched, match.OutcomeMissed:
		m.logger.Debug("pointer", "event", ev, "outcome", in.Outcome, "token", in.Token,
			"score", m.game.Session().Score())
	}
	return m, nil
}

// handleTick advances the clock.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.ended {
		return m, nil
	}

	result := m.game.Tick(now)
	if result.Ended {
		return m.finish()
	}

	return m, tickCmd(m.config.TickRate)
}

// finish records the round once and holds the game over frame.
func (m Model) finish() (tea.Model, tea.Cmd) {
	m.ended = true
	res := m.game.Result()
	m.logger.Info("round finished",
		"score", res.Score,
		"placed", res.Placed,
		"total", res.Total,
		"reason", string(res.Reason),
		"elapsed", res.Elapsed.Round(time.Millisecond))

	if m.store != nil && !m.saved {
		_, err := m.store.SaveRound(m.game.ID(), storage.Round{
			Score:     res.Score,
			Placed:    res.Placed,
			Total:     res.Total,
			EndReason: string(res.Reason),
			Duration:  res.Elapsed,
		})
		if err != nil {
			m.logger.Warn("could not save round", "error", err)
		}
	}
	m.saved = true

	return m, holdCmd(m.game.Hold())
}

// viewport maps the canvas onto the current terminal size.
func (m Model) viewport() shapes.Viewport {
	w, h := m.game.Canvas()
	return shapes.Viewport{
		CanvasW: w,
		CanvasH: h,
		Cols:    m.screen.Width(),
		Rows:    m.screen.Height(),
	}
}

// Result returns the round summary.
func (m Model) Result() match.RoundResult {
	return m.game.Result()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.renderer.Render(m.screen)
}

// Run plays one round in the terminal and returns its summary.
func Run(game *match.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (match.RoundResult, error) {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Press, drag and release events
	)

	final, err := p.Run()
	if err != nil {
		return game.Result(), err
	}
	if m, ok := final.(Model); ok {
		return m.Result(), nil
	}
	return game.Result(), nil
}
