package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// statusSeconds is how long a status message stays on screen.
const statusSeconds = 2

// GameResult describes how a game screen ended.
type GameResult struct {
	GameID    string
	Score     int
	MaxTile   int
	Finished  bool   // the game reached game over
	SessionID string // saved session holding unfinished progress, if any
	Err       error  // persistence failure, if any
}

// GameModel is the Bubble Tea model for a running game.
// Unfinished progress is stored as a saved session when the player leaves;
// finished games are recorded as scores.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	sessionID  string
	highScore  int
	moved      bool
	status     string
	statusTTL  int
	result     GameResult
	quitting   bool
	backToMenu bool
	scoreSaved bool
	scoreID    int64 // record written when the game ended, 0 if none
}

// NewGameModel creates a game model and starts the game. When resume is
// non-nil the saved session replaces the fresh game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, resume *storage.SavedSession) (GameModel, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.HighScore == 0 && store != nil {
		if high, err := store.HighScore(game.ID()); err == nil {
			cfg.HighScore = high
		}
	}

	m := GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		highScore:  cfg.HighScore,
		result:     GameResult{GameID: game.ID()},
	}

	m.game.Reset(m.config)

	if resume != nil {
		p, ok := game.(registry.Persistable)
		if !ok {
			return m, fmt.Errorf("tui: game %q cannot resume saved sessions", game.ID())
		}
		if err := p.LoadState(resume.State); err != nil {
			return m, fmt.Errorf("tui: resume session %s: %w", resume.ID, err)
		}
		m.sessionID = resume.ID
		m.result.SessionID = resume.ID
	}

	m.gameState = m.game.State()
	return m, nil
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.persist()
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu when the game is over or paused
	if action == core.ActionBack {
		if m.gameState.GameOver || m.gameState.Paused {
			m.persist()
			m.backToMenu = true
		}
		return m, nil
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize adapts the screen. Games that can be saved keep their
// progress across the reset that picks up the new dimensions.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.config.HighScore = m.highScore
	m.screen.Resize(msg.Width, msg.Height)

	p, ok := m.game.(registry.Persistable)
	if !ok {
		if !m.gameState.GameOver {
			m.game.Reset(m.config)
		}
		return m, nil
	}

	data, err := p.SaveState()
	m.game.Reset(m.config)
	if err == nil {
		if err := p.LoadState(data); err != nil {
			m.flash("Could not restore game after resize")
		}
	}
	m.gameState = m.game.State()
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.Done() {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) && (m.gameState.GameOver || m.gameState.Paused) {
		m.restart()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.handleEvents(result.Events)

	// Record the finished game once and drop its saved session
	if m.gameState.GameOver && !m.scoreSaved {
		m.finish()
	}

	if m.statusTTL > 0 {
		m.statusTTL--
		if m.statusTTL == 0 {
			m.status = ""
		}
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// handleEvents turns game events into status messages and bookkeeping.
func (m *GameModel) handleEvents(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventMoved:
			m.moved = true
		case core.EventNoMove:
			m.flash("No tiles can move that way")
		case core.EventHighScore:
			m.highScore = e.Value
		case core.EventWon:
			m.flash(fmt.Sprintf("You made %d! Keep going", e.Value))
		case core.EventUndo:
			m.flash("Move undone")
			m.reopen()
		}
	}
}

func (m *GameModel) flash(msg string) {
	m.status = msg
	m.statusTTL = statusSeconds * max(m.config.TickRate, 1)
}

// reopen withdraws the recorded score when an undo takes back the move
// that ended the game, so the score is recorded once when it ends again.
func (m *GameModel) reopen() {
	if !m.scoreSaved {
		return
	}
	if m.scoreID != 0 && m.store != nil {
		if err := m.store.DeleteScore(m.scoreID); err != nil && m.result.Err == nil {
			m.result.Err = err
		}
	}
	m.scoreID = 0
	m.scoreSaved = false
	m.result.Finished = false
	// The saved session was dropped at game over
	m.moved = true
}

// restart starts a fresh game, abandoning any saved session.
func (m *GameModel) restart() {
	m.dropSession()
	m.config.Seed = time.Now().UnixNano()
	m.config.HighScore = m.highScore
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.scoreID = 0
	m.moved = false
	m.status = ""
	m.result = GameResult{GameID: m.game.ID()}
	m.inputFrame.Clear()
}

// finish records the score of a finished game.
func (m *GameModel) finish() {
	m.scoreSaved = true
	m.result.Finished = true
	m.result.Score = m.gameState.Score
	m.result.MaxTile = m.gameState.MaxTile

	if m.store == nil || m.gameState.Score == 0 {
		m.dropSession()
		return
	}
	id, err := m.store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.MaxTile)
	if err != nil {
		m.result.Err = err
	}
	m.scoreID = id
	m.dropSession()
}

// dropSession deletes the saved session this game was resumed from.
func (m *GameModel) dropSession() {
	if m.sessionID == "" || m.store == nil {
		return
	}
	if err := m.store.DeleteSession(m.sessionID); err != nil && m.result.Err == nil {
		m.result.Err = err
	}
	m.sessionID = ""
	m.result.SessionID = ""
}

// persist saves unfinished progress so it can be resumed later.
func (m *GameModel) persist() {
	m.result.Score = m.gameState.Score
	m.result.MaxTile = m.gameState.MaxTile

	if m.store == nil || m.gameState.GameOver {
		return
	}
	if !m.moved && m.sessionID == "" {
		return
	}
	p, ok := m.game.(registry.Persistable)
	if !ok {
		return
	}

	data, err := p.SaveState()
	if err != nil {
		m.result.Err = err
		return
	}

	if m.sessionID == "" {
		id, err := m.store.SaveSession(m.game.ID(), m.gameState.Score, data)
		if err != nil {
			m.result.Err = err
			return
		}
		m.sessionID = id
	} else if err := m.store.UpdateSession(m.sessionID, m.gameState.Score, data); err != nil {
		m.result.Err = err
		return
	}
	m.result.SessionID = m.sessionID
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.flash("Screenshot failed")
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.flash("Screenshot failed")
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.flash("Screenshot failed")
		return
	}
	m.flash("Screenshot saved")
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.status != "" {
		x := (m.screen.Width() - len(m.status)) / 2
		m.screen.DrawTextColored(max(x, 0), m.screen.Height()-1, m.status, core.ColorBrightYellow)
	}

	return RenderScreen(m.screen)
}

// Done reports whether the player left the game.
func (m GameModel) Done() bool {
	return m.quitting || m.backToMenu
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Result returns how the game ended.
func (m GameModel) Result() GameResult {
	return m.result
}

// Run plays a single game in its own program. When resume is non-nil the
// saved session is continued.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, resume *storage.SavedSession) (GameResult, error) {
	model, err := NewGameModel(game, store, cfg, resume)
	if err != nil {
		return GameResult{GameID: game.ID()}, err
	}

	final, err := runStandalone(model)
	if err != nil {
		return model.Result(), err
	}
	if gm, ok := final.(GameModel); ok {
		return gm.Result(), nil
	}
	return model.Result(), nil
}
