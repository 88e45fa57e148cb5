package t2048

import (
	"hash/fnv"
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Game adapts a Session to the arcade platform's tick loop.
type Game struct {
	variant Variant
	cfg     config.Config
	session *Session
	err     error // set when the session could not be created
	tick    uint64
	seed    int64
	events  []core.Event

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// New creates a game for the given variant. Size and target pinned by the
// variant override the configuration.
func New(v Variant, cfg config.Config) *Game {
	return &Game{variant: v, cfg: cfg}
}

func init() {
	for _, v := range Variants {
		registry.Register(v.ID, func(cfg config.Config) registry.Game {
			return New(v, cfg)
		})
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Name
}

// Session exposes the running session, nil before Reset.
func (g *Game) Session() *Session {
	return g.session
}

// options builds session options from configuration, variant and the
// runtime config. Hooks are turned into platform events.
func (g *Game) options(rc core.RuntimeConfig) Options {
	spawn4Prob := g.cfg.Spawn.Spawn4Probability
	opts := Options{
		Size:         g.cfg.Board.Size,
		Target:       g.cfg.Board.Target,
		AllowUndo:    g.cfg.Undo.Enabled,
		Policy:       TilePolicy(g.cfg.Spawn.Policy),
		Spawn4Prob:   &spawn4Prob,
		InitialTiles: g.cfg.Spawn.InitialTiles,
		HighScore:    rc.HighScore,
		Rand:         rand.New(rand.NewSource(rc.Seed)),
		Hooks: Hooks{
			OnSuccessfulMove: func() {
				g.events = append(g.events, core.Event{Kind: core.EventMoved})
			},
			OnFailedMove: func() {
				g.events = append(g.events, core.Event{Kind: core.EventNoMove})
			},
			OnHighScoreUpdated: func(score int) {
				g.events = append(g.events, core.Event{Kind: core.EventHighScore, Value: score})
			},
		},
	}
	if g.variant.Size > 0 {
		opts.Size = g.variant.Size
	}
	if g.variant.Target > 0 {
		opts.Target = g.variant.Target
	}
	if opts.InitialTiles > opts.Size*opts.Size {
		opts.InitialTiles = 0
	}
	return opts
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.tick = 0
	g.seed = rc.Seed
	g.events = nil
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.paused = false

	g.session, g.err = NewSession(g.options(rc))
	g.checkScreenSize()
}

// boardSize returns the edge length the current session uses.
func (g *Game) boardSize() int {
	if g.session == nil {
		return DefaultGridSize
	}
	return g.session.grid.Size()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW := g.boardSize()*cellWidth + 1 + 4
	minH := g.boardSize()*cellHeight + 1 + hudHeight + 2
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.events = nil

	if g.session == nil || g.tooSmall {
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	// Undo can take back the move that ended the game
	if in.Has(core.ActionUndo) {
		if g.session.Undo() {
			g.events = append(g.events, core.Event{Kind: core.EventUndo})
		}
		return g.result()
	}

	if g.session.GameOver() {
		return g.result()
	}

	dir, ok := directionFromInput(in)
	if !ok {
		return g.result()
	}

	res, err := g.session.Move(dir)
	if err == nil && res.ReachedTargetNow {
		g.events = append(g.events, core.Event{Kind: core.EventWon, Value: g.session.Target()})
	}

	return g.result()
}

// directionFromInput maps the first held arrow action to a direction.
func directionFromInput(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{GameOver: g.err != nil}
	}
	return core.GameState{
		Score:    g.session.Score(),
		MaxTile:  g.session.grid.MaxTile(),
		GameOver: g.session.GameOver(),
		Paused:   g.paused || g.tooSmall,
	}
}

// SaveState encodes the running session.
func (g *Game) SaveState() ([]byte, error) {
	if g.session == nil {
		if g.err != nil {
			return nil, g.err
		}
		return nil, ErrNoSession
	}
	return MarshalState(g.session.Serialize())
}

// LoadState replaces the running session with a saved one. The high score
// comes from the last Reset; the random source is seeded from the Reset
// seed mixed with the saved position.
func (g *Game) LoadState(data []byte) error {
	st, err := UnmarshalState(data)
	if err != nil {
		return err
	}

	rc := core.RuntimeConfig{Seed: loadSeed(g.seed, data)}
	if g.session != nil {
		rc.HighScore = g.session.HighScore()
	}
	s, err := LoadSession(st, g.options(rc))
	if err != nil {
		return err
	}

	g.session = s
	g.err = nil
	g.checkScreenSize()
	return nil
}

// loadSeed derives the random seed for a loaded position, so a session
// restored from the same seed does not replay the spawns of a fresh game.
func loadSeed(seed int64, data []byte) int64 {
	h := fnv.New64a()
	h.Write(data)
	return seed ^ int64(h.Sum64())
}

var _ registry.Persistable = (*Game)(nil)
