package t2048

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestGame(t *testing.T, cfg config.Config) *Game {
	t.Helper()
	g := New(Variants[0], cfg)
	g.Reset(testRuntime(42))
	if g.Session() == nil {
		t.Fatalf("Reset failed: %v", g.err)
	}
	return g
}

// loadBoard replaces the running session with rows, keeping the game's
// configured target and undo setting.
func loadBoard(t *testing.T, g *Game, rows [][]int) {
	t.Helper()
	data, err := MarshalState(State{
		Size:      len(rows),
		Cells:     rows,
		AllowUndo: g.cfg.Undo.Enabled,
		Target:    g.Session().Target(),
		Policy:    PolicyAlways2,
	})
	if err != nil {
		t.Fatalf("MarshalState: %v", err)
	}
	if err := g.LoadState(data); err != nil {
		t.Fatalf("LoadState: %v", err)
	}
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func TestDeterministicSpawn(t *testing.T) {
	inputs := []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown, core.ActionLeft}

	run := func() Snapshot {
		g := New(Variants[0], config.Default())
		g.Reset(testRuntime(12345))
		for _, a := range inputs {
			g.Step(press(a))
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if s1.Score != s2.Score || s1.Tick != s2.Tick {
		t.Errorf("same seed diverged: score %d vs %d", s1.Score, s2.Score)
	}
	for r := range s1.Board {
		for c := range s1.Board[r] {
			if s1.Board[r][c] != s2.Board[r][c] {
				t.Fatalf("same seed should produce same board:\n%v\nvs\n%v", s1.Board, s2.Board)
			}
		}
	}
}

func TestStepMoveEvents(t *testing.T) {
	g := newTestGame(t, config.Default())
	loadBoard(t, g, [][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res := g.Step(press(core.ActionLeft))
	if !res.Has(core.EventMoved) {
		t.Error("accepted move should emit EventMoved")
	}
	if !res.Has(core.EventHighScore) {
		t.Error("first points should emit EventHighScore")
	}
	if res.State.Score != 4 {
		t.Errorf("score = %d, want 4", res.State.Score)
	}

	// No input: no events
	res = g.Step(core.NewInputFrame())
	if len(res.Events) != 0 {
		t.Errorf("idle tick emitted %v", res.Events)
	}
}

func TestStepNoMoveEvent(t *testing.T) {
	g := newTestGame(t, config.Default())
	loadBoard(t, g, [][]int{
		{2, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res := g.Step(press(core.ActionLeft))
	if !res.Has(core.EventNoMove) || res.Has(core.EventMoved) {
		t.Errorf("events = %v, want only EventNoMove", res.Events)
	}
}

func TestStepWonEvent(t *testing.T) {
	g := newTestGame(t, config.Default())
	loadBoard(t, g, [][]int{
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res := g.Step(press(core.ActionLeft))
	if !res.Has(core.EventWon) {
		t.Fatalf("events = %v, want EventWon", res.Events)
	}
	if snap := g.Snapshot(); snap.State != StateWon || snap.MaxTile != 2048 {
		t.Errorf("snapshot = %+v, want won with 2048", snap)
	}

	// Playing on does not report the win again
	res = g.Step(press(core.ActionRight))
	if res.Has(core.EventWon) {
		t.Error("win should only be reported once")
	}
}

func TestStepUndo(t *testing.T) {
	g := newTestGame(t, config.Default())
	loadBoard(t, g, [][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	g.Step(press(core.ActionLeft))
	if !g.Snapshot().CanUndo {
		t.Fatal("undo should be available after a move")
	}

	res := g.Step(press(core.ActionUndo))
	if !res.Has(core.EventUndo) {
		t.Error("undo should emit EventUndo")
	}
	if res.State.Score != 0 {
		t.Errorf("score after undo = %d, want 0", res.State.Score)
	}

	res = g.Step(press(core.ActionUndo))
	if res.Has(core.EventUndo) {
		t.Error("second undo should do nothing")
	}
}

func TestStepUndoDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Undo.Enabled = false
	g := newTestGame(t, cfg)

	g.Step(press(core.ActionLeft))
	g.Step(press(core.ActionDown))
	if res := g.Step(press(core.ActionUndo)); res.Has(core.EventUndo) {
		t.Error("undo should be unavailable when disabled in config")
	}
}

func TestGameOverStopsInput(t *testing.T) {
	g := newTestGame(t, config.Default())
	loadBoard(t, g, [][]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	})

	res := g.Step(press(core.ActionLeft))
	if !res.State.GameOver {
		t.Error("checkerboard should be game over")
	}
	if len(res.Events) != 0 {
		t.Errorf("finished game emitted %v", res.Events)
	}
	if snap := g.Snapshot(); snap.State != StateGameOver {
		t.Errorf("snapshot state = %s, want game_over", snap.State)
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(t, config.Default())
	before := g.Snapshot()

	res := g.Step(press(core.ActionPause))
	if !res.State.Paused || g.Snapshot().State != StatePaused {
		t.Fatal("pause should pause the game")
	}

	g.Step(press(core.ActionLeft))
	g.Step(press(core.ActionUp))
	after := g.Snapshot()
	if after.Score != before.Score || after.MaxTile != before.MaxTile {
		t.Error("paused game should ignore moves")
	}

	if res := g.Step(press(core.ActionPause)); res.State.Paused {
		t.Error("second pause should resume")
	}
}

func TestScreenTooSmall(t *testing.T) {
	g := New(Variants[0], config.Default())
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, Seed: 1})

	if snap := g.Snapshot(); snap.State != StatePausedSmall {
		t.Errorf("state = %s, want paused_small_window", snap.State)
	}
	if res := g.Step(press(core.ActionLeft)); len(res.Events) != 0 || !res.State.Paused {
		t.Errorf("small window should ignore input, got %+v", res)
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if screen.String() == "" {
		t.Error("small window should still render a message")
	}
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(t, config.Default())
	snap := g.Snapshot()

	if snap.Variant != "2048" {
		t.Errorf("Snapshot Variant = %s, want 2048", snap.Variant)
	}
	if snap.Size != 4 || len(snap.Board) != 4 {
		t.Errorf("Snapshot Size = %d, want 4", snap.Size)
	}
	if snap.Target != 2048 {
		t.Errorf("Snapshot Target = %d, want 2048", snap.Target)
	}
	if snap.State != StatePlaying {
		t.Errorf("Snapshot State = %s, want playing", snap.State)
	}

	tiles := 0
	for _, row := range snap.Board {
		for _, v := range row {
			if v != 0 {
				tiles++
			}
		}
	}
	if tiles != config.Default().Spawn.InitialTiles {
		t.Errorf("initial tiles = %d, want %d", tiles, config.Default().Spawn.InitialTiles)
	}
}

func TestVariantsRegistered(t *testing.T) {
	for _, v := range Variants {
		if !registry.Exists(v.ID) {
			t.Errorf("variant %s not registered", v.ID)
		}
	}

	game, err := registry.Create("2048_mini", config.Default())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	game.Reset(testRuntime(7))

	g, ok := game.(*Game)
	if !ok {
		t.Fatalf("Create returned %T", game)
	}
	if snap := g.Snapshot(); snap.Size != 3 || snap.Target != 256 {
		t.Errorf("mini variant size %d target %d, want 3 and 256", snap.Size, snap.Target)
	}
	if VariantByID("nope") != nil {
		t.Error("VariantByID should return nil for unknown IDs")
	}
}

func TestSaveAndLoadState(t *testing.T) {
	g := newTestGame(t, config.Default())
	g.Step(press(core.ActionLeft))
	g.Step(press(core.ActionUp))
	want := g.Snapshot()

	data, err := g.SaveState()
	if err != nil {
		t.Fatalf("SaveState: %v", err)
	}

	other := newTestGame(t, config.Default())
	if err := other.LoadState(data); err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	got := other.Snapshot()
	if got.Score != want.Score || got.MaxTile != want.MaxTile || got.CanUndo != want.CanUndo {
		t.Errorf("restored snapshot = %+v, want %+v", got, want)
	}

	if err := other.LoadState([]byte("garbage")); !errors.Is(err, ErrCorruptState) {
		t.Errorf("LoadState(garbage) error = %v, want ErrCorruptState", err)
	}
}

func TestSaveStateWithoutSession(t *testing.T) {
	g := New(Variants[0], config.Default())
	if _, err := g.SaveState(); !errors.Is(err, ErrNoSession) {
		t.Errorf("SaveState before Reset error = %v, want ErrNoSession", err)
	}
}

func TestTileColor(t *testing.T) {
	if TileColor(0) != core.ColorDefault {
		t.Error("empty cell should use the default color")
	}
	if TileColor(2) == TileColor(4) {
		t.Error("2 and 4 should differ in color")
	}
	if TileColor(2048) != core.ColorBrightCyan {
		t.Errorf("TileColor(2048) = %v, want bright cyan", TileColor(2048))
	}
}

func TestSpawn4ProbabilityZeroFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Spawn.Policy = "random"
	cfg.Spawn.Spawn4Probability = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("config should be valid: %v", err)
	}

	g := New(Variants[0], cfg)
	for seed := int64(1); seed <= 100; seed++ {
		g.Reset(testRuntime(seed))
		for _, row := range g.Snapshot().Board {
			for _, v := range row {
				if v == 4 {
					t.Fatalf("seed %d spawned a 4 with spawn4_probability 0", seed)
				}
			}
		}
	}
}

func TestUndoAfterGameOver(t *testing.T) {
	g := newTestGame(t, config.Default())
	loadBoard(t, g, [][]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 8, 8},
	})

	res := g.Step(press(core.ActionLeft))
	if !res.State.GameOver {
		t.Fatal("merging the last pair should end the game")
	}

	res = g.Step(press(core.ActionUndo))
	if !res.Has(core.EventUndo) {
		t.Fatalf("events = %v, want EventUndo", res.Events)
	}
	if res.State.GameOver || res.State.Score != 0 {
		t.Errorf("state after undo = %+v, want running game with score 0", res.State)
	}

	cfg := config.Default()
	cfg.Undo.Enabled = false
	g = newTestGame(t, cfg)
	loadBoard(t, g, [][]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 8, 8},
	})
	g.Step(press(core.ActionLeft))
	if res := g.Step(press(core.ActionUndo)); res.Has(core.EventUndo) || !res.State.GameOver {
		t.Error("without undo a finished game stays finished")
	}
}

func TestLoadSeedDependsOnPosition(t *testing.T) {
	a := []byte(`{"size":4,"score":4}`)
	b := []byte(`{"size":4,"score":8}`)

	if loadSeed(1, a) == 1 {
		t.Error("loaded position should not reuse the reset seed")
	}
	if loadSeed(1, a) != loadSeed(1, a) {
		t.Error("same seed and position should give the same seed")
	}
	if loadSeed(1, a) == loadSeed(1, b) {
		t.Error("different positions should give different seeds")
	}
	if loadSeed(1, a) == loadSeed(2, a) {
		t.Error("different reset seeds should give different seeds")
	}
}

func TestRenderTilesAsFilledBlocks(t *testing.T) {
	g := newTestGame(t, config.Default())
	loadBoard(t, g, [][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	g.Step(press(core.ActionLeft))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// 4x4 board is 29 wide, centered; the first cell starts one column in
	boardX := (80 - (4*cellWidth + 1)) / 2
	x, y := boardX+1, hudHeight+2

	for i := range cellWidth - 1 {
		c := screen.GetCell(x+i, y)
		if !c.Attr.Has(core.AttrReverse) || c.Color != TileColor(4) {
			t.Fatalf("cell %d of merged tile = %+v, want filled with %v", i, c, TileColor(4))
		}
	}
	if c := screen.GetCell(x+2, y); c.Rune != '4' || !c.Attr.Has(core.AttrBold) {
		t.Errorf("merged tile label = %+v, want bold '4'", c)
	}
}

func TestTileAttr(t *testing.T) {
	tests := []struct {
		tile Tile
		want core.Attr
	}{
		{Tile{Value: 2}, core.AttrReverse},
		{Tile{Value: 4, Merged: true}, core.AttrReverse | core.AttrBold},
		{Tile{Value: 2, New: true}, core.AttrReverse | core.AttrUnderline},
	}
	for _, tt := range tests {
		if got := TileAttr(tt.tile); got != tt.want {
			t.Errorf("TileAttr(%+v) = %v, want %v", tt.tile, got, tt.want)
		}
	}

	if got := tileLabel(2048); got != " 2048 " {
		t.Errorf("tileLabel(2048) = %q, want %q", got, " 2048 ")
	}
}
