package registry

import (
	"testing"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
)

type stubGame struct {
	id    string
	title string
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	var gotSize int
	Register("stub_test", func(cfg config.Config) Game {
		gotSize = cfg.Board.Size
		return &stubGame{id: "stub_test", title: "Stub"}
	})

	if !Exists("stub_test") {
		t.Fatal("Exists() = false after Register")
	}

	cfg := config.Default()
	cfg.Board.Size = 6
	g, err := Create("stub_test", cfg)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Stub" {
		t.Errorf("Title() = %q", g.Title())
	}
	if gotSize != 6 {
		t.Errorf("factory saw board size %d, want 6", gotSize)
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub_test" && info.Title == "Stub" {
			found = true
		}
	}
	if !found {
		t.Error("List() does not include registered game")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game", config.Default()); err == nil {
		t.Error("Create() of unknown game should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	f := func(config.Config) Game { return &stubGame{id: "dup_test"} }
	Register("dup_test", f)

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup_test", f)
}
