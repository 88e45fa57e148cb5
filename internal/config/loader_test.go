package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg, err := parse(defaultT2048YAML)
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default = %+v, want %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "board:\n  size: 3\n  target: 256\nundo:\n  enabled: false\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Board.Size != 3 || cfg.Board.Target != 256 {
		t.Errorf("board = %+v, want size 3 target 256", cfg.Board)
	}
	if cfg.Undo.Enabled {
		t.Error("undo should be disabled")
	}
	// Keys absent from the file keep their defaults
	if cfg.Spawn.Policy != "random" || cfg.Spawn.InitialTiles != 2 {
		t.Errorf("spawn = %+v, want defaults", cfg.Spawn)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "board: [1, 2"},
		{"bad size", "board:\n  size: 1\n"},
		{"bad target", "board:\n  target: 1000\n"},
		{"bad policy", "spawn:\n  policy: sometimes\n"},
		{"bad probability", "spawn:\n  spawn4_probability: 1.5\n"},
		{"too many initial tiles", "board:\n  size: 2\n  target: 4\nspawn:\n  initial_tiles: 5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			writeFile(t, path, tt.content)
			if _, err := Load(path); err == nil {
				t.Errorf("Load(%q) should fail", tt.content)
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of missing custom path should fail")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded default
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want default", cfg)
	}

	// Local configs directory
	writeFile(t, filepath.Join(work, "configs", fileName), "board:\n  size: 5\n")
	cfg, _ = Load("")
	if cfg.Board.Size != 5 {
		t.Errorf("local config not picked up, size = %d", cfg.Board.Size)
	}

	// User config wins over local
	writeFile(t, filepath.Join(home, ".arcade", "configs", fileName), "board:\n  size: 6\n")
	cfg, _ = Load("")
	if cfg.Board.Size != 6 {
		t.Errorf("user config not preferred, size = %d", cfg.Board.Size)
	}

	// Invalid user config falls through to local
	writeFile(t, filepath.Join(home, ".arcade", "configs", fileName), "board:\n  size: 99\n")
	cfg, _ = Load("")
	if cfg.Board.Size != 5 {
		t.Errorf("invalid user config should be skipped, size = %d", cfg.Board.Size)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := Default()
	ApplyPreset(&cfg, DifficultyEasy)
	if cfg.Spawn.Policy != "always2" || !cfg.Undo.Enabled {
		t.Errorf("easy preset = %+v", cfg)
	}

	cfg = Default()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Undo.Enabled || cfg.Spawn.Spawn4Probability != 0.75 {
		t.Errorf("hard preset = %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("hard preset should stay valid: %v", err)
	}

	cfg = Default()
	ApplyPreset(&cfg, DifficultyNormal)
	if cfg != Default() {
		t.Errorf("normal preset should not change config")
	}
}
