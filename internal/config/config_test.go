package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultPipeConfig()
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if diff := cmp.Diff(DefaultPipeConfig(), cfg); diff != "" {
		t.Errorf("embedded default differs from DefaultPipeConfig (-hardcoded +embedded):\n%s", diff)
	}
}

func TestLoadPipeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "board:\n  cols: 12\n  rows: 8\nsetup:\n  max_blocked: 20\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPipe(path)
	if err != nil {
		t.Fatalf("LoadPipe() error: %v", err)
	}
	if cfg.Board.Cols != 12 || cfg.Board.Rows != 8 {
		t.Errorf("board = %dx%d, expected 12x8", cfg.Board.Cols, cfg.Board.Rows)
	}
	if cfg.Setup.MaxBlocked != 20 {
		t.Errorf("max_blocked = %d, expected 20", cfg.Setup.MaxBlocked)
	}
	if cfg.Setup.MinBlocked != 4 || cfg.Inventory.Size != 6 {
		t.Errorf("missing keys lost their defaults: %+v", cfg)
	}
}

func TestLoadPipeCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadPipe(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadPipe(missing) expected error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPipe(bad); err == nil {
		t.Error("LoadPipe(bad yaml) expected error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("setup:\n  min_blocked: 9\n  max_blocked: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPipe(invalid); err == nil {
		t.Error("LoadPipe(invalid range) expected error")
	}
}

func TestLoadPipeUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := LoadPipe("")
	if err != nil {
		t.Fatalf("LoadPipe() error: %v", err)
	}
	if diff := cmp.Diff(DefaultPipeConfig(), cfg); diff != "" {
		t.Errorf("expected embedded default (-want +got):\n%s", diff)
	}

	userDir := filepath.Join(home, AppDir, "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "pipemania.yaml"), []byte("inventory:\n  size: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err = LoadPipe("")
	if err != nil {
		t.Fatalf("LoadPipe() error: %v", err)
	}
	if cfg.Inventory.Size != 3 {
		t.Errorf("inventory size = %d, expected 3 from user config", cfg.Inventory.Size)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		cols     int
		rows     int
		min, max int
	}{
		{DifficultyEasy, 9, 7, 2, 4},
		{DifficultyNormal, 9, 7, 4, 8},
		{DifficultyHard, 9, 7, 8, 14},
		{DifficultyFixed, 9, 7, 6, 6},
		{DifficultyHard, 6, 5, 3, 6},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultPipeConfig()
			cfg.Board.Cols, cfg.Board.Rows = tt.cols, tt.rows
			ApplyPreset(&cfg, tt.preset)
			if cfg.Setup.MinBlocked != tt.min || cfg.Setup.MaxBlocked != tt.max {
				t.Errorf("ApplyPreset(%s) = [%d, %d], expected [%d, %d]",
					tt.preset, cfg.Setup.MinBlocked, cfg.Setup.MaxBlocked, tt.min, tt.max)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(" Hard "); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(Hard) = %v, %v", p, err)
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("ParsePreset(insane) expected error")
	}
}

func TestOptions(t *testing.T) {
	opts := DefaultPipeConfig().Options(42)
	if opts.Seed != 42 || opts.Cols != 9 || opts.Rows != 7 || opts.InventorySize != 6 {
		t.Errorf("Options() = %+v", opts)
	}
	if opts.SetupAttempts != 1000 {
		t.Errorf("SetupAttempts = %d, expected 1000", opts.SetupAttempts)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got := ExpandHome("~/layouts"); got != filepath.Join(home, "layouts") {
		t.Errorf("ExpandHome() = %q", got)
	}
	if got := ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("ExpandHome() = %q, expected unchanged", got)
	}
}
