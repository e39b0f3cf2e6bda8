package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(GetDefaultYAML())
	if err != nil {
		t.Fatalf("embedded default should parse: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultInvadersConfig()) {
		t.Errorf("embedded YAML and DefaultInvadersConfig() differ:\n%+v\n%+v", cfg, DefaultInvadersConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultInvadersConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("player:\n  lives: 5\nformation:\n  rows: 2\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Player.Lives != 5 {
		t.Errorf("Player.Lives = %d, expected 5", cfg.Player.Lives)
	}
	if cfg.Formation.Rows != 2 {
		t.Errorf("Formation.Rows = %d, expected 2", cfg.Formation.Rows)
	}
	if cfg.Formation.Cols != 8 {
		t.Errorf("Formation.Cols should keep its default, got %d", cfg.Formation.Cols)
	}
	if cfg.Player.CooldownMS != 600 {
		t.Errorf("Player.CooldownMS should keep its default, got %d", cfg.Player.CooldownMS)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero lives", "player:\n  lives: 0\n"},
		{"inverted bonus interval", "bonus:\n  min_interval: 900\n  max_interval: 400\n"},
		{"loud music", "audio:\n  music_volume: 1.5\n"},
		{"empty formation", "formation:\n  cols: 0\n"},
		{"bad alpha", "crt:\n  alpha_min: 200\n  alpha_max: 100\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Parse() error = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("player: [not, a, map"))
	if err == nil {
		t.Fatal("malformed YAML should fail")
	}
	if errors.Is(err, ErrInvalid) {
		t.Error("syntax errors should not be reported as ErrInvalid")
	}
}

func TestLoadInvadersCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("timing:\n  enemy_fire_ms: 500\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadInvaders(path)
	if err != nil {
		t.Fatalf("LoadInvaders() error = %v", err)
	}
	if source != SourceCustom {
		t.Errorf("source = %q, expected %q", source, SourceCustom)
	}
	if cfg.Timing.EnemyFireMS != 500 {
		t.Errorf("EnemyFireMS = %d, expected 500", cfg.Timing.EnemyFireMS)
	}
}

func TestLoadInvadersMissingCustomPath(t *testing.T) {
	_, _, err := LoadInvaders(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, expected os.ErrNotExist", err)
	}
}

func TestLoadInvadersFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, source, err := LoadInvaders("")
	if err != nil {
		t.Fatalf("LoadInvaders() error = %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected %q", source, SourceEmbedded)
	}
	if cfg.Canvas.Width != 600 || cfg.Canvas.Height != 600 {
		t.Errorf("canvas = %dx%d, expected 600x600", cfg.Canvas.Width, cfg.Canvas.Height)
	}
}

func TestLoadInvadersLocalDirectory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "invaders.yaml"), []byte("player:\n  speed: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadInvaders("")
	if err != nil {
		t.Fatalf("LoadInvaders() error = %v", err)
	}
	if source != SourceLocal {
		t.Errorf("source = %q, expected %q", source, SourceLocal)
	}
	if cfg.Player.Speed != 7 {
		t.Errorf("Player.Speed = %d, expected 7", cfg.Player.Speed)
	}
}
