package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolate points HOME and the working directory at fresh temp dirs and
// clears the TSCED_* variables for the duration of the test.
func isolate(t *testing.T) (home, wd string) {
	t.Helper()
	home = t.TempDir()
	wd = t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range []string{EnvDataDir, EnvDBPath, EnvLogLevel} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	t.Chdir(wd)
	return home, wd
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := DefaultEditorConfig()
	if cfg.FPS != want.FPS || cfg.FadeSeconds != want.FadeSeconds || cfg.LevelMenu != want.LevelMenu {
		t.Errorf("embedded config = %+v, want %+v", cfg, want)
	}
	if got := cfg.Keys["FastCopyLeft"]; len(got) != 1 || got[0] != "ctrl+left" {
		t.Errorf("Keys[FastCopyLeft] = %v", got)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, wd := isolate(t)

	writeFile(t, filepath.Join(wd, "configs", "editor.yaml"), "fps: 20\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.FPS != 20 {
		t.Errorf("local config FPS = %d, want 20", cfg.FPS)
	}
	// Unset keys keep their defaults.
	if cfg.FadeSeconds != 2 {
		t.Errorf("FadeSeconds = %v, want 2", cfg.FadeSeconds)
	}

	writeFile(t, filepath.Join(home, ".tsced", "configs", "editor.yaml"), "fps: 40\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.FPS != 40 {
		t.Errorf("user config FPS = %d, want 40", cfg.FPS)
	}

	custom := filepath.Join(wd, "custom.yaml")
	writeFile(t, custom, "fps: 60\nconfirm_save: false\n")
	cfg, err = Load(custom)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.FPS != 60 || cfg.ConfirmSave {
		t.Errorf("custom config = fps %d confirm %v", cfg.FPS, cfg.ConfirmSave)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, wd := isolate(t)

	if _, err := Load(filepath.Join(wd, "missing.yaml")); err == nil {
		t.Error("missing custom path should fail")
	}

	bad := filepath.Join(wd, "bad.yaml")
	writeFile(t, bad, "fps: [1, 2\n")
	if _, err := Load(bad); err == nil {
		t.Error("malformed custom file should fail")
	}
}

func TestLoadSkipsMalformedOptionalFile(t *testing.T) {
	_, wd := isolate(t)

	writeFile(t, filepath.Join(wd, "configs", "editor.yaml"), "fps: [1, 2\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.FPS != 30 {
		t.Errorf("FPS = %d, want embedded 30", cfg.FPS)
	}
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv(EnvDataDir, "/srv/tsc")
	t.Setenv(EnvDBPath, "/tmp/x.db")
	t.Setenv(EnvLogLevel, "DEBUG")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DataDir != "/srv/tsc" || cfg.DBPath != "/tmp/x.db" || cfg.LogLevel != "debug" {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestDotEnv(t *testing.T) {
	_, wd := isolate(t)
	writeFile(t, filepath.Join(wd, ".env"), EnvLogLevel+"=warn\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn from .env", cfg.LogLevel)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*EditorConfig)
		wantErr []string
	}{
		{"defaults", func(*EditorConfig) {}, nil},
		{"zero scale", func(c *EditorConfig) { c.DisplayScale = 0 }, []string{"displayscale must be greater than 0"}},
		{"fps range", func(c *EditorConfig) { c.FPS = 500 }, []string{"fps must be at most 120"}},
		{"log level", func(c *EditorConfig) { c.LogLevel = "loud" }, []string{"loglevel must be one of"}},
		{"unknown key", func(c *EditorConfig) { c.Keys["Jump"] = []string{"space"} }, []string{`unknown command "Jump"`}},
		{"empty binding", func(c *EditorConfig) { c.Keys["Cut"] = nil }, []string{"Cut has no bindings"}},
		{
			"joined",
			func(c *EditorConfig) { c.LevelMenu = ""; c.FadeSeconds = -1 },
			[]string{"levelmenu is required", "fadeseconds must be greater than 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultEditorConfig()
			tt.mutate(&cfg)
			err := Validate(cfg)
			if len(tt.wantErr) == 0 {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			for _, want := range tt.wantErr {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("Validate() = %q, missing %q", err, want)
				}
			}
		})
	}
}

func TestResolveAndTick(t *testing.T) {
	cfg := DefaultEditorConfig()
	cfg.DataDir = "/data"

	if got := cfg.Resolve("editor/level_menu.xml"); got != filepath.Join("/data", "editor/level_menu.xml") {
		t.Errorf("Resolve(relative) = %q", got)
	}
	if got := cfg.Resolve("/abs/x.xml"); got != "/abs/x.xml" {
		t.Errorf("Resolve(absolute) = %q", got)
	}
	if got := cfg.TickInterval(); got != time.Second/30 {
		t.Errorf("TickInterval() = %v", got)
	}
}

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	cfg, err := embedded()
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultEditorConfig()
	if cfg.DataDir != want.DataDir || cfg.DBPath != want.DBPath || cfg.ImageCacheSize != want.ImageCacheSize {
		t.Errorf("embedded YAML drifted from DefaultEditorConfig: %+v", cfg)
	}
	if len(cfg.Keys) != len(want.Keys) {
		t.Errorf("embedded keys = %d, want %d", len(cfg.Keys), len(want.Keys))
	}
	if len(GetDefaultYAML()) == 0 {
		t.Error("GetDefaultYAML() is empty")
	}
}
