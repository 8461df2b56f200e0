package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/tasbih/internal/model"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Counter.Target != nil || cfg.Counter.Sound != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigDecodesCounter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[counter]
target = 33
sound = false
dhikr = "الحمد لله"
labels = ["الحمد لله", "الله أكبر"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Counter.Target == nil || *cfg.Counter.Target != 33 {
		t.Fatalf("unexpected target: %v", cfg.Counter.Target)
	}
	if cfg.Counter.Sound == nil || *cfg.Counter.Sound {
		t.Fatalf("unexpected sound: %v", cfg.Counter.Sound)
	}
	if cfg.Counter.Vibration != nil {
		t.Fatalf("expected vibration unset")
	}
	if cfg.Counter.Dhikr == nil || *cfg.Counter.Dhikr != "الحمد لله" {
		t.Fatalf("unexpected dhikr: %v", cfg.Counter.Dhikr)
	}
	if len(cfg.Counter.Labels) != 2 {
		t.Fatalf("expected 2 labels, got %d", len(cfg.Counter.Labels))
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestDefaultPathsHonorXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "cfg"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))

	if got := DefaultConfigPath(); got != filepath.Join(dir, "cfg", "tasbih", "config.toml") {
		t.Fatalf("unexpected config path: %s", got)
	}
	if got := DefaultDBPath(); got != filepath.Join(dir, "data", "tasbih", "tasbih.db") {
		t.Fatalf("unexpected db path: %s", got)
	}
	if got := DefaultLogPath(); got != filepath.Join(dir, "state", "tasbih", "tasbih.log") {
		t.Fatalf("unexpected log path: %s", got)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "[counter]\ntarget = 33\ntargte = 7\n")
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "counter.targte") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	cases := []string{
		"[counter]\ntarget = 0\n",
		"[counter]\ndhikr = \"  \"\n",
		"[counter]\nlabels = [\"a\", \"\"]\n",
		"[counter]\nlabels = [\"a\", \"a\"]\n",
	}
	for i, content := range cases {
		if _, err := LoadConfig(writeConfig(t, content)); err == nil {
			t.Fatalf("case %d: expected error for %q", i, content)
		}
	}
}

func TestValidate(t *testing.T) {
	good := model.Config{Target: 1, Dhikr: "x", Labels: []string{"a", "b"}}
	if err := Validate(good); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bad := []model.Config{
		{Target: 0, Dhikr: "x", Labels: []string{"a"}},
		{Target: 1, Dhikr: " ", Labels: []string{"a"}},
		{Target: 1, Dhikr: "x"},
		{Target: 1, Dhikr: "x", Labels: []string{"a", ""}},
		{Target: 1, Dhikr: "x", Labels: []string{"a", "a"}},
	}
	for i, cfg := range bad {
		if err := Validate(cfg); err == nil {
			t.Fatalf("case %d: expected error", i)
		}
	}
}
