package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/api"
	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/config"
)

func TestConfigPath(t *testing.T) {
	env := setupTest(t, &api.MockBackend{})

	stdout, _, err := executeCommand(t, "", "config", "path")
	if err != nil {
		t.Fatalf("config path failed: %v", err)
	}
	want := filepath.Join(env.home, ".geminichat", "config.json")
	if strings.TrimSpace(stdout) != want {
		t.Errorf("path = %q, want %q", stdout, want)
	}
}

func TestConfigShow(t *testing.T) {
	setupTest(t, &api.MockBackend{})

	for _, args := range [][]string{{"config"}, {"config", "show"}} {
		stdout, _, err := executeCommand(t, "", args...)
		if err != nil {
			t.Fatalf("%v failed: %v", args, err)
		}
		for _, want := range []string{`"default_model": "gemini-1.5-flash"`, `"tui_theme": "tokyonight"`} {
			if !strings.Contains(stdout, want) {
				t.Errorf("%v output missing %q:\n%s", args, want, stdout)
			}
		}
	}
}

func TestConfigSet(t *testing.T) {
	setupTest(t, &api.MockBackend{})

	stdout, _, err := executeCommand(t, "", "config", "set", "default_model", "gemini-2.5-pro")
	if err != nil {
		t.Fatalf("config set failed: %v", err)
	}
	if !strings.Contains(stdout, "default_model updated") {
		t.Errorf("stdout = %q", stdout)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultModel != "gemini-2.5-pro" {
		t.Errorf("default model = %s", cfg.DefaultModel)
	}

	if _, _, err := executeCommand(t, "", "config", "set", "no_such_key", "x"); err == nil {
		t.Error("unknown key should fail")
	}
	if _, _, err := executeCommand(t, "", "config", "set", "tui_theme", "solarized"); err == nil {
		t.Error("unknown chat theme should fail")
	}
	if _, _, err := executeCommand(t, "", "config", "set", "tui_theme", "nord"); err != nil {
		t.Errorf("known chat theme should be accepted: %v", err)
	}
	if _, _, err := executeCommand(t, "", "config", "set", "default_model"); err == nil {
		t.Error("missing value should fail")
	}
}

func TestConfigShow_BrokenFile(t *testing.T) {
	setupTest(t, &api.MockBackend{})

	path, err := config.GetConfigPath()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := executeCommand(t, "", "config", "show"); err == nil {
		t.Error("broken config should be reported by config show")
	}
}

func TestConfigThemes(t *testing.T) {
	setupTest(t, &api.MockBackend{})

	stdout, _, err := executeCommand(t, "", "config", "themes")
	if err != nil {
		t.Fatalf("config themes failed: %v", err)
	}
	for _, want := range []string{"Markdown styles", "Chat themes", "tokyonight", "dark"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("missing %q in:\n%s", want, stdout)
		}
	}
}
