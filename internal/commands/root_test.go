package commands

import (
	"strings"
	"testing"

	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/api"
)

func TestRootCommand_Flags(t *testing.T) {
	tests := []struct {
		name      string
		shorthand string
		persist   bool
	}{
		{"model", "m", true},
		{"verbose", "", true},
		{"output", "o", false},
		{"file", "f", false},
		{"attach", "a", false},
		{"raw", "", false},
		{"version", "v", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := rootCmd.Flags()
			if tt.persist {
				flags = rootCmd.PersistentFlags()
			}
			f := flags.Lookup(tt.name)
			if f == nil {
				t.Fatalf("flag --%s not found", tt.name)
			}
			if f.Shorthand != tt.shorthand {
				t.Errorf("shorthand = %q, want %q", f.Shorthand, tt.shorthand)
			}
		})
	}
}

func TestRootCommand_Subcommands(t *testing.T) {
	want := map[string]bool{"chat": false, "config": false, "extract": false, "formats": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %s not registered", name)
		}
	}
}

func TestRootCommand_TooManyArgs(t *testing.T) {
	env := setupTest(t, &api.MockBackend{Chunks: []string{"ok"}})

	if _, _, err := executeCommand(t, "", "one", "two"); err == nil {
		t.Error("two positional prompts should be rejected")
	}
	if len(env.backend.Requests()) != 0 {
		t.Error("no request expected")
	}
}

func TestRootCommand_MissingPromptFile(t *testing.T) {
	setupTest(t, &api.MockBackend{Chunks: []string{"ok"}})

	_, _, err := executeCommand(t, "", "-f", "/nonexistent/prompt.md")
	if err == nil || !strings.Contains(err.Error(), "failed to read file") {
		t.Errorf("err = %v", err)
	}
}
