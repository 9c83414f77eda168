package commands

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/api"
	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/config"
	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/render"
	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/tui"
)

// fakeTUI records the session handed to the chat screen
type fakeTUI struct {
	mu      sync.Mutex
	calls   int
	session tui.ChatSessionInterface
	opts    tui.ChatOptions
	err     error
}

func (f *fakeTUI) RunChat(session tui.ChatSessionInterface, opts tui.ChatOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.session = session
	f.opts = opts
	return f.err
}

// testEnv isolates HOME and the API key and swaps in a mock backend
type testEnv struct {
	home    string
	backend *api.MockBackend
	tui     *fakeTUI
	apiKeys []string
}

func setupTest(t *testing.T, backend *api.MockBackend) *testEnv {
	t.Helper()

	env := &testEnv{
		home:    t.TempDir(),
		backend: backend,
		tui:     &fakeTUI{},
	}
	t.Setenv("HOME", env.home)
	t.Setenv(config.EnvAPIKey, "test-key")
	t.Setenv(config.EnvAPIKeyFallback, "")
	t.Setenv(render.EnvStyle, "")

	old := deps
	deps = &Dependencies{
		NewClient: func(ctx context.Context, apiKey string, opts ...api.ClientOption) (api.GeminiClientInterface, error) {
			env.apiKeys = append(env.apiKeys, apiKey)
			return api.NewClientWithBackend(backend, opts...), nil
		},
		TUI: env.tui,
	}

	t.Cleanup(func() {
		deps = old
		modelFlag, verboseFlag = "", false
		outputFlag, fileFlag, attachFlag, rawFlag = "", "", "", false
		chatAttachFlag = ""
		_ = rootCmd.Flags().Set("version", "false")
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs([]string{})
	})

	return env
}

// executeCommand runs the root command with args and captures its output
func executeCommand(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// writePNG writes a small PNG and returns its path
func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create image: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}
