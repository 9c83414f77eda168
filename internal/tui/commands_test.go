package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/api"
	apierrors "github.com/RidhamVashishth/Chatbot-using-Gemini/internal/errors"
	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/models"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input    string
		wantName string
		wantArg  string
		wantOK   bool
	}{
		{"/attach report.pdf", "/attach", "report.pdf", true},
		{"  /ATTACH   my file.docx ", "/attach", "my file.docx", true},
		{"/help", "/help", "", true},
		{"hello /attach", "", "", false},
		{"what is 3/4?", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			name, arg, ok := parseCommand(tt.input)
			if name != tt.wantName || arg != tt.wantArg || ok != tt.wantOK {
				t.Errorf("parseCommand(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.input, name, arg, ok, tt.wantName, tt.wantArg, tt.wantOK)
			}
		})
	}
}

func TestIsExitCommand(t *testing.T) {
	for _, input := range []string{"exit", "quit", "/exit", "/quit", "EXIT"} {
		if !isExitCommand(input) {
			t.Errorf("isExitCommand(%q) = false", input)
		}
	}
	for _, input := range []string{"exiting", "/clear", ""} {
		if isExitCommand(input) {
			t.Errorf("isExitCommand(%q) = true", input)
		}
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		input string
		want  string
	}{
		{"~/docs/a.pdf", filepath.Join(home, "docs/a.pdf")},
		{`"/tmp/my file.pdf"`, "/tmp/my file.pdf"},
		{"'/tmp/x.png'", "/tmp/x.png"},
		{"relative.xlsx", "relative.xlsx"},
	}

	for _, tt := range tests {
		if got := expandPath(tt.input); got != tt.want {
			t.Errorf("expandPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCommand_Attach(t *testing.T) {
	att := &models.Attachment{Name: "deck.pptx", Kind: models.KindPPTX, Text: "slide"}
	proc := &fakeProcessor{att: att}
	m, session := newTestModel(t, &api.MockBackend{}, proc)

	m, cmd := submit(t, m, "/attach deck.pptx")
	if cmd == nil {
		t.Fatal("expected an ingest command")
	}
	if session.Attachment() != nil {
		t.Error("file should not be attached before ingest finishes")
	}

	msg := cmd()
	done, ok := msg.(attachDoneMsg)
	if !ok {
		t.Fatalf("command returned %T, want attachDoneMsg", msg)
	}
	if len(proc.paths) != 1 || proc.paths[0] != "deck.pptx" {
		t.Errorf("processor paths = %v", proc.paths)
	}

	m, _ = update(t, m, done)
	if session.Attachment() != att {
		t.Error("file should be pending after ingest")
	}

	m, _ = submit(t, m, "/attach")
	if m.err == nil || !strings.Contains(m.err.Error(), "usage") {
		t.Errorf("missing path should report usage, got %v", m.err)
	}
}

func TestCommand_AttachError(t *testing.T) {
	proc := &fakeProcessor{err: apierrors.NewExtractError("docx", "bad.docx", errors.New("zip: not a valid zip file"))}
	m, session := newTestModel(t, &api.MockBackend{}, proc)

	m, cmd := submit(t, m, "/attach bad.docx")
	m, _ = update(t, m, cmd())

	if !apierrors.IsExtractError(m.err) {
		t.Errorf("err = %v, want extract error", m.err)
	}
	if session.Attachment() != nil {
		t.Error("nothing should be attached")
	}
}

func TestCommand_Detach(t *testing.T) {
	m, session := newTestModel(t, &api.MockBackend{}, nil)

	m, _ = submit(t, m, "/detach")
	if m.notice != "No file attached" {
		t.Errorf("notice = %q", m.notice)
	}

	session.Attach(&models.Attachment{Name: "a.png", Kind: models.KindImage})
	m, _ = submit(t, m, "/detach")
	if session.Attachment() != nil {
		t.Error("attachment should be removed")
	}
	if m.notice != "Removed a.png" {
		t.Errorf("notice = %q", m.notice)
	}
}

func TestCommand_Clear(t *testing.T) {
	m, session := newTestModel(t, &api.MockBackend{Chunks: []string{"hi"}}, nil)
	m, _ = submit(t, m, "hello")
	m = drain(t, m)
	session.Attach(&models.Attachment{Name: "a.pdf", Kind: models.KindPDF, Text: "x"})

	m, _ = submit(t, m, "/clear")
	if len(session.History()) != 0 {
		t.Error("history should be empty after /clear")
	}
	if session.Attachment() != nil {
		t.Error("pending file should be dropped by /clear")
	}
	if !strings.Contains(m.View(), "Welcome") {
		t.Error("cleared chat should show the welcome screen")
	}
}

func TestCommand_Model(t *testing.T) {
	m, session := newTestModel(t, &api.MockBackend{}, nil)

	m, _ = submit(t, m, "/model")
	if !strings.Contains(m.notice, "gemini-1.5-pro") {
		t.Errorf("notice should list models, got %q", m.notice)
	}

	m, _ = submit(t, m, "/model pro")
	if session.GetModel().Name != "gemini-1.5-pro" {
		t.Errorf("session model = %s", session.GetModel().Name)
	}
	if m.modelName != "gemini-1.5-pro" {
		t.Errorf("header model = %s", m.modelName)
	}

	m, _ = submit(t, m, "/model gemini-9-ultra")
	if !strings.Contains(m.notice, "not in the built-in list") {
		t.Errorf("notice = %q", m.notice)
	}
}

func TestCommand_Save(t *testing.T) {
	m, _ := newTestModel(t, &api.MockBackend{Chunks: []string{"answer"}}, nil)
	m, _ = submit(t, m, "question")
	m = drain(t, m)

	path := filepath.Join(t.TempDir(), "out", "chat.json")
	m, _ = submit(t, m, "/save "+path)
	if m.err != nil {
		t.Fatalf("save failed: %v", m.err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("transcript not written: %v", err)
	}
	if !strings.Contains(string(data), `"answer"`) {
		t.Errorf("transcript missing reply: %s", data)
	}

	m, _ = submit(t, m, "/save")
	if m.err == nil {
		t.Error("missing path should be an error")
	}
}

func TestCommand_Copy(t *testing.T) {
	var copied string
	orig := clipboardWrite
	clipboardWrite = func(s string) error {
		copied = s
		return nil
	}
	defer func() { clipboardWrite = orig }()

	m, _ := newTestModel(t, &api.MockBackend{Chunks: []string{"copy me"}}, nil)

	m, _ = submit(t, m, "/copy")
	if m.notice != "Nothing to copy yet" {
		t.Errorf("notice = %q", m.notice)
	}

	m, _ = submit(t, m, "question")
	m = drain(t, m)
	m, _ = submit(t, m, "/copy")
	if copied != "copy me" {
		t.Errorf("copied %q, want copy me", copied)
	}

	clipboardWrite = func(string) error { return errors.New("no clipboard") }
	m, _ = submit(t, m, "/copy")
	if m.err == nil || !strings.Contains(m.err.Error(), "clipboard") {
		t.Errorf("err = %v", m.err)
	}
}

func TestCommand_HelpAndUnknown(t *testing.T) {
	m, _ := newTestModel(t, &api.MockBackend{}, nil)

	m, _ = submit(t, m, "/help")
	if !m.showHelp {
		t.Fatal("help should be shown")
	}
	content := m.viewport.View()
	for _, c := range slashCommands {
		if !strings.Contains(content, c.name) {
			t.Errorf("help missing %s", c.name)
		}
	}

	m, _ = submit(t, m, "/frobnicate")
	if m.err == nil || !strings.Contains(m.err.Error(), "/frobnicate") {
		t.Errorf("err = %v", m.err)
	}
}

func TestCommand_Browse(t *testing.T) {
	m, _ := newTestModel(t, &api.MockBackend{}, nil)

	m, cmd := submit(t, m, "/browse")
	if !m.browsing {
		t.Fatal("picker should be open")
	}
	if cmd == nil {
		t.Error("picker should start reading the directory")
	}
	if !strings.Contains(m.View(), "Attach a file") {
		t.Error("view should show the picker")
	}

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.browsing {
		t.Error("esc should close the picker")
	}
	if isQuit(cmd) {
		t.Error("esc in the picker should not quit")
	}
}
