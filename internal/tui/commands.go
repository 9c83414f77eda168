package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/config"
	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/history"
	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/models"
)

// attachDoneMsg is sent when a file has been ingested (or failed to)
type attachDoneMsg struct {
	path string
	att  *models.Attachment
	err  error
}

// clipboardWrite is replaced in tests
var clipboardWrite = clipboard.WriteAll

// slashCommand describes one entry of /help
type slashCommand struct {
	name string
	args string
	desc string
}

var slashCommands = []slashCommand{
	{"/attach", "<path>", "Attach a file to the next message"},
	{"/browse", "", "Pick a file to attach"},
	{"/detach", "", "Drop the pending file"},
	{"/clear", "", "Start a new conversation"},
	{"/model", "[name]", "Show or switch the model"},
	{"/save", "<path>", "Export the transcript (.md or .json)"},
	{"/copy", "", "Copy the last reply to the clipboard"},
	{"/help", "", "Show this help"},
	{"/quit", "", "Leave the chat"},
}

// isExitCommand reports whether input leaves the chat
func isExitCommand(input string) bool {
	switch strings.ToLower(input) {
	case "exit", "quit", "/exit", "/quit":
		return true
	}
	return false
}

// parseCommand splits "/name args" into its parts
func parseCommand(input string) (name, arg string, ok bool) {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "/") {
		return "", "", false
	}
	name, arg, _ = strings.Cut(input, " ")
	return strings.ToLower(name), strings.TrimSpace(arg), true
}

// expandPath strips quotes left by drag and drop and expands a leading ~
func expandPath(path string) string {
	path = strings.Trim(strings.TrimSpace(path), `"'`)
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

// runCommand executes a slash command typed in the input box
func (m Model) runCommand(name, arg string) (tea.Model, tea.Cmd) {
	m.err = nil
	m.notice = ""

	switch name {
	case "/attach":
		if arg == "" {
			m.err = fmt.Errorf("usage: /attach <path>")
			return m, nil
		}
		m.notice = "Reading " + filepath.Base(expandPath(arg)) + "..."
		return m, m.attachFile(expandPath(arg))

	case "/browse":
		return m.openPicker()

	case "/detach":
		if att := m.session.Detach(); att != nil {
			m.notice = "Removed " + att.Name
		} else {
			m.notice = "No file attached"
		}

	case "/clear":
		m.session.Reset()
		m.showHelp = false
		m.notice = "Conversation cleared"
		m.updateViewport()

	case "/model":
		if arg == "" {
			m.notice = fmt.Sprintf("Model: %s (available: %s)",
				m.session.GetModel().Name, strings.Join(config.AvailableModels(), ", "))
			return m, nil
		}
		model := models.ModelFromName(arg)
		m.session.SetModel(model)
		m.modelName = model.Name
		m.notice = "Switched to " + model.Name
		if !model.IsKnown() {
			m.notice += " (not in the built-in list)"
		}

	case "/save":
		if arg == "" {
			m.err = fmt.Errorf("usage: /save <path>")
			return m, nil
		}
		path := expandPath(arg)
		if err := history.SaveTranscript(m.session.Conversation(), path); err != nil {
			m.err = err
			return m, nil
		}
		m.notice = "Transcript saved to " + path

	case "/copy":
		reply, ok := m.session.Conversation().LastReply()
		if !ok {
			m.notice = "Nothing to copy yet"
			return m, nil
		}
		if err := clipboardWrite(reply.Content); err != nil {
			m.err = fmt.Errorf("failed to copy to clipboard: %w", err)
			return m, nil
		}
		m.notice = "Last reply copied to clipboard"

	case "/help":
		m.showHelp = true
		m.updateViewport()
		m.viewport.GotoBottom()

	default:
		m.err = fmt.Errorf("unknown command %s, type /help for a list", name)
	}

	return m, nil
}

// attachFile ingests path off the update loop
func (m Model) attachFile(path string) tea.Cmd {
	processor := m.processor
	return func() tea.Msg {
		att, err := processor.ProcessFile(path)
		return attachDoneMsg{path: path, att: att, err: err}
	}
}

// renderHelp lists the slash commands
func renderHelp() string {
	var sb strings.Builder
	sb.WriteString(assistantLabelStyle.Render("Commands"))
	sb.WriteString("\n")
	for _, c := range slashCommands {
		usage := c.name
		if c.args != "" {
			usage += " " + c.args
		}
		sb.WriteString(fmt.Sprintf("  %s  %s\n",
			statusKeyStyle.Render(fmt.Sprintf("%-16s", usage)),
			statusDescStyle.Render(c.desc)))
	}
	return sb.String()
}
