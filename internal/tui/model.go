package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/history"
	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/ingest"
	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/models"
	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/render"
)

// Animation tick message
type animationTickMsg time.Time

// ChatSessionInterface defines the chat session operations needed by the TUI
type ChatSessionInterface interface {
	SendMessage(ctx context.Context, prompt string, onChunk func(string)) (string, error)
	Attach(att *models.Attachment)
	Attachment() *models.Attachment
	Detach() *models.Attachment
	History() []models.Message
	Conversation() *history.Conversation
	Reset()
	GetModel() models.Model
	SetModel(model models.Model)
}

// FileProcessor turns a path into an attachment
type FileProcessor interface {
	ProcessFile(path string) (*models.Attachment, error)
}

// ChatOptions configures the chat screen
type ChatOptions struct {
	Processor FileProcessor  // defaults to ingest.NewProcessor()
	Markdown  render.Options // width is set from the window
	Theme     string         // TUI theme name; empty keeps the current one
}

// Model represents the TUI state
type Model struct {
	session   ChatSessionInterface
	processor FileProcessor
	markdown  render.Options
	modelName string

	// UI components
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model
	picker   filepicker.Model

	// In-flight request
	stream             *stream
	inflightPrompt     string
	inflightAttachment string
	partial            string

	// State
	loading        bool
	ready          bool
	browsing       bool
	showHelp       bool
	notice         string
	err            error
	animationFrame int // Frame counter for loading animation

	// Dimensions
	width  int
	height int
}

// NewChatModel creates a new chat TUI model around session
func NewChatModel(session ChatSessionInterface, opts ChatOptions) Model {
	if opts.Theme != "" {
		UpdateTheme(opts.Theme)
	}
	if opts.Processor == nil {
		opts.Processor = ingest.NewProcessor()
	}
	if opts.Markdown.Style == "" {
		opts.Markdown = render.DefaultOptions()
	}

	// Create textarea for input
	ta := textarea.New()
	ta.Placeholder = "Ask a question, or /attach a file..."
	ta.CharLimit = 4000
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.Focus()

	// Style the textarea
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(colorText)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(colorTextDim)
	ta.BlurredStyle = ta.FocusedStyle

	// Create spinner
	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = loadingStyle

	return Model{
		session:   session,
		processor: opts.Processor,
		markdown:  opts.Markdown,
		modelName: session.GetModel().Name,
		textarea:  ta,
		spinner:   s,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
	)
}

// animationTick returns a command that sends animation tick messages
func animationTick() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return animationTickMsg(t)
	})
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	if m.browsing {
		return m.updatePicker(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Calculate component heights
		headerHeight := 4 // Header panel with border
		inputHeight := 6  // Input panel with border
		statusHeight := 1 // Status bar
		padding := 2      // Extra spacing

		vpHeight := m.height - headerHeight - inputHeight - statusHeight - padding
		if vpHeight < 5 {
			vpHeight = 5
		}

		contentWidth := m.width - 4

		// Initialize viewport on first size message
		if !m.ready {
			m.viewport = viewport.New(contentWidth, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = contentWidth
			m.viewport.Height = vpHeight
		}
		m.textarea.SetWidth(contentWidth - 4)
		m.updateViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancelStream()
			return m, tea.Quit

		case "esc":
			if m.loading {
				m.cancelStream()
				m.notice = "Cancelling..."
				return m, nil
			}
			return m, tea.Quit

		case "enter":
			if m.loading {
				return m, nil
			}
			input := strings.TrimSpace(m.textarea.Value())
			if input == "" {
				return m, nil
			}
			m.textarea.Reset()

			if isExitCommand(input) {
				return m, tea.Quit
			}
			if name, arg, ok := parseCommand(input); ok {
				return m.runCommand(name, arg)
			}
			return m.send(input)
		}

	case streamChunkMsg:
		if msg.stream != m.stream {
			return m, nil
		}
		m.partial += msg.text
		m.updateViewport()
		m.viewport.GotoBottom()
		return m, msg.stream.wait()

	case streamDoneMsg:
		if msg.stream != m.stream {
			return m, nil
		}
		m.finishStream(msg.err)

	case attachDoneMsg:
		if msg.err != nil {
			m.notice = ""
			m.err = msg.err
			return m, nil
		}
		m.session.Attach(msg.att)
		m.err = nil
		m.notice = "Attached " + msg.att.Summary()

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case animationTickMsg:
		if m.loading {
			m.animationFrame++
			cmds = append(cmds, animationTick())
		}
	}

	// Only pass KeyMsg to textarea to prevent escape sequence leaks
	if !m.loading {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.textarea, cmd = m.textarea.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// send starts a request for prompt with whatever file is pending
func (m Model) send(prompt string) (tea.Model, tea.Cmd) {
	m.err = nil
	m.notice = ""
	m.showHelp = false
	m.inflightPrompt = prompt
	m.inflightAttachment = ""
	if att := m.session.Attachment(); att != nil {
		m.inflightAttachment = att.Name
	}
	m.partial = ""
	m.loading = true
	m.animationFrame = 0
	m.stream = newStream()

	m.updateViewport()
	m.viewport.GotoBottom()

	return m, tea.Batch(
		m.stream.run(m.session, prompt),
		m.stream.wait(),
		m.spinner.Tick,
		animationTick(),
	)
}

// finishStream settles the model once the in-flight request returns.
// The session has already recorded the turn, including any error notice.
func (m *Model) finishStream(err error) {
	m.stream.cancel()
	m.stream = nil
	m.loading = false
	m.inflightPrompt = ""
	m.inflightAttachment = ""
	m.partial = ""
	m.notice = ""

	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		m.notice = "Request cancelled"
	default:
		m.err = err
	}

	m.updateViewport()
	m.viewport.GotoBottom()
}

// cancelStream aborts the in-flight request, if any
func (m Model) cancelStream() {
	if m.stream != nil {
		m.stream.cancel()
	}
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	if m.browsing {
		return m.renderPicker()
	}

	var sections []string
	contentWidth := m.width - 4

	// HEADER
	headerParts := []string{
		titleStyle.Render("✦ Gemini Chat"),
		hintStyle.Render("  •  "),
		subtitleStyle.Render(m.modelName),
	}
	if att := m.session.Attachment(); att != nil {
		headerParts = append(headerParts,
			hintStyle.Render("  •  "),
			badgeStyle.Render("📎 "+att.Name),
		)
	}
	headerContent := lipgloss.JoinHorizontal(lipgloss.Center, headerParts...)
	sections = append(sections, headerStyle.Width(contentWidth).Render(headerContent))

	// MESSAGES AREA
	var messagesContent string
	if m.isEmpty() {
		messagesContent = m.renderWelcome()
	} else {
		messagesContent = m.viewport.View()
	}
	messagesPanel := messagesAreaStyle.
		Width(contentWidth).
		Height(m.viewport.Height).
		Render(messagesContent)
	sections = append(sections, messagesPanel)

	// INPUT AREA
	var inputContent string
	if m.loading {
		inputContent = m.renderLoadingAnimation()
	} else {
		inputContent = lipgloss.JoinVertical(
			lipgloss.Left,
			inputLabelStyle.Render("You"),
			m.textarea.View(),
		)
	}
	sections = append(sections, inputPanelStyle.Width(contentWidth).Render(inputContent))

	// STATUS BAR
	sections = append(sections, m.renderStatusBar(contentWidth))

	// NOTICE / ERROR
	if m.err != nil {
		sections = append(sections, m.formatError(m.err))
	} else if m.notice != "" {
		sections = append(sections, noticeStyle.Render("  "+m.notice))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// isEmpty reports whether there is nothing to show in the messages area
func (m Model) isEmpty() bool {
	return !m.loading && !m.showHelp && len(m.session.History()) == 0
}

// renderWelcome renders the welcome screen when no messages exist
func (m Model) renderWelcome() string {
	width := m.viewport.Width - 4
	height := m.viewport.Height

	icon := welcomeIconStyle.Width(width).Render("✦")
	title := welcomeTitleStyle.Width(width).Render("Welcome to Gemini Chat")
	subtitle := welcomeStyle.Width(width).Render(
		"Type a message below, or /attach a file to ask about it\n" +
			hintStyle.Render(strings.Join(ingest.SupportedExtensions(), "  ")),
	)

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		"",
		icon,
		"",
		title,
		"",
		subtitle,
		"",
	)

	// Center vertically
	topPadding := (height - lipgloss.Height(content)) / 2
	if topPadding < 0 {
		topPadding = 0
	}

	return strings.Repeat("\n", topPadding) + content
}

// renderLoadingAnimation renders a colorful animated loading indicator
func (m Model) renderLoadingAnimation() string {
	chars := []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}
	barChars := []string{"█", "█", "█", "█", "█", "█", "█", "█", "▓", "▒", "░"}

	frame := m.animationFrame

	spinIdx := frame % len(chars)
	spinColor := gradientColors[frame%len(gradientColors)]
	spin := lipgloss.NewStyle().Foreground(spinColor).Bold(true).Render(chars[spinIdx])

	barWidth := 20
	var bar strings.Builder
	for i := 0; i < barWidth; i++ {
		colorIdx := (i + frame) % len(gradientColors)
		charIdx := (i + frame/2) % len(barChars)
		bar.WriteString(lipgloss.NewStyle().Foreground(gradientColors[colorIdx]).Render(barChars[charIdx]))
	}

	label := " Gemini is thinking "
	if m.partial != "" {
		label = " Gemini is writing "
	}
	text := lipgloss.NewStyle().Foreground(colorText).Render(label)

	return fmt.Sprintf("%s %s %s", spin, bar.String(), text)
}

// renderStatusBar renders the bottom status bar with shortcuts
func (m Model) renderStatusBar(width int) string {
	escDesc := "Quit"
	if m.loading {
		escDesc = "Cancel"
	}
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Enter", "Send"},
		{"Esc", escDesc},
		{"/help", "Commands"},
		{"↑↓", "Scroll"},
	}

	var items []string
	for _, s := range shortcuts {
		items = append(items, lipgloss.JoinHorizontal(
			lipgloss.Center,
			statusKeyStyle.Render(s.key),
			statusDescStyle.Render(" "+s.desc),
		))
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(items, "  │  "))
	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(bar)
}

// updateViewport refreshes the viewport content with styled messages
func (m *Model) updateViewport() {
	if !m.ready {
		return
	}

	var content strings.Builder
	bubbleWidth := m.viewport.Width - 6

	msgs := m.session.History()
	if m.loading {
		msgs = append(msgs, models.Message{
			Role:       models.RoleUser,
			Content:    m.inflightPrompt,
			Attachment: m.inflightAttachment,
		})
	}

	for i, msg := range msgs {
		if i > 0 {
			content.WriteString("\n")
		}
		content.WriteString(m.renderMessage(msg, bubbleWidth))
		content.WriteString("\n")
	}

	if m.loading && m.partial != "" {
		content.WriteString("\n")
		content.WriteString(m.renderMessage(models.Message{
			Role:    models.RoleAssistant,
			Content: m.partial,
		}, bubbleWidth))
		content.WriteString("\n")
	}

	if m.showHelp {
		content.WriteString("\n")
		content.WriteString(renderHelp())
	}

	m.viewport.SetContent(content.String())
}

// renderMessage renders one chat turn as a labelled bubble
func (m Model) renderMessage(msg models.Message, bubbleWidth int) string {
	if msg.IsUser() {
		out := userLabelStyle.Render("⬤ You") + "\n" +
			userBubbleStyle.Width(bubbleWidth).Render(msg.Content)
		if msg.Attachment != "" {
			out += "\n" + attachmentNoteStyle.Render("📎 "+msg.Attachment)
		}
		return out
	}

	label := assistantLabelStyle.Render("✦ Gemini")
	if msg.Error {
		return label + "\n" + errorBubbleStyle.Width(bubbleWidth).Render(msg.Content)
	}

	rendered := render.MarkdownOrPlain(msg.Content, m.markdown.WithWidth(bubbleWidth-4))
	return label + "\n" + assistantBubbleStyle.Width(bubbleWidth).Render(rendered)
}

// formatError formats an error with structured error details for display
func (m Model) formatError(err error) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(errorStyle.Render(fmt.Sprintf("⚠ Error: %v", err)))

	if hint := errorHint(err); hint != "" {
		hintLine := lipgloss.NewStyle().Foreground(colorPrimary).PaddingLeft(2)
		sb.WriteString("\n")
		sb.WriteString(hintLine.Render("💡 " + hint))
	}

	return sb.String()
}

// RunChat starts the chat TUI
func RunChat(session ChatSessionInterface, opts ChatOptions) error {
	p := tea.NewProgram(
		NewChatModel(session, opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if m, ok := final.(Model); ok {
		m.cancelStream()
	}
	return err
}
