package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	apierrors "github.com/RidhamVashishth/Chatbot-using-Gemini/internal/errors"
	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/render"
)

// Gradient colors for animation
var gradientColors = []lipgloss.Color{
	lipgloss.Color("#ff6b6b"), // Red
	lipgloss.Color("#feca57"), // Yellow
	lipgloss.Color("#48dbfb"), // Cyan
	lipgloss.Color("#ff9ff3"), // Pink
	lipgloss.Color("#54a0ff"), // Blue
	lipgloss.Color("#5f27cd"), // Purple
	lipgloss.Color("#00d2d3"), // Teal
	lipgloss.Color("#1dd1a1"), // Green
}

var (
	colorText     = lipgloss.Color("#c0caf5")
	colorTextDim  = lipgloss.Color("#565f89")
	colorTextMute = lipgloss.Color("#3b4261")
	colorSuccess  = lipgloss.Color("#9ece6a")
	colorPrimary  = lipgloss.Color("#7aa2f7")
	colorFailure  = lipgloss.Color("#f7768e")
)

// Styles matching the chat TUI
var (
	assistantLabelStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	assistantBubbleStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Foreground(colorText).
				Padding(0, 1).
				MarginTop(1).
				MarginBottom(1)
)

// spinner handles the animated loading indicator
type spinner struct {
	out     io.Writer
	message string
	stop    chan struct{}
	done    chan struct{}
	mu      sync.Mutex
	frame   int
	stopped bool // Flag to prevent double-close
}

// newSpinner creates a new animated spinner drawing on out
func newSpinner(out io.Writer, message string) *spinner {
	return &spinner{
		out:     out,
		message: message,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// start begins the animation
func (s *spinner) start() {
	go func() {
		defer close(s.done)

		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		// Hide cursor
		fmt.Fprint(s.out, "\033[?25l")

		for {
			select {
			case <-s.stop:
				// Clear line and show cursor
				fmt.Fprint(s.out, "\r\033[K\033[?25h")
				return
			case <-ticker.C:
				s.mu.Lock()
				s.render()
				s.frame++
				s.mu.Unlock()
			}
		}
	}()
}

// render draws the current animation frame
func (s *spinner) render() {
	chars := []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}
	barChars := []string{"█", "█", "█", "█", "█", "█", "▓", "▒", "░"}

	spinIdx := s.frame % len(chars)
	spinColor := gradientColors[s.frame%len(gradientColors)]
	spinnerChar := lipgloss.NewStyle().Foreground(spinColor).Bold(true).Render(chars[spinIdx])

	barWidth := 16
	var bar strings.Builder
	for i := 0; i < barWidth; i++ {
		colorIdx := (i + s.frame) % len(gradientColors)
		charIdx := (i + s.frame/2) % len(barChars)
		bar.WriteString(lipgloss.NewStyle().Foreground(gradientColors[colorIdx]).Render(barChars[charIdx]))
	}

	var dots strings.Builder
	numDots := (s.frame / 3) % 4
	for i := 0; i < 3; i++ {
		if i < numDots {
			dotColor := gradientColors[(s.frame+i)%len(gradientColors)]
			dots.WriteString(lipgloss.NewStyle().Foreground(dotColor).Render("●"))
		} else {
			dots.WriteString(lipgloss.NewStyle().Foreground(colorTextMute).Render("○"))
		}
	}

	msg := lipgloss.NewStyle().Foreground(colorText).Render(s.message)

	fmt.Fprintf(s.out, "\r\033[K%s %s %s %s", spinnerChar, bar.String(), msg, dots.String())
}

// stopOnce safely closes the stop channel only once
func (s *spinner) stopOnce() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.stopped {
		close(s.stop)
		s.stopped = true
	}
}

// stopWithSuccess stops the spinner and shows success message
func (s *spinner) stopWithSuccess(message string) {
	s.stopOnce()
	<-s.done
	printSuccess(s.out, message)
}

// stopWithError stops the spinner and leaves the line clear
func (s *spinner) stopWithError() {
	s.stopOnce()
	<-s.done
}

// printSuccess prints a green check line
func printSuccess(w io.Writer, message string) {
	checkmark := lipgloss.NewStyle().Foreground(colorSuccess).Bold(true).Render("✓")
	msg := lipgloss.NewStyle().Foreground(colorSuccess).Render(message)
	fmt.Fprintf(w, "%s %s\n", checkmark, msg)
}

// progress shows spinners only in decorated mode
type progress struct {
	out     io.Writer
	enabled bool
	current *spinner
}

func (p *progress) start(message string) {
	if !p.enabled {
		return
	}
	p.current = newSpinner(p.out, message)
	p.current.start()
}

func (p *progress) success(message string) {
	if p.current != nil {
		p.current.stopWithSuccess(message)
		p.current = nil
	}
}

func (p *progress) fail(err error, action string) {
	if p.current != nil {
		p.current.stopWithError()
		p.current = nil
	}
	if p.enabled {
		fmt.Fprintln(p.out, formatErrorMessage(err, action))
	}
}

// runQuery executes a single query and outputs the response.
// With rawOutput the reply is streamed to stdout as plain text.
func runQuery(cmd *cobra.Command, prompt string, rawOutput bool) error {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return apierrors.ErrEmptyPrompt
	}

	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	rt := loadRuntime(stderr, verboseFlag)
	defer rt.close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	if verboseFlag && !rawOutput {
		fmt.Fprintf(stderr, "[verbose] Model: %s\n", rt.model.Name)
	}

	client, err := rt.newClient(ctx)
	if err != nil {
		if !rawOutput {
			fmt.Fprintln(stderr, formatErrorMessage(err, "Failed to initialize"))
		}
		return err
	}
	defer client.Close()

	session := client.StartChat()
	prog := &progress{out: stderr, enabled: !rawOutput}

	if attachFlag != "" {
		prog.start("Reading " + attachFlag)
		att, err := rt.processor().ProcessFile(attachFlag)
		if err != nil {
			prog.fail(err, "Failed to read file")
			return fmt.Errorf("failed to read %s: %w", attachFlag, err)
		}
		session.Attach(att)
		prog.success("Attached " + att.Summary())
	}

	// Plain output streams as it arrives; decorated output is rendered at the end
	var onChunk func(string)
	if rawOutput && outputFlag == "" {
		onChunk = func(text string) { fmt.Fprint(stdout, text) }
	}

	prog.start("Generating response")
	startTime := time.Now()
	text, err := session.SendMessage(ctx, prompt, onChunk)
	requestDuration := time.Since(startTime)
	if err != nil {
		prog.fail(err, "Generation failed")
		return fmt.Errorf("generation failed: %w", err)
	}
	prog.success("Done")

	if verboseFlag && !rawOutput {
		fmt.Fprintf(stderr, "[verbose] Request took %s\n", requestDuration.Round(time.Millisecond))
	}

	if rawOutput {
		if outputFlag != "" {
			return writeOutput(outputFlag, text)
		}
		if !strings.HasSuffix(text, "\n") {
			fmt.Fprintln(stdout)
		}
		return nil
	}

	fmt.Fprintln(stderr)

	if rt.cfg.CopyToClipboard {
		if err := clipboard.WriteAll(text); err != nil {
			warnMsg := lipgloss.NewStyle().Foreground(colorFailure).Render(
				fmt.Sprintf("⚠ Failed to copy to clipboard: %v", err),
			)
			fmt.Fprintln(stderr, warnMsg)
		} else {
			printSuccess(stderr, "Copied to clipboard")
		}
	}

	if outputFlag != "" {
		if err := writeOutput(outputFlag, text); err != nil {
			return err
		}
		printSuccess(stderr, fmt.Sprintf("Response saved to %s", outputFlag))
		return nil
	}

	bubbleWidth := getTerminalWidth(stdout) - 4
	if bubbleWidth < 40 {
		bubbleWidth = 40
	}
	if bubbleWidth > 120 {
		bubbleWidth = 120
	}
	contentWidth := bubbleWidth - 4

	fmt.Fprintln(stdout, assistantLabelStyle.Render("✦ Gemini"))

	rendered := render.MarkdownOrPlain(text, render.OptionsFromConfig(rt.cfg.Markdown, contentWidth))
	fmt.Fprintln(stdout, assistantBubbleStyle.Width(bubbleWidth).Render(rendered))

	return nil
}

// writeOutput saves the reply to path
func writeOutput(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// getTerminalWidth returns the width of w's terminal, or 80
func getTerminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return 80
}

// isTTY reports whether w is a terminal
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// formatErrorMessage formats an error with additional context from structured errors
func formatErrorMessage(err error, action string) string {
	if err == nil {
		return ""
	}

	errorStyle := lipgloss.NewStyle().Foreground(colorFailure)
	dimStyle := lipgloss.NewStyle().Foreground(colorTextDim)

	var sb strings.Builder
	sb.WriteString(errorStyle.Render(fmt.Sprintf("✗ %s: %v", action, err)))

	if status := apierrors.GetHTTPStatus(err); status > 0 {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  HTTP Status: %d", status)))
	}

	if code := apierrors.GetErrorCode(err); code != apierrors.ErrCodeUnknown {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  Error Code: %d (%s)", code, code.String())))
	}

	switch {
	case apierrors.IsUnsupportedFile(err):
		sb.WriteString(dimStyle.Render("\n  Hint: Run 'geminichat formats' to list supported files"))
	case apierrors.IsAuthError(err):
		sb.WriteString(dimStyle.Render("\n  Hint: Set GOOGLE_API_KEY in the environment or in ~/.geminichat/.env"))
	case apierrors.IsRateLimitError(err):
		sb.WriteString(dimStyle.Render("\n  Hint: You've hit the usage limit. Try again later or use a different model"))
	case apierrors.IsNetworkError(err):
		sb.WriteString(dimStyle.Render("\n  Hint: Check your internet connection and try again"))
	case apierrors.IsTimeoutError(err):
		sb.WriteString(dimStyle.Render("\n  Hint: Request timed out. Try again or check your connection"))
	}

	return sb.String()
}
