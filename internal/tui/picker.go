package tui

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	apierrors "github.com/RidhamVashishth/Chatbot-using-Gemini/internal/errors"
	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/ingest"
)

// pickerChrome is the height taken by the overlay box around the list
const pickerChrome = 8

// openPicker shows the file picker, starting in the working directory
func (m Model) openPicker() (tea.Model, tea.Cmd) {
	fp := filepicker.New()
	for _, ext := range ingest.SupportedExtensions() {
		fp.AllowedTypes = append(fp.AllowedTypes, ext, strings.ToUpper(ext))
	}
	if dir, err := os.Getwd(); err == nil {
		fp.CurrentDirectory = dir
	}

	m.picker = fp
	m.browsing = true
	m.picker, _ = m.picker.Update(m.pickerSize())
	return m, m.picker.Init()
}

// pickerSize is the window size forwarded to the picker's auto height
func (m Model) pickerSize() tea.WindowSizeMsg {
	height := m.height - pickerChrome
	if height < 5 {
		height = 5
	}
	return tea.WindowSizeMsg{Width: m.width, Height: height}
}

// updatePicker handles updates while the file picker is open
func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(m.pickerSize())
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc", "q":
			m.browsing = false
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.browsing = false
		m.notice = "Reading " + filepath.Base(path) + "..."
		return m, m.attachFile(path)
	}

	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.err = apierrors.NewUnsupportedFileError(filepath.Base(path), filepath.Ext(path))
	}

	return m, cmd
}

// renderPicker renders the file picker overlay
func (m Model) renderPicker() string {
	width := m.width - 8
	if width < 40 {
		width = 40
	}

	title := pickerTitleStyle.Render("📎 Attach a file")
	shortcuts := lipgloss.JoinHorizontal(lipgloss.Center,
		statusKeyStyle.Render("↑↓"), statusDescStyle.Render(" Navigate  │  "),
		statusKeyStyle.Render("Enter"), statusDescStyle.Render(" Select  │  "),
		statusKeyStyle.Render("Esc"), statusDescStyle.Render(" Cancel"),
	)

	sections := []string{title, m.picker.View(), shortcuts}
	if m.err != nil {
		sections = append(sections, FormatError(m.err))
	}

	return pickerBoxStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
