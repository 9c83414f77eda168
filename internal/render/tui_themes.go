package render

import (
	"github.com/charmbracelet/lipgloss"
)

// TUITheme is the colour scheme of the chat screen.
// Bubbles use the terminal background, so only foreground roles are themed.
type TUITheme struct {
	Name        string
	Description string

	Border    lipgloss.Color
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Text      lipgloss.Color
	TextDim   lipgloss.Color
	TextMute  lipgloss.Color
}

// palette builds a theme from hex colours in field order
func palette(name, desc string, hex ...string) TUITheme {
	c := make([]lipgloss.Color, len(hex))
	for i, h := range hex {
		c[i] = lipgloss.Color(h)
	}
	return TUITheme{
		Name: name, Description: desc,
		Border: c[0], Primary: c[1], Secondary: c[2], Accent: c[3],
		Warning: c[4], Error: c[5], Text: c[6], TextDim: c[7], TextMute: c[8],
	}
}

// Built-in chat themes; the first is the default
var tuiThemes = []TUITheme{
	palette("tokyonight", "Tokyo Night, blue accents on deep navy",
		"#414868", "#7aa2f7", "#9ece6a", "#bb9af7", "#e0af68", "#f7768e", "#c0caf5", "#565f89", "#3b4261"),
	palette("catppuccin", "Catppuccin Mocha, warm pastels",
		"#45475a", "#89b4fa", "#a6e3a1", "#cba6f7", "#f9e2af", "#f38ba8", "#cdd6f4", "#6c7086", "#45475a"),
	palette("nord", "Nord, cool arctic tones",
		"#4c566a", "#88c0d0", "#a3be8c", "#b48ead", "#ebcb8b", "#bf616a", "#eceff4", "#7b88a1", "#4c566a"),
	palette("dracula", "Dracula, vivid accents",
		"#6272a4", "#8be9fd", "#50fa7b", "#ff79c6", "#f1fa8c", "#ff5555", "#f8f8f2", "#6272a4", "#44475a"),
}

// DefaultTUITheme is used when the configured theme is unknown
const DefaultTUITheme = "tokyonight"

// GetTUITheme returns the named theme, or the default theme when name is unknown
func GetTUITheme(name string) TUITheme {
	if theme, ok := GetTUIThemeByName(name); ok {
		return theme
	}
	return tuiThemes[0]
}

// GetTUIThemeByName returns a TUI theme by its name
func GetTUIThemeByName(name string) (TUITheme, bool) {
	for _, theme := range tuiThemes {
		if theme.Name == name {
			return theme, true
		}
	}
	return TUITheme{}, false
}

// AvailableTUIThemes returns every built-in chat theme
func AvailableTUIThemes() []TUITheme {
	out := make([]TUITheme, len(tuiThemes))
	copy(out, tuiThemes)
	return out
}

// TUIThemeNames returns the theme names accepted by tui_theme
func TUIThemeNames() []string {
	names := make([]string, len(tuiThemes))
	for i, t := range tuiThemes {
		names[i] = t.Name
	}
	return names
}
