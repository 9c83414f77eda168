package render

import "github.com/charmbracelet/glamour/styles"

// Markdown style names
const (
	ThemeDark       = "dark"
	ThemeLight      = "light"
	ThemeTokyoNight = "tokyonight"
	ThemeDracula    = "dracula"
	ThemePink       = "pink"
	ThemeNoTTY      = "notty"
	ThemeASCII      = "ascii"
	ThemeAuto       = "auto"
)

// glamourNames maps our style names onto glamour's where they differ
var glamourNames = map[string]string{
	ThemeTokyoNight: styles.TokyoNightStyle,
	ThemeAuto:       styles.AutoStyle,
}

// resolveStyle returns the glamour style name or path for style
func resolveStyle(style string) string {
	if style == "" {
		return ThemeDark
	}
	if name, ok := glamourNames[style]; ok {
		return name
	}
	return style
}

// IsBuiltinStyle reports whether style names a bundled glamour style
func IsBuiltinStyle(style string) bool {
	resolved := resolveStyle(style)
	if resolved == styles.AutoStyle {
		return true
	}
	_, ok := styles.DefaultStyles[resolved]
	return ok
}

// ThemeInfo describes a markdown style for display
type ThemeInfo struct {
	Name        string
	Description string
}

// AvailableThemes lists the bundled markdown styles
func AvailableThemes() []ThemeInfo {
	return []ThemeInfo{
		{Name: ThemeDark, Description: "Dark theme (default)"},
		{Name: ThemeLight, Description: "Light theme for bright terminals"},
		{Name: ThemeTokyoNight, Description: "Tokyo Night color scheme"},
		{Name: ThemeDracula, Description: "Dracula color scheme"},
		{Name: ThemePink, Description: "Pink accents"},
		{Name: ThemeAuto, Description: "Dark or light, detected from the terminal"},
		{Name: ThemeNoTTY, Description: "Plain text (no styling)"},
		{Name: ThemeASCII, Description: "ASCII-only output"},
	}
}

// ThemeNames returns just the style names
func ThemeNames() []string {
	themes := AvailableThemes()
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}
