package render

import (
	"os"

	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/config"
)

// EnvStyle overrides the configured markdown style
const EnvStyle = "GLAMOUR_STYLE"

// OptionsFromConfig builds render options from the markdown section of the
// user configuration. GLAMOUR_STYLE takes precedence over the configured style.
func OptionsFromConfig(md config.MarkdownConfig, width int) Options {
	opts := DefaultOptions()
	opts.Width = width

	if md.Style != "" {
		opts.Style = md.Style
	}
	opts.EnableEmoji = md.EnableEmoji
	opts.PreserveNewLines = md.PreserveNewLines
	opts.TableWrap = md.TableWrap
	opts.InlineTableLinks = md.InlineTableLinks

	if style := os.Getenv(EnvStyle); style != "" {
		opts.Style = style
	}
	return opts
}
