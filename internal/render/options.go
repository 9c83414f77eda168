// Package render turns model replies into styled terminal output.
package render

// Options configures the markdown renderer
type Options struct {
	Width            int    // word-wrap width; 0 disables wrapping
	Style            string // a name from AvailableThemes, or a path to a glamour JSON style
	EnableEmoji      bool
	PreserveNewLines bool
	TableWrap        bool
	InlineTableLinks bool
}

// DefaultOptions returns the default configuration
func DefaultOptions() Options {
	return Options{
		Width:            80,
		Style:            ThemeDark,
		EnableEmoji:      true,
		PreserveNewLines: true,
		TableWrap:        true,
	}
}

// WithWidth returns a copy of o with the given width
func (o Options) WithWidth(width int) Options {
	o.Width = width
	return o
}

// WithStyle returns a copy of o with the given style
func (o Options) WithStyle(style string) Options {
	o.Style = style
	return o
}

// key identifies renderers built from equal options
func (o Options) key() Options {
	o.Style = resolveStyle(o.Style)
	return o
}
