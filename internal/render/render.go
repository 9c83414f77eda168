package render

import "strings"

// Markdown renders markdown content for terminal display
func Markdown(content string, opts Options) (string, error) {
	r, err := globalPool.get(opts)
	if err != nil {
		return "", err
	}
	defer globalPool.put(opts, r)

	return r.Render(content)
}

// MarkdownWithWidth renders with the default options at the given width
func MarkdownWithWidth(content string, width int) (string, error) {
	return Markdown(content, DefaultOptions().WithWidth(width))
}

// MarkdownOrPlain renders content, falling back to the raw text when rendering fails.
// Surrounding blank lines added by glamour are trimmed.
func MarkdownOrPlain(content string, opts Options) string {
	out, err := Markdown(content, opts)
	if err != nil {
		return content
	}
	return strings.Trim(out, "\n")
}

// ClearCache drops all pooled renderers
func ClearCache() {
	globalPool.reset()
}

// CacheSize returns the number of distinct option sets with a pool
func CacheSize() int {
	return globalPool.size()
}
