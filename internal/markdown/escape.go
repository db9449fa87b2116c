package markdown

import (
	"regexp"
	"strings"
)

var hyphenRun = regexp.MustCompile(`-{3,}`)

// specialChars are the markdown metacharacters escaped with a backslash.
const specialChars = "*#[]_|`~"

// Escape renders text inert for markdown: backslashes first, then the
// markdown metacharacters, then 3-or-more-hyphen runs (which would read as
// thematic breaks or setext underlines), then the HTML-sensitive
// characters.
func Escape(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r < 0x80 && strings.ContainsRune(specialChars, r):
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	escaped := hyphenRun.ReplaceAllStringFunc(b.String(), func(run string) string {
		return strings.Repeat(`\-`, len(run))
	})
	escaped = strings.ReplaceAll(escaped, "&", "&amp;")
	escaped = strings.ReplaceAll(escaped, "<", "&lt;")
	escaped = strings.ReplaceAll(escaped, ">", "&gt;")
	return escaped
}

// escapeHTML makes text safe inside the <pre>/<code> blocks used in table
// cells.
func escapeHTML(text string) string {
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")
	return text
}

// splitWhitespace separates text into leading whitespace, core text, and
// trailing whitespace; only the core is subject to escaping.
func splitWhitespace(text string) (leading, core, trailing string) {
	core = strings.TrimLeft(text, " \t\r\n")
	leading = text[:len(text)-len(core)]
	trimmed := strings.TrimRight(core, " \t\r\n")
	trailing = core[len(trimmed):]
	return leading, trimmed, trailing
}
