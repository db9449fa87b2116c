// Package frontmatter composes and splits the optional YAML page header
// carried on emitted pages.
package frontmatter

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"
)

// Style captures the newline shape used when composing or rewriting a
// page. It does not attempt to preserve any further YAML formatting.
type Style struct {
	Newline string
}

func (s Style) newline() string {
	if s.Newline == "" {
		return "\n"
	}
	return s.Newline
}

// ErrMissingClosingDelimiter indicates a page started with a frontmatter
// delimiter but never closed it.
var ErrMissingClosingDelimiter = errors.New("frontmatter start delimiter found but closing delimiter is missing")

// Compose serializes the page header fields and wraps them in `---`
// delimiters. An empty field map yields no output at all.
func Compose(fields map[string]any, style Style) ([]byte, error) {
	body, err := SerializeYAML(fields, style)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, nil
	}
	nl := style.newline()
	var out bytes.Buffer
	out.WriteString("---" + nl)
	out.Write(body)
	out.WriteString("---" + nl)
	return out.Bytes(), nil
}

// PageFields builds the standard page header: the page title and its
// stable uid (the documented declaration's scoped name, or the package
// name for package pages).
func PageFields(title, uid string) map[string]any {
	return map[string]any{
		"title": title,
		"uid":   uid,
	}
}

// Split separates a `---` delimited YAML header from the page body. If
// the page does not start with a delimiter, had is false and body is the
// full input.
func Split(content []byte) (header, body []byte, had bool, err error) {
	style := DetectStyle(content)
	nl := style.newline()

	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, nil
	}
	start := len(open)

	if bytes.HasPrefix(content[start:], open) {
		return []byte{}, content[start+len(open):], true, nil
	}
	closeSeq := []byte(nl + "---" + nl)
	idx := bytes.Index(content[start:], closeSeq)
	if idx < 0 {
		return nil, nil, false, ErrMissingClosingDelimiter
	}
	return content[start : start+idx+len(nl)], content[start+idx+len(closeSeq):], true, nil
}

// ParseYAML parses a raw header (without delimiters) into a field map.
func ParseYAML(header []byte) (map[string]any, error) {
	if len(header) == 0 {
		return map[string]any{}, nil
	}
	var fields map[string]any
	if err := yaml.Unmarshal(header, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}

// DetectStyle sniffs the newline convention of existing content.
func DetectStyle(content []byte) Style {
	for i := 0; i < len(content); i++ {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			return Style{Newline: "\r\n"}
		}
		if content[i] == '\n' {
			break
		}
	}
	return Style{Newline: "\n"}
}
