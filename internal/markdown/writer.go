package markdown

import (
	"bytes"
	"strings"
)

// writer is the output buffer for one emission pass. It can report the
// last character written and enforce the "at most one blank line between
// blocks" rule through its ensure primitives.
type writer struct {
	buf bytes.Buffer
}

func (w *writer) write(s string) {
	w.buf.WriteString(s)
}

// last returns the last character written, or 0 for an empty buffer.
func (w *writer) last() byte {
	b := w.buf.Bytes()
	if len(b) == 0 {
		return 0
	}
	return b[len(b)-1]
}

// ensureNewline guarantees the buffer ends at a line start. A no-op on an
// empty buffer so documents never begin with blank lines.
func (w *writer) ensureNewline() {
	if w.buf.Len() == 0 {
		return
	}
	if w.last() != '\n' {
		w.buf.WriteByte('\n')
	}
}

// ensureSkippedLine guarantees exactly the separation of one blank line:
// it never stacks a second blank line onto an existing one.
func (w *writer) ensureSkippedLine() {
	if w.buf.Len() == 0 {
		return
	}
	w.ensureNewline()
	if !bytes.HasSuffix(w.buf.Bytes(), []byte("\n\n")) {
		w.buf.WriteByte('\n')
	}
}

// endsWithNonBlank reports whether the previous emitted character would
// visually merge with directly appended text.
func (w *writer) endsWithNonBlank() bool {
	switch w.last() {
	case 0, ' ', '\t', '\n', '[', '>':
		return false
	}
	return true
}

func (w *writer) String() string {
	out := w.buf.String()
	if out == "" {
		return out
	}
	return strings.TrimRight(out, "\n") + "\n"
}
