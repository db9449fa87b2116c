// Package writer persists emitted pages below the output directory.
package writer

import (
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/apidocgen/internal/foundation/errors"
)

// Writer owns the output directory for one run.
type Writer struct {
	root    string
	newline string
}

// New creates a Writer rooted at dir. newline is the output line ending,
// "\n" when empty.
func New(dir, newline string) *Writer {
	if newline == "" {
		newline = "\n"
	}
	return &Writer{root: dir, newline: newline}
}

// Root returns the output directory.
func (w *Writer) Root() string { return w.root }

// Clean removes the output directory's contents and recreates it. It runs
// once per generation, before the first page is written; a fatal failure
// mid-run can therefore leave a partially populated directory behind.
func (w *Writer) Clean() error {
	if err := os.RemoveAll(w.root); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to clear output directory").
			WithContext("path", w.root).
			Build()
	}
	return w.ensureRoot()
}

func (w *Writer) ensureRoot() error {
	if err := os.MkdirAll(w.root, 0o755); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to create output directory").
			WithContext("path", w.root).
			Build()
	}
	return nil
}

// WritePage persists one page at its relative path, creating intermediate
// directories as needed. header (optional frontmatter, already delimited)
// precedes the body; line endings are rewritten to the configured style.
func (w *Writer) WritePage(relPath string, header []byte, body string) error {
	full := filepath.Join(w.root, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to create page directory").
			WithContext("path", full).
			Build()
	}

	content := append([]byte{}, header...)
	content = append(content, []byte(w.convert(body))...)
	if err := os.WriteFile(full, content, 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write page").
			WithContext("path", full).
			Build()
	}
	return nil
}

func (w *Writer) convert(body string) string {
	if w.newline == "\n" {
		return body
	}
	return strings.ReplaceAll(body, "\n", w.newline)
}
