// Package markdown serializes a document node tree into markdown text,
// enforcing the escaping and layout rules the output renderer relies on.
package markdown

import (
	"fmt"
	"log/slog"
	"strings"

	"git.home.luguber.info/inful/apidocgen/internal/docnodes"
	"git.home.luguber.info/inful/apidocgen/internal/logfields"
)

// Emitter walks a document node tree and writes flat markup. It has no
// notion of cross-page context: link destinations arrive pre-resolved on
// the LinkTag nodes.
type Emitter struct {
	grammar *docnodes.Grammar
}

// NewEmitter creates an emitter sharing the given grammar table.
func NewEmitter(grammar *docnodes.Grammar) *Emitter {
	return &Emitter{grammar: grammar}
}

// state carries the mutable emission context through one pass.
type state struct {
	listDepth   int
	insideTable bool
}

// Emit serializes a tree to output text. Trees are legal by construction
// (see docnodes.Grammar); emission never validates.
func (e *Emitter) Emit(root docnodes.Node) string {
	w := &writer{}
	e.emit(root, w, &state{})
	return w.String()
}

func (e *Emitter) emit(n docnodes.Node, w *writer, st *state) {
	switch node := n.(type) {
	case *docnodes.Section:
		for _, child := range node.Children {
			e.emit(child, w, st)
		}

	case *docnodes.Paragraph:
		if st.insideTable {
			for _, child := range node.Children {
				e.emit(child, w, st)
			}
			return
		}
		w.ensureSkippedLine()
		for _, child := range node.Children {
			e.emit(child, w, st)
		}
		w.ensureNewline()

	case *docnodes.PlainText:
		e.writeText(node.Text, w, st)

	case *docnodes.EscapedText:
		e.writeText(node.Text, w, st)

	case *docnodes.CodeSpan:
		if st.insideTable {
			w.write("<pre>" + preformat(node.Code) + "</pre>")
		} else {
			w.write("`" + node.Code + "`")
		}

	case *docnodes.FencedCode:
		if st.insideTable {
			w.write("<pre>" + preformat(node.Code) + "</pre>")
			return
		}
		w.ensureSkippedLine()
		w.write("```" + node.Language + "\n")
		w.write(node.Code)
		w.ensureNewline()
		w.write("```\n")
		w.ensureSkippedLine()

	case *docnodes.LinkTag:
		e.emitLink(node, w, st)

	case *docnodes.SoftBreak:
		switch w.last() {
		case 0, ' ', '\t', '\n':
		default:
			w.write(" ")
		}

	case *docnodes.Heading:
		w.ensureSkippedLine()
		level := node.Level
		if level > 4 {
			level = 4
		}
		if level < 1 {
			level = 1
		}
		w.write(strings.Repeat("#", level) + " " + Escape(node.Title) + "\n")
		w.ensureSkippedLine()

	case *docnodes.List:
		e.emitList(node, w, st)

	case *docnodes.NoteBox:
		e.emitNoteBox(node, w, st)

	case *docnodes.Table:
		e.emitTable(node, w, st)

	case *docnodes.Anchor:
		w.ensureNewline()
		w.write(`<a name="` + node.ID + `"></a>` + "\n")

	case *docnodes.EmphasisSpan:
		if node.Bold {
			w.write("<b>")
		}
		if node.Italic {
			w.write("<i>")
		}
		for _, child := range node.Children {
			e.emit(child, w, st)
		}
		if node.Italic {
			w.write("</i>")
		}
		if node.Bold {
			w.write("</b>")
		}

	default:
		// The node set is a closed union; reaching this is a programming
		// error, not an input condition.
		panic(fmt.Sprintf("markdown: unhandled document node %T", n))
	}
}

// writeText splits text around its whitespace, escapes only the core, and
// inserts an invisible marker comment when appending directly after a
// non-blank character would let adjacent emphasis runs merge ambiguously.
func (e *Emitter) writeText(text string, w *writer, st *state) {
	if text == "" {
		return
	}
	if st.insideTable {
		text = strings.ReplaceAll(text, "\n", " ")
	}
	leading, core, trailing := splitWhitespace(text)

	if leading != "" {
		switch w.last() {
		case 0, ' ', '\t', '\n':
		default:
			w.write(" ")
		}
	} else if core != "" && w.endsWithNonBlank() {
		w.write("<!-- -->")
	}
	w.write(Escape(core))
	if trailing != "" {
		w.write(" ")
	}
}

func (e *Emitter) emitLink(link *docnodes.LinkTag, w *writer, st *state) {
	if link.Broken {
		slog.Warn("Unable to resolve link destination; dropping link",
			logfields.Target(link.Text))
		return
	}
	dest := link.DocPath
	if dest == "" {
		dest = link.URL
	}
	if dest == "" {
		// Plain link text with no destination renders as ordinary text.
		e.writeText(link.Text, w, st)
		return
	}
	if strings.TrimSpace(link.Text) == "" {
		slog.Warn("Link has no text; omitting it", logfields.Target(dest))
		return
	}
	w.write("[" + Escape(link.Text) + "](" + dest + ")")
}

func (e *Emitter) emitList(list *docnodes.List, w *writer, st *state) {
	if st.listDepth == 0 {
		w.ensureSkippedLine()
	}
	st.listDepth++
	indent := strings.Repeat("  ", 2*(st.listDepth-1))
	for _, item := range list.Items {
		if nested, ok := item.(*docnodes.List); ok {
			e.emitList(nested, w, st)
			continue
		}
		w.ensureNewline()
		w.write(indent + "- ")
		e.emit(item, w, st)
		w.ensureNewline()
	}
	st.listDepth--
	if st.listDepth == 0 {
		w.ensureSkippedLine()
	}
}

func (e *Emitter) emitNoteBox(box *docnodes.NoteBox, w *writer, st *state) {
	if box.Content == nil {
		return
	}
	inner := &writer{}
	e.emit(box.Content, inner, &state{})
	content := strings.TrimRight(inner.String(), "\n")
	if content == "" {
		return
	}
	w.ensureSkippedLine()
	for _, line := range strings.Split(content, "\n") {
		w.write("> " + line + "\n")
	}
	w.ensureSkippedLine()
}

func (e *Emitter) emitTable(table *docnodes.Table, w *writer, st *state) {
	columns := len(table.Header)
	for _, row := range table.Rows {
		if len(row) > columns {
			columns = len(row)
		}
	}
	if columns == 0 {
		return
	}

	w.ensureSkippedLine()
	writeRow := func(cells []*docnodes.Section) {
		w.write("|")
		for i := 0; i < columns; i++ {
			content := ""
			if i < len(cells) && cells[i] != nil {
				content = e.renderCell(cells[i])
			}
			w.write(" " + content + " |")
		}
		w.write("\n")
	}

	writeRow(table.Header)
	w.write("|" + strings.Repeat(" --- |", columns) + "\n")
	for _, row := range table.Rows {
		writeRow(row)
	}
	w.ensureSkippedLine()
}

// renderCell flattens a cell section to inline content; multiple block
// children are separated by a literal <br><br>.
func (e *Emitter) renderCell(cell *docnodes.Section) string {
	var blocks []string
	for _, child := range cell.Children {
		inner := &writer{}
		e.emit(child, inner, &state{insideTable: true})
		if block := strings.TrimSpace(inner.buf.String()); block != "" {
			blocks = append(blocks, block)
		}
	}
	return strings.Join(blocks, "<br><br>")
}

// preformat converts code for embedding in an HTML <pre> block inside a
// table cell: entities escaped, embedded newlines encoded so the table row
// stays on one physical line.
func preformat(code string) string {
	code = escapeHTML(strings.TrimRight(code, "\n"))
	return strings.ReplaceAll(code, "\n", "&#010;")
}
