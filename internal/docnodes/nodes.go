// Package docnodes defines the constrained document tree that page builders
// produce and the markdown emitter consumes. The node set is a closed tagged
// union: every dispatch site switches exhaustively over these kinds.
package docnodes

// Kind tags one document node variant.
type Kind string

const (
	KindSection      Kind = "Section"
	KindParagraph    Kind = "Paragraph"
	KindPlainText    Kind = "PlainText"
	KindEscapedText  Kind = "EscapedText"
	KindCodeSpan     Kind = "CodeSpan"
	KindFencedCode   Kind = "FencedCode"
	KindLinkTag      Kind = "LinkTag"
	KindSoftBreak    Kind = "SoftBreak"
	KindHeading      Kind = "Heading"
	KindList         Kind = "List"
	KindNoteBox      Kind = "NoteBox"
	KindTable        Kind = "Table"
	KindAnchor       Kind = "Anchor"
	KindEmphasisSpan Kind = "EmphasisSpan"
)

// Node is one node of the output document tree.
type Node interface {
	NodeKind() Kind
}

// Section is a block container; page bodies and table cells are sections.
type Section struct {
	Children []Node
}

// Paragraph is a run of inline content.
type Paragraph struct {
	Children []Node
}

// PlainText is inline text; the emitter escapes it on output.
type PlainText struct {
	Text string
}

// EscapedText is inline text that must always pass through the escaper,
// even in contexts where plain text would be emitted verbatim.
type EscapedText struct {
	Text string
}

// CodeSpan is inline code.
type CodeSpan struct {
	Code string
}

// FencedCode is a block of code with an optional language info string.
type FencedCode struct {
	Code     string
	Language string
}

// LinkTag is a hyperlink. Exactly one destination form is populated:
// DocPath (a pre-resolved page-relative path, possibly with "#anchor"),
// URL (a raw external destination), or neither (plain link text).
// Broken marks a declaration destination that failed to resolve; the
// emitter logs it and renders nothing.
type LinkTag struct {
	Text    string
	DocPath string
	URL     string
	Broken  bool
}

// SoftBreak collapses to a single space on output.
type SoftBreak struct{}

// Heading is a titled section break, level 1-5.
type Heading struct {
	Level int
	Title string
}

// List is an ordered sequence of items; an item is either inline content
// or a nested List.
type List struct {
	Items []Node
}

// NoteBox is a callout; every line of its content is quoted on output.
type NoteBox struct {
	Content *Section
}

// Table is a header row plus data rows. Each cell is a Section.
type Table struct {
	Header []*Section
	Rows   [][]*Section
}

// Anchor is an in-page link target.
type Anchor struct {
	ID string
}

// EmphasisSpan wraps inline children in bold and/or italic emphasis.
type EmphasisSpan struct {
	Bold     bool
	Italic   bool
	Children []Node
}

func (*Section) NodeKind() Kind      { return KindSection }
func (*Paragraph) NodeKind() Kind    { return KindParagraph }
func (*PlainText) NodeKind() Kind    { return KindPlainText }
func (*EscapedText) NodeKind() Kind  { return KindEscapedText }
func (*CodeSpan) NodeKind() Kind     { return KindCodeSpan }
func (*FencedCode) NodeKind() Kind   { return KindFencedCode }
func (*LinkTag) NodeKind() Kind      { return KindLinkTag }
func (*SoftBreak) NodeKind() Kind    { return KindSoftBreak }
func (*Heading) NodeKind() Kind      { return KindHeading }
func (*List) NodeKind() Kind         { return KindList }
func (*NoteBox) NodeKind() Kind      { return KindNoteBox }
func (*Table) NodeKind() Kind        { return KindTable }
func (*Anchor) NodeKind() Kind       { return KindAnchor }
func (*EmphasisSpan) NodeKind() Kind { return KindEmphasisSpan }

// Children returns the child nodes of n in document order. Table cells and
// note box content count as children.
func Children(n Node) []Node {
	switch node := n.(type) {
	case *Section:
		return node.Children
	case *Paragraph:
		return node.Children
	case *List:
		return node.Items
	case *EmphasisSpan:
		return node.Children
	case *NoteBox:
		if node.Content == nil {
			return nil
		}
		return []Node{node.Content}
	case *Table:
		var out []Node
		for _, c := range node.Header {
			out = append(out, c)
		}
		for _, row := range node.Rows {
			for _, c := range row {
				out = append(out, c)
			}
		}
		return out
	case *PlainText, *EscapedText, *CodeSpan, *FencedCode, *LinkTag,
		*SoftBreak, *Heading, *Anchor:
		return nil
	}
	return nil
}

// Text is shorthand for a plain text node.
func Text(s string) *PlainText { return &PlainText{Text: s} }

// Bold is shorthand for a bold emphasis span around plain text.
func Bold(s string) *EmphasisSpan {
	return &EmphasisSpan{Bold: true, Children: []Node{Text(s)}}
}

// Para is shorthand for a paragraph of inline nodes.
func Para(children ...Node) *Paragraph { return &Paragraph{Children: children} }

// Cell is shorthand for a single-paragraph table cell.
func Cell(children ...Node) *Section {
	if len(children) == 0 {
		return &Section{}
	}
	return &Section{Children: []Node{Para(children...)}}
}
