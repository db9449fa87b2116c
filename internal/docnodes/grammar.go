package docnodes

import (
	"fmt"
)

// Grammar is the immutable allow-list of which node kinds may nest inside
// which. It is constructed once and passed by reference to every tree
// builder and emitter; there is no process-wide registry.
type Grammar struct {
	allowed map[Kind]map[Kind]bool
}

// NewGrammar builds the default document grammar.
func NewGrammar() *Grammar {
	g := &Grammar{allowed: make(map[Kind]map[Kind]bool)}

	inline := []Kind{KindPlainText, KindEscapedText, KindCodeSpan, KindLinkTag, KindSoftBreak, KindEmphasisSpan}
	compact := []Kind{KindLinkTag, KindPlainText, KindEmphasisSpan, KindList}

	g.allow(KindSection, KindSection, KindParagraph, KindHeading, KindList,
		KindNoteBox, KindTable, KindAnchor, KindFencedCode)
	g.allow(KindParagraph, inline...)
	g.allow(KindEmphasisSpan, compact...)
	g.allow(KindList, compact...)
	g.allow(KindNoteBox, KindSection)
	g.allow(KindTable, KindSection)
	// Leaf kinds allow nothing.

	return g
}

func (g *Grammar) allow(parent Kind, children ...Kind) {
	set := g.allowed[parent]
	if set == nil {
		set = make(map[Kind]bool, len(children))
		g.allowed[parent] = set
	}
	for _, c := range children {
		set[c] = true
	}
}

// Allows reports whether a child kind may nest directly inside a parent kind.
func (g *Grammar) Allows(parent, child Kind) bool {
	return g.allowed[parent][child]
}

// Validate walks a tree and returns an error for the first grammar
// violation found. Builders construct legal trees by construction; this is
// a test and debugging aid, ordinary emission never validates.
func (g *Grammar) Validate(root Node) error {
	if root == nil {
		return nil
	}
	parent := root.NodeKind()
	for _, child := range Children(root) {
		if child == nil {
			continue
		}
		if !g.Allows(parent, child.NodeKind()) {
			return fmt.Errorf("docnodes: %s may not contain %s", parent, child.NodeKind())
		}
		if err := g.Validate(child); err != nil {
			return err
		}
	}
	return nil
}
