package docnodes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGrammar_SectionChildren(t *testing.T) {
	g := NewGrammar()

	require.True(t, g.Allows(KindSection, KindParagraph))
	require.True(t, g.Allows(KindSection, KindHeading))
	require.True(t, g.Allows(KindSection, KindTable))
	require.True(t, g.Allows(KindSection, KindAnchor))
	require.True(t, g.Allows(KindSection, KindNoteBox))
	require.True(t, g.Allows(KindSection, KindFencedCode))

	require.False(t, g.Allows(KindSection, KindPlainText))
	require.False(t, g.Allows(KindSection, KindCodeSpan))
	require.False(t, g.Allows(KindSection, KindSoftBreak))
}

func TestGrammar_CompactKinds(t *testing.T) {
	g := NewGrammar()

	for _, parent := range []Kind{KindEmphasisSpan, KindList} {
		require.True(t, g.Allows(parent, KindLinkTag), "%s", parent)
		require.True(t, g.Allows(parent, KindPlainText), "%s", parent)
		require.True(t, g.Allows(parent, KindEmphasisSpan), "%s", parent)
		require.True(t, g.Allows(parent, KindList), "%s", parent)
		require.False(t, g.Allows(parent, KindTable), "%s", parent)
		require.False(t, g.Allows(parent, KindHeading), "%s", parent)
	}
}

func TestGrammar_LeavesAllowNothing(t *testing.T) {
	g := NewGrammar()
	for _, leaf := range []Kind{KindPlainText, KindEscapedText, KindCodeSpan,
		KindFencedCode, KindLinkTag, KindSoftBreak, KindHeading, KindAnchor} {
		require.False(t, g.Allows(leaf, KindPlainText), "%s", leaf)
		require.False(t, g.Allows(leaf, KindSection), "%s", leaf)
	}
}

func TestValidate_LegalTree(t *testing.T) {
	g := NewGrammar()
	tree := &Section{Children: []Node{
		&Heading{Level: 1, Title: "Class Widget"},
		Para(Text("hello "), &LinkTag{Text: "Other", DocPath: "./other.md"}),
		&List{Items: []Node{
			&LinkTag{Text: "a", DocPath: "./a.md"},
			&List{Items: []Node{Bold("b")}},
		}},
		&NoteBox{Content: &Section{Children: []Node{Para(Text("careful"))}}},
		&Table{
			Header: []*Section{Cell(Text("Name")), Cell(Text("Description"))},
			Rows:   [][]*Section{{Cell(Text("x")), Cell(Text("y"))}},
		},
	}}

	require.NoError(t, g.Validate(tree))
}

func TestValidate_IllegalTree(t *testing.T) {
	g := NewGrammar()
	tree := &Section{Children: []Node{
		Text("inline text directly in a section"),
	}}

	err := g.Validate(tree)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Section may not contain PlainText")
}

func TestChildren_CoversContainers(t *testing.T) {
	table := &Table{
		Header: []*Section{Cell(Text("h"))},
		Rows:   [][]*Section{{Cell(Text("a")), Cell(Text("b"))}},
	}
	require.Len(t, Children(table), 3)

	nb := &NoteBox{Content: &Section{}}
	require.Len(t, Children(nb), 1)

	require.Nil(t, Children(&Heading{Level: 2, Title: "x"}))
}
