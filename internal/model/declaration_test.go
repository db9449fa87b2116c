package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testForest() *Declaration {
	pkg := &Declaration{
		Kind:        KindPackage,
		DisplayName: "my-lib",
		Members: []*Declaration{
			{
				Kind: KindEntryPoint,
				Members: []*Declaration{
					{
						Kind:        KindNamespace,
						DisplayName: "ui",
						Members: []*Declaration{
							{
								Kind:        KindClass,
								DisplayName: "Widget",
								Members: []*Declaration{
									{Kind: KindMethod, DisplayName: "render"},
								},
							},
						},
					},
				},
			},
		},
	}
	pkg.AttachParents()
	return pkg
}

func TestScopedName_ExcludesWrappers(t *testing.T) {
	pkg := testForest()
	widget := pkg.Members[0].Members[0].Members[0]
	render := widget.Members[0]

	require.Equal(t, "ui.Widget", widget.ScopedName())
	require.Equal(t, "ui.Widget.render", render.ScopedName())
	require.Equal(t, "", pkg.ScopedName())
}

func TestAncestors_OutermostFirst(t *testing.T) {
	pkg := testForest()
	widget := pkg.Members[0].Members[0].Members[0]
	render := widget.Members[0]

	chain := render.Ancestors()
	require.Len(t, chain, 3)
	require.Equal(t, KindPackage, chain[0].Kind)
	require.Equal(t, "ui", chain[1].DisplayName)
	require.Equal(t, "Widget", chain[2].DisplayName)
}

func TestContainerPage_MemberResolvesToClass(t *testing.T) {
	pkg := testForest()
	widget := pkg.Members[0].Members[0].Members[0]
	render := widget.Members[0]

	require.Same(t, widget, render.ContainerPage())
	require.Same(t, widget, widget.ContainerPage())
	require.Same(t, pkg, render.Package())
}

func TestKindPredicates(t *testing.T) {
	require.True(t, KindClass.IsType())
	require.True(t, KindTypeAlias.IsType())
	require.False(t, KindMethod.IsType())

	require.True(t, KindFunction.OwnsPage())
	require.False(t, KindMethod.OwnsPage())

	require.True(t, KindPropertySignature.IsSignature())
	require.False(t, KindProperty.IsSignature())

	require.True(t, KindPackage.IsWrapper())
	require.True(t, KindEntryPoint.IsWrapper())
	require.False(t, KindNamespace.IsWrapper())
}

func TestNodesEmpty(t *testing.T) {
	require.True(t, NodesEmpty(nil))
	require.True(t, NodesEmpty([]*CommentNode{
		{Kind: CommentParagraph, Children: []*CommentNode{{Kind: CommentPlainText, Text: "   "}}},
	}))
	require.False(t, NodesEmpty([]*CommentNode{
		{Kind: CommentParagraph, Children: []*CommentNode{{Kind: CommentPlainText, Text: "hello"}}},
	}))
	require.False(t, NodesEmpty([]*CommentNode{{Kind: CommentLinkTag, TargetRef: "X"}}))
}

func TestDocComment_CustomBlocks(t *testing.T) {
	c := &DocComment{Custom: []CustomBlock{
		{Tag: "example", Content: []*CommentNode{{Kind: CommentPlainText, Text: "one"}}},
		{Tag: "defaultValue", Content: []*CommentNode{{Kind: CommentPlainText, Text: "42"}}},
		{Tag: "Example", Content: []*CommentNode{{Kind: CommentPlainText, Text: "two"}}},
	}}

	examples := c.CustomBlocks("example")
	require.Len(t, examples, 2)

	dv := c.CustomBlock("defaultvalue")
	require.NotNil(t, dv)
	require.Equal(t, "defaultValue", dv.Tag)

	require.Nil(t, c.CustomBlock("see"))
}
