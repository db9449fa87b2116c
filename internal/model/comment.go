package model

import "strings"

// CommentNodeKind tags one node of a parsed structured doc comment.
type CommentNodeKind string

const (
	CommentParagraph  CommentNodeKind = "Paragraph"
	CommentPlainText  CommentNodeKind = "PlainText"
	CommentCodeSpan   CommentNodeKind = "CodeSpan"
	CommentFencedCode CommentNodeKind = "FencedCode"
	CommentLinkTag    CommentNodeKind = "LinkTag"
	CommentSoftBreak  CommentNodeKind = "SoftBreak"
)

// CommentNode is one node of the generic structured-comment tree produced
// by the comment parser. It is deliberately flat: a single struct with a
// kind tag keeps the loader's wire format and the parser simple.
type CommentNode struct {
	Kind CommentNodeKind

	Text      string         // PlainText content, or explicit LinkTag text
	Code      string         // CodeSpan / FencedCode content
	Language  string         // FencedCode info string
	TargetRef string         // LinkTag declaration reference, e.g. "ui.Widget"
	URL       string         // LinkTag raw URL destination
	Children  []*CommentNode // Paragraph children
}

// CustomBlock is a doc comment block addressed by its tag name, e.g.
// "example" or "defaultValue".
type CustomBlock struct {
	Tag     string
	Content []*CommentNode
}

// DocComment is the parsed doc comment attached to a declaration.
type DocComment struct {
	Summary    []*CommentNode
	Remarks    []*CommentNode
	Deprecated []*CommentNode
	Returns    []*CommentNode
	Params     map[string][]*CommentNode
	Custom     []CustomBlock
}

// CustomBlocks returns all custom blocks carrying the given tag, in
// declaration order. Tags match case-insensitively.
func (c *DocComment) CustomBlocks(tag string) []CustomBlock {
	if c == nil {
		return nil
	}
	var out []CustomBlock
	for _, b := range c.Custom {
		if strings.EqualFold(b.Tag, tag) {
			out = append(out, b)
		}
	}
	return out
}

// CustomBlock returns the first custom block with the given tag, or nil.
func (c *DocComment) CustomBlock(tag string) *CustomBlock {
	blocks := c.CustomBlocks(tag)
	if len(blocks) == 0 {
		return nil
	}
	return &blocks[0]
}

// HasDeprecated reports whether the comment carries a deprecation block
// with visible content.
func (c *DocComment) HasDeprecated() bool {
	return c != nil && !NodesEmpty(c.Deprecated)
}

// ParamContent returns the documented block for a parameter name, or nil.
func (c *DocComment) ParamContent(name string) []*CommentNode {
	if c == nil {
		return nil
	}
	return c.Params[name]
}

// NodesEmpty reports whether a comment node sequence renders no visible
// content (nil, or only blank text).
func NodesEmpty(nodes []*CommentNode) bool {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		switch n.Kind {
		case CommentPlainText:
			if strings.TrimSpace(n.Text) != "" {
				return false
			}
		case CommentCodeSpan, CommentFencedCode:
			if strings.TrimSpace(n.Code) != "" {
				return false
			}
		case CommentLinkTag:
			return false
		case CommentParagraph:
			if !NodesEmpty(n.Children) {
				return false
			}
		case CommentSoftBreak:
			// blank
		}
	}
	return true
}
