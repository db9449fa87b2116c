package pagebuilder

import (
	"git.home.luguber.info/inful/apidocgen/internal/docnodes"
	"git.home.luguber.info/inful/apidocgen/internal/model"
	"git.home.luguber.info/inful/apidocgen/internal/router"
)

// renderBlocks converts a block-level comment node sequence into document
// nodes, resolving link tags against the type table. from is the
// declaration whose comment is being rendered; its scope drives reference
// resolution.
func (r *buildRun) renderBlocks(nodes []*model.CommentNode, from *model.Declaration, origin router.Target) []docnodes.Node {
	var out []docnodes.Node
	for _, n := range nodes {
		if n == nil {
			continue
		}
		switch n.Kind {
		case model.CommentParagraph:
			para := &docnodes.Paragraph{Children: r.renderInlines(n.Children, from, origin)}
			if len(para.Children) > 0 {
				out = append(out, para)
			}
		case model.CommentFencedCode:
			out = append(out, &docnodes.FencedCode{Code: n.Code, Language: n.Language})
		default:
			// Bare inline at block level: promote to its own paragraph.
			para := &docnodes.Paragraph{Children: r.renderInlines([]*model.CommentNode{n}, from, origin)}
			if len(para.Children) > 0 {
				out = append(out, para)
			}
		}
	}
	return out
}

func (r *buildRun) renderInlines(nodes []*model.CommentNode, from *model.Declaration, origin router.Target) []docnodes.Node {
	var out []docnodes.Node
	for _, n := range nodes {
		if n == nil {
			continue
		}
		switch n.Kind {
		case model.CommentPlainText:
			out = append(out, docnodes.Text(n.Text))
		case model.CommentCodeSpan:
			out = append(out, &docnodes.CodeSpan{Code: n.Code})
		case model.CommentSoftBreak:
			out = append(out, &docnodes.SoftBreak{})
		case model.CommentLinkTag:
			out = append(out, r.renderLink(n, from, origin))
		case model.CommentParagraph:
			out = append(out, r.renderInlines(n.Children, from, origin)...)
		case model.CommentFencedCode:
			out = append(out, &docnodes.CodeSpan{Code: n.Code})
		}
	}
	return out
}

// renderLink resolves a link tag. Declaration references that resolve get
// a relative destination and default to the target's scoped name as text;
// ones that don't are marked broken and dropped at emission time.
func (r *buildRun) renderLink(n *model.CommentNode, from *model.Declaration, origin router.Target) docnodes.Node {
	if n.URL != "" {
		text := n.Text
		if text == "" {
			text = n.URL
		}
		return &docnodes.LinkTag{Text: text, URL: n.URL}
	}

	target := r.table.ResolveFrom(n.TargetRef, from)
	if target == nil {
		return &docnodes.LinkTag{Text: linkLabel(n), Broken: true}
	}
	text := n.Text
	if text == "" {
		text = target.ScopedName()
	}
	return &docnodes.LinkTag{
		Text:    text,
		DocPath: r.router.LinkFrom(origin, r.router.PathFor(target)),
	}
}

func linkLabel(n *model.CommentNode) string {
	if n.Text != "" {
		return n.Text
	}
	return n.TargetRef
}
