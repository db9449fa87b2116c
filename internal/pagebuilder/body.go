package pagebuilder

import (
	"strconv"
	"strings"

	"git.home.luguber.info/inful/apidocgen/internal/docnodes"
	"git.home.luguber.info/inful/apidocgen/internal/foundation/errors"
	"git.home.luguber.info/inful/apidocgen/internal/members"
	"git.home.luguber.info/inful/apidocgen/internal/model"
	"git.home.luguber.info/inful/apidocgen/internal/router"
)

const (
	deprecationPrefix = "Warning: This API is now obsolete. "
	betaWarning       = "This API is provided as a beta preview for developers and may " +
		"change based on feedback that we receive. Do not use this API in a " +
		"production environment."
	signatureLanguage = "typescript"
)

// headingTitle renders the per-kind page heading.
func headingTitle(item *model.Declaration) (string, error) {
	switch item.Kind {
	case model.KindPackage:
		return item.DisplayName, nil
	case model.KindNamespace:
		return "Namespace " + item.DisplayName, nil
	case model.KindClass:
		return "Class " + item.DisplayName, nil
	case model.KindInterface:
		return "Interface " + item.DisplayName, nil
	case model.KindEnum:
		return "Enum " + item.DisplayName, nil
	case model.KindMethod, model.KindMethodSignature:
		return "Method " + item.DisplayName, nil
	case model.KindProperty, model.KindPropertySignature:
		return "Property " + item.DisplayName, nil
	case model.KindFunction:
		return "Function " + item.DisplayName, nil
	case model.KindVariable:
		return "Variable " + item.DisplayName, nil
	case model.KindTypeAlias:
		return "Type " + item.DisplayName, nil
	}
	return "", errors.NewError(errors.CategoryGeneration, "unsupported declaration kind in page rendering").
		Fatal().
		WithContext("kind", string(item.Kind)).
		WithContext("item", item.ScopedName()).
		Build()
}

// buildBody appends item's rendered body to out. The same routine serves
// whole pages (level 1) and anchored member detail sections (deeper
// levels); res is the resolved-member context when item is rendered as a
// member, nil otherwise. The heading level is threaded explicitly through
// every call.
func (r *buildRun) buildBody(out *docnodes.Section, item *model.Declaration, res *members.ResolvedMember, origin router.Target, level int) error {
	title, err := headingTitle(item)
	if err != nil {
		return err
	}
	if level == 1 {
		if crumb := r.breadcrumb(item, origin); crumb != nil {
			out.Children = append(out.Children, crumb)
		}
	}
	out.Children = append(out.Children, &docnodes.Heading{Level: level, Title: title})

	if item.ReleaseTag == model.ReleaseBeta {
		out.Children = append(out.Children, &docnodes.NoteBox{
			Content: &docnodes.Section{Children: []docnodes.Node{docnodes.Para(docnodes.Text(betaWarning))}},
		})
	}
	if item.Comment.HasDeprecated() {
		out.Children = append(out.Children, r.deprecationBox(item, origin))
	}

	var chain []*model.Declaration
	if res != nil {
		chain = res.Parents
	}
	if summary := firstNonEmpty(item, chain, func(c *model.DocComment) []*model.CommentNode { return c.Summary }); summary != nil {
		out.Children = append(out.Children, r.renderBlocks(summary, item, origin)...)
	}
	if res != nil {
		if p := r.annotationParagraph(*res, origin); p != nil {
			out.Children = append(out.Children, p)
		}
	}
	if remarks := firstNonEmpty(item, chain, func(c *model.DocComment) []*model.CommentNode { return c.Remarks }); remarks != nil {
		out.Children = append(out.Children, r.renderBlocks(remarks, item, origin)...)
	}

	if sig := strings.TrimSpace(stripModifiers(item.ExcerptText)); sig != "" {
		out.Children = append(out.Children,
			docnodes.Para(docnodes.Bold("Signature:")),
			&docnodes.FencedCode{Language: signatureLanguage, Code: sig + "\n"},
		)
	}
	r.appendDefaultValue(out, item, origin)

	switch item.Kind {
	case model.KindClass:
		r.appendClassHierarchy(out, item, origin, level+1)
		r.appendDiagram(out, item, origin, level+1, "Implements", followParentInterfaces)
	case model.KindInterface:
		r.appendDiagram(out, item, origin, level+1, "Implements", followParentInterfaces)
		r.appendDiagram(out, item, origin, level+1, "Implemented By", followChildInterfaces)
	}

	r.appendExamples(out, item, origin, level+1)

	return r.appendKindTables(out, item, origin, level+1)
}

// breadcrumb links every containment ancestor, package labeled "Home".
func (r *buildRun) breadcrumb(item *model.Declaration, origin router.Target) *docnodes.Paragraph {
	ancestors := item.Ancestors()
	if len(ancestors) == 0 {
		return nil
	}
	p := &docnodes.Paragraph{}
	for i, ancestor := range ancestors {
		if i > 0 {
			p.Children = append(p.Children, docnodes.Text(" > "))
		}
		label := ancestor.DisplayName
		if ancestor.Kind == model.KindPackage {
			label = "Home"
		}
		p.Children = append(p.Children, &docnodes.LinkTag{
			Text:    label,
			DocPath: r.router.LinkFrom(origin, r.router.PathFor(ancestor)),
		})
	}
	return p
}

func (r *buildRun) deprecationBox(item *model.Declaration, origin router.Target) *docnodes.NoteBox {
	content := &docnodes.Section{}
	blocks := r.renderBlocks(item.Comment.Deprecated, item, origin)
	if first, ok := firstParagraph(blocks); ok {
		first.Children = append([]docnodes.Node{docnodes.Text(deprecationPrefix)}, first.Children...)
	} else {
		blocks = append([]docnodes.Node{docnodes.Para(docnodes.Text(deprecationPrefix))}, blocks...)
	}
	content.Children = blocks
	return &docnodes.NoteBox{Content: content}
}

// annotationParagraph renders the inheritance relation against the
// nearest chain entry, linking to the ancestor member's anchor.
func (r *buildRun) annotationParagraph(res members.ResolvedMember, origin router.Target) *docnodes.Paragraph {
	kind := members.Annotate(res)
	if kind == members.AnnotationNone {
		return nil
	}
	nearest := res.Parents[0]
	return docnodes.Para(
		docnodes.Text(string(kind)+" "),
		&docnodes.LinkTag{
			Text:    nearest.DisplayName,
			DocPath: r.router.LinkFrom(origin, r.router.PathFor(nearest)),
		},
	)
}

func (r *buildRun) appendDefaultValue(out *docnodes.Section, item *model.Declaration, origin router.Target) {
	block := item.Comment.CustomBlock("defaultValue")
	if block == nil || model.NodesEmpty(block.Content) {
		return
	}
	blocks := r.renderBlocks(block.Content, item, origin)
	if len(blocks) == 1 {
		if para, ok := firstParagraph(blocks); ok {
			para.Children = append(
				[]docnodes.Node{docnodes.Bold("Default Value:"), docnodes.Text(" ")},
				para.Children...)
			out.Children = append(out.Children, para)
			return
		}
	}
	out.Children = append(out.Children, docnodes.Para(docnodes.Bold("Default Value:")))
	out.Children = append(out.Children, blocks...)
}

func (r *buildRun) appendExamples(out *docnodes.Section, item *model.Declaration, origin router.Target, level int) {
	examples := item.Comment.CustomBlocks("example")
	for i, example := range examples {
		title := "Example"
		if len(examples) > 1 {
			title = "Example " + strconv.Itoa(i+1)
		}
		out.Children = append(out.Children, &docnodes.Heading{Level: level, Title: title})
		out.Children = append(out.Children, r.renderBlocks(example.Content, item, origin)...)
	}
}

// firstNonEmpty scans item then its inheritance chain for the first
// comment section with visible content. Own documentation wins.
func firstNonEmpty(item *model.Declaration, chain []*model.Declaration, pick func(*model.DocComment) []*model.CommentNode) []*model.CommentNode {
	for _, d := range append([]*model.Declaration{item}, chain...) {
		if d.Comment == nil {
			continue
		}
		if nodes := pick(d.Comment); !model.NodesEmpty(nodes) {
			return nodes
		}
	}
	return nil
}

func firstParagraph(blocks []docnodes.Node) (*docnodes.Paragraph, bool) {
	if len(blocks) == 0 {
		return nil, false
	}
	p, ok := blocks[0].(*docnodes.Paragraph)
	return p, ok
}

// stripModifiers drops the leading export/default/declare keywords from a
// declaration excerpt.
func stripModifiers(excerpt string) string {
	out := strings.TrimLeft(excerpt, " \t\n")
	for {
		switch {
		case strings.HasPrefix(out, "export "):
			out = out[len("export "):]
		case strings.HasPrefix(out, "default "):
			out = out[len("default "):]
		case strings.HasPrefix(out, "declare "):
			out = out[len("declare "):]
		default:
			return out
		}
		out = strings.TrimLeft(out, " \t")
	}
}
