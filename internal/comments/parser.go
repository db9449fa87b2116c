// Package comments parses raw doc comment markdown into the structured
// comment node model carried on declarations.
package comments

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"git.home.luguber.info/inful/apidocgen/internal/model"
)

// blockTag opens a new comment section: "@remarks", "@param name - text".
var blockTag = regexp.MustCompile(`^\s*@([A-Za-z][A-Za-z0-9]*)\s*(.*)$`)

// inlineLink matches "{@link target}" and "{@link target | text}".
var inlineLink = regexp.MustCompile(`\{@link\s+([^}|]+?)(?:\s*\|\s*([^}]*?))?\s*\}`)

// modifierTags carry no content and attach nothing to the comment tree.
var modifierTags = map[string]bool{
	"public":               true,
	"beta":                 true,
	"alpha":                true,
	"internal":             true,
	"readonly":             true,
	"sealed":               true,
	"virtual":              true,
	"override":             true,
	"eventproperty":        true,
	"packagedocumentation": true,
}

// ParseDoc splits a raw doc comment into its tagged sections and parses
// each section's markdown. Text before the first block tag is the summary.
func ParseDoc(raw string) *model.DocComment {
	doc := &model.DocComment{}
	if strings.TrimSpace(raw) == "" {
		return doc
	}

	type section struct {
		tag     string // "" for the summary
		param   string // @param name
		content []string
	}
	current := &section{}
	sections := []*section{current}
	inFence := false

	for _, line := range strings.Split(raw, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
		}
		m := blockTag.FindStringSubmatch(line)
		if m == nil || inFence {
			current.content = append(current.content, line)
			continue
		}
		tag, rest := m[1], m[2]
		if modifierTags[strings.ToLower(tag)] {
			if strings.TrimSpace(rest) != "" {
				current.content = append(current.content, rest)
			}
			continue
		}
		current = &section{tag: tag}
		if strings.EqualFold(tag, "param") {
			current.param, rest = splitParam(rest)
		}
		if strings.TrimSpace(rest) != "" {
			current.content = append(current.content, rest)
		}
		sections = append(sections, current)
	}

	for _, s := range sections {
		nodes := Parse(strings.Join(s.content, "\n"))
		switch strings.ToLower(s.tag) {
		case "":
			doc.Summary = nodes
		case "remarks":
			doc.Remarks = append(doc.Remarks, nodes...)
		case "deprecated":
			doc.Deprecated = append(doc.Deprecated, nodes...)
		case "returns":
			doc.Returns = append(doc.Returns, nodes...)
		case "param":
			if s.param == "" {
				continue
			}
			if doc.Params == nil {
				doc.Params = make(map[string][]*model.CommentNode)
			}
			doc.Params[s.param] = append(doc.Params[s.param], nodes...)
		case "privateremarks":
			// never rendered
		default:
			doc.Custom = append(doc.Custom, model.CustomBlock{Tag: s.tag, Content: nodes})
		}
	}
	return doc
}

// splitParam separates "name - description" (the hyphen is optional).
func splitParam(rest string) (name, content string) {
	rest = strings.TrimSpace(rest)
	if before, after, found := strings.Cut(rest, " - "); found {
		return strings.TrimSpace(before), after
	}
	if before, after, found := strings.Cut(rest, " "); found {
		return before, strings.TrimPrefix(strings.TrimSpace(after), "- ")
	}
	return rest, ""
}

// Parse parses one markdown fragment into comment nodes.
func Parse(fragment string) []*model.CommentNode {
	if strings.TrimSpace(fragment) == "" {
		return nil
	}
	source := []byte(fragment)
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(source))

	var nodes []*model.CommentNode
	for block := root.FirstChild(); block != nil; block = block.NextSibling() {
		if n := parseBlock(block, source); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

func parseBlock(block gmast.Node, source []byte) *model.CommentNode {
	switch node := block.(type) {
	case *gmast.Paragraph, *gmast.TextBlock:
		children := parseInlines(block, source)
		if len(children) == 0 {
			return nil
		}
		return &model.CommentNode{Kind: model.CommentParagraph, Children: children}

	case *gmast.FencedCodeBlock:
		return &model.CommentNode{
			Kind:     model.CommentFencedCode,
			Code:     blockLines(node, source),
			Language: string(node.Language(source)),
		}

	case *gmast.CodeBlock:
		return &model.CommentNode{Kind: model.CommentFencedCode, Code: blockLines(node, source)}

	default:
		// Lists, headings and quotes are rare in doc comments. Their text
		// is kept, their structure flattened to one paragraph.
		children := collectInlines(block, source)
		if len(children) == 0 {
			return nil
		}
		return &model.CommentNode{Kind: model.CommentParagraph, Children: children}
	}
}

// parseInlines converts the inline children of one block.
func parseInlines(block gmast.Node, source []byte) []*model.CommentNode {
	var nodes []*model.CommentNode
	var pending strings.Builder

	flush := func() {
		if pending.Len() == 0 {
			return
		}
		nodes = append(nodes, splitLinkTags(pending.String())...)
		pending.Reset()
	}

	for in := block.FirstChild(); in != nil; in = in.NextSibling() {
		switch node := in.(type) {
		case *gmast.Text:
			pending.Write(node.Segment.Value(source))
			if node.SoftLineBreak() || node.HardLineBreak() {
				flush()
				nodes = append(nodes, &model.CommentNode{Kind: model.CommentSoftBreak})
			}
		case *gmast.CodeSpan:
			flush()
			nodes = append(nodes, &model.CommentNode{
				Kind: model.CommentCodeSpan,
				Code: inlineText(node, source),
			})
		case *gmast.Link:
			flush()
			nodes = append(nodes, &model.CommentNode{
				Kind: model.CommentLinkTag,
				Text: inlineText(node, source),
				URL:  string(node.Destination),
			})
		case *gmast.AutoLink:
			flush()
			url := string(node.URL(source))
			nodes = append(nodes, &model.CommentNode{Kind: model.CommentLinkTag, Text: url, URL: url})
		default:
			// Emphasis and other inline wrappers: keep the text only.
			pending.WriteString(inlineText(in, source))
		}
	}
	flush()
	return nodes
}

// collectInlines flattens every inline under an arbitrary block subtree.
func collectInlines(block gmast.Node, source []byte) []*model.CommentNode {
	var nodes []*model.CommentNode
	_ = gmast.Walk(block, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering || n.Type() != gmast.TypeBlock || n.FirstChild() == nil {
			return gmast.WalkContinue, nil
		}
		if n.FirstChild().Type() == gmast.TypeInline {
			if len(nodes) > 0 {
				nodes = append(nodes, &model.CommentNode{Kind: model.CommentSoftBreak})
			}
			nodes = append(nodes, parseInlines(n, source)...)
			return gmast.WalkSkipChildren, nil
		}
		return gmast.WalkContinue, nil
	})
	return nodes
}

// splitLinkTags breaks a text run around {@link} inline tags.
func splitLinkTags(run string) []*model.CommentNode {
	var nodes []*model.CommentNode
	for {
		loc := inlineLink.FindStringSubmatchIndex(run)
		if loc == nil {
			break
		}
		if before := run[:loc[0]]; before != "" {
			nodes = append(nodes, &model.CommentNode{Kind: model.CommentPlainText, Text: before})
		}
		target := strings.TrimSpace(run[loc[2]:loc[3]])
		label := ""
		if loc[4] >= 0 {
			label = strings.TrimSpace(run[loc[4]:loc[5]])
		}
		link := &model.CommentNode{Kind: model.CommentLinkTag, Text: label}
		if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
			link.URL = target
		} else {
			link.TargetRef = target
		}
		nodes = append(nodes, link)
		run = run[loc[1]:]
	}
	if run != "" {
		nodes = append(nodes, &model.CommentNode{Kind: model.CommentPlainText, Text: run})
	}
	return nodes
}

// blockLines joins the raw source lines of a code block.
func blockLines(block gmast.Node, source []byte) string {
	var b strings.Builder
	lines := block.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
	}
	return b.String()
}

// inlineText renders an inline subtree as plain text.
func inlineText(n gmast.Node, source []byte) string {
	var b strings.Builder
	_ = gmast.Walk(n, func(cur gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if t, ok := cur.(*gmast.Text); ok {
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		}
		return gmast.WalkContinue, nil
	})
	return b.String()
}
