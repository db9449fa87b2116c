package linkverify

import (
	"regexp"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Link is one outgoing link found in a page body.
type Link struct {
	Target string // Raw destination as written
	Text   string // Link text, for diagnostics
}

var anchorPattern = regexp.MustCompile(`<a name="([^"]+)"></a>`)

// ExtractLinks parses markdown source and returns every link destination,
// including autolinks. Image destinations are not collected; the generator
// never emits them.
func ExtractLinks(source []byte) []Link {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	var links []Link
	_ = gmast.Walk(doc, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.Link:
			links = append(links, Link{
				Target: string(node.Destination),
				Text:   string(nodeText(node, source)),
			})
		case *gmast.AutoLink:
			links = append(links, Link{Target: string(node.URL(source))})
		}
		return gmast.WalkContinue, nil
	})
	return links
}

// ExtractAnchors returns the names of every explicit anchor element in the
// page. Anchors are emitted as raw HTML, so a plain scan is enough.
func ExtractAnchors(source []byte) []string {
	var anchors []string
	for _, match := range anchorPattern.FindAllSubmatch(source, -1) {
		anchors = append(anchors, string(match[1]))
	}
	return anchors
}

func nodeText(n gmast.Node, source []byte) []byte {
	var out []byte
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*gmast.Text); ok {
			out = append(out, t.Segment.Value(source)...)
		}
	}
	return out
}
