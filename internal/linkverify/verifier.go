// Package linkverify checks a generated documentation tree for broken
// relative links and missing anchors. External links are reported as
// skipped rather than fetched; verification never touches the network.
package linkverify

import (
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"git.home.luguber.info/inful/apidocgen/internal/foundation/errors"
	"git.home.luguber.info/inful/apidocgen/internal/frontmatter"
	"git.home.luguber.info/inful/apidocgen/internal/logfields"
)

// Issue is one verification finding.
type Issue struct {
	Page   string // Page path relative to the root, slash separated
	Target string // Link destination as written
	Reason string
}

// Result summarizes one verification pass.
type Result struct {
	Pages  int
	Links  int
	Issues []Issue
}

// Ok reports whether the pass found no issues.
func (r *Result) Ok() bool { return len(r.Issues) == 0 }

// Verifier checks the pages under one output directory.
type Verifier struct {
	root string
}

// New creates a Verifier rooted at the generator's output directory.
func New(root string) *Verifier {
	return &Verifier{root: root}
}

type page struct {
	path    string // slash separated, relative to root
	links   []Link
	anchors map[string]bool
}

// Verify walks every markdown file under the root and checks each relative
// link against the files and anchors that actually exist. Scheme links
// (http, https, mailto) are skipped.
func (v *Verifier) Verify() (*Result, error) {
	pages, err := v.collect()
	if err != nil {
		return nil, err
	}

	byPath := make(map[string]*page, len(pages))
	for _, p := range pages {
		byPath[p.path] = p
	}

	result := &Result{Pages: len(pages)}
	for _, p := range pages {
		for _, link := range p.links {
			result.Links++
			if issue := verifyLink(p, link, byPath); issue != nil {
				result.Issues = append(result.Issues, *issue)
			}
		}
	}

	slog.Info("Link verification finished",
		logfields.Pages(result.Pages),
		slog.Int("links", result.Links),
		slog.Int("issues", len(result.Issues)))
	return result, nil
}

func (v *Verifier) collect() ([]*page, error) {
	var pages []*page
	err := filepath.WalkDir(v.root, func(name string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			return nil
		}

		raw, err := os.ReadFile(name)
		if err != nil {
			return err
		}
		body := stripFrontmatter(raw)

		rel, err := filepath.Rel(v.root, name)
		if err != nil {
			return err
		}

		p := &page{
			path:    filepath.ToSlash(rel),
			links:   ExtractLinks(body),
			anchors: make(map[string]bool),
		}
		for _, anchor := range ExtractAnchors(body) {
			p.anchors[anchor] = true
		}
		pages = append(pages, p)
		return nil
	})
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to scan output directory").
			WithContext("path", v.root).
			Build()
	}

	sort.Slice(pages, func(i, j int) bool { return pages[i].path < pages[j].path })
	return pages, nil
}

func verifyLink(from *page, link Link, byPath map[string]*page) *Issue {
	target := link.Target
	if target == "" {
		return &Issue{Page: from.path, Target: target, Reason: "empty link target"}
	}
	if isExternal(target) {
		return nil
	}

	file, fragment, _ := strings.Cut(target, "#")

	dest := from
	if file != "" {
		resolved := path.Join(path.Dir(from.path), file)
		if resolved == ".." || strings.HasPrefix(resolved, "../") {
			return &Issue{Page: from.path, Target: target, Reason: "target escapes the output directory"}
		}
		var ok bool
		dest, ok = byPath[resolved]
		if !ok {
			return &Issue{Page: from.path, Target: target, Reason: "target page does not exist"}
		}
	}

	if fragment != "" && !dest.anchors[fragment] {
		return &Issue{Page: from.path, Target: target, Reason: "anchor not found in target page"}
	}
	return nil
}

func isExternal(target string) bool {
	return strings.Contains(target, "://") || strings.HasPrefix(target, "mailto:")
}

func stripFrontmatter(raw []byte) []byte {
	_, body, _, err := frontmatter.Split(raw)
	if err != nil {
		// A malformed header is a content problem, not a verifier error;
		// scan the whole file instead.
		return raw
	}
	return body
}
