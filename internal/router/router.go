// Package router deterministically maps declarations to output paths and
// in-page anchors, and computes relative links between pages.
package router

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"git.home.luguber.info/inful/apidocgen/internal/model"
)

// DefaultExtension is the output file extension used when none is configured.
const DefaultExtension = ".md"

// Target is the routed location of a declaration: an output page path and,
// for members without their own page, an anchor on that page.
type Target struct {
	Path   string
	Anchor string
}

// String renders the target as path#anchor.
func (t Target) String() string {
	if t.Anchor == "" {
		return t.Path
	}
	return t.Path + "#" + t.Anchor
}

// Router computes page paths with a configurable file extension.
type Router struct {
	extension string
}

// New creates a Router. An empty extension selects DefaultExtension.
func New(extension string) *Router {
	if extension == "" {
		extension = DefaultExtension
	}
	if !strings.HasPrefix(extension, ".") {
		extension = "." + extension
	}
	return &Router{extension: extension}
}

// kindFolder names the per-kind folder a declaration's path segment lives
// under. Kinds without a folder contribute no path segment at all.
func kindFolder(kind model.Kind) (string, bool) {
	switch kind {
	case model.KindClass:
		return "classes", true
	case model.KindEnum:
		return "enums", true
	case model.KindInterface:
		return "interfaces", true
	case model.KindNamespace:
		return "namespaces", true
	case model.KindTypeAlias:
		return "types", true
	case model.KindFunction, model.KindVariable:
		return "variables", true
	}
	return "", false
}

// PathFor maps a declaration to its output location. Kinds that own pages
// get a path assembled from their ancestor chain; member kinds resolve to
// an anchor on their containing page. Kinds with no routing rule simply
// contribute nothing and fall through to their container.
func (r *Router) PathFor(item *model.Declaration) Target {
	if item.Kind.IsMember() {
		container := item.ContainerPage()
		t := Target{Path: "index" + r.extension, Anchor: anchorFor(item)}
		if container != nil {
			t.Path = r.PathFor(container).Path
		}
		return t
	}

	var segments []string
	chain := append(item.Ancestors(), item)
	for _, d := range chain {
		if d.Kind.IsWrapper() {
			continue
		}
		folder, ok := kindFolder(d.Kind)
		if !ok {
			continue
		}
		segments = append(segments, folder, slug(d.DisplayName))
	}
	if len(segments) == 0 {
		return Target{Path: "index" + r.extension}
	}
	return Target{Path: strings.Join(segments, "/") + r.extension}
}

// LinkFrom computes the path of target relative to the directory of
// origin's own path. Results not already starting with "./" or "../" get a
// "./" prefix; the target's anchor is preserved.
func (r *Router) LinkFrom(origin, target Target) string {
	rel := relativePath(origin.Path, target.Path)
	if !strings.HasPrefix(rel, "./") && !strings.HasPrefix(rel, "../") {
		rel = "./" + rel
	}
	if target.Anchor != "" {
		rel += "#" + target.Anchor
	}
	return rel
}

// anchorFor builds the in-page anchor name for a member: the lowered
// display name plus a kind suffix, a "-static" suffix for static members,
// and the overload index for overloads beyond the first.
func anchorFor(member *model.Declaration) string {
	suffix := "-property"
	switch member.Kind {
	case model.KindMethod, model.KindMethodSignature:
		suffix = "-method"
	case model.KindProperty, model.KindPropertySignature:
		if member.EventProperty {
			suffix = "-event"
		}
	}
	anchor := slug(member.DisplayName) + suffix
	if member.Static {
		anchor += "-static"
	}
	if member.OverloadIndex > 1 {
		anchor += fmt.Sprintf("-%d", member.OverloadIndex)
	}
	return anchor
}

// slug lower-cases a display name into a stable path/anchor segment.
// Names are NFC-normalized first so visually identical names in decomposed
// form route to the same file.
func slug(name string) string {
	return strings.ToLower(norm.NFC.String(name))
}

// relativePath computes target relative to the directory containing
// origin, using forward slashes regardless of platform.
func relativePath(origin, target string) string {
	originDirs := splitDirs(origin)
	targetParts := strings.Split(target, "/")
	targetDirs := targetParts[:len(targetParts)-1]

	common := 0
	for common < len(originDirs) && common < len(targetDirs) && originDirs[common] == targetDirs[common] {
		common++
	}

	var b strings.Builder
	for i := common; i < len(originDirs); i++ {
		b.WriteString("../")
	}
	remainder := append(append([]string{}, targetDirs[common:]...), targetParts[len(targetParts)-1])
	b.WriteString(strings.Join(remainder, "/"))
	return b.String()
}

func splitDirs(p string) []string {
	parts := strings.Split(p, "/")
	if len(parts) <= 1 {
		return nil
	}
	return parts[:len(parts)-1]
}
