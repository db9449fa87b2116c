package hierarchy

import (
	"log/slog"
	"regexp"
	"strings"

	"git.home.luguber.info/inful/apidocgen/internal/logfields"
	"git.home.luguber.info/inful/apidocgen/internal/model"
)

// Build constructs the type table and inheritance graph for one package.
// It is total over any input forest: malformed type reference text degrades
// to fallback labels and duplicate names are resolved last-write-wins with
// a logged diagnostic, never an error.
func Build(pkg *model.Declaration) (*TypeTable, *Graph) {
	table := &TypeTable{byName: make(map[string]*model.Declaration)}
	graph := &Graph{relations: make(map[*model.Declaration]*Relations)}

	// Pass 1: breadth-first registration of type names. The visit order is
	// part of the duplicate-name contract (later visit wins), so the queue
	// must stay strictly FIFO.
	var typed []*model.Declaration
	queue := []*model.Declaration{pkg}
	for len(queue) > 0 {
		d := queue[0]
		queue = queue[1:]

		if d.Kind.IsType() {
			name := d.ScopedName()
			if prev, exists := table.byName[name]; exists && prev != d {
				slog.Warn("Duplicate type name; later declaration replaces earlier",
					logfields.ScopedName(name),
					logfields.Kind(string(d.Kind)))
			}
			table.byName[name] = d
			typed = append(typed, d)
		}
		queue = append(queue, d.Members...)
	}

	// Pass 2: forward edges.
	for _, d := range typed {
		switch d.Kind {
		case model.KindClass:
			rel := graph.ensure(d)
			if ref, ok := resolveReference(table, d, d.ExtendsText); ok {
				rel.ParentClass = &ref
			}
			for _, text := range d.ImplementsTexts {
				if ref, ok := resolveReference(table, d, text); ok {
					rel.ParentInterfaces = append(rel.ParentInterfaces, ref)
				}
			}
		case model.KindInterface:
			rel := graph.ensure(d)
			for _, text := range d.ExtendsTexts {
				if ref, ok := resolveReference(table, d, text); ok {
					rel.ParentInterfaces = append(rel.ParentInterfaces, ref)
				}
			}
		}
	}

	// Pass 3: reverse edges. The bucket is chosen by the child's kind:
	// class children land in ChildClasses, interface children in
	// ChildInterfaces, regardless of which clause produced the edge.
	for _, d := range typed {
		if d.Kind != model.KindClass && d.Kind != model.KindInterface {
			continue
		}
		rel := graph.Relations(d)
		var parents []*model.Declaration
		if rel.ParentClass != nil && rel.ParentClass.Resolved() {
			parents = append(parents, rel.ParentClass.Decl)
		}
		for _, ref := range rel.ParentInterfaces {
			if ref.Resolved() {
				parents = append(parents, ref.Decl)
			}
		}
		for _, parent := range parents {
			prel := graph.ensure(parent)
			if d.Kind == model.KindClass {
				prel.ChildClasses = append(prel.ChildClasses, d)
			} else {
				prel.ChildInterfaces = append(prel.ChildInterfaces, d)
			}
		}
	}

	return table, graph
}

// leadingIdentifier matches the leading dot-qualified identifier of a type
// reference, ignoring generic arguments and anything after them.
var leadingIdentifier = regexp.MustCompile(`^[$A-Za-z_][$A-Za-z0-9_]*(?:\s*\.\s*[$A-Za-z_][$A-Za-z0-9_]*)*`)

// ParseBaseTypeName extracts a best-effort base type name from raw
// extends/implements excerpt text. Generic and parameter syntax is
// stripped; only the leading qualified identifier survives. Returns ""
// for text with no leading identifier.
func ParseBaseTypeName(text string) string {
	trimmed := strings.TrimSpace(text)
	match := leadingIdentifier.FindString(trimmed)
	if match == "" {
		return ""
	}
	// Collapse whitespace around the qualifier dots.
	parts := strings.Split(match, ".")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return strings.Join(parts, ".")
}

// resolveReference turns one raw clause into a TypeRef. Empty clauses
// produce no reference at all; unresolvable names degrade to a label.
func resolveReference(table *TypeTable, origin *model.Declaration, text string) (TypeRef, bool) {
	name := ParseBaseTypeName(text)
	if name == "" {
		if strings.TrimSpace(text) == "" {
			return TypeRef{}, false
		}
		// Unparseable but non-empty: keep the raw text as a label.
		return TypeRef{Label: strings.TrimSpace(text)}, true
	}
	if d := table.ResolveFrom(name, origin); d != nil {
		return TypeRef{Decl: d}, true
	}
	slog.Debug("Unresolved type reference; keeping plain-text label",
		logfields.ScopedName(origin.ScopedName()),
		logfields.Target(name))
	return TypeRef{Label: name}, true
}
