package pagebuilder

import (
	"git.home.luguber.info/inful/apidocgen/internal/docnodes"
	"git.home.luguber.info/inful/apidocgen/internal/hierarchy"
	"git.home.luguber.info/inful/apidocgen/internal/model"
	"git.home.luguber.info/inful/apidocgen/internal/router"
)

// A follow function selects which inheritance relation a diagram descends.
type follow func(*hierarchy.Relations) []hierarchy.TypeRef

func followParentInterfaces(rel *hierarchy.Relations) []hierarchy.TypeRef {
	return rel.ParentInterfaces
}

func followChildInterfaces(rel *hierarchy.Relations) []hierarchy.TypeRef {
	return wrapDecls(rel.ChildInterfaces)
}

func followChildClasses(rel *hierarchy.Relations) []hierarchy.TypeRef {
	return wrapDecls(rel.ChildClasses)
}

func wrapDecls(decls []*model.Declaration) []hierarchy.TypeRef {
	refs := make([]hierarchy.TypeRef, 0, len(decls))
	for _, d := range decls {
		refs = append(refs, hierarchy.TypeRef{Decl: d})
	}
	return refs
}

// appendDiagram renders one single-relation diagram under its own
// heading. Diagrams with nothing beneath the item are omitted entirely,
// heading included.
func (r *buildRun) appendDiagram(out *docnodes.Section, item *model.Declaration, origin router.Target, level int, title string, f follow) {
	if len(f(r.graph.Relations(item))) == 0 {
		return
	}
	visited := map[*model.Declaration]bool{}
	list := &docnodes.List{Items: r.subtree(hierarchy.TypeRef{Decl: item}, item, origin, f, visited)}
	out.Children = append(out.Children,
		&docnodes.Heading{Level: level, Title: title},
		list,
	)
}

// appendClassHierarchy renders the class diagram: the parent-class chain
// walked up to its root, with the item's descendant subtree grafted in at
// the item's position.
func (r *buildRun) appendClassHierarchy(out *docnodes.Section, item *model.Declaration, origin router.Target, level int) {
	rel := r.graph.Relations(item)
	if rel.ParentClass == nil && len(rel.ChildClasses) == 0 {
		return
	}

	visited := map[*model.Declaration]bool{}
	items := r.subtree(hierarchy.TypeRef{Decl: item}, item, origin, followChildClasses, visited)

	// Walk upward; every step nests the tree built so far one level
	// deeper under its parent. An unresolved parent ends the climb with a
	// plain-text root.
	for cur := item; ; {
		parent := r.graph.Relations(cur).ParentClass
		if parent == nil {
			break
		}
		items = []docnodes.Node{
			r.diagramNode(*parent, item, origin),
			&docnodes.List{Items: items},
		}
		if parent.Decl == nil || visited[parent.Decl] {
			break
		}
		visited[parent.Decl] = true
		cur = parent.Decl
	}

	out.Children = append(out.Children,
		&docnodes.Heading{Level: level, Title: "Class Hierarchy"},
		&docnodes.List{Items: items},
	)
}

// subtree renders ref and, depth-first, everything reachable through f.
// The returned nodes are the item inline followed by an optional nested
// list; cycles terminate at the first revisit.
func (r *buildRun) subtree(ref hierarchy.TypeRef, current *model.Declaration, origin router.Target, f follow, visited map[*model.Declaration]bool) []docnodes.Node {
	items := []docnodes.Node{r.diagramNode(ref, current, origin)}
	if ref.Decl == nil || visited[ref.Decl] {
		return items
	}
	visited[ref.Decl] = true

	children := f(r.graph.Relations(ref.Decl))
	if len(children) == 0 {
		return items
	}
	nested := &docnodes.List{}
	for _, child := range children {
		nested.Items = append(nested.Items, r.subtree(child, current, origin, f, visited)...)
	}
	return append(items, nested)
}

// diagramNode renders one diagram entry: the viewed item bold and
// unlinked, resolved relatives as links, unresolved names as plain text.
func (r *buildRun) diagramNode(ref hierarchy.TypeRef, current *model.Declaration, origin router.Target) docnodes.Node {
	if ref.Decl == current {
		return docnodes.Bold(current.DisplayName)
	}
	if !ref.Resolved() {
		return docnodes.Text(ref.Name())
	}
	return &docnodes.LinkTag{
		Text:    ref.Decl.DisplayName,
		DocPath: r.router.LinkFrom(origin, r.router.PathFor(ref.Decl)),
	}
}
