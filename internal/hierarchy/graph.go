package hierarchy

import "git.home.luguber.info/inful/apidocgen/internal/model"

// TypeRef is a reference to a base type: either a resolved declaration or a
// plain-text fallback label for names that did not resolve in the table.
type TypeRef struct {
	Decl  *model.Declaration
	Label string
}

// Resolved reports whether the reference points at a real declaration.
func (r TypeRef) Resolved() bool { return r.Decl != nil }

// Name returns the display name for rendering: the declaration's name when
// resolved, the fallback label otherwise.
func (r TypeRef) Name() string {
	if r.Decl != nil {
		return r.Decl.DisplayName
	}
	return r.Label
}

// Relations holds the inheritance edges recorded for one class or
// interface declaration. Forward references (parents) may be fallback
// labels; reverse references (children) are always real declarations.
type Relations struct {
	ParentClass      *TypeRef
	ParentInterfaces []TypeRef
	ChildClasses     []*model.Declaration
	ChildInterfaces  []*model.Declaration
}

// Graph is the inheritance graph for one package, keyed by declaration
// identity. It is built in two deterministic passes (forward edges, then
// reverse edges) and immutable afterwards.
type Graph struct {
	relations map[*model.Declaration]*Relations
}

var emptyRelations = &Relations{}

// Relations returns the edges recorded for a declaration. Declarations
// without edges get a shared empty record, never nil.
func (g *Graph) Relations(d *model.Declaration) *Relations {
	if r, ok := g.relations[d]; ok {
		return r
	}
	return emptyRelations
}

// ResolvedParents returns d's direct resolved parents, parent class first,
// then parent interfaces in declaration order. Fallback labels contribute
// nothing.
func (g *Graph) ResolvedParents(d *model.Declaration) []*model.Declaration {
	rel := g.Relations(d)
	var parents []*model.Declaration
	if rel.ParentClass != nil && rel.ParentClass.Resolved() {
		parents = append(parents, rel.ParentClass.Decl)
	}
	for _, ref := range rel.ParentInterfaces {
		if ref.Resolved() {
			parents = append(parents, ref.Decl)
		}
	}
	return parents
}

func (g *Graph) ensure(d *model.Declaration) *Relations {
	if r, ok := g.relations[d]; ok {
		return r
	}
	r := &Relations{}
	g.relations[d] = r
	return r
}
