// Package model holds the in-memory declaration forest consumed by the
// generator core. The forest is produced by the loader and is read-only to
// every downstream component.
package model

import "strings"

// Parameter is one formal parameter of a callable declaration.
type Parameter struct {
	Name     string
	TypeText string
}

// Declaration is one exported API item: a package, namespace, class,
// interface, enum, callable or value, with its containment children.
//
// Type reference fields (ExtendsText, ImplementsTexts, ExtendsTexts) carry
// loosely-typed excerpt text; resolving them against the type table is the
// hierarchy resolver's job.
type Declaration struct {
	Kind        Kind
	DisplayName string
	Members     []*Declaration
	Parent      *Declaration
	Comment     *DocComment

	ReleaseTag    ReleaseTag
	Static        bool
	EventProperty bool
	// OverloadIndex disambiguates same-named callables; 1 for the first
	// overload, 0 when the callable is not overloaded.
	OverloadIndex int

	// ExcerptText is the declaration source text used for signature blocks.
	ExcerptText string

	ExtendsText     string   // class extends clause
	ImplementsTexts []string // class implements clauses
	ExtendsTexts    []string // interface extends clauses

	Parameters      []Parameter
	ReturnTypeText  string
	TypeText        string // declared type of properties and variables
	InitializerText string // enum member and variable initializers
}

// AttachParents wires Parent pointers through the containment tree rooted
// at d. Loaders call this once after decoding; the tree is immutable after.
func (d *Declaration) AttachParents() {
	for _, m := range d.Members {
		m.Parent = d
		m.AttachParents()
	}
}

// Ancestors returns d's containment ancestors ordered outermost-first,
// excluding entry-point wrappers (packages are included; breadcrumbs and
// page lookups need them).
func (d *Declaration) Ancestors() []*Declaration {
	var chain []*Declaration
	for p := d.Parent; p != nil; p = p.Parent {
		if p.Kind == KindEntryPoint {
			continue
		}
		chain = append([]*Declaration{p}, chain...)
	}
	return chain
}

// ScopedName returns the dot-joined chain of display names from the
// outermost non-wrapper ancestor down to d itself. Wrapper nodes (package,
// entry point) contribute nothing, so a class C in namespace N is "N.C".
func (d *Declaration) ScopedName() string {
	return strings.Join(d.ScopedNameSegments(), ".")
}

// ScopedNameSegments returns the individual segments of ScopedName.
func (d *Declaration) ScopedNameSegments() []string {
	var segments []string
	for p := d; p != nil; p = p.Parent {
		if p.Kind.IsWrapper() {
			continue
		}
		segments = append([]string{p.DisplayName}, segments...)
	}
	return segments
}

// Package returns the containing package declaration, or d itself if d is
// a package. Returns nil for detached declarations.
func (d *Declaration) Package() *Declaration {
	for p := d; p != nil; p = p.Parent {
		if p.Kind == KindPackage {
			return p
		}
	}
	return nil
}

// ContainerPage returns the nearest declaration (possibly d itself) that
// owns a standalone page.
func (d *Declaration) ContainerPage() *Declaration {
	for p := d; p != nil; p = p.Parent {
		if p.Kind.OwnsPage() {
			return p
		}
	}
	return nil
}
