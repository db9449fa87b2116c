// Package hierarchy builds the per-package type lookup table and the
// class/interface inheritance graph from loosely-typed reference text.
package hierarchy

import (
	"strings"

	"git.home.luguber.info/inful/apidocgen/internal/model"
)

// TypeTable maps fully scoped names (dot-joined ancestor chains) to the
// owning declaration. Only Class/Interface/Enum/TypeAlias kinds are
// recorded. Keys are unique as last-written: on collision the later-visited
// declaration replaces the earlier one.
type TypeTable struct {
	byName map[string]*model.Declaration
}

// Lookup returns the declaration registered under a fully scoped name.
func (t *TypeTable) Lookup(scopedName string) (*model.Declaration, bool) {
	d, ok := t.byName[scopedName]
	return d, ok
}

// Len returns the number of registered type names.
func (t *TypeTable) Len() int { return len(t.byName) }

// ResolveFrom resolves a (possibly unqualified) type name as seen from
// origin's scope. The origin's enclosing scopes are tried as prefixes, most
// specific first, widening out to the package root; the first scope at
// which prefix.name exists wins. Returns nil when no scope resolves.
func (t *TypeTable) ResolveFrom(name string, origin *model.Declaration) *model.Declaration {
	if name == "" {
		return nil
	}
	var scopes []string
	if origin != nil {
		segments := origin.ScopedNameSegments()
		if len(segments) > 0 {
			segments = segments[:len(segments)-1] // own name is not a scope
		}
		for i := len(segments); i > 0; i-- {
			scopes = append(scopes, strings.Join(segments[:i], "."))
		}
	}
	scopes = append(scopes, "")

	for _, scope := range scopes {
		candidate := name
		if scope != "" {
			candidate = scope + "." + name
		}
		if d, ok := t.byName[candidate]; ok {
			return d
		}
	}
	return nil
}
