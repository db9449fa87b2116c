// Package members merges a class or interface's own members with inherited
// ones into a single ordered, de-duplicated view.
package members

import (
	"sort"

	"git.home.luguber.info/inful/apidocgen/internal/hierarchy"
	"git.home.luguber.info/inful/apidocgen/internal/model"
)

// ResolvedMember is the merged view of one member name across a
// declaration and its ancestors. Parents is the inheritance chain for the
// name, nearest ancestor first. At least one of Own/Parents[0] is present.
type ResolvedMember struct {
	Name    string
	Own     *model.Declaration
	Parents []*model.Declaration
}

// Representative returns the declaration rendered for this entry: the own
// member when present, otherwise the nearest inherited one.
func (m ResolvedMember) Representative() *model.Declaration {
	if m.Own != nil {
		return m.Own
	}
	return m.Parents[0]
}

// Resolve merges item's declared members with members inherited through
// the graph, one entry per distinct name, ordered by name ascending
// (ordinal comparison). Overloaded callables sharing a name collapse to a
// single undifferentiated entry per level.
func Resolve(item *model.Declaration, graph *hierarchy.Graph) []ResolvedMember {
	own := ownMembers(item)
	chains, chainNames := inheritedChains(item, graph)

	// Union of names, sorted once; both inputs are already de-duplicated.
	seen := make(map[string]bool, len(own)+len(chains))
	var names []string
	for _, m := range item.Members {
		if m.Kind.IsMember() && !seen[m.DisplayName] {
			seen[m.DisplayName] = true
			names = append(names, m.DisplayName)
		}
	}
	for _, name := range chainNames {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)

	out := make([]ResolvedMember, 0, len(names))
	for _, name := range names {
		out = append(out, ResolvedMember{
			Name:    name,
			Own:     own[name],
			Parents: chains[name],
		})
	}
	return out
}

// ownMembers indexes item's declared members by name; the first declared
// member wins for overloaded names.
func ownMembers(item *model.Declaration) map[string]*model.Declaration {
	own := make(map[string]*model.Declaration)
	for _, m := range item.Members {
		if !m.Kind.IsMember() {
			continue
		}
		if _, exists := own[m.DisplayName]; !exists {
			own[m.DisplayName] = m
		}
	}
	return own
}

// inheritedChains walks the graph upward breadth-first, one full ancestor
// ring at a time, accumulating per-name chains ordered nearest-to-farthest.
// A name present at several levels contributes one chain entry per level,
// including levels past the one where it was first seen. Each node is
// visited at most once per walk, which bounds the traversal even when the
// input declares a cycle.
func inheritedChains(item *model.Declaration, graph *hierarchy.Graph) (map[string][]*model.Declaration, []string) {
	chains := make(map[string][]*model.Declaration)
	var order []string

	visited := map[*model.Declaration]bool{item: true}
	level := enqueue(nil, graph.ResolvedParents(item), visited)

	for len(level) > 0 {
		atLevel := make(map[string]bool)
		for _, ancestor := range level {
			for _, m := range ancestor.Members {
				if !m.Kind.IsMember() || atLevel[m.DisplayName] {
					continue
				}
				atLevel[m.DisplayName] = true
				if _, known := chains[m.DisplayName]; !known {
					order = append(order, m.DisplayName)
				}
				chains[m.DisplayName] = append(chains[m.DisplayName], m)
			}
		}

		var next []*model.Declaration
		for _, ancestor := range level {
			next = enqueue(next, graph.ResolvedParents(ancestor), visited)
		}
		level = next
	}
	return chains, order
}

func enqueue(dst []*model.Declaration, parents []*model.Declaration, visited map[*model.Declaration]bool) []*model.Declaration {
	for _, p := range parents {
		if visited[p] {
			continue
		}
		visited[p] = true
		dst = append(dst, p)
	}
	return dst
}
