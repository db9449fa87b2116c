// Package pagebuilder assembles one document node tree per page-owning
// declaration, pulling inheritance data from the graph, merged members
// from the member resolver and link targets from the router.
package pagebuilder

import (
	"git.home.luguber.info/inful/apidocgen/internal/docnodes"
	"git.home.luguber.info/inful/apidocgen/internal/hierarchy"
	"git.home.luguber.info/inful/apidocgen/internal/model"
	"git.home.luguber.info/inful/apidocgen/internal/router"
)

// Page is one output page: the declaration it documents, its routed
// location and the assembled body tree.
type Page struct {
	Item   *model.Declaration
	Title  string
	Target router.Target
	Body   *docnodes.Section
}

// UID returns the page's stable identity: the scoped name of the item, or
// the package name for package pages.
func (p *Page) UID() string {
	if name := p.Item.ScopedName(); name != "" {
		return name
	}
	return p.Item.DisplayName
}

// Builder builds pages for one package. It is cheap to construct and
// carries no per-run state.
type Builder struct {
	table   *hierarchy.TypeTable
	graph   *hierarchy.Graph
	router  *router.Router
	grammar *docnodes.Grammar
}

// New creates a Builder over one package's resolved hierarchy.
func New(table *hierarchy.TypeTable, graph *hierarchy.Graph, rt *router.Router, grammar *docnodes.Grammar) *Builder {
	return &Builder{table: table, graph: graph, router: rt, grammar: grammar}
}

// Grammar returns the grammar table the builder's trees conform to.
func (b *Builder) Grammar() *docnodes.Grammar { return b.grammar }

// BuildPackage builds the package page and, depth-first, one page per
// page-owning declaration reachable through the member tables. Pages come
// back in encounter order, container before contained.
func (b *Builder) BuildPackage(pkg *model.Declaration) ([]*Page, error) {
	run := &buildRun{Builder: b}
	if err := run.buildPage(pkg); err != nil {
		return nil, err
	}
	return run.pages, nil
}

// BuildPage builds a single declaration's page without recursing into
// member pages beyond what its own body requires.
func (b *Builder) BuildPage(item *model.Declaration) (*Page, error) {
	run := &buildRun{Builder: b}
	if err := run.buildPage(item); err != nil {
		return nil, err
	}
	return run.pages[0], nil
}

// buildRun collects the pages of one package traversal.
type buildRun struct {
	*Builder
	pages []*Page
}

func (r *buildRun) buildPage(item *model.Declaration) error {
	title, err := headingTitle(item)
	if err != nil {
		return err
	}
	page := &Page{Item: item, Title: title, Target: r.router.PathFor(item)}
	r.pages = append(r.pages, page)

	body := &docnodes.Section{}
	if err := r.buildBody(body, item, nil, page.Target, 1); err != nil {
		return err
	}
	page.Body = body
	return nil
}
