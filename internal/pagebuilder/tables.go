package pagebuilder

import (
	"sort"

	"git.home.luguber.info/inful/apidocgen/internal/docnodes"
	"git.home.luguber.info/inful/apidocgen/internal/hierarchy"
	"git.home.luguber.info/inful/apidocgen/internal/members"
	"git.home.luguber.info/inful/apidocgen/internal/model"
	"git.home.luguber.info/inful/apidocgen/internal/router"
)

// appendKindTables dispatches the kind-specific tail of a body: member
// tables for containers, parameter/return blocks for callables, the
// member table for enums.
func (r *buildRun) appendKindTables(out *docnodes.Section, item *model.Declaration, origin router.Target, level int) error {
	switch item.Kind {
	case model.KindPackage, model.KindNamespace:
		return r.appendContainerTables(out, item, origin, level)
	case model.KindClass, model.KindInterface:
		return r.appendMemberTables(out, item, origin, level)
	case model.KindMethod, model.KindMethodSignature, model.KindFunction:
		r.appendParameters(out, item, origin)
		r.appendReturns(out, item, origin)
	case model.KindEnum:
		r.appendEnumMembers(out, item, origin, level)
	}
	return nil
}

// containerCategories fixes the order and naming of the package and
// namespace member tables.
var containerCategories = []struct {
	kind     model.Kind
	title    string
	singular string
}{
	{model.KindClass, "Classes", "Class"},
	{model.KindEnum, "Enumerations", "Enumeration"},
	{model.KindFunction, "Functions", "Function"},
	{model.KindInterface, "Interfaces", "Interface"},
	{model.KindNamespace, "Namespaces", "Namespace"},
	{model.KindVariable, "Variables", "Variable"},
	{model.KindTypeAlias, "Type Aliases", "Type Alias"},
}

// appendContainerTables renders one table per populated category and
// recurses into every listed member's page, depth-first.
func (r *buildRun) appendContainerTables(out *docnodes.Section, item *model.Declaration, origin router.Target, level int) error {
	children := pageMembers(item)

	for _, category := range containerCategories {
		var listed []*model.Declaration
		for _, child := range children {
			if child.Kind == category.kind {
				listed = append(listed, child)
			}
		}
		if len(listed) == 0 {
			continue
		}
		sort.Slice(listed, func(i, j int) bool { return listed[i].DisplayName < listed[j].DisplayName })

		table := &docnodes.Table{Header: []*docnodes.Section{
			docnodes.Cell(docnodes.Text(category.singular)),
			docnodes.Cell(docnodes.Text("Description")),
		}}
		for _, member := range listed {
			table.Rows = append(table.Rows, []*docnodes.Section{
				docnodes.Cell(&docnodes.LinkTag{
					Text:    member.DisplayName,
					DocPath: r.router.LinkFrom(origin, r.router.PathFor(member)),
				}),
				r.descriptionCell(member, nil, origin),
			})
		}
		out.Children = append(out.Children,
			&docnodes.Heading{Level: level, Title: category.title},
			table,
		)

		for _, member := range listed {
			if err := r.buildPage(member); err != nil {
				return err
			}
		}
	}
	return nil
}

// pageMembers returns the declarations a container lists: a package
// exposes its top-level members through entry-point wrappers.
func pageMembers(item *model.Declaration) []*model.Declaration {
	var out []*model.Declaration
	for _, m := range item.Members {
		if m.Kind == model.KindEntryPoint {
			out = append(out, m.Members...)
			continue
		}
		out = append(out, m)
	}
	return out
}

// memberCategories fixes the order and naming of the class/interface
// member tables; static members come first.
var memberCategories = []struct {
	title  string
	static bool
	match  func(*model.Declaration) bool
}{
	{"Static Events", true, isEvent},
	{"Static Properties", true, isPlainProperty},
	{"Static Methods", true, isMethod},
	{"Events", false, isEvent},
	{"Properties", false, isPlainProperty},
	{"Methods", false, isMethod},
}

func isEvent(d *model.Declaration) bool {
	return (d.Kind == model.KindProperty || d.Kind == model.KindPropertySignature) && d.EventProperty
}

func isPlainProperty(d *model.Declaration) bool {
	return (d.Kind == model.KindProperty || d.Kind == model.KindPropertySignature) && !d.EventProperty
}

func isMethod(d *model.Declaration) bool {
	return d.Kind == model.KindMethod || d.Kind == model.KindMethodSignature
}

// appendMemberTables renders the class/interface member tables followed
// by the anchored detail sections for the item's own members, one heading
// level deeper than the table headings.
func (r *buildRun) appendMemberTables(out *docnodes.Section, item *model.Declaration, origin router.Target, level int) error {
	resolved := members.Resolve(item, r.graph)

	var details []detailGroup

	for _, category := range memberCategories {
		var listed []members.ResolvedMember
		for _, res := range resolved {
			rep := res.Representative()
			if rep.Static == category.static && category.match(rep) {
				listed = append(listed, res)
			}
		}
		if len(listed) == 0 {
			continue
		}

		table := &docnodes.Table{Header: []*docnodes.Section{
			docnodes.Cell(docnodes.Text(memberColumn(category.title))),
			docnodes.Cell(docnodes.Text("Description")),
		}}
		var own []members.ResolvedMember
		for _, res := range listed {
			rep := res.Representative()
			table.Rows = append(table.Rows, []*docnodes.Section{
				docnodes.Cell(&docnodes.LinkTag{
					Text:    res.Name,
					DocPath: r.router.LinkFrom(origin, r.router.PathFor(rep)),
				}),
				r.descriptionCell(rep, res.Parents, origin),
			})
			if res.Own != nil {
				own = append(own, res)
			}
		}
		out.Children = append(out.Children,
			&docnodes.Heading{Level: level, Title: category.title},
			table,
		)
		if len(own) > 0 {
			// Static and instance members share one detail section per
			// member category.
			details = addDetails(details, detailTitle(category.title), own)
		}
	}

	for _, group := range details {
		out.Children = append(out.Children, &docnodes.Heading{Level: level, Title: group.title})
		for _, res := range group.own {
			target := r.router.PathFor(res.Own)
			if target.Anchor != "" {
				out.Children = append(out.Children, &docnodes.Anchor{ID: target.Anchor})
			}
			if err := r.buildBody(out, res.Own, &res, origin, level+1); err != nil {
				return err
			}
		}
	}
	return nil
}

// detailGroup collects the own members rendered under one "…Details"
// heading.
type detailGroup struct {
	title string
	own   []members.ResolvedMember
}

// addDetails appends own members to the group with the given title,
// creating the group on first use.
func addDetails(details []detailGroup, title string, own []members.ResolvedMember) []detailGroup {
	for i := range details {
		if details[i].title == title {
			details[i].own = append(details[i].own, own...)
			return details
		}
	}
	return append(details, detailGroup{title: title, own: own})
}

// detailTitle maps a member table title to its detail section heading.
func detailTitle(tableTitle string) string {
	switch tableTitle {
	case "Static Events", "Events":
		return "Event Details"
	case "Static Properties", "Properties":
		return "Property Details"
	default:
		return "Method Details"
	}
}

func memberColumn(tableTitle string) string {
	switch tableTitle {
	case "Static Events", "Events":
		return "Event"
	case "Static Properties", "Properties":
		return "Property"
	default:
		return "Method"
	}
}

// appendParameters renders the callable's parameters table; omitted for
// parameterless callables.
func (r *buildRun) appendParameters(out *docnodes.Section, item *model.Declaration, origin router.Target) {
	if len(item.Parameters) == 0 {
		return
	}
	table := &docnodes.Table{Header: []*docnodes.Section{
		docnodes.Cell(docnodes.Text("Parameter")),
		docnodes.Cell(docnodes.Text("Type")),
		docnodes.Cell(docnodes.Text("Description")),
	}}
	for _, param := range item.Parameters {
		description := &docnodes.Section{}
		if item.Comment != nil {
			description.Children = r.renderBlocks(item.Comment.ParamContent(param.Name), item, origin)
		}
		table.Rows = append(table.Rows, []*docnodes.Section{
			docnodes.Cell(docnodes.Text(param.Name)),
			r.typeCell(param.TypeText, item, origin),
			description,
		})
	}
	out.Children = append(out.Children,
		docnodes.Para(docnodes.Bold("Parameters:")),
		table,
	)
}

// appendReturns renders the "Returns:" block; the declared return type
// degrades to a placeholder when the excerpt carries none.
func (r *buildRun) appendReturns(out *docnodes.Section, item *model.Declaration, origin router.Target) {
	returnType := item.ReturnTypeText
	if returnType == "" {
		returnType = "(not declared)"
	}
	out.Children = append(out.Children,
		docnodes.Para(docnodes.Bold("Returns:")),
		docnodes.Para(docnodes.Text(returnType)),
	)
	if item.Comment != nil && !model.NodesEmpty(item.Comment.Returns) {
		out.Children = append(out.Children, r.renderBlocks(item.Comment.Returns, item, origin)...)
	}
}

// appendEnumMembers renders the enum's member table in declaration order;
// enum member order is part of the API surface.
func (r *buildRun) appendEnumMembers(out *docnodes.Section, item *model.Declaration, origin router.Target, level int) {
	var rows [][]*docnodes.Section
	for _, member := range item.Members {
		if member.Kind != model.KindEnumMember {
			continue
		}
		value := docnodes.Cell()
		if member.InitializerText != "" {
			value = docnodes.Cell(&docnodes.CodeSpan{Code: member.InitializerText})
		}
		rows = append(rows, []*docnodes.Section{
			docnodes.Cell(docnodes.Text(member.DisplayName)),
			value,
			r.descriptionCell(member, nil, origin),
		})
	}
	if len(rows) == 0 {
		return
	}
	out.Children = append(out.Children,
		&docnodes.Heading{Level: level, Title: "Enumeration Members"},
		&docnodes.Table{
			Header: []*docnodes.Section{
				docnodes.Cell(docnodes.Text("Member")),
				docnodes.Cell(docnodes.Text("Value")),
				docnodes.Cell(docnodes.Text("Description")),
			},
			Rows: rows,
		},
	)
}

// descriptionCell renders a member's summary (falling back through its
// inheritance chain) as a table cell.
func (r *buildRun) descriptionCell(item *model.Declaration, chain []*model.Declaration, origin router.Target) *docnodes.Section {
	summary := firstNonEmpty(item, chain, func(c *model.DocComment) []*model.CommentNode { return c.Summary })
	if summary == nil {
		return &docnodes.Section{}
	}
	return &docnodes.Section{Children: r.renderBlocks(summary, item, origin)}
}

// typeCell renders a type excerpt, cross-linked when its leading
// identifier resolves in the type table.
func (r *buildRun) typeCell(typeText string, from *model.Declaration, origin router.Target) *docnodes.Section {
	if typeText == "" {
		return &docnodes.Section{}
	}
	if name := hierarchy.ParseBaseTypeName(typeText); name != "" {
		if target := r.table.ResolveFrom(name, from); target != nil {
			return docnodes.Cell(&docnodes.LinkTag{
				Text:    typeText,
				DocPath: r.router.LinkFrom(origin, r.router.PathFor(target)),
			})
		}
	}
	return docnodes.Cell(docnodes.Text(typeText))
}
