package router

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/apidocgen/internal/model"
)

func forest() map[string]*model.Declaration {
	widget := &model.Declaration{
		Kind:        model.KindClass,
		DisplayName: "Widget",
		Members: []*model.Declaration{
			{Kind: model.KindMethod, DisplayName: "render"},
			{Kind: model.KindMethod, DisplayName: "reset", Static: true},
			{Kind: model.KindProperty, DisplayName: "onClose", EventProperty: true},
			{Kind: model.KindProperty, DisplayName: "size"},
			{Kind: model.KindMethod, DisplayName: "load", OverloadIndex: 1},
			{Kind: model.KindMethod, DisplayName: "load", OverloadIndex: 2},
		},
	}
	ns := &model.Declaration{
		Kind:        model.KindNamespace,
		DisplayName: "UI",
		Members:     []*model.Declaration{widget},
	}
	mode := &model.Declaration{Kind: model.KindEnum, DisplayName: "Mode"}
	create := &model.Declaration{Kind: model.KindFunction, DisplayName: "createWidget"}
	pkg := &model.Declaration{
		Kind:        model.KindPackage,
		DisplayName: "my-lib",
		Members: []*model.Declaration{
			{Kind: model.KindEntryPoint, Members: []*model.Declaration{ns, mode, create}},
		},
	}
	pkg.AttachParents()
	return map[string]*model.Declaration{
		"pkg": pkg, "ns": ns, "widget": widget, "mode": mode, "create": create,
		"render":  widget.Members[0],
		"reset":   widget.Members[1],
		"onClose": widget.Members[2],
		"size":    widget.Members[3],
		"load2":   widget.Members[5],
	}
}

func TestPathFor_Pages(t *testing.T) {
	r := New("")
	f := forest()

	require.Equal(t, "index.md", r.PathFor(f["pkg"]).Path)
	require.Equal(t, "namespaces/ui.md", r.PathFor(f["ns"]).Path)
	require.Equal(t, "namespaces/ui/classes/widget.md", r.PathFor(f["widget"]).Path)
	require.Equal(t, "enums/mode.md", r.PathFor(f["mode"]).Path)
	require.Equal(t, "variables/createwidget.md", r.PathFor(f["create"]).Path)
}

func TestPathFor_MemberAnchors(t *testing.T) {
	r := New("")
	f := forest()
	widgetPath := r.PathFor(f["widget"]).Path

	cases := []struct {
		key    string
		anchor string
	}{
		{"render", "render-method"},
		{"reset", "reset-method-static"},
		{"onClose", "onclose-event"},
		{"size", "size-property"},
		{"load2", "load-method-2"},
	}
	for _, tc := range cases {
		target := r.PathFor(f[tc.key])
		require.Equal(t, widgetPath, target.Path, tc.key)
		require.Equal(t, tc.anchor, target.Anchor, tc.key)
	}
}

func TestPathFor_CustomExtension(t *testing.T) {
	r := New("markdown")
	f := forest()
	require.Equal(t, "enums/mode.markdown", r.PathFor(f["mode"]).Path)
	require.Equal(t, "index.markdown", r.PathFor(f["pkg"]).Path)
}

func TestLinkFrom(t *testing.T) {
	r := New("")

	cases := []struct {
		origin string
		target Target
		want   string
	}{
		{"index.md", Target{Path: "enums/mode.md"}, "./enums/mode.md"},
		{"enums/mode.md", Target{Path: "index.md"}, "../index.md"},
		{"namespaces/ui/classes/widget.md", Target{Path: "enums/mode.md"}, "../../../enums/mode.md"},
		{"enums/mode.md", Target{Path: "enums/other.md"}, "./other.md"},
		{"index.md", Target{Path: "index.md", Anchor: "x-method"}, "./index.md#x-method"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, r.LinkFrom(Target{Path: tc.origin}, tc.target), "%s -> %s", tc.origin, tc.target.Path)
	}
}

// Round trip: resolving LinkFrom's result against the origin directory must
// land exactly on PathFor(target).
func TestLinkFrom_RoundTrip(t *testing.T) {
	r := New("")
	f := forest()

	pages := []*model.Declaration{f["pkg"], f["ns"], f["widget"], f["mode"], f["create"]}
	for _, origin := range pages {
		for _, target := range pages {
			o := r.PathFor(origin)
			tt := r.PathFor(target)
			rel := r.LinkFrom(o, tt)
			require.Equal(t, tt.Path, resolveRelative(o.Path, rel),
				"from %s to %s", o.Path, tt.Path)
		}
	}
}

// resolveRelative applies a ./ or ../ relative link to the directory of
// origin, mirroring what a markdown renderer would do.
func resolveRelative(origin, rel string) string {
	dir := ""
	if i := strings.LastIndex(origin, "/"); i >= 0 {
		dir = origin[:i]
	}
	parts := []string{}
	if dir != "" {
		parts = strings.Split(dir, "/")
	}
	for _, seg := range strings.Split(rel, "/") {
		switch seg {
		case ".", "":
			continue
		case "..":
			parts = parts[:len(parts)-1]
		default:
			parts = append(parts, seg)
		}
	}
	return strings.Join(parts, "/")
}

func TestSlug_NormalizesUnicode(t *testing.T) {
	// "é" in decomposed form (e + combining acute) must match the
	// precomposed form after slugging.
	decomposed := "Café"
	precomposed := "Café"
	require.Equal(t, slug(precomposed), slug(decomposed))
}

func TestTargetString(t *testing.T) {
	require.Equal(t, "a/b.md", Target{Path: "a/b.md"}.String())
	require.Equal(t, "a/b.md#x", Target{Path: "a/b.md", Anchor: "x"}.String())
}
