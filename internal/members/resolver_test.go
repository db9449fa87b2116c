package members

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/apidocgen/internal/hierarchy"
	"git.home.luguber.info/inful/apidocgen/internal/model"
)

func buildPackage(members ...*model.Declaration) (*model.Declaration, *hierarchy.Graph) {
	pkg := &model.Declaration{
		Kind:        model.KindPackage,
		DisplayName: "lib",
		Members: []*model.Declaration{
			{Kind: model.KindEntryPoint, Members: members},
		},
	}
	pkg.AttachParents()
	_, graph := hierarchy.Build(pkg)
	return pkg, graph
}

func method(name string) *model.Declaration {
	return &model.Declaration{Kind: model.KindMethod, DisplayName: name}
}

func methodSig(name string) *model.Declaration {
	return &model.Declaration{Kind: model.KindMethodSignature, DisplayName: name}
}

func TestResolve_OwnOnly(t *testing.T) {
	dog := &model.Declaration{
		Kind:        model.KindClass,
		DisplayName: "Dog",
		Members:     []*model.Declaration{method("bark"), method("age")},
	}
	_, graph := buildPackage(dog)

	resolved := Resolve(dog, graph)

	require.Len(t, resolved, 2)
	require.Equal(t, "age", resolved[0].Name)
	require.Equal(t, "bark", resolved[1].Name)
	require.Empty(t, resolved[0].Parents)
	require.NotNil(t, resolved[1].Own)
	require.Equal(t, AnnotationNone, Annotate(resolved[1]))
}

func TestResolve_InheritedOnly(t *testing.T) {
	animal := &model.Declaration{
		Kind:        model.KindClass,
		DisplayName: "Animal",
		Members:     []*model.Declaration{method("eat")},
	}
	dog := &model.Declaration{
		Kind:        model.KindClass,
		DisplayName: "Dog",
		ExtendsText: "Animal",
	}
	_, graph := buildPackage(animal, dog)

	resolved := Resolve(dog, graph)

	require.Len(t, resolved, 1)
	require.Equal(t, "eat", resolved[0].Name)
	require.Nil(t, resolved[0].Own)
	require.Len(t, resolved[0].Parents, 1)
	require.Same(t, animal.Members[0], resolved[0].Parents[0])
	require.Equal(t, AnnotationInheritedFrom, Annotate(resolved[0]))
	require.Same(t, animal.Members[0], resolved[0].Representative())
}

func TestResolve_OverrideAndImplement(t *testing.T) {
	speakSig := methodSig("speak")
	animal := &model.Declaration{
		Kind:        model.KindInterface,
		DisplayName: "Animal",
		Members:     []*model.Declaration{speakSig},
	}
	baseSpeak := method("speak")
	base := &model.Declaration{
		Kind:        model.KindClass,
		DisplayName: "Base",
		Members:     []*model.Declaration{baseSpeak, method("walk")},
	}
	dog := &model.Declaration{
		Kind:            model.KindClass,
		DisplayName:     "Dog",
		ExtendsText:     "Base",
		ImplementsTexts: []string{"Animal"},
		Members:         []*model.Declaration{method("speak")},
	}
	_, graph := buildPackage(animal, base, dog)

	resolved := Resolve(dog, graph)

	byName := make(map[string]ResolvedMember)
	for _, m := range resolved {
		byName[m.Name] = m
	}

	speak := byName["speak"]
	require.NotNil(t, speak.Own)
	// Both direct parents sit at level 1; the class parent is walked first.
	require.Equal(t, []*model.Declaration{baseSpeak, speakSig}, speak.Parents)
	require.Equal(t, AnnotationOverrides, Annotate(speak))

	walk := byName["walk"]
	require.Nil(t, walk.Own)
	require.Equal(t, AnnotationInheritedFrom, Annotate(walk))
}

func TestAnnotate_ImplementsAcrossSignatureBoundary(t *testing.T) {
	sig := methodSig("speak")
	impl := method("speak")

	require.Equal(t, AnnotationImplements, Annotate(ResolvedMember{
		Name: "speak", Own: impl, Parents: []*model.Declaration{sig},
	}))
	require.Equal(t, AnnotationImplements, Annotate(ResolvedMember{
		Name: "speak", Own: sig, Parents: []*model.Declaration{impl},
	}))
	require.Equal(t, AnnotationOverrides, Annotate(ResolvedMember{
		Name: "speak", Own: impl, Parents: []*model.Declaration{method("speak")},
	}))
}

func TestResolve_ShadowedThenRedeclaredNameKeepsBothLevels(t *testing.T) {
	// grandparent and parent both declare "id"; the chain keeps one entry
	// per level, nearest first.
	grandID := method("id")
	grand := &model.Declaration{
		Kind:        model.KindClass,
		DisplayName: "Grand",
		Members:     []*model.Declaration{grandID},
	}
	parentID := method("id")
	parent := &model.Declaration{
		Kind:        model.KindClass,
		DisplayName: "Parent",
		ExtendsText: "Grand",
		Members:     []*model.Declaration{parentID},
	}
	child := &model.Declaration{
		Kind:        model.KindClass,
		DisplayName: "Child",
		ExtendsText: "Parent",
	}
	_, graph := buildPackage(grand, parent, child)

	resolved := Resolve(child, graph)

	require.Len(t, resolved, 1)
	require.Equal(t, []*model.Declaration{parentID, grandID}, resolved[0].Parents)
}

func TestResolve_CycleTerminates(t *testing.T) {
	a := &model.Declaration{
		Kind:        model.KindClass,
		DisplayName: "A",
		ExtendsText: "B",
		Members:     []*model.Declaration{method("onA")},
	}
	b := &model.Declaration{
		Kind:        model.KindClass,
		DisplayName: "B",
		ExtendsText: "A",
		Members:     []*model.Declaration{method("onB")},
	}
	_, graph := buildPackage(a, b)

	resolved := Resolve(a, graph)

	require.Len(t, resolved, 2)
	names := []string{resolved[0].Name, resolved[1].Name}
	require.Equal(t, []string{"onA", "onB"}, names)
}

func TestResolve_IdempotentAndSorted(t *testing.T) {
	base := &model.Declaration{
		Kind:        model.KindClass,
		DisplayName: "Base",
		Members:     []*model.Declaration{method("zeta"), method("alpha")},
	}
	item := &model.Declaration{
		Kind:        model.KindClass,
		DisplayName: "Item",
		ExtendsText: "Base",
		Members:     []*model.Declaration{method("mid"), method("alpha")},
	}
	_, graph := buildPackage(base, item)

	first := Resolve(item, graph)
	second := Resolve(item, graph)
	require.Equal(t, first, second)

	var names []string
	for _, m := range first {
		names = append(names, m.Name)
	}
	require.True(t, sort.StringsAreSorted(names))
	require.Equal(t, []string{"alpha", "mid", "zeta"}, names)
}

func TestResolve_OverloadsCollapseToOneEntry(t *testing.T) {
	first := method("load")
	second := method("load")
	first.OverloadIndex = 1
	second.OverloadIndex = 2
	item := &model.Declaration{
		Kind:        model.KindClass,
		DisplayName: "Loader",
		Members:     []*model.Declaration{first, second},
	}
	_, graph := buildPackage(item)

	resolved := Resolve(item, graph)

	require.Len(t, resolved, 1)
	require.Same(t, first, resolved[0].Own)
}
