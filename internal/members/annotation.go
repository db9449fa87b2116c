package members

// AnnotationKind classifies how a rendered member relates to the nearest
// entry of its inheritance chain.
type AnnotationKind string

const (
	AnnotationNone          AnnotationKind = ""
	AnnotationInheritedFrom AnnotationKind = "Inherited from"
	AnnotationImplements    AnnotationKind = "Implements"
	AnnotationOverrides     AnnotationKind = "Overrides"
)

// Annotate applies the inheritance annotation rule to a resolved member:
// "Inherited from" when the rendered member is the chain entry itself,
// "Implements" when the kinds differ across the signature/implementation
// boundary, "Overrides" otherwise. Members with no chain get no annotation.
func Annotate(m ResolvedMember) AnnotationKind {
	if len(m.Parents) == 0 {
		return AnnotationNone
	}
	if m.Own == nil {
		return AnnotationInheritedFrom
	}
	nearest := m.Parents[0]
	if m.Own.Kind.IsSignature() != nearest.Kind.IsSignature() {
		return AnnotationImplements
	}
	return AnnotationOverrides
}
