package model

// Kind identifies what sort of API item a Declaration describes.
type Kind string

const (
	KindPackage           Kind = "Package"
	KindEntryPoint        Kind = "EntryPoint"
	KindNamespace         Kind = "Namespace"
	KindClass             Kind = "Class"
	KindInterface         Kind = "Interface"
	KindEnum              Kind = "Enum"
	KindEnumMember        Kind = "EnumMember"
	KindMethod            Kind = "Method"
	KindMethodSignature   Kind = "MethodSignature"
	KindProperty          Kind = "Property"
	KindPropertySignature Kind = "PropertySignature"
	KindFunction          Kind = "Function"
	KindVariable          Kind = "Variable"
	KindTypeAlias         Kind = "TypeAlias"
)

// IsType reports whether declarations of this kind participate in the
// type table (and therefore in cross-reference resolution).
func (k Kind) IsType() bool {
	switch k {
	case KindClass, KindInterface, KindEnum, KindTypeAlias:
		return true
	}
	return false
}

// OwnsPage reports whether declarations of this kind get a standalone
// output page. Member kinds resolve to anchors on their container's page.
func (k Kind) OwnsPage() bool {
	switch k {
	case KindPackage, KindNamespace, KindClass, KindInterface, KindEnum,
		KindFunction, KindVariable, KindTypeAlias:
		return true
	}
	return false
}

// IsMember reports whether this kind is a class/interface member that is
// rendered as an anchored detail section rather than a page.
func (k Kind) IsMember() bool {
	switch k {
	case KindMethod, KindMethodSignature, KindProperty, KindPropertySignature:
		return true
	}
	return false
}

// IsSignature reports whether the kind sits on the signature side of the
// signature/implementation boundary (interface members).
func (k Kind) IsSignature() bool {
	return k == KindMethodSignature || k == KindPropertySignature
}

// IsWrapper reports whether the kind is a structural wrapper that never
// contributes a scoped-name or path segment.
func (k Kind) IsWrapper() bool {
	return k == KindPackage || k == KindEntryPoint
}

// ReleaseTag is the API maturity marker carried by a declaration.
type ReleaseTag string

const (
	ReleaseNone     ReleaseTag = ""
	ReleasePublic   ReleaseTag = "Public"
	ReleaseBeta     ReleaseTag = "Beta"
	ReleaseAlpha    ReleaseTag = "Alpha"
	ReleaseInternal ReleaseTag = "Internal"
)
