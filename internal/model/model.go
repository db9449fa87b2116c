package model

// Model is the root of the declaration forest: one tree per package.
type Model struct {
	Packages []*Declaration
}

// PackageByName returns the package declaration with the given display
// name, or nil.
func (m *Model) PackageByName(name string) *Declaration {
	for _, p := range m.Packages {
		if p.DisplayName == name {
			return p
		}
	}
	return nil
}
